package mocks

import (
	"context"
	"suitespot/infras/postgres"
)

type transactorImpl struct {
	calls int
}

// WithTx implements postgres.Transactor by running fn on the caller's ctx.
func (t *transactorImpl) WithTx(ctx context.Context, fn func(ctx context.Context) error) error {
	t.calls++

	return fn(ctx)
}

// Calls returns how many units of work were started.
func (t *transactorImpl) Calls() int {
	return t.calls
}

type Transactor interface {
	postgres.Transactor
	Calls() int
}

func NewTransactor() Transactor {
	return &transactorImpl{}
}
