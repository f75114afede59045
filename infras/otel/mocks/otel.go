package mocks

import (
	"context"
	"suitespot/infras/otel"
	"sync"
)

// Otel is a tracer stand-in for tests. It records the span names it was asked to open.
type Otel struct {
	mu    sync.Mutex
	spans []string
}

func NewOtel() *Otel {
	return &Otel{}
}

func (o *Otel) NewScope(ctx context.Context, _, spanName string) (context.Context, otel.Scope) {
	o.mu.Lock()
	o.spans = append(o.spans, spanName)
	o.mu.Unlock()

	return ctx, scope{}
}

func (o *Otel) Spans() []string {
	o.mu.Lock()
	defer o.mu.Unlock()

	return append([]string(nil), o.spans...)
}

type scope struct{}

func (scope) End() {}
func (scope) TraceError(_ error) {}
func (scope) TraceIfError(_ error) {}
func (scope) AddEvent(_ string) {}
func (scope) SetAttribute(_ string, _ any) {}
func (scope) SetAttributes(_ map[string]any) {}
