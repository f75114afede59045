package postgres_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"

	"suitespot/infras/postgres"
	"suitespot/shared/constant"
)

func TestIsRetryable(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{name: "serialization failure", err: &pq.Error{Code: constant.PqErrorCodeSerializationFailure}, want: true},
		{name: "deadlock", err: fmt.Errorf("update room: %w", &pq.Error{Code: constant.PqErrorCodeDeadlockDetected}), want: true},
		{name: "lock not available", err: &pq.Error{Code: constant.PqErrorCodeLockNotAvailable}, want: true},
		{name: "unique violation", err: &pq.Error{Code: constant.PqErrorCodeUniqueViolation}, want: false},
		{name: "plain error", err: errors.New("boom"), want: false},
		{name: "nil", err: nil, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, postgres.IsRetryable(tt.err))
		})
	}
}

func TestIsUniqueViolation(t *testing.T) {
	assert.True(t, postgres.IsUniqueViolation(fmt.Errorf("insert: %w", &pq.Error{Code: constant.PqErrorCodeUniqueViolation})))
	assert.False(t, postgres.IsUniqueViolation(&pq.Error{Code: constant.PqErrorCodeFkViolation}))
}

func TestTxFromContext_Empty(t *testing.T) {
	_, ok := postgres.TxFromContext(context.Background())
	assert.False(t, ok)

	_, ok = postgres.TxFromContext(postgres.ContextWithTx(context.Background(), nil))
	assert.False(t, ok)
}
