package otel_test

import (
	"context"
	"errors"
	"testing"

	"suitespot/infras/otel"
	"suitespot/shared/failure"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func record(t *testing.T, fn func(scope otel.Scope)) sdktrace.ReadOnlySpan {
	t.Helper()

	recorder := tracetest.NewSpanRecorder()
	provider := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))

	_, span := provider.Tracer("test").Start(context.Background(), "span")
	scope := otel.NewScope(span)
	fn(scope)
	scope.End()

	ended := recorder.Ended()
	require.Len(t, ended, 1)

	return ended[0]
}

func attributes(span sdktrace.ReadOnlySpan) map[attribute.Key]attribute.Value {
	out := map[attribute.Key]attribute.Value{}
	for _, kv := range span.Attributes() {
		out[kv.Key] = kv.Value
	}

	return out
}

func TestScope_TraceError(t *testing.T) {
	t.Run("failure reason", func(t *testing.T) {
		span := record(t, func(scope otel.Scope) {
			scope.TraceError(failure.InvalidTransition("room 101 cannot move from maintenance to occupied"))
		})

		assert.Equal(t, codes.Error, span.Status().Code)
		assert.Equal(t, "invalid_transition", attributes(span)["failure.reason"].AsString())
	})

	t.Run("plain error", func(t *testing.T) {
		span := record(t, func(scope otel.Scope) {
			scope.TraceError(errors.New("connection reset"))
		})

		assert.Equal(t, codes.Error, span.Status().Code)
		assert.NotContains(t, attributes(span), attribute.Key("failure.reason"))
	})

	t.Run("nil is ignored", func(t *testing.T) {
		span := record(t, func(scope otel.Scope) {
			scope.TraceIfError(nil)
		})

		assert.Equal(t, codes.Unset, span.Status().Code)
	})
}

func TestScope_SetAttributes(t *testing.T) {
	id := uuid.MustParse("7b0c5a52-4a43-4d0c-9a51-1f1f6a0f2b8e")

	span := record(t, func(scope otel.Scope) {
		scope.SetAttributes(map[string]any{
			"room.number": "101",
			"room.floor":  1,
			"forced":      true,
			"nights":      int64(2),
			"booking.id":  id,
		})
	})

	attrs := attributes(span)
	assert.Equal(t, "101", attrs["room.number"].AsString())
	assert.Equal(t, int64(1), attrs["room.floor"].AsInt64())
	assert.True(t, attrs["forced"].AsBool())
	assert.Equal(t, int64(2), attrs["nights"].AsInt64())
	assert.Equal(t, id.String(), attrs["booking.id"].AsString())
}
