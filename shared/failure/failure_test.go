package failure_test

import (
	"errors"
	"fmt"
	"net/http"
	"suitespot/shared/failure"
	"testing"
)

func TestFailure_Error(t *testing.T) {
	f := &failure.Failure{
		Code:    http.StatusBadRequest,
		Message: "test error message",
	}

	if f.Error() != "test error message" {
		t.Errorf("expected error message to be 'test error message', got %s", f.Error())
	}
}

func TestBadRequest(t *testing.T) {
	tests := []struct {
		name     string
		input    error
		expected error
	}{
		{
			name:     "with error",
			input:    errors.New("validation failed"),
			expected: &failure.Failure{Code: http.StatusBadRequest, Message: "validation failed"},
		},
		{
			name:     "with nil error",
			input:    nil,
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := failure.BadRequest(tt.input)

			if tt.expected == nil {
				if result != nil {
					t.Errorf("expected nil, got %v", result)
				}
			} else {
				f, ok := result.(*failure.Failure)
				if !ok {
					t.Errorf("expected result to be *failure.Failure, got %T", result)
				} else {
					expectedF := tt.expected.(*failure.Failure)
					if f.Code != expectedF.Code || f.Message != expectedF.Message {
						t.Errorf("expected %+v, got %+v", expectedF, f)
					}
					if !errors.Is(result, failure.ErrInvalidArgument) {
						t.Errorf("expected bad request to match ErrInvalidArgument")
					}
				}
			}
		})
	}
}

func TestDomainFailures(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		sentinel error
		code     int
	}{
		{name: "not found", err: failure.NotFound("booking not found"), sentinel: failure.ErrNotFound, code: http.StatusNotFound},
		{name: "invalid status", err: failure.InvalidStatus("booking is cancelled"), sentinel: failure.ErrInvalidStatus, code: http.StatusConflict},
		{name: "invalid transition", err: failure.InvalidTransition("maintenance to occupied"), sentinel: failure.ErrInvalidTransition, code: http.StatusConflict},
		{name: "identity mismatch", err: failure.IdentityMismatch("id does not match"), sentinel: failure.ErrIdentityMismatch, code: http.StatusUnprocessableEntity},
		{name: "missing charge basis", err: failure.MissingChargeBasis("no price"), sentinel: failure.ErrMissingChargeBasis, code: http.StatusUnprocessableEntity},
		{name: "invalid argument", err: failure.BadRequestFromString("bad dates"), sentinel: failure.ErrInvalidArgument, code: http.StatusBadRequest},
		{name: "retryable", err: failure.Retryable("try again"), sentinel: failure.ErrRetryable, code: http.StatusConflict},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !errors.Is(tt.err, tt.sentinel) {
				t.Errorf("expected %v to match its sentinel", tt.err)
			}

			wrapped := fmt.Errorf("outer: %w", tt.err)
			if !errors.Is(wrapped, tt.sentinel) {
				t.Errorf("expected wrapped %v to match its sentinel", tt.err)
			}

			if failure.GetCode(wrapped) != tt.code {
				t.Errorf("expected code %d, got %d", tt.code, failure.GetCode(wrapped))
			}
		})
	}
}

func TestFailure_IsDoesNotCrossMatch(t *testing.T) {
	err := failure.InvalidStatus("booking is cancelled")

	if errors.Is(err, failure.ErrInvalidTransition) {
		t.Error("invalid status must not match invalid transition")
	}

	if errors.Is(failure.Conflict("room number exists"), failure.ErrRetryable) {
		t.Error("plain conflict carries no reason and must not match retryable")
	}
}

func TestInternalError(t *testing.T) {
	tests := []struct {
		name     string
		input    error
		expected error
	}{
		{
			name:     "with error",
			input:    errors.New("database connection failed"),
			expected: &failure.Failure{Code: http.StatusInternalServerError, Message: "database connection failed"},
		},
		{
			name:     "with nil error",
			input:    nil,
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := failure.InternalError(tt.input)

			if tt.expected == nil {
				if result != nil {
					t.Errorf("expected nil, got %v", result)
				}
			} else {
				f, ok := result.(*failure.Failure)
				if !ok {
					t.Errorf("expected result to be *failure.Failure, got %T", result)
				} else {
					expectedF := tt.expected.(*failure.Failure)
					if f.Code != expectedF.Code || f.Message != expectedF.Message {
						t.Errorf("expected %+v, got %+v", expectedF, f)
					}
				}
			}
		})
	}
}

func TestGetCode(t *testing.T) {
	tests := []struct {
		name     string
		input    error
		expected int
	}{
		{
			name:     "failure error",
			input:    &failure.Failure{Code: http.StatusBadRequest, Message: "test"},
			expected: http.StatusBadRequest,
		},
		{
			name:     "wrapped failure error",
			input:    fmt.Errorf("wrap: %w", failure.BadRequestFromString("test")),
			expected: http.StatusBadRequest,
		},
		{
			name:     "regular error",
			input:    errors.New("regular error"),
			expected: http.StatusInternalServerError,
		},
		{
			name:     "nil error",
			input:    nil,
			expected: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := failure.GetCode(tt.input)
			if result != tt.expected {
				t.Errorf("expected code to be %d, got %d", tt.expected, result)
			}
		})
	}
}

func TestGetReason(t *testing.T) {
	if r := failure.GetReason(failure.IdentityMismatch("x")); r != failure.ReasonIdentityMismatch {
		t.Errorf("expected %s, got %s", failure.ReasonIdentityMismatch, r)
	}

	if r := failure.GetReason(errors.New("plain")); r != "" {
		t.Errorf("expected empty reason, got %s", r)
	}
}
