package failure

import (
	"errors"
	"net/http"
)

// Reason classifies a Failure independently of its HTTP code so callers can match on it with errors.Is.
type Reason string

const (
	ReasonNotFound           Reason = "not_found"
	ReasonInvalidStatus      Reason = "invalid_status"
	ReasonInvalidTransition  Reason = "invalid_transition"
	ReasonIdentityMismatch   Reason = "identity_mismatch"
	ReasonMissingChargeBasis Reason = "missing_charge_basis"
	ReasonInvalidArgument    Reason = "invalid_argument"
	ReasonRetryable          Reason = "retryable"
)

// Failure is a wrapper for error messages and codes using standard HTTP response codes.
type Failure struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Reason  Reason `json:"reason,omitempty"`
}

var InvalidPageParam = &Failure{Code: http.StatusBadRequest, Message: "invalid page parameter"}
var InvalidLimitParam = &Failure{Code: http.StatusBadRequest, Message: "invalid limit parameter"}

// Sentinels for errors.Is. Only the Reason is compared.
var (
	ErrNotFound           = &Failure{Code: http.StatusNotFound, Reason: ReasonNotFound}
	ErrInvalidStatus      = &Failure{Code: http.StatusConflict, Reason: ReasonInvalidStatus}
	ErrInvalidTransition  = &Failure{Code: http.StatusConflict, Reason: ReasonInvalidTransition}
	ErrIdentityMismatch   = &Failure{Code: http.StatusUnprocessableEntity, Reason: ReasonIdentityMismatch}
	ErrMissingChargeBasis = &Failure{Code: http.StatusUnprocessableEntity, Reason: ReasonMissingChargeBasis}
	ErrInvalidArgument    = &Failure{Code: http.StatusBadRequest, Reason: ReasonInvalidArgument}
	ErrRetryable          = &Failure{Code: http.StatusConflict, Reason: ReasonRetryable}
)

// Error returns the error code and message in a formatted string.
func (e *Failure) Error() string {
	return e.Message
}

// Is reports whether target is a Failure carrying the same non-empty Reason.
func (e *Failure) Is(target error) bool {
	var fail *Failure
	if !errors.As(target, &fail) || fail.Reason == "" {
		return false
	}

	return e.Reason == fail.Reason
}

// BadRequest returns a new Failure with code for bad requests.
func BadRequest(err error) error {
	if err != nil {
		return &Failure{
			Code:    http.StatusBadRequest,
			Message: err.Error(),
			Reason:  ReasonInvalidArgument,
		}
	}

	return nil
}

// BadRequestFromString returns a new Failure with code for bad requests with message set from string.
func BadRequestFromString(msg string) error {
	return &Failure{
		Code:    http.StatusBadRequest,
		Message: msg,
		Reason:  ReasonInvalidArgument,
	}
}

// InternalError returns a new Failure with code for internal error and message derived from an error interface.
func InternalError(err error) error {
	if err != nil {
		return &Failure{
			Code:    http.StatusInternalServerError,
			Message: err.Error(),
		}
	}

	return nil
}

// NotFound returns a new Failure with code for entity not found.
func NotFound(entityName string) error {
	return &Failure{
		Code:    http.StatusNotFound,
		Message: entityName,
		Reason:  ReasonNotFound,
	}
}

// Conflict returns a new Failure with code for conflict situations.
func Conflict(message string) error {
	return &Failure{
		Code:    http.StatusConflict,
		Message: message,
	}
}

// InvalidStatus is returned when an operation is attempted from a disallowed lifecycle state.
func InvalidStatus(msg string) error {
	return &Failure{
		Code:    http.StatusConflict,
		Message: msg,
		Reason:  ReasonInvalidStatus,
	}
}

// InvalidTransition is returned for room or booking status changes outside the transition table.
func InvalidTransition(msg string) error {
	return &Failure{
		Code:    http.StatusConflict,
		Message: msg,
		Reason:  ReasonInvalidTransition,
	}
}

func IdentityMismatch(msg string) error {
	return &Failure{
		Code:    http.StatusUnprocessableEntity,
		Message: msg,
		Reason:  ReasonIdentityMismatch,
	}
}

func MissingChargeBasis(msg string) error {
	return &Failure{
		Code:    http.StatusUnprocessableEntity,
		Message: msg,
		Reason:  ReasonMissingChargeBasis,
	}
}

// Retryable marks a unit of work that lost a race at commit time and may be retried as is.
func Retryable(msg string) error {
	return &Failure{
		Code:    http.StatusConflict,
		Message: msg,
		Reason:  ReasonRetryable,
	}
}

// GetCode returns the error code of an error interface.
func GetCode(err error) int {
	var fail *Failure
	if errors.As(err, &fail) {
		return fail.Code
	}

	return http.StatusInternalServerError
}

// GetReason returns the reason of an error interface, empty when err is not a Failure.
func GetReason(err error) Reason {
	var fail *Failure
	if errors.As(err, &fail) {
		return fail.Reason
	}

	return ""
}
