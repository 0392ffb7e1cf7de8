package failure

import (
	"errors"
	"net/http"
)

// Kind classifies a failure independently of its transport code.
type Kind string

const (
	KindBadRequest          Kind = "BadRequest"
	KindUnauthorized        Kind = "Unauthorized"
	KindForbidden           Kind = "Forbidden"
	KindNotFound            Kind = "NotFound"
	KindConflict            Kind = "Conflict"
	KindInvalidDateRange    Kind = "InvalidDateRange"
	KindStartInPast         Kind = "StartInPast"
	KindCarNotAvailable     Kind = "CarNotAvailable"
	KindCarNotFound         Kind = "CarNotFound"
	KindLocationNotFound    Kind = "LocationNotFound"
	KindDatesConflict       Kind = "DatesConflict"
	KindUnknownStatus       Kind = "UnknownStatus"
	KindInvalidTransition   Kind = "InvalidTransition"
	KindReservationNotFound Kind = "ReservationNotFound"
	KindStorageFailure      Kind = "StorageFailure"
	KindUnimplemented       Kind = "Unimplemented"
)

// Failure is a wrapper for error messages and codes using standard HTTP response codes.
type Failure struct {
	Code    int    `json:"code"`
	Kind    Kind   `json:"kind"`
	Message string `json:"message"`
	Detail  any    `json:"detail,omitempty"`
}

var InvalidPageParam = &Failure{Code: http.StatusBadRequest, Kind: KindBadRequest, Message: "invalid page parameter"}
var InvalidLimitParam = &Failure{Code: http.StatusBadRequest, Kind: KindBadRequest, Message: "invalid limit parameter"}
var ForbiddenError = &Failure{Code: http.StatusForbidden, Kind: KindForbidden, Message: "You don't have the required permissions"}
var ResourceRestrictedError = &Failure{Code: http.StatusForbidden, Kind: KindForbidden, Message: "You don't have permission to access this resource"}

// Error returns the error code and message in a formatted string.
func (e *Failure) Error() string {
	return e.Message
}

// New returns a Failure of the given kind. The HTTP code is derived from the kind.
func New(kind Kind, msg string) error {
	return &Failure{
		Code:    codeOf(kind),
		Kind:    kind,
		Message: msg,
	}
}

// WithDetail returns a Failure of the given kind carrying a structured detail payload.
func WithDetail(kind Kind, msg string, detail any) error {
	return &Failure{
		Code:    codeOf(kind),
		Kind:    kind,
		Message: msg,
		Detail:  detail,
	}
}

// BadRequest returns a new Failure with code for bad requests.
func BadRequest(err error) error {
	if err != nil {
		return &Failure{
			Code:    http.StatusBadRequest,
			Kind:    KindBadRequest,
			Message: err.Error(),
		}
	}

	return nil
}

// BadRequestFromString returns a new Failure with code for bad requests with message set from string.
func BadRequestFromString(msg string) error {
	return &Failure{
		Code:    http.StatusBadRequest,
		Kind:    KindBadRequest,
		Message: msg,
	}
}

// Unauthorized returns a new Failure with code for unauthorized requests.
func Unauthorized(msg string) error {
	return &Failure{
		Code:    http.StatusUnauthorized,
		Kind:    KindUnauthorized,
		Message: msg,
	}
}

// InternalError returns a new Failure with code for internal error and message derived from an error interface.
func InternalError(err error) error {
	if err != nil {
		return &Failure{
			Code:    http.StatusInternalServerError,
			Kind:    KindStorageFailure,
			Message: err.Error(),
		}
	}

	return nil
}

// Unimplemented returns a new Failure with code for unimplemented method.
func Unimplemented(methodName string) error {
	return &Failure{
		Code:    http.StatusNotImplemented,
		Kind:    KindUnimplemented,
		Message: methodName,
	}
}

// NotFound returns a new Failure with code for entity not found.
func NotFound(entityName string) error {
	return &Failure{
		Code:    http.StatusNotFound,
		Kind:    KindNotFound,
		Message: entityName,
	}
}

// Conflict returns a new Failure with code for conflict situations.
func Conflict(message string) error {
	return &Failure{
		Code:    http.StatusConflict,
		Kind:    KindConflict,
		Message: message,
	}
}

func Forbidden(msg string) error {
	return &Failure{
		Code:    http.StatusForbidden,
		Kind:    KindForbidden,
		Message: msg,
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

// GetKind returns the kind of a wrapped Failure. Anything that is not a Failure is a storage failure.
func GetKind(err error) Kind {
	var fail *Failure
	if errors.As(err, &fail) {
		return fail.Kind
	}

	return KindStorageFailure
}

// GetDetail returns the detail payload of a wrapped Failure, if any.
func GetDetail(err error) any {
	var fail *Failure
	if errors.As(err, &fail) {
		return fail.Detail
	}

	return nil
}

// GetMessage returns the message of a wrapped Failure without the wrapping prefixes.
// Anything that is not a Failure yields its full error text.
func GetMessage(err error) string {
	var fail *Failure
	if errors.As(err, &fail) {
		return fail.Message
	}

	return err.Error()
}

// Is reports whether err wraps a Failure of the given kind.
func Is(err error, kind Kind) bool {
	var fail *Failure

	return errors.As(err, &fail) && fail.Kind == kind
}

func codeOf(kind Kind) int {
	switch kind {
	case KindBadRequest, KindInvalidDateRange, KindStartInPast, KindUnknownStatus, KindLocationNotFound:
		return http.StatusBadRequest
	case KindUnauthorized:
		return http.StatusUnauthorized
	case KindForbidden:
		return http.StatusForbidden
	case KindNotFound, KindReservationNotFound, KindCarNotFound:
		return http.StatusNotFound
	case KindConflict, KindCarNotAvailable, KindDatesConflict, KindInvalidTransition:
		return http.StatusConflict
	case KindUnimplemented:
		return http.StatusNotImplemented
	default:
		return http.StatusInternalServerError
	}
}
