package failure_test

import (
	"carrental/shared/failure"
	"errors"
	"fmt"
	"net/http"
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

func TestPredefinedFailures(t *testing.T) {
	tests := []struct {
		name    string
		failure *failure.Failure
		code    int
		kind    failure.Kind
	}{
		{
			name:    "InvalidPageParam",
			failure: failure.InvalidPageParam,
			code:    http.StatusBadRequest,
			kind:    failure.KindBadRequest,
		},
		{
			name:    "InvalidLimitParam",
			failure: failure.InvalidLimitParam,
			code:    http.StatusBadRequest,
			kind:    failure.KindBadRequest,
		},
		{
			name:    "ForbiddenError",
			failure: failure.ForbiddenError,
			code:    http.StatusForbidden,
			kind:    failure.KindForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.failure.Code != tt.code {
				t.Errorf("expected code to be %d, got %d", tt.code, tt.failure.Code)
			}
			if tt.failure.Kind != tt.kind {
				t.Errorf("expected kind to be %s, got %s", tt.kind, tt.failure.Kind)
			}
		})
	}
}

func TestNew(t *testing.T) {
	tests := []struct {
		kind failure.Kind
		code int
	}{
		{kind: failure.KindInvalidDateRange, code: http.StatusBadRequest},
		{kind: failure.KindStartInPast, code: http.StatusBadRequest},
		{kind: failure.KindUnknownStatus, code: http.StatusBadRequest},
		{kind: failure.KindLocationNotFound, code: http.StatusBadRequest},
		{kind: failure.KindCarNotAvailable, code: http.StatusConflict},
		{kind: failure.KindDatesConflict, code: http.StatusConflict},
		{kind: failure.KindInvalidTransition, code: http.StatusConflict},
		{kind: failure.KindReservationNotFound, code: http.StatusNotFound},
		{kind: failure.KindCarNotFound, code: http.StatusNotFound},
		{kind: failure.KindStorageFailure, code: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			err := failure.New(tt.kind, "message")

			if got := failure.GetCode(err); got != tt.code {
				t.Errorf("expected code %d, got %d", tt.code, got)
			}
			if got := failure.GetKind(err); got != tt.kind {
				t.Errorf("expected kind %s, got %s", tt.kind, got)
			}
		})
	}
}

func TestWithDetail(t *testing.T) {
	detail := map[string]string{"status": "active"}
	err := fmt.Errorf("wrapped: %w", failure.WithDetail(failure.KindDatesConflict, "dates conflict", detail))

	if !failure.Is(err, failure.KindDatesConflict) {
		t.Errorf("expected wrapped error to be DatesConflict")
	}

	got, ok := failure.GetDetail(err).(map[string]string)
	if !ok || got["status"] != "active" {
		t.Errorf("expected detail to survive wrapping, got %v", failure.GetDetail(err))
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

				return
			}

			f, ok := result.(*failure.Failure)
			if !ok {
				t.Fatalf("expected result to be *failure.Failure, got %T", result)
			}

			expectedF := tt.expected.(*failure.Failure)
			if f.Code != expectedF.Code || f.Message != expectedF.Message {
				t.Errorf("expected %+v, got %+v", expectedF, f)
			}
		})
	}
}

func TestUnauthorized(t *testing.T) {
	result := failure.Unauthorized("token expired")

	f, ok := result.(*failure.Failure)
	if !ok {
		t.Fatalf("expected result to be *failure.Failure, got %T", result)
	}
	if f.Code != http.StatusUnauthorized {
		t.Errorf("expected code to be %d, got %d", http.StatusUnauthorized, f.Code)
	}
}

func TestGetCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{
			name:     "failure error",
			err:      failure.NotFound("reservation"),
			expected: http.StatusNotFound,
		},
		{
			name:     "wrapped failure error",
			err:      fmt.Errorf("outer: %w", failure.Conflict("taken")),
			expected: http.StatusConflict,
		},
		{
			name:     "standard error",
			err:      errors.New("connection reset"),
			expected: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := failure.GetCode(tt.err); got != tt.expected {
				t.Errorf("expected code %d, got %d", tt.expected, got)
			}
		})
	}
}

func TestGetKind_NonFailure(t *testing.T) {
	if got := failure.GetKind(errors.New("boom")); got != failure.KindStorageFailure {
		t.Errorf("expected StorageFailure, got %s", got)
	}
}

func TestGetMessage(t *testing.T) {
	err := fmt.Errorf("failed to create reservation: %w", fmt.Errorf("booking: %w", failure.New(failure.KindDatesConflict, "dates conflict")))

	if got := failure.GetMessage(err); got != "dates conflict" {
		t.Errorf("expected the failure message without wrapping, got %q", got)
	}
	if got := failure.GetMessage(errors.New("boom")); got != "boom" {
		t.Errorf("expected plain error text, got %q", got)
	}
}
