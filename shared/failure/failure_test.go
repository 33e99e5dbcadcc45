package failure_test

import (
	"errors"
	"fmt"
	"intake/shared/failure"
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
	}{
		{
			name:    "LookupFailed",
			failure: failure.LookupFailed,
			code:    http.StatusBadGateway,
		},
		{
			name:    "WriteFailed",
			failure: failure.WriteFailed,
			code:    http.StatusBadGateway,
		},
		{
			name:    "NotConfigured",
			failure: failure.NotConfigured,
			code:    http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.failure.Code != tt.code {
				t.Errorf("expected code to be %d, got %d", tt.code, tt.failure.Code)
			}
			if tt.failure.Message == "" {
				t.Error("expected a generic message")
			}
		})
	}
}

func TestPredefinedFailures_MatchWhenWrapped(t *testing.T) {
	err := fmt.Errorf("create contact: %w", failure.WriteFailed)

	if !errors.Is(err, failure.WriteFailed) {
		t.Error("expected wrapped error to match WriteFailed")
	}

	if errors.Is(err, failure.LookupFailed) {
		t.Error("expected wrapped error not to match LookupFailed")
	}

	if failure.GetCode(err) != http.StatusBadGateway {
		t.Errorf("expected code %d, got %d", http.StatusBadGateway, failure.GetCode(err))
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

func TestValidation(t *testing.T) {
	result := failure.Validation("postal_code", "must be exactly 7 digits")

	f, ok := result.(*failure.Failure)
	if !ok {
		t.Fatalf("expected result to be *failure.Failure, got %T", result)
	}

	if f.Code != http.StatusBadRequest {
		t.Errorf("expected code to be %d, got %d", http.StatusBadRequest, f.Code)
	}

	if f.Field != "postal_code" {
		t.Errorf("expected field to be 'postal_code', got %s", f.Field)
	}

	if f.Message != "postal_code must be exactly 7 digits" {
		t.Errorf("unexpected message %q", f.Message)
	}

	if !failure.IsValidation(result) {
		t.Error("expected IsValidation to be true")
	}
}

func TestUnauthorized(t *testing.T) {
	result := failure.Unauthorized("no active session")

	if failure.GetCode(result) != http.StatusUnauthorized {
		t.Errorf("expected code to be %d, got %d", http.StatusUnauthorized, failure.GetCode(result))
	}
}

func TestConflict(t *testing.T) {
	result := failure.Conflict("submission in progress")

	f, ok := result.(*failure.Failure)
	if !ok {
		t.Fatalf("expected result to be *failure.Failure, got %T", result)
	}

	if f.Code != http.StatusConflict {
		t.Errorf("expected code to be %d, got %d", http.StatusConflict, f.Code)
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
			input:    fmt.Errorf("wrap: %w", failure.NotFound("contact not found")),
			expected: http.StatusNotFound,
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

func TestTooManyRequests(t *testing.T) {
	result := failure.TooManyRequests("too many attempts")

	if failure.GetCode(result) != http.StatusTooManyRequests {
		t.Errorf("expected code to be %d, got %d", http.StatusTooManyRequests, failure.GetCode(result))
	}
}
