package failure_test

import (
	"errors"
	"fmt"
	"net/http"
	"reserva/shared/failure"
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
			name:    "InvalidDateParam",
			failure: failure.InvalidDateParam,
			code:    http.StatusBadRequest,
		},
		{
			name:    "ServerError",
			failure: failure.ServerError,
			code:    http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.failure.Code != tt.code {
				t.Errorf("expected code to be %d, got %d", tt.code, tt.failure.Code)
			}
			if tt.failure.Message == "" {
				t.Error("expected a non-empty message")
			}
		})
	}
}

func TestConstructors(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code int
	}{
		{"BadRequest", failure.BadRequest(errors.New("bad input")), http.StatusBadRequest},
		{"BadRequestFromString", failure.BadRequestFromString("bad input"), http.StatusBadRequest},
		{"InternalError", failure.InternalError(errors.New("boom")), http.StatusInternalServerError},
		{"NotFound", failure.NotFound("reservation"), http.StatusNotFound},
		{"Conflict", failure.Conflict("slot already taken"), http.StatusConflict},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := failure.GetCode(tt.err); got != tt.code {
				t.Errorf("expected code %d, got %d", tt.code, got)
			}
		})
	}
}

func TestBadRequest_NilError(t *testing.T) {
	if err := failure.BadRequest(nil); err != nil {
		t.Errorf("expected nil, got %v", err)
	}

	if err := failure.InternalError(nil); err != nil {
		t.Errorf("expected nil, got %v", err)
	}
}

func TestGetCode_WrappedAndUnknown(t *testing.T) {
	wrapped := fmt.Errorf("context: %w", failure.BadRequestFromString("bad"))
	if got := failure.GetCode(wrapped); got != http.StatusBadRequest {
		t.Errorf("expected wrapped failure code %d, got %d", http.StatusBadRequest, got)
	}

	if got := failure.GetCode(errors.New("plain")); got != http.StatusInternalServerError {
		t.Errorf("expected plain error to map to %d, got %d", http.StatusInternalServerError, got)
	}
}
