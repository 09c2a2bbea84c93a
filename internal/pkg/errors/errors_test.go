package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestAppErrorError(t *testing.T) {
	tests := []struct {
		name string
		err  *AppError
		want string
	}{
		{
			name: "without wrapped error",
			err:  New(CodeRecordNotFound, "audit record not found", http.StatusNotFound),
			want: "AUDIT_RECORD_NOT_FOUND: audit record not found",
		},
		{
			name: "with wrapped error",
			err:  Wrap(fmt.Errorf("connection refused"), CodePersistenceFailed, "audit store write failed", http.StatusServiceUnavailable),
			want: "AUDIT_PERSISTENCE_FAILED: audit store write failed: connection refused",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestAppErrorUnwrap(t *testing.T) {
	inner := fmt.Errorf("inner error")
	wrapped := Wrap(inner, CodePersistenceFailed, "store down", http.StatusServiceUnavailable)

	if !errors.Is(wrapped, inner) {
		t.Error("errors.Is should match the wrapped inner error")
	}
}

func TestIsAppError(t *testing.T) {
	appErr := BadRequest(CodeInvalidQuery, "bad filter")
	wrapped := fmt.Errorf("outer: %w", appErr)

	got, ok := IsAppError(wrapped)
	if !ok {
		t.Fatal("IsAppError should find AppError through wrapping")
	}
	if got.Code != CodeInvalidQuery {
		t.Errorf("Code = %q, want %q", got.Code, CodeInvalidQuery)
	}

	if _, ok := IsAppError(errors.New("plain")); ok {
		t.Error("IsAppError should not match plain errors")
	}
}

func TestSentinelMatching(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		sentinel error
	}{
		{"invalid actor", ErrInvalidActorf("log_entry_action"), ErrInvalidActor},
		{"persistence with cause", ErrPersistencef(fmt.Errorf("timeout"), "append record"), ErrPersistence},
		{"persistence without cause", ErrPersistencef(nil, "append record"), ErrPersistence},
		{"invalid query", ErrInvalidQueryf("target_entity_id", "malformed id"), ErrInvalidQuery},
		{"record not found", ErrRecordNotFoundf("abc"), ErrNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !errors.Is(tt.err, tt.sentinel) {
				t.Errorf("errors.Is(%v, %v) = false, want true", tt.err, tt.sentinel)
			}
		})
	}
}

func TestPersistenceKeepsCause(t *testing.T) {
	cause := fmt.Errorf("dial tcp: connection refused")
	err := ErrPersistencef(cause, "append record %s", "rec-1")

	if !errors.Is(err, cause) {
		t.Error("cause should remain reachable via errors.Is")
	}
	if !errors.Is(err, ErrPersistence) {
		t.Error("ErrPersistence sentinel should match")
	}
}

func TestWithParams(t *testing.T) {
	err := BadRequest(CodeValidationFailed, "bad input").
		WithParams(map[string]interface{}{"field": "start"})

	if err.Params["field"] != "start" {
		t.Errorf("Params[field] = %v, want start", err.Params["field"])
	}

	var nilErr *AppError
	if nilErr.WithParams(map[string]interface{}{"x": 1}) != nil {
		t.Error("WithParams on nil receiver should return nil")
	}
}
