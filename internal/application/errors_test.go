package application

import (
	"errors"
	"fmt"
	"testing"
)

func TestValidationError_Error(t *testing.T) {
	t.Parallel()

	var err *ValidationError
	if err.Error() != "" {
		t.Fatalf("expected empty string for nil error, got %q", err.Error())
	}

	withField := &ValidationError{Field: "title", Message: "title is required"}
	if got := withField.Error(); got != "title: title is required" {
		t.Fatalf("unexpected message, got %q", got)
	}

	withoutField := &ValidationError{Message: "invalid input"}
	if got := withoutField.Error(); got != "invalid input" {
		t.Fatalf("expected bare message when field is empty, got %q", got)
	}
}

func TestErrorKind(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		err  error
		want string
	}{
		{name: "nil", err: nil, want: ""},
		{name: "invalid credentials", err: ErrInvalidCredentials, want: "invalid_credentials"},
		{name: "unauthorized", err: ErrUnauthorized, want: "unauthorized"},
		{name: "not found", err: ErrNotFound, want: "not_found"},
		{name: "session expired", err: ErrSessionExpired, want: "session_expired"},
		{name: "session revoked", err: ErrSessionRevoked, want: "session_revoked"},
		{name: "wrapped sentinel", err: fmt.Errorf("lookup: %w", ErrNotFound), want: "not_found"},
		{name: "validation", err: newValidationError("title", "title is required"), want: "validation"},
		{name: "unexpected", err: errors.New("boom"), want: "unexpected"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := ErrorKind(tc.err); got != tc.want {
				t.Fatalf("ErrorKind(%v) = %q, want %q", tc.err, got, tc.want)
			}
		})
	}
}
