package fault

import (
	"errors"
	"fmt"
	"testing"
)

func TestKindOf_PlainError(t *testing.T) {
	if got := KindOf(errors.New("boom")); got != Unknown {
		t.Errorf("expected Unknown, got %v", got)
	}
}

func TestKindOf_DirectError(t *testing.T) {
	err := New(Validation, "bad input")
	if got := KindOf(err); got != Validation {
		t.Errorf("expected Validation, got %v", got)
	}
}

func TestKindOf_WrappedError(t *testing.T) {
	inner := New(Auth, "missing token")
	outer := fmt.Errorf("resolve identity: %w", inner)

	if got := KindOf(outer); got != Auth {
		t.Errorf("expected Auth through wrapping, got %v", got)
	}
	if !IsAuth(outer) {
		t.Error("IsAuth should see through fmt.Errorf wrapping")
	}
}

func TestWrap_NilCause(t *testing.T) {
	if err := Wrap(Backend, "encode", nil); err != nil {
		t.Errorf("expected nil for nil cause, got %v", err)
	}
}

func TestWrap_PreservesCause(t *testing.T) {
	cause := errors.New("connection refused")
	err := Wrap(Backend, "encode failed", cause)

	if !errors.Is(err, cause) {
		t.Error("wrapped cause should be reachable via errors.Is")
	}
	if !IsBackend(err) {
		t.Error("expected Backend kind")
	}
}

func TestKindString(t *testing.T) {
	cases := map[Kind]string{
		Unknown:    "unknown",
		Validation: "validation",
		Auth:       "auth",
		RateLimit:  "rate_limit",
		Backend:    "backend",
	}
	for kind, want := range cases {
		if got := kind.String(); got != want {
			t.Errorf("Kind(%d).String() = %q, want %q", kind, got, want)
		}
	}
}
