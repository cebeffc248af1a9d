package apperr

import (
	"errors"
	"fmt"
	"testing"
)

func TestHTTPStatusMapping(t *testing.T) {
	cases := []struct {
		kind Kind
		want int
	}{
		{KindUnauthorized, 401},
		{KindBadRequest, 400},
		{KindNotFound, 404},
		{KindInternal, 500},
		{KindUnknown, 500},
	}

	for _, tc := range cases {
		err := New(tc.kind, "internal detail", "public detail")
		if got := err.HTTPStatus(); got != tc.want {
			t.Fatalf("kind %d: expected status %d, got %d", tc.kind, tc.want, got)
		}
	}
}

func TestPublicMessageNeverExposesInternal(t *testing.T) {
	err := New(KindInternal, "duplicate key violates unique constraint", "Error on registration")

	if err.PublicMessage() != "Error on registration" {
		t.Fatalf("expected public message, got %q", err.PublicMessage())
	}
	if err.Error() == err.PublicMessage() {
		t.Fatal("internal and public messages should be distinct")
	}
}

func TestPublicMessageFallback(t *testing.T) {
	err := New(KindInternal, "boom", "")
	if err.PublicMessage() != FallbackPublicMessage {
		t.Fatalf("expected fallback public message, got %q", err.PublicMessage())
	}
}

func TestWrapPreservesUnderlyingError(t *testing.T) {
	cause := errors.New("connection refused")
	err := Wrap(KindInternal, "create venue", "There was an error creating the venue", cause)

	if !errors.Is(err, cause) {
		t.Fatal("expected wrapped error to match errors.Is")
	}
	if GetKind(fmt.Errorf("outer: %w", err)) != KindInternal {
		t.Fatal("expected kind to survive further wrapping")
	}
}

func TestGetKindOnPlainError(t *testing.T) {
	if GetKind(errors.New("plain")) != KindUnknown {
		t.Fatal("expected KindUnknown for untyped errors")
	}
}
