package geo

import (
	"errors"
	"fmt"
	"testing"
)

func TestUserMessageByKind(t *testing.T) {
	cases := []struct {
		kind FailureKind
		want string
	}{
		{FailurePermissionDenied, "Permiso de ubicación denegado. Por favor habilite el GPS."},
		{FailurePositionUnavailable, "Ubicación no disponible"},
		{FailureTimeout, "Tiempo de espera agotado"},
		{FailureOther, "Error al obtener ubicación"},
	}

	for _, tc := range cases {
		if got := UserMessage(&Error{Kind: tc.kind}); got != tc.want {
			t.Errorf("kind %s: got %q, want %q", tc.kind, got, tc.want)
		}
	}
}

func TestUserMessageForUnclassifiedError(t *testing.T) {
	if got := UserMessage(errors.New("boom")); got != "Error al obtener ubicación" {
		t.Fatalf("unexpected message: %q", got)
	}
}

func TestUserMessageUnwrapsWrappedErrors(t *testing.T) {
	wrapped := fmt.Errorf("obtaining fix: %w", &Error{Kind: FailureTimeout})
	if got := UserMessage(wrapped); got != "Tiempo de espera agotado" {
		t.Fatalf("unexpected message: %q", got)
	}
}

func TestErrorUnwrap(t *testing.T) {
	cause := errors.New("gps off")
	err := &Error{Kind: FailurePositionUnavailable, Err: cause}

	if !errors.Is(err, cause) {
		t.Fatal("cause not reachable through Unwrap")
	}
	if err.Error() != "position-unavailable: gps off" {
		t.Fatalf("unexpected error text: %q", err.Error())
	}
}
