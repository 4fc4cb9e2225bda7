package geo

import "errors"

// FailureKind classifies why a fix could not be obtained.
type FailureKind string

const (
	FailurePermissionDenied    FailureKind = "permission-denied"
	FailurePositionUnavailable FailureKind = "position-unavailable"
	FailureTimeout             FailureKind = "timeout"
	FailureOther               FailureKind = "other"
)

// Error is a classified positioning failure.
type Error struct {
	Kind FailureKind
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return string(e.Kind) + ": " + e.Err.Error()
	}
	return string(e.Kind)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// UserMessage maps a positioning failure onto the message shown to the
// field agent.
func UserMessage(err error) string {
	var geoErr *Error
	if !errors.As(err, &geoErr) {
		return "Error al obtener ubicación"
	}

	switch geoErr.Kind {
	case FailurePermissionDenied:
		return "Permiso de ubicación denegado. Por favor habilite el GPS."
	case FailurePositionUnavailable:
		return "Ubicación no disponible"
	case FailureTimeout:
		return "Tiempo de espera agotado"
	default:
		return "Error al obtener ubicación"
	}
}
