package ingestion

import (
	"fmt"
)

type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error [%s]: %s", e.Field, e.Message)
}

// ValidatePingMessage checks a position report before it touches storage.
func ValidatePingMessage(msg *PingMessage) error {
	if msg.SalespersonID == 0 {
		return &ValidationError{Field: "salesperson_id", Message: "salesperson_id is required"}
	}

	if msg.RecordedAt.IsZero() {
		return &ValidationError{Field: "recorded_at", Message: "recorded_at is required"}
	}

	if msg.Latitude < -90 || msg.Latitude > 90 {
		return &ValidationError{Field: "latitude", Message: "latitude must be between -90 and 90"}
	}

	if msg.Longitude < -180 || msg.Longitude > 180 {
		return &ValidationError{Field: "longitude", Message: "longitude must be between -180 and 180"}
	}

	if msg.AccuracyMeters != nil && *msg.AccuracyMeters < 0 {
		return &ValidationError{Field: "accuracy_meters", Message: "accuracy_meters must be non-negative"}
	}

	return nil
}
