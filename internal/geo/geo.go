package geo

import (
	"context"
	"time"
)

// Position is one GPS fix.
type Position struct {
	Latitude       float64
	Longitude      float64
	AccuracyMeters *float64
	At             time.Time
}

// Watch is a handle to a continuous position stream. Stop is idempotent and
// guarantees no further callbacks after it returns.
type Watch interface {
	Stop()
}

// Provider abstracts the positioning hardware. Current obtains a single fix;
// Watch streams fixes until stopped. Watch delivers failures through the
// same callback so transient GPS errors surface without killing the stream.
type Provider interface {
	Current(ctx context.Context) (*Position, error)
	Watch(handler func(*Position, error)) (Watch, error)
}
