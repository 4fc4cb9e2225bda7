package ingestion

import (
	"encoding/json"
	"time"
)

// PingMessage is an incoming position report from a field device. Every
// accepted ping overwrites the salesperson's last-known position; the ping
// history itself is write-only.
type PingMessage struct {
	SalespersonID  uint      `json:"salesperson_id"`
	Latitude       float64   `json:"latitude"`
	Longitude      float64   `json:"longitude"`
	AccuracyMeters *float64  `json:"accuracy_meters,omitempty"`
	RecordedAt     time.Time `json:"recorded_at"`
}

// ParsePingMessage parses a JSON payload into a PingMessage, defaulting the
// timestamp to now when the device omits it.
func ParsePingMessage(payload []byte) (*PingMessage, error) {
	var msg PingMessage
	if err := json.Unmarshal(payload, &msg); err != nil {
		return nil, err
	}
	if msg.RecordedAt.IsZero() {
		msg.RecordedAt = time.Now()
	}
	return &msg, nil
}
