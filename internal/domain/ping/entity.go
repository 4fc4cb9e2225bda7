package ping

import (
	"context"
	"time"
)

// Ping is a single position report tied to a salesperson. Pings are
// write-only from the consoles' perspective: every accepted ping overwrites
// the salesperson's last-known position, and the history is never read back.
type Ping struct {
	ID             uint      `json:"id" gorm:"primaryKey"`
	SalespersonID  uint      `json:"salesperson_id" gorm:"not null;index"`
	Latitude       float64   `json:"latitude" gorm:"not null"`
	Longitude      float64   `json:"longitude" gorm:"not null"`
	AccuracyMeters *float64  `json:"accuracy_meters,omitempty"`
	RecordedAt     time.Time `json:"recorded_at"`
}

func (Ping) TableName() string {
	return "location_pings"
}

type Repository interface {
	Create(ctx context.Context, p *Ping) error
}
