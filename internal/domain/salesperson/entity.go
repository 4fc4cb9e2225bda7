package salesperson

import (
	"time"
)

type Status string

const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
)

func (s Status) Valid() bool {
	return s == StatusActive || s == StatusInactive
}

// Salesperson is a field agent tracked by position and status. Position is
// nullable until the first report and both coordinates are always set
// together.
type Salesperson struct {
	ID          uint       `json:"id" gorm:"primaryKey"`
	Name        string     `json:"name" gorm:"not null;index"`
	Phone       *string    `json:"phone,omitempty"`
	Email       *string    `json:"email,omitempty"`
	Latitude    *float64   `json:"latitude"`
	Longitude   *float64   `json:"longitude"`
	Status      Status     `json:"status" gorm:"type:varchar(16);default:active;index"`
	LastUpdated *time.Time `json:"last_updated"`
	CreatedAt   time.Time  `json:"created_at"`
}

func (Salesperson) TableName() string {
	return "salespeople"
}

// HasPosition reports whether both coordinates are present.
func (s *Salesperson) HasPosition() bool {
	return s.Latitude != nil && s.Longitude != nil
}
