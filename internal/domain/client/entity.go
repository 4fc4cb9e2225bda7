package client

import (
	"time"
)

// Client is a customer registered by a salesperson during field work.
// Unlike Salesperson, the position is required at creation.
type Client struct {
	ID            uint      `json:"id" gorm:"primaryKey"`
	SalespersonID uint      `json:"salesperson_id" gorm:"not null;index"`
	Name          string    `json:"name" gorm:"not null"`
	Address       *string   `json:"address,omitempty"`
	Phone         *string   `json:"phone,omitempty"`
	Notes         *string   `json:"notes,omitempty"`
	Latitude      float64   `json:"latitude" gorm:"not null"`
	Longitude     float64   `json:"longitude" gorm:"not null"`
	CreatedAt     time.Time `json:"created_at" gorm:"index"`

	// Joined from the owning salesperson; not a column.
	SalespersonName string `json:"salesperson_name" gorm:"->;-:migration"`
}

func (Client) TableName() string {
	return "clients"
}
