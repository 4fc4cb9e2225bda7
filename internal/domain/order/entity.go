package order

import (
	"time"
)

type Status string

const (
	StatusPending    Status = "pending"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
)

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusInProgress, StatusCompleted:
		return true
	}
	return false
}

// Order is a logged sale with a monetary total. TotalAmount is never
// negative; unparsable input defaults to zero at the edge.
type Order struct {
	ID            uint      `json:"id" gorm:"primaryKey"`
	SalespersonID uint      `json:"salesperson_id" gorm:"not null;index"`
	VisitID       *uint     `json:"visit_id,omitempty"`
	ClientName    string    `json:"client_name" gorm:"not null"`
	Products      *string   `json:"products,omitempty"`
	TotalAmount   float64   `json:"total_amount" gorm:"default:0"`
	Status        Status    `json:"status" gorm:"type:varchar(16);default:pending;index"`
	CreatedAt     time.Time `json:"created_at" gorm:"index"`

	// Joined from the owning salesperson; not a column.
	SalespersonName string `json:"salesperson_name" gorm:"->;-:migration"`
}

func (Order) TableName() string {
	return "orders"
}
