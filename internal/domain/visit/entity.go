package visit

import (
	"time"
)

type VisitType string

const (
	TypeVisit      VisitType = "visit"
	TypeDelivery   VisitType = "delivery"
	TypeCollection VisitType = "collection"
)

func (t VisitType) Valid() bool {
	switch t {
	case TypeVisit, TypeDelivery, TypeCollection:
		return true
	}
	return false
}

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

// Visit is a logged field interaction with a customer. CompletedAt is set
// exactly once, when the visit first reaches StatusCompleted.
type Visit struct {
	ID            uint       `json:"id" gorm:"primaryKey"`
	SalespersonID uint       `json:"salesperson_id" gorm:"not null;index"`
	ClientName    string     `json:"client_name" gorm:"not null"`
	Address       *string    `json:"address,omitempty"`
	Notes         *string    `json:"notes,omitempty"`
	VisitType     VisitType  `json:"visit_type" gorm:"type:varchar(16);default:visit"`
	Status        Status     `json:"status" gorm:"type:varchar(16);default:pending;index"`
	CreatedAt     time.Time  `json:"created_at" gorm:"index"`
	CompletedAt   *time.Time `json:"completed_at"`

	// Joined from the owning salesperson; not a column.
	SalespersonName string `json:"salesperson_name" gorm:"->;-:migration"`
}

func (Visit) TableName() string {
	return "visits"
}
