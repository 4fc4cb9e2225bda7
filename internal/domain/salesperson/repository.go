package salesperson

import (
	"context"
	"time"
)

// Repository is the persistence contract for salespeople. List returns the
// full collection ordered by name ascending.
type Repository interface {
	List(ctx context.Context) ([]Salesperson, error)
	GetByID(ctx context.Context, id uint) (*Salesperson, error)
	Create(ctx context.Context, sp *Salesperson) error
	Update(ctx context.Context, sp *Salesperson) error
	UpdatePosition(ctx context.Context, id uint, latitude, longitude float64, at time.Time) error
	Delete(ctx context.Context, id uint) error
}
