package visit

import (
	"context"
	"time"
)

// Repository is the persistence contract for visits. List returns the full
// collection ordered by creation time descending with the owning
// salesperson's name joined in.
type Repository interface {
	List(ctx context.Context) ([]Visit, error)
	ListBySalesperson(ctx context.Context, salespersonID uint) ([]Visit, error)
	GetByID(ctx context.Context, id uint) (*Visit, error)
	Create(ctx context.Context, v *Visit) error
	UpdateStatus(ctx context.Context, id uint, status Status, completedAt *time.Time) error
	Delete(ctx context.Context, id uint) error
}
