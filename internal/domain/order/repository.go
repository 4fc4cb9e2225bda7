package order

import (
	"context"
)

// Repository is the persistence contract for orders. List returns the full
// collection ordered by creation time descending with the owning
// salesperson's name joined in.
type Repository interface {
	List(ctx context.Context) ([]Order, error)
	ListBySalesperson(ctx context.Context, salespersonID uint) ([]Order, error)
	GetByID(ctx context.Context, id uint) (*Order, error)
	Create(ctx context.Context, o *Order) error
	UpdateStatus(ctx context.Context, id uint, status Status) error
	Delete(ctx context.Context, id uint) error
}
