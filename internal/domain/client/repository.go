package client

import (
	"context"
)

// Repository is the persistence contract for clients. List returns the full
// collection ordered by creation time descending with the owning
// salesperson's name joined in.
type Repository interface {
	List(ctx context.Context) ([]Client, error)
	GetByID(ctx context.Context, id uint) (*Client, error)
	Create(ctx context.Context, c *Client) error
	Delete(ctx context.Context, id uint) error
}
