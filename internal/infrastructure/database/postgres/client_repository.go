package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"salestrack/internal/database"
	"salestrack/internal/domain/client"
	appErrors "salestrack/pkg/errors"
)

type ClientRepository struct {
	db *database.Database
}

func NewClientRepository(db *database.Database) *ClientRepository {
	return &ClientRepository{db: db}
}

func (r *ClientRepository) List(ctx context.Context) ([]client.Client, error) {
	var clients []client.Client
	err := r.db.DB.WithContext(ctx).
		Table("clients").
		Select("clients.*, COALESCE(s.name, '') AS salesperson_name").
		Joins("LEFT JOIN salespeople s ON clients.salesperson_id = s.id").
		Order("clients.created_at DESC").
		Scan(&clients).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list clients: %w", err)
	}

	return clients, nil
}

func (r *ClientRepository) GetByID(ctx context.Context, id uint) (*client.Client, error) {
	var c client.Client
	err := r.db.DB.WithContext(ctx).
		Where("id = ?", id).
		First(&c).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, appErrors.NewAppError("CLIENT_NOT_FOUND", "Client not found", appErrors.ErrClientNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get client: %w", err)
	}

	return &c, nil
}

func (r *ClientRepository) Create(ctx context.Context, c *client.Client) error {
	c.CreatedAt = time.Now()

	if err := r.db.DB.WithContext(ctx).Create(c).Error; err != nil {
		return fmt.Errorf("failed to create client: %w", err)
	}

	return nil
}

func (r *ClientRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.DB.WithContext(ctx).
		Where("id = ?", id).
		Delete(&client.Client{})

	if result.Error != nil {
		return fmt.Errorf("failed to delete client: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return appErrors.NewAppError("CLIENT_NOT_FOUND", "Client not found", appErrors.ErrClientNotFound)
	}

	return nil
}
