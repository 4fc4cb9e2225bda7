package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"salestrack/internal/database"
	"salestrack/internal/domain/order"
	appErrors "salestrack/pkg/errors"
)

type OrderRepository struct {
	db *database.Database
}

func NewOrderRepository(db *database.Database) *OrderRepository {
	return &OrderRepository{db: db}
}

func (r *OrderRepository) List(ctx context.Context) ([]order.Order, error) {
	var orders []order.Order
	err := r.db.DB.WithContext(ctx).
		Table("orders").
		Select("orders.*, COALESCE(s.name, '') AS salesperson_name").
		Joins("LEFT JOIN salespeople s ON orders.salesperson_id = s.id").
		Order("orders.created_at DESC").
		Scan(&orders).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}

	return orders, nil
}

func (r *OrderRepository) ListBySalesperson(ctx context.Context, salespersonID uint) ([]order.Order, error) {
	var orders []order.Order
	err := r.db.DB.WithContext(ctx).
		Table("orders").
		Select("orders.*, COALESCE(s.name, '') AS salesperson_name").
		Joins("LEFT JOIN salespeople s ON orders.salesperson_id = s.id").
		Where("orders.salesperson_id = ?", salespersonID).
		Order("orders.created_at DESC").
		Scan(&orders).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list orders for salesperson: %w", err)
	}

	return orders, nil
}

func (r *OrderRepository) GetByID(ctx context.Context, id uint) (*order.Order, error) {
	var o order.Order
	err := r.db.DB.WithContext(ctx).
		Where("id = ?", id).
		First(&o).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, appErrors.NewAppError("ORDER_NOT_FOUND", "Order not found", appErrors.ErrOrderNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get order: %w", err)
	}

	return &o, nil
}

func (r *OrderRepository) Create(ctx context.Context, o *order.Order) error {
	o.CreatedAt = time.Now()
	if o.Status == "" {
		o.Status = order.StatusPending
	}

	if err := r.db.DB.WithContext(ctx).Create(o).Error; err != nil {
		return fmt.Errorf("failed to create order: %w", err)
	}

	return nil
}

func (r *OrderRepository) UpdateStatus(ctx context.Context, id uint, status order.Status) error {
	result := r.db.DB.WithContext(ctx).
		Model(&order.Order{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status": status,
		})

	if result.Error != nil {
		return fmt.Errorf("failed to update order status: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return appErrors.NewAppError("ORDER_NOT_FOUND", "Order not found", appErrors.ErrOrderNotFound)
	}

	return nil
}

func (r *OrderRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.DB.WithContext(ctx).
		Where("id = ?", id).
		Delete(&order.Order{})

	if result.Error != nil {
		return fmt.Errorf("failed to delete order: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return appErrors.NewAppError("ORDER_NOT_FOUND", "Order not found", appErrors.ErrOrderNotFound)
	}

	return nil
}
