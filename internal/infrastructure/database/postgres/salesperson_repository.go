package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"salestrack/internal/database"
	"salestrack/internal/domain/salesperson"
	appErrors "salestrack/pkg/errors"
)

type SalespersonRepository struct {
	db *database.Database
}

func NewSalespersonRepository(db *database.Database) *SalespersonRepository {
	return &SalespersonRepository{db: db}
}

func (r *SalespersonRepository) List(ctx context.Context) ([]salesperson.Salesperson, error) {
	var people []salesperson.Salesperson
	err := r.db.DB.WithContext(ctx).
		Order("name ASC").
		Find(&people).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list salespeople: %w", err)
	}

	return people, nil
}

func (r *SalespersonRepository) GetByID(ctx context.Context, id uint) (*salesperson.Salesperson, error) {
	var sp salesperson.Salesperson
	err := r.db.DB.WithContext(ctx).
		Where("id = ?", id).
		First(&sp).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, appErrors.NewAppError("SALESPERSON_NOT_FOUND", "Salesperson not found", appErrors.ErrSalespersonNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get salesperson: %w", err)
	}

	return &sp, nil
}

func (r *SalespersonRepository) Create(ctx context.Context, sp *salesperson.Salesperson) error {
	sp.CreatedAt = time.Now()

	if err := r.db.DB.WithContext(ctx).Create(sp).Error; err != nil {
		return fmt.Errorf("failed to create salesperson: %w", err)
	}

	return nil
}

func (r *SalespersonRepository) Update(ctx context.Context, sp *salesperson.Salesperson) error {
	result := r.db.DB.WithContext(ctx).
		Model(&salesperson.Salesperson{}).
		Where("id = ?", sp.ID).
		Updates(map[string]interface{}{
			"name":   sp.Name,
			"phone":  sp.Phone,
			"email":  sp.Email,
			"status": sp.Status,
		})

	if result.Error != nil {
		return fmt.Errorf("failed to update salesperson: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return appErrors.NewAppError("SALESPERSON_NOT_FOUND", "Salesperson not found", appErrors.ErrSalespersonNotFound)
	}

	return nil
}

func (r *SalespersonRepository) UpdatePosition(ctx context.Context, id uint, latitude, longitude float64, at time.Time) error {
	result := r.db.DB.WithContext(ctx).
		Model(&salesperson.Salesperson{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"latitude":     latitude,
			"longitude":    longitude,
			"last_updated": at,
		})

	if result.Error != nil {
		return fmt.Errorf("failed to update position: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return appErrors.NewAppError("SALESPERSON_NOT_FOUND", "Salesperson not found", appErrors.ErrSalespersonNotFound)
	}

	return nil
}

func (r *SalespersonRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.DB.WithContext(ctx).
		Where("id = ?", id).
		Delete(&salesperson.Salesperson{})

	if result.Error != nil {
		return fmt.Errorf("failed to delete salesperson: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return appErrors.NewAppError("SALESPERSON_NOT_FOUND", "Salesperson not found", appErrors.ErrSalespersonNotFound)
	}

	return nil
}
