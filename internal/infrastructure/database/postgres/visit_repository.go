package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"salestrack/internal/database"
	"salestrack/internal/domain/visit"
	appErrors "salestrack/pkg/errors"
)

type VisitRepository struct {
	db *database.Database
}

func NewVisitRepository(db *database.Database) *VisitRepository {
	return &VisitRepository{db: db}
}

func (r *VisitRepository) List(ctx context.Context) ([]visit.Visit, error) {
	var visits []visit.Visit
	err := r.db.DB.WithContext(ctx).
		Table("visits").
		Select("visits.*, COALESCE(s.name, '') AS salesperson_name").
		Joins("LEFT JOIN salespeople s ON visits.salesperson_id = s.id").
		Order("visits.created_at DESC").
		Scan(&visits).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list visits: %w", err)
	}

	return visits, nil
}

func (r *VisitRepository) ListBySalesperson(ctx context.Context, salespersonID uint) ([]visit.Visit, error) {
	var visits []visit.Visit
	err := r.db.DB.WithContext(ctx).
		Table("visits").
		Select("visits.*, COALESCE(s.name, '') AS salesperson_name").
		Joins("LEFT JOIN salespeople s ON visits.salesperson_id = s.id").
		Where("visits.salesperson_id = ?", salespersonID).
		Order("visits.created_at DESC").
		Scan(&visits).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list visits for salesperson: %w", err)
	}

	return visits, nil
}

func (r *VisitRepository) GetByID(ctx context.Context, id uint) (*visit.Visit, error) {
	var v visit.Visit
	err := r.db.DB.WithContext(ctx).
		Where("id = ?", id).
		First(&v).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, appErrors.NewAppError("VISIT_NOT_FOUND", "Visit not found", appErrors.ErrVisitNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get visit: %w", err)
	}

	return &v, nil
}

func (r *VisitRepository) Create(ctx context.Context, v *visit.Visit) error {
	v.CreatedAt = time.Now()
	if v.Status == "" {
		v.Status = visit.StatusPending
	}

	if err := r.db.DB.WithContext(ctx).Create(v).Error; err != nil {
		return fmt.Errorf("failed to create visit: %w", err)
	}

	return nil
}

func (r *VisitRepository) UpdateStatus(ctx context.Context, id uint, status visit.Status, completedAt *time.Time) error {
	updates := map[string]interface{}{
		"status": status,
	}
	if completedAt != nil {
		updates["completed_at"] = *completedAt
	}

	result := r.db.DB.WithContext(ctx).
		Model(&visit.Visit{}).
		Where("id = ?", id).
		Updates(updates)

	if result.Error != nil {
		return fmt.Errorf("failed to update visit status: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return appErrors.NewAppError("VISIT_NOT_FOUND", "Visit not found", appErrors.ErrVisitNotFound)
	}

	return nil
}

func (r *VisitRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.DB.WithContext(ctx).
		Where("id = ?", id).
		Delete(&visit.Visit{})

	if result.Error != nil {
		return fmt.Errorf("failed to delete visit: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return appErrors.NewAppError("VISIT_NOT_FOUND", "Visit not found", appErrors.ErrVisitNotFound)
	}

	return nil
}
