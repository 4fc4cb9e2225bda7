package postgres

import (
	"context"
	"fmt"

	"salestrack/internal/database"
	"salestrack/internal/domain/ping"
)

type PingRepository struct {
	db *database.Database
}

func NewPingRepository(db *database.Database) *PingRepository {
	return &PingRepository{db: db}
}

func (r *PingRepository) Create(ctx context.Context, p *ping.Ping) error {
	if err := r.db.DB.WithContext(ctx).Create(p).Error; err != nil {
		return fmt.Errorf("failed to store location ping: %w", err)
	}

	return nil
}
