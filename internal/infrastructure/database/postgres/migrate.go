package postgres

import (
	"fmt"

	"salestrack/internal/database"
	"salestrack/internal/domain/client"
	"salestrack/internal/domain/order"
	"salestrack/internal/domain/ping"
	"salestrack/internal/domain/salesperson"
	"salestrack/internal/domain/visit"
	"salestrack/internal/logger"
)

// Migrate creates or updates the schema for all tracked entities.
func Migrate(db *database.Database) error {
	logger.Info("Running database migrations")

	if err := db.DB.AutoMigrate(
		&salesperson.Salesperson{},
		&client.Client{},
		&visit.Visit{},
		&order.Order{},
		&ping.Ping{},
	); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	logger.Info("Database migrations completed")
	return nil
}
