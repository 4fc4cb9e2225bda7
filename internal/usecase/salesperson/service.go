package salesperson

import (
	"context"
	"time"

	"go.uber.org/zap"

	domain "salestrack/internal/domain/salesperson"
	"salestrack/internal/feed"
	"salestrack/internal/logger"
	appErrors "salestrack/pkg/errors"
	"salestrack/pkg/utils"
)

type Service struct {
	repo   domain.Repository
	broker feed.Broker
}

func NewService(repo domain.Repository, broker feed.Broker) *Service {
	return &Service{repo: repo, broker: broker}
}

func (s *Service) List(ctx context.Context) ([]domain.Salesperson, error) {
	return s.repo.List(ctx)
}

func (s *Service) Get(ctx context.Context, id uint) (*domain.Salesperson, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) Create(ctx context.Context, req *CreateSalespersonRequest) (*domain.Salesperson, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, appErrors.NewAppError("VALIDATION_ERROR", "Invalid input", err)
	}

	// Coordinates are either both present or both absent.
	if (req.Latitude == nil) != (req.Longitude == nil) {
		return nil, appErrors.NewAppError("PARTIAL_POSITION", "Latitude and longitude must be set together", appErrors.ErrPartialPosition)
	}

	status := domain.Status(req.Status)
	if status == "" {
		status = domain.StatusActive
	}

	sp := &domain.Salesperson{
		Name:      utils.SanitizeString(req.Name),
		Status:    status,
		Latitude:  req.Latitude,
		Longitude: req.Longitude,
	}
	if phone := utils.SanitizePhone(req.Phone); phone != "" {
		sp.Phone = &phone
	}
	if email := utils.SanitizeString(req.Email); email != "" {
		sp.Email = &email
	}
	if sp.HasPosition() {
		now := time.Now()
		sp.LastUpdated = &now
	}

	if err := s.repo.Create(ctx, sp); err != nil {
		return nil, err
	}

	logger.Info("Salesperson created",
		zap.Uint("salesperson_id", sp.ID),
		zap.String("name", sp.Name),
	)

	s.broker.Publish(feed.Event{
		Collection: feed.CollectionSalespeople,
		Type:       feed.EventInsert,
		Payload:    feed.MarshalPayload(sp),
	})

	return sp, nil
}

func (s *Service) Update(ctx context.Context, id uint, req *UpdateSalespersonRequest) (*domain.Salesperson, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, appErrors.NewAppError("VALIDATION_ERROR", "Invalid input", err)
	}

	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	existing.Name = utils.SanitizeString(req.Name)
	if phone := utils.SanitizePhone(req.Phone); phone != "" {
		existing.Phone = &phone
	} else {
		existing.Phone = nil
	}
	if email := utils.SanitizeString(req.Email); email != "" {
		existing.Email = &email
	} else {
		existing.Email = nil
	}
	if req.Status != "" {
		existing.Status = domain.Status(req.Status)
	}

	if err := s.repo.Update(ctx, existing); err != nil {
		return nil, err
	}

	s.broker.Publish(feed.Event{
		Collection: feed.CollectionSalespeople,
		Type:       feed.EventUpdate,
		Payload:    feed.MarshalPayload(existing),
	})

	return existing, nil
}

// UpdateLocation overwrites the last-known position and its timestamp. Used
// by the admin location dialog and by the field agent's REST pushes.
func (s *Service) UpdateLocation(ctx context.Context, id uint, req *UpdateLocationRequest) error {
	if err := utils.ValidateStruct(req); err != nil {
		return appErrors.NewAppError("VALIDATION_ERROR", "Invalid input", err)
	}

	now := time.Now()
	if err := s.repo.UpdatePosition(ctx, id, *req.Latitude, *req.Longitude, now); err != nil {
		return err
	}

	logger.Debug("Position updated",
		zap.Uint("salesperson_id", id),
		zap.Float64("latitude", *req.Latitude),
		zap.Float64("longitude", *req.Longitude),
	)

	s.broker.Publish(feed.Event{
		Collection: feed.CollectionSalespeople,
		Type:       feed.EventUpdate,
	})

	return nil
}

func (s *Service) Delete(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	logger.Info("Salesperson deleted", zap.Uint("salesperson_id", id))

	s.broker.Publish(feed.Event{
		Collection: feed.CollectionSalespeople,
		Type:       feed.EventDelete,
	})

	return nil
}
