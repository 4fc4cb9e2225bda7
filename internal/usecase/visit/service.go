package visit

import (
	"context"
	"time"

	"go.uber.org/zap"

	"salestrack/internal/domain/salesperson"
	domain "salestrack/internal/domain/visit"
	"salestrack/internal/feed"
	"salestrack/internal/logger"
	appErrors "salestrack/pkg/errors"
	"salestrack/pkg/utils"
)

type Service struct {
	repo            domain.Repository
	salespersonRepo salesperson.Repository
	broker          feed.Broker
	now             func() time.Time
}

func NewService(repo domain.Repository, salespersonRepo salesperson.Repository, broker feed.Broker) *Service {
	return &Service{
		repo:            repo,
		salespersonRepo: salespersonRepo,
		broker:          broker,
		now:             time.Now,
	}
}

func (s *Service) List(ctx context.Context) ([]domain.Visit, error) {
	return s.repo.List(ctx)
}

func (s *Service) ListBySalesperson(ctx context.Context, salespersonID uint) ([]domain.Visit, error) {
	return s.repo.ListBySalesperson(ctx, salespersonID)
}

func (s *Service) Create(ctx context.Context, req *CreateVisitRequest) (*domain.Visit, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, appErrors.NewAppError("VALIDATION_ERROR", "Invalid input", err)
	}

	owner, err := s.salespersonRepo.GetByID(ctx, req.SalespersonID)
	if err != nil {
		return nil, err
	}

	visitType := domain.VisitType(req.VisitType)
	if visitType == "" {
		visitType = domain.TypeVisit
	}

	v := &domain.Visit{
		SalespersonID: owner.ID,
		ClientName:    utils.SanitizeString(req.ClientName),
		VisitType:     visitType,
		Status:        domain.StatusPending,
	}
	if address := utils.SanitizeString(req.Address); address != "" {
		v.Address = &address
	}
	if notes := utils.SanitizeText(req.Notes); notes != "" {
		v.Notes = &notes
	}

	if err := s.repo.Create(ctx, v); err != nil {
		return nil, err
	}

	logger.Info("Visit created",
		zap.Uint("visit_id", v.ID),
		zap.Uint("salesperson_id", v.SalespersonID),
	)

	s.broker.Publish(feed.Event{
		Collection: feed.CollectionVisits,
		Type:       feed.EventInsert,
		Payload:    feed.MarshalPayload(v),
	})

	return v, nil
}

// UpdateStatus applies a status transition. Reaching "completed" stamps the
// completion timestamp exactly once: an already-completed visit keeps its
// original timestamp, and completed visits never transition elsewhere.
func (s *Service) UpdateStatus(ctx context.Context, id uint, req *UpdateStatusRequest) error {
	if err := utils.ValidateStruct(req); err != nil {
		return appErrors.NewAppError("VALIDATION_ERROR", "Invalid input", err)
	}

	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	target := domain.Status(req.Status)
	if existing.Status == domain.StatusCompleted && target != domain.StatusCompleted {
		return appErrors.NewAppError("VISIT_COMPLETED", "Completed visits cannot be reopened", appErrors.ErrInvalidStatus)
	}

	var completedAt *time.Time
	if target == domain.StatusCompleted && existing.CompletedAt == nil {
		now := s.now()
		completedAt = &now
	}

	if err := s.repo.UpdateStatus(ctx, id, target, completedAt); err != nil {
		return err
	}

	s.broker.Publish(feed.Event{
		Collection: feed.CollectionVisits,
		Type:       feed.EventUpdate,
	})

	return nil
}

func (s *Service) Delete(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	logger.Info("Visit deleted", zap.Uint("visit_id", id))

	s.broker.Publish(feed.Event{
		Collection: feed.CollectionVisits,
		Type:       feed.EventDelete,
	})

	return nil
}
