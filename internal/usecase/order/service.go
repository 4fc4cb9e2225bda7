package order

import (
	"context"

	"go.uber.org/zap"

	domain "salestrack/internal/domain/order"
	"salestrack/internal/domain/salesperson"
	"salestrack/internal/feed"
	"salestrack/internal/logger"
	appErrors "salestrack/pkg/errors"
	"salestrack/pkg/utils"
)

type Service struct {
	repo            domain.Repository
	salespersonRepo salesperson.Repository
	broker          feed.Broker
}

func NewService(repo domain.Repository, salespersonRepo salesperson.Repository, broker feed.Broker) *Service {
	return &Service{
		repo:            repo,
		salespersonRepo: salespersonRepo,
		broker:          broker,
	}
}

func (s *Service) List(ctx context.Context) ([]domain.Order, error) {
	return s.repo.List(ctx)
}

func (s *Service) ListBySalesperson(ctx context.Context, salespersonID uint) ([]domain.Order, error) {
	return s.repo.ListBySalesperson(ctx, salespersonID)
}

func (s *Service) Create(ctx context.Context, req *CreateOrderRequest) (*domain.Order, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, appErrors.NewAppError("VALIDATION_ERROR", "Invalid input", err)
	}

	owner, err := s.salespersonRepo.GetByID(ctx, req.SalespersonID)
	if err != nil {
		return nil, err
	}

	total := 0.0
	if req.TotalAmount != nil && *req.TotalAmount > 0 {
		total = *req.TotalAmount
	}

	o := &domain.Order{
		SalespersonID: owner.ID,
		VisitID:       req.VisitID,
		ClientName:    utils.SanitizeString(req.ClientName),
		TotalAmount:   total,
		Status:        domain.StatusPending,
	}
	if products := utils.SanitizeText(req.Products); products != "" {
		o.Products = &products
	}

	if err := s.repo.Create(ctx, o); err != nil {
		return nil, err
	}

	logger.Info("Order created",
		zap.Uint("order_id", o.ID),
		zap.Uint("salesperson_id", o.SalespersonID),
		zap.Float64("total_amount", o.TotalAmount),
	)

	s.broker.Publish(feed.Event{
		Collection: feed.CollectionOrders,
		Type:       feed.EventInsert,
		Payload:    feed.MarshalPayload(o),
	})

	return o, nil
}

// UpdateStatus applies a status transition. "completed" is terminal: no
// further transition is accepted past it.
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
		return appErrors.NewAppError("ORDER_COMPLETED", "Completed orders cannot be reopened", appErrors.ErrInvalidStatus)
	}

	if err := s.repo.UpdateStatus(ctx, id, target); err != nil {
		return err
	}

	s.broker.Publish(feed.Event{
		Collection: feed.CollectionOrders,
		Type:       feed.EventUpdate,
	})

	return nil
}

func (s *Service) Delete(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	logger.Info("Order deleted", zap.Uint("order_id", id))

	s.broker.Publish(feed.Event{
		Collection: feed.CollectionOrders,
		Type:       feed.EventDelete,
	})

	return nil
}
