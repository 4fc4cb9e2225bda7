package client

import (
	"context"

	"go.uber.org/zap"

	domain "salestrack/internal/domain/client"
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

func (s *Service) List(ctx context.Context) ([]domain.Client, error) {
	return s.repo.List(ctx)
}

func (s *Service) Create(ctx context.Context, req *CreateClientRequest) (*domain.Client, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, appErrors.NewAppError("VALIDATION_ERROR", "Invalid input", err)
	}

	owner, err := s.salespersonRepo.GetByID(ctx, req.SalespersonID)
	if err != nil {
		return nil, err
	}

	c := &domain.Client{
		SalespersonID: owner.ID,
		Name:          utils.SanitizeString(req.Name),
		Latitude:      *req.Latitude,
		Longitude:     *req.Longitude,
	}
	if address := utils.SanitizeString(req.Address); address != "" {
		c.Address = &address
	}
	if phone := utils.SanitizePhone(req.Phone); phone != "" {
		c.Phone = &phone
	}
	if notes := utils.SanitizeText(req.Notes); notes != "" {
		c.Notes = &notes
	}

	if err := s.repo.Create(ctx, c); err != nil {
		return nil, err
	}

	logger.Info("Client registered",
		zap.Uint("client_id", c.ID),
		zap.Uint("salesperson_id", c.SalespersonID),
	)

	s.broker.Publish(feed.Event{
		Collection: feed.CollectionClients,
		Type:       feed.EventInsert,
		Payload:    feed.MarshalPayload(c),
	})

	return c, nil
}

func (s *Service) Delete(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	logger.Info("Client deleted", zap.Uint("client_id", id))

	s.broker.Publish(feed.Event{
		Collection: feed.CollectionClients,
		Type:       feed.EventDelete,
	})

	return nil
}
