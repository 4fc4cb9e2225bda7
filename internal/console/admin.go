package console

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"salestrack/internal/domain/order"
	"salestrack/internal/domain/visit"
	"salestrack/internal/geomap"
	"salestrack/internal/logger"
	"salestrack/internal/remote"
	orderuc "salestrack/internal/usecase/order"
	salespersonuc "salestrack/internal/usecase/salesperson"
	visituc "salestrack/internal/usecase/visit"
)

// Confirmer gates destructive actions behind a user prompt.
type Confirmer interface {
	Confirm(prompt string) bool
}

// ConfirmerFunc adapts a function to the Confirmer interface.
type ConfirmerFunc func(prompt string) bool

func (f ConfirmerFunc) Confirm(prompt string) bool {
	return f(prompt)
}

var errFormIncomplete = errors.New("form is incomplete")

// Admin is the back-office dashboard: full visibility over every agent,
// visit and order, plus the management mutations. Every successful write is
// followed by a refetch of the affected collection; a failed write leaves
// both the replica and the open form untouched.
type Admin struct {
	Store     *Store
	View      AdminView
	fetcher   *Fetcher
	refresher *Refresher
	remote    remote.Store
	confirmer Confirmer
}

func NewAdmin(remoteStore remote.Store, source FeedSource, cfg RefreshConfig, confirmer Confirmer) *Admin {
	store := NewStore()
	fetcher := NewFetcher(store, remoteStore)
	return &Admin{
		Store:     store,
		fetcher:   fetcher,
		refresher: NewRefresher(fetcher, source, cfg.PollInterval),
		remote:    remoteStore,
		confirmer: confirmer,
	}
}

// Start brings the dashboard live; see Refresher for the refresh contract.
func (a *Admin) Start(ctx context.Context) {
	a.refresher.Start(ctx)
}

// Stop tears the dashboard down. Idempotent.
func (a *Admin) Stop() {
	a.refresher.Stop()
}

// MapView resolves the dashboard camera from the current replicas: every
// agent with a known position plus every registered client stays in frame.
// Callers recompute it whenever the mappable set changes, typically after
// each refetch.
func (a *Admin) MapView(viewport geomap.Viewport) geomap.View {
	points := geomap.SalespersonPoints(a.Store.Salespeople())
	points = append(points, geomap.ClientPoints(a.Store.Clients())...)
	return geomap.FitBounds(points, geomap.DefaultPadding, geomap.MaxFitZoom, viewport)
}

func (a *Admin) CreateSalesperson(ctx context.Context) error {
	form := &a.View.SalespersonForm
	if !form.CanSubmit() {
		return errFormIncomplete
	}

	_, err := a.remote.CreateSalesperson(ctx, &salespersonuc.CreateSalespersonRequest{
		Name:      form.Name,
		Phone:     form.Phone,
		Email:     form.Email,
		Status:    form.Status,
		Latitude:  form.Latitude,
		Longitude: form.Longitude,
	})
	if err != nil {
		logger.Error("Failed to create salesperson", zap.Error(err))
		return err
	}

	a.View.CloseDialog()
	a.fetcher.FetchSalespeople(ctx)
	return nil
}

func (a *Admin) UpdateSalesperson(ctx context.Context) error {
	form := &a.View.SalespersonForm
	if !form.CanSubmit() || a.View.EditingID == 0 {
		return errFormIncomplete
	}

	_, err := a.remote.UpdateSalesperson(ctx, a.View.EditingID, &salespersonuc.UpdateSalespersonRequest{
		Name:   form.Name,
		Phone:  form.Phone,
		Email:  form.Email,
		Status: form.Status,
	})
	if err != nil {
		logger.Error("Failed to update salesperson", zap.Error(err))
		return err
	}

	a.View.CloseDialog()
	a.fetcher.FetchSalespeople(ctx)
	return nil
}

// SetSalespersonLocation is the admin's direct position edit.
func (a *Admin) SetSalespersonLocation(ctx context.Context) error {
	form := &a.View.LocationForm
	if !form.CanSubmit() || a.View.EditingID == 0 {
		return errFormIncomplete
	}

	err := a.remote.UpdateSalespersonLocation(ctx, a.View.EditingID, *form.Latitude, *form.Longitude)
	if err != nil {
		logger.Error("Failed to set salesperson location", zap.Error(err))
		return err
	}

	a.View.CloseDialog()
	a.fetcher.FetchSalespeople(ctx)
	return nil
}

func (a *Admin) DeleteSalesperson(ctx context.Context, id uint) error {
	if !a.confirmer.Confirm("¿Está seguro de eliminar este vendedor?") {
		return nil
	}

	if err := a.remote.DeleteSalesperson(ctx, id); err != nil {
		logger.Error("Failed to delete salesperson", zap.Error(err))
		return err
	}

	a.fetcher.FetchSalespeople(ctx)
	a.fetcher.FetchVisits(ctx, 0)
	a.fetcher.FetchOrders(ctx, 0)
	return nil
}

func (a *Admin) CreateVisit(ctx context.Context) error {
	form := &a.View.VisitForm
	if !form.CanSubmit() {
		return errFormIncomplete
	}

	_, err := a.remote.CreateVisit(ctx, &visituc.CreateVisitRequest{
		SalespersonID: form.SalespersonID,
		ClientName:    form.ClientName,
		Address:       form.Address,
		Notes:         form.Notes,
		VisitType:     form.VisitType,
	})
	if err != nil {
		logger.Error("Failed to create visit", zap.Error(err))
		return err
	}

	a.View.CloseDialog()
	a.fetcher.FetchVisits(ctx, 0)
	return nil
}

func (a *Admin) UpdateVisitStatus(ctx context.Context, id uint, status visit.Status) error {
	if _, err := a.remote.UpdateVisitStatus(ctx, id, status); err != nil {
		logger.Error("Failed to update visit status", zap.Error(err))
		return err
	}

	a.fetcher.FetchVisits(ctx, 0)
	return nil
}

func (a *Admin) DeleteVisit(ctx context.Context, id uint) error {
	if !a.confirmer.Confirm("¿Está seguro de eliminar esta visita?") {
		return nil
	}

	if err := a.remote.DeleteVisit(ctx, id); err != nil {
		logger.Error("Failed to delete visit", zap.Error(err))
		return err
	}

	a.fetcher.FetchVisits(ctx, 0)
	return nil
}

func (a *Admin) CreateOrder(ctx context.Context) error {
	form := &a.View.OrderForm
	if !form.CanSubmit() {
		return errFormIncomplete
	}

	_, err := a.remote.CreateOrder(ctx, &orderuc.CreateOrderRequest{
		SalespersonID: form.SalespersonID,
		VisitID:       form.VisitID,
		ClientName:    form.ClientName,
		Products:      form.Products,
		TotalAmount:   form.TotalAmount,
	})
	if err != nil {
		logger.Error("Failed to create order", zap.Error(err))
		return err
	}

	a.View.CloseDialog()
	a.fetcher.FetchOrders(ctx, 0)
	return nil
}

func (a *Admin) UpdateOrderStatus(ctx context.Context, id uint, status order.Status) error {
	if _, err := a.remote.UpdateOrderStatus(ctx, id, status); err != nil {
		logger.Error("Failed to update order status", zap.Error(err))
		return err
	}

	a.fetcher.FetchOrders(ctx, 0)
	return nil
}

func (a *Admin) DeleteOrder(ctx context.Context, id uint) error {
	if !a.confirmer.Confirm("¿Está seguro de eliminar este pedido?") {
		return nil
	}

	if err := a.remote.DeleteOrder(ctx, id); err != nil {
		logger.Error("Failed to delete order", zap.Error(err))
		return err
	}

	a.fetcher.FetchOrders(ctx, 0)
	return nil
}

func (a *Admin) DeleteClient(ctx context.Context, id uint) error {
	if !a.confirmer.Confirm("¿Está seguro de eliminar este cliente?") {
		return nil
	}

	if err := a.remote.DeleteClient(ctx, id); err != nil {
		logger.Error("Failed to delete client", zap.Error(err))
		return err
	}

	a.fetcher.FetchClients(ctx)
	return nil
}
