package console

import (
	"context"
	"time"

	"go.uber.org/zap"

	orderdomain "salestrack/internal/domain/order"
	visitdomain "salestrack/internal/domain/visit"
	"salestrack/internal/geo"
	"salestrack/internal/logger"
	"salestrack/internal/remote"
	clientuc "salestrack/internal/usecase/client"
	orderuc "salestrack/internal/usecase/order"
	visituc "salestrack/internal/usecase/visit"
)

// Agent is the field console: one salesperson's own visits and orders, a
// client-registration form and GPS tracking. It neither polls nor listens
// to the change feed; data refreshes on identity selection and after the
// agent's own writes.
type Agent struct {
	Store   *Store
	View    AgentView
	Tracker *Tracker
	fetcher *Fetcher
	remote  remote.Store
}

func NewAgent(remoteStore remote.Store, provider geo.Provider) *Agent {
	store := NewStore()
	return &Agent{
		Store:   store,
		Tracker: NewTracker(provider, remoteStore),
		fetcher: NewFetcher(store, remoteStore),
		remote:  remoteStore,
	}
}

// SelectSalesperson switches the console to another identity and refetches
// that agent's visits and orders. Selecting the current identity refetches
// anyway; the agent uses it as a manual refresh.
func (a *Agent) SelectSalesperson(ctx context.Context, id uint) {
	if a.View.SalespersonID != id {
		a.Tracker.StopTracking()
		a.View.Tracking = false
	}
	a.View.SalespersonID = id
	a.Refresh(ctx)
}

// Refresh refetches the selected agent's own collections.
func (a *Agent) Refresh(ctx context.Context) {
	if a.View.SalespersonID == 0 {
		return
	}
	a.fetcher.FetchSalespeople(ctx)
	a.fetcher.FetchVisits(ctx, a.View.SalespersonID)
	a.fetcher.FetchOrders(ctx, a.View.SalespersonID)
	a.fetcher.FetchClients(ctx)
}

func (a *Agent) CreateVisit(ctx context.Context) error {
	form := &a.View.VisitForm
	form.SalespersonID = a.View.SalespersonID
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

	a.View.VisitForm = VisitForm{}
	a.View.ActiveDialog = DialogNone
	a.fetcher.FetchVisits(ctx, a.View.SalespersonID)
	return nil
}

func (a *Agent) UpdateVisitStatus(ctx context.Context, id uint, status visitdomain.Status) error {
	if _, err := a.remote.UpdateVisitStatus(ctx, id, status); err != nil {
		logger.Error("Failed to update visit status", zap.Error(err))
		return err
	}

	a.fetcher.FetchVisits(ctx, a.View.SalespersonID)
	return nil
}

func (a *Agent) CreateOrder(ctx context.Context) error {
	form := &a.View.OrderForm
	form.SalespersonID = a.View.SalespersonID
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

	a.View.OrderForm = OrderForm{}
	a.View.ActiveDialog = DialogNone
	a.fetcher.FetchOrders(ctx, a.View.SalespersonID)
	return nil
}

func (a *Agent) UpdateOrderStatus(ctx context.Context, id uint, status orderdomain.Status) error {
	if _, err := a.remote.UpdateOrderStatus(ctx, id, status); err != nil {
		logger.Error("Failed to update order status", zap.Error(err))
		return err
	}

	a.fetcher.FetchOrders(ctx, a.View.SalespersonID)
	return nil
}

// RegisterClient records a customer met during field work. The position is
// mandatory; the UI pre-fills it from the last GPS fix.
func (a *Agent) RegisterClient(ctx context.Context) error {
	form := &a.View.ClientForm
	form.SalespersonID = a.View.SalespersonID
	if !form.CanSubmit() {
		return errFormIncomplete
	}

	_, err := a.remote.CreateClient(ctx, &clientuc.CreateClientRequest{
		SalespersonID: form.SalespersonID,
		Name:          form.Name,
		Address:       form.Address,
		Phone:         form.Phone,
		Notes:         form.Notes,
		Latitude:      form.Latitude,
		Longitude:     form.Longitude,
	})
	if err != nil {
		logger.Error("Failed to register client", zap.Error(err))
		return err
	}

	a.View.ClientForm = ClientForm{}
	a.View.ActiveDialog = DialogNone
	a.fetcher.FetchClients(ctx)
	return nil
}

// StartTracking begins continuous position reporting for the selected
// identity. A second call replaces the running watch.
func (a *Agent) StartTracking() error {
	if a.View.SalespersonID == 0 {
		return errFormIncomplete
	}
	if err := a.Tracker.StartTracking(a.View.SalespersonID); err != nil {
		return err
	}
	a.View.Tracking = true
	return nil
}

func (a *Agent) StopTracking() {
	a.Tracker.StopTracking()
	a.View.Tracking = false
}

// TodayVisits filters the replica down to visits created today, the agent
// screen's default view.
func (a *Agent) TodayVisits() []visitdomain.Visit {
	visits := a.Store.Visits()
	out := visits[:0]
	for _, v := range visits {
		if isToday(v.CreatedAt) {
			out = append(out, v)
		}
	}
	return out
}

func (a *Agent) TodayOrders() []orderdomain.Order {
	orders := a.Store.Orders()
	out := orders[:0]
	for _, o := range orders {
		if isToday(o.CreatedAt) {
			out = append(out, o)
		}
	}
	return out
}

func isToday(t time.Time) bool {
	now := time.Now()
	y1, m1, d1 := t.Local().Date()
	y2, m2, d2 := now.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}
