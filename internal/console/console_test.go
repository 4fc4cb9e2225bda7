package console

import (
	"context"
	"os"
	"sync"
	"testing"
	"time"

	"go.uber.org/zap"

	clientdomain "salestrack/internal/domain/client"
	orderdomain "salestrack/internal/domain/order"
	"salestrack/internal/domain/salesperson"
	visitdomain "salestrack/internal/domain/visit"
	"salestrack/internal/logger"
	clientuc "salestrack/internal/usecase/client"
	orderuc "salestrack/internal/usecase/order"
	salespersonuc "salestrack/internal/usecase/salesperson"
	visituc "salestrack/internal/usecase/visit"
)

func TestMain(m *testing.M) {
	logger.Logger = zap.NewNop()
	os.Exit(m.Run())
}

// fakeRemote is an in-memory Store with per-collection failure switches and
// call accounting.
type fakeRemote struct {
	mu sync.Mutex

	salespeople []salesperson.Salesperson
	visits      []visitdomain.Visit
	orders      []orderdomain.Order
	clients     []clientdomain.Client

	failSalespeople bool
	failVisits      bool

	listSalespeopleCalls int
	listVisitsCalls      int
	lastVisitsOwner      uint

	locationPushes []locationPush
}

type locationPush struct {
	id       uint
	lat, lng float64
}

type fakeError struct{ msg string }

func (e *fakeError) Error() string { return e.msg }

func (f *fakeRemote) ListSalespeople(context.Context) ([]salesperson.Salesperson, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.listSalespeopleCalls++
	if f.failSalespeople {
		return nil, &fakeError{"salespeople unavailable"}
	}
	out := make([]salesperson.Salesperson, len(f.salespeople))
	copy(out, f.salespeople)
	return out, nil
}

func (f *fakeRemote) CreateSalesperson(_ context.Context, req *salespersonuc.CreateSalespersonRequest) (*salesperson.Salesperson, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	sp := salesperson.Salesperson{
		ID:        uint(len(f.salespeople) + 1),
		Name:      req.Name,
		Status:    salesperson.StatusActive,
		Latitude:  req.Latitude,
		Longitude: req.Longitude,
		CreatedAt: time.Now(),
	}
	f.salespeople = append(f.salespeople, sp)
	return &sp, nil
}

func (f *fakeRemote) UpdateSalesperson(_ context.Context, id uint, req *salespersonuc.UpdateSalespersonRequest) (*salesperson.Salesperson, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for i := range f.salespeople {
		if f.salespeople[i].ID == id {
			f.salespeople[i].Name = req.Name
			return &f.salespeople[i], nil
		}
	}
	return nil, &fakeError{"salesperson not found"}
}

func (f *fakeRemote) UpdateSalespersonLocation(_ context.Context, id uint, latitude, longitude float64) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.locationPushes = append(f.locationPushes, locationPush{id: id, lat: latitude, lng: longitude})
	for i := range f.salespeople {
		if f.salespeople[i].ID == id {
			lat, lng := latitude, longitude
			f.salespeople[i].Latitude = &lat
			f.salespeople[i].Longitude = &lng
			return nil
		}
	}
	return &fakeError{"salesperson not found"}
}

func (f *fakeRemote) DeleteSalesperson(_ context.Context, id uint) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	for i := range f.salespeople {
		if f.salespeople[i].ID == id {
			f.salespeople = append(f.salespeople[:i], f.salespeople[i+1:]...)
			return nil
		}
	}
	return &fakeError{"salesperson not found"}
}

func (f *fakeRemote) ListVisits(_ context.Context, salespersonID uint) ([]visitdomain.Visit, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.listVisitsCalls++
	f.lastVisitsOwner = salespersonID
	if f.failVisits {
		return nil, &fakeError{"visits unavailable"}
	}

	out := make([]visitdomain.Visit, 0, len(f.visits))
	for _, v := range f.visits {
		if salespersonID == 0 || v.SalespersonID == salespersonID {
			out = append(out, v)
		}
	}
	return out, nil
}

func (f *fakeRemote) CreateVisit(_ context.Context, req *visituc.CreateVisitRequest) (*visitdomain.Visit, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	v := visitdomain.Visit{
		ID:            uint(len(f.visits) + 1),
		SalespersonID: req.SalespersonID,
		ClientName:    req.ClientName,
		Status:        visitdomain.StatusPending,
		CreatedAt:     time.Now(),
	}
	f.visits = append(f.visits, v)
	return &v, nil
}

func (f *fakeRemote) UpdateVisitStatus(_ context.Context, id uint, status visitdomain.Status) (*visitdomain.Visit, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for i := range f.visits {
		if f.visits[i].ID == id {
			f.visits[i].Status = status
			return &f.visits[i], nil
		}
	}
	return nil, &fakeError{"visit not found"}
}

func (f *fakeRemote) DeleteVisit(_ context.Context, id uint) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	for i := range f.visits {
		if f.visits[i].ID == id {
			f.visits = append(f.visits[:i], f.visits[i+1:]...)
			return nil
		}
	}
	return &fakeError{"visit not found"}
}

func (f *fakeRemote) ListOrders(_ context.Context, salespersonID uint) ([]orderdomain.Order, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	out := make([]orderdomain.Order, 0, len(f.orders))
	for _, o := range f.orders {
		if salespersonID == 0 || o.SalespersonID == salespersonID {
			out = append(out, o)
		}
	}
	return out, nil
}

func (f *fakeRemote) CreateOrder(_ context.Context, req *orderuc.CreateOrderRequest) (*orderdomain.Order, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	o := orderdomain.Order{
		ID:            uint(len(f.orders) + 1),
		SalespersonID: req.SalespersonID,
		ClientName:    req.ClientName,
		Status:        orderdomain.StatusPending,
		CreatedAt:     time.Now(),
	}
	if req.TotalAmount != nil && *req.TotalAmount > 0 {
		o.TotalAmount = *req.TotalAmount
	}
	f.orders = append(f.orders, o)
	return &o, nil
}

func (f *fakeRemote) UpdateOrderStatus(_ context.Context, id uint, status orderdomain.Status) (*orderdomain.Order, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for i := range f.orders {
		if f.orders[i].ID == id {
			f.orders[i].Status = status
			return &f.orders[i], nil
		}
	}
	return nil, &fakeError{"order not found"}
}

func (f *fakeRemote) DeleteOrder(_ context.Context, id uint) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	for i := range f.orders {
		if f.orders[i].ID == id {
			f.orders = append(f.orders[:i], f.orders[i+1:]...)
			return nil
		}
	}
	return &fakeError{"order not found"}
}

func (f *fakeRemote) ListClients(context.Context) ([]clientdomain.Client, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	out := make([]clientdomain.Client, len(f.clients))
	copy(out, f.clients)
	return out, nil
}

func (f *fakeRemote) CreateClient(_ context.Context, req *clientuc.CreateClientRequest) (*clientdomain.Client, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	c := clientdomain.Client{
		ID:            uint(len(f.clients) + 1),
		SalespersonID: req.SalespersonID,
		Name:          req.Name,
		Latitude:      *req.Latitude,
		Longitude:     *req.Longitude,
		CreatedAt:     time.Now(),
	}
	f.clients = append(f.clients, c)
	return &c, nil
}

func (f *fakeRemote) DeleteClient(_ context.Context, id uint) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	for i := range f.clients {
		if f.clients[i].ID == id {
			f.clients = append(f.clients[:i], f.clients[i+1:]...)
			return nil
		}
	}
	return &fakeError{"client not found"}
}

func (f *fakeRemote) salespeopleCalls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.listSalespeopleCalls
}

func (f *fakeRemote) pushes() []locationPush {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]locationPush, len(f.locationPushes))
	copy(out, f.locationPushes)
	return out
}

// waitFor polls until the condition holds or the deadline expires.
func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal("condition not met before deadline")
}

func floatPtr(v float64) *float64 {
	return &v
}

func namedSalesperson(id uint, name string) salesperson.Salesperson {
	return salesperson.Salesperson{ID: id, Name: name, Status: salesperson.StatusActive}
}
