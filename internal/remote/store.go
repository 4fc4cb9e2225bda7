package remote

import (
	"context"

	clientdomain "salestrack/internal/domain/client"
	orderdomain "salestrack/internal/domain/order"
	"salestrack/internal/domain/salesperson"
	visitdomain "salestrack/internal/domain/visit"
	clientuc "salestrack/internal/usecase/client"
	orderuc "salestrack/internal/usecase/order"
	salespersonuc "salestrack/internal/usecase/salesperson"
	visituc "salestrack/internal/usecase/visit"
)

// Store is the remote data capability the consoles depend on. The consoles
// never talk HTTP directly; they hold a Store and a feed source, which keeps
// every view testable against in-memory fakes.
type Store interface {
	ListSalespeople(ctx context.Context) ([]salesperson.Salesperson, error)
	CreateSalesperson(ctx context.Context, req *salespersonuc.CreateSalespersonRequest) (*salesperson.Salesperson, error)
	UpdateSalesperson(ctx context.Context, id uint, req *salespersonuc.UpdateSalespersonRequest) (*salesperson.Salesperson, error)
	UpdateSalespersonLocation(ctx context.Context, id uint, latitude, longitude float64) error
	DeleteSalesperson(ctx context.Context, id uint) error

	// A zero salespersonID lists across all owners.
	ListVisits(ctx context.Context, salespersonID uint) ([]visitdomain.Visit, error)
	CreateVisit(ctx context.Context, req *visituc.CreateVisitRequest) (*visitdomain.Visit, error)
	UpdateVisitStatus(ctx context.Context, id uint, status visitdomain.Status) (*visitdomain.Visit, error)
	DeleteVisit(ctx context.Context, id uint) error

	ListOrders(ctx context.Context, salespersonID uint) ([]orderdomain.Order, error)
	CreateOrder(ctx context.Context, req *orderuc.CreateOrderRequest) (*orderdomain.Order, error)
	UpdateOrderStatus(ctx context.Context, id uint, status orderdomain.Status) (*orderdomain.Order, error)
	DeleteOrder(ctx context.Context, id uint) error

	ListClients(ctx context.Context) ([]clientdomain.Client, error)
	CreateClient(ctx context.Context, req *clientuc.CreateClientRequest) (*clientdomain.Client, error)
	DeleteClient(ctx context.Context, id uint) error
}
