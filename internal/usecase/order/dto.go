package order

// CreateOrderRequest carries the "new order" form from either console. A
// negative or missing total collapses to zero rather than failing the order.
type CreateOrderRequest struct {
	SalespersonID uint     `json:"salesperson_id" validate:"required"`
	VisitID       *uint    `json:"visit_id"`
	ClientName    string   `json:"client_name" validate:"required"`
	Products      string   `json:"products"`
	TotalAmount   *float64 `json:"total_amount"`
}

// UpdateStatusRequest is the status-transition body.
type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending in_progress completed"`
}
