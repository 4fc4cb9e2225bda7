package visit

// CreateVisitRequest carries the "new visit" form from either console.
type CreateVisitRequest struct {
	SalespersonID uint   `json:"salesperson_id" validate:"required"`
	ClientName    string `json:"client_name" validate:"required"`
	Address       string `json:"address"`
	Notes         string `json:"notes"`
	VisitType     string `json:"visit_type" validate:"omitempty,oneof=visit delivery collection"`
}

// UpdateStatusRequest is the status-transition body. Only the target status
// travels on the wire; the completion timestamp is derived server-side.
type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending in_progress completed"`
}
