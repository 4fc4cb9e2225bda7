package client

// CreateClientRequest registers a customer discovered during field work.
// Unlike salespeople, the position is mandatory.
type CreateClientRequest struct {
	SalespersonID uint     `json:"salesperson_id" validate:"required"`
	Name          string   `json:"name" validate:"required"`
	Address       string   `json:"address"`
	Phone         string   `json:"phone"`
	Notes         string   `json:"notes"`
	Latitude      *float64 `json:"latitude" validate:"required,gte=-90,lte=90"`
	Longitude     *float64 `json:"longitude" validate:"required,gte=-180,lte=180"`
}
