package salesperson

// CreateSalespersonRequest carries the admin "add salesperson" form.
// Coordinates are optional but must be set together.
type CreateSalespersonRequest struct {
	Name      string   `json:"name" validate:"required"`
	Phone     string   `json:"phone"`
	Email     string   `json:"email" validate:"omitempty,email"`
	Latitude  *float64 `json:"latitude" validate:"omitempty,gte=-90,lte=90"`
	Longitude *float64 `json:"longitude" validate:"omitempty,gte=-180,lte=180"`
	Status    string   `json:"status" validate:"omitempty,oneof=active inactive"`
}

// UpdateSalespersonRequest carries the admin edit form. Position is not
// editable here; it moves through UpdateLocation or the ping feed.
type UpdateSalespersonRequest struct {
	Name   string `json:"name" validate:"required"`
	Phone  string `json:"phone"`
	Email  string `json:"email" validate:"omitempty,email"`
	Status string `json:"status" validate:"omitempty,oneof=active inactive"`
}

// UpdateLocationRequest is the position push body shared by the admin
// location dialog and the field agent's GPS pushes.
type UpdateLocationRequest struct {
	Latitude  *float64 `json:"latitude" validate:"required,gte=-90,lte=90"`
	Longitude *float64 `json:"longitude" validate:"required,gte=-180,lte=180"`
}
