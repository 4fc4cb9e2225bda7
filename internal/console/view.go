package console

import "strings"

// Dialog identifies the single modal a screen may have open. Exactly one
// dialog is active at a time; opening one closes whatever was open before,
// so stale-form and double-modal states cannot arise.
type Dialog int

const (
	DialogNone Dialog = iota
	DialogNewSalesperson
	DialogEditSalesperson
	DialogSetLocation
	DialogNewVisit
	DialogNewOrder
	DialogNewClient
)

// AgentTab identifies the active pane on the field agent screen.
type AgentTab int

const (
	TabVisits AgentTab = iota
	TabOrders
	TabClients
)

// AdminView is the admin screen's UI state.
type AdminView struct {
	ActiveDialog Dialog

	SalespersonForm SalespersonForm
	LocationForm    LocationForm
	VisitForm       VisitForm
	OrderForm       OrderForm

	// EditingID is the row the edit and location dialogs operate on.
	EditingID uint
}

// OpenDialog switches the active modal, resetting whatever was open. Forms
// start blank; edit dialogs prefill after opening.
func (v *AdminView) OpenDialog(d Dialog, editingID uint) {
	v.ActiveDialog = d
	v.EditingID = editingID
	v.SalespersonForm = SalespersonForm{}
	v.LocationForm = LocationForm{}
	v.VisitForm = VisitForm{}
	v.OrderForm = OrderForm{}
}

func (v *AdminView) CloseDialog() {
	v.ActiveDialog = DialogNone
	v.EditingID = 0
	v.SalespersonForm = SalespersonForm{}
	v.LocationForm = LocationForm{}
	v.VisitForm = VisitForm{}
	v.OrderForm = OrderForm{}
}

// AgentView is the field agent screen's UI state. Tracking mirrors whether
// a position watch is live; the tracker owns the watch handle itself.
type AgentView struct {
	SalespersonID uint
	ActiveTab     AgentTab
	ActiveDialog  Dialog
	Tracking      bool

	VisitForm  VisitForm
	OrderForm  OrderForm
	ClientForm ClientForm
}

// SalespersonForm is the new/edit agent form.
type SalespersonForm struct {
	Name      string
	Phone     string
	Email     string
	Status    string
	Latitude  *float64
	Longitude *float64
}

func (f *SalespersonForm) CanSubmit() bool {
	return strings.TrimSpace(f.Name) != ""
}

// LocationForm is the admin's direct position edit.
type LocationForm struct {
	Latitude  *float64
	Longitude *float64
}

func (f *LocationForm) CanSubmit() bool {
	return f.Latitude != nil && f.Longitude != nil
}

// VisitForm is the new-visit form from either console.
type VisitForm struct {
	SalespersonID uint
	ClientName    string
	Address       string
	Notes         string
	VisitType     string
}

func (f *VisitForm) CanSubmit() bool {
	return f.SalespersonID != 0 && strings.TrimSpace(f.ClientName) != ""
}

// OrderForm is the new-order form. Total is free text; it collapses to zero
// when unparsable rather than blocking submission.
type OrderForm struct {
	SalespersonID uint
	VisitID       *uint
	ClientName    string
	Products      string
	TotalAmount   *float64
}

func (f *OrderForm) CanSubmit() bool {
	return f.SalespersonID != 0 && strings.TrimSpace(f.ClientName) != ""
}

// ClientForm registers a customer from the field; position is mandatory.
type ClientForm struct {
	SalespersonID uint
	Name          string
	Address       string
	Phone         string
	Notes         string
	Latitude      *float64
	Longitude     *float64
}

func (f *ClientForm) CanSubmit() bool {
	return f.SalespersonID != 0 &&
		strings.TrimSpace(f.Name) != "" &&
		f.Latitude != nil && f.Longitude != nil
}
