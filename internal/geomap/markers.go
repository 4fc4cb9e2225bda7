package geomap

import "salestrack/internal/domain/salesperson"

// MarkerStyle is the rendering hint the console hands to whatever map widget
// draws the markers.
type MarkerStyle struct {
	Color  string
	Shape  string
	Filled bool
}

var (
	activeStyle   = MarkerStyle{Color: "#16a34a", Shape: "pin", Filled: true}
	inactiveStyle = MarkerStyle{Color: "#9ca3af", Shape: "pin", Filled: false}
	clientStyle   = MarkerStyle{Color: "#2563eb", Shape: "circle", Filled: true}
)

// SalespersonStyle picks the marker by agent status.
func SalespersonStyle(status salesperson.Status) MarkerStyle {
	if status == salesperson.StatusActive {
		return activeStyle
	}
	return inactiveStyle
}

// ClientStyle is the fixed customer marker, visually distinct from agents.
func ClientStyle() MarkerStyle {
	return clientStyle
}
