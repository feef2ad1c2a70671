package mapview

import (
	"github.com/google/uuid"
	"github.com/urbanpulse/service-maps/internal/domain/geo"
)

// DefaultMarkerColor is used when a marker does not specify its own color.
const DefaultMarkerColor = "blue"

// Marker is a single point marker on the map.
type Marker struct {
	ID       uuid.UUID  `json:"id"`
	Position geo.LatLng `json:"position"`
	Popup    string     `json:"popup,omitempty"`
	Color    string     `json:"color"`
	Pulsing  bool       `json:"pulsing,omitempty"`
}

// NewMarker creates a marker at the given position, applying the default color
// when none is given.
func NewMarker(position geo.LatLng, popup, color string) Marker {
	if color == "" {
		color = DefaultMarkerColor
	}
	return Marker{
		ID:       uuid.New(),
		Position: position,
		Popup:    popup,
		Color:    color,
	}
}
