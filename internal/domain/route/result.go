package route

import (
	"time"

	"github.com/google/uuid"
	"github.com/urbanpulse/service-maps/internal/domain/geo"
)

// Result is a travel path returned by the routing service, or the
// straight-line fallback substituted when routing fails.
type Result struct {
	Path            []geo.LatLng `json:"path"`
	DistanceMeters  float64      `json:"distance_meters"`
	DurationSeconds float64      `json:"duration_seconds"`
	Fallback        bool         `json:"fallback,omitempty"`
}

// Valid returns true if the path has enough points to draw.
func (r Result) Valid() bool {
	return len(r.Path) >= 2
}

// PlannedRoute is the orchestrator's unified output for a successful plan.
// A nil Route means both endpoints resolved but no path was found.
type PlannedRoute struct {
	ID           uuid.UUID   `json:"id"`
	SourceCoords geo.LatLng  `json:"source_coords"`
	DestCoords   geo.LatLng  `json:"dest_coords"`
	SourceLabel  string      `json:"source_label"`
	DestLabel    string      `json:"dest_label"`
	VehicleType  VehicleType `json:"vehicle_type"`
	Route        *Result     `json:"route,omitempty"`
	PlannedAt    time.Time   `json:"planned_at"`
}
