package route

import (
	"strings"

	"github.com/urbanpulse/service-maps/internal/domain"
)

// Request describes a route-planning request between two free-text locations.
type Request struct {
	Source       string      `json:"source"`
	Destination  string      `json:"destination"`
	VehicleType  VehicleType `json:"vehicle_type"`
	AvoidTraffic bool        `json:"avoid_traffic"`
}

// Validate checks the request before any geocoding is attempted.
func (r Request) Validate() error {
	if strings.TrimSpace(r.Source) == "" || strings.TrimSpace(r.Destination) == "" {
		return domain.NewValidationError("source or destination is empty")
	}
	if strings.EqualFold(strings.TrimSpace(r.Source), strings.TrimSpace(r.Destination)) {
		return domain.NewValidationError("source and destination cannot be the same location")
	}
	if r.VehicleType != "" && !r.VehicleType.IsValid() {
		return domain.NewValidationError("invalid vehicle type: " + r.VehicleType.String())
	}
	return nil
}

// Vehicle returns the requested vehicle type, defaulting to car when unset.
func (r Request) Vehicle() VehicleType {
	if r.VehicleType == "" {
		return VehicleCar
	}
	return r.VehicleType
}
