package route

import "fmt"

// VehicleType represents the travel mode requested for a route.
type VehicleType string

const (
	VehicleCar  VehicleType = "car"
	VehicleBus  VehicleType = "bus"
	VehicleBike VehicleType = "bike"
	VehicleWalk VehicleType = "walk"
)

// profiles maps each vehicle type to the routing-service profile. The routing
// service has no transit profile, so buses route as driving.
var profiles = map[VehicleType]string{
	VehicleCar:  "driving",
	VehicleBus:  "driving",
	VehicleBike: "cycling",
	VehicleWalk: "walking",
}

// colors maps each vehicle type to the polyline color used on the map.
var colors = map[VehicleType]string{
	VehicleCar:  "#3b82f6",
	VehicleBus:  "#10b981",
	VehicleBike: "#f97316",
	VehicleWalk: "#8b5cf6",
}

// IsValid returns true if the vehicle type is recognized.
func (v VehicleType) IsValid() bool {
	_, exists := profiles[v]
	return exists
}

// Profile returns the routing-service profile for this vehicle type,
// defaulting to driving for unrecognized values.
func (v VehicleType) Profile() string {
	if p, exists := profiles[v]; exists {
		return p
	}
	return "driving"
}

// Color returns the polyline color for this vehicle type, defaulting to blue.
func (v VehicleType) Color() string {
	if c, exists := colors[v]; exists {
		return c
	}
	return colors[VehicleCar]
}

// String returns the string representation of the vehicle type.
func (v VehicleType) String() string {
	return string(v)
}

// ParseVehicleType converts a string to a VehicleType, returning an error if invalid.
func ParseVehicleType(s string) (VehicleType, error) {
	v := VehicleType(s)
	if !v.IsValid() {
		return "", fmt.Errorf("invalid vehicle type: %s", s)
	}
	return v, nil
}
