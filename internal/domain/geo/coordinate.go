package geo

import (
	"fmt"
	"math"
)

// LatLng is a coordinate pair in the service's internal latitude-first convention.
type LatLng struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Valid returns true if both components are finite and within (±90, ±180).
func (c LatLng) Valid() bool {
	if math.IsNaN(c.Lat) || math.IsInf(c.Lat, 0) {
		return false
	}
	if math.IsNaN(c.Lng) || math.IsInf(c.Lng, 0) {
		return false
	}
	return math.Abs(c.Lat) <= 90 && math.Abs(c.Lng) <= 180
}

// ToLonLat converts to the longitude-first wire convention. This is the only
// place the axis order flips; keep it at the routing-service boundary.
func (c LatLng) ToLonLat() LonLat {
	return LonLat{Lon: c.Lng, Lat: c.Lat}
}

// String formats the coordinate as "lat,lng" with six decimal places.
func (c LatLng) String() string {
	return fmt.Sprintf("%.6f,%.6f", c.Lat, c.Lng)
}

// LonLat is a coordinate pair in the longitude-first convention used by the
// external routing service.
type LonLat struct {
	Lon float64
	Lat float64
}

// ToLatLng converts back to the internal latitude-first convention.
func (c LonLat) ToLatLng() LatLng {
	return LatLng{Lat: c.Lat, Lng: c.Lon}
}

// String formats the coordinate as "lon,lat" for routing-service URLs.
func (c LonLat) String() string {
	return fmt.Sprintf("%f,%f", c.Lon, c.Lat)
}
