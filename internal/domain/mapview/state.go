package mapview

import (
	"time"

	"github.com/urbanpulse/service-maps/internal/domain/geo"
	"github.com/urbanpulse/service-maps/internal/domain/route"
)

// Camera is the map viewport.
type Camera struct {
	Center geo.LatLng `json:"center"`
	Zoom   int        `json:"zoom"`
}

// RouteInfo is the floating distance/duration/mode panel shown with a route.
type RouteInfo struct {
	DistanceKm  float64           `json:"distance_km"`
	DurationMin int               `json:"duration_min"`
	Mode        route.VehicleType `json:"mode"`
}

// RouteLayer is the drawable group holding the current route: polyline with
// directional arrows, start/end markers and the info panel. Exactly one route
// layer exists at a time; a new planning cycle clears the previous one.
type RouteLayer struct {
	Polyline        []geo.LatLng `json:"polyline,omitempty"`
	Color           string       `json:"color,omitempty"`
	ArrowOffsetPct  int          `json:"arrow_offset_pct,omitempty"`
	ArrowRepeatPct  int          `json:"arrow_repeat_pct,omitempty"`
	Start           *Marker      `json:"start,omitempty"`
	End             *Marker      `json:"end,omitempty"`
	Info            *RouteInfo   `json:"info,omitempty"`
	Fallback        bool         `json:"fallback,omitempty"`
}

// State is the full server-side view of the map surface. Each layer is owned
// by exactly one flow and is cleared before it is redrawn.
type State struct {
	Camera         Camera          `json:"camera"`
	Style          Style           `json:"style"`
	Theme          Theme           `json:"theme"`
	TileURL        string          `json:"tile_url"`
	Markers        []Marker        `json:"markers"`
	Route          *RouteLayer     `json:"route,omitempty"`
	Traffic        *TrafficOverlay `json:"traffic,omitempty"`
	Location       *Marker         `json:"location,omitempty"`
	Banners        []Banner        `json:"banners,omitempty"`
	Interactive    bool            `json:"interactive"`
}

// NewState creates the initial view state for a freshly mounted map.
func NewState(center geo.LatLng, zoom int, style Style, theme Theme) State {
	return State{
		Camera:      Camera{Center: center, Zoom: zoom},
		Style:       style,
		Theme:       theme,
		TileURL:     TileURL(style, theme),
		Markers:     []Marker{},
		Interactive: true,
	}
}

// ActiveBanners returns the banners still visible at the given time.
func (s State) ActiveBanners(now time.Time) []Banner {
	active := make([]Banner, 0, len(s.Banners))
	for _, b := range s.Banners {
		if b.Active(now) {
			active = append(active, b)
		}
	}
	return active
}

// Bounds is an axis-aligned box around a set of coordinates.
type Bounds struct {
	SouthWest geo.LatLng `json:"south_west"`
	NorthEast geo.LatLng `json:"north_east"`
}

// FitBounds computes the bounding box of the given points, expanded by
// paddingPct percent on each axis. Returns false for an empty point set.
func FitBounds(points []geo.LatLng, paddingPct float64) (Bounds, bool) {
	if len(points) == 0 {
		return Bounds{}, false
	}

	minLat, maxLat := points[0].Lat, points[0].Lat
	minLng, maxLng := points[0].Lng, points[0].Lng
	for _, p := range points[1:] {
		if p.Lat < minLat {
			minLat = p.Lat
		}
		if p.Lat > maxLat {
			maxLat = p.Lat
		}
		if p.Lng < minLng {
			minLng = p.Lng
		}
		if p.Lng > maxLng {
			maxLng = p.Lng
		}
	}

	padLat := (maxLat - minLat) * paddingPct / 100
	padLng := (maxLng - minLng) * paddingPct / 100
	return Bounds{
		SouthWest: geo.LatLng{Lat: minLat - padLat, Lng: minLng - padLng},
		NorthEast: geo.LatLng{Lat: maxLat + padLat, Lng: maxLng + padLng},
	}, true
}

// Center returns the midpoint of the bounds.
func (b Bounds) Center() geo.LatLng {
	return geo.LatLng{
		Lat: (b.SouthWest.Lat + b.NorthEast.Lat) / 2,
		Lng: (b.SouthWest.Lng + b.NorthEast.Lng) / 2,
	}
}
