package application

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"github.com/urbanpulse/service-maps/internal/domain/geo"
	"github.com/urbanpulse/service-maps/internal/domain/mapview"
	"github.com/urbanpulse/service-maps/internal/domain/route"
	"github.com/urbanpulse/service-maps/internal/locate"
	"go.uber.org/zap"
)

const (
	defaultZoom  = 5
	locateZoom   = 13
	boundsPadPct = 10
)

// MarkerInput is the caller-supplied description of one map marker.
type MarkerInput struct {
	Position geo.LatLng `json:"position"`
	Popup    string     `json:"popup"`
	Color    string     `json:"color"`
}

// MapService owns the map view state and applies every visual flow to it:
// marker sync, route display, traffic overlay and current location. Each flow
// clears the layer it owns before redrawing it, and route-display cycles carry
// a generation so a slow cycle cannot paint over a newer one.
type MapService struct {
	planner *PlannerService
	locator locate.Provider
	logger  *zap.Logger
	clock   func() time.Time
	rng     *rand.Rand

	mu         sync.Mutex
	state      mapview.State
	generation uint64
}

// NewMapService creates a MapService with the default viewport.
func NewMapService(planner *PlannerService, locator locate.Provider, logger *zap.Logger) *MapService {
	return &MapService{
		planner: planner,
		locator: locator,
		logger:  logger,
		clock:   time.Now,
		rng:     rand.New(rand.NewSource(time.Now().UnixNano())),
		state:   mapview.NewState(locate.DefaultLocation, defaultZoom, mapview.StyleStandard, mapview.ThemeLight),
	}
}

// Snapshot returns a copy of the current view state with expired banners
// filtered out.
func (s *MapService) Snapshot() mapview.State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

func (s *MapService) snapshotLocked() mapview.State {
	now := s.clock()
	s.state.Banners = s.state.ActiveBanners(now)

	snap := s.state
	snap.Markers = append([]mapview.Marker(nil), s.state.Markers...)
	snap.Banners = append([]mapview.Banner(nil), s.state.Banners...)
	return snap
}

// Configure updates the viewport. A style or theme change swaps the tile
// layer; the rest of the state survives.
func (s *MapService) Configure(center geo.LatLng, zoom int, style mapview.Style, theme mapview.Theme) mapview.State {
	s.mu.Lock()
	defer s.mu.Unlock()

	if style != s.state.Style || theme != s.state.Theme {
		s.state.Style = style
		s.state.Theme = theme
		s.state.TileURL = mapview.TileURL(style, theme)
		s.logger.Info("tile layer changed",
			zap.String("style", string(style)),
			zap.String("theme", string(theme)),
		)
	}
	s.state.Camera = mapview.Camera{Center: center, Zoom: zoom}
	return s.snapshotLocked()
}

// SetMarkers replaces the point-marker layer with exactly the given list.
func (s *MapService) SetMarkers(inputs []MarkerInput) []mapview.Marker {
	markers := make([]mapview.Marker, 0, len(inputs))
	for _, in := range inputs {
		markers = append(markers, mapview.NewMarker(in.Position, in.Popup, in.Color))
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Markers = markers
	return append([]mapview.Marker(nil), markers...)
}

// SetTraffic enables or disables the synthetic congestion overlay.
func (s *MapService) SetTraffic(enabled bool) mapview.State {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !enabled {
		s.state.Traffic = nil
		return s.snapshotLocked()
	}

	overlay := mapview.GenerateTrafficOverlay(s.state.Camera.Center, s.rng)
	s.state.Traffic = &overlay
	return s.snapshotLocked()
}

// Locate resolves the current position and places the pulsing location
// marker, replacing any prior one, then animates the view there. Failures
// fall back to the default location; the flow never errors.
func (s *MapService) Locate(ctx context.Context) mapview.Marker {
	position, _ := s.locator.CurrentLocation(ctx)

	marker := mapview.NewMarker(position, "Your Current Location", "blue")
	marker.Pulsing = true

	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Location = &marker
	s.state.Camera = mapview.Camera{Center: position, Zoom: locateZoom}
	return marker
}

// DisplayRoute runs one full route-display cycle: clear the route layer, show
// the loading indicator, plan, then draw the result. Only the most recently
// started cycle is allowed to paint; stale cycles are dropped.
func (s *MapService) DisplayRoute(ctx context.Context, req route.Request) mapview.State {
	gen := s.beginCycle()

	planned, err := s.planner.PlanRoute(ctx, req)

	s.mu.Lock()
	defer s.mu.Unlock()

	if gen != s.generation {
		s.logger.Debug("dropping stale route cycle",
			zap.Uint64("cycle", gen),
			zap.Uint64("current", s.generation),
		)
		return s.snapshotLocked()
	}

	now := s.clock()
	s.state.Banners = nil

	if err != nil {
		s.logger.Warn("route planning failed",
			zap.String("source", req.Source),
			zap.String("destination", req.Destination),
			zap.Error(err),
		)
		s.state.Banners = []mapview.Banner{mapview.NewErrorBanner(now, err.Error())}
		return s.snapshotLocked()
	}

	startMarker := mapview.NewMarker(planned.SourceCoords, "Start: "+planned.SourceLabel, "blue")
	endMarker := mapview.NewMarker(planned.DestCoords, "Destination: "+planned.DestLabel, "red")

	if planned.Route == nil {
		// Endpoints resolved but no path found: advisory banner, endpoint
		// markers only, view fitted to the two points.
		s.state.Banners = []mapview.Banner{mapview.NewNoRouteBanner(now)}
		s.state.Route = &mapview.RouteLayer{Start: &startMarker, End: &endMarker}
		s.fitCameraLocked([]geo.LatLng{planned.SourceCoords, planned.DestCoords})
		return s.snapshotLocked()
	}

	s.state.Route = &mapview.RouteLayer{
		Polyline:       planned.Route.Path,
		Color:          planned.VehicleType.Color(),
		ArrowOffsetPct: 5,
		ArrowRepeatPct: 10,
		Start:          &startMarker,
		End:            &endMarker,
		Info: &mapview.RouteInfo{
			DistanceKm:  planned.Route.DistanceMeters / 1000,
			DurationMin: int(planned.Route.DurationSeconds/60 + 0.5),
			Mode:        planned.VehicleType,
		},
		Fallback: planned.Route.Fallback,
	}
	s.fitCameraLocked(planned.Route.Path)
	return s.snapshotLocked()
}

// beginCycle clears the route layer, shows the loading banner and returns the
// new cycle's generation.
func (s *MapService) beginCycle() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.generation++
	s.state.Route = nil
	s.state.Banners = []mapview.Banner{mapview.NewLoadingBanner()}
	return s.generation
}

func (s *MapService) fitCameraLocked(points []geo.LatLng) {
	bounds, ok := mapview.FitBounds(points, boundsPadPct)
	if !ok {
		return
	}
	s.state.Camera.Center = bounds.Center()
}
