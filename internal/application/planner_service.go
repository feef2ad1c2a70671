package application

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/urbanpulse/service-maps/internal/domain"
	"github.com/urbanpulse/service-maps/internal/domain/geo"
	"github.com/urbanpulse/service-maps/internal/domain/route"
	"github.com/urbanpulse/service-maps/internal/events"
	"github.com/urbanpulse/service-maps/internal/geocode"
	"github.com/urbanpulse/service-maps/internal/routing"
	"go.uber.org/zap"
)

// Geocoder resolves free-text place names. Implementations degrade internally
// and never return an error.
type Geocoder interface {
	Resolve(ctx context.Context, query string) *geocode.Result
	Suggest(ctx context.Context, query string) []geocode.Result
}

// RouteFetcher fetches travel paths. A nil result means no route was found;
// hard failures surface as a straight-line fallback result.
type RouteFetcher interface {
	FetchRoute(ctx context.Context, start, end geo.LatLng, opts routing.Options) *route.Result
}

// PlannerService orchestrates a route-planning cycle: validate, geocode both
// endpoints, validate coordinates, fetch the route. It is the only component
// that signals failure upward.
type PlannerService struct {
	geocoder  Geocoder
	router    RouteFetcher
	publisher *events.Publisher
	logger    *zap.Logger
}

// NewPlannerService creates a PlannerService. The publisher may be nil.
func NewPlannerService(
	geocoder Geocoder,
	router RouteFetcher,
	publisher *events.Publisher,
	logger *zap.Logger,
) *PlannerService {
	return &PlannerService{
		geocoder:  geocoder,
		router:    router,
		publisher: publisher,
		logger:    logger,
	}
}

// PlanRoute turns a route request into a planned route. A returned
// PlannedRoute with a nil Route means the endpoints resolved but no path was
// found. No network call is made for an invalid request.
func (s *PlannerService) PlanRoute(ctx context.Context, req route.Request) (*route.PlannedRoute, error) {
	if err := req.Validate(); err != nil {
		s.publishFailed(ctx, req, err)
		return nil, err
	}

	src := s.geocoder.Resolve(ctx, req.Source)
	if src == nil {
		err := domain.NewNotFoundError("location", req.Source)
		s.publishFailed(ctx, req, err)
		return nil, err
	}

	dst := s.geocoder.Resolve(ctx, req.Destination)
	if dst == nil {
		err := domain.NewNotFoundError("location", req.Destination)
		s.publishFailed(ctx, req, err)
		return nil, err
	}

	if !src.Coords.Valid() || !dst.Coords.Valid() {
		s.logger.Error("resolved coordinates out of bounds",
			zap.String("source", src.Coords.String()),
			zap.String("destination", dst.Coords.String()),
		)
		err := domain.NewValidationError("location coordinates are out of valid range")
		s.publishFailed(ctx, req, err)
		return nil, err
	}

	result := s.router.FetchRoute(ctx, src.Coords, dst.Coords, routing.Options{
		VehicleType:  req.Vehicle(),
		AvoidTraffic: req.AvoidTraffic,
	})

	if result != nil && !result.Valid() {
		err := domain.NewValidationError("route calculation failed: insufficient route points")
		s.publishFailed(ctx, req, err)
		return nil, err
	}

	planned := &route.PlannedRoute{
		ID:           uuid.New(),
		SourceCoords: src.Coords,
		DestCoords:   dst.Coords,
		SourceLabel:  req.Source,
		DestLabel:    req.Destination,
		VehicleType:  req.Vehicle(),
		Route:        result,
		PlannedAt:    time.Now().UTC(),
	}

	s.publishPlanned(ctx, req, planned)
	return planned, nil
}

// SuggestLocations returns up to five matches for a partial query.
func (s *PlannerService) SuggestLocations(ctx context.Context, query string) []geocode.Result {
	return s.geocoder.Suggest(ctx, query)
}

func (s *PlannerService) publishPlanned(ctx context.Context, req route.Request, planned *route.PlannedRoute) {
	evt := events.RoutePlannedEvent{
		PlanID:       planned.ID,
		Source:       req.Source,
		Destination:  req.Destination,
		VehicleType:  planned.VehicleType,
		AvoidTraffic: req.AvoidTraffic,
		RouteFound:   planned.Route != nil,
		OccurredAt:   time.Now().UTC(),
	}
	if planned.Route != nil {
		evt.Fallback = planned.Route.Fallback
		evt.DistanceMeters = planned.Route.DistanceMeters
		evt.DurationSeconds = planned.Route.DurationSeconds
	}
	s.publisher.PublishRoutePlanned(ctx, evt)
}

func (s *PlannerService) publishFailed(ctx context.Context, req route.Request, cause error) {
	s.publisher.PublishRouteFailed(ctx, events.RouteFailedEvent{
		Source:      req.Source,
		Destination: req.Destination,
		Reason:      cause.Error(),
		OccurredAt:  time.Now().UTC(),
	})
}
