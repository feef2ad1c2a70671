package routing

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/urbanpulse/service-maps/internal/domain/geo"
	"github.com/urbanpulse/service-maps/internal/domain/route"
	"go.uber.org/zap"
)

const (
	// requestTimeout aborts a routing call that takes too long.
	requestTimeout = 10 * time.Second

	// suspiciousDistanceMeters marks coordinate pairs that are probably not
	// routable on one road network. Logged, not rejected.
	suspiciousDistanceMeters = 5000000

	// fallbackSpeedMetersPerSec is the crude speed used to estimate the
	// duration of a straight-line fallback route.
	fallbackSpeedMetersPerSec = 10
)

// Options control a single routing call.
type Options struct {
	VehicleType  route.VehicleType
	AvoidTraffic bool
}

// osrmResponse is the routing-service reply. Geometry coordinates arrive in
// lon,lat order.
type osrmResponse struct {
	Code   string `json:"code"`
	Routes []struct {
		Geometry struct {
			Coordinates [][]float64 `json:"coordinates"`
		} `json:"geometry"`
		Distance float64 `json:"distance"`
		Duration float64 `json:"duration"`
	} `json:"routes"`
}

// Router fetches travel paths from an external routing service. It never
// returns an error: a hard failure (network, timeout, bad response) degrades
// to a straight-line fallback, while a reachable service that finds no path
// yields nil.
type Router struct {
	baseURL    string
	userAgent  string
	httpClient *http.Client
	logger     *zap.Logger
}

// NewRouter creates a Router against the given routing-service base URL.
func NewRouter(baseURL, userAgent string, logger *zap.Logger) *Router {
	return &Router{
		baseURL:    strings.TrimRight(baseURL, "/"),
		userAgent:  userAgent,
		httpClient: &http.Client{},
		logger:     logger,
	}
}

// FetchRoute requests a path between start and end for the given options.
// A nil result means the service was reachable but found no route.
func (r *Router) FetchRoute(ctx context.Context, start, end geo.LatLng, opts Options) *route.Result {
	if !start.Valid() || !end.Valid() {
		r.logger.Error("invalid coordinates provided for routing",
			zap.String("start", start.String()),
			zap.String("end", end.String()),
		)
		return r.fallback(start, end)
	}

	straightLine := geo.Distance(start, end)
	if straightLine > suspiciousDistanceMeters {
		r.logger.Warn("coordinates are very far apart",
			zap.Float64("distance_meters", straightLine),
		)
	}

	result, err := r.fetch(ctx, start, end, opts)
	if err != nil {
		r.logger.Error("routing failed, using straight-line fallback",
			zap.String("profile", opts.VehicleType.Profile()),
			zap.Error(err),
		)
		return r.fallback(start, end)
	}
	return result
}

func (r *Router) fetch(ctx context.Context, start, end geo.LatLng, opts Options) (*route.Result, error) {
	profile := opts.VehicleType.Profile()

	// The routing service expects lon,lat pairs.
	url := fmt.Sprintf("%s/route/v1/%s/%s;%s?overview=full&geometries=geojson",
		r.baseURL, profile, start.ToLonLat(), end.ToLonLat())
	if opts.AvoidTraffic {
		url += "&alternatives=true"
	}

	ctx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build routing request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", r.userAgent)

	resp, err := r.httpClient.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, fmt.Errorf("routing request timed out after %s", requestTimeout)
		}
		return nil, fmt.Errorf("routing request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("routing failed with status: %d", resp.StatusCode)
	}

	var data osrmResponse
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return nil, fmt.Errorf("failed to decode routing response: %w", err)
	}

	if data.Code != "Ok" {
		r.logger.Warn("routing service returned non-ok code", zap.String("code", data.Code))
		return nil, nil
	}
	if len(data.Routes) == 0 {
		r.logger.Warn("routing service returned no routes")
		return nil, nil
	}

	// With alternatives requested, pick the fastest route as a proxy for
	// less congested.
	selected := data.Routes[0]
	if opts.AvoidTraffic && len(data.Routes) > 1 {
		r.logger.Debug("selecting fastest of alternative routes",
			zap.Int("alternatives", len(data.Routes)),
		)
		for _, candidate := range data.Routes[1:] {
			if candidate.Duration < selected.Duration {
				selected = candidate
			}
		}
	}

	if len(selected.Geometry.Coordinates) == 0 {
		r.logger.Warn("selected route has no geometry")
		return nil, nil
	}

	path := make([]geo.LatLng, 0, len(selected.Geometry.Coordinates))
	for _, pair := range selected.Geometry.Coordinates {
		if len(pair) < 2 {
			return nil, fmt.Errorf("malformed geometry coordinate pair")
		}
		path = append(path, geo.LonLat{Lon: pair[0], Lat: pair[1]}.ToLatLng())
	}

	r.logger.Info("route found",
		zap.Int("points", len(path)),
		zap.Float64("distance_meters", selected.Distance),
		zap.Float64("duration_seconds", selected.Duration),
	)

	return &route.Result{
		Path:            path,
		DistanceMeters:  selected.Distance,
		DurationSeconds: selected.Duration,
	}, nil
}

// fallback builds the degenerate two-point route used when routing fails.
func (r *Router) fallback(start, end geo.LatLng) *route.Result {
	distance := geo.Distance(start, end)
	return &route.Result{
		Path:            []geo.LatLng{start, end},
		DistanceMeters:  distance,
		DurationSeconds: distance / fallbackSpeedMetersPerSec,
		Fallback:        true,
	}
}
