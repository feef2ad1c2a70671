package locate

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/urbanpulse/service-maps/internal/domain/geo"
	"go.uber.org/zap"
)

// requestTimeout bounds a position lookup.
const requestTimeout = 5 * time.Second

// DefaultLocation is reported when no position can be determined.
var DefaultLocation = geo.LatLng{Lat: 20.5937, Lng: 78.9629}

// Provider resolves the device's current position. Implementations must not
// return an error: the map always gets a usable coordinate. The boolean
// reports whether the coordinate is a real fix rather than the default.
type Provider interface {
	CurrentLocation(ctx context.Context) (geo.LatLng, bool)
}

// ipAPIResponse is the position-service reply.
type ipAPIResponse struct {
	Status string  `json:"status"`
	Lat    float64 `json:"lat"`
	Lon    float64 `json:"lon"`
}

// IPLocator estimates the current position from an IP-geolocation service.
type IPLocator struct {
	baseURL    string
	httpClient *http.Client
	logger     *zap.Logger
}

// NewIPLocator creates an IPLocator against the given service base URL.
func NewIPLocator(baseURL string, logger *zap.Logger) *IPLocator {
	return &IPLocator{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{},
		logger:     logger,
	}
}

// CurrentLocation queries the position service with a five second timeout,
// returning the fixed default on any failure.
func (l *IPLocator) CurrentLocation(ctx context.Context) (geo.LatLng, bool) {
	ctx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	pos, err := l.lookup(ctx)
	if err != nil {
		l.logger.Warn("current location unavailable, using default",
			zap.String("default", DefaultLocation.String()),
			zap.Error(err),
		)
		return DefaultLocation, false
	}

	l.logger.Debug("current location resolved", zap.String("position", pos.String()))
	return pos, true
}

func (l *IPLocator) lookup(ctx context.Context) (geo.LatLng, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, l.baseURL+"/json", nil)
	if err != nil {
		return geo.LatLng{}, fmt.Errorf("failed to build location request: %w", err)
	}

	resp, err := l.httpClient.Do(req)
	if err != nil {
		return geo.LatLng{}, fmt.Errorf("location request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return geo.LatLng{}, fmt.Errorf("location lookup failed with status: %d", resp.StatusCode)
	}

	var data ipAPIResponse
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return geo.LatLng{}, fmt.Errorf("failed to decode location response: %w", err)
	}
	if data.Status != "success" {
		return geo.LatLng{}, fmt.Errorf("location lookup returned status: %s", data.Status)
	}

	pos := geo.LatLng{Lat: data.Lat, Lng: data.Lon}
	if !pos.Valid() {
		return geo.LatLng{}, fmt.Errorf("location lookup returned invalid coordinates: %s", pos)
	}
	return pos, nil
}
