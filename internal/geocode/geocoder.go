package geocode

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/urbanpulse/service-maps/internal/domain/geo"
	"go.uber.org/zap"
)

const (
	// minQueryLength is the shortest query that triggers a lookup.
	minQueryLength = 3

	// maxSuggestions caps the merged suggestion list.
	maxSuggestions = 5

	// duplicateToleranceDeg is the per-axis tolerance under which an external
	// result and a local-table result count as the same place.
	duplicateToleranceDeg = 0.01
)

// Result is a resolved location.
type Result struct {
	Coords      geo.LatLng `json:"coords"`
	DisplayName string     `json:"display_name"`
}

// nominatimResult is one entry of the external geocoding response. The
// service returns coordinates as strings.
type nominatimResult struct {
	Lat         string `json:"lat"`
	Lon         string `json:"lon"`
	DisplayName string `json:"display_name"`
}

// Geocoder resolves free-text place names to coordinates, consulting the
// built-in city table first and degrading to it when the external service
// fails. It never returns an error to callers.
type Geocoder struct {
	baseURL    string
	userAgent  string
	httpClient *http.Client
	logger     *zap.Logger
}

// NewGeocoder creates a Geocoder against the given service base URL.
func NewGeocoder(baseURL, userAgent string, logger *zap.Logger) *Geocoder {
	return &Geocoder{
		baseURL:    strings.TrimRight(baseURL, "/"),
		userAgent:  userAgent,
		httpClient: &http.Client{Timeout: 15 * time.Second},
		logger:     logger,
	}
}

// Suggest returns up to five results for a partial query: external matches
// first, then local-table matches that do not duplicate them. Queries shorter
// than three characters return an empty list without a network call.
func (g *Geocoder) Suggest(ctx context.Context, query string) []Result {
	if len(query) < minQueryLength {
		return []Result{}
	}

	normalized := strings.ToLower(strings.TrimSpace(query))
	local := localSuggestions(normalized)

	external, err := g.search(ctx, query, maxSuggestions)
	if err != nil {
		g.logger.Warn("location search degraded to local matches",
			zap.String("query", query),
			zap.Error(err),
		)
		if len(local) > maxSuggestions {
			local = local[:maxSuggestions]
		}
		return local
	}

	combined := external
	for _, candidate := range local {
		if !containsDuplicate(external, candidate) {
			combined = append(combined, candidate)
		}
	}
	if len(combined) > maxSuggestions {
		combined = combined[:maxSuggestions]
	}
	return combined
}

// Resolve returns the best match for a query, or nil when the location cannot
// be resolved. The local table is consulted before the network; on failure or
// an empty response a bidirectional partial match is attempted before giving up.
func (g *Geocoder) Resolve(ctx context.Context, query string) *Result {
	normalized := strings.ToLower(strings.TrimSpace(query))

	if match := localExact(normalized); match != nil {
		g.logger.Debug("using built-in coordinates",
			zap.String("query", query),
			zap.String("city", match.DisplayName),
		)
		return &Result{Coords: match.Coords, DisplayName: query}
	}

	results, err := g.search(ctx, query, 1)
	if err != nil {
		g.logger.Warn("geocoding failed, trying built-in table",
			zap.String("query", query),
			zap.Error(err),
		)
		return localPartial(normalized)
	}

	if len(results) == 0 {
		g.logger.Debug("no geocoding results", zap.String("query", query))
		return localPartial(normalized)
	}
	return &results[0]
}

func (g *Geocoder) search(ctx context.Context, query string, limit int) ([]Result, error) {
	params := url.Values{}
	params.Set("format", "json")
	params.Set("q", query)
	params.Set("limit", strconv.Itoa(limit))
	params.Set("addressdetails", "1")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.baseURL+"/search?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build geocoding request: %w", err)
	}
	req.Header.Set("Accept-Language", "en-US,en;q=0.9")
	req.Header.Set("User-Agent", g.userAgent)

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("geocoding request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("geocoding failed with status: %d", resp.StatusCode)
	}

	var raw []nominatimResult
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, fmt.Errorf("failed to decode geocoding response: %w", err)
	}

	results := make([]Result, 0, len(raw))
	for _, item := range raw {
		lat, latErr := strconv.ParseFloat(item.Lat, 64)
		lon, lonErr := strconv.ParseFloat(item.Lon, 64)
		if latErr != nil || lonErr != nil {
			g.logger.Warn("skipping geocoding result with bad coordinates",
				zap.String("lat", item.Lat),
				zap.String("lon", item.Lon),
			)
			continue
		}
		results = append(results, Result{
			Coords:      geo.LatLng{Lat: lat, Lng: lon},
			DisplayName: item.DisplayName,
		})
	}
	return results, nil
}

func containsDuplicate(results []Result, candidate Result) bool {
	for _, r := range results {
		if math.Abs(r.Coords.Lat-candidate.Coords.Lat) < duplicateToleranceDeg &&
			math.Abs(r.Coords.Lng-candidate.Coords.Lng) < duplicateToleranceDeg {
			return true
		}
	}
	return false
}
