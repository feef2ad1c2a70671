package mapview_test

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urbanpulse/service-maps/internal/domain/geo"
	"github.com/urbanpulse/service-maps/internal/domain/mapview"
)

func TestTileURL(t *testing.T) {
	satellite := mapview.TileURL(mapview.StyleSatellite, mapview.ThemeLight)
	assert.Contains(t, satellite, "World_Imagery")
	// Satellite imagery ignores the theme.
	assert.Equal(t, satellite, mapview.TileURL(mapview.StyleSatellite, mapview.ThemeDark))

	assert.Contains(t, mapview.TileURL(mapview.StyleStandard, mapview.ThemeDark), "dark_all")
	assert.Contains(t, mapview.TileURL(mapview.StyleStandard, mapview.ThemeLight), "light_all")
}

func TestBanner_Expiry(t *testing.T) {
	now := time.Now()

	noRoute := mapview.NewNoRouteBanner(now)
	assert.True(t, noRoute.Active(now))
	assert.True(t, noRoute.Active(now.Add(4*time.Second)))
	assert.False(t, noRoute.Active(now.Add(6*time.Second)))

	errBanner := mapview.NewErrorBanner(now, "routing request timed out after 10s")
	assert.True(t, errBanner.Active(now.Add(6*time.Second)))
	assert.False(t, errBanner.Active(now.Add(8*time.Second)))

	loading := mapview.NewLoadingBanner()
	assert.True(t, loading.Active(now.Add(time.Hour)))
}

func TestNewErrorBanner_HelpText(t *testing.T) {
	now := time.Now()
	tests := []struct {
		message string
		help    string
	}{
		{"source or destination is empty", "Please enter both starting point and destination."},
		{"location coordinates are out of valid range", "Try entering more specific location names."},
		{"routing request timed out after 10s", "The routing service is taking too long to respond. Please try again."},
		{"something else entirely", "Please try different locations or check your connection."},
	}

	for _, tt := range tests {
		t.Run(tt.message, func(t *testing.T) {
			b := mapview.NewErrorBanner(now, tt.message)
			assert.Equal(t, tt.help, b.Help)
			assert.Contains(t, b.Message, tt.message)
		})
	}
}

func TestGenerateTrafficOverlay(t *testing.T) {
	center := geo.LatLng{Lat: 28.6139, Lng: 77.2090}
	overlay := mapview.GenerateTrafficOverlay(center, rand.New(rand.NewSource(1)))

	assert.True(t, overlay.Synthetic)
	require.Len(t, overlay.Points, 5)
	require.Len(t, overlay.Legend, 3)

	levels := map[mapview.CongestionLevel]int{}
	for _, p := range overlay.Points {
		levels[p.Level]++
		// Each point stays near the center despite jitter.
		assert.InDelta(t, center.Lat, p.Position.Lat, 0.02)
		assert.InDelta(t, center.Lng, p.Position.Lng, 0.02)
		assert.Equal(t, p.Level.Color(), p.Color)
	}
	assert.Equal(t, 2, levels[mapview.CongestionHigh])
	assert.Equal(t, 2, levels[mapview.CongestionMedium])
	assert.Equal(t, 1, levels[mapview.CongestionLow])
}

func TestFitBounds(t *testing.T) {
	points := []geo.LatLng{
		{Lat: 10, Lng: 20},
		{Lat: 30, Lng: 40},
		{Lat: 20, Lng: 30},
	}

	bounds, ok := mapview.FitBounds(points, 0)
	require.True(t, ok)
	assert.Equal(t, geo.LatLng{Lat: 10, Lng: 20}, bounds.SouthWest)
	assert.Equal(t, geo.LatLng{Lat: 30, Lng: 40}, bounds.NorthEast)
	assert.Equal(t, geo.LatLng{Lat: 20, Lng: 30}, bounds.Center())

	padded, ok := mapview.FitBounds(points, 10)
	require.True(t, ok)
	assert.InDelta(t, 8, padded.SouthWest.Lat, 1e-9)
	assert.InDelta(t, 42, padded.NorthEast.Lng, 1e-9)

	_, ok = mapview.FitBounds(nil, 10)
	assert.False(t, ok)
}

func TestNewMarker_DefaultColor(t *testing.T) {
	m := mapview.NewMarker(geo.LatLng{Lat: 1, Lng: 2}, "", "")
	assert.Equal(t, mapview.DefaultMarkerColor, m.Color)
	assert.NotEqual(t, m.ID.String(), "00000000-0000-0000-0000-000000000000")

	red := mapview.NewMarker(geo.LatLng{Lat: 1, Lng: 2}, "stop", "red")
	assert.Equal(t, "red", red.Color)
}
