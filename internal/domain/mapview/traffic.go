package mapview

import (
	"math/rand"

	"github.com/urbanpulse/service-maps/internal/domain/geo"
)

// CongestionLevel classifies a synthetic traffic point.
type CongestionLevel string

const (
	CongestionHigh   CongestionLevel = "high"
	CongestionMedium CongestionLevel = "medium"
	CongestionLow    CongestionLevel = "low"
)

// Color returns the marker color for this congestion level.
func (l CongestionLevel) Color() string {
	switch l {
	case CongestionHigh:
		return "red"
	case CongestionMedium:
		return "yellow"
	default:
		return "green"
	}
}

// TrafficPoint is one illustrative congestion marker.
type TrafficPoint struct {
	Position geo.LatLng      `json:"position"`
	Level    CongestionLevel `json:"level"`
	Color    string          `json:"color"`
}

// TrafficOverlay is a synthetic congestion overlay around the map center.
// It is a display simulation, not live data.
type TrafficOverlay struct {
	Synthetic bool           `json:"synthetic"`
	Points    []TrafficPoint `json:"points"`
	Legend    []LegendEntry  `json:"legend"`
}

// LegendEntry is one row of the traffic legend.
type LegendEntry struct {
	Label string `json:"label"`
	Color string `json:"color"`
}

// trafficPattern is the fixed offset/level layout around the center.
var trafficPattern = []struct {
	dLat, dLng float64
	level      CongestionLevel
}{
	{-0.005, -0.005, CongestionHigh},
	{0.005, 0.005, CongestionMedium},
	{-0.008, 0.008, CongestionLow},
	{0.008, -0.008, CongestionHigh},
	{0, 0.01, CongestionMedium},
}

// jitterDegrees bounds the random offset applied to each synthetic point.
const jitterDegrees = 0.002

// GenerateTrafficOverlay builds the synthetic overlay around the given center.
// The rng is injected so tests can seed it.
func GenerateTrafficOverlay(center geo.LatLng, rng *rand.Rand) TrafficOverlay {
	points := make([]TrafficPoint, 0, len(trafficPattern))
	for _, p := range trafficPattern {
		jLat := (rng.Float64()*2 - 1) * jitterDegrees
		jLng := (rng.Float64()*2 - 1) * jitterDegrees
		points = append(points, TrafficPoint{
			Position: geo.LatLng{Lat: center.Lat + p.dLat + jLat, Lng: center.Lng + p.dLng + jLng},
			Level:    p.level,
			Color:    p.level.Color(),
		})
	}

	return TrafficOverlay{
		Synthetic: true,
		Points:    points,
		Legend: []LegendEntry{
			{Label: "Heavy", Color: CongestionHigh.Color()},
			{Label: "Moderate", Color: CongestionMedium.Color()},
			{Label: "Light", Color: CongestionLow.Color()},
		},
	}
}
