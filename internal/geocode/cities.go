package geocode

import (
	"strings"

	"github.com/urbanpulse/service-maps/internal/domain/geo"
)

// fallbackCity is one entry of the built-in city table consulted before and
// after the external geocoding service.
type fallbackCity struct {
	name   string
	coords geo.LatLng
}

// fallbackCities maps lowercase city names to coordinates. Kept as a slice so
// lookups are deterministic.
var fallbackCities = []fallbackCity{
	{"delhi", geo.LatLng{Lat: 28.6139, Lng: 77.2090}},
	{"mumbai", geo.LatLng{Lat: 19.0760, Lng: 72.8777}},
	{"bangalore", geo.LatLng{Lat: 12.9716, Lng: 77.5946}},
	{"hyderabad", geo.LatLng{Lat: 17.3850, Lng: 78.4867}},
	{"chennai", geo.LatLng{Lat: 13.0827, Lng: 80.2707}},
	{"kolkata", geo.LatLng{Lat: 22.5726, Lng: 88.3639}},
	{"ahmedabad", geo.LatLng{Lat: 23.0225, Lng: 72.5714}},
	{"pune", geo.LatLng{Lat: 18.5204, Lng: 73.8567}},
	{"jaipur", geo.LatLng{Lat: 26.9124, Lng: 75.7873}},
	{"lucknow", geo.LatLng{Lat: 26.8467, Lng: 80.9462}},
	{"new york", geo.LatLng{Lat: 40.7128, Lng: -74.0060}},
	{"london", geo.LatLng{Lat: 51.5074, Lng: -0.1278}},
	{"tokyo", geo.LatLng{Lat: 35.6762, Lng: 139.6503}},
	{"paris", geo.LatLng{Lat: 48.8566, Lng: 2.3522}},
	{"berlin", geo.LatLng{Lat: 52.5200, Lng: 13.4050}},
	{"rome", geo.LatLng{Lat: 41.9028, Lng: 12.4964}},
	{"beijing", geo.LatLng{Lat: 39.9042, Lng: 116.4074}},
	{"sydney", geo.LatLng{Lat: -33.8688, Lng: 151.2093}},
	{"rio de janeiro", geo.LatLng{Lat: -22.9068, Lng: -43.1729}},
	{"cairo", geo.LatLng{Lat: 30.0444, Lng: 31.2357}},
}

// titleCase capitalizes the first letter of a city name for display.
func titleCase(name string) string {
	if name == "" {
		return name
	}
	return strings.ToUpper(name[:1]) + name[1:]
}

// localSuggestions returns table entries whose name contains the normalized
// query.
func localSuggestions(normalized string) []Result {
	var matches []Result
	for _, city := range fallbackCities {
		if strings.Contains(city.name, normalized) {
			matches = append(matches, Result{
				Coords:      city.coords,
				DisplayName: titleCase(city.name),
			})
		}
	}
	return matches
}

// localExact returns the first table entry whose name is contained in the
// normalized query.
func localExact(normalized string) *Result {
	for _, city := range fallbackCities {
		if strings.Contains(normalized, city.name) {
			return &Result{Coords: city.coords, DisplayName: titleCase(city.name)}
		}
	}
	return nil
}

// localPartial matches in both directions: the query contains a known city or
// a known city contains the query.
func localPartial(normalized string) *Result {
	for _, city := range fallbackCities {
		if strings.Contains(normalized, city.name) || strings.Contains(city.name, normalized) {
			return &Result{Coords: city.coords, DisplayName: titleCase(city.name)}
		}
	}
	return nil
}
