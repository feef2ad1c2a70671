package config

import (
	"strings"

	"github.com/spf13/viper"
)

// ServiceConfig holds all configuration for the maps service.
type ServiceConfig struct {
	Port            string
	AppEnv          string
	GeocodingURL    string
	RoutingURL      string
	GeolocationURL  string
	ClientUserAgent string
	KafkaBrokers    []string
}

// Load reads configuration from environment variables with a MAPS_ prefix.
func Load() (*ServiceConfig, error) {
	v := viper.New()
	v.SetEnvPrefix("MAPS")
	v.AutomaticEnv()

	v.SetDefault("SERVICE_PORT", "8084")
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("GEOCODING_URL", "https://nominatim.openstreetmap.org")
	v.SetDefault("ROUTING_URL", "https://router.project-osrm.org")
	v.SetDefault("GEOLOCATION_URL", "http://ip-api.com")
	v.SetDefault("CLIENT_USER_AGENT", "SmartCityDashboard/1.0")
	v.SetDefault("KAFKA_BROKERS", "")

	var brokers []string
	if raw := v.GetString("KAFKA_BROKERS"); raw != "" {
		for _, b := range strings.Split(raw, ",") {
			if b = strings.TrimSpace(b); b != "" {
				brokers = append(brokers, b)
			}
		}
	}

	return &ServiceConfig{
		Port:            ":" + strings.TrimPrefix(v.GetString("SERVICE_PORT"), ":"),
		AppEnv:          v.GetString("APP_ENV"),
		GeocodingURL:    v.GetString("GEOCODING_URL"),
		RoutingURL:      v.GetString("ROUTING_URL"),
		GeolocationURL:  v.GetString("GEOLOCATION_URL"),
		ClientUserAgent: v.GetString("CLIENT_USER_AGENT"),
		KafkaBrokers:    brokers,
	}, nil
}
