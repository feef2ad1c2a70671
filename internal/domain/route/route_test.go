package route_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urbanpulse/service-maps/internal/domain/geo"
	"github.com/urbanpulse/service-maps/internal/domain/route"
)

func TestVehicleType_Profile(t *testing.T) {
	tests := []struct {
		vehicle route.VehicleType
		profile string
	}{
		{route.VehicleCar, "driving"},
		{route.VehicleBus, "driving"},
		{route.VehicleBike, "cycling"},
		{route.VehicleWalk, "walking"},
		{route.VehicleType("hovercraft"), "driving"},
	}

	for _, tt := range tests {
		t.Run(string(tt.vehicle), func(t *testing.T) {
			assert.Equal(t, tt.profile, tt.vehicle.Profile())
		})
	}
}

func TestParseVehicleType(t *testing.T) {
	v, err := route.ParseVehicleType("bike")
	require.NoError(t, err)
	assert.Equal(t, route.VehicleBike, v)

	_, err = route.ParseVehicleType("boat")
	assert.Error(t, err)
}

func TestRequest_Validate(t *testing.T) {
	tests := []struct {
		name    string
		req     route.Request
		wantErr string
	}{
		{
			name: "valid",
			req:  route.Request{Source: "Delhi", Destination: "Mumbai", VehicleType: route.VehicleCar},
		},
		{
			name:    "empty source",
			req:     route.Request{Source: "  ", Destination: "Mumbai"},
			wantErr: "source or destination is empty",
		},
		{
			name:    "empty destination",
			req:     route.Request{Source: "Delhi", Destination: ""},
			wantErr: "source or destination is empty",
		},
		{
			name:    "same endpoints ignoring case and spacing",
			req:     route.Request{Source: " Paris ", Destination: "paris"},
			wantErr: "source and destination cannot be the same location",
		},
		{
			name:    "unknown vehicle",
			req:     route.Request{Source: "Delhi", Destination: "Mumbai", VehicleType: "boat"},
			wantErr: "invalid vehicle type: boat",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.Equal(t, tt.wantErr, err.Error())
			}
		})
	}
}

func TestRequest_VehicleDefaultsToCar(t *testing.T) {
	req := route.Request{Source: "Delhi", Destination: "Mumbai"}
	assert.Equal(t, route.VehicleCar, req.Vehicle())
}

func TestResult_Valid(t *testing.T) {
	a := geo.LatLng{Lat: 1, Lng: 2}
	b := geo.LatLng{Lat: 3, Lng: 4}

	assert.True(t, route.Result{Path: []geo.LatLng{a, b}}.Valid())
	assert.False(t, route.Result{Path: []geo.LatLng{a}}.Valid())
	assert.False(t, route.Result{}.Valid())
}
