package routing_test

import (
	"context"
	"math"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urbanpulse/service-maps/internal/domain/geo"
	"github.com/urbanpulse/service-maps/internal/domain/route"
	"github.com/urbanpulse/service-maps/internal/routing"
	"go.uber.org/zap"
)

var (
	delhi  = geo.LatLng{Lat: 28.6139, Lng: 77.2090}
	mumbai = geo.LatLng{Lat: 19.0760, Lng: 72.8777}
)

func newTestRouter(t *testing.T, handler http.HandlerFunc) *routing.Router {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return routing.NewRouter(srv.URL, "SmartCityDashboard/1.0", zap.NewNop())
}

func TestFetchRoute_Success(t *testing.T) {
	var gotPath string
	r := newTestRouter(t, func(w http.ResponseWriter, req *http.Request) {
		gotPath = req.URL.Path
		assert.Equal(t, "full", req.URL.Query().Get("overview"))
		assert.Equal(t, "geojson", req.URL.Query().Get("geometries"))
		assert.Empty(t, req.URL.Query().Get("alternatives"))
		w.Write([]byte(`{
			"code": "Ok",
			"routes": [{
				"geometry": {"coordinates": [[77.2090,28.6139],[75.0,24.0],[72.8777,19.0760]]},
				"distance": 1400000,
				"duration": 50400
			}]
		}`))
	})

	result := r.FetchRoute(context.Background(), delhi, mumbai, routing.Options{VehicleType: route.VehicleCar})
	require.NotNil(t, result)
	assert.False(t, result.Fallback)
	require.Len(t, result.Path, 3)

	// Geometry arrives lon,lat and is normalized to lat,lng.
	assert.Equal(t, delhi, result.Path[0])
	assert.Equal(t, mumbai, result.Path[2])
	assert.Equal(t, 1400000.0, result.DistanceMeters)
	assert.Equal(t, 50400.0, result.DurationSeconds)

	// Coordinates in the URL are lon,lat; profile comes from the vehicle type.
	assert.Contains(t, gotPath, "/route/v1/driving/")
	assert.Contains(t, gotPath, "77.209000,28.613900;72.877700,19.076000")
}

func TestFetchRoute_ProfileByVehicleType(t *testing.T) {
	var gotPath string
	r := newTestRouter(t, func(w http.ResponseWriter, req *http.Request) {
		gotPath = req.URL.Path
		w.Write([]byte(`{"code":"Ok","routes":[{"geometry":{"coordinates":[[0,0],[1,1]]},"distance":1,"duration":1}]}`))
	})

	r.FetchRoute(context.Background(), delhi, mumbai, routing.Options{VehicleType: route.VehicleBike})
	assert.Contains(t, gotPath, "/route/v1/cycling/")

	r.FetchRoute(context.Background(), delhi, mumbai, routing.Options{VehicleType: route.VehicleBus})
	assert.Contains(t, gotPath, "/route/v1/driving/")
}

func TestFetchRoute_AvoidTrafficPicksFastestAlternative(t *testing.T) {
	r := newTestRouter(t, func(w http.ResponseWriter, req *http.Request) {
		assert.Equal(t, "true", req.URL.Query().Get("alternatives"))
		w.Write([]byte(`{
			"code": "Ok",
			"routes": [
				{"geometry":{"coordinates":[[0,0],[1,1]]},"distance":9000,"duration":900},
				{"geometry":{"coordinates":[[0,0],[2,2]]},"distance":6500,"duration":650},
				{"geometry":{"coordinates":[[0,0],[3,3]]},"distance":8000,"duration":800}
			]
		}`))
	})

	result := r.FetchRoute(context.Background(), delhi, mumbai, routing.Options{
		VehicleType:  route.VehicleCar,
		AvoidTraffic: true,
	})
	require.NotNil(t, result)
	assert.Equal(t, 650.0, result.DurationSeconds)
	assert.Equal(t, 6500.0, result.DistanceMeters)
}

func TestFetchRoute_NonOkCodeMeansNoRoute(t *testing.T) {
	r := newTestRouter(t, func(w http.ResponseWriter, req *http.Request) {
		w.Write([]byte(`{"code":"NoRoute","routes":[]}`))
	})

	assert.Nil(t, r.FetchRoute(context.Background(), delhi, mumbai, routing.Options{VehicleType: route.VehicleCar}))
}

func TestFetchRoute_EmptyRoutesMeansNoRoute(t *testing.T) {
	r := newTestRouter(t, func(w http.ResponseWriter, req *http.Request) {
		w.Write([]byte(`{"code":"Ok","routes":[]}`))
	})

	assert.Nil(t, r.FetchRoute(context.Background(), delhi, mumbai, routing.Options{VehicleType: route.VehicleCar}))
}

func TestFetchRoute_EmptyGeometryMeansNoRoute(t *testing.T) {
	r := newTestRouter(t, func(w http.ResponseWriter, req *http.Request) {
		w.Write([]byte(`{"code":"Ok","routes":[{"geometry":{"coordinates":[]},"distance":1,"duration":1}]}`))
	})

	assert.Nil(t, r.FetchRoute(context.Background(), delhi, mumbai, routing.Options{VehicleType: route.VehicleCar}))
}

func TestFetchRoute_UnreachableServiceFallsBackToStraightLine(t *testing.T) {
	r := routing.NewRouter("http://127.0.0.1:1", "SmartCityDashboard/1.0", zap.NewNop())

	result := r.FetchRoute(context.Background(), delhi, mumbai, routing.Options{VehicleType: route.VehicleCar})
	require.NotNil(t, result)
	assert.True(t, result.Fallback)
	require.Len(t, result.Path, 2)
	assert.Equal(t, delhi, result.Path[0])
	assert.Equal(t, mumbai, result.Path[1])

	expected := geo.Distance(delhi, mumbai)
	assert.Equal(t, expected, result.DistanceMeters)
	assert.InDelta(t, expected/10, result.DurationSeconds, 1e-9)
}

func TestFetchRoute_FallbackIsIdempotent(t *testing.T) {
	r := routing.NewRouter("http://127.0.0.1:1", "SmartCityDashboard/1.0", zap.NewNop())

	first := r.FetchRoute(context.Background(), delhi, mumbai, routing.Options{VehicleType: route.VehicleCar})
	second := r.FetchRoute(context.Background(), delhi, mumbai, routing.Options{VehicleType: route.VehicleCar})
	assert.Equal(t, first, second)
}

func TestFetchRoute_ServerErrorFallsBack(t *testing.T) {
	r := newTestRouter(t, func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})

	result := r.FetchRoute(context.Background(), delhi, mumbai, routing.Options{VehicleType: route.VehicleCar})
	require.NotNil(t, result)
	assert.True(t, result.Fallback)
}

func TestFetchRoute_InvalidCoordinatesFallBack(t *testing.T) {
	called := false
	r := newTestRouter(t, func(w http.ResponseWriter, req *http.Request) {
		called = true
	})

	bad := geo.LatLng{Lat: math.NaN(), Lng: 77}
	result := r.FetchRoute(context.Background(), bad, mumbai, routing.Options{VehicleType: route.VehicleCar})
	require.NotNil(t, result)
	assert.True(t, result.Fallback)
	assert.False(t, called, "invalid coordinates must not reach the routing service")
}
