package propertyservice_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"te-backend/weather-service/internal/apperrors"
	"te-backend/weather-service/internal/healthcheck"
	"te-backend/weather-service/internal/inmemorycache"
	"te-backend/weather-service/internal/propertyservice"
)

const propertyFixture = `{
	"data": {
		"location": {
			"lat": 40.7,
			"long": -74.0
		}
	},
	"message": "ok"
}`

func newClient(serverURL string) *propertyservice.GatewayClient {
	return propertyservice.NewGatewayClient(
		serverURL,
		http.DefaultClient,
		healthcheck.NewNoopRecorder(),
		inmemorycache.NewInMemoryCacheProvider(time.Minute),
		5*time.Minute,
	)
}

func TestCoordinatesResolvesProperty(t *testing.T) {
	var requestedPath string
	var gotAuth, gotCorrelation string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestedPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		gotCorrelation = r.Header.Get("Te-Correlation-Id")
		w.Write([]byte(propertyFixture))
	}))
	defer server.Close()

	client := newClient(server.URL)

	coords, err := client.Coordinates(context.Background(), 42, "Bearer token", "corr-123")

	require.NoError(t, err)
	require.Equal(t, "/backend/propertyService/properties/42/", requestedPath)
	require.Equal(t, "Bearer token", gotAuth)
	require.Equal(t, "corr-123", gotCorrelation)
	require.Equal(t, 40.7, coords.Latitude)
	require.Equal(t, -74.0, coords.Longitude)
}

func TestCoordinatesGeneratesCorrelationIDWhenAbsent(t *testing.T) {
	var gotCorrelation string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotCorrelation = r.Header.Get("Te-Correlation-Id")
		w.Write([]byte(propertyFixture))
	}))
	defer server.Close()

	client := newClient(server.URL)

	_, err := client.Coordinates(context.Background(), 42, "", "")

	require.NoError(t, err)
	_, parseErr := uuid.Parse(gotCorrelation)
	require.NoError(t, parseErr)
}

func TestCoordinatesCachesResult(t *testing.T) {
	var calls atomic.Int64
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.Write([]byte(propertyFixture))
	}))
	defer server.Close()

	client := newClient(server.URL)

	first, err := client.Coordinates(context.Background(), 42, "", "")
	require.NoError(t, err)

	second, err := client.Coordinates(context.Background(), 42, "", "")
	require.NoError(t, err)

	require.EqualValues(t, 1, calls.Load())
	require.Equal(t, first, second)
}

func TestCoordinatesNonOKStatusBecomesValidationError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"message":"Property not found."}`))
	}))
	defer server.Close()

	client := newClient(server.URL)

	coords, err := client.Coordinates(context.Background(), 42, "", "")

	require.Nil(t, coords)
	require.Error(t, err)

	validationErr, ok := apperrors.AsValidationError(err)
	require.True(t, ok)
	require.Equal(t, http.StatusNotFound, validationErr.StatusCode)
	require.Equal(t, []string{"Property not found."}, validationErr.Errors["Error"])
}

func TestCoordinatesTransportError(t *testing.T) {
	client := newClient("http://127.0.0.1:1")

	coords, err := client.Coordinates(context.Background(), 42, "", "")

	require.Nil(t, coords)
	require.Error(t, err)

	_, ok := apperrors.AsValidationError(err)
	require.False(t, ok)
}
