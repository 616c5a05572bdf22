package providers_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"te-backend/weather-service/internal/apperrors"
	"te-backend/weather-service/internal/providers"
)

type recordedCall struct {
	serviceName  string
	statusCode   int
	errorMessage string
}

type capturingRecorder struct {
	mu    sync.Mutex
	calls []recordedCall
}

func (r *capturingRecorder) Record(serviceName string, statusCode int, errorMessage string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, recordedCall{serviceName, statusCode, errorMessage})
}

func newTransport(attempts int, recorder *capturingRecorder) *providers.RetryingTransport {
	return providers.NewRetryingTransport(http.DefaultClient, attempts, 2*time.Second, recorder)
}

func TestRetryingTransportSucceedsFirstAttempt(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"days":[]}`))
	}))
	defer server.Close()

	recorder := &capturingRecorder{}
	transport := newTransport(3, recorder)

	body, statusCode, err := transport.Get(context.Background(), server.URL, "testVendor")

	require.NoError(t, err)
	require.Equal(t, http.StatusOK, statusCode)
	require.JSONEq(t, `{"days":[]}`, string(body))

	require.Len(t, recorder.calls, 1)
	require.Equal(t, "testVendor", recorder.calls[0].serviceName)
	require.Equal(t, http.StatusOK, recorder.calls[0].statusCode)
	require.Empty(t, recorder.calls[0].errorMessage)
}

func TestRetryingTransportRetriesUntilSuccess(t *testing.T) {
	var attempts int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts++
		if attempts < 3 {
			w.WriteHeader(http.StatusBadGateway)
			w.Write([]byte(`{"error":"upstream flapping"}`))
			return
		}
		w.Write([]byte(`{"ok":true}`))
	}))
	defer server.Close()

	recorder := &capturingRecorder{}
	transport := newTransport(3, recorder)

	body, statusCode, err := transport.Get(context.Background(), server.URL, "testVendor")

	require.NoError(t, err)
	require.Equal(t, http.StatusOK, statusCode)
	require.JSONEq(t, `{"ok":true}`, string(body))
	require.Equal(t, 3, attempts)

	require.Len(t, recorder.calls, 3)
	require.Equal(t, "upstream flapping", recorder.calls[0].errorMessage)
	require.Equal(t, http.StatusBadGateway, recorder.calls[1].statusCode)
}

func TestRetryingTransportExhaustionSurfacesVendorError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		w.Write([]byte(`{"error":"invalid api key"}`))
	}))
	defer server.Close()

	transport := newTransport(2, &capturingRecorder{})

	body, _, err := transport.Get(context.Background(), server.URL, "testVendor")

	require.Nil(t, body)
	require.Error(t, err)

	validationErr, ok := apperrors.AsValidationError(err)
	require.True(t, ok)
	require.Equal(t, http.StatusGatewayTimeout, validationErr.StatusCode)
	require.Equal(t, []string{"invalid api key"}, validationErr.Errors["Error"])
}

func TestRetryingTransportExhaustionWithoutVendorMessage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	transport := newTransport(2, &capturingRecorder{})

	_, _, err := transport.Get(context.Background(), server.URL, "testVendor")

	require.Error(t, err)

	validationErr, ok := apperrors.AsValidationError(err)
	require.True(t, ok)
	require.Equal(t, http.StatusGatewayTimeout, validationErr.StatusCode)
	require.Equal(t, []string{apperrors.MsgRetriesExhausted}, validationErr.Errors["Error"])
}

func TestRetryingTransportUnreachableHost(t *testing.T) {
	transport := newTransport(2, &capturingRecorder{})

	_, _, err := transport.Get(context.Background(), "http://127.0.0.1:1", "testVendor")

	require.Error(t, err)

	validationErr, ok := apperrors.AsValidationError(err)
	require.True(t, ok)
	require.Equal(t, http.StatusGatewayTimeout, validationErr.StatusCode)
}
