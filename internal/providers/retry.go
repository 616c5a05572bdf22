package providers

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/sony/gobreaker"

	"te-backend/weather-service/internal/apperrors"
	"te-backend/weather-service/internal/healthcheck"
)

// RetryingTransport performs outbound vendor calls with a bounded number of
// attempts and a per-attempt timeout. Every attempt's outcome is reported to
// the health-check recorder; a circuit breaker per upstream guards against
// hammering a vendor that keeps failing.
//
// When all attempts are exhausted the last vendor error message (or a generic
// one) is surfaced as a 504 validation error.
type RetryingTransport struct {
	client   *http.Client
	attempts int
	timeout  time.Duration
	health   healthcheck.Recorder

	mu       sync.Mutex
	breakers map[string]*gobreaker.CircuitBreaker
}

func NewRetryingTransport(client *http.Client, attempts int, timeout time.Duration, health healthcheck.Recorder) *RetryingTransport {
	if attempts < 1 {
		attempts = 1
	}
	return &RetryingTransport{
		client:   client,
		attempts: attempts,
		timeout:  timeout,
		health:   health,
		breakers: make(map[string]*gobreaker.CircuitBreaker),
	}
}

type attemptResult struct {
	statusCode int
	body       []byte
}

// Get fetches url, retrying until a 200 or until attempts run out. It returns
// the response body and status of the successful attempt.
func (t *RetryingTransport) Get(ctx context.Context, url, apiName string) ([]byte, int, error) {
	breaker := t.breakerFor(apiName)

	var lastErrorMessage string

	for attempt := 0; attempt < t.attempts; attempt++ {
		result, err := t.doAttempt(ctx, breaker, url, apiName)
		if err != nil {
			lastErrorMessage = ""
			log.Error().Err(err).Str("api", apiName).Int("attempt", attempt+1).Msg("vendor request failed")
		} else {
			errorMessage := vendorErrorMessage(result.body)
			t.health.Record(apiName, result.statusCode, errorMessage)

			if result.statusCode == http.StatusOK {
				return result.body, result.statusCode, nil
			}

			lastErrorMessage = errorMessage
			log.Error().
				Str("api", apiName).
				Int("status_code", result.statusCode).
				Int("attempt", attempt+1).
				Str("error", errorMessage).
				Msg("vendor returned non-200 response")
		}
	}

	if lastErrorMessage == "" {
		lastErrorMessage = apperrors.MsgRetriesExhausted
	}
	log.Error().Str("api", apiName).Msgf("all retry attempts are exhausted and the final log is: %s", lastErrorMessage)

	return nil, 0, apperrors.NewValidationError(http.StatusGatewayTimeout, apperrors.MsgBadRequest, lastErrorMessage)
}

func (t *RetryingTransport) doAttempt(ctx context.Context, breaker *gobreaker.CircuitBreaker, url, apiName string) (*attemptResult, error) {
	attemptCtx, cancel := context.WithTimeout(ctx, t.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(attemptCtx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	result, err := breaker.Execute(func() (interface{}, error) {
		resp, execErr := t.client.Do(req)
		if execErr != nil {
			return nil, execErr
		}
		defer resp.Body.Close()

		body, readErr := io.ReadAll(resp.Body)
		if readErr != nil {
			return nil, readErr
		}
		return &attemptResult{statusCode: resp.StatusCode, body: body}, nil
	})
	if err != nil {
		return nil, err
	}

	attemptRes, ok := result.(*attemptResult)
	if !ok {
		return nil, fmt.Errorf("unexpected result type from circuit breaker")
	}
	return attemptRes, nil
}

func (t *RetryingTransport) breakerFor(apiName string) *gobreaker.CircuitBreaker {
	t.mu.Lock()
	defer t.mu.Unlock()

	breaker, ok := t.breakers[apiName]
	if !ok {
		breaker = gobreaker.NewCircuitBreaker(gobreaker.Settings{Name: apiName})
		t.breakers[apiName] = breaker
	}
	return breaker
}

// vendorErrorMessage pulls the "error" field, if any, out of a vendor
// response body. Both vendors report errors under that key.
func vendorErrorMessage(body []byte) string {
	var parsed map[string]interface{}
	if err := json.Unmarshal(body, &parsed); err != nil {
		return ""
	}
	if errValue, ok := parsed["error"]; ok && errValue != nil {
		return fmt.Sprintf("%v", errValue)
	}
	return ""
}
