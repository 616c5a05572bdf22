package propertyservice

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"te-backend/weather-service/internal/apperrors"
	"te-backend/weather-service/internal/healthcheck"
	"te-backend/weather-service/internal/inmemorycache"
)

// ServiceName is what property-service calls are recorded under in the
// health-check sink.
const ServiceName = "backendGatewayService"

type Coordinates struct {
	Latitude  float64
	Longitude float64
}

// Client resolves a property's coordinates through the backend gateway.
type Client interface {
	Coordinates(ctx context.Context, propertyID int64, token, correlationID string) (*Coordinates, error)
}

type GatewayClient struct {
	gatewayHost string
	client      *http.Client
	health      healthcheck.Recorder
	cache       inmemorycache.Cache
	cacheTTL    time.Duration
}

func NewGatewayClient(gatewayHost string, client *http.Client, health healthcheck.Recorder, cache inmemorycache.Cache, cacheTTL time.Duration) *GatewayClient {
	return &GatewayClient{
		gatewayHost: gatewayHost,
		client:      client,
		health:      health,
		cache:       cache,
		cacheTTL:    cacheTTL,
	}
}

type propertyResponse struct {
	Data struct {
		Location struct {
			Lat  float64 `json:"lat"`
			Long float64 `json:"long"`
		} `json:"location"`
	} `json:"data"`
	Message string `json:"message"`
}

func (c *GatewayClient) Coordinates(ctx context.Context, propertyID int64, token, correlationID string) (*Coordinates, error) {
	cacheKey := strconv.FormatInt(propertyID, 10)
	if cached, found, err := c.cache.Get(cacheKey); err == nil && found {
		return &Coordinates{Latitude: cached.Latitude, Longitude: cached.Longitude}, nil
	}

	url := fmt.Sprintf("%s/backend/propertyService/properties/%d/", c.gatewayHost, propertyID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json; odata=verbose")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Authorization", token)
	if correlationID == "" {
		correlationID = uuid.NewString()
	}
	req.Header.Set("Te-Correlation-Id", correlationID)

	resp, err := c.client.Do(req)
	if err != nil {
		c.health.Record(ServiceName, 0, err.Error())
		return nil, err
	}
	defer resp.Body.Close()

	var parsed propertyResponse
	decodeErr := json.NewDecoder(resp.Body).Decode(&parsed)

	if resp.StatusCode != http.StatusOK {
		c.health.Record(ServiceName, resp.StatusCode, parsed.Message)
		log.Error().
			Int64("property_id", propertyID).
			Int("status_code", resp.StatusCode).
			Msg("failed to fetch property detail")

		detail := parsed.Message
		if detail == "" {
			detail = "Failed to fetch property detail."
		}
		return nil, apperrors.NewValidationError(resp.StatusCode, apperrors.MsgBadRequest, detail)
	}

	c.health.Record(ServiceName, resp.StatusCode, "")
	if decodeErr != nil {
		return nil, fmt.Errorf("property service returned malformed JSON: %w", decodeErr)
	}

	coords := &Coordinates{
		Latitude:  parsed.Data.Location.Lat,
		Longitude: parsed.Data.Location.Long,
	}

	if err := c.cache.Set(cacheKey, &inmemorycache.CoordinatesCacheData{
		Latitude:  coords.Latitude,
		Longitude: coords.Longitude,
	}, c.cacheTTL); err != nil {
		log.Warn().Err(err).Msg("failed to cache property coordinates")
	}

	log.Info().Int64("property_id", propertyID).Msg("property detail fetched successfully")
	return coords, nil
}
