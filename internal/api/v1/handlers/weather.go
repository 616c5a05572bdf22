package handlers

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/rs/zerolog/log"

	"te-backend/weather-service/internal/apperrors"
	"te-backend/weather-service/internal/service"
)

const (
	forecastsPath = "/weatherService/forecasts/"
	// Unauthenticated mirror of the forecasts route.
	gtepPath = "/weatherService/forecasts/gtep"
)

type WeatherHandler struct {
	forecastService service.ForecastService
	timeout         time.Duration
}

func NewWeatherHandler(forecastService service.ForecastService, timeout time.Duration) *WeatherHandler {
	return &WeatherHandler{
		forecastService: forecastService,
		timeout:         timeout,
	}
}

func (h *WeatherHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	path := r.URL.Path
	switch {
	case r.Method == http.MethodGet && (path == forecastsPath || path == forecastsPath[:len(forecastsPath)-1]):
		h.GetForecasts(w, r)
	case r.Method == http.MethodGet && (path == gtepPath || path == gtepPath+"/"):
		h.GetForecasts(w, r)
	default:
		respondNotFound(w, path)
	}
}

// GetForecasts serves the forecast series for a property or an explicit
// coordinate pair.
func (h *WeatherHandler) GetForecasts(w http.ResponseWriter, r *http.Request) {
	query, ok := h.parseQuery(w, r)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	location, err := h.forecastService.Forecast(ctx, query)
	if err != nil {
		if validationErr, isValidation := apperrors.AsValidationError(err); isValidation {
			log.Error().Err(err).Msg("forecast request rejected")
			respondValidationError(w, validationErr.StatusCode, validationErr.Errors, validationErr.Message)
			return
		}
		log.Error().Err(err).Msg("failed to get weather forecast")
		respondInternalError(w)
		return
	}

	respondSuccess(w, http.StatusOK, newForecastResponse(location))
}

func (h *WeatherHandler) parseQuery(w http.ResponseWriter, r *http.Request) (service.ForecastQuery, bool) {
	params := r.URL.Query()

	propertyIDRaw := params.Get("propertyId")
	latitudeRaw := params.Get("latitude")
	longitudeRaw := params.Get("longitude")

	if propertyIDRaw == "" && (latitudeRaw == "" || longitudeRaw == "") {
		log.Error().Msg(apperrors.MsgRequiredParams)
		respondValidationError(
			w,
			http.StatusBadRequest,
			map[string][]string{"Error": {apperrors.MsgRequiredParams}},
			apperrors.MsgBadRequest,
		)
		return service.ForecastQuery{}, false
	}

	query := service.ForecastQuery{
		Token:         r.Header.Get("Authorization"),
		CorrelationID: r.Header.Get("Te-Correlation-Id"),
	}

	if propertyIDRaw != "" {
		propertyID, err := strconv.ParseInt(propertyIDRaw, 10, 64)
		if err != nil {
			respondValidationError(
				w,
				http.StatusBadRequest,
				map[string][]string{"propertyId": {"A valid integer is required."}},
				apperrors.MsgBadRequest,
			)
			return service.ForecastQuery{}, false
		}
		query.PropertyID = &propertyID
	} else {
		latitude, err := strconv.ParseFloat(latitudeRaw, 64)
		if err != nil {
			respondValidationError(
				w,
				http.StatusBadRequest,
				map[string][]string{"latitude": {"A valid number is required."}},
				apperrors.MsgBadRequest,
			)
			return service.ForecastQuery{}, false
		}
		longitude, err := strconv.ParseFloat(longitudeRaw, 64)
		if err != nil {
			respondValidationError(
				w,
				http.StatusBadRequest,
				map[string][]string{"longitude": {"A valid number is required."}},
				apperrors.MsgBadRequest,
			)
			return service.ForecastQuery{}, false
		}
		query.Latitude = &latitude
		query.Longitude = &longitude
	}

	if staleRaw := params.Get("staleDataSeconds"); staleRaw != "" {
		staleDataSeconds, err := strconv.ParseInt(staleRaw, 10, 64)
		if err != nil {
			respondValidationError(
				w,
				http.StatusBadRequest,
				map[string][]string{"staleDataSeconds": {"A valid integer is required."}},
				apperrors.MsgBadRequest,
			)
			return service.ForecastQuery{}, false
		}
		query.StaleDataSeconds = &staleDataSeconds
	}

	return query, true
}
