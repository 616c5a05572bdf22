package service

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"te-backend/weather-service/internal/db/forecast"
	"te-backend/weather-service/internal/propertyservice"
	"te-backend/weather-service/internal/providers"
)

// ForecastQuery carries the resolved request parameters. Exactly one of
// PropertyID or the Latitude/Longitude pair must be set; the handler
// validates that before calling the service.
type ForecastQuery struct {
	PropertyID       *int64
	Latitude         *float64
	Longitude        *float64
	StaleDataSeconds *int64
	Token            string
	CorrelationID    string
}

type ForecastService interface {
	Forecast(ctx context.Context, query ForecastQuery) (*forecast.Location, error)
}

type forecastService struct {
	orchestrator            FetchOrchestrator
	repo                    forecast.Repository
	properties              propertyservice.Client
	staleDataSecondsDefault int64
}

func NewForecastService(
	orchestrator FetchOrchestrator,
	repo forecast.Repository,
	properties propertyservice.Client,
	staleDataSecondsDefault int64,
) ForecastService {
	return &forecastService{
		orchestrator:            orchestrator,
		repo:                    repo,
		properties:              properties,
		staleDataSecondsDefault: staleDataSecondsDefault,
	}
}

// Forecast returns the aggregated day series for the queried location,
// serving a persisted record when one is still inside the staleness window
// and running a full fetch-aggregate-persist cycle otherwise. An explicit
// staleDataSeconds of 0 always forces a refresh.
func (s *forecastService) Forecast(ctx context.Context, query ForecastQuery) (*forecast.Location, error) {
	staleDataSeconds := s.staleDataSecondsDefault
	if query.StaleDataSeconds != nil {
		staleDataSeconds = *query.StaleDataSeconds
	}

	var latitude, longitude float64
	if query.PropertyID != nil {
		coords, err := s.properties.Coordinates(ctx, *query.PropertyID, query.Token, query.CorrelationID)
		if err != nil {
			return nil, err
		}
		latitude, longitude = coords.Latitude, coords.Longitude
	} else {
		latitude, longitude = *query.Latitude, *query.Longitude
	}

	staleThreshold := time.Now().Unix() - staleDataSeconds
	location, err := s.repo.FindFreshLocation(latitude, longitude, query.PropertyID, staleThreshold)
	if err != nil {
		return nil, err
	}

	if location != nil && staleDataSeconds != 0 {
		log.Info().
			Int64("location_public_id", location.PublicID).
			Msg("returning cached weather data")
		return s.repo.GetForecast(location.ID)
	}

	return s.refreshForecast(ctx, query.PropertyID, latitude, longitude)
}

func (s *forecastService) refreshForecast(ctx context.Context, propertyID *int64, latitude, longitude float64) (*forecast.Location, error) {
	results := s.orchestrator.FetchAll(ctx, latitude, longitude)

	// A failing vendor degrades to an empty series; only when every vendor
	// failed and none returned data is the last vendor error surfaced.
	var (
		vendorSeries []VendorSeries
		lastErr      error
		anySucceeded bool
	)
	for _, tag := range s.orchestrator.VendorOrder() {
		result := results[tag]
		if result.Err != nil {
			lastErr = result.Err
		} else {
			anySucceeded = true
		}
		vendorSeries = append(vendorSeries, VendorSeries{Tag: tag, Days: result.Days})
	}
	if !anySucceeded && lastErr != nil {
		return nil, lastErr
	}

	aggregated := Aggregate(vendorSeries)

	vendorDays := make([]forecast.VendorDays, 0, len(vendorSeries))
	for _, series := range vendorSeries {
		days := make([]forecast.DayRecord, 0, len(series.Days))
		for _, day := range series.Days {
			days = append(days, toDayRecord(day, providers.Classify(series.Tag, day.Condition)))
		}
		vendorDays = append(vendorDays, forecast.VendorDays{Tag: series.Tag, Days: days})
	}

	aggregatedDays := make([]forecast.DayRecord, 0, len(aggregated))
	for _, day := range aggregated {
		aggregatedDays = append(aggregatedDays, toDayRecord(day, day.Condition))
	}

	location, err := s.repo.SaveForecastCycle(propertyID, latitude, longitude, vendorDays, aggregatedDays)
	if err != nil {
		return nil, err
	}

	log.Info().
		Int64("location_public_id", location.PublicID).
		Int("aggregated_days", len(aggregatedDays)).
		Msg("stored fresh weather forecast cycle")

	return s.repo.GetForecast(location.ID)
}

func toDayRecord(day providers.CanonicalDay, weatherTypeName string) forecast.DayRecord {
	return forecast.DayRecord{
		ForecastedDay:           day.ForecastedDay,
		Timestamp:               day.Timestamp,
		WeatherTypeName:         weatherTypeName,
		PrecipChance:            day.PrecipChance,
		PrecipWaterAccumulation: day.PrecipWaterAccumulation,
		Temperature:             day.Temperature,
		DayHighTemp:             day.DayHighTemp,
		DayLowTemp:              day.DayLowTemp,
		PrecipSnowAccumulation:  day.PrecipSnowAccumulation,
	}
}
