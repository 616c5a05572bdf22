package service_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"te-backend/weather-service/internal/apperrors"
	"te-backend/weather-service/internal/db/forecast"
	"te-backend/weather-service/internal/mocks"
	"te-backend/weather-service/internal/propertyservice"
	"te-backend/weather-service/internal/providers"
	"te-backend/weather-service/internal/service"
)

type ForecastServiceTestSuite struct {
	suite.Suite
	orchestrator *mocks.MockFetchOrchestrator
	repo         *mocks.MockRepository
	properties   *mocks.MockClient
	service      service.ForecastService
	ctx          context.Context
}

func (s *ForecastServiceTestSuite) SetupTest() {
	s.orchestrator = mocks.NewMockFetchOrchestrator(s.T())
	s.repo = mocks.NewMockRepository(s.T())
	s.properties = mocks.NewMockClient(s.T())

	s.service = service.NewForecastService(s.orchestrator, s.repo, s.properties, 86400)
	s.ctx = context.Background()
}

func (s *ForecastServiceTestSuite) vendorOrder() []string {
	return []string{providers.TagVisualCrossing, providers.TagAeris}
}

func twoDayResults() map[string]service.VendorResult {
	return map[string]service.VendorResult{
		providers.TagVisualCrossing: {
			Tag: providers.TagVisualCrossing,
			Days: []providers.CanonicalDay{
				{ForecastedDay: "2026-08-30", Timestamp: int64Ptr(1787500800), Temperature: floatPtr(70), Condition: "Rain"},
				{ForecastedDay: "2026-08-31", Timestamp: int64Ptr(1787587200), Temperature: floatPtr(72), Condition: "Partially cloudy"},
			},
		},
		providers.TagAeris: {
			Tag: providers.TagAeris,
			Days: []providers.CanonicalDay{
				{ForecastedDay: "2026-08-30", Timestamp: int64Ptr(1787500800), Temperature: floatPtr(68), Condition: "::S"},
				{ForecastedDay: "2026-08-31", Timestamp: int64Ptr(1787587200), Temperature: floatPtr(74), Condition: ""},
			},
		},
	}
}

func (s *ForecastServiceTestSuite) TestFreshLocationServedFromCache() {
	staleDataSeconds := int64(3600)
	cached := &forecast.Location{ID: 7, PublicID: 1234567890123456789, Lat: 40.0, Long: -74.0}

	s.repo.On("FindFreshLocation", 40.0, -74.0, (*int64)(nil), mock.AnythingOfType("int64")).
		Return(cached, nil)
	s.repo.On("GetForecast", uint(7)).Return(cached, nil)

	result, err := s.service.Forecast(s.ctx, service.ForecastQuery{
		Latitude:         floatPtr(40.0),
		Longitude:        floatPtr(-74.0),
		StaleDataSeconds: &staleDataSeconds,
	})

	s.NoError(err)
	s.Equal(cached, result)
	s.orchestrator.AssertNotCalled(s.T(), "FetchAll")
}

func (s *ForecastServiceTestSuite) TestZeroStaleSecondsForcesRefresh() {
	staleDataSeconds := int64(0)
	cached := &forecast.Location{ID: 7, Timezone: time.Now().Unix()}
	fresh := &forecast.Location{ID: 8}

	s.repo.On("FindFreshLocation", 40.0, -74.0, (*int64)(nil), mock.AnythingOfType("int64")).
		Return(cached, nil)
	s.orchestrator.On("FetchAll", mock.Anything, 40.0, -74.0).Return(twoDayResults())
	s.orchestrator.On("VendorOrder").Return(s.vendorOrder())
	s.repo.On("SaveForecastCycle", (*int64)(nil), 40.0, -74.0, mock.Anything, mock.Anything).
		Return(fresh, nil)
	s.repo.On("GetForecast", uint(8)).Return(fresh, nil)

	result, err := s.service.Forecast(s.ctx, service.ForecastQuery{
		Latitude:         floatPtr(40.0),
		Longitude:        floatPtr(-74.0),
		StaleDataSeconds: &staleDataSeconds,
	})

	s.NoError(err)
	s.Equal(fresh, result)
	s.orchestrator.AssertCalled(s.T(), "FetchAll", mock.Anything, 40.0, -74.0)
}

func (s *ForecastServiceTestSuite) TestCacheMissRunsFullCycleAndAggregates() {
	var savedAggregated []forecast.DayRecord
	var savedVendors []forecast.VendorDays

	fresh := &forecast.Location{ID: 9}

	s.repo.On("FindFreshLocation", 40.0, -74.0, (*int64)(nil), mock.AnythingOfType("int64")).
		Return(nil, nil)
	s.orchestrator.On("FetchAll", mock.Anything, 40.0, -74.0).Return(twoDayResults())
	s.orchestrator.On("VendorOrder").Return(s.vendorOrder())
	s.repo.On("SaveForecastCycle", (*int64)(nil), 40.0, -74.0, mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			savedVendors = args.Get(3).([]forecast.VendorDays)
			savedAggregated = args.Get(4).([]forecast.DayRecord)
		}).
		Return(fresh, nil)
	s.repo.On("GetForecast", uint(9)).Return(fresh, nil)

	_, err := s.service.Forecast(s.ctx, service.ForecastQuery{
		Latitude:  floatPtr(40.0),
		Longitude: floatPtr(-74.0),
	})

	s.NoError(err)

	s.Len(savedVendors, 2)
	s.Equal(providers.TagVisualCrossing, savedVendors[0].Tag)
	s.Equal(providers.ConditionRain, savedVendors[0].Days[0].WeatherTypeName)
	s.Equal(providers.TagAeris, savedVendors[1].Tag)
	s.Equal(providers.ConditionSnow, savedVendors[1].Days[0].WeatherTypeName)

	s.Len(savedAggregated, 2)
	s.Equal("2026-08-30", savedAggregated[0].ForecastedDay)
	s.InDelta(t69(), *savedAggregated[0].Temperature, 1e-9)
	s.Equal(providers.ConditionSnow, savedAggregated[0].WeatherTypeName)
	s.InDelta(73.0, *savedAggregated[1].Temperature, 1e-9)
	s.Equal(providers.ConditionClear, savedAggregated[1].WeatherTypeName)
}

// day-0 consensus temperature: (70 + 68) / 2
func t69() float64 {
	return 69.0
}

func (s *ForecastServiceTestSuite) TestPropertyLookupResolvesCoordinates() {
	propertyID := int64(42)
	cached := &forecast.Location{ID: 3, PropertyID: &propertyID}

	s.properties.On("Coordinates", mock.Anything, propertyID, "token", "corr-id").
		Return(&propertyservice.Coordinates{Latitude: 40.0, Longitude: -74.0}, nil)
	s.repo.On("FindFreshLocation", 40.0, -74.0, &propertyID, mock.AnythingOfType("int64")).
		Return(cached, nil)
	s.repo.On("GetForecast", uint(3)).Return(cached, nil)

	result, err := s.service.Forecast(s.ctx, service.ForecastQuery{
		PropertyID:    &propertyID,
		Token:         "token",
		CorrelationID: "corr-id",
	})

	s.NoError(err)
	s.Equal(cached, result)
}

func (s *ForecastServiceTestSuite) TestPropertyLookupFailurePropagatesStatus() {
	propertyID := int64(42)
	lookupErr := apperrors.NewValidationError(http.StatusNotFound, apperrors.MsgBadRequest, "property not found")

	s.properties.On("Coordinates", mock.Anything, propertyID, "", "").
		Return(nil, lookupErr)

	result, err := s.service.Forecast(s.ctx, service.ForecastQuery{PropertyID: &propertyID})

	s.Error(err)
	s.Nil(result)

	validationErr, ok := apperrors.AsValidationError(err)
	s.True(ok)
	s.Equal(http.StatusNotFound, validationErr.StatusCode)
	s.repo.AssertNotCalled(s.T(), "FindFreshLocation")
}

func (s *ForecastServiceTestSuite) TestAllVendorsFailingSurfacesLastError() {
	vendorErr := apperrors.NewValidationError(http.StatusGatewayTimeout, apperrors.MsgBadRequest, apperrors.MsgRetriesExhausted)

	s.repo.On("FindFreshLocation", 40.0, -74.0, (*int64)(nil), mock.AnythingOfType("int64")).
		Return(nil, nil)
	s.orchestrator.On("FetchAll", mock.Anything, 40.0, -74.0).Return(map[string]service.VendorResult{
		providers.TagVisualCrossing: {Tag: providers.TagVisualCrossing, Err: vendorErr},
		providers.TagAeris:          {Tag: providers.TagAeris, Err: vendorErr},
	})
	s.orchestrator.On("VendorOrder").Return(s.vendorOrder())

	result, err := s.service.Forecast(s.ctx, service.ForecastQuery{
		Latitude:  floatPtr(40.0),
		Longitude: floatPtr(-74.0),
	})

	s.Error(err)
	s.Nil(result)

	validationErr, ok := apperrors.AsValidationError(err)
	s.True(ok)
	s.Equal(http.StatusGatewayTimeout, validationErr.StatusCode)
	s.repo.AssertNotCalled(s.T(), "SaveForecastCycle")
}

func (s *ForecastServiceTestSuite) TestSingleVendorFailureDegradesToEmptySeries() {
	var savedVendors []forecast.VendorDays
	fresh := &forecast.Location{ID: 11}
	vendorErr := apperrors.NewValidationError(http.StatusGatewayTimeout, apperrors.MsgBadRequest, apperrors.MsgRetriesExhausted)

	results := twoDayResults()
	results[providers.TagAeris] = service.VendorResult{Tag: providers.TagAeris, Err: vendorErr}

	s.repo.On("FindFreshLocation", 40.0, -74.0, (*int64)(nil), mock.AnythingOfType("int64")).
		Return(nil, nil)
	s.orchestrator.On("FetchAll", mock.Anything, 40.0, -74.0).Return(results)
	s.orchestrator.On("VendorOrder").Return(s.vendorOrder())
	s.repo.On("SaveForecastCycle", (*int64)(nil), 40.0, -74.0, mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			savedVendors = args.Get(3).([]forecast.VendorDays)
		}).
		Return(fresh, nil)
	s.repo.On("GetForecast", uint(11)).Return(fresh, nil)

	_, err := s.service.Forecast(s.ctx, service.ForecastQuery{
		Latitude:  floatPtr(40.0),
		Longitude: floatPtr(-74.0),
	})

	s.NoError(err)
	s.Len(savedVendors, 2)
	s.Len(savedVendors[0].Days, 2)
	s.Empty(savedVendors[1].Days)
}

func TestForecastServiceSuite(t *testing.T) {
	suite.Run(t, new(ForecastServiceTestSuite))
}
