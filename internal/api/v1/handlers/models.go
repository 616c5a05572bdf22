package handlers

import (
	"te-backend/weather-service/internal/db/forecast"
)

type BaseResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data"`
	Message string      `json:"message"`
	Code    int         `json:"code"`
}

type ErrorResponse struct {
	Success bool                   `json:"success"`
	Errors  map[string][]string    `json:"errors"`
	Data    map[string]interface{} `json:"data"`
	Message string                 `json:"message"`
	Code    int                    `json:"code"`
}

type WeatherTypeResponse struct {
	PublicID       int64  `json:"publicId"`
	WeatherIconURL string `json:"weatherIconUrl"`
	Name           string `json:"name"`
}

type WeatherDataResponse struct {
	PublicID                int64               `json:"publicId"`
	PrecipChance            *float64            `json:"precipChance"`
	PrecipWaterAccumulation *float64            `json:"precipWaterAccumulation"`
	Temperature             *float64            `json:"temperature"`
	DayHighTemp             *float64            `json:"dayHighTemp"`
	DayLowTemp              *float64            `json:"dayLowTemp"`
	WeatherType             WeatherTypeResponse `json:"weatherType"`
	PrecipSnowAccumulation  *float64            `json:"precipSnowAccumulation"`
}

type TEWeatherResponse struct {
	PublicID      int64               `json:"publicId"`
	ForecastedDay string              `json:"forecastedDay"`
	Time          *int64              `json:"time"`
	WeatherData   WeatherDataResponse `json:"weatherData"`
}

// ForecastResponse is the authoritative forecast series for a location.
type ForecastResponse struct {
	PublicID      int64               `json:"publicId"`
	PropertyID    *int64              `json:"propertyId"`
	Lat           float64             `json:"lat"`
	Long          float64             `json:"long"`
	Timezone      int64               `json:"timezone"`
	Offset        int                 `json:"offset"`
	TEWeatherData []TEWeatherResponse `json:"teWeatherData"`
}

func newForecastResponse(location *forecast.Location) ForecastResponse {
	days := make([]TEWeatherResponse, 0, len(location.TEWeather))
	for _, day := range location.TEWeather {
		weatherData := WeatherDataResponse{
			PublicID:                day.WeatherData.PublicID,
			PrecipChance:            day.WeatherData.PrecipChance,
			PrecipWaterAccumulation: day.WeatherData.PrecipWaterAccumulation,
			Temperature:             day.WeatherData.Temperature,
			DayHighTemp:             day.WeatherData.DayHighTemp,
			DayLowTemp:              day.WeatherData.DayLowTemp,
			PrecipSnowAccumulation:  day.WeatherData.PrecipSnowAccumulation,
		}
		if day.WeatherData.WeatherType != nil {
			weatherData.WeatherType = WeatherTypeResponse{
				PublicID:       day.WeatherData.WeatherType.PublicID,
				WeatherIconURL: day.WeatherData.WeatherType.WeatherIconURL,
				Name:           day.WeatherData.WeatherType.Name,
			}
		}

		days = append(days, TEWeatherResponse{
			PublicID:      day.PublicID,
			ForecastedDay: day.ForecastedDay,
			Time:          day.Timestamp,
			WeatherData:   weatherData,
		})
	}

	return ForecastResponse{
		PublicID:      location.PublicID,
		PropertyID:    location.PropertyID,
		Lat:           location.Lat,
		Long:          location.Long,
		Timezone:      location.Timezone,
		Offset:        location.Offset,
		TEWeatherData: days,
	}
}
