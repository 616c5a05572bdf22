package providers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"
)

type AerisConfig struct {
	Hostname     string
	BaseURL      string
	ClientID     string
	ClientSecret string
	Days         int
}

// AerisClient fetches midnight-to-midnight daily forecasts from the Aeris
// weather API.
type AerisClient struct {
	conf      AerisConfig
	transport *RetryingTransport
}

func NewAerisClient(conf AerisConfig, transport *RetryingTransport) *AerisClient {
	return &AerisClient{conf: conf, transport: transport}
}

func (c *AerisClient) Tag() string {
	return TagAeris
}

type aerisResponse struct {
	Response []struct {
		Periods []aerisPeriod `json:"periods"`
	} `json:"response"`
}

type aerisPeriod struct {
	DateTimeISO         string   `json:"dateTimeISO"`
	Timestamp           *int64   `json:"timestamp"`
	WeatherPrimaryCoded string   `json:"weatherPrimaryCoded"`
	Pop                 *float64 `json:"pop"`
	PrecipIN            *float64 `json:"precipIN"`
	TempF               *float64 `json:"tempF"`
	MaxTempF            *float64 `json:"maxTempF"`
	MinTempF            *float64 `json:"minTempF"`
	SnowIN              *float64 `json:"snowIN"`
}

func (c *AerisClient) Fetch(ctx context.Context, latitude, longitude float64) ([]CanonicalDay, error) {
	url := fmt.Sprintf(
		"%s%s/%v,%v?filter=mdnt2mdnt&from=today&to=+%ddays&client_id=%s&client_secret=%s",
		c.conf.Hostname,
		c.conf.BaseURL,
		latitude,
		longitude,
		c.conf.Days,
		c.conf.ClientID,
		c.conf.ClientSecret,
	)

	body, statusCode, err := c.transport.Get(ctx, url, TagAeris)
	if err != nil {
		return nil, err
	}
	if statusCode != http.StatusOK {
		log.Debug().Int("status_code", statusCode).Msg("aeris endpoint failure response")
		return nil, nil
	}

	var parsed aerisResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("aeris returned malformed JSON: %w", err)
	}
	if len(parsed.Response) == 0 {
		return nil, nil
	}

	periods := parsed.Response[0].Periods
	days := make([]CanonicalDay, 0, len(periods))
	for _, period := range periods {
		days = append(days, c.normalize(period))
	}

	log.Info().Int("days", len(days)).Msg("fetched weather data from aeris")
	return days, nil
}

// normalize maps one raw Aeris period onto the canonical record. The ISO
// datetime is reduced to a YYYY-MM-DD day; the epoch comes separately.
func (c *AerisClient) normalize(period aerisPeriod) CanonicalDay {
	return CanonicalDay{
		ForecastedDay:           isoDate(period.DateTimeISO),
		Timestamp:               period.Timestamp,
		Condition:               period.WeatherPrimaryCoded,
		PrecipChance:            period.Pop,
		PrecipWaterAccumulation: period.PrecipIN,
		Temperature:             period.TempF,
		DayHighTemp:             period.MaxTempF,
		DayLowTemp:              period.MinTempF,
		PrecipSnowAccumulation:  period.SnowIN,
	}
}

func isoDate(value string) string {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t.Format("2006-01-02")
	}
	if len(value) >= 10 {
		return value[:10]
	}
	return value
}
