package providers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"
)

type VisualCrossingConfig struct {
	Hostname string
	BaseURL  string
	APIKey   string
	Days     int
}

// VisualCrossingClient fetches the daily forecast timeline from the Visual
// Crossing weather API.
type VisualCrossingClient struct {
	conf      VisualCrossingConfig
	transport *RetryingTransport
}

func NewVisualCrossingClient(conf VisualCrossingConfig, transport *RetryingTransport) *VisualCrossingClient {
	return &VisualCrossingClient{conf: conf, transport: transport}
}

func (c *VisualCrossingClient) Tag() string {
	return TagVisualCrossing
}

type visualCrossingResponse struct {
	Days []visualCrossingDay `json:"days"`
}

type visualCrossingDay struct {
	Datetime      string   `json:"datetime"`
	DatetimeEpoch *int64   `json:"datetimeEpoch"`
	Conditions    string   `json:"conditions"`
	PrecipProb    *float64 `json:"precipprob"`
	Precip        *float64 `json:"precip"`
	Temp          *float64 `json:"temp"`
	TempMax       *float64 `json:"tempmax"`
	TempMin       *float64 `json:"tempmin"`
	Snow          *float64 `json:"snow"`
}

func (c *VisualCrossingClient) Fetch(ctx context.Context, latitude, longitude float64) ([]CanonicalDay, error) {
	today := time.Now()
	url := fmt.Sprintf(
		"%s%s/%v,%v/%s/%s?key=%s",
		c.conf.Hostname,
		c.conf.BaseURL,
		latitude,
		longitude,
		today.Format("2006-01-02"),
		today.AddDate(0, 0, c.conf.Days).Format("2006-01-02"),
		c.conf.APIKey,
	)

	body, statusCode, err := c.transport.Get(ctx, url, TagVisualCrossing)
	if err != nil {
		return nil, err
	}
	if statusCode != http.StatusOK {
		log.Debug().Int("status_code", statusCode).Msg("visual crossing endpoint failure response")
		return nil, nil
	}

	var parsed visualCrossingResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("visual crossing returned malformed JSON: %w", err)
	}

	days := make([]CanonicalDay, 0, len(parsed.Days))
	for _, day := range parsed.Days {
		days = append(days, c.normalize(day))
	}

	log.Info().Int("days", len(days)).Msg("fetched weather data from visual crossing")
	return days, nil
}

// normalize maps one raw Visual Crossing day onto the canonical record. Pure
// transform; unmapped fields stay nil.
func (c *VisualCrossingClient) normalize(day visualCrossingDay) CanonicalDay {
	return CanonicalDay{
		ForecastedDay:           day.Datetime,
		Timestamp:               day.DatetimeEpoch,
		Condition:               day.Conditions,
		PrecipChance:            day.PrecipProb,
		PrecipWaterAccumulation: day.Precip,
		Temperature:             day.Temp,
		DayHighTemp:             day.TempMax,
		DayLowTemp:              day.TempMin,
		PrecipSnowAccumulation:  day.Snow,
	}
}
