package service

import (
	"math"

	"te-backend/weather-service/internal/providers"
)

// VendorSeries is one vendor's normalized day series, day-index aligned with
// the other vendors' series (position N means day N for every vendor).
type VendorSeries struct {
	Tag  string
	Days []providers.CanonicalDay
}

// Aggregate zips the vendor series positionally, truncated to the shortest
// series, and computes the per-day consensus:
//
//   - the condition is the worst case across vendors (maximum ordinal, so
//     SNOW beats RAIN beats CLEAR), each vendor's text classified with its
//     own phrase table;
//   - every numeric field is summed with nil treated as 0.0, divided by the
//     total vendor count (not the non-nil contributors) and rounded to two
//     decimals;
//   - forecasted day and timestamp come verbatim from the first series.
//
// An empty input, or one where any series is empty, yields an empty result.
func Aggregate(series []VendorSeries) []providers.CanonicalDay {
	count := len(series)
	if count == 0 {
		return nil
	}

	shortest := len(series[0].Days)
	for _, s := range series[1:] {
		if len(s.Days) < shortest {
			shortest = len(s.Days)
		}
	}

	divisor := float64(count)
	aggregated := make([]providers.CanonicalDay, 0, shortest)

	for i := 0; i < shortest; i++ {
		var (
			precipChance            float64
			precipWaterAccumulation float64
			temperature             float64
			dayHighTemp             float64
			dayLowTemp              float64
			precipSnowAccumulation  float64
			maxOrdinal              int
		)

		for _, s := range series {
			day := s.Days[i]

			ordinal := providers.ConditionOrdinal(providers.Classify(s.Tag, day.Condition))
			if ordinal > maxOrdinal {
				maxOrdinal = ordinal
			}

			precipChance += valueOrZero(day.PrecipChance)
			precipWaterAccumulation += valueOrZero(day.PrecipWaterAccumulation)
			temperature += valueOrZero(day.Temperature)
			dayHighTemp += valueOrZero(day.DayHighTemp)
			dayLowTemp += valueOrZero(day.DayLowTemp)
			precipSnowAccumulation += valueOrZero(day.PrecipSnowAccumulation)
		}

		first := series[0].Days[i]
		aggregated = append(aggregated, providers.CanonicalDay{
			ForecastedDay:           first.ForecastedDay,
			Timestamp:               first.Timestamp,
			Condition:               providers.ConditionByOrdinal(maxOrdinal),
			PrecipChance:            average(precipChance, divisor),
			PrecipWaterAccumulation: average(precipWaterAccumulation, divisor),
			Temperature:             average(temperature, divisor),
			DayHighTemp:             average(dayHighTemp, divisor),
			DayLowTemp:              average(dayLowTemp, divisor),
			PrecipSnowAccumulation:  average(precipSnowAccumulation, divisor),
		})
	}

	return aggregated
}

func valueOrZero(value *float64) float64 {
	if value == nil {
		return 0.0
	}
	return *value
}

func average(sum, divisor float64) *float64 {
	rounded := math.Round(sum/divisor*100) / 100
	return &rounded
}
