package providers

import (
	"context"
)

// Vendor tags identify the third-party forecast integrations. They double as
// the service names reported to the health-check recorder.
const (
	TagVisualCrossing = "visualCrossing"
	TagAeris          = "aeris"
)

// CanonicalDay is the vendor-agnostic daily forecast shape every vendor
// payload is normalized into. Numeric fields stay nil when the vendor did not
// supply them.
type CanonicalDay struct {
	ForecastedDay           string
	Timestamp               *int64
	Condition               string
	PrecipChance            *float64
	PrecipWaterAccumulation *float64
	Temperature             *float64
	DayHighTemp             *float64
	DayLowTemp              *float64
	PrecipSnowAccumulation  *float64
}

// Vendor is implemented by each forecast integration. Fetch returns the
// normalized day series for a coordinate, empty when the vendor had nothing
// usable, and an error only when the retrying transport gave up.
type Vendor interface {
	Tag() string
	Fetch(ctx context.Context, latitude, longitude float64) ([]CanonicalDay, error)
}
