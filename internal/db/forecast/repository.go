package forecast

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"te-backend/weather-service/internal/providers"
	"te-backend/weather-service/internal/publicid"
)

// DayRecord is a classified daily forecast ready to be persisted: numeric
// payload plus the weather-type name resolved by classification.
type DayRecord struct {
	ForecastedDay           string
	Timestamp               *int64
	WeatherTypeName         string
	PrecipChance            *float64
	PrecipWaterAccumulation *float64
	Temperature             *float64
	DayHighTemp             *float64
	DayLowTemp              *float64
	PrecipSnowAccumulation  *float64
}

// VendorDays is one vendor's classified day series.
type VendorDays struct {
	Tag  string
	Days []DayRecord
}

type Repository interface {
	// FindFreshLocation returns the most recently created location matching
	// the coordinates (and property id, when given) whose refresh marker is
	// at or after staleThreshold. A miss returns (nil, nil).
	FindFreshLocation(lat, long float64, propertyID *int64, staleThreshold int64) (*Location, error)

	// SaveForecastCycle persists one whole fetch cycle - the new location,
	// every vendor's daily rows and the aggregated rows - in a single
	// transaction.
	SaveForecastCycle(propertyID *int64, lat, long float64, vendorSeries []VendorDays, aggregated []DayRecord) (*Location, error)

	// GetForecast loads a location with its aggregated day series.
	GetForecast(locationID uint) (*Location, error)

	UpdateLocationOffset(location *Location) error

	// EnsureWeatherTypes creates the named reference rows if missing.
	EnsureWeatherTypes(names ...string) error
}

type SQLRepository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &SQLRepository{db: db}
}

func (r *SQLRepository) FindFreshLocation(lat, long float64, propertyID *int64, staleThreshold int64) (*Location, error) {
	query := r.db.
		Where("lat = ? AND long = ?", lat, long).
		Where("timezone >= ?", staleThreshold)
	if propertyID != nil {
		query = query.Where("property_id = ?", *propertyID)
	}

	var location Location
	err := query.Order("id DESC").First(&location).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &location, nil
}

func (r *SQLRepository) SaveForecastCycle(propertyID *int64, lat, long float64, vendorSeries []VendorDays, aggregated []DayRecord) (*Location, error) {
	location := &Location{
		PublicID:   publicid.New(),
		Lat:        lat,
		Long:       long,
		PropertyID: propertyID,
		Timezone:   time.Now().Unix(),
		Offset:     0,
	}

	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(location).Error; err != nil {
			return err
		}

		for _, series := range vendorSeries {
			for _, day := range series.Days {
				if err := createDailyRecord(tx, location.ID, series.Tag, day); err != nil {
					return err
				}
			}
		}

		for _, day := range aggregated {
			if err := createDailyRecord(tx, location.ID, "", day); err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return location, nil
}

// createDailyRecord writes the numeric payload and the vendor (or aggregated)
// daily row that owns it. An empty vendorTag means the aggregated table.
func createDailyRecord(tx *gorm.DB, locationID uint, vendorTag string, day DayRecord) error {
	weatherType, err := findOrCreateWeatherType(tx, day.WeatherTypeName)
	if err != nil {
		return err
	}

	weatherData := &WeatherData{
		PublicID:                publicid.New(),
		WeatherTypeID:           &weatherType.ID,
		PrecipChance:            day.PrecipChance,
		PrecipWaterAccumulation: day.PrecipWaterAccumulation,
		Temperature:             day.Temperature,
		DayHighTemp:             day.DayHighTemp,
		DayLowTemp:              day.DayLowTemp,
		PrecipSnowAccumulation:  day.PrecipSnowAccumulation,
	}
	if err := tx.Create(weatherData).Error; err != nil {
		return err
	}

	switch vendorTag {
	case providers.TagVisualCrossing:
		return tx.Create(&VCWeather{
			PublicID:      publicid.New(),
			LocationID:    locationID,
			WeatherDataID: weatherData.ID,
			ForecastedDay: day.ForecastedDay,
			Timestamp:     day.Timestamp,
		}).Error
	case providers.TagAeris:
		return tx.Create(&ARWeather{
			PublicID:      publicid.New(),
			LocationID:    locationID,
			WeatherDataID: weatherData.ID,
			ForecastedDay: day.ForecastedDay,
			Timestamp:     day.Timestamp,
		}).Error
	default:
		return tx.Create(&TEWeather{
			PublicID:      publicid.New(),
			LocationID:    locationID,
			WeatherDataID: weatherData.ID,
			ForecastedDay: day.ForecastedDay,
			Timestamp:     day.Timestamp,
		}).Error
	}
}

func findOrCreateWeatherType(tx *gorm.DB, name string) (*WeatherType, error) {
	var weatherType WeatherType
	err := tx.Where("name = ?", name).First(&weatherType).Error
	if err == nil {
		return &weatherType, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	weatherType = WeatherType{
		PublicID:       publicid.New(),
		WeatherIconURL: "",
		Name:           name,
	}
	if err := tx.Create(&weatherType).Error; err != nil {
		return nil, err
	}
	return &weatherType, nil
}

func (r *SQLRepository) GetForecast(locationID uint) (*Location, error) {
	var location Location
	err := r.db.
		Preload("TEWeather", func(db *gorm.DB) *gorm.DB {
			return db.Order("te_weather.id")
		}).
		Preload("TEWeather.WeatherData").
		Preload("TEWeather.WeatherData.WeatherType").
		First(&location, locationID).Error
	if err != nil {
		return nil, err
	}
	return &location, nil
}

func (r *SQLRepository) UpdateLocationOffset(location *Location) error {
	return r.db.Model(location).Update("offset", location.Offset).Error
}

func (r *SQLRepository) EnsureWeatherTypes(names ...string) error {
	for _, name := range names {
		if _, err := findOrCreateWeatherType(r.db, name); err != nil {
			return err
		}
	}
	return nil
}
