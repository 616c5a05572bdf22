package forecast

// Location is a geographic point a forecast was produced for. Timezone holds
// the epoch seconds of the fetch cycle that created the row and doubles as
// the freshness marker; rows are immutable afterwards except for Offset.
type Location struct {
	ID         uint     `json:"id" gorm:"primaryKey"`
	PublicID   int64    `json:"public_id" gorm:"column:public_id;uniqueIndex"`
	Lat        float64  `json:"lat" gorm:"index:idx_lat_long"`
	Long       float64  `json:"long" gorm:"index:idx_lat_long"`
	PropertyID *int64   `json:"property_id" gorm:"column:property_id;index"`
	Timezone   int64    `json:"timezone" gorm:"index:idx_timezone"`
	Offset     int      `json:"offset" gorm:"column:offset"`

	VCWeather []VCWeather `json:"vc_weather,omitempty"`
	ARWeather []ARWeather `json:"ar_weather,omitempty"`
	TEWeather []TEWeather `json:"te_weather,omitempty"`
}

func (Location) TableName() string {
	return "locations"
}

// WeatherType is a reference table of classification labels, looked up by
// name and created lazily for names not seen before.
type WeatherType struct {
	ID             uint   `json:"id" gorm:"primaryKey"`
	PublicID       int64  `json:"public_id" gorm:"column:public_id;uniqueIndex"`
	WeatherIconURL string `json:"weather_icon_url" gorm:"column:weather_icon_url"`
	Name           string `json:"name" gorm:"uniqueIndex"`
}

func (WeatherType) TableName() string {
	return "weather_types"
}

// WeatherData is one numeric forecast payload, owned by exactly one daily
// record. The weather type is linked after classification.
type WeatherData struct {
	ID                      uint         `json:"id" gorm:"primaryKey"`
	PublicID                int64        `json:"public_id" gorm:"column:public_id;uniqueIndex"`
	WeatherTypeID           *uint        `json:"weather_type_id" gorm:"column:weather_type_id"`
	WeatherType             *WeatherType `json:"weather_type,omitempty"`
	PrecipChance            *float64     `json:"precip_chance" gorm:"column:precip_chance"`
	PrecipWaterAccumulation *float64     `json:"precip_water_accumulation" gorm:"column:precip_water_accumulation"`
	Temperature             *float64     `json:"temperature"`
	DayHighTemp             *float64     `json:"day_high_temp" gorm:"column:day_high_temp"`
	DayLowTemp              *float64     `json:"day_low_temp" gorm:"column:day_low_temp"`
	PrecipSnowAccumulation  *float64     `json:"precip_snow_accumulation" gorm:"column:precip_snow_accumulation"`
}

func (WeatherData) TableName() string {
	return "weather_data"
}

// VCWeather is one day's forecast as returned by Visual Crossing.
type VCWeather struct {
	ID            uint        `json:"id" gorm:"primaryKey"`
	PublicID      int64       `json:"public_id" gorm:"column:public_id;uniqueIndex"`
	LocationID    uint        `json:"location_id" gorm:"index"`
	WeatherDataID uint        `json:"weather_data_id"`
	WeatherData   WeatherData `json:"weather_data"`
	ForecastedDay string      `json:"forecasted_day" gorm:"column:forecasted_day"`
	Timestamp     *int64      `json:"timestamp"`
}

func (VCWeather) TableName() string {
	return "vc_weather"
}

// ARWeather is one day's forecast as returned by Aeris.
type ARWeather struct {
	ID            uint        `json:"id" gorm:"primaryKey"`
	PublicID      int64       `json:"public_id" gorm:"column:public_id;uniqueIndex"`
	LocationID    uint        `json:"location_id" gorm:"index"`
	WeatherDataID uint        `json:"weather_data_id"`
	WeatherData   WeatherData `json:"weather_data"`
	ForecastedDay string      `json:"forecasted_day" gorm:"column:forecasted_day"`
	Timestamp     *int64      `json:"timestamp"`
}

func (ARWeather) TableName() string {
	return "ar_weather"
}

// TEWeather is the cross-vendor consensus forecast for one day. These rows
// form the series returned to API callers.
type TEWeather struct {
	ID            uint        `json:"id" gorm:"primaryKey"`
	PublicID      int64       `json:"public_id" gorm:"column:public_id;uniqueIndex"`
	LocationID    uint        `json:"location_id" gorm:"index"`
	WeatherDataID uint        `json:"weather_data_id"`
	WeatherData   WeatherData `json:"weather_data"`
	ForecastedDay string      `json:"forecasted_day" gorm:"column:forecasted_day"`
	Timestamp     *int64      `json:"timestamp"`
}

func (TEWeather) TableName() string {
	return "te_weather"
}
