package config

import (
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

type Config struct {
	ServiceName   string
	ServerAddress string

	DBName     string
	DBPassword string
	DBUser     string
	DBPort     string
	DBHost     string

	Env         string
	LogLevel    string
	HTTPTimeout int32

	VisualCrossingHostname string
	VisualCrossingBaseURL  string
	VisualCrossingKey      string
	VisualCrossingEnabled  bool

	AerisHostname     string
	AerisBaseURL      string
	AerisClientID     string
	AerisClientSecret string
	AerisEnabled      bool

	BackendGatewayHost string
	PropertyCacheTTL   time.Duration

	TotalAttempts    int
	AttemptTimeout   time.Duration
	StaleDataSeconds int64
	WeatherDays      int
	MaxWorkers       int
}

func LoadConfig() (*Config, error) {
	v := viper.New()

	v.SetDefault("SERVICE_NAME", "weather-service")
	v.SetDefault("SERVER_ADDRESS", "0.0.0.0:3000")
	v.SetDefault("DATABASE_PORT", "5432")
	v.SetDefault("HTTP_TIMEOUT", 175)

	v.SetDefault("WEATHER_VISUAL_CROSSING_HOSTNAME", "https://weather.visualcrossing.com")
	v.SetDefault("WEATHER_VISUAL_CROSSING_BASE_URL", "/VisualCrossingWebServices/rest/services/timeline")
	v.SetDefault("WEATHER_VISUAL_CROSSING_ENABLED", true)

	v.SetDefault("WEATHER_AERIS_HOSTNAME", "https://api.aerisapi.com")
	v.SetDefault("WEATHER_AERIS_BASE_URL", "/forecasts")
	v.SetDefault("WEATHER_AERIS_ENABLED", true)

	v.SetDefault("PROPERTY_CACHE_TTL", 5*time.Minute)

	v.SetDefault("TOTAL_ATTEMPT", 3)
	v.SetDefault("TIMEOUT", 10)
	v.SetDefault("WEATHER_STALE_DATA_SECONDS", 3600)
	v.SetDefault("WEATHER_DAYS", 7)
	v.SetDefault("MAX_WORKERS", 3)

	v.AutomaticEnv()

	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			log.Warn().Msg("No .env file found, using environment variables only")
		} else {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	} else {
		log.Info().Str("file", v.ConfigFileUsed()).Msg("Config file loaded")
	}

	config := &Config{
		ServiceName:   v.GetString("SERVICE_NAME"),
		ServerAddress: v.GetString("SERVER_ADDRESS"),
		DBName:        v.GetString("DATABASE_NAME"),
		DBPassword:    v.GetString("DATABASE_PASSWORD"),
		DBUser:        v.GetString("DATABASE_USER"),
		DBPort:        v.GetString("DATABASE_PORT"),
		DBHost:        v.GetString("DATABASE_HOST"),
		Env:           v.GetString("ENV"),
		LogLevel:      v.GetString("LOG_LEVEL"),
		HTTPTimeout:   v.GetInt32("HTTP_TIMEOUT"),

		VisualCrossingHostname: v.GetString("WEATHER_VISUAL_CROSSING_HOSTNAME"),
		VisualCrossingBaseURL:  v.GetString("WEATHER_VISUAL_CROSSING_BASE_URL"),
		VisualCrossingKey:      v.GetString("WEATHER_VISUAL_CROSSING_KEY"),
		VisualCrossingEnabled:  v.GetBool("WEATHER_VISUAL_CROSSING_ENABLED"),

		AerisHostname:     v.GetString("WEATHER_AERIS_HOSTNAME"),
		AerisBaseURL:      v.GetString("WEATHER_AERIS_BASE_URL"),
		AerisClientID:     v.GetString("WEATHER_AERIS_CLIENT_ID"),
		AerisClientSecret: v.GetString("WEATHER_AERIS_CLIENT_SECRET"),
		AerisEnabled:      v.GetBool("WEATHER_AERIS_ENABLED"),

		BackendGatewayHost: v.GetString("BACKEND_GATEWAY_SERVICE_HOST"),
		PropertyCacheTTL:   v.GetDuration("PROPERTY_CACHE_TTL"),

		TotalAttempts:    v.GetInt("TOTAL_ATTEMPT"),
		AttemptTimeout:   time.Duration(v.GetInt("TIMEOUT")) * time.Second,
		StaleDataSeconds: v.GetInt64("WEATHER_STALE_DATA_SECONDS"),
		WeatherDays:      v.GetInt("WEATHER_DAYS"),
		MaxWorkers:       v.GetInt("MAX_WORKERS"),
	}

	return config, nil
}

func (c *Config) HTTPTimeoutDuration() time.Duration {
	return time.Duration(c.HTTPTimeout) * time.Second
}
