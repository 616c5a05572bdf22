package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"te-backend/weather-service/config"
	"te-backend/weather-service/internal/api/v1/handlers"
	"te-backend/weather-service/internal/db/forecast"
	"te-backend/weather-service/internal/healthcheck"
	"te-backend/weather-service/internal/inmemorycache"
	"te-backend/weather-service/internal/propertyservice"
	"te-backend/weather-service/internal/providers"
	"te-backend/weather-service/internal/service"
)

func main() {
	conf, err := config.LoadConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	logLevel, err := zerolog.ParseLevel(conf.LogLevel)
	if err != nil {
		logLevel = zerolog.InfoLevel
	}
	logger := zerolog.New(os.Stdout).
		Level(logLevel).
		With().
		Str("service_name", conf.ServiceName).
		Timestamp().
		Logger()
	log.Logger = logger

	ctx, mainCtxStop := context.WithCancel(context.Background())

	db, dbErr := initializeDatabase(conf)
	if dbErr != nil {
		logger.Fatal().Err(dbErr).Msg("failed to initialize database")
	}

	forecastRepo := forecast.NewRepository(db)

	// The aggregated rows assume the three canonical type names pre-exist.
	if err := forecastRepo.EnsureWeatherTypes(
		providers.ConditionClear,
		providers.ConditionRain,
		providers.ConditionSnow,
	); err != nil {
		logger.Fatal().Err(err).Msg("failed to seed weather types")
	}

	healthRecorder := healthcheck.NewLogRecorder()

	httpClient := &http.Client{Timeout: conf.AttemptTimeout}
	transport := providers.NewRetryingTransport(httpClient, conf.TotalAttempts, conf.AttemptTimeout, healthRecorder)

	var vendors []providers.Vendor
	if conf.VisualCrossingEnabled {
		vendors = append(vendors, providers.NewVisualCrossingClient(providers.VisualCrossingConfig{
			Hostname: conf.VisualCrossingHostname,
			BaseURL:  conf.VisualCrossingBaseURL,
			APIKey:   conf.VisualCrossingKey,
			Days:     conf.WeatherDays,
		}, transport))
	}
	if conf.AerisEnabled {
		vendors = append(vendors, providers.NewAerisClient(providers.AerisConfig{
			Hostname:     conf.AerisHostname,
			BaseURL:      conf.AerisBaseURL,
			ClientID:     conf.AerisClientID,
			ClientSecret: conf.AerisClientSecret,
			Days:         conf.WeatherDays,
		}, transport))
	}

	coordinatesCache := inmemorycache.NewInMemoryCacheProvider(time.Minute)
	propertyClient := propertyservice.NewGatewayClient(
		conf.BackendGatewayHost,
		httpClient,
		healthRecorder,
		coordinatesCache,
		conf.PropertyCacheTTL,
	)

	orchestrator := service.NewFetchOrchestrator(vendors, conf.MaxWorkers)
	forecastService := service.NewForecastService(orchestrator, forecastRepo, propertyClient, conf.StaleDataSeconds)

	handler := handlers.NewWeatherHandler(forecastService, conf.HTTPTimeoutDuration())

	httpServer := &http.Server{
		Addr:              conf.ServerAddress,
		Handler:           handler,
		ReadHeaderTimeout: conf.HTTPTimeoutDuration(),
	}

	handleSignals(ctx, mainCtxStop, func() {
		shutdownErr := httpServer.Shutdown(ctx)
		if shutdownErr != nil {
			log.Fatal().Err(shutdownErr).Msg("server shutdown failed")
		}
	})

	log.Info().Msgf("started server on %s", conf.ServerAddress)

	serverErr := httpServer.ListenAndServe()
	if serverErr != nil {
		log.Err(serverErr).Msg("server stopped")
	}
	<-ctx.Done()
}

func initializeDatabase(config *config.Config) (*gorm.DB, error) {
	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		config.DBHost, config.DBPort, config.DBUser, config.DBPassword, config.DBName,
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(
		&forecast.Location{},
		&forecast.WeatherType{},
		&forecast.WeatherData{},
		&forecast.VCWeather{},
		&forecast.ARWeather{},
		&forecast.TEWeather{},
	); err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}

	sqlDB.SetMaxIdleConns(25)
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetConnMaxLifetime(5 * time.Minute)
	sqlDB.SetConnMaxIdleTime(3 * time.Minute)

	return db, nil
}

func handleSignals(ctx context.Context, cancelCtx context.CancelFunc, callback func()) {
	sig := make(chan os.Signal, 1)

	signal.Notify(sig, syscall.SIGHUP, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	const shutdownDuration = 30 * time.Second

	go func() {
		<-sig

		shutdownCtx, cancel := context.WithTimeout(ctx, shutdownDuration)

		go func() {
			<-shutdownCtx.Done()

			if shutdownCtx.Err() == context.DeadlineExceeded {
				panic("graceful shutdown timed out.. forcing exit.")
			}
		}()

		callback()

		cancel()
		cancelCtx()
	}()
}
