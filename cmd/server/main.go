package main

import (
	"context"
	"fmt"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/time/rate"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
	"ulascansenturk/weather-forecast-api/config"
	"ulascansenturk/weather-forecast-api/internal/api"
	"ulascansenturk/weather-forecast-api/internal/api/handlers"
	"ulascansenturk/weather-forecast-api/internal/db/forecastquery"
	"ulascansenturk/weather-forecast-api/internal/forecast"
	"ulascansenturk/weather-forecast-api/internal/service"
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
	log.Logger = zerolog.New(os.Stdout).
		Level(logLevel).
		With().
		Str("service_name", conf.ServiceName).
		Timestamp().
		Logger()

	defaultVersion, err := handlers.ParseVersion(conf.DefaultAPIVersion)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid DEFAULT_API_VERSION")
	}

	ctx, mainCtxStop := context.WithCancel(context.Background())

	var forecastQueryRepo forecastquery.Repository
	if conf.DatabaseEnabled() {
		db, dbErr := initializeDatabase(conf)
		if dbErr != nil {
			log.Fatal().Err(dbErr).Msg("failed to initialize database")
		}
		forecastQueryRepo = forecastquery.NewRepository(db)
	} else {
		log.Info().Msg("DATABASE_HOST not set, request log disabled")
	}

	forecastService := service.NewForecastService(forecast.NewGenerator(), forecastQueryRepo, conf.ForecastDays)

	handler := handlers.NewForecastHandler(forecastService, conf.HTTPTimeoutDuration(), defaultVersion)

	routerOpts := api.RouterOptions{}
	if conf.RateLimitEnabled() {
		routerOpts.Limiter = rate.NewLimiter(rate.Limit(conf.RateLimitRPS), conf.RateLimitBurst)
	}

	httpServer := &http.Server{
		Addr:              conf.ServerAddress,
		Handler:           api.NewRouter(handler, routerOpts),
		ReadHeaderTimeout: conf.HTTPTimeoutDuration(),
	}

	handleSignals(ctx, mainCtxStop, func(shutdownCtx context.Context) {
		shutdownErr := httpServer.Shutdown(shutdownCtx)
		if shutdownErr != nil {
			log.Fatal().Err(shutdownErr).Msg("server shutdown failed")
		}
	})

	log.Info().Msgf("started server on %s", conf.ServerAddress)

	serverErr := httpServer.ListenAndServe()
	if serverErr != nil && serverErr != http.ErrServerClosed {
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

	if err := db.AutoMigrate(&forecastquery.ForecastQuery{}); err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}

	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetConnMaxLifetime(5 * time.Minute)
	sqlDB.SetConnMaxIdleTime(3 * time.Minute)

	return db, nil
}

func handleSignals(ctx context.Context, cancelCtx context.CancelFunc, callback func(context.Context)) {
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

		callback(shutdownCtx)

		cancel()
		cancelCtx()
	}()
}
