package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
	"ulascansenturk/weather-forecast-api/internal/db/forecastquery"
	"ulascansenturk/weather-forecast-api/internal/forecast"
	"ulascansenturk/weather-forecast-api/internal/requestid"
)

const DefaultForecastDays = 5

type ForecastService interface {
	GetForecast(ctx context.Context, apiVersion string) ([]forecast.Record, error)
}

type Generator interface {
	Generate(n int) ([]forecast.Record, error)
}

type forecastService struct {
	generator         Generator
	forecastQueryRepo forecastquery.Repository
	days              int
}

// NewForecastService builds the service; forecastQueryRepo may be nil to
// disable the request log.
func NewForecastService(generator Generator, forecastQueryRepo forecastquery.Repository, days int) ForecastService {
	return &forecastService{
		generator:         generator,
		forecastQueryRepo: forecastQueryRepo,
		days:              days,
	}
}

func (s *forecastService) GetForecast(ctx context.Context, apiVersion string) ([]forecast.Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	records, err := s.generator.Generate(s.days)
	if err != nil {
		return nil, fmt.Errorf("failed to generate forecast: %w", err)
	}

	if s.forecastQueryRepo != nil {
		reqID := requestid.FromContext(ctx)
		if err := s.forecastQueryRepo.LogForecastQuery(ctx, apiVersion, len(records), reqID); err != nil {
			log.Error().Err(err).Str("api_version", apiVersion).Str("request_id", reqID).Msg("failed to log forecast query")
		}
	}

	return records, nil
}
