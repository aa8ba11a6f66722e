package service_test

import (
	"context"
	"errors"
	"testing"
	"time"
	"ulascansenturk/weather-forecast-api/internal/forecast"
	"ulascansenturk/weather-forecast-api/internal/mocks"
	"ulascansenturk/weather-forecast-api/internal/requestid"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"ulascansenturk/weather-forecast-api/internal/service"
)

type ForecastServiceTestSuite struct {
	suite.Suite
	mockGenerator *mocks.MockGenerator
	mockRepo      *mocks.MockRepository
	service       service.ForecastService
	ctx           context.Context
	records       []forecast.Record
}

func (s *ForecastServiceTestSuite) SetupTest() {
	s.mockGenerator = mocks.NewMockGenerator(s.T())
	s.mockRepo = mocks.NewMockRepository(s.T())
	s.service = service.NewForecastService(s.mockGenerator, s.mockRepo, service.DefaultForecastDays)
	s.ctx = requestid.NewContext(context.Background(), "req-123")

	base := time.Date(2024, time.March, 1, 9, 0, 0, 0, time.UTC)
	s.records = []forecast.Record{
		{Date: base.AddDate(0, 0, 1), TemperatureC: -20, Summary: "Freezing"},
		{Date: base.AddDate(0, 0, 2), TemperatureC: 0, Summary: "Chilly"},
		{Date: base.AddDate(0, 0, 3), TemperatureC: 12, Summary: "Mild"},
		{Date: base.AddDate(0, 0, 4), TemperatureC: 30, Summary: "Hot"},
		{Date: base.AddDate(0, 0, 5), TemperatureC: 54, Summary: "Scorching"},
	}
}

func (s *ForecastServiceTestSuite) TestGetForecastSuccess() {
	s.mockGenerator.On("Generate", service.DefaultForecastDays).Return(s.records, nil)
	s.mockRepo.On("LogForecastQuery", mock.Anything, "1.0", 5, "req-123").Return(nil)

	result, err := s.service.GetForecast(s.ctx, "1.0")

	s.NoError(err)
	s.Equal(s.records, result)
}

func (s *ForecastServiceTestSuite) TestGetForecastRepositoryErrorIsIgnored() {
	s.mockGenerator.On("Generate", service.DefaultForecastDays).Return(s.records, nil)
	s.mockRepo.On("LogForecastQuery", mock.Anything, "2.0", 5, "req-123").Return(errors.New("database down"))

	result, err := s.service.GetForecast(s.ctx, "2.0")

	s.NoError(err)
	s.Len(result, 5)
}

func (s *ForecastServiceTestSuite) TestGetForecastGeneratorError() {
	s.mockGenerator.On("Generate", service.DefaultForecastDays).Return(nil, forecast.ErrInvalidCount)

	result, err := s.service.GetForecast(s.ctx, "1.0")

	s.ErrorIs(err, forecast.ErrInvalidCount)
	s.Nil(result)
	s.mockRepo.AssertNotCalled(s.T(), "LogForecastQuery", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (s *ForecastServiceTestSuite) TestGetForecastCanceledContext() {
	ctx, cancel := context.WithCancel(s.ctx)
	cancel()

	result, err := s.service.GetForecast(ctx, "1.0")

	s.ErrorIs(err, context.Canceled)
	s.Nil(result)
	s.mockGenerator.AssertNotCalled(s.T(), "Generate", mock.Anything)
}

func (s *ForecastServiceTestSuite) TestGetForecastWithoutRepository() {
	s.mockGenerator.On("Generate", service.DefaultForecastDays).Return(s.records, nil)
	svc := service.NewForecastService(s.mockGenerator, nil, service.DefaultForecastDays)

	result, err := svc.GetForecast(s.ctx, "1.0")

	s.NoError(err)
	s.Equal(s.records, result)
}

func (s *ForecastServiceTestSuite) TestGetForecastWithRealGenerator() {
	s.mockRepo.On("LogForecastQuery", mock.Anything, "2.0", 7, "req-123").Return(nil)
	svc := service.NewForecastService(forecast.NewGenerator(), s.mockRepo, 7)

	result, err := svc.GetForecast(s.ctx, "2.0")

	s.NoError(err)
	s.Len(result, 7)
}

func TestForecastServiceSuite(t *testing.T) {
	suite.Run(t, new(ForecastServiceTestSuite))
}
