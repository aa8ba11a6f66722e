package config_test

import (
	"testing"
	"time"
	"ulascansenturk/weather-forecast-api/config"

	"github.com/stretchr/testify/suite"
)

type ConfigTestSuite struct {
	suite.Suite
}

func (s *ConfigTestSuite) SetupTest() {
	for _, key := range []string{
		"SERVICE_NAME", "SERVER_ADDRESS", "HTTP_TIMEOUT", "FORECAST_DAYS",
		"DEFAULT_API_VERSION", "RATE_LIMIT_RPS", "RATE_LIMIT_BURST", "DATABASE_HOST",
	} {
		s.T().Setenv(key, "")
	}
}

func (s *ConfigTestSuite) TestDefaults() {
	conf, err := config.LoadConfig()

	s.Require().NoError(err)
	s.Equal("weather-forecast-api", conf.ServiceName)
	s.Equal("0.0.0.0:3000", conf.ServerAddress)
	s.Equal(5, conf.ForecastDays)
	s.Equal("1.0", conf.DefaultAPIVersion)
	s.Equal(175*time.Second, conf.HTTPTimeoutDuration())
	s.False(conf.DatabaseEnabled())
	s.False(conf.RateLimitEnabled())
}

func (s *ConfigTestSuite) TestEnvironmentOverrides() {
	s.T().Setenv("SERVER_ADDRESS", "127.0.0.1:8080")
	s.T().Setenv("HTTP_TIMEOUT", "10")
	s.T().Setenv("FORECAST_DAYS", "7")
	s.T().Setenv("DEFAULT_API_VERSION", "2.0")
	s.T().Setenv("RATE_LIMIT_RPS", "2.5")
	s.T().Setenv("RATE_LIMIT_BURST", "4")
	s.T().Setenv("DATABASE_HOST", "localhost")

	conf, err := config.LoadConfig()

	s.Require().NoError(err)
	s.Equal("127.0.0.1:8080", conf.ServerAddress)
	s.Equal(10*time.Second, conf.HTTPTimeoutDuration())
	s.Equal(7, conf.ForecastDays)
	s.Equal("2.0", conf.DefaultAPIVersion)
	s.Equal(2.5, conf.RateLimitRPS)
	s.Equal(4, conf.RateLimitBurst)
	s.True(conf.DatabaseEnabled())
	s.True(conf.RateLimitEnabled())
}

func (s *ConfigTestSuite) TestNegativeForecastDays() {
	s.T().Setenv("FORECAST_DAYS", "-1")

	conf, err := config.LoadConfig()

	s.Error(err)
	s.Nil(conf)
}

func (s *ConfigTestSuite) TestNonPositiveHTTPTimeout() {
	for _, value := range []string{"0", "-5"} {
		s.T().Setenv("HTTP_TIMEOUT", value)

		conf, err := config.LoadConfig()

		s.Require().Error(err, "HTTP_TIMEOUT=%s", value)
		s.Contains(err.Error(), "HTTP_TIMEOUT")
		s.Nil(conf)
	}
}

func (s *ConfigTestSuite) TestRateLimitRequiresBurst() {
	s.T().Setenv("RATE_LIMIT_RPS", "5")
	s.T().Setenv("RATE_LIMIT_BURST", "0")

	conf, err := config.LoadConfig()

	s.Require().Error(err)
	s.Contains(err.Error(), "RATE_LIMIT_BURST")
	s.Nil(conf)
}

func (s *ConfigTestSuite) TestZeroBurstAllowedWhenRateLimitDisabled() {
	s.T().Setenv("RATE_LIMIT_BURST", "0")

	conf, err := config.LoadConfig()

	s.Require().NoError(err)
	s.False(conf.RateLimitEnabled())
}

func TestConfigSuite(t *testing.T) {
	suite.Run(t, new(ConfigTestSuite))
}
