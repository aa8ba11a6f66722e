package config

import (
	"fmt"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
	"time"
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

	ForecastDays      int
	DefaultAPIVersion string

	RateLimitRPS   float64
	RateLimitBurst int
}

func LoadConfig() (*Config, error) {
	v := viper.New()

	v.SetDefault("SERVICE_NAME", "weather-forecast-api")

	v.SetDefault("SERVER_ADDRESS", "0.0.0.0:3000")
	v.SetDefault("DATABASE_PORT", "5432")
	v.SetDefault("HTTP_TIMEOUT", 175)
	v.SetDefault("FORECAST_DAYS", 5)
	v.SetDefault("DEFAULT_API_VERSION", "1.0")
	v.SetDefault("RATE_LIMIT_RPS", 0)
	v.SetDefault("RATE_LIMIT_BURST", 10)

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
		ServiceName:       v.GetString("SERVICE_NAME"),
		ServerAddress:     v.GetString("SERVER_ADDRESS"),
		DBName:            v.GetString("DATABASE_NAME"),
		DBPassword:        v.GetString("DATABASE_PASSWORD"),
		DBUser:            v.GetString("DATABASE_USER"),
		DBPort:            v.GetString("DATABASE_PORT"),
		DBHost:            v.GetString("DATABASE_HOST"),
		Env:               v.GetString("ENV"),
		LogLevel:          v.GetString("LOG_LEVEL"),
		HTTPTimeout:       v.GetInt32("HTTP_TIMEOUT"),
		ForecastDays:      v.GetInt("FORECAST_DAYS"),
		DefaultAPIVersion: v.GetString("DEFAULT_API_VERSION"),
		RateLimitRPS:      v.GetFloat64("RATE_LIMIT_RPS"),
		RateLimitBurst:    v.GetInt("RATE_LIMIT_BURST"),
	}

	if config.ForecastDays < 0 {
		return nil, fmt.Errorf("FORECAST_DAYS must not be negative, got %d", config.ForecastDays)
	}

	if config.HTTPTimeout <= 0 {
		return nil, fmt.Errorf("HTTP_TIMEOUT must be positive, got %d", config.HTTPTimeout)
	}

	if config.RateLimitEnabled() && config.RateLimitBurst < 1 {
		return nil, fmt.Errorf("RATE_LIMIT_BURST must be at least 1 when RATE_LIMIT_RPS is set, got %d", config.RateLimitBurst)
	}

	return config, nil
}

func (c *Config) HTTPTimeoutDuration() time.Duration {
	return time.Duration(c.HTTPTimeout) * time.Second
}

// DatabaseEnabled reports whether the request log should be wired.
func (c *Config) DatabaseEnabled() bool {
	return c.DBHost != ""
}

func (c *Config) RateLimitEnabled() bool {
	return c.RateLimitRPS > 0
}
