package handlers

import (
	"encoding/json"
	"time"

	"ulascansenturk/weather-forecast-api/internal/forecast"
)

type ForecastV1 struct {
	Date         time.Time `json:"date"`
	TemperatureC int       `json:"temperatureC"`
	Summary      string    `json:"summary"`
}

// ForecastV2 holds no Fahrenheit field; it is derived from Celsius whenever
// it is read or serialized.
type ForecastV2 struct {
	Date    time.Time
	Celsius int
	Summary string
}

func (f ForecastV2) Fahrenheit() int {
	return forecast.Fahrenheit(f.Celsius)
}

func (f ForecastV2) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Date       time.Time `json:"date"`
		Celsius    int       `json:"celsius"`
		Summary    string    `json:"summary"`
		Fahrenheit int       `json:"fahrenheit"`
	}{
		Date:       f.Date,
		Celsius:    f.Celsius,
		Summary:    f.Summary,
		Fahrenheit: f.Fahrenheit(),
	})
}

func ToV1(records []forecast.Record) []ForecastV1 {
	views := make([]ForecastV1, 0, len(records))
	for _, r := range records {
		views = append(views, ForecastV1{
			Date:         r.Date,
			TemperatureC: r.TemperatureC,
			Summary:      r.Summary,
		})
	}
	return views
}

func ToV2(records []forecast.Record) []ForecastV2 {
	views := make([]ForecastV2, 0, len(records))
	for _, r := range records {
		views = append(views, ForecastV2{
			Date:    r.Date,
			Celsius: r.TemperatureC,
			Summary: r.Summary,
		})
	}
	return views
}

type HealthResponse struct {
	Status string `json:"status"`
}

type Error struct {
	Code   string `json:"code"`
	Detail string `json:"detail"`
	Status int    `json:"status"`
	Title  string `json:"title"`
}

type ErrorResponse struct {
	Errors []Error `json:"errors"`
}
