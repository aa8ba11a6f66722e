package api

import (
	"net/http"

	"github.com/gorilla/mux"
	"golang.org/x/time/rate"
	"ulascansenturk/weather-forecast-api/internal/api/handlers"
	"ulascansenturk/weather-forecast-api/internal/api/middleware"
)

type RouterOptions struct {
	// Limiter is optional; nil disables rate limiting.
	Limiter *rate.Limiter
}

func NewRouter(forecastHandler *handlers.ForecastHandler, opts RouterOptions) http.Handler {
	r := mux.NewRouter()
	r.NotFoundHandler = http.HandlerFunc(handlers.NotFound)
	r.MethodNotAllowedHandler = http.HandlerFunc(handlers.MethodNotAllowed)

	r.HandleFunc("/healthz", handlers.Health).Methods(http.MethodGet)

	r.HandleFunc("/WeatherForecast", forecastHandler.GetForecast).Methods(http.MethodGet)
	r.HandleFunc("/v{version}/WeatherForecast", forecastHandler.GetVersionedForecast).Methods(http.MethodGet)

	var handler http.Handler = r
	if opts.Limiter != nil {
		handler = middleware.RateLimit(opts.Limiter)(handler)
	}

	return middleware.RequestID(middleware.AccessLog(handler))
}
