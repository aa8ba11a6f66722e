package handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog/log"
	"ulascansenturk/weather-forecast-api/internal/service"
)

type ForecastHandler struct {
	forecastService service.ForecastService
	timeout         time.Duration
	defaultVersion  APIVersion
}

func NewForecastHandler(forecastService service.ForecastService, timeout time.Duration, defaultVersion APIVersion) *ForecastHandler {
	return &ForecastHandler{
		forecastService: forecastService,
		timeout:         timeout,
		defaultVersion:  defaultVersion,
	}
}

// GetForecast serves /WeatherForecast, taking the version from the query
// string or header and falling back to the configured default.
func (h *ForecastHandler) GetForecast(w http.ResponseWriter, r *http.Request) {
	version, err := resolveVersion(r, h.defaultVersion)
	if err != nil {
		h.respondWithVersionError(w, err)
		return
	}

	h.serve(w, r, version)
}

// GetVersionedForecast serves /v{version}/WeatherForecast.
func (h *ForecastHandler) GetVersionedForecast(w http.ResponseWriter, r *http.Request) {
	version, err := ParseVersion(mux.Vars(r)["version"])
	if err != nil {
		h.respondWithVersionError(w, err)
		return
	}

	h.serve(w, r, version)
}

func (h *ForecastHandler) serve(w http.ResponseWriter, r *http.Request, version APIVersion) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	records, err := h.forecastService.GetForecast(ctx, string(version))
	if err != nil {
		log.Error().Err(err).Str("api_version", string(version)).Msg("failed to get forecast")
		respondWithError(w, http.StatusInternalServerError, "failed to get forecast: "+err.Error())
		return
	}

	w.Header().Set(SupportedVersionsHeader, supportedVersions)
	respondWithJSON(w, http.StatusOK, projections[version](records))
}

func (h *ForecastHandler) respondWithVersionError(w http.ResponseWriter, err error) {
	w.Header().Set(SupportedVersionsHeader, supportedVersions)

	if errors.Is(err, ErrAmbiguousVersion) {
		respondWithErrorCode(w, http.StatusBadRequest, "AMBIGUOUS_API_VERSION", "Bad Request", err.Error())
		return
	}
	respondWithErrorCode(w, http.StatusBadRequest, "UNSUPPORTED_API_VERSION", "Bad Request", err.Error())
}

func Health(w http.ResponseWriter, _ *http.Request) {
	respondWithJSON(w, http.StatusOK, HealthResponse{Status: "ok"})
}

func NotFound(w http.ResponseWriter, _ *http.Request) {
	respondWithError(w, http.StatusNotFound, "not found")
}

func MethodNotAllowed(w http.ResponseWriter, _ *http.Request) {
	respondWithError(w, http.StatusMethodNotAllowed, "method not allowed")
}
