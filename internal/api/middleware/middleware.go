package middleware

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"golang.org/x/time/rate"
	"ulascansenturk/weather-forecast-api/internal/api/handlers"
	"ulascansenturk/weather-forecast-api/internal/requestid"
)

// RequestID keeps an incoming X-Request-ID or mints one, and makes it
// available through requestid.FromContext.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reqID := r.Header.Get(requestid.Header)
		if reqID == "" {
			reqID = uuid.New().String()
			r.Header.Set(requestid.Header, reqID)
		}
		w.Header().Set(requestid.Header, reqID)
		next.ServeHTTP(w, r.WithContext(requestid.NewContext(r.Context(), reqID)))
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (s *statusRecorder) WriteHeader(code int) {
	s.status = code
	s.ResponseWriter.WriteHeader(code)
}

func AccessLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(rec, r)

		log.Info().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", rec.status).
			Dur("duration", time.Since(start)).
			Str("request_id", requestid.FromContext(r.Context())).
			Msg("request served")
	})
}

// RateLimit rejects requests with 429 once the limiter's bucket is empty.
// It never waits for a token.
func RateLimit(limiter *rate.Limiter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !limiter.Allow() {
				handlers.RespondWithError(w, http.StatusTooManyRequests, "rate limit exceeded")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
