package server

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog/log"

	"github.com/dlawocjf0837-debug/Sports-day---Joongwon/internal/metrics"
)

// responseWriter captures the status code written by a handler
type responseWriter struct {
	http.ResponseWriter
	status int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.status = code
	rw.ResponseWriter.WriteHeader(code)
}

// requestMiddleware logs each API request and records request metrics.
// The metric path label uses the route template, not the raw URL, so
// /api/events/3 and /api/events/7 share a series.
func requestMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rw := &responseWriter{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(rw, r)

		path := r.URL.Path
		if route := mux.CurrentRoute(r); route != nil {
			if tpl, err := route.GetPathTemplate(); err == nil {
				path = tpl
			}
		}

		duration := time.Since(start)
		metrics.RecordHTTPRequest(r.Method, path, strconv.Itoa(rw.status), duration.Seconds())

		log.Debug().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", rw.status).
			Dur("duration", duration).
			Msg("API request")
	})
}
