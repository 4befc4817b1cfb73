// Package server exposes the reconciled scoreboard to dashboard clients
// over a small JSON API and an optional WebSocket push channel.
package server

import (
	"context"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog/log"

	"github.com/dlawocjf0837-debug/Sports-day---Joongwon/internal/config"
	"github.com/dlawocjf0837-debug/Sports-day---Joongwon/internal/models"
	"github.com/dlawocjf0837-debug/Sports-day---Joongwon/internal/scheduler"
	"github.com/dlawocjf0837-debug/Sports-day---Joongwon/internal/scoreboard"
)

// Server serves the dashboard API and WebSocket push channel
type Server struct {
	cfg        *config.Config
	store      *scoreboard.Store
	events     []models.Event
	pollStatus func() scheduler.Status
	hub        *Hub

	httpServer *http.Server
	started    time.Time
	now        func() time.Time // replaced in tests
}

// New creates the dashboard server. events is the static program the
// live state is joined against; pollStatus may be nil.
func New(cfg *config.Config, store *scoreboard.Store, events []models.Event, pollStatus func() scheduler.Status) *Server {
	s := &Server{
		cfg:        cfg,
		store:      store,
		events:     events,
		pollStatus: pollStatus,
		started:    time.Now(),
		now:        time.Now,
	}

	if cfg.WSEnabled {
		s.hub = NewHub(s.currentPayload)
	}

	s.httpServer = &http.Server{
		Addr:         cfg.ServerAddr(),
		Handler:      s.routes(),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return s
}

// routes builds the router. Request logging and metrics cover the API
// routes only: probes would flood the log, and wrapping the WebSocket
// upgrade would hide the Hijacker from the upgrader.
func (s *Server) routes() http.Handler {
	r := mux.NewRouter()

	api := r.PathPrefix("/api").Subrouter()
	api.Use(requestMiddleware)
	api.HandleFunc("/events", s.handleEvents).Methods(http.MethodGet)
	api.HandleFunc("/events/{id:[0-9]+}", s.handleEventByID).Methods(http.MethodGet)
	api.HandleFunc("/cheering", s.handleCheering).Methods(http.MethodGet)
	api.HandleFunc("/snapshot", s.handleSnapshot).Methods(http.MethodGet)

	r.HandleFunc("/healthz", s.handleHealth).Methods(http.MethodGet)
	r.HandleFunc("/readyz", s.handleReady).Methods(http.MethodGet)

	if s.hub != nil {
		r.HandleFunc("/ws", s.hub.ServeWS)
	}

	return r
}

// Start begins serving in the background
func (s *Server) Start() {
	go func() {
		log.Info().Str("addr", s.httpServer.Addr).Msg("Dashboard server starting")
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error().Err(err).Msg("Dashboard server failed")
		}
	}()
}

// Shutdown disconnects WebSocket clients and drains the HTTP server
func (s *Server) Shutdown(ctx context.Context) error {
	if s.hub != nil {
		s.hub.Close()
	}
	return s.httpServer.Shutdown(ctx)
}

// BroadcastState pushes a freshly applied state to connected dashboards
func (s *Server) BroadcastState(state *models.ReconciledState) {
	if s.hub == nil {
		return
	}
	s.hub.Broadcast(s.buildPayload(state))
}

// Handler returns the HTTP handler, used by tests
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// buildPayload assembles the full dashboard view for one state
func (s *Server) buildPayload(state *models.ReconciledState) scoreboardPayload {
	currentTime := scoreboard.ClockTime(s.now())

	payload := scoreboardPayload{
		Type:        "scoreboard",
		Events:      scoreboard.BuildEventViews(s.events, state, currentTime),
		Cheering:    scoreboard.BuildCheeringBoard(state),
		CurrentTime: currentTime,
	}
	if state != nil {
		payload.UpdatedAt = state.LoadedAt
		payload.Poll = state.Polls
	}
	return payload
}

// currentPayload hands newly connected clients the present board, nil
// before the first successful load
func (s *Server) currentPayload() any {
	state := s.store.State()
	if state == nil {
		return nil
	}
	return s.buildPayload(state)
}
