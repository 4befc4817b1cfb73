package server

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog/log"

	"github.com/dlawocjf0837-debug/Sports-day---Joongwon/internal/models"
	"github.com/dlawocjf0837-debug/Sports-day---Joongwon/internal/scheduler"
	"github.com/dlawocjf0837-debug/Sports-day---Joongwon/internal/scoreboard"
)

// scoreboardPayload is the full dashboard view, served on demand and
// pushed over the WebSocket channel after every applied poll
type scoreboardPayload struct {
	Type        string                 `json:"type"`
	Events      []models.EventView     `json:"events"`
	Cheering    []models.CheeringEntry `json:"cheering"`
	CurrentTime string                 `json:"currentTime"`
	UpdatedAt   time.Time              `json:"updatedAt"`
	Poll        int                    `json:"poll"`
}

type eventsResponse struct {
	Events      []models.EventView `json:"events"`
	CurrentTime string             `json:"currentTime"`
	LoadedAt    *time.Time         `json:"loadedAt,omitempty"`
}

type cheeringResponse struct {
	Entries  []models.CheeringEntry `json:"entries"`
	LoadedAt *time.Time             `json:"loadedAt,omitempty"`
}

type snapshotResponse struct {
	Ready  bool                    `json:"ready"`
	State  *models.ReconciledState `json:"state"`
	Poller *scheduler.Status       `json:"poller,omitempty"`
}

func (s *Server) handleEvents(w http.ResponseWriter, r *http.Request) {
	state := s.store.State()

	resp := eventsResponse{
		Events:      scoreboard.BuildEventViews(s.events, state, scoreboard.ClockTime(s.now())),
		CurrentTime: scoreboard.ClockTime(s.now()),
	}
	if state != nil {
		resp.LoadedAt = &state.LoadedAt
	}

	respondJSON(w, http.StatusOK, resp)
}

func (s *Server) handleEventByID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid event id")
		return
	}

	var event *models.Event
	for i := range s.events {
		if s.events[i].ID == id {
			event = &s.events[i]
			break
		}
	}
	if event == nil {
		// Unknown ids and the reserved cheering identifier both land here
		respondError(w, http.StatusNotFound, "unknown event")
		return
	}

	views := scoreboard.BuildEventViews([]models.Event{*event}, s.store.State(), scoreboard.ClockTime(s.now()))
	respondJSON(w, http.StatusOK, views[0])
}

func (s *Server) handleCheering(w http.ResponseWriter, r *http.Request) {
	state := s.store.State()

	resp := cheeringResponse{Entries: scoreboard.BuildCheeringBoard(state)}
	if state != nil {
		resp.LoadedAt = &state.LoadedAt
	}

	respondJSON(w, http.StatusOK, resp)
}

func (s *Server) handleSnapshot(w http.ResponseWriter, r *http.Request) {
	resp := snapshotResponse{
		Ready: s.store.Loaded(),
		State: s.store.State(),
	}
	if s.pollStatus != nil {
		status := s.pollStatus()
		resp.Poller = &status
	}

	respondJSON(w, http.StatusOK, resp)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{
		"status":  "healthy",
		"service": "sportsday-scoreboard",
		"uptime":  time.Since(s.started).Round(time.Second).String(),
	})
}

func (s *Server) handleReady(w http.ResponseWriter, r *http.Request) {
	if !s.store.Loaded() {
		respondJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "waiting for first sheet load"})
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"status": "ready"})
}

func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error().Err(err).Msg("Failed to encode response")
	}
}

func respondError(w http.ResponseWriter, status int, msg string) {
	respondJSON(w, status, map[string]string{"error": msg})
}
