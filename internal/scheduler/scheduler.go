package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog/log"

	"github.com/dlawocjf0837-debug/Sports-day---Joongwon/internal/config"
	"github.com/dlawocjf0837-debug/Sports-day---Joongwon/internal/metrics"
	"github.com/dlawocjf0837-debug/Sports-day---Joongwon/internal/models"
	"github.com/dlawocjf0837-debug/Sports-day---Joongwon/internal/scoreboard"
	"github.com/dlawocjf0837-debug/Sports-day---Joongwon/internal/sheet"
)

// Status describes the poll loop's recent history for health reporting
type Status struct {
	ConsecutiveFailures int       `json:"consecutiveFailures"`
	DroppedTicks        int       `json:"droppedTicks"`
	LastError           string    `json:"lastError,omitempty"`
	LastAttempt         time.Time `json:"lastAttempt"`
	LastSuccess         time.Time `json:"lastSuccess"`
}

// Scheduler drives the fetch/parse/reconcile cycle:
// - one poll per tick for the lifetime of the service
// - at most one cycle in flight, extra ticks dropped rather than queued
// - optional cron job clearing the board each morning on multi-day use
type Scheduler struct {
	cfg    *config.Config
	client *sheet.Client
	store  *scoreboard.Store
	notify func(*models.ReconciledState) // called after each applied poll, may be nil

	cron     *cron.Cron
	ticker   *time.Ticker
	stopChan chan struct{}
	stopOnce sync.Once
	running  sync.WaitGroup

	// Single-slot in-flight token. A tick that cannot take the slot is
	// dropped, so a slow sheet never piles up concurrent fetches.
	inFlight chan struct{}

	mu     sync.Mutex
	status Status
}

// NewScheduler creates a scheduler. notify may be nil when nothing
// listens for applied states.
func NewScheduler(cfg *config.Config, client *sheet.Client, store *scoreboard.Store, notify func(*models.ReconciledState)) *Scheduler {
	return &Scheduler{
		cfg:      cfg,
		client:   client,
		store:    store,
		notify:   notify,
		cron:     cron.New(),
		stopChan: make(chan struct{}),
		inFlight: make(chan struct{}, 1),
	}
}

// Start starts the poll loop and, when enabled, the daily reset job.
// The first cycle fires immediately so the board warms without waiting
// out a full interval.
func (s *Scheduler) Start(ctx context.Context) error {
	log.Info().Msg("Scheduler starting...")

	if s.cfg.EnableDailyReset {
		if _, err := s.cron.AddFunc(s.cfg.ResetSchedule, func() {
			log.Info().Msg("Running daily reset...")
			s.store.Reset()
		}); err != nil {
			return fmt.Errorf("failed to schedule daily reset: %w", err)
		}

		s.cron.Start()
		log.Info().
			Str("schedule", s.cfg.ResetSchedule).
			Msg("Daily reset scheduled")
	}

	s.ticker = time.NewTicker(s.cfg.PollInterval)
	log.Info().
		Dur("interval", s.cfg.PollInterval).
		Msg("Sheet polling started")

	s.spawnCycle(ctx)
	go s.run(ctx)

	return nil
}

// Stop halts the ticker and cron and waits for any in-flight cycle
func (s *Scheduler) Stop() {
	s.stopOnce.Do(func() {
		log.Info().Msg("Stopping scheduler...")

		if s.cfg.EnableDailyReset {
			s.cron.Stop()
		}
		if s.ticker != nil {
			s.ticker.Stop()
		}
		close(s.stopChan)

		s.running.Wait()
		log.Info().Msg("Scheduler stopped")
	})
}

// Status returns a copy of the poll loop's health counters
func (s *Scheduler) Status() Status {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.status
}

// run consumes ticks until the context or stop channel closes
func (s *Scheduler) run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			log.Info().Msg("Context cancelled, stopping sheet polling")
			return
		case <-s.stopChan:
			log.Info().Msg("Stop signal received, stopping sheet polling")
			return
		case <-s.ticker.C:
			s.spawnCycle(ctx)
		}
	}
}

func (s *Scheduler) spawnCycle(ctx context.Context) {
	s.running.Add(1)
	go func() {
		defer s.running.Done()
		s.runCycle(ctx)
	}()
}

// runCycle performs one fetch, parse and reconcile pass. Whether this is the
// initial load is decided by the store being empty, so the cycle after
// a daily reset counts as initial again.
func (s *Scheduler) runCycle(ctx context.Context) {
	select {
	case s.inFlight <- struct{}{}:
	default:
		s.recordDrop()
		return
	}
	defer func() { <-s.inFlight }()

	start := time.Now()
	initial := !s.store.Loaded()

	csvText, err := s.client.Fetch(ctx, s.cfg.SheetURL)
	if err != nil {
		s.recordFailure(err, initial)
		metrics.RecordPoll("error", time.Since(start).Seconds())
		return
	}

	snapshot := sheet.Parse(csvText)
	state := s.store.Apply(snapshot, initial)
	s.recordSuccess()
	metrics.RecordPoll("success", time.Since(start).Seconds())

	log.Info().
		Int("events", len(state.ScoresByEvent)).
		Int("score_rows", state.TotalScoreRows()).
		Int("manual_statuses", len(state.ManualStatuses)).
		Int("cheering_classes", len(state.CheeringScores)).
		Int("poll", state.Polls).
		Bool("initial", initial).
		Dur("duration", time.Since(start)).
		Msg("Poll cycle complete")

	if s.notify != nil {
		s.notify(state)
	}
}

func (s *Scheduler) recordDrop() {
	s.mu.Lock()
	s.status.DroppedTicks++
	s.mu.Unlock()

	metrics.RecordPollDrop()
	log.Debug().Msg("Poll tick dropped, previous cycle still in flight")
}

func (s *Scheduler) recordFailure(err error, initial bool) {
	s.mu.Lock()
	s.status.ConsecutiveFailures++
	s.status.LastError = err.Error()
	s.status.LastAttempt = time.Now()
	failures := s.status.ConsecutiveFailures
	s.mu.Unlock()

	metrics.UpdateConsecutiveFailures(failures)
	metrics.RecordError("scheduler", errorType(err))

	// A failed first load means the dashboard has nothing to show yet;
	// later failures just leave the last good state on screen.
	evt := log.Error().Err(err).Int("consecutive_failures", failures)
	if initial {
		evt.Msg("Initial sheet load failed, will keep retrying")
	} else {
		evt.Msg("Poll failed, keeping last good state")
	}
}

func (s *Scheduler) recordSuccess() {
	now := time.Now()

	s.mu.Lock()
	s.status.ConsecutiveFailures = 0
	s.status.LastError = ""
	s.status.LastAttempt = now
	s.status.LastSuccess = now
	s.mu.Unlock()

	metrics.UpdateConsecutiveFailures(0)
}

// errorType buckets an error for the error counter labels
func errorType(err error) string {
	switch {
	case sheet.IsFormatError(err):
		return "format"
	case sheet.IsNetworkError(err):
		return "network"
	default:
		return "internal"
	}
}
