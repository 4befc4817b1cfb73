package scoreboard

import (
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/dlawocjf0837-debug/Sports-day---Joongwon/internal/metrics"
	"github.com/dlawocjf0837-debug/Sports-day---Joongwon/internal/models"
)

// Store holds the one piece of shared mutable data in the service: the
// current reconciled state. Each applied snapshot swaps the state
// pointer wholesale; a published state is never mutated afterward, so
// readers always see a consistent scoreboard without copying.
type Store struct {
	mu    sync.RWMutex
	state *models.ReconciledState
	now   func() time.Time // replaced in tests
}

// NewStore creates an empty store
func NewStore() *Store {
	return &Store{now: time.Now}
}

// Apply reconciles one snapshot into the store and returns the state
// that is now current. The initial-load decision belongs to the caller;
// the poll loop treats the first successful cycle after startup or a
// reset as initial.
func (s *Store) Apply(snapshot *models.SheetSnapshot, initialLoad bool) *models.ReconciledState {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := Reconcile(s.state, snapshot, initialLoad)
	next.LoadedAt = s.now()
	if s.state != nil {
		next.Polls = s.state.Polls + 1
	} else {
		next.Polls = 1
	}
	s.state = next

	metrics.RecordStateSwap()
	metrics.UpdateScoreboardStats(next.TotalScoreRows(), len(next.CheeringScores), len(next.ManualStatuses))

	return next
}

// State returns the current reconciled state, nil before the first apply
func (s *Store) State() *models.ReconciledState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// Loaded returns true once a snapshot has been applied
func (s *Store) Loaded() bool {
	return s.State() != nil
}

// Reset returns the store to the never-loaded state, so the next
// successful poll is treated as an initial load again
func (s *Store) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state = nil
	metrics.UpdateScoreboardStats(0, 0, 0)
	log.Info().Msg("Scoreboard state reset")
}
