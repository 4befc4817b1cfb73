package scoreboard

import (
	"github.com/rs/zerolog/log"

	"github.com/dlawocjf0837-debug/Sports-day---Joongwon/internal/metrics"
	"github.com/dlawocjf0837-debug/Sports-day---Joongwon/internal/models"
)

// Reconcile merges one incoming snapshot against the previous state and
// returns a freshly built state; neither input is mutated.
//
// Staleness guard: a transient partial read of the published sheet can
// parse to an empty snapshot, and overwriting with one would blank the
// visible scoreboard until the next good poll. So outside the initial
// load, an empty incoming score bucket is rejected in favor of the
// previous one when that previous bucket had data. The two score buckets
// are guarded independently. Manual statuses are never guarded: an empty
// set means "no override currently active", which is exactly what the
// operator authored.
func Reconcile(previous *models.ReconciledState, incoming *models.SheetSnapshot, initialLoad bool) *models.ReconciledState {
	next := &models.ReconciledState{
		ScoresByEvent:  models.CopyScoresByEvent(incoming.ScoresByEvent),
		ManualStatuses: models.CopyManualStatuses(incoming.ManualStatuses),
		CheeringScores: models.CopyClassScores(incoming.CheeringScores),
	}

	if !initialLoad && previous != nil {
		if len(incoming.ScoresByEvent) == 0 && len(previous.ScoresByEvent) > 0 {
			next.ScoresByEvent = models.CopyScoresByEvent(previous.ScoresByEvent)
			metrics.RecordStalenessGuard("event_scores")
			log.Warn().
				Int("retained_events", len(previous.ScoresByEvent)).
				Msg("Incoming snapshot had no event scores, retaining previous bucket")
		}
		if len(incoming.CheeringScores) == 0 && len(previous.CheeringScores) > 0 {
			next.CheeringScores = models.CopyClassScores(previous.CheeringScores)
			metrics.RecordStalenessGuard("cheering_scores")
			log.Warn().
				Int("retained_classes", len(previous.CheeringScores)).
				Msg("Incoming snapshot had no cheering scores, retaining previous bucket")
		}
	}

	return next
}
