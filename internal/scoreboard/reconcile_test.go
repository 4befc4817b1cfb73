package scoreboard

import (
	"testing"

	"github.com/dlawocjf0837-debug/Sports-day---Joongwon/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func previousState() *models.ReconciledState {
	return &models.ReconciledState{
		ScoresByEvent: map[int]map[string]int{
			2: {"1-1": 70, "1-2": 50},
			3: {"2-1": 100},
		},
		ManualStatuses: map[int]models.ManualStatus{2: models.ManualActive},
		CheeringScores: map[string]int{"1-1": 15},
	}
}

func TestReconcile_EmptyIncomingKeepsPreviousScores(t *testing.T) {
	previous := previousState()
	incoming := models.NewSheetSnapshot()

	next := Reconcile(previous, incoming, false)

	// A suspiciously empty poll must not blank the board
	assert.Equal(t, previous.ScoresByEvent, next.ScoresByEvent,
		"Event scores should be retained unchanged")
	assert.Equal(t, previous.CheeringScores, next.CheeringScores,
		"Cheering scores should be retained unchanged")
}

func TestReconcile_InitialLoadNeverGuards(t *testing.T) {
	previous := previousState()
	incoming := models.NewSheetSnapshot()

	next := Reconcile(previous, incoming, true)

	assert.Empty(t, next.ScoresByEvent, "Initial load takes the incoming snapshot as-is")
	assert.Empty(t, next.CheeringScores)
}

func TestReconcile_ManualStatusesNeverGuarded(t *testing.T) {
	previous := previousState()
	incoming := models.NewSheetSnapshot()
	// Non-empty score buckets so the guard takes no part in this case
	incoming.ScoresByEvent[2] = map[string]int{"1-1": 80}
	incoming.CheeringScores["2-2"] = 5

	next := Reconcile(previous, incoming, false)

	assert.Empty(t, next.ManualStatuses,
		"An empty override set means no override is active, and must replace the previous one")
	assert.Equal(t, 80, next.ScoresByEvent[2]["1-1"])
}

func TestReconcile_BucketsGuardedIndependently(t *testing.T) {
	previous := previousState()
	incoming := models.NewSheetSnapshot()
	incoming.CheeringScores["3-4"] = 30 // cheering present, event scores missing

	next := Reconcile(previous, incoming, false)

	assert.Equal(t, previous.ScoresByEvent, next.ScoresByEvent,
		"Missing event scores should be retained")
	assert.Equal(t, map[string]int{"3-4": 30}, next.CheeringScores,
		"Present cheering scores should be taken from the incoming snapshot")
}

func TestReconcile_FreshDataReplacesPrevious(t *testing.T) {
	previous := previousState()
	incoming := models.NewSheetSnapshot()
	incoming.ScoresByEvent[2] = map[string]int{"1-1": 90}
	incoming.ManualStatuses[3] = models.ManualEnded
	incoming.CheeringScores["1-1"] = 20

	next := Reconcile(previous, incoming, false)

	assert.Equal(t, map[int]map[string]int{2: {"1-1": 90}}, next.ScoresByEvent)
	assert.Equal(t, map[int]models.ManualStatus{3: models.ManualEnded}, next.ManualStatuses)
	assert.Equal(t, map[string]int{"1-1": 20}, next.CheeringScores)
}

func TestReconcile_DoesNotMutateInputs(t *testing.T) {
	previous := previousState()
	incoming := models.NewSheetSnapshot()
	incoming.ScoresByEvent[5] = map[string]int{"3-1": 10}

	next := Reconcile(previous, incoming, false)
	require.NotNil(t, next)

	// Writing through the result must not reach either input
	next.ScoresByEvent[5]["3-1"] = 999
	next.ScoresByEvent[2] = map[string]int{"x": 1}

	assert.Equal(t, 10, incoming.ScoresByEvent[5]["3-1"], "Incoming snapshot must stay untouched")
	assert.Equal(t, 70, previous.ScoresByEvent[2]["1-1"], "Previous state must stay untouched")
}

func TestReconcile_NilPreviousIsSafe(t *testing.T) {
	incoming := models.NewSheetSnapshot()
	incoming.ScoresByEvent[2] = map[string]int{"1-1": 50}

	next := Reconcile(nil, incoming, false)

	require.NotNil(t, next)
	assert.Equal(t, 50, next.ScoresByEvent[2]["1-1"])
}
