package models

import "time"

// SheetSnapshot is the aggregate result of one parse pass over the
// published CSV. Each poll produces a fresh snapshot; a snapshot is
// never mutated after parsing.
type SheetSnapshot struct {
	ScoresByEvent  map[int]map[string]int
	ManualStatuses map[int]ManualStatus
	CheeringScores map[string]int
}

// NewSheetSnapshot returns a snapshot with all three buckets allocated
func NewSheetSnapshot() *SheetSnapshot {
	return &SheetSnapshot{
		ScoresByEvent:  make(map[int]map[string]int),
		ManualStatuses: make(map[int]ManualStatus),
		CheeringScores: make(map[string]int),
	}
}

// TotalScoreRows counts classified score entries across all events
func (s *SheetSnapshot) TotalScoreRows() int {
	n := 0
	for _, classes := range s.ScoresByEvent {
		n += len(classes)
	}
	return n
}

// ReconciledState is the value the application actually holds: the latest
// snapshot merged against the previous state under the staleness guard.
// Built only by the reconciler, swapped in wholesale, never mutated after
// the swap, so readers always see a consistent view.
type ReconciledState struct {
	ScoresByEvent  map[int]map[string]int `json:"scoresByEvent"`
	ManualStatuses map[int]ManualStatus   `json:"manualStatuses"`
	CheeringScores map[string]int         `json:"cheeringScores"`

	LoadedAt time.Time `json:"loadedAt"` // when this state was applied
	Polls    int       `json:"polls"`    // applied snapshots since startup
}

// TotalScoreRows counts class score entries across all events
func (s *ReconciledState) TotalScoreRows() int {
	if s == nil {
		return 0
	}
	n := 0
	for _, classes := range s.ScoresByEvent {
		n += len(classes)
	}
	return n
}

// EventScores returns the merged scores for one event, nil when none
func (s *ReconciledState) EventScores(eventID int) map[string]int {
	if s == nil {
		return nil
	}
	return s.ScoresByEvent[eventID]
}

// ManualStatusFor returns the operator override for an event, if present
func (s *ReconciledState) ManualStatusFor(eventID int) (ManualStatus, bool) {
	if s == nil {
		return "", false
	}
	m, ok := s.ManualStatuses[eventID]
	return m, ok
}

// CopyClassScores returns an independent copy of a class score map
func CopyClassScores(src map[string]int) map[string]int {
	dst := make(map[string]int, len(src))
	for class, score := range src {
		dst[class] = score
	}
	return dst
}

// CopyScoresByEvent returns an independent deep copy of an event score map
func CopyScoresByEvent(src map[int]map[string]int) map[int]map[string]int {
	dst := make(map[int]map[string]int, len(src))
	for eventID, classes := range src {
		dst[eventID] = CopyClassScores(classes)
	}
	return dst
}

// CopyManualStatuses returns an independent copy of an override map
func CopyManualStatuses(src map[int]ManualStatus) map[int]ManualStatus {
	dst := make(map[int]ManualStatus, len(src))
	for eventID, status := range src {
		dst[eventID] = status
	}
	return dst
}
