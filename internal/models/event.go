package models

// CheeringEventID is the sheet identifier reserved for cheering scores.
// Rows carrying it land only in the cheering bucket, never in the
// per-event score map, and the catalog does not list it as an event.
const CheeringEventID = 8

// Event is one scheduled activity in the sports-day program.
// The descriptor is owned by the catalog and never mutated; only the
// derived status and merged scores vary per render.
type Event struct {
	ID        int    `json:"id"`
	Title     string `json:"title"`
	StartTime string `json:"startTime"` // zero-padded 24h "HH:MM"
	EndTime   string `json:"endTime"`
	Location  string `json:"location"`

	// Optional program details
	Rules   []string            `json:"rules,omitempty"`
	Rosters map[string][]string `json:"rosters,omitempty"`
	Scores  map[string]int      `json:"scores,omitempty"` // seed scores, overridden by sheet data
}

// HasRosters returns true if the event carries per-class rosters
func (e *Event) HasRosters() bool {
	return len(e.Rosters) > 0
}

// HasScores returns true if the event is score-bearing (ceremonies are not)
func (e *Event) HasScores() bool {
	return e.Scores != nil
}

// EventView is the render model for one event: the static descriptor
// joined with live scores and the derived lifecycle status
type EventView struct {
	Event
	Status         Status `json:"status"`
	ManualOverride bool   `json:"manualOverride"`
}

// CheeringEntry is one ranked row of the cheering leaderboard
type CheeringEntry struct {
	ClassName string `json:"className"`
	Score     int    `json:"score"`
	Rank      int    `json:"rank"`
}
