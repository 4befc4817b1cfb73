package models

// Status is the derived lifecycle of an event at render time
type Status string

const (
	StatusScheduled Status = "scheduled"
	StatusLive      Status = "live"
	StatusEnded     Status = "ended"
)

// ManualStatus is an operator-entered override read from the sheet.
// When present it supersedes the time-window computation entirely.
type ManualStatus string

const (
	ManualActive    ManualStatus = "active"
	ManualEnded     ManualStatus = "ended"
	ManualScheduled ManualStatus = "scheduled"
)

// Lifecycle maps an override onto the lifecycle it forces
func (m ManualStatus) Lifecycle() Status {
	switch m {
	case ManualActive:
		return StatusLive
	case ManualEnded:
		return StatusEnded
	default:
		return StatusScheduled
	}
}
