package scoreboard

import (
	"time"

	"github.com/dlawocjf0837-debug/Sports-day---Joongwon/internal/models"
)

// DeriveStatus computes the lifecycle for one event. A manual override,
// when present, wins outright; otherwise the current wall-clock time is
// compared against the event window. Times are zero-padded 24h "HH:MM"
// strings, which order lexicographically the same as chronologically
// within a single day; the program never crosses midnight.
func DeriveStatus(startTime, endTime, currentTime string, manual models.ManualStatus) models.Status {
	if manual != "" {
		return manual.Lifecycle()
	}

	switch {
	case currentTime < startTime:
		return models.StatusScheduled
	case currentTime < endTime:
		return models.StatusLive
	default:
		return models.StatusEnded
	}
}

// ClockTime formats an instant into the comparable "HH:MM" form
func ClockTime(t time.Time) string {
	return t.Format("15:04")
}
