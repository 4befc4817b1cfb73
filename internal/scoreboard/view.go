package scoreboard

import (
	"sort"

	"github.com/dlawocjf0837-debug/Sports-day---Joongwon/internal/models"
)

// BuildEventViews joins the static program with the current state. For
// each event the derived status is computed and live scores from the
// sheet are laid over the catalog's seed scores per class. The inputs
// are not mutated; state may be nil before the first load.
func BuildEventViews(events []models.Event, state *models.ReconciledState, currentTime string) []models.EventView {
	views := make([]models.EventView, 0, len(events))
	for _, event := range events {
		var manual models.ManualStatus
		override, hasOverride := state.ManualStatusFor(event.ID)
		if hasOverride {
			manual = override
		}

		view := models.EventView{
			Event:          event,
			Status:         DeriveStatus(event.StartTime, event.EndTime, currentTime, manual),
			ManualOverride: hasOverride,
		}

		if live := state.EventScores(event.ID); len(live) > 0 {
			merged := models.CopyClassScores(event.Scores)
			for class, score := range live {
				merged[class] = score
			}
			view.Scores = merged
		}

		views = append(views, view)
	}
	return views
}

// BuildCheeringBoard ranks cheering scores descending. Tied classes
// share the better rank and sort by class name so output is stable.
func BuildCheeringBoard(state *models.ReconciledState) []models.CheeringEntry {
	if state == nil {
		return []models.CheeringEntry{}
	}

	entries := make([]models.CheeringEntry, 0, len(state.CheeringScores))
	for class, score := range state.CheeringScores {
		entries = append(entries, models.CheeringEntry{ClassName: class, Score: score})
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Score != entries[j].Score {
			return entries[i].Score > entries[j].Score
		}
		return entries[i].ClassName < entries[j].ClassName
	})

	for i := range entries {
		if i > 0 && entries[i].Score == entries[i-1].Score {
			entries[i].Rank = entries[i-1].Rank
		} else {
			entries[i].Rank = i + 1
		}
	}

	return entries
}
