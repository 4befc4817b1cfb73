// Command sheetcheck fetches the published sheet once and reports how its
// rows classify. Run it when the board looks stale to tell publish
// problems (HTML instead of CSV, dead link) from sheet content problems.
package main

import (
	"context"
	"flag"
	"fmt"
	"sort"
	"time"

	"github.com/dlawocjf0837-debug/Sports-day---Joongwon/internal/catalog"
	"github.com/dlawocjf0837-debug/Sports-day---Joongwon/internal/config"
	"github.com/dlawocjf0837-debug/Sports-day---Joongwon/internal/scoreboard"
	"github.com/dlawocjf0837-debug/Sports-day---Joongwon/internal/sheet"

	"github.com/rs/zerolog/log"
)

func main() {
	urlFlag := flag.String("url", "", "sheet URL to check, defaults to SHEET_URL from the environment")
	raw := flag.Bool("raw", false, "print the fetched CSV body before the summary")
	flag.Parse()

	sourceURL := *urlFlag
	timeout := 15 * time.Second
	if sourceURL == "" {
		cfg := config.MustLoad()
		sourceURL = cfg.SheetURL
		timeout = cfg.HTTPTimeout
	}

	ctx, cancel := context.WithTimeout(context.Background(), timeout+5*time.Second)
	defer cancel()

	client := sheet.NewClient(timeout)
	log.Info().Str("url", sourceURL).Msg("Fetching sheet...")

	csvText, err := client.Fetch(ctx, sourceURL)
	if err != nil {
		if sheet.IsFormatError(err) {
			log.Fatal().Err(err).Msg("Sheet returned HTML, check that the link is published as CSV")
		}
		log.Fatal().Err(err).Msg("Sheet fetch failed")
	}
	log.Info().Int("bytes", len(csvText)).Msg("Sheet fetched")

	if *raw {
		fmt.Print(csvText)
		fmt.Println()
	}

	snapshot := sheet.Parse(csvText)
	log.Info().
		Int("score_rows", snapshot.TotalScoreRows()).
		Int("events_with_scores", len(snapshot.ScoresByEvent)).
		Int("manual_statuses", len(snapshot.ManualStatuses)).
		Int("cheering_classes", len(snapshot.CheeringScores)).
		Msg("Sheet parsed")

	for _, eventID := range sortedKeys(snapshot.ScoresByEvent) {
		entry := log.Info().Int("event_id", eventID).Int("classes", len(snapshot.ScoresByEvent[eventID]))
		event, known := catalog.EventByID(eventID)
		if known {
			entry.Str("title", event.Title)
		}
		entry.Msg("Scores found")

		if !known {
			log.Warn().Int("event_id", eventID).Msg("Sheet carries scores for an event not in the program")
		} else if !event.HasScores() {
			log.Warn().Int("event_id", eventID).Str("title", event.Title).Msg("Sheet carries scores for a ceremony entry")
		}
	}

	for _, eventID := range sortedKeys(snapshot.ManualStatuses) {
		log.Info().
			Int("event_id", eventID).
			Str("status", string(snapshot.ManualStatuses[eventID])).
			Msg("Manual status found")
		if !catalog.IsKnownEvent(eventID) {
			log.Warn().Int("event_id", eventID).Msg("Sheet sets a status for an event not in the program")
		}
	}

	// Show what the board would display right now
	now := scoreboard.ClockTime(time.Now())
	for _, event := range catalog.Events() {
		status := scoreboard.DeriveStatus(event.StartTime, event.EndTime, now, snapshot.ManualStatuses[event.ID])
		log.Info().
			Int("event_id", event.ID).
			Str("title", event.Title).
			Str("window", event.StartTime+"-"+event.EndTime).
			Str("status", string(status)).
			Msg("Derived status")
	}

	log.Info().Msg("Sheet check complete.")
}

func sortedKeys[V any](m map[int]V) []int {
	keys := make([]int, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	return keys
}
