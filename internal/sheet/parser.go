package sheet

import (
	"strconv"
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/dlawocjf0837-debug/Sports-day---Joongwon/internal/metrics"
	"github.com/dlawocjf0837-debug/Sports-day---Joongwon/internal/models"
)

// statusTokens maps the hand-typed override tokens to their statuses.
// Cells are NFC-normalized before the lookup; Korean text pasted into
// the sheet from other tools can arrive as decomposed jamo.
var statusTokens = map[string]models.ManualStatus{
	"활성": models.ManualActive,
	"종료": models.ManualEnded,
	"예정": models.ManualScheduled,
}

// Parse classifies one fetched CSV body into a snapshot. The first line
// is the header and is discarded; each remaining row is either a score
// row, a status row, or dropped.
//
// Cells are produced by a naive per-comma split. The sheet schema is
// fixed and none of its columns contain embedded commas, so quoted-field
// CSV handling is deliberately not attempted here. Rows that fit neither
// classification are skipped without error; the sheet is hand-edited
// during the event and stray content is normal.
func Parse(csvText string) *models.SheetSnapshot {
	snapshot := models.NewSheetSnapshot()

	lines := splitLines(csvText)
	if len(lines) <= 1 {
		return snapshot
	}

	for _, line := range lines[1:] {
		if strings.TrimSpace(line) == "" {
			continue
		}

		cells := splitCells(line)
		if cells[0] == "" {
			metrics.RecordRow("skipped")
			continue
		}

		eventID, err := strconv.Atoi(cells[0])
		if err != nil {
			metrics.RecordRow("skipped")
			continue
		}

		// Score row: class name present and an integer score. A row is
		// either a score row or a status row, never both, so a match
		// ends processing of the line.
		if className := cell(cells, 1); className != "" {
			if score, convErr := strconv.Atoi(cell(cells, 2)); convErr == nil {
				if eventID == models.CheeringEventID {
					snapshot.CheeringScores[className] = score
					metrics.RecordRow("cheering")
				} else {
					if snapshot.ScoresByEvent[eventID] == nil {
						snapshot.ScoresByEvent[eventID] = make(map[string]int)
					}
					snapshot.ScoresByEvent[eventID][className] = score
					metrics.RecordRow("score")
				}
				continue
			}
		}

		// Status row: a recognized token in the status column. Any other
		// content there is ignored.
		if status, ok := statusTokens[norm.NFC.String(cell(cells, 3))]; ok {
			snapshot.ManualStatuses[eventID] = status
			metrics.RecordRow("status")
			continue
		}

		metrics.RecordRow("skipped")
	}

	return snapshot
}

// splitLines splits on any line-ending style the export may emit
func splitLines(text string) []string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	return strings.Split(text, "\n")
}

// splitCells splits one line on commas, trimming whitespace and
// stripping embedded quote characters from each cell
func splitCells(line string) []string {
	cells := strings.Split(line, ",")
	for i, c := range cells {
		c = strings.ReplaceAll(c, `"`, "")
		cells[i] = strings.TrimSpace(c)
	}
	return cells
}

// cell returns the i'th cell, or "" when the row is short
func cell(cells []string, i int) string {
	if i >= len(cells) {
		return ""
	}
	return cells[i]
}
