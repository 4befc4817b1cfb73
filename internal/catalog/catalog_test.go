package catalog

import (
	"regexp"
	"testing"

	"github.com/dlawocjf0837-debug/Sports-day---Joongwon/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvents_ProgramShape(t *testing.T) {
	events := Events()
	require.Len(t, events, 8, "The day has eight program entries")

	clock := regexp.MustCompile(`^\d{2}:\d{2}$`)
	seen := make(map[int]bool)
	for _, event := range events {
		assert.False(t, seen[event.ID], "Event ids should be unique")
		seen[event.ID] = true

		assert.NotEqual(t, models.CheeringEventID, event.ID,
			"The cheering identifier is reserved, not a program event")
		assert.NotEmpty(t, event.Title)
		assert.Regexp(t, clock, event.StartTime)
		assert.Regexp(t, clock, event.EndTime)
		assert.Less(t, event.StartTime, event.EndTime,
			"Zero-padded clock strings order lexicographically")
	}
}

func TestEvents_ScoredEventsSeedEveryClass(t *testing.T) {
	classes := Classes()
	require.Len(t, classes, 12)

	for _, event := range Events() {
		if !event.HasScores() {
			continue
		}
		require.Len(t, event.Scores, len(classes), "Event %d should seed all classes", event.ID)
		for _, class := range classes {
			score, ok := event.Scores[class]
			require.True(t, ok, "Event %d should seed class %s", event.ID, class)
			assert.Zero(t, score)
		}
	}
}

func TestEvents_ReturnsIndependentCopies(t *testing.T) {
	first := Events()
	first[0].Title = "changed"
	for i := range first {
		if first[i].HasScores() {
			first[i].Scores["1-1"] = 999
		}
		if first[i].HasRosters() {
			first[i].Rosters["1-1"] = []string{"changed"}
		}
	}

	second := Events()
	assert.NotEqual(t, "changed", second[0].Title, "Callers must not reach the canonical program")
	for _, event := range second {
		if event.HasScores() {
			assert.Zero(t, event.Scores["1-1"])
		}
		if event.HasRosters() {
			assert.NotEqual(t, []string{"changed"}, event.Rosters["1-1"])
		}
	}
}

func TestEventByID(t *testing.T) {
	relay, ok := EventByID(2)
	require.True(t, ok)
	assert.Equal(t, "이어달리기", relay.Title)
	assert.True(t, relay.HasRosters())

	relay.Scores["1-1"] = 50
	again, _ := EventByID(2)
	assert.Zero(t, again.Scores["1-1"], "EventByID should hand out copies")

	_, ok = EventByID(models.CheeringEventID)
	assert.False(t, ok)
	_, ok = EventByID(42)
	assert.False(t, ok)
}

func TestIsKnownEvent(t *testing.T) {
	assert.True(t, IsKnownEvent(1))
	assert.True(t, IsKnownEvent(9))
	assert.False(t, IsKnownEvent(models.CheeringEventID))
	assert.False(t, IsKnownEvent(0))
}

func TestClasses_ReturnsCopy(t *testing.T) {
	classes := Classes()
	classes[0] = "changed"
	assert.Equal(t, "1-1", Classes()[0])
}
