package stats

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/riadev/ria-server/model"
)

// Saturday morning, used as the reference instant throughout.
var testNow = time.Date(2025, 3, 15, 10, 0, 0, 0, time.UTC)

func noteAt(t time.Time, tags ...string) model.Note {
	if tags == nil {
		tags = []string{}
	}
	return model.Note{
		ID:        t.Format("20060102150405"),
		Content:   "note",
		Tags:      tags,
		Timestamp: t.UnixMilli(),
	}
}

func daysAgo(days int, hour int) time.Time {
	return testNow.AddDate(0, 0, -days).Truncate(24 * time.Hour).Add(time.Duration(hour) * time.Hour)
}

func TestStreak(t *testing.T) {
	tests := []struct {
		name  string
		notes []model.Note
		want  int
	}{
		{
			name:  "no notes",
			notes: nil,
			want:  0,
		},
		{
			name:  "only today",
			notes: []model.Note{noteAt(daysAgo(0, 9))},
			want:  1,
		},
		{
			name: "gap two days ago breaks the chain",
			notes: []model.Note{
				noteAt(daysAgo(0, 9)),
				noteAt(daysAgo(1, 14)),
				noteAt(daysAgo(3, 20)),
			},
			want: 2,
		},
		{
			name: "noteless today does not break",
			notes: []model.Note{
				noteAt(daysAgo(1, 9)),
				noteAt(daysAgo(2, 9)),
			},
			want: 2,
		},
		{
			name: "noteless today plus gap at yesterday gives zero",
			notes: []model.Note{
				noteAt(daysAgo(2, 9)),
				noteAt(daysAgo(3, 9)),
			},
			want: 0,
		},
		{
			name: "multiple notes per day count once",
			notes: []model.Note{
				noteAt(daysAgo(0, 8)),
				noteAt(daysAgo(0, 21)),
				noteAt(daysAgo(1, 8)),
			},
			want: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Streak(tt.notes, testNow))
		})
	}
}

func TestStreakOrderInsensitive(t *testing.T) {
	notes := []model.Note{
		noteAt(daysAgo(2, 9)),
		noteAt(daysAgo(0, 9)),
		noteAt(daysAgo(1, 9)),
	}
	reversed := []model.Note{notes[1], notes[2], notes[0]}

	assert.Equal(t, Streak(notes, testNow), Streak(reversed, testNow))
}

func TestStreakBounds(t *testing.T) {
	var notes []model.Note
	for i := 0; i < 400; i++ {
		notes = append(notes, noteAt(daysAgo(i, 12)))
	}
	got := Streak(notes, testNow)
	assert.Equal(t, StreakBound, got)
	assert.LessOrEqual(t, got, RecordingDays(notes, testNow))
}

func TestWindowCountMonotonic(t *testing.T) {
	notes := []model.Note{
		noteAt(daysAgo(0, 9)),
		noteAt(daysAgo(3, 9)),
		noteAt(daysAgo(10, 9)),
	}

	wide := WindowCount(notes, daysAgo(20, 0))
	narrow := WindowCount(notes, daysAgo(2, 0))
	assert.GreaterOrEqual(t, wide, narrow)
	assert.Equal(t, 3, wide)
	assert.Equal(t, 1, narrow)
}

func TestWeekCount(t *testing.T) {
	// testNow is Saturday 2025-03-15; the week starts Monday 2025-03-10.
	monday := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, monday, WeekStart(testNow))

	notes := []model.Note{
		noteAt(monday.Add(5 * time.Minute)),
		noteAt(monday.Add(-time.Minute)), // Sunday before, out of window
		noteAt(daysAgo(0, 9)),
	}
	assert.Equal(t, 2, WeekCount(notes, testNow))
}

func TestMonthCount(t *testing.T) {
	first := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	notes := []model.Note{
		noteAt(first),
		noteAt(first.Add(-time.Second)), // February
		noteAt(daysAgo(1, 9)),
	}
	assert.Equal(t, 2, MonthCount(notes, testNow))
}

func TestRecordingDaysAndAverage(t *testing.T) {
	assert.Equal(t, 0, RecordingDays(nil, testNow))
	assert.Equal(t, 0.0, AverageDaily(nil, testNow))

	notes := []model.Note{
		noteAt(daysAgo(2, 9)),
		noteAt(daysAgo(1, 9)),
		noteAt(daysAgo(0, 9)),
	}
	days := RecordingDays(notes, testNow)
	assert.Equal(t, 3, days)
	assert.InDelta(t, 1.0, AverageDaily(notes, testNow), 0.001)
}

func TestTagFrequencySum(t *testing.T) {
	notes := []model.Note{
		noteAt(daysAgo(0, 9), "work", "ideas"),
		noteAt(daysAgo(1, 9), "work"),
		noteAt(daysAgo(2, 9)),
	}

	freq := TagFrequency(notes)
	total := 0
	for _, count := range freq {
		total += count
	}

	want := 0
	for _, note := range notes {
		want += len(note.Tags)
	}
	assert.Equal(t, want, total)
	assert.Equal(t, 2, freq["work"])
	assert.Equal(t, 2, UniqueTagCount(notes))
}

func TestTopTags(t *testing.T) {
	notes := []model.Note{
		noteAt(daysAgo(0, 9), "a", "b"),
		noteAt(daysAgo(1, 9), "b", "c"),
		noteAt(daysAgo(2, 9), "b", "a"),
	}

	top := TopTags(notes, 2)
	require.Len(t, top, 2)
	assert.Equal(t, TagCount{Tag: "b", Count: 3}, top[0])
	assert.Equal(t, TagCount{Tag: "a", Count: 2}, top[1])

	all := TopTags(notes, 10)
	assert.Len(t, all, 3)
}

func TestTopTagsTieKeepsFirstSeen(t *testing.T) {
	notes := []model.Note{
		noteAt(daysAgo(0, 9), "x"),
		noteAt(daysAgo(1, 9), "y"),
	}
	top := TopTags(notes, 5)
	require.Len(t, top, 2)
	assert.Equal(t, "x", top[0].Tag)
	assert.Equal(t, "y", top[1].Tag)
}

func TestActiveTimeSlot(t *testing.T) {
	empty := ActiveTimeSlot(nil, time.UTC)
	assert.False(t, empty.HasData)
	assert.Equal(t, "no data", empty.Label)

	notes := []model.Note{
		noteAt(daysAgo(0, 7)),  // morning
		noteAt(daysAgo(0, 8)),  // morning
		noteAt(daysAgo(0, 13)), // afternoon
		noteAt(daysAgo(0, 23)), // evening
	}
	slot := ActiveTimeSlot(notes, time.UTC)
	assert.True(t, slot.HasData)
	assert.Equal(t, SlotMorning, slot.Slot)
	assert.Equal(t, 2, slot.Count)
	assert.Equal(t, 50, slot.Percent)
}

func TestActiveTimeSlotTieOrder(t *testing.T) {
	notes := []model.Note{
		noteAt(daysAgo(0, 9)),  // morning
		noteAt(daysAgo(0, 15)), // afternoon
	}
	slot := ActiveTimeSlot(notes, time.UTC)
	assert.Equal(t, SlotMorning, slot.Slot)
}

func TestTrend(t *testing.T) {
	notes := []model.Note{
		noteAt(daysAgo(0, 9)),
		noteAt(daysAgo(0, 10)),
		noteAt(daysAgo(2, 9)),
	}

	points := Trend(notes, 3, testNow)
	require.Len(t, points, 3)
	assert.Equal(t, TrendPoint{Label: "3/13", Count: 1}, points[0])
	assert.Equal(t, TrendPoint{Label: "3/14", Count: 0}, points[1])
	assert.Equal(t, TrendPoint{Label: "3/15", Count: 2}, points[2])
}

func TestProgress(t *testing.T) {
	seven, hundred := 7, 100
	goals := model.Goals{StreakGoal: &seven, TotalGoal: &hundred}

	progress := Progress(14, 3, 50, goals)
	require.NotNil(t, progress.Streak)
	assert.Equal(t, 100, *progress.Streak) // clamped
	assert.Nil(t, progress.Weekly)
	require.NotNil(t, progress.Total)
	assert.Equal(t, 50, *progress.Total)
}

func TestStatsDoNotMutateInput(t *testing.T) {
	notes := []model.Note{
		noteAt(daysAgo(2, 9), "b"),
		noteAt(daysAgo(0, 9), "a"),
	}
	before := make([]model.Note, len(notes))
	copy(before, notes)

	Streak(notes, testNow)
	TopTags(notes, 5)
	Trend(notes, 7, testNow)
	WeekHeatmap(notes, testNow)

	assert.Equal(t, before, notes)
}
