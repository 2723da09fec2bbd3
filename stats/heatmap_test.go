package stats

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/riadev/ria-server/model"
)

func TestHeatTier(t *testing.T) {
	tests := []struct {
		count int
		tier  int
	}{
		{0, 0}, {1, 1}, {2, 2}, {3, 2}, {4, 3}, {6, 3}, {7, 4}, {20, 4},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.tier, HeatTier(tt.count), "count %d", tt.count)
	}
	assert.Len(t, TierRanges, 5)
}

func TestWeekHeatmap(t *testing.T) {
	monday := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	notes := []model.Note{
		noteAt(monday.Add(9 * time.Hour)),
		noteAt(monday.Add(10 * time.Hour)),
		noteAt(monday.AddDate(0, 0, 1).Add(9 * time.Hour)), // Tuesday
	}

	buckets := WeekHeatmap(notes, testNow)
	assert.Len(t, buckets, 7)
	assert.Equal(t, "Mon", buckets[0].Label)
	assert.Equal(t, "Sun", buckets[6].Label)
	assert.Equal(t, 2, buckets[0].Count)
	assert.Equal(t, 100, buckets[0].Percent)
	assert.Equal(t, 1, buckets[1].Count)
	assert.Equal(t, 50, buckets[1].Percent)
	assert.Equal(t, 0, buckets[2].Count)
	assert.Equal(t, 0, buckets[2].Percent)
}

func TestWeekHeatmapEmpty(t *testing.T) {
	buckets := WeekHeatmap(nil, testNow)
	for _, bucket := range buckets {
		assert.Equal(t, 0, bucket.Count)
		assert.Equal(t, 0, bucket.Percent)
	}
}

func TestMonthHeatmap(t *testing.T) {
	// March 2025 starts on a Saturday: 5 leading filler cells, 31 days,
	// so ceil(36/7) = 6 week rows.
	notes := []model.Note{
		noteAt(time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)),
		noteAt(time.Date(2025, 3, 1, 13, 0, 0, 0, time.UTC)),
		noteAt(time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)),
	}

	grid := MonthHeatmap(notes, testNow)
	assert.Equal(t, 2025, grid.Year)
	assert.Equal(t, time.March, grid.Month)
	require.Len(t, grid.Weeks, 6)

	// Leading filler.
	assert.False(t, grid.Weeks[0][0].InRange)
	assert.False(t, grid.Weeks[0][4].InRange)

	first := grid.Weeks[0][5]
	assert.True(t, first.InRange)
	assert.Equal(t, 1, first.Day)
	assert.Equal(t, 2, first.Count)
	assert.Equal(t, 2, first.Tier)

	tenth := grid.Weeks[2][0] // March 10 is the Monday of the third row
	assert.True(t, tenth.InRange)
	assert.Equal(t, 10, tenth.Day)
	assert.Equal(t, 1, tenth.Count)

	// Trailing filler after March 31 (Monday of the last row).
	last := grid.Weeks[5]
	assert.True(t, last[0].InRange)
	assert.Equal(t, 31, last[0].Day)
	assert.False(t, last[1].InRange)
}

func TestMonthHeatmapWeekFormula(t *testing.T) {
	// June 2026 starts on a Monday and has 30 days: exactly 5 rows.
	june := time.Date(2026, 6, 15, 10, 0, 0, 0, time.UTC)
	grid := MonthHeatmap(nil, june)
	assert.Len(t, grid.Weeks, 5)
	assert.True(t, grid.Weeks[0][0].InRange)
	assert.Equal(t, 1, grid.Weeks[0][0].Day)
}

func TestQuarterHeatmap(t *testing.T) {
	// Q1 2025 starts Wednesday Jan 1; the matrix runs from Monday
	// Dec 30 2024 through the current week, 11 rows.
	notes := []model.Note{
		noteAt(time.Date(2025, 1, 1, 9, 0, 0, 0, time.UTC)),
		noteAt(time.Date(2025, 3, 15, 9, 0, 0, 0, time.UTC)),
	}

	grid := QuarterHeatmap(notes, testNow)
	assert.Equal(t, 1, grid.Quarter)
	require.Len(t, grid.Weeks, 11)

	// Dec 30 and Dec 31 are outside the quarter.
	assert.False(t, grid.Weeks[0][0].InRange)
	assert.False(t, grid.Weeks[0][1].InRange)

	jan1 := grid.Weeks[0][2]
	assert.True(t, jan1.InRange)
	assert.Equal(t, 1, jan1.Day)
	assert.Equal(t, 1, jan1.Count)

	// Saturday of the current (last) week.
	sat := grid.Weeks[10][5]
	assert.True(t, sat.InRange)
	assert.Equal(t, 15, sat.Day)
	assert.Equal(t, 1, sat.Count)
}

func TestRollingHeatmap(t *testing.T) {
	empty := RollingHeatmap(nil, testNow)
	assert.Equal(t, 4, empty.WeekCount)
	require.Len(t, empty.Counts, 7)
	for _, row := range empty.Counts {
		assert.Len(t, row, 4)
	}

	// Ten weeks of usage widens the window to ten columns.
	notes := []model.Note{
		noteAt(daysAgo(70, 9)),
		noteAt(daysAgo(0, 9)),
	}
	grid := RollingHeatmap(notes, testNow)
	assert.Equal(t, 10, grid.WeekCount)

	total := 0
	for _, row := range grid.Counts {
		assert.Len(t, row, 10)
		for _, count := range row {
			total += count
		}
	}
	// The 70-day-old note sits exactly at the window edge.
	assert.GreaterOrEqual(t, total, 1)
}
