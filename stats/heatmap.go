package stats

import (
	"time"

	"github.com/riadev/ria-server/model"
)

// Heat tiers clamp raw day counts into 5 color bands: 0, 1, 2-3, 4-6, 7+.
var TierRanges = []string{"0", "1", "2-3", "4-6", "7+"}

// HeatTier maps a day count to its color tier, 0 through 4.
func HeatTier(count int) int {
	switch {
	case count == 0:
		return 0
	case count == 1:
		return 1
	case count <= 3:
		return 2
	case count <= 6:
		return 3
	default:
		return 4
	}
}

// DayBucket is one day of the current-week heatmap. Percent is relative
// to the busiest day of the week, for bar rendering.
type DayBucket struct {
	Label   string `json:"label"`
	Count   int    `json:"count"`
	Percent int    `json:"percent"`
}

// WeekHeatmap buckets the current week's notes into exactly 7 entries,
// Monday through Sunday.
func WeekHeatmap(notes []model.Note, now time.Time) [7]DayBucket {
	var buckets [7]DayBucket
	start := WeekStart(now)

	max := 0
	for i := 0; i < 7; i++ {
		day := start.AddDate(0, 0, i)
		count := DayCount(notes, day)
		buckets[i] = DayBucket{Label: day.Format("Mon"), Count: count}
		if count > max {
			max = count
		}
	}
	if max > 0 {
		for i := range buckets {
			buckets[i].Percent = buckets[i].Count * 100 / max
		}
	}
	return buckets
}

// HeatCell is a single day cell in a calendar-shaped heatmap. InRange is
// false for the leading/trailing filler cells outside the period.
type HeatCell struct {
	Day     int  `json:"day"` // day of month, 0 for filler cells
	Count   int  `json:"count"`
	Tier    int  `json:"tier"`
	InRange bool `json:"in_range"`
}

// MonthGrid is the current month's heatmap laid out as calendar rows:
// one row per week, 7 weekday columns starting Monday.
type MonthGrid struct {
	Year  int           `json:"year"`
	Month time.Month    `json:"month"`
	Weeks [][7]HeatCell `json:"weeks"`
}

// MonthHeatmap builds the month grid with leading and trailing empty
// cells for days outside the month.
func MonthHeatmap(notes []model.Note, now time.Time) MonthGrid {
	first := MonthStart(now)
	daysInMonth := first.AddDate(0, 1, -1).Day()
	offset := mondayIndex(first.Weekday())

	weeks := (offset + daysInMonth + 6) / 7
	grid := MonthGrid{
		Year:  now.Year(),
		Month: now.Month(),
		Weeks: make([][7]HeatCell, weeks),
	}

	for idx := 0; idx < weeks*7; idx++ {
		day := idx - offset + 1
		if day < 1 || day > daysInMonth {
			continue
		}
		count := DayCount(notes, first.AddDate(0, 0, day-1))
		grid.Weeks[idx/7][idx%7] = HeatCell{
			Day:     day,
			Count:   count,
			Tier:    HeatTier(count),
			InRange: true,
		}
	}
	return grid
}

// QuarterGrid spans from the start of the current calendar quarter to the
// end of the current week, one row per week, Monday-first.
type QuarterGrid struct {
	Year    int           `json:"year"`
	Quarter int           `json:"quarter"`
	Weeks   [][7]HeatCell `json:"weeks"`
}

// QuarterHeatmap builds the quarter matrix. Cells before the quarter
// start or after today's week are filler.
func QuarterHeatmap(notes []model.Note, now time.Time) QuarterGrid {
	quarter := (int(now.Month())-1)/3 + 1
	qStart := time.Date(now.Year(), time.Month((quarter-1)*3+1), 1, 0, 0, 0, 0, now.Location())

	firstMonday := qStart.AddDate(0, 0, -mondayIndex(qStart.Weekday()))
	lastMonday := WeekStart(now)
	weeks := int(lastMonday.Sub(firstMonday).Hours()/(24*7)) + 1

	grid := QuarterGrid{
		Year:    now.Year(),
		Quarter: quarter,
		Weeks:   make([][7]HeatCell, weeks),
	}

	weekEnd := lastMonday.AddDate(0, 0, 7)
	for w := 0; w < weeks; w++ {
		for d := 0; d < 7; d++ {
			day := firstMonday.AddDate(0, 0, w*7+d)
			if day.Before(qStart) || !day.Before(weekEnd) {
				continue
			}
			count := DayCount(notes, day)
			grid.Weeks[w][d] = HeatCell{
				Day:     day.Day(),
				Count:   count,
				Tier:    HeatTier(count),
				InRange: true,
			}
		}
	}
	return grid
}

// RollingGrid is the profile-view heatmap: 7 weekday rows by a dynamic
// number of trailing weeks, sized by how long the user has been writing.
type RollingGrid struct {
	WeekCount int     `json:"week_count"`
	Counts    [][]int `json:"counts"` // 7 rows, WeekCount columns
}

// RollingHeatmap grows from 4 to at most 12 weeks as usage accumulates.
func RollingHeatmap(notes []model.Note, now time.Time) RollingGrid {
	weeks := 4
	if len(notes) > 0 {
		first := notes[0].Timestamp
		for _, note := range notes[1:] {
			if note.Timestamp < first {
				first = note.Timestamp
			}
		}
		usageDays := int((now.UnixMilli() - first) / msPerDay)
		usageWeeks := (usageDays + 6) / 7

		switch {
		case usageWeeks <= 4:
			weeks = 4
		case usageWeeks <= 8:
			weeks = maxInt(usageWeeks, 6)
		case usageWeeks <= 12:
			weeks = maxInt(usageWeeks, 8)
		default:
			weeks = 12
		}
	}

	counts := make([][]int, 7)
	for i := range counts {
		counts[i] = make([]int, weeks)
	}

	start := dayStart(now.Add(-time.Duration(weeks*7) * 24 * time.Hour))
	startMs := start.UnixMilli()
	for _, note := range notes {
		diffDays := int((note.Timestamp - startMs) / msPerDay)
		if diffDays < 0 || diffDays >= weeks*7 {
			continue
		}
		counts[diffDays%7][diffDays/7]++
	}

	return RollingGrid{WeekCount: weeks, Counts: counts}
}

// mondayIndex maps a weekday to its Monday-first column, Mon=0 .. Sun=6.
func mondayIndex(d time.Weekday) int {
	if d == time.Sunday {
		return 6
	}
	return int(d) - 1
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
