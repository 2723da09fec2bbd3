// Package stats computes derived note statistics: streaks, windowed
// counts, tag rankings, activity slots, trends and heatmaps. Every
// function is pure over a note snapshot and a reference instant, never
// mutates its input, and is deterministic given (notes, now).
package stats

import (
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/riadev/ria-server/model"
)

// StreakBound caps how far back the streak walk goes. A genuine streak
// can exceed a month, so the bound is a year.
const StreakBound = 365

const msPerDay = 24 * 60 * 60 * 1000

// Streak counts consecutive calendar days with at least one note, walking
// backward from today. A noteless today does not break the chain (the user
// simply has not logged yet); a noteless earlier day does.
func Streak(notes []model.Note, now time.Time) int {
	if len(notes) == 0 {
		return 0
	}

	days := make(map[int64]struct{}, len(notes))
	for _, note := range notes {
		day := dayStart(time.UnixMilli(note.Timestamp).In(now.Location()))
		days[day.Unix()] = struct{}{}
	}

	streak := 0
	current := dayStart(now)
	for i := 0; i < StreakBound; i++ {
		if _, ok := days[current.Unix()]; ok {
			streak++
			current = current.AddDate(0, 0, -1)
		} else if i == 0 {
			current = current.AddDate(0, 0, -1)
		} else {
			break
		}
	}
	return streak
}

// WindowCount counts notes with timestamp at or after windowStart.
func WindowCount(notes []model.Note, windowStart time.Time) int {
	start := windowStart.UnixMilli()
	count := 0
	for _, note := range notes {
		if note.Timestamp >= start {
			count++
		}
	}
	return count
}

// WeekCount counts notes since Monday 00:00 local.
func WeekCount(notes []model.Note, now time.Time) int {
	return WindowCount(notes, WeekStart(now))
}

// MonthCount counts notes since the 1st of the month, 00:00 local.
func MonthCount(notes []model.Note, now time.Time) int {
	return WindowCount(notes, MonthStart(now))
}

// TodayCount counts notes falling within the current calendar day.
func TodayCount(notes []model.Note, now time.Time) int {
	return DayCount(notes, now)
}

// DayCount counts notes within the calendar day containing day.
func DayCount(notes []model.Note, day time.Time) int {
	start := dayStart(day)
	end := start.AddDate(0, 0, 1)
	startMs, endMs := start.UnixMilli(), end.UnixMilli()

	count := 0
	for _, note := range notes {
		if note.Timestamp >= startMs && note.Timestamp < endMs {
			count++
		}
	}
	return count
}

// RecordingDays is the number of calendar days since the earliest note,
// inclusive. Zero when there are no notes.
func RecordingDays(notes []model.Note, now time.Time) int {
	if len(notes) == 0 {
		return 0
	}
	first := notes[0].Timestamp
	for _, note := range notes[1:] {
		if note.Timestamp < first {
			first = note.Timestamp
		}
	}
	return int((now.UnixMilli()-first)/msPerDay) + 1
}

// AverageDaily is total notes divided by recording days, at least one day.
func AverageDaily(notes []model.Note, now time.Time) float64 {
	if len(notes) == 0 {
		return 0
	}
	days := RecordingDays(notes, now)
	if days < 1 {
		days = 1
	}
	return float64(len(notes)) / float64(days)
}

// TagFrequency maps each tag to its occurrence count; a note contributes
// one count per tag it carries.
func TagFrequency(notes []model.Note) map[string]int {
	freq := make(map[string]int)
	for _, note := range notes {
		for _, tag := range note.Tags {
			freq[tag]++
		}
	}
	return freq
}

// UniqueTagCount is the number of distinct tags in use.
func UniqueTagCount(notes []model.Note) int {
	return len(TagFrequency(notes))
}

type TagCount struct {
	Tag   string `json:"tag"`
	Count int    `json:"count"`
}

// TopTags returns the k most frequent tags, descending by count. Ties keep
// first-seen order, so the result is stable for a given note order.
func TopTags(notes []model.Note, k int) []TagCount {
	freq := make(map[string]int)
	var order []string
	for _, note := range notes {
		for _, tag := range note.Tags {
			if _, seen := freq[tag]; !seen {
				order = append(order, tag)
			}
			freq[tag]++
		}
	}

	ranked := make([]TagCount, 0, len(order))
	for _, tag := range order {
		ranked = append(ranked, TagCount{Tag: tag, Count: freq[tag]})
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Count > ranked[j].Count
	})

	if k >= 0 && k < len(ranked) {
		ranked = ranked[:k]
	}
	return ranked
}

type TimeSlot int

const (
	SlotMorning TimeSlot = iota // 6:00-12:00
	SlotAfternoon               // 12:00-18:00
	SlotEvening                 // everything else
)

func (s TimeSlot) String() string {
	switch s {
	case SlotMorning:
		return "morning (6:00-12:00)"
	case SlotAfternoon:
		return "afternoon (12:00-18:00)"
	default:
		return "evening (18:00-6:00)"
	}
}

type SlotStats struct {
	Slot    TimeSlot `json:"slot"`
	Label   string   `json:"label"`
	Count   int      `json:"count"`
	Percent int      `json:"percent"`
	HasData bool     `json:"has_data"`
}

// ActiveTimeSlot classifies notes by local hour and returns the busiest
// slot. Ties resolve in morning, afternoon, evening order. Returns a
// no-data sentinel when there are no notes.
func ActiveTimeSlot(notes []model.Note, loc *time.Location) SlotStats {
	var counts [3]int
	for _, note := range notes {
		hour := time.UnixMilli(note.Timestamp).In(loc).Hour()
		switch {
		case hour >= 6 && hour < 12:
			counts[SlotMorning]++
		case hour >= 12 && hour < 18:
			counts[SlotAfternoon]++
		default:
			counts[SlotEvening]++
		}
	}

	max := counts[0]
	best := SlotMorning
	for slot := SlotAfternoon; slot <= SlotEvening; slot++ {
		if counts[slot] > max {
			max = counts[slot]
			best = slot
		}
	}
	if max == 0 {
		return SlotStats{Label: "no data"}
	}

	percent := int(math.Round(float64(max) / float64(len(notes)) * 100))
	return SlotStats{
		Slot:    best,
		Label:   best.String(),
		Count:   max,
		Percent: percent,
		HasData: true,
	}
}

type TrendPoint struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}

// Trend emits a per-day count for each of the last days calendar days,
// oldest first, labelled "M/D".
func Trend(notes []model.Note, days int, now time.Time) []TrendPoint {
	today := dayStart(now)
	points := make([]TrendPoint, 0, days)
	for i := days - 1; i >= 0; i-- {
		day := today.AddDate(0, 0, -i)
		points = append(points, TrendPoint{
			Label: fmt.Sprintf("%d/%d", int(day.Month()), day.Day()),
			Count: DayCount(notes, day),
		})
	}
	return points
}

// GoalProgress holds clamped completion percentages for each goal the
// user has set; nil means the goal is unset.
type GoalProgress struct {
	Streak *int `json:"streak,omitempty"`
	Weekly *int `json:"weekly,omitempty"`
	Total  *int `json:"total,omitempty"`
}

// Progress computes goal completion from already-derived stats.
func Progress(streak, weekly, total int, goals model.Goals) GoalProgress {
	return GoalProgress{
		Streak: percentOf(streak, goals.StreakGoal),
		Weekly: percentOf(weekly, goals.WeeklyGoal),
		Total:  percentOf(total, goals.TotalGoal),
	}
}

func percentOf(current int, goal *int) *int {
	if goal == nil || *goal <= 0 {
		return nil
	}
	percent := int(math.Round(float64(current) / float64(*goal) * 100))
	if percent > 100 {
		percent = 100
	}
	return &percent
}

// WeekStart is Monday 00:00 local of the week containing t.
func WeekStart(t time.Time) time.Time {
	weekday := int(t.Weekday())
	if weekday == 0 {
		weekday = 7
	}
	return dayStart(t).AddDate(0, 0, -(weekday - 1))
}

// MonthStart is the 1st of t's month, 00:00 local.
func MonthStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

func dayStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
