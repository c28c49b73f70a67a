package mindsight

import "sort"

// ──────────────────────────────────────────────
// Mood trend aggregation
// ──────────────────────────────────────────────

// TrendPoint is one day's mood tally, the row shape behind the trend chart.
type TrendPoint struct {
	Day    string
	Counts map[Mood]int
}

// Total returns the number of entries logged on this day.
func (p TrendPoint) Total() int {
	n := 0
	for _, c := range p.Counts {
		n += c
	}
	return n
}

// MoodTrend groups entries by calendar day and counts each mood label per
// day, sorted by day ascending. Empty input yields an empty slice.
func MoodTrend(entries []MoodEntry) []TrendPoint {
	byDay := make(map[string]map[Mood]int)
	for _, e := range entries {
		if byDay[e.Day] == nil {
			byDay[e.Day] = make(map[Mood]int)
		}
		byDay[e.Day][e.Mood]++
	}

	points := make([]TrendPoint, 0, len(byDay))
	for day, counts := range byDay {
		points = append(points, TrendPoint{Day: day, Counts: counts})
	}
	sort.Slice(points, func(i, j int) bool {
		return points[i].Day < points[j].Day
	})
	return points
}
