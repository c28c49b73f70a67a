package mindsight

import (
	"strings"
	"time"
)

// ──────────────────────────────────────────────
// Mood labels and entries
// ──────────────────────────────────────────────

// Mood is one of the closed set of mood labels a user can log.
type Mood string

const (
	MoodHappy    Mood = "happy"
	MoodSad      Mood = "sad"
	MoodAnxious  Mood = "anxious"
	MoodAngry    Mood = "angry"
	MoodStressed Mood = "stressed"
)

// Moods returns every valid mood label in display order.
func Moods() []Mood {
	return []Mood{MoodHappy, MoodSad, MoodAnxious, MoodAngry, MoodStressed}
}

// Valid reports whether m belongs to the closed label set.
func (m Mood) Valid() bool {
	switch m {
	case MoodHappy, MoodSad, MoodAnxious, MoodAngry, MoodStressed:
		return true
	default:
		return false
	}
}

// ParseMood maps a user-facing label (any case) to a Mood.
// The second return value is false for labels outside the closed set.
func ParseMood(s string) (Mood, bool) {
	m := Mood(strings.ToLower(strings.TrimSpace(s)))
	return m, m.Valid()
}

const (
	// DateTimeLayout is the full-timestamp column format of the mood log.
	DateTimeLayout = "2006-01-02 15:04:05"
	// DayLayout is the derived calendar-day column format (ISO date).
	DayLayout = "2006-01-02"
)

// MoodEntry is one user-submitted mood record. Entries are immutable once
// written; the store is append-only and nothing in the SDK mutates them.
type MoodEntry struct {
	LoggedAt time.Time `json:"date_time"`
	Day      string    `json:"date"` // DayLayout, derived from LoggedAt at write time
	Mood     Mood      `json:"mood"`
	Note     string    `json:"note,omitempty"`
}

// LoggedOn reports whether at least one entry falls on the given calendar day.
func LoggedOn(entries []MoodEntry, day time.Time) bool {
	d := day.Format(DayLayout)
	for _, e := range entries {
		if e.Day == d {
			return true
		}
	}
	return false
}

// EntriesSince returns the entries logged at or after cutoff, preserving
// order. Callers use it to window score and trend inputs (e.g. last 7 days);
// the scorer itself never filters by date.
func EntriesSince(entries []MoodEntry, cutoff time.Time) []MoodEntry {
	out := make([]MoodEntry, 0, len(entries))
	for _, e := range entries {
		if !e.LoggedAt.Before(cutoff) {
			out = append(out, e)
		}
	}
	return out
}
