package mindsight

import "time"

// ──────────────────────────────────────────────
// Streak Calculator
// ──────────────────────────────────────────────

// CurrentStreak returns the number of consecutive calendar days, ending
// today, on which at least one mood was logged.
func CurrentStreak(entries []MoodEntry) int {
	return CurrentStreakAt(entries, time.Now())
}

// CurrentStreakAt computes the streak as of the given day. The walk starts
// at today and steps back one calendar day at a time, counting until the
// first day with no entry; a day with several entries still counts once.
// If today itself has no entry the streak is 0 no matter how long the past
// chain is.
func CurrentStreakAt(entries []MoodEntry, today time.Time) int {
	if len(entries) == 0 {
		return 0
	}

	days := make(map[string]bool, len(entries))
	for _, e := range entries {
		days[e.Day] = true
	}

	streak := 0
	day := today
	for days[day.Format(DayLayout)] {
		streak++
		day = day.AddDate(0, 0, -1)
	}
	return streak
}
