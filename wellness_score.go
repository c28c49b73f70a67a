package mindsight

// ──────────────────────────────────────────────
// Wellness Scorer
// ──────────────────────────────────────────────

const scoreBaseline = 50

// ScoreDelta returns the signed contribution one logged mood makes to the
// wellness score. The switch is exhaustive over the closed label set; the
// default arm keeps unknown labels neutral should the set ever grow.
func (m Mood) ScoreDelta() int {
	switch m {
	case MoodHappy:
		return 2
	case MoodSad:
		return -2
	case MoodAnxious:
		return -1
	case MoodAngry:
		return -2
	case MoodStressed:
		return -1
	default:
		return 0
	}
}

// Score maps a mood entry sequence to a wellness score in [0, 100].
//
// Start at the baseline of 50, add each entry's delta, clamp at both ends.
// The sum runs over the entire input: this is a cumulative, non-decaying
// aggregate, and any windowing (say, last 7 days) is the caller's job via
// EntriesSince before the call.
func Score(entries []MoodEntry) int {
	score := scoreBaseline
	for _, e := range entries {
		score += e.Mood.ScoreDelta()
	}
	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}
	return score
}
