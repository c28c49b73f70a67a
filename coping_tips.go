package mindsight

// ──────────────────────────────────────────────
// Coping-Tip Resolver
// ──────────────────────────────────────────────

const fallbackTip = "Take a few slow breaths and remind yourself you're doing your best."

// TipFor returns a short coping suggestion for the given mood label. Labels
// outside the closed set get a generic fallback; with the enum checked at
// parse time that arm should not be reachable, but it keeps the resolver
// total for future labels.
func TipFor(mood Mood) string {
	switch mood {
	case MoodHappy:
		return "Nice! Share that positivity — text a friend or keep a gratitude note."
	case MoodSad:
		return "It can help to name the feeling. Try writing for 5 minutes about what's on your mind."
	case MoodAnxious:
		return "Try a 2-minute breathing exercise: 4s in, 4s hold, 6s out (repeat)."
	case MoodAngry:
		return "Take a short walk or count to 10, then describe what made you angry in one sentence."
	case MoodStressed:
		return "Break tasks into tiny steps and take a short break (stretch/water)."
	default:
		return fallbackTip
	}
}
