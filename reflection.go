package mindsight

import (
	"fmt"
	"strings"
)

// ──────────────────────────────────────────────
// Weekly reflection — structured model output over recent moods
// ──────────────────────────────────────────────

// WeeklyReflection is the model-produced summary of the user's recent mood
// entries, returned as strict JSON by the provider layer.
type WeeklyReflection struct {
	Summary       string   `json:"summary"`
	DominantMoods []string `json:"dominant_moods"`
	GentleNudge   string   `json:"gentle_nudge"`
	Highlights    []string `json:"highlights,omitempty"`
}

// ReflectionInstructions is the instruction block for the reflection call.
const ReflectionInstructions = "You review a short mood journal and produce a warm, honest weekly reflection. " +
	"Name the moods that dominated the week, mention one or two concrete highlights from the notes if present, " +
	"and close with a single gentle, doable suggestion. No diagnoses, no alarm. " +
	"Respond only with the requested JSON."

// BuildReflectionInput renders mood entries as the user-turn text for the
// reflection call: one line per entry, oldest first.
func BuildReflectionInput(entries []MoodEntry) string {
	if len(entries) == 0 {
		return "No moods were logged this week."
	}
	var b strings.Builder
	b.WriteString("Mood journal:\n")
	for _, e := range entries {
		if e.Note != "" {
			fmt.Fprintf(&b, "%s %s: %s\n", e.Day, e.Mood, e.Note)
		} else {
			fmt.Fprintf(&b, "%s %s\n", e.Day, e.Mood)
		}
	}
	return b.String()
}
