package mindsight

import (
	"fmt"
	"strings"
)

// ──────────────────────────────────────────────
// Crisis Detector — local risk-phrase gate
// ──────────────────────────────────────────────

// CrisisDetector flags free-text input that contains a known risk phrase.
// It only classifies; the caller decides what to suppress or surface. The
// match is a plain case-insensitive substring scan with no negation
// handling, so "I will never give up" is flagged by "give up". That
// imprecision is known and accepted.
//
// The detector runs locally and never depends on the language-model
// collaborator, so a model outage can never starve the gate.
type CrisisDetector struct {
	phrases []string
}

// NewCrisisDetector creates a detector with the built-in risk-phrase list.
// Extra phrases, if any, are matched in addition to the built-ins.
func NewCrisisDetector(extra ...string) *CrisisDetector {
	phrases := defaultCrisisPhrases()
	for _, p := range extra {
		p = strings.ToLower(strings.TrimSpace(p))
		if p != "" {
			phrases = append(phrases, p)
		}
	}
	return &CrisisDetector{phrases: phrases}
}

func defaultCrisisPhrases() []string {
	return []string{
		"suicide",
		"kill myself",
		"end my life",
		"i want to die",
		"give up",
		"self harm",
		"hurt myself",
		"i cant go on",
		"i can't go on",
		"i'm going to kill myself",
	}
}

// IsCrisis reports whether text contains any risk phrase. Empty text is
// never a crisis.
func (d *CrisisDetector) IsCrisis(text string) bool {
	if text == "" {
		return false
	}
	lower := strings.ToLower(text)
	for _, p := range d.phrases {
		if strings.Contains(lower, p) {
			return true
		}
	}
	return false
}

// ──────────────────────────────────────────────
// Helpline directory
// ──────────────────────────────────────────────

// Helpline is one emergency contact in a region's directory.
type Helpline struct {
	Name    string
	Contact string
}

// helplineDirectory is built once at process start and handed out read-only.
var helplineDirectory = map[string][]Helpline{
	"India": {
		{Name: "AASRA", Contact: "91-98204 66726"},
		{Name: "Vandrevala Foundation Helpline", Contact: "1860 266 2345 or 1800 233 3330"},
		{Name: "Snehi", Contact: "91-9582208181"},
	},
	"USA": {
		{Name: "National Suicide Prevention Lifeline", Contact: "988"},
	},
	"UK": {
		{Name: "Samaritans", Contact: "116 123"},
	},
}

// HelplineRegions returns the regions with a known helpline directory.
func HelplineRegions() []string {
	return []string{"India", "USA", "UK"}
}

// HelplinesFor returns the emergency contacts for a region, or nil when the
// region has no directory entry.
func HelplinesFor(region string) []Helpline {
	return helplineDirectory[region]
}

// FormatHelplines renders a region's contacts as a single display line,
// e.g. "AASRA: 91-98204 66726, Snehi: 91-9582208181".
func FormatHelplines(region string) string {
	lines := HelplinesFor(region)
	parts := make([]string, 0, len(lines))
	for _, h := range lines {
		parts = append(parts, fmt.Sprintf("%s: %s", h.Name, h.Contact))
	}
	return strings.Join(parts, ", ")
}
