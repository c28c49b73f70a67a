package mindsight

import (
	"fmt"
	"strings"
	"time"
)

// ──────────────────────────────────────────────
// Emotional Tone Detector — lightweight rule-based scoring
// ──────────────────────────────────────────────

// ToneReading holds the detected emotional tone of a chat message and the
// detector's confidence in it.
type ToneReading struct {
	Tone       Mood             `json:"tone"`       // empty = neutral
	Confidence float64          `json:"confidence"` // 0.0-1.0
	Scores     map[Mood]float64 `json:"scores"`
}

// Neutral reports whether no tone cleared the confidence threshold.
func (t *ToneReading) Neutral() bool { return t.Tone == "" }

type weightedKeyword struct {
	keyword string
	weight  float64
}

// ToneDetector scores user chat text against weighted keyword patterns for
// the five mood labels. Weights are differentiated to cut false positives:
// upbeat words score low so a single "great" does not flip the tone.
type ToneDetector struct {
	patterns map[Mood][]weightedKeyword
}

// NewToneDetector creates a detector with the built-in patterns.
func NewToneDetector() *ToneDetector {
	return &ToneDetector{patterns: defaultTonePatterns()}
}

func defaultTonePatterns() map[Mood][]weightedKeyword {
	return map[Mood][]weightedKeyword{
		MoodAngry: {
			{keyword: "furious", weight: 0.5}, {keyword: "hate", weight: 0.5},
			{keyword: "fed up", weight: 0.5}, {keyword: "so unfair", weight: 0.4},
			{keyword: "angry", weight: 0.4}, {keyword: "annoyed", weight: 0.2},
		},
		MoodAnxious: {
			{keyword: "panic", weight: 0.5}, {keyword: "anxious", weight: 0.4},
			{keyword: "nervous", weight: 0.4}, {keyword: "worried", weight: 0.4},
			{keyword: "scared", weight: 0.4}, {keyword: "overthinking", weight: 0.3},
			{keyword: "what if", weight: 0.2},
		},
		MoodHappy: {
			// Low weight, needs multiple hits (anti-false-positive for sarcasm)
			{keyword: "great", weight: 0.2}, {keyword: "awesome", weight: 0.2},
			{keyword: "grateful", weight: 0.2}, {keyword: "proud", weight: 0.2},
			{keyword: "excited", weight: 0.2}, {keyword: "love", weight: 0.2},
		},
		MoodSad: {
			{keyword: "hopeless", weight: 0.5}, {keyword: "lonely", weight: 0.4},
			{keyword: "crying", weight: 0.4}, {keyword: "empty", weight: 0.4},
			{keyword: "sad", weight: 0.4}, {keyword: "miss them", weight: 0.3},
		},
		MoodStressed: {
			{keyword: "overwhelmed", weight: 0.5}, {keyword: "burned out", weight: 0.5},
			{keyword: "stressed", weight: 0.4}, {keyword: "too much pressure", weight: 0.4},
			{keyword: "exhausted", weight: 0.4}, {keyword: "deadline", weight: 0.2},
		},
	}
}

// Detect analyzes user chat text for emotional tone. Recent mood entries,
// if given, provide contextual boosting: a negative mood logged today adds
// weight to the matching tone.
func (d *ToneDetector) Detect(text string, recent []MoodEntry) *ToneReading {
	lower := strings.ToLower(text)
	scores := make(map[Mood]float64, len(d.patterns))

	for tone, keywords := range d.patterns {
		for _, kw := range keywords {
			if strings.Contains(lower, kw.keyword) {
				scores[tone] += kw.weight
			}
		}
	}

	// Contextual boost: a negative mood logged today nudges the same tone
	if m, ok := todaysMood(recent); ok && m != MoodHappy {
		scores[m] += 0.2
	}

	// Exclamation boost: >=2 exclamation marks lift the leading tone (cap +0.2)
	if exclam := strings.Count(text, "!"); exclam >= 2 {
		boost := float64(exclam) * 0.1
		if boost > 0.2 {
			boost = 0.2
		}
		if top, _ := maxTone(scores); top != "" {
			scores[top] += boost
		}
	}

	top, topScore := maxTone(scores)

	confidence := topScore
	if confidence > 1.0 {
		confidence = 1.0
	}

	// Below threshold, report neutral
	if confidence < 0.3 {
		top = ""
		confidence = 0
	}

	return &ToneReading{Tone: top, Confidence: confidence, Scores: scores}
}

// Hint returns a short guidance line for injection into the companion's
// system prompt, or "" when the reading is neutral or low-confidence.
func (t *ToneReading) Hint() string {
	if t.Neutral() || t.Confidence < 0.3 {
		return ""
	}

	// Indirect phrasing on purpose: guide the reply, don't label the user
	hints := map[Mood]string{
		MoodAngry:    "The user's wording is heated. Stay calm, don't argue, acknowledge the frustration first.",
		MoodAnxious:  "The user sounds worried. Keep the reply short, steady and concrete.",
		MoodHappy:    "The user sounds upbeat. It's fine to match their energy.",
		MoodSad:      "The user sounds low. Respond gently and validate the feeling before suggesting anything.",
		MoodStressed: "The user sounds stretched thin. Offer one small, doable step rather than a list.",
	}
	hint, ok := hints[t.Tone]
	if !ok {
		return ""
	}
	return fmt.Sprintf("[user tone] %s", hint)
}

// todaysMood returns the most recently logged mood from today, if any.
func todaysMood(entries []MoodEntry) (Mood, bool) {
	today := time.Now().Format(DayLayout)
	for i := len(entries) - 1; i >= 0; i-- {
		if entries[i].Day == today {
			return entries[i].Mood, true
		}
	}
	return "", false
}

func maxTone(scores map[Mood]float64) (Mood, float64) {
	var top Mood
	topScore := 0.0
	for tone, score := range scores {
		if score > topScore {
			topScore = score
			top = tone
		}
	}
	return top, topScore
}
