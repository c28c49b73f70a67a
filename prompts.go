package mindsight

import "fmt"

// ──────────────────────────────────────────────
// Prompt and message fragments
// ──────────────────────────────────────────────

// SystemPrompt is the companion's base instruction block.
const SystemPrompt = "You are a compassionate, non-judgmental mental wellness assistant for young people. " +
	"Respond with empathy, reflective listening, and short supportive suggestions. " +
	"Do not provide clinical diagnoses. If the user mentions self-harm or suicide, " +
	"respond with a brief statement acknowledging distress and provide crisis resources and encourage seeking immediate help. " +
	"Keep responses concise (2-5 sentences) and suggest a simple coping action the user can try right now."

// Languages maps the supported display names to their language tags.
var Languages = map[string]string{
	"English": "en",
	"Hindi":   "hi",
	"Telugu":  "te",
}

// degradedNotice is shown instead of a model reply when no API credential
// is configured. Chat degrades visibly; it never crashes.
const degradedNotice = "The AI companion is not configured (missing API credential). " +
	"Mood logging, streaks and coping tips still work."

// fallbackReply is returned when the language-model collaborator fails.
const fallbackReply = "I'm having trouble responding right now, but I'm still here. " +
	"Try a slow breath, and feel free to send that again in a moment."

// crisisMessage is the reply used when the crisis gate fires. It never
// comes from the model.
func crisisMessage(region string) string {
	msg := "We detected language that may indicate risk. Please contact local emergency services immediately."
	if contacts := FormatHelplines(region); contacts != "" {
		msg += fmt.Sprintf(" Helplines: %s", contacts)
	}
	return msg
}
