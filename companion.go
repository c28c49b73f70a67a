package mindsight

import (
	"context"
	"fmt"
	"log"
	"strings"
)

// ──────────────────────────────────────────────
// Companion — chat flow around the (external) language model
// ──────────────────────────────────────────────

// CompleteFunc is the contract for the language-model collaborator: given a
// system instruction and the conversation so far, produce the next reply.
// Implementations may fail; the companion recovers locally and never
// propagates a hard failure to the chat surface.
type CompleteFunc func(ctx context.Context, system string, messages []ChatMessage) (string, error)

// TranslateFunc is the contract for the translation collaborator. On
// failure the companion falls back to the untranslated text.
type TranslateFunc func(ctx context.Context, text, targetLanguage string) (string, error)

// CompanionConfig wires a Companion.
type CompanionConfig struct {
	Complete  CompleteFunc  // nil = degraded stub mode (no API credential)
	Translate TranslateFunc // nil = English only
	Crisis    *CrisisDetector
	Tone      *ToneDetector
	Region    string // helpline directory region for crisis replies
}

// Reply is the companion's answer to one user message.
type Reply struct {
	Text      string
	Crisis    bool
	Helplines []Helpline
	Degraded  bool
}

// Companion drives the chat flow: crisis gate, optional translation, tone
// hint, model call, fallback handling. It holds no per-user state; that
// lives in CompanionSession.
//
// Usage:
//
//	comp := mindsight.NewCompanion(mindsight.CompanionConfig{
//	    Complete: client.Complete,
//	    Region:   "India",
//	})
//	reply, err := comp.Respond(ctx, session, "rough day today", "English")
type Companion struct {
	complete  CompleteFunc
	translate TranslateFunc
	crisis    *CrisisDetector
	tone      *ToneDetector
	region    string
}

// NewCompanion creates a Companion. Missing detectors get defaults; a nil
// Complete puts the companion in degraded stub mode.
func NewCompanion(cfg CompanionConfig) *Companion {
	crisis := cfg.Crisis
	if crisis == nil {
		crisis = NewCrisisDetector()
	}
	tone := cfg.Tone
	if tone == nil {
		tone = NewToneDetector()
	}
	return &Companion{
		complete:  cfg.Complete,
		translate: cfg.Translate,
		crisis:    crisis,
		tone:      tone,
		region:    cfg.Region,
	}
}

// Respond handles one user message.
//
// The crisis gate always runs first, locally, before any collaborator call:
// a flagged message yields helpline guidance and the model is never invoked.
// Otherwise the message is translated to English if needed, a tone hint is
// appended to the system prompt, the model is called, and the reply is
// translated back. Collaborator failures degrade to fixed fallback text;
// the returned error is reserved for session storage problems.
func (c *Companion) Respond(ctx context.Context, session *CompanionSession, userText, language string) (*Reply, error) {
	return c.RespondWithMoods(ctx, session, userText, language, nil)
}

// RespondWithMoods is Respond with recent mood entries supplied for tone
// boosting (see ToneDetector.Detect).
func (c *Companion) RespondWithMoods(ctx context.Context, session *CompanionSession, userText, language string, recent []MoodEntry) (*Reply, error) {
	// 1. Crisis gate: local, unconditional, independent of the model.
	if c.crisis.IsCrisis(userText) {
		session.RecordCrisis()
		return &Reply{
			Text:      crisisMessage(c.region),
			Crisis:    true,
			Helplines: HelplinesFor(c.region),
		}, nil
	}

	// 2. Degraded stub mode when no model is wired.
	if c.complete == nil {
		return &Reply{Text: degradedNotice, Degraded: true}, nil
	}

	// 3. Translate input to English for the model, fall back to original.
	modelInput := userText
	if c.needsTranslation(language) {
		modelInput = c.tryTranslate(ctx, userText, "English")
	}

	// 4. Tone hint.
	system := SystemPrompt
	if hint := c.tone.Detect(modelInput, recent).Hint(); hint != "" {
		system = system + "\n\n" + hint
	}

	history, err := session.History(0)
	if err != nil {
		return nil, fmt.Errorf("load history: %w", err)
	}
	messages := append(history, ChatMessage{Role: "user", Content: modelInput})

	// 5. Model call with local fallback.
	output, err := c.complete(ctx, system, messages)
	if err != nil {
		log.Printf("companion: model call failed, using fallback: %v", err)
		output = fallbackReply
	}

	// 6. Translate the reply back.
	if c.needsTranslation(language) {
		output = c.tryTranslate(ctx, output, language)
	}

	if err := session.AddMessage("user", userText); err != nil {
		return nil, fmt.Errorf("store user message: %w", err)
	}
	if err := session.AddMessage("assistant", output); err != nil {
		return nil, fmt.Errorf("store assistant message: %w", err)
	}

	return &Reply{Text: output}, nil
}

func (c *Companion) needsTranslation(language string) bool {
	return c.translate != nil && language != "" && !strings.EqualFold(language, "English")
}

func (c *Companion) tryTranslate(ctx context.Context, text, target string) string {
	out, err := c.translate(ctx, text, target)
	if err != nil || strings.TrimSpace(out) == "" {
		if err != nil {
			log.Printf("companion: translate to %s failed, keeping original: %v", target, err)
		}
		return text
	}
	return out
}
