package mindsight

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"
)

func newTestSession() *CompanionSession {
	return NewCompanionSession("user1", NewInMemoryStore())
}

func TestCompanion_CrisisGateSkipsModel(t *testing.T) {
	modelCalled := false
	comp := NewCompanion(CompanionConfig{
		Complete: func(ctx context.Context, system string, messages []ChatMessage) (string, error) {
			modelCalled = true
			return "should never happen", nil
		},
		Region: "India",
	})
	session := newTestSession()

	reply, err := comp.Respond(context.Background(), session, "I want to die", "English")
	if err != nil {
		t.Fatal(err)
	}
	if !reply.Crisis {
		t.Fatal("expected crisis reply")
	}
	if modelCalled {
		t.Fatal("model must not be called on a crisis message")
	}
	if len(reply.Helplines) == 0 {
		t.Fatal("expected helplines in crisis reply")
	}
	if session.Stats().CrisisFlags != 1 {
		t.Fatal("expected crisis counter bump")
	}
}

func TestCompanion_CrisisGateWorksWhenModelIsBroken(t *testing.T) {
	comp := NewCompanion(CompanionConfig{
		Complete: func(ctx context.Context, system string, messages []ChatMessage) (string, error) {
			return "", errors.New("model outage")
		},
		Region: "UK",
	})
	reply, err := comp.Respond(context.Background(), newTestSession(), "thinking about suicide", "English")
	if err != nil {
		t.Fatal(err)
	}
	if !reply.Crisis {
		t.Fatal("crisis detection must not depend on the model")
	}
}

func TestCompanion_DegradedModeWithoutModel(t *testing.T) {
	comp := NewCompanion(CompanionConfig{})
	reply, err := comp.Respond(context.Background(), newTestSession(), "hello", "English")
	if err != nil {
		t.Fatal(err)
	}
	if !reply.Degraded {
		t.Fatal("expected degraded reply without a model")
	}
	if reply.Text == "" {
		t.Fatal("degraded reply must carry a visible notice")
	}
}

func TestCompanion_ModelFailureFallsBack(t *testing.T) {
	comp := NewCompanion(CompanionConfig{
		Complete: func(ctx context.Context, system string, messages []ChatMessage) (string, error) {
			return "", errors.New("boom")
		},
	})
	reply, err := comp.Respond(context.Background(), newTestSession(), "rough day", "English")
	if err != nil {
		t.Fatalf("collaborator failure must not propagate: %v", err)
	}
	if reply.Text != fallbackReply {
		t.Fatalf("expected fallback reply, got %q", reply.Text)
	}
}

func TestCompanion_HappyPathStoresHistory(t *testing.T) {
	var gotSystem string
	comp := NewCompanion(CompanionConfig{
		Complete: func(ctx context.Context, system string, messages []ChatMessage) (string, error) {
			gotSystem = system
			if len(messages) == 0 || messages[len(messages)-1].Content != "rough day" {
				t.Fatalf("unexpected messages: %+v", messages)
			}
			return "that sounds hard", nil
		},
	})
	session := newTestSession()

	reply, err := comp.Respond(context.Background(), session, "rough day", "English")
	if err != nil {
		t.Fatal(err)
	}
	if reply.Text != "that sounds hard" {
		t.Fatalf("unexpected reply: %q", reply.Text)
	}
	if !strings.Contains(gotSystem, "mental wellness assistant") {
		t.Fatalf("system prompt missing base instructions: %q", gotSystem)
	}

	history, err := session.History(0)
	if err != nil {
		t.Fatal(err)
	}
	if len(history) != 2 {
		t.Fatalf("expected user + assistant turns stored, got %d", len(history))
	}
}

func TestCompanion_ToneHintInjected(t *testing.T) {
	var gotSystem string
	comp := NewCompanion(CompanionConfig{
		Complete: func(ctx context.Context, system string, messages []ChatMessage) (string, error) {
			gotSystem = system
			return "ok", nil
		},
	})

	_, err := comp.Respond(context.Background(), newTestSession(), "I'm completely overwhelmed and burned out", "English")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(gotSystem, "[user tone]") {
		t.Fatalf("expected tone hint in system prompt: %q", gotSystem)
	}
}

func TestCompanion_ToneBoostFromLoggedMood(t *testing.T) {
	var gotSystem string
	comp := NewCompanion(CompanionConfig{
		Complete: func(ctx context.Context, system string, messages []ChatMessage) (string, error) {
			gotSystem = system
			return "ok", nil
		},
	})
	now := time.Now()
	recent := []MoodEntry{{LoggedAt: now, Day: now.Format(DayLayout), Mood: MoodSad}}

	_, err := comp.RespondWithMoods(context.Background(), newTestSession(), "feeling sad again", "English", recent)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(gotSystem, "[user tone]") {
		t.Fatalf("expected boosted tone hint: %q", gotSystem)
	}
}

func TestCompanion_TranslationRoundTrip(t *testing.T) {
	comp := NewCompanion(CompanionConfig{
		Complete: func(ctx context.Context, system string, messages []ChatMessage) (string, error) {
			if messages[len(messages)-1].Content != "translated-in" {
				t.Fatalf("model should see translated input, got %q", messages[len(messages)-1].Content)
			}
			return "model-out", nil
		},
		Translate: func(ctx context.Context, text, target string) (string, error) {
			if target == "English" {
				return "translated-in", nil
			}
			return "translated-out", nil
		},
	})

	reply, err := comp.Respond(context.Background(), newTestSession(), "नमस्ते", "Hindi")
	if err != nil {
		t.Fatal(err)
	}
	if reply.Text != "translated-out" {
		t.Fatalf("expected translated reply, got %q", reply.Text)
	}
}

func TestCompanion_TranslationFailureKeepsOriginal(t *testing.T) {
	comp := NewCompanion(CompanionConfig{
		Complete: func(ctx context.Context, system string, messages []ChatMessage) (string, error) {
			return "model-out", nil
		},
		Translate: func(ctx context.Context, text, target string) (string, error) {
			return "", errors.New("translator down")
		},
	})

	reply, err := comp.Respond(context.Background(), newTestSession(), "hello", "Telugu")
	if err != nil {
		t.Fatal(err)
	}
	if reply.Text != "model-out" {
		t.Fatalf("expected untranslated model output, got %q", reply.Text)
	}
}

func TestCompanion_EnglishSkipsTranslator(t *testing.T) {
	comp := NewCompanion(CompanionConfig{
		Complete: func(ctx context.Context, system string, messages []ChatMessage) (string, error) {
			return "ok", nil
		},
		Translate: func(ctx context.Context, text, target string) (string, error) {
			t.Fatal("translator must not run for English")
			return "", nil
		},
	})
	if _, err := comp.Respond(context.Background(), newTestSession(), "hello", "English"); err != nil {
		t.Fatal(err)
	}
}
