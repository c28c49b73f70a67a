package mindsight

import (
	"testing"
	"time"
)

func moodRun(mood Mood, n int) []MoodEntry {
	entries := make([]MoodEntry, n)
	at := time.Date(2024, 1, 1, 8, 0, 0, 0, time.Local)
	for i := range entries {
		entries[i] = MoodEntry{LoggedAt: at, Day: at.Format(DayLayout), Mood: mood}
		at = at.Add(time.Hour)
	}
	return entries
}

func TestScore_EmptyIsBaseline(t *testing.T) {
	if got := Score(nil); got != 50 {
		t.Fatalf("expected 50, got %d", got)
	}
}

func TestScore_Deltas(t *testing.T) {
	entries := []MoodEntry{
		{Mood: MoodHappy},    // +2
		{Mood: MoodHappy},    // +2
		{Mood: MoodSad},      // -2
		{Mood: MoodAnxious},  // -1
		{Mood: MoodAngry},    // -2
		{Mood: MoodStressed}, // -1
	}
	if got := Score(entries); got != 48 {
		t.Fatalf("expected 48, got %d", got)
	}
}

func TestScore_ClampsAtHundred(t *testing.T) {
	if got := Score(moodRun(MoodHappy, 200)); got != 100 {
		t.Fatalf("expected 100, got %d", got)
	}
}

func TestScore_ClampsAtZero(t *testing.T) {
	if got := Score(moodRun(MoodSad, 200)); got != 0 {
		t.Fatalf("expected 0, got %d", got)
	}
}

func TestScore_UnknownLabelIsNeutral(t *testing.T) {
	entries := []MoodEntry{{Mood: Mood("mystery")}}
	if got := Score(entries); got != 50 {
		t.Fatalf("expected 50, got %d", got)
	}
}

func TestEntriesSince_WindowsInput(t *testing.T) {
	old := time.Date(2024, 1, 1, 8, 0, 0, 0, time.Local)
	recent := time.Date(2024, 1, 10, 8, 0, 0, 0, time.Local)
	entries := []MoodEntry{
		{LoggedAt: old, Mood: MoodSad},
		{LoggedAt: recent, Mood: MoodHappy},
	}

	got := EntriesSince(entries, time.Date(2024, 1, 5, 0, 0, 0, 0, time.Local))
	if len(got) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(got))
	}
	if got[0].Mood != MoodHappy {
		t.Fatalf("expected the recent entry, got %v", got[0].Mood)
	}
	// Cutoff is inclusive
	got = EntriesSince(entries, recent)
	if len(got) != 1 {
		t.Fatalf("expected 1 entry at exact cutoff, got %d", len(got))
	}
}
