package mindsight

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/atomic"
)

// ──────────────────────────────────────────────
// Companion Session — per-user chat state
// ──────────────────────────────────────────────

// ChatMessage is one turn of the companion conversation.
type ChatMessage struct {
	Role    string    `json:"role"` // "user" or "assistant"
	Content string    `json:"content"`
	At      time.Time `json:"at"`
}

// SessionStats are the counters a session accumulates.
type SessionStats struct {
	Messages    int64
	CrisisFlags int64
}

// CompanionSession tracks one user's conversation with the companion:
// chat history in a MemoryStore, turn counters, and the per-day caches the
// session owns (such as the daily affirmation). The core analytics stay
// stateless; everything session-scoped lives here.
//
// Usage:
//
//	session := mindsight.NewCompanionSession("user_123", mindsight.NewInMemoryStore())
//	_ = session.AddMessage("user", "rough day today")
//	history, _ := session.History(0)
type CompanionSession struct {
	ID        string
	UserID    string
	Namespace string

	store      MemoryStore
	maxHistory int

	messages    atomic.Int64
	crisisFlags atomic.Int64
}

const (
	historyKey        = "chat_history"
	defaultMaxHistory = 40
)

// NewCompanionSession creates a session for userID backed by store.
func NewCompanionSession(userID string, store MemoryStore) *CompanionSession {
	return &CompanionSession{
		ID:         uuid.NewString(),
		UserID:     userID,
		Namespace:  fmt.Sprintf("mindsight:%s", userID),
		store:      store,
		maxHistory: defaultMaxHistory,
	}
}

// SetMaxHistory changes how many messages the history list retains.
func (s *CompanionSession) SetMaxHistory(n int) {
	if n > 0 {
		s.maxHistory = n
	}
}

// Store exposes the session's backing store for session-owned caches.
func (s *CompanionSession) Store() MemoryStore { return s.store }

// AddMessage appends one chat turn to the session history and trims the
// history to the retention limit.
func (s *CompanionSession) AddMessage(role, content string) error {
	msg := ChatMessage{Role: role, Content: content, At: time.Now()}
	data, err := json.Marshal(msg)
	if err != nil {
		return err
	}
	if err := s.store.Append(s.Namespace, historyKey, string(data)); err != nil {
		return err
	}
	s.messages.Inc()
	return s.store.TrimList(s.Namespace, historyKey, s.maxHistory)
}

// History returns the most recent chat turns in order, up to limit
// (0 = everything retained). Unparseable rows are skipped.
func (s *CompanionSession) History(limit int) ([]ChatMessage, error) {
	raw, err := s.store.GetList(s.Namespace, historyKey, 0, 0)
	if err != nil {
		return nil, err
	}
	if limit > 0 && len(raw) > limit {
		raw = raw[len(raw)-limit:]
	}
	msgs := make([]ChatMessage, 0, len(raw))
	for _, r := range raw {
		var m ChatMessage
		if err := json.Unmarshal([]byte(r), &m); err != nil {
			continue
		}
		msgs = append(msgs, m)
	}
	return msgs, nil
}

// ClearHistory wipes the session's chat history.
func (s *CompanionSession) ClearHistory() error {
	return s.store.ClearList(s.Namespace, historyKey)
}

// RecordCrisis bumps the crisis counter.
func (s *CompanionSession) RecordCrisis() {
	s.crisisFlags.Inc()
}

// Stats returns a snapshot of the session counters.
func (s *CompanionSession) Stats() SessionStats {
	return SessionStats{
		Messages:    s.messages.Load(),
		CrisisFlags: s.crisisFlags.Load(),
	}
}

// ReminderDue reports whether the daily "log your mood" nudge should show:
// true when no entry has been logged today.
func (s *CompanionSession) ReminderDue(entries []MoodEntry) bool {
	return !LoggedOn(entries, time.Now())
}
