package mindsight

import (
	"context"
	"log"
	"time"
)

// ──────────────────────────────────────────────
// Daily Affirmation — once-per-day cached value
// ──────────────────────────────────────────────

// AffirmationFunc produces a short affirmation line from the model.
type AffirmationFunc func(ctx context.Context) (string, error)

// fallbackAffirmations rotates by day-of-year when no generator is set or
// the model call fails.
var fallbackAffirmations = []string{
	"You showed up today, and that counts.",
	"Feelings pass. You've gotten through every hard day so far.",
	"Small steps still move you forward.",
	"You don't have to have it all figured out right now.",
	"Being kind to yourself is not a luxury.",
}

// AffirmationCache generates at most one affirmation per calendar day and
// caches it in the session's store keyed by the ISO date. The cache lives
// in the session layer; the analytics core stays stateless.
type AffirmationCache struct {
	store    MemoryStore
	ns       string
	generate AffirmationFunc

	now func() time.Time
}

const affirmationKeyPrefix = "affirmation:"

// NewAffirmationCache creates a cache bound to a session's store and
// namespace. generate may be nil; the static fallback rotation is used then.
func NewAffirmationCache(session *CompanionSession, generate AffirmationFunc) *AffirmationCache {
	return &AffirmationCache{
		store:    session.Store(),
		ns:       session.Namespace,
		generate: generate,
		now:      time.Now,
	}
}

// Today returns today's affirmation, generating and caching it on the first
// call of the day. Generation failures degrade to the static fallback and
// are not cached, so a later call can still succeed.
func (c *AffirmationCache) Today(ctx context.Context) string {
	day := c.now().Format(DayLayout)
	key := affirmationKeyPrefix + day

	if cached, err := c.store.Get(c.ns, key); err == nil && cached != "" {
		return cached
	}

	if c.generate == nil {
		return fallbackFor(c.now())
	}

	text, err := c.generate(ctx)
	if err != nil || text == "" {
		if err != nil {
			log.Printf("affirmation: generate failed, using fallback: %v", err)
		}
		return fallbackFor(c.now())
	}

	if err := c.store.Set(c.ns, key, text); err != nil {
		log.Printf("affirmation: cache write failed: %v", err)
	}
	return text
}

func fallbackFor(t time.Time) string {
	return fallbackAffirmations[t.YearDay()%len(fallbackAffirmations)]
}
