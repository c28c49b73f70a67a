package mindsight

import "sync"

// ──────────────────────────────────────────────
// MemoryStore — pluggable session storage backend
// ──────────────────────────────────────────────

// MemoryStore is the storage backend for session state: chat history lists
// and small KV values such as the daily affirmation cache. Data is organized
// by namespace (typically "mindsight:{user_id}") and key.
//
// The CSV mood log is NOT kept here; MoodStore owns the durable mood data
// exclusively.
type MemoryStore interface {
	// KV operations
	Get(namespace, key string) (string, error)
	Set(namespace, key, value string) error
	Delete(namespace, key string) error

	// List operations (ordered sequences, used for chat history)
	Append(namespace, key, value string) error
	GetList(namespace, key string, limit, offset int) ([]string, error)
	TrimList(namespace, key string, maxSize int) error
	ClearList(namespace, key string) error
	ListLength(namespace, key string) (int, error)
}

// InMemoryStore is a thread-safe in-memory MemoryStore. Data is lost on
// restart; use the redis backend in store/ for anything that must survive.
type InMemoryStore struct {
	mu    sync.RWMutex
	kv    map[string]map[string]string
	lists map[string]map[string][]string
}

// NewInMemoryStore creates a new in-memory store.
func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{
		kv:    make(map[string]map[string]string),
		lists: make(map[string]map[string][]string),
	}
}

func (s *InMemoryStore) Get(namespace, key string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if ns, ok := s.kv[namespace]; ok {
		if v, ok := ns[key]; ok {
			return v, nil
		}
	}
	return "", nil
}

func (s *InMemoryStore) Set(namespace, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.kv[namespace] == nil {
		s.kv[namespace] = make(map[string]string)
	}
	s.kv[namespace][key] = value
	return nil
}

func (s *InMemoryStore) Delete(namespace, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if ns, ok := s.kv[namespace]; ok {
		delete(ns, key)
	}
	return nil
}

func (s *InMemoryStore) Append(namespace, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.lists[namespace] == nil {
		s.lists[namespace] = make(map[string][]string)
	}
	s.lists[namespace][key] = append(s.lists[namespace][key], value)
	return nil
}

func (s *InMemoryStore) GetList(namespace, key string, limit, offset int) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var items []string
	if ns, ok := s.lists[namespace]; ok {
		items = ns[key]
	}
	if items == nil {
		return []string{}, nil
	}
	if offset >= len(items) {
		return []string{}, nil
	}
	if offset > 0 {
		items = items[offset:]
	}
	if limit > 0 && limit < len(items) {
		items = items[:limit]
	}
	out := make([]string, len(items))
	copy(out, items)
	return out, nil
}

func (s *InMemoryStore) TrimList(namespace, key string, maxSize int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	ns, ok := s.lists[namespace]
	if !ok {
		return nil
	}
	items := ns[key]
	if maxSize >= 0 && len(items) > maxSize {
		trimmed := make([]string, maxSize)
		copy(trimmed, items[len(items)-maxSize:])
		ns[key] = trimmed
	}
	return nil
}

func (s *InMemoryStore) ClearList(namespace, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if ns, ok := s.lists[namespace]; ok {
		delete(ns, key)
	}
	return nil
}

func (s *InMemoryStore) ListLength(namespace, key string) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if ns, ok := s.lists[namespace]; ok {
		return len(ns[key]), nil
	}
	return 0, nil
}
