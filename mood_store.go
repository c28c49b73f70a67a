package mindsight

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"sort"
	"time"
)

// ──────────────────────────────────────────────
// Mood Store — append-only CSV mood log
// ──────────────────────────────────────────────

var logHeader = []string{"date_time", "date", "mood", "note"}

// StorageError is returned when the mood log file cannot be read or written.
// It is never swallowed inside the SDK so the caller can surface the failure
// instead of silently losing an entry.
type StorageError struct {
	Op   string
	Path string
	Err  error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("mood store: %s %s: %v", e.Op, e.Path, e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }

// MoodStore persists MoodEntry records in an append-only CSV file with a
// header row and the fixed column order date_time, date, mood, note.
//
// The store assumes a single writer process. Concurrent appends from
// multiple sessions are not synchronized and may interleave or lose rows;
// that limitation is accepted, not worked around here.
//
// Usage:
//
//	store := mindsight.NewMoodStore("mood_log.csv")
//	entry, err := store.Append(mindsight.MoodHappy, "long walk, good talk")
//	all, err := store.LoadAll()
type MoodStore struct {
	Path string

	now func() time.Time
}

// NewMoodStore creates a store backed by the CSV file at path. The file is
// created transparently on the first append.
func NewMoodStore(path string) *MoodStore {
	return &MoodStore{Path: path, now: time.Now}
}

// Append constructs a MoodEntry stamped with the current time, writes it to
// the log and returns the persisted entry. The mood must belong to the
// closed label set; the note may be empty and may contain any character
// (CSV quoting handles delimiters and newlines).
func (s *MoodStore) Append(mood Mood, note string) (MoodEntry, error) {
	if !mood.Valid() {
		return MoodEntry{}, fmt.Errorf("mood store: invalid mood label %q", mood)
	}

	now := s.now()
	entry := MoodEntry{
		LoggedAt: now,
		Day:      now.Format(DayLayout),
		Mood:     mood,
		Note:     note,
	}

	_, statErr := os.Stat(s.Path)
	writeHeader := os.IsNotExist(statErr)

	f, err := os.OpenFile(s.Path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return MoodEntry{}, &StorageError{Op: "append", Path: s.Path, Err: err}
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if writeHeader {
		if err := w.Write(logHeader); err != nil {
			return MoodEntry{}, &StorageError{Op: "append", Path: s.Path, Err: err}
		}
	}
	if err := w.Write(entryRecord(entry)); err != nil {
		return MoodEntry{}, &StorageError{Op: "append", Path: s.Path, Err: err}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return MoodEntry{}, &StorageError{Op: "append", Path: s.Path, Err: err}
	}
	return entry, nil
}

// LoadAll returns every persisted entry in insertion order. A missing log
// file means "no entries yet" and yields an empty slice, not an error; the
// same applies to a log that cannot be parsed. Each call re-reads the file
// in full, so readers never see stale data.
func (s *MoodStore) LoadAll() ([]MoodEntry, error) {
	f, err := os.Open(s.Path)
	if err != nil {
		if os.IsNotExist(err) {
			return []MoodEntry{}, nil
		}
		return nil, &StorageError{Op: "load", Path: s.Path, Err: err}
	}
	defer f.Close()

	entries, err := DecodeLog(f)
	if err != nil {
		// First run and corrupted-but-unreadable are indistinguishable;
		// both resolve to empty.
		return []MoodEntry{}, nil
	}
	return entries, nil
}

// Export writes the full store to w in the log's CSV layout, sorted by
// date_time descending. The output is the downloadable mood_log.csv
// artifact, and re-reading it through DecodeLog reproduces the entries.
func (s *MoodStore) Export(w io.Writer) error {
	entries, err := s.LoadAll()
	if err != nil {
		return err
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].LoggedAt.After(entries[j].LoggedAt)
	})

	cw := csv.NewWriter(w)
	if err := cw.Write(logHeader); err != nil {
		return &StorageError{Op: "export", Path: s.Path, Err: err}
	}
	for _, e := range entries {
		if err := cw.Write(entryRecord(e)); err != nil {
			return &StorageError{Op: "export", Path: s.Path, Err: err}
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return &StorageError{Op: "export", Path: s.Path, Err: err}
	}
	return nil
}

// DecodeLog parses a mood log CSV stream (header row included) into entries,
// preserving row order. Rows with an unparseable timestamp are skipped.
func DecodeLog(r io.Reader) ([]MoodEntry, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = len(logHeader)

	records, err := cr.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return []MoodEntry{}, nil
	}

	entries := make([]MoodEntry, 0, len(records)-1)
	for i, rec := range records {
		if i == 0 && rec[0] == logHeader[0] {
			continue
		}
		at, err := time.ParseInLocation(DateTimeLayout, rec[0], time.Local)
		if err != nil {
			continue
		}
		entries = append(entries, MoodEntry{
			LoggedAt: at,
			Day:      rec[1],
			Mood:     Mood(rec[2]),
			Note:     rec[3],
		})
	}
	return entries, nil
}

func entryRecord(e MoodEntry) []string {
	return []string{
		e.LoggedAt.Format(DateTimeLayout),
		e.Day,
		string(e.Mood),
		e.Note,
	}
}
