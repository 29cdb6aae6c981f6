// Package readtext keeps a deduplicated log of dialogue lines the player has
// already seen. Lines are identified by scene name, scene URL, sentence index
// and a fingerprint of the text; the raw text is never stored.
package readtext

import (
	"strconv"
	"time"
	"unicode/utf16"
)

// Record is a single "already seen" entry.
type Record struct {
	SceneName   string `json:"sceneName"`
	SceneURL    string `json:"sceneUrl"`
	SentenceID  int    `json:"sentenceId"`
	Fingerprint string `json:"text"`
	Timestamp   int64  `json:"timestamp"` // epoch milliseconds of first sighting
}

// Repository owns the record collection.
// Both operations are treated as atomic by the Tracker.
type Repository interface {
	List() []Record
	ReplaceAll(records []Record)
}

// Tracker records and answers read-state queries.
type Tracker struct {
	repo Repository
	now  func() time.Time
}

// NewTracker creates a tracker backed by repo.
func NewTracker(repo Repository) *Tracker {
	return &Tracker{repo: repo, now: time.Now}
}

// WithClock replaces the clock used for record timestamps.
func (t *Tracker) WithClock(now func() time.Time) *Tracker {
	t.now = now
	return t
}

// RecordIfNew appends a record for the line unless an identical key exists.
func (t *Tracker) RecordIfNew(sceneName, sceneURL string, sentenceID int, text string) {
	candidate := Record{
		SceneName:   sceneName,
		SceneURL:    sceneURL,
		SentenceID:  sentenceID,
		Fingerprint: Fingerprint(text),
		Timestamp:   t.now().UnixMilli(),
	}

	current := t.repo.List()
	if findRecord(current, candidate) >= 0 {
		return
	}

	next := make([]Record, len(current), len(current)+1)
	copy(next, current)
	t.repo.ReplaceAll(append(next, candidate))
}

// IsRead reports whether the line was recorded before. Timestamps are ignored.
func (t *Tracker) IsRead(sceneName, sceneURL string, sentenceID int, text string) bool {
	key := Record{
		SceneName:   sceneName,
		SceneURL:    sceneURL,
		SentenceID:  sentenceID,
		Fingerprint: Fingerprint(text),
	}
	return findRecord(t.repo.List(), key) >= 0
}

// All returns a copy of the current records.
func (t *Tracker) All() []Record {
	records := t.repo.List()
	out := make([]Record, len(records))
	copy(out, records)
	return out
}

// Clear drops every record.
func (t *Tracker) Clear() {
	t.repo.ReplaceAll([]Record{})
}

// Fingerprint hashes text with a 32-bit "hash*31 + unit" rolling hash over
// its UTF-16 code units and renders the signed result in lowercase hex, the
// way JavaScript's hash.toString(16) does: a negative hash keeps its sign
// ("-80000000"), it is not shown as its two's-complement bit pattern. Saved
// records from the web release use this form, so it must never change.
func Fingerprint(text string) string {
	var hash int32
	for _, unit := range utf16.Encode([]rune(text)) {
		hash = hash*31 + int32(unit)
	}
	return strconv.FormatInt(int64(hash), 16)
}

func findRecord(records []Record, key Record) int {
	for i, r := range records {
		if r.SceneName == key.SceneName &&
			r.SceneURL == key.SceneURL &&
			r.SentenceID == key.SentenceID &&
			r.Fingerprint == key.Fingerprint {
			return i
		}
	}
	return -1
}
