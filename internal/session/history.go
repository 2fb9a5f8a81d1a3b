package session

import (
	"sync"

	"github.com/PIYUSH-JOSHI1/SpeechToTxt/internal/model"
)

// History is an append-only list of translation records in insertion order.
// It is never trimmed; Recent only limits what is returned.
type History struct {
	mu      sync.RWMutex
	records []model.TranslationRecord
}

// NewHistory creates an empty history.
func NewHistory() *History {
	return &History{}
}

// Append adds a record at the end.
func (h *History) Append(rec model.TranslationRecord) {
	h.mu.Lock()
	h.records = append(h.records, rec)
	h.mu.Unlock()
}

// Recent returns the last min(n, Len()) records, oldest first.
func (h *History) Recent(n int) []model.TranslationRecord {
	h.mu.RLock()
	defer h.mu.RUnlock()

	if n <= 0 || len(h.records) == 0 {
		return []model.TranslationRecord{}
	}
	if n > len(h.records) {
		n = len(h.records)
	}
	out := make([]model.TranslationRecord, n)
	copy(out, h.records[len(h.records)-n:])
	return out
}

// Len returns the number of records.
func (h *History) Len() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.records)
}

// Find returns the record with the given ID.
func (h *History) Find(id int64) (model.TranslationRecord, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for i := len(h.records) - 1; i >= 0; i-- {
		if h.records[i].ID == id {
			return h.records[i], true
		}
	}
	return model.TranslationRecord{}, false
}
