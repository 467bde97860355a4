// Package history maintains the bounded, most-recent-first log of prior
// successful question/answer exchanges, persisted in the local store under
// a single key.
package history

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/dmitrijs2005/legalassist/internal/client/models"
	"github.com/dmitrijs2005/legalassist/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/legalassist/internal/common"
	"github.com/dmitrijs2005/legalassist/internal/logging"
)

// MaxEntries bounds the persisted sequence; appending beyond it evicts the
// oldest entry.
const MaxEntries = 10

type Store struct {
	mu      sync.Mutex
	kv      metadata.Repository
	log     logging.Logger
	entries []models.HistoryEntry
}

func NewStore(kv metadata.Repository, log logging.Logger) *Store {
	return &Store{kv: kv, log: log}
}

// Load reads the persisted sequence. Absent or malformed data degrades to an
// empty history; it never fails the caller.
func (s *Store) Load(ctx context.Context) []models.HistoryEntry {
	var entries []models.HistoryEntry

	raw, err := s.kv.Get(ctx, common.HistoryKey)
	switch {
	case err != nil:
		s.log.Warn(ctx, "failed to read history, starting empty", "error", err)
	case raw != nil:
		if err := json.Unmarshal(raw, &entries); err != nil {
			s.log.Warn(ctx, "discarding malformed history", "error", err)
			entries = nil
		}
	}

	if len(entries) > MaxEntries {
		entries = entries[:MaxEntries]
	}

	s.mu.Lock()
	s.entries = entries
	s.mu.Unlock()

	return s.Entries()
}

// Append prepends entry, truncates to MaxEntries and persists the whole
// resulting sequence before updating the in-memory copy, so both views stay
// consistent once Append returns.
func (s *Store) Append(ctx context.Context, entry models.HistoryEntry) ([]models.HistoryEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := make([]models.HistoryEntry, 0, len(s.entries)+1)
	next = append(next, entry)
	next = append(next, s.entries...)
	if len(next) > MaxEntries {
		next = next[:MaxEntries]
	}

	raw, err := json.Marshal(next)
	if err != nil {
		return nil, fmt.Errorf("failed to serialize history: %w", err)
	}
	if err := s.kv.Set(ctx, common.HistoryKey, raw); err != nil {
		return nil, fmt.Errorf("failed to persist history: %w", err)
	}

	s.entries = next
	return cloneEntries(next), nil
}

// Entries returns a snapshot of the in-memory sequence, newest first.
func (s *Store) Entries() []models.HistoryEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cloneEntries(s.entries)
}

func cloneEntries(entries []models.HistoryEntry) []models.HistoryEntry {
	out := make([]models.HistoryEntry, len(entries))
	copy(out, entries)
	return out
}
