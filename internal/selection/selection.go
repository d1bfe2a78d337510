// Package selection tracks which syllables the learner wants to practise and
// keeps that choice persisted under a single key.
package selection

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"slices"

	"github.com/abhisek/kanaz/internal/kana"
)

// Key is the fixed key the selection is persisted under.
const Key = "selectedKana"

// ErrCorrupt is returned by Load when the persisted value is not a JSON list
// of strings. The selection is left empty.
var ErrCorrupt = errors.New("persisted selection is corrupt")

// Persister is the key-value backend the selection is written to.
type Persister interface {
	// Get returns the stored value and whether the key exists.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Put overwrites the value stored under key.
	Put(ctx context.Context, key string, value []byte) error
}

// Store is the learner's selection: an insertion-ordered set of romaji ids,
// always a subset of the table.
type Store struct {
	table     *kana.Table
	persister Persister
	ids       []string
	listeners []func(ids []string)
}

// New creates an empty Store. Call Load to restore a persisted selection.
func New(table *kana.Table, p Persister) *Store {
	return &Store{table: table, persister: p}
}

// OnChange registers fn to be called with the current ids after every
// successful mutation and after Load.
func (s *Store) OnChange(fn func(ids []string)) {
	s.listeners = append(s.listeners, fn)
}

// IDs returns a copy of the selected ids in selection order.
func (s *Store) IDs() []string {
	return slices.Clone(s.ids)
}

// Len returns the number of selected ids.
func (s *Store) Len() int {
	return len(s.ids)
}

// Contains reports whether id is selected.
func (s *Store) Contains(id string) bool {
	return slices.Contains(s.ids, id)
}

// CanStart reports whether a practice session may start.
func (s *Store) CanStart() bool {
	return len(s.ids) > 0
}

// Toggle flips membership of id. Ids outside the table are ignored.
func (s *Store) Toggle(ctx context.Context, id string) error {
	if !s.table.Has(id) {
		return nil
	}
	next := slices.Clone(s.ids)
	if i := slices.Index(next, id); i >= 0 {
		next = slices.Delete(next, i, i+1)
	} else {
		next = append(next, id)
	}
	return s.commit(ctx, next)
}

// Add selects every known id in ids that is not already selected.
func (s *Store) Add(ctx context.Context, ids ...string) error {
	next := slices.Clone(s.ids)
	for _, id := range ids {
		if s.table.Has(id) && !slices.Contains(next, id) {
			next = append(next, id)
		}
	}
	return s.commit(ctx, next)
}

// Remove deselects every id in ids.
func (s *Store) Remove(ctx context.Context, ids ...string) error {
	next := slices.DeleteFunc(slices.Clone(s.ids), func(id string) bool {
		return slices.Contains(ids, id)
	})
	return s.commit(ctx, next)
}

// SelectAll selects the whole table in table order.
func (s *Store) SelectAll(ctx context.Context) error {
	return s.commit(ctx, s.table.Romaji())
}

// Reset empties the selection.
func (s *Store) Reset(ctx context.Context) error {
	return s.commit(ctx, []string{})
}

// Load restores the persisted selection. A missing key leaves the selection
// empty. A malformed value also leaves it empty and returns ErrCorrupt.
func (s *Store) Load(ctx context.Context) error {
	raw, ok, err := s.persister.Get(ctx, Key)
	if err != nil {
		return fmt.Errorf("read selection: %w", err)
	}

	s.ids = nil
	defer s.notify()

	if !ok {
		return nil
	}

	var stored []string
	if err := json.Unmarshal(raw, &stored); err != nil {
		return fmt.Errorf("%w: %v", ErrCorrupt, err)
	}

	for _, id := range stored {
		if s.table.Has(id) && !slices.Contains(s.ids, id) {
			s.ids = append(s.ids, id)
		}
	}
	return nil
}

// commit persists next and adopts it only once the write succeeded, so the
// stored and in-memory selections never diverge.
func (s *Store) commit(ctx context.Context, next []string) error {
	if next == nil {
		next = []string{}
	}
	raw, err := json.Marshal(next)
	if err != nil {
		return fmt.Errorf("encode selection: %w", err)
	}
	if err := s.persister.Put(ctx, Key, raw); err != nil {
		return fmt.Errorf("save selection: %w", err)
	}
	s.ids = next
	s.notify()
	return nil
}

func (s *Store) notify() {
	for _, fn := range s.listeners {
		fn(s.IDs())
	}
}
