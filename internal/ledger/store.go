// Package ledger holds the working set of transactions and rebuilds the
// journal and statements from it on every read.
package ledger

import (
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/cleared-dev/rentbook/internal/model"
)

// ErrDuplicateID is returned when a transaction id is already in the store.
var ErrDuplicateID = errors.New("duplicate transaction id")

// Store is an ordered, in-memory collection of transactions. The mutex only
// keeps concurrent HTTP handlers from corrupting the slice.
type Store struct {
	mu   sync.RWMutex
	txns []model.Transaction
}

// NewStore creates a store seeded with txns, in order.
func NewStore(txns ...model.Transaction) (*Store, error) {
	s := &Store{}
	if err := s.AddBatch(txns); err != nil {
		return nil, err
	}
	return s, nil
}

// Add appends t.
func (s *Store) Add(t model.Transaction) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.indexLocked(t.ID) >= 0 {
		return fmt.Errorf("adding %s: %w", t.ID, ErrDuplicateID)
	}
	s.txns = append(s.txns, t)
	return nil
}

// AddBatch appends txns in order. Nothing is added if any id collides with
// the store or with another transaction in the batch.
func (s *Store) AddBatch(txns []model.Transaction) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	seen := make(map[string]struct{}, len(txns))
	for _, t := range txns {
		if _, dup := seen[t.ID]; dup || s.indexLocked(t.ID) >= 0 {
			return fmt.Errorf("adding batch: %s: %w", t.ID, ErrDuplicateID)
		}
		seen[t.ID] = struct{}{}
	}
	s.txns = append(s.txns, txns...)
	return nil
}

// Delete removes the transaction with the given id. It reports false, and
// changes nothing, when the id is unknown.
func (s *Store) Delete(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexLocked(id)
	if i < 0 {
		return false
	}
	s.txns = slices.Delete(s.txns, i, i+1)
	return true
}

// Get returns the transaction with the given id.
func (s *Store) Get(id string) (model.Transaction, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i := s.indexLocked(id)
	if i < 0 {
		return model.Transaction{}, false
	}
	return s.txns[i], true
}

// Snapshot returns a copy of the transactions in insertion order.
func (s *Store) Snapshot() []model.Transaction {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.txns)
}

// Len returns the number of transactions.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.txns)
}

func (s *Store) indexLocked(id string) int {
	return slices.IndexFunc(s.txns, func(t model.Transaction) bool { return t.ID == id })
}
