// Package memory provides an in-process implementation of the storage.Store interface.
// Ledgers live as long as the process does.
package memory

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/mmynk/splitledger/internal/models"
	"github.com/mmynk/splitledger/internal/storage"
)

// Ensure Store implements storage.Store
var _ storage.Store = (*Store)(nil)

// Store implements storage.Store with a map guarded by a mutex.
// Ledgers are copied on the way in and out, so callers never share state
// with the store.
type Store struct {
	mu      sync.RWMutex
	ledgers map[string]models.Ledger
	now     func() time.Time
}

// New creates an empty Store.
func New() *Store {
	return &Store{
		ledgers: make(map[string]models.Ledger),
		now:     time.Now,
	}
}

// Close drops every ledger.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ledgers = make(map[string]models.Ledger)
	return nil
}

// CreateLedger stores a new ledger, generating its ID and creation time.
func (s *Store) CreateLedger(ctx context.Context, ledger *models.Ledger) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if ledger.ID == "" {
		ledger.ID = uuid.New().String()
	}
	if ledger.CreatedAt == 0 {
		ledger.CreatedAt = s.now().Unix()
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.ledgers[ledger.ID]; exists {
		return fmt.Errorf("ledger already exists: %s", ledger.ID)
	}
	s.ledgers[ledger.ID] = ledger.Clone()
	return nil
}

// GetLedger returns a copy of the ledger with the given ID.
func (s *Store) GetLedger(ctx context.Context, ledgerID string) (models.Ledger, error) {
	if err := ctx.Err(); err != nil {
		return models.Ledger{}, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	l, ok := s.ledgers[ledgerID]
	if !ok {
		return models.Ledger{}, fmt.Errorf("%w: %s", storage.ErrNotFound, ledgerID)
	}
	return l.Clone(), nil
}

// ListLedgers returns copies of all ledgers ordered by creation time, then ID.
func (s *Store) ListLedgers(ctx context.Context) ([]models.Ledger, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	ledgers := make([]models.Ledger, 0, len(s.ledgers))
	for _, l := range s.ledgers {
		ledgers = append(ledgers, l.Clone())
	}
	s.mu.RUnlock()

	slices.SortFunc(ledgers, func(a, b models.Ledger) int {
		return cmp.Or(cmp.Compare(a.CreatedAt, b.CreatedAt), cmp.Compare(a.ID, b.ID))
	})
	return ledgers, nil
}

// UpdateLedger applies fn to the stored ledger under the write lock.
func (s *Store) UpdateLedger(ctx context.Context, ledgerID string, fn func(models.Ledger) (models.Ledger, error)) (models.Ledger, error) {
	if err := ctx.Err(); err != nil {
		return models.Ledger{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	current, ok := s.ledgers[ledgerID]
	if !ok {
		return models.Ledger{}, fmt.Errorf("%w: %s", storage.ErrNotFound, ledgerID)
	}

	next, err := fn(current.Clone())
	if err != nil {
		return models.Ledger{}, err
	}

	// identity fields are owned by the store
	next.ID = current.ID
	next.CreatedAt = current.CreatedAt
	s.ledgers[ledgerID] = next.Clone()
	return next, nil
}

// DeleteLedger removes the ledger with the given ID.
func (s *Store) DeleteLedger(ctx context.Context, ledgerID string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.ledgers[ledgerID]; !ok {
		return fmt.Errorf("%w: %s", storage.ErrNotFound, ledgerID)
	}
	delete(s.ledgers, ledgerID)
	return nil
}
