// Package storage provides abstractions for ledger storage.
package storage

import (
	"context"
	"errors"

	"github.com/mmynk/splitledger/internal/models"
)

// ErrNotFound is returned when a ledger does not exist.
var ErrNotFound = errors.New("ledger not found")

// Store defines the interface for ledger storage operations.
// This abstraction keeps the service layer independent of where ledgers live.
type Store interface {
	// CreateLedger stores a new ledger.
	// The ledger.ID and ledger.CreatedAt fields are populated by the store.
	CreateLedger(ctx context.Context, ledger *models.Ledger) error

	// GetLedger retrieves a ledger by its ID.
	// Returns ErrNotFound if there is no such ledger.
	GetLedger(ctx context.Context, ledgerID string) (models.Ledger, error)

	// ListLedgers returns every ledger, oldest first.
	ListLedgers(ctx context.Context) ([]models.Ledger, error)

	// UpdateLedger replaces a ledger with the result of fn.
	// fn sees the current value; if it returns an error nothing is stored.
	// No other update of the same ledger runs while fn does.
	UpdateLedger(ctx context.Context, ledgerID string, fn func(models.Ledger) (models.Ledger, error)) (models.Ledger, error)

	// DeleteLedger removes a ledger.
	// Returns ErrNotFound if there is no such ledger.
	DeleteLedger(ctx context.Context, ledgerID string) error

	// Close releases any resources held by the store.
	Close() error
}
