// Package events announces ledger changes to other systems.
package events

import (
	"context"
	"encoding/json"
	"time"

	"github.com/mmynk/splitledger/internal/models"
)

// Action names the change that produced an event.
type Action string

const (
	LedgerCreated  Action = "ledger.created"
	LedgerDeleted  Action = "ledger.deleted"
	PersonAdded    Action = "person.added"
	PersonRemoved  Action = "person.removed"
	ExpenseAdded   Action = "expense.added"
	ExpenseDeleted Action = "expense.deleted"
)

// LedgerUpdated is published after every successful ledger mutation.
// It carries the settlement plan at that point so consumers need not
// recompute it.
type LedgerUpdated struct {
	LedgerID    string              `json:"ledgerId"`
	Action      Action              `json:"action"`
	People      []string            `json:"people"`
	Expenses    int                 `json:"expenses"`
	Settlements []models.Settlement `json:"settlements"`
	Timestamp   time.Time           `json:"timestamp"`
}

// NewLedgerUpdated describes l after action.
func NewLedgerUpdated(action Action, l models.Ledger, settlements []models.Settlement) LedgerUpdated {
	people := l.People
	if people == nil {
		people = []string{}
	}
	if settlements == nil {
		settlements = []models.Settlement{}
	}
	return LedgerUpdated{
		LedgerID:    l.ID,
		Action:      action,
		People:      people,
		Expenses:    len(l.Expenses),
		Settlements: settlements,
		Timestamp:   time.Now().UTC(),
	}
}

// ToJSON converts the event to JSON bytes.
func (e LedgerUpdated) ToJSON() ([]byte, error) {
	return json.Marshal(e)
}

// LedgerUpdatedFromJSON decodes an event.
func LedgerUpdatedFromJSON(data []byte) (LedgerUpdated, error) {
	var e LedgerUpdated
	if err := json.Unmarshal(data, &e); err != nil {
		return LedgerUpdated{}, err
	}
	return e, nil
}

// Publisher delivers ledger events.
type Publisher interface {
	Publish(ctx context.Context, e LedgerUpdated) error
	Close() error
}

// Nop discards every event. It is used when no broker is configured.
type Nop struct{}

func (Nop) Publish(context.Context, LedgerUpdated) error { return nil }
func (Nop) Close() error                                 { return nil }
