package api

import (
	"github.com/shopspring/decimal"

	"github.com/mmynk/splitledger/internal/calculator"
	"github.com/mmynk/splitledger/internal/ledger"
	"github.com/mmynk/splitledger/internal/models"
)

// Summary is the engine output for a roster and expense log.
type Summary struct {
	// Balances lists every person in display order.
	Balances []models.Balance `json:"balances"`

	// NetBalances maps each name to its net balance.
	NetBalances map[string]decimal.Decimal `json:"netBalances"`

	Settlements []models.Settlement `json:"settlements"`
	Residual    decimal.Decimal     `json:"residual"`
	Degraded    int                 `json:"degraded"`
	Consistent  bool                `json:"consistent"`
}

// NewSummary converts an engine result into its wire form.
func NewSummary(r calculator.Result) Summary {
	balances := r.Balances.List()
	if balances == nil {
		balances = []models.Balance{}
	}
	return Summary{
		Balances:    balances,
		NetBalances: r.Balances.Map(),
		Settlements: r.Settlements,
		Residual:    r.Residual,
		Degraded:    r.Degraded,
		Consistent:  r.Consistent(),
	}
}

// LedgerView is a ledger together with its current summary.
type LedgerView struct {
	Ledger  models.Ledger `json:"ledger"`
	Summary Summary       `json:"summary"`
}

// ComputeSettlementRequest asks for balances and settlements of an
// arbitrary roster and expense log.
type ComputeSettlementRequest struct {
	People   []string         `json:"people"`
	Expenses []models.Expense `json:"expenses"`
}

// ComputeSettlementResponse carries the summary for the request.
type ComputeSettlementResponse struct {
	Summary
}

// CreateLedgerRequest names a new ledger and its optional initial roster.
type CreateLedgerRequest struct {
	Name   string   `json:"name"`
	People []string `json:"people,omitempty"`
}

// CreateLedgerResponse holds the stored ledger.
type CreateLedgerResponse struct {
	LedgerView
}

// GetLedgerRequest selects a ledger by ID.
type GetLedgerRequest struct {
	LedgerID string `json:"ledgerId"`
}

// GetLedgerResponse holds the ledger and its current summary.
type GetLedgerResponse struct {
	LedgerView
}

// ListLedgersRequest has no parameters.
type ListLedgersRequest struct{}

// LedgerInfo is a short description of a ledger for listings.
type LedgerInfo struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	PeopleCount  int    `json:"peopleCount"`
	ExpenseCount int    `json:"expenseCount"`
	CreatedAt    int64  `json:"createdAt"`
}

// ListLedgersResponse lists every ledger, oldest first.
type ListLedgersResponse struct {
	Ledgers []LedgerInfo `json:"ledgers"`
}

// DeleteLedgerRequest selects the ledger to remove.
type DeleteLedgerRequest struct {
	LedgerID string `json:"ledgerId"`
}

// DeleteLedgerResponse is empty.
type DeleteLedgerResponse struct{}

// AddPersonRequest adds Name to a ledger roster.
type AddPersonRequest struct {
	LedgerID string `json:"ledgerId"`
	Name     string `json:"name"`
}

// AddPersonResponse holds the updated ledger.
type AddPersonResponse struct {
	LedgerView
}

// RemovePersonRequest takes Name off a ledger roster.
type RemovePersonRequest struct {
	LedgerID string `json:"ledgerId"`
	Name     string `json:"name"`
}

// RemovePersonResponse holds the updated ledger.
type RemovePersonResponse struct {
	LedgerView
}

// AddExpenseRequest carries an expense draft to validate and record.
type AddExpenseRequest struct {
	LedgerID string       `json:"ledgerId"`
	Expense  ledger.Draft `json:"expense"`
}

// IncompleteExpense tells the caller which custom amounts to ask for.
type IncompleteExpense struct {
	Missing   []string        `json:"missing"`
	Remaining decimal.Decimal `json:"remaining"`
}

// AddExpenseResponse holds the updated ledger, or Incomplete when the draft
// still lacks custom amounts. In the latter case nothing was recorded.
type AddExpenseResponse struct {
	LedgerView
	ExpenseID  int64              `json:"expenseId,omitempty"`
	Incomplete *IncompleteExpense `json:"incomplete,omitempty"`
}

// DeleteExpenseRequest selects the expense to remove.
type DeleteExpenseRequest struct {
	LedgerID  string `json:"ledgerId"`
	ExpenseID int64  `json:"expenseId"`
}

// DeleteExpenseResponse holds the updated ledger.
type DeleteExpenseResponse struct {
	LedgerView
}
