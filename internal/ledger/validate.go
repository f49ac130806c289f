package ledger

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/mmynk/splitledger/internal/models"
)

var (
	ErrEmptyDescription  = errors.New("description cannot be empty")
	ErrInvalidAmount     = errors.New("amount must be a positive number")
	ErrMissingPayer      = errors.New("payer is required")
	ErrUnknownPayer      = errors.New("payer is not on the roster")
	ErrNoParticipants    = errors.New("no participants to split between")
	ErrNegativeShare     = errors.New("custom amount cannot be negative")
	ErrCustomSumMismatch = errors.New("custom amounts do not add up to the total")
)

// SumTolerance is how far custom amounts may drift from the expense total.
var SumTolerance = decimal.RequireFromString("0.50")

// Draft is an expense as entered, before it is checked against the roster.
type Draft struct {
	Description string           `json:"description"`
	Amount      decimal.Decimal  `json:"amount"`
	PaidBy      string           `json:"paidBy"`
	SplitType   models.SplitType `json:"splitType"`

	// SplitBetween lists participants. Empty means everyone on the roster.
	SplitBetween []string `json:"splitBetween,omitempty"`

	// CustomAmounts holds the shares entered so far for a custom split.
	CustomAmounts map[string]decimal.Decimal `json:"customAmounts,omitempty"`
}

// DraftFrom turns a recorded expense back into a draft. An expense without a
// split type is drafted the way the engine charges it.
func DraftFrom(e models.Expense) Draft {
	c := e.Clone()
	splitType := c.SplitType
	if splitType == "" && c.UsesCustomAmounts() {
		splitType = models.SplitCustom
	}
	return Draft{
		Description:   c.Description,
		Amount:        c.Amount,
		PaidBy:        c.PaidBy,
		SplitType:     splitType,
		SplitBetween:  c.SplitBetween,
		CustomAmounts: c.CustomAmounts,
	}
}

// Validation is the outcome of checking a draft.
//
// A complete validation carries an expense ready for AddExpense. An
// incomplete one lists the participants whose custom amount is still missing
// and how much of the total is left to assign.
type Validation struct {
	Expense   models.Expense
	Missing   []string
	Remaining decimal.Decimal
}

// Complete reports whether Expense is ready to be recorded.
func (v Validation) Complete() bool {
	return len(v.Missing) == 0
}

// Validate checks the draft against the roster.
// Hard errors are returned as errors; missing custom amounts are not an
// error and are reported through an incomplete Validation instead.
func (d Draft) Validate(people []string) (Validation, error) {
	description := strings.TrimSpace(d.Description)
	if description == "" {
		return Validation{}, ErrEmptyDescription
	}

	amount := models.RoundCents(d.Amount)
	if !amount.IsPositive() {
		return Validation{}, ErrInvalidAmount
	}

	payer := strings.TrimSpace(d.PaidBy)
	if payer == "" {
		return Validation{}, ErrMissingPayer
	}
	roster := make(map[string]bool, len(people))
	for _, p := range people {
		roster[p] = true
	}

	splitType, err := models.ParseSplitType(string(d.SplitType))
	if err != nil {
		return Validation{}, err
	}

	requested := d.SplitBetween
	if len(requested) == 0 {
		requested = people
	}
	split := make([]string, 0, len(requested))
	seen := make(map[string]bool, len(requested))
	for _, p := range requested {
		if !roster[p] {
			return Validation{}, fmt.Errorf("%w: %s", ErrUnknownPerson, p)
		}
		if seen[p] {
			continue
		}
		seen[p] = true
		split = append(split, p)
	}
	if len(split) == 0 {
		return Validation{}, ErrNoParticipants
	}
	if !roster[payer] {
		return Validation{}, fmt.Errorf("%w: %s", ErrUnknownPayer, payer)
	}

	v := Validation{
		Expense: models.Expense{
			Description:  description,
			Amount:       amount,
			PaidBy:       payer,
			SplitBetween: split,
			SplitType:    splitType,
		},
		Remaining: decimal.Zero,
	}
	if splitType == models.SplitEqual {
		return v, nil
	}

	custom := make(map[string]decimal.Decimal, len(split))
	sum := decimal.Zero
	for _, p := range split {
		share, ok := d.CustomAmounts[p]
		if !ok {
			v.Missing = append(v.Missing, p)
			continue
		}
		if share.IsNegative() {
			return Validation{}, fmt.Errorf("%w: %s", ErrNegativeShare, p)
		}
		custom[p] = models.RoundCents(share)
		sum = sum.Add(custom[p])
	}

	if len(v.Missing) > 0 {
		v.Remaining = amount.Sub(sum)
		return v, nil
	}

	if sum.Sub(amount).Abs().GreaterThan(SumTolerance) {
		return Validation{}, fmt.Errorf("%w: custom amounts sum to %s, total is %s",
			ErrCustomSumMismatch, sum.StringFixed(2), amount.StringFixed(2))
	}

	v.Expense.CustomAmounts = custom
	return v, nil
}
