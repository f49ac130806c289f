package models

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// SplitType selects how an expense amount is divided among its participants.
type SplitType string

const (
	// SplitEqual divides the amount evenly, each share rounded to cents on its own.
	SplitEqual SplitType = "equal"
	// SplitCustom charges each participant the amount listed in CustomAmounts.
	SplitCustom SplitType = "custom"
)

// ErrUnknownSplitType is returned when parsing anything but "equal" or "custom".
var ErrUnknownSplitType = errors.New("unknown split type")

// Valid reports whether t is a known split type.
func (t SplitType) Valid() bool {
	return t == SplitEqual || t == SplitCustom
}

// ParseSplitType parses "equal" or "custom". The empty string means equal.
func ParseSplitType(s string) (SplitType, error) {
	switch t := SplitType(s); t {
	case "":
		return SplitEqual, nil
	case SplitEqual, SplitCustom:
		return t, nil
	default:
		return "", fmt.Errorf("%w %q", ErrUnknownSplitType, s)
	}
}

// Expense represents one payment made by one person on behalf of a group.
type Expense struct {
	// ID is unique within a ledger and assigned in increasing order.
	ID int64 `json:"id"`

	// Description says what the money was spent on (e.g., "Groceries").
	Description string `json:"description"`

	// Amount is the total paid, rounded to cents at input.
	Amount decimal.Decimal `json:"amount"`

	// PaidBy is the name of the person who paid.
	// The name does not have to be on the current roster: people who left
	// the group keep the credit for what they paid.
	PaidBy string `json:"paidBy"`

	// SplitBetween lists the people who share the expense, in display order.
	SplitBetween []string `json:"splitBetween"`

	// SplitType selects equal or custom shares.
	SplitType SplitType `json:"splitType"`

	// CustomAmounts maps a participant to their share when SplitType is custom.
	// A nil map on a custom expense falls back to an equal split.
	CustomAmounts map[string]decimal.Decimal `json:"customAmounts,omitempty"`

	// Date is when the expense was recorded. Informational only.
	Date time.Time `json:"date"`
}

// UsesCustomAmounts reports whether the expense is charged by CustomAmounts
// rather than by equal shares. Any split type other than equal counts as
// custom once amounts are present, including a missing one.
func (e Expense) UsesCustomAmounts() bool {
	return e.SplitType != SplitEqual && e.CustomAmounts != nil
}

// Degraded reports whether a custom expense has no custom amounts and is
// therefore split equally.
func (e Expense) Degraded() bool {
	return e.SplitType == SplitCustom && e.CustomAmounts == nil
}

// Clone returns a deep copy of e.
func (e Expense) Clone() Expense {
	c := e
	if e.SplitBetween != nil {
		c.SplitBetween = append([]string(nil), e.SplitBetween...)
	}
	if e.CustomAmounts != nil {
		c.CustomAmounts = make(map[string]decimal.Decimal, len(e.CustomAmounts))
		for name, amount := range e.CustomAmounts {
			c.CustomAmounts[name] = amount
		}
	}
	return c
}

// UnmarshalJSON decodes an expense, coercing non-numeric amounts to zero.
func (e *Expense) UnmarshalJSON(data []byte) error {
	type plain Expense
	var aux struct {
		plain
		Amount        json.RawMessage            `json:"amount"`
		CustomAmounts map[string]json.RawMessage `json:"customAmounts"`
	}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}

	*e = Expense(aux.plain)
	e.Amount = amountFromJSON(aux.Amount)
	e.CustomAmounts = nil
	if aux.CustomAmounts != nil {
		e.CustomAmounts = make(map[string]decimal.Decimal, len(aux.CustomAmounts))
		for name, raw := range aux.CustomAmounts {
			e.CustomAmounts[name] = amountFromJSON(raw)
		}
	}
	return nil
}
