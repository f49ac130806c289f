package models

import "github.com/shopspring/decimal"

// Balance is one person's net position in a ledger.
type Balance struct {
	// Name is the person's display name.
	Name string `json:"name"`

	// Net is Paid minus Owed as accumulated by the engine.
	// Positive = the group owes them, negative = they owe the group.
	Net decimal.Decimal `json:"net"`

	// Paid is the total of the expenses this person paid.
	Paid decimal.Decimal `json:"paid"`

	// Owed is the total of the shares this person was charged.
	Owed decimal.Decimal `json:"owed"`
}

// Settlement is a suggested transfer: From pays To the given Amount.
// Settlements are derived from balances and carry no identity.
type Settlement struct {
	// From is the debtor who pays.
	From string `json:"from"`

	// To is the creditor who receives.
	To string `json:"to"`

	// Amount is the transfer amount, rounded to cents.
	Amount decimal.Decimal `json:"amount"`
}
