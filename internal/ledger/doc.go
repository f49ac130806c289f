// Package ledger holds the state transitions of a shared-expense ledger.
//
// A ledger is changed only through Apply, which takes the current value and
// an Action and returns the next value. Apply never mutates its input, so
// callers can keep the previous state around and the settlement engine can
// read a ledger without any locking.
//
// Expenses enter a ledger as a Draft. Draft.Validate checks the draft against
// the roster and either yields a complete expense or reports which custom
// amounts are still missing, leaving it to the caller to ask for them.
package ledger
