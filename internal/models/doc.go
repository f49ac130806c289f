// Package models defines the core domain models for splitledger.
//
// # Models
//
//   - Expense: one real-world payment, split equally or by custom amounts
//   - Ledger: a roster of people plus the expense log they share
//   - Balance: one person's net position derived from a ledger
//   - Settlement: a suggested transfer that pays down a balance
//
// People are identified by display name strings. There are no user accounts.
//
// # Money
//
// All amounts are decimal.Decimal values in a single display currency and are
// kept at cent precision with RoundCents. JSON decoding of expense amounts is
// lenient: a value that is neither a number nor a numeric string decodes to
// zero rather than failing the whole document.
//
// # Design Principles
//
//  1. Values, not pointers: a Ledger is copied with Clone before it is changed
//  2. Names over IDs: expenses reference people by name, so removing someone
//     from the roster does not invalidate expenses they paid
//  3. Derived data (balances, settlements) is never stored
package models
