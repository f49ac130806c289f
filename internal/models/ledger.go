package models

// Ledger is a roster of people and the expenses they share.
// It is the state that ledger actions transform.
type Ledger struct {
	// ID is the unique identifier for the ledger (UUID format).
	ID string `json:"id"`

	// Name is the display name of the ledger (e.g., "Ski trip", "Flat 4B").
	Name string `json:"name"`

	// People is the current roster, in the order people were added.
	People []string `json:"people"`

	// Expenses is the expense log in insertion order.
	Expenses []Expense `json:"expenses"`

	// CreatedAt is the Unix timestamp when the ledger was created.
	CreatedAt int64 `json:"createdAt"`
}

// Clone returns a deep copy of l.
func (l Ledger) Clone() Ledger {
	c := l
	if l.People != nil {
		c.People = append([]string(nil), l.People...)
	}
	if l.Expenses != nil {
		c.Expenses = make([]Expense, len(l.Expenses))
		for i, e := range l.Expenses {
			c.Expenses[i] = e.Clone()
		}
	}
	return c
}

// HasPerson reports whether name is on the roster (exact match).
func (l Ledger) HasPerson(name string) bool {
	for _, p := range l.People {
		if p == name {
			return true
		}
	}
	return false
}
