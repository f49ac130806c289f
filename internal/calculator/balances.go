package calculator

import (
	"encoding/json"

	"github.com/shopspring/decimal"

	"github.com/mmynk/splitledger/internal/models"
)

// Balances is an ordered mapping from person to balance.
// Iteration order is roster order followed by first appearance in the
// expense log.
type Balances struct {
	entries []models.Balance
	index   map[string]int
}

func newBalances(capacity int) Balances {
	return Balances{
		entries: make([]models.Balance, 0, capacity),
		index:   make(map[string]int, capacity),
	}
}

// seed returns the position of name, adding it at zero if absent.
func (b *Balances) seed(name string) int {
	if i, ok := b.index[name]; ok {
		return i
	}
	b.entries = append(b.entries, models.Balance{
		Name: name,
		Net:  decimal.Zero,
		Paid: decimal.Zero,
		Owed: decimal.Zero,
	})
	b.index[name] = len(b.entries) - 1
	return len(b.entries) - 1
}

func (b *Balances) credit(name string, amount decimal.Decimal) {
	e := &b.entries[b.seed(name)]
	e.Net = models.RoundCents(e.Net.Add(amount))
	e.Paid = models.RoundCents(e.Paid.Add(amount))
}

func (b *Balances) debit(name string, amount decimal.Decimal) {
	e := &b.entries[b.seed(name)]
	e.Net = models.RoundCents(e.Net.Sub(amount))
	e.Owed = models.RoundCents(e.Owed.Add(amount))
}

// Len returns the number of people with a balance entry.
func (b Balances) Len() int { return len(b.entries) }

// Names returns the people in iteration order.
func (b Balances) Names() []string {
	names := make([]string, len(b.entries))
	for i, e := range b.entries {
		names[i] = e.Name
	}
	return names
}

// Get returns the balance entry for name.
func (b Balances) Get(name string) (models.Balance, bool) {
	i, ok := b.index[name]
	if !ok {
		return models.Balance{}, false
	}
	return b.entries[i], true
}

// Net returns the net balance for name, or zero if name has no entry.
func (b Balances) Net(name string) decimal.Decimal {
	e, ok := b.Get(name)
	if !ok {
		return decimal.Zero
	}
	return e.Net
}

// List returns a copy of the entries in iteration order.
func (b Balances) List() []models.Balance {
	return append([]models.Balance(nil), b.entries...)
}

// Map returns the net balances keyed by name.
func (b Balances) Map() map[string]decimal.Decimal {
	m := make(map[string]decimal.Decimal, len(b.entries))
	for _, e := range b.entries {
		m[e.Name] = e.Net
	}
	return m
}

// Sum returns the sum of all net balances. For consistent input it is zero
// up to the rounding left behind by equal splits.
func (b Balances) Sum() decimal.Decimal {
	sum := decimal.Zero
	for _, e := range b.entries {
		sum = sum.Add(e.Net)
	}
	return sum
}

// MarshalJSON encodes the balances as an ordered list.
func (b Balances) MarshalJSON() ([]byte, error) {
	list := b.List()
	if list == nil {
		list = []models.Balance{}
	}
	return json.Marshal(list)
}

// AccumulateBalances folds the expense log into a net balance per person.
//
// Every roster name starts at zero. For each expense, in order, the payer is
// credited the full amount and every participant is debited their share (see
// Shares). Names that only appear in expenses get an entry on first sight.
// Each balance is rounded to cents after every single update.
func AccumulateBalances(people []string, expenses []models.Expense) Balances {
	b := newBalances(len(people))
	for _, p := range people {
		b.seed(p)
	}

	for _, e := range expenses {
		b.credit(e.PaidBy, e.Amount)
		for _, s := range Shares(e) {
			b.debit(s.Name, s.Amount)
		}
	}

	return b
}
