package ledger

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmynk/splitledger/internal/models"
)

func newLedger(people ...string) models.Ledger {
	return models.Ledger{ID: "test", Name: "Test", People: people}
}

func TestAddPerson(t *testing.T) {
	l := newLedger("Alice")

	t.Run("trims and appends", func(t *testing.T) {
		next, err := Apply(l, AddPerson{Name: "  Bob "})
		require.NoError(t, err)
		assert.Equal(t, []string{"Alice", "Bob"}, next.People)
		assert.Equal(t, []string{"Alice"}, l.People, "input must not change")
	})

	t.Run("rejects empty names", func(t *testing.T) {
		_, err := Apply(l, AddPerson{Name: "   "})
		assert.ErrorIs(t, err, ErrEmptyName)
	})

	t.Run("rejects duplicates ignoring case", func(t *testing.T) {
		next, err := Apply(l, AddPerson{Name: "ALICE"})
		assert.ErrorIs(t, err, ErrDuplicatePerson)
		assert.Equal(t, l.People, next.People)
	})
}

func TestRemovePerson(t *testing.T) {
	l := newLedger("Alice", "Bob", "Carol")
	l.Expenses = []models.Expense{
		{ID: 1, Description: "Dinner", Amount: decimal.NewFromInt(30), PaidBy: "Alice",
			SplitBetween: []string{"Alice", "Bob", "Carol"}, SplitType: models.SplitEqual},
		{ID: 2, Description: "Taxi", Amount: decimal.NewFromInt(12), PaidBy: "Bob",
			SplitBetween: []string{"Bob"}, SplitType: models.SplitEqual},
		{ID: 3, Description: "Wine", Amount: decimal.NewFromInt(20), PaidBy: "Bob",
			SplitBetween: []string{"Alice", "Bob"}, SplitType: models.SplitCustom,
			CustomAmounts: map[string]decimal.Decimal{"Alice": decimal.NewFromInt(5), "Bob": decimal.NewFromInt(15)}},
	}

	next, err := Apply(l, RemovePerson{Name: "Bob"})
	require.NoError(t, err)

	assert.Equal(t, []string{"Alice", "Carol"}, next.People)
	require.Len(t, next.Expenses, 2, "the taxi had only Bob and must be dropped")
	assert.Equal(t, []string{"Alice", "Carol"}, next.Expenses[0].SplitBetween)
	assert.Equal(t, int64(3), next.Expenses[1].ID)
	assert.Equal(t, "Bob", next.Expenses[1].PaidBy, "payer stays on the expense")
	assert.Equal(t, []string{"Alice"}, next.Expenses[1].SplitBetween)
	assert.NotContains(t, next.Expenses[1].CustomAmounts, "Bob")

	// the input is untouched
	assert.Equal(t, []string{"Alice", "Bob", "Carol"}, l.People)
	require.Len(t, l.Expenses, 3)
	assert.Equal(t, []string{"Alice", "Bob", "Carol"}, l.Expenses[0].SplitBetween)
	assert.Contains(t, l.Expenses[2].CustomAmounts, "Bob")

	_, err = Apply(l, RemovePerson{Name: "bob"})
	assert.ErrorIs(t, err, ErrUnknownPerson)
}

func TestAddExpense(t *testing.T) {
	at := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	l := newLedger("Alice", "Bob")
	e := models.Expense{Description: "Coffee", Amount: decimal.NewFromInt(4), PaidBy: "Alice",
		SplitBetween: []string{"Alice", "Bob"}, SplitType: models.SplitEqual}

	next, err := Apply(l, AddExpense{Expense: e, At: at})
	require.NoError(t, err)
	require.Len(t, next.Expenses, 1)
	assert.Equal(t, int64(1), next.Expenses[0].ID)
	assert.Equal(t, at, next.Expenses[0].Date)

	next, err = Apply(next, AddExpense{Expense: e, At: at})
	require.NoError(t, err)
	assert.Equal(t, int64(2), next.Expenses[1].ID)
	assert.Empty(t, l.Expenses)
}

func TestDeleteExpense(t *testing.T) {
	l := newLedger("Alice")
	l.Expenses = []models.Expense{{ID: 4}, {ID: 9}}

	next, err := Apply(l, DeleteExpense{ID: 4})
	require.NoError(t, err)
	require.Len(t, next.Expenses, 1)
	assert.Equal(t, int64(9), next.Expenses[0].ID)
	assert.Equal(t, int64(4), l.Expenses[0].ID)

	// IDs keep growing after a delete
	assert.Equal(t, int64(10), NextExpenseID(next.Expenses))

	_, err = Apply(l, DeleteExpense{ID: 5})
	assert.ErrorIs(t, err, ErrUnknownExpense)
}

func TestNextExpenseID(t *testing.T) {
	assert.Equal(t, int64(1), NextExpenseID(nil))
	assert.Equal(t, int64(8), NextExpenseID([]models.Expense{{ID: 7}, {ID: 2}}))
}
