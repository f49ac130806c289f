package calculator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmynk/splitledger/internal/models"
)

func TestEqualShare(t *testing.T) {
	tests := []struct {
		name   string
		amount string
		n      int
		want   string
	}{
		{name: "divides evenly", amount: "30", n: 3, want: "10"},
		{name: "rounds down", amount: "100", n: 3, want: "33.33"},
		{name: "rounds half away from zero", amount: "0.05", n: 2, want: "0.03"},
		{name: "rounds up", amount: "200", n: 3, want: "66.67"},
		{name: "zero people counts as one", amount: "12.5", n: 0, want: "12.5"},
		{name: "negative count counts as one", amount: "7", n: -2, want: "7"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertAmount(t, tt.want, EqualShare(d(tt.amount), tt.n))
		})
	}
}

func TestShares(t *testing.T) {
	t.Run("equal split keeps participant order", func(t *testing.T) {
		shares := Shares(equalExpense("10", "Alice", "Carol", "Alice", "Bob"))
		require.Len(t, shares, 3)
		assert.Equal(t, "Carol", shares[0].Name)
		assert.Equal(t, "Alice", shares[1].Name)
		assert.Equal(t, "Bob", shares[2].Name)
		for _, s := range shares {
			assertAmount(t, "3.33", s.Amount, s.Name)
		}
	})

	t.Run("custom split uses custom amounts rounded to cents", func(t *testing.T) {
		e := customExpense("10", "Alice", map[string]string{"Alice": "3.333", "Bob": "6.667"}, "Alice", "Bob")
		shares := Shares(e)
		require.Len(t, shares, 2)
		assertAmount(t, "3.33", shares[0].Amount)
		assertAmount(t, "6.67", shares[1].Amount)
	})

	t.Run("custom split without an entry charges zero", func(t *testing.T) {
		e := customExpense("10", "Alice", map[string]string{"Alice": "10"}, "Alice", "Bob")
		shares := Shares(e)
		require.Len(t, shares, 2)
		assertAmount(t, "10", shares[0].Amount)
		assertAmount(t, "0", shares[1].Amount)
	})

	t.Run("custom split without amounts falls back to equal", func(t *testing.T) {
		e := equalExpense("9", "Alice", "Alice", "Bob", "Carol")
		e.SplitType = models.SplitCustom
		require.True(t, e.Degraded())

		for _, s := range Shares(e) {
			assertAmount(t, "3", s.Amount, s.Name)
		}
	})

	t.Run("custom amounts without split type are custom", func(t *testing.T) {
		e := customExpense("10", "Alice", map[string]string{"Alice": "2", "Bob": "8"}, "Alice", "Bob")
		e.SplitType = ""

		shares := Shares(e)
		require.Len(t, shares, 2)
		assertAmount(t, "2", shares[0].Amount)
		assertAmount(t, "8", shares[1].Amount)
	})

	t.Run("equal split ignores custom amounts", func(t *testing.T) {
		e := customExpense("10", "Alice", map[string]string{"Alice": "2", "Bob": "8"}, "Alice", "Bob")
		e.SplitType = models.SplitEqual

		for _, s := range Shares(e) {
			assertAmount(t, "5", s.Amount, s.Name)
		}
	})

	t.Run("empty split has no shares", func(t *testing.T) {
		assert.Empty(t, Shares(equalExpense("9", "Alice")))
	})
}
