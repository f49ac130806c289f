package calculator

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/mmynk/splitledger/internal/models"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func assertAmount(t *testing.T, want string, got decimal.Decimal, msgAndArgs ...any) bool {
	t.Helper()
	return assert.Truef(t, d(want).Equal(got), "want %s, got %s %v", want, got.String(), msgAndArgs)
}

func equalExpense(amount string, paidBy string, splitBetween ...string) models.Expense {
	return models.Expense{
		Description:  "test",
		Amount:       d(amount),
		PaidBy:       paidBy,
		SplitBetween: splitBetween,
		SplitType:    models.SplitEqual,
	}
}

func customExpense(amount string, paidBy string, shares map[string]string, splitBetween ...string) models.Expense {
	custom := make(map[string]decimal.Decimal, len(shares))
	for name, share := range shares {
		custom[name] = d(share)
	}
	return models.Expense{
		Description:   "test",
		Amount:        d(amount),
		PaidBy:        paidBy,
		SplitBetween:  splitBetween,
		SplitType:     models.SplitCustom,
		CustomAmounts: custom,
	}
}
