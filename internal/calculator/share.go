package calculator

import (
	"github.com/shopspring/decimal"

	"github.com/mmynk/splitledger/internal/models"
)

// Share is the amount one participant is charged for an expense.
type Share struct {
	Name   string
	Amount decimal.Decimal
}

// EqualShare divides amount among n people and rounds the result to cents.
// Every participant is charged the same rounded share, so the shares can sum
// to slightly more or less than amount. n below 1 is treated as 1.
func EqualShare(amount decimal.Decimal, n int) decimal.Decimal {
	if n < 1 {
		n = 1
	}
	return models.RoundCents(amount.Div(decimal.NewFromInt(int64(n))))
}

// Shares computes what each participant of e is charged, in SplitBetween order.
//
// Equal expenses charge EqualShare to everyone. Custom expenses charge the
// participant's entry in CustomAmounts (zero when absent), rounded to cents.
// A custom expense without CustomAmounts falls back to equal shares. An
// expense with CustomAmounts and no split type is custom.
func Shares(e models.Expense) []Share {
	shares := make([]Share, 0, len(e.SplitBetween))

	if e.UsesCustomAmounts() {
		for _, name := range e.SplitBetween {
			shares = append(shares, Share{
				Name:   name,
				Amount: models.RoundCents(e.CustomAmounts[name]),
			})
		}
		return shares
	}

	each := EqualShare(e.Amount, len(e.SplitBetween))
	for _, name := range e.SplitBetween {
		shares = append(shares, Share{Name: name, Amount: each})
	}
	return shares
}
