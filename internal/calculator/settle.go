package calculator

import (
	"slices"

	"github.com/shopspring/decimal"

	"github.com/mmynk/splitledger/internal/models"
)

var (
	// noiseThreshold is the smallest transfer worth suggesting.
	noiseThreshold = decimal.RequireFromString("0.009")
	// settledThreshold is the amount below which a balance counts as zero.
	settledThreshold = decimal.RequireFromString("0.01")
)

// IsSettled reports whether amount is zero at cent precision.
func IsSettled(amount decimal.Decimal) bool {
	return amount.Abs().LessThan(settledThreshold)
}

// position is a creditor's or debtor's outstanding amount, always positive.
type position struct {
	name   string
	amount decimal.Decimal
}

// PlanSettlements turns balances into a list of transfers that zero them.
//
// Algorithm:
// - Creditors are people with a positive balance, debtors a negative one
// - Both lists are sorted by amount, largest first; ties keep balance order
// - Greedy: the largest debtor pays the largest creditor as much as possible,
//   then whichever side is settled moves on to the next person
// - Transfers of less than a cent are rounding dust and are not suggested
//
// The walk stops when either list runs out. The returned residual is what is
// left unmatched at that point; it is zero for balanced input, up to equal
// split rounding.
func PlanSettlements(b Balances) ([]models.Settlement, decimal.Decimal) {
	var creditors, debtors []position
	for _, e := range b.entries {
		if amount := models.RoundCents(e.Net); amount.IsPositive() {
			creditors = append(creditors, position{name: e.Name, amount: amount})
		}
		if amount := models.RoundCents(e.Net.Neg()); amount.IsPositive() {
			debtors = append(debtors, position{name: e.Name, amount: amount})
		}
	}

	largestFirst := func(a, b position) int { return b.amount.Cmp(a.amount) }
	slices.SortStableFunc(creditors, largestFirst)
	slices.SortStableFunc(debtors, largestFirst)

	settlements := []models.Settlement{}
	i, j := 0, 0
	for i < len(creditors) && j < len(debtors) {
		give := decimal.Min(creditors[i].amount, debtors[j].amount)
		if give.GreaterThan(noiseThreshold) {
			settlements = append(settlements, models.Settlement{
				From:   debtors[j].name,
				To:     creditors[i].name,
				Amount: models.RoundCents(give),
			})
		}

		creditors[i].amount = models.RoundCents(creditors[i].amount.Sub(give))
		debtors[j].amount = models.RoundCents(debtors[j].amount.Sub(give))

		if IsSettled(creditors[i].amount) {
			i++
		}
		if IsSettled(debtors[j].amount) {
			j++
		}
	}

	residual := decimal.Zero
	for _, c := range creditors[i:] {
		residual = residual.Add(c.amount)
	}
	for _, d := range debtors[j:] {
		residual = residual.Add(d.amount)
	}

	return settlements, residual
}
