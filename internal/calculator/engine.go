package calculator

import (
	"github.com/shopspring/decimal"

	"github.com/mmynk/splitledger/internal/models"
)

// Result is the output of ComputeSettlement.
type Result struct {
	// Balances holds every person's net position.
	Balances Balances `json:"balances"`

	// Settlements is the suggested payoff plan.
	Settlements []models.Settlement `json:"settlements"`

	// Residual is the amount the plan could not match. Equal splits that do
	// not divide evenly leave a few cents here; more than that means the
	// expenses were inconsistent.
	Residual decimal.Decimal `json:"residual"`

	// Degraded counts custom expenses that had no custom amounts and were
	// split equally instead.
	Degraded int `json:"degraded"`
}

// Tolerance is the cent-per-person slack under which a residual is
// considered rounding rather than an inconsistency.
func (r Result) Tolerance() decimal.Decimal {
	n := r.Balances.Len()
	if n < 1 {
		n = 1
	}
	return settledThreshold.Mul(decimal.NewFromInt(int64(n)))
}

// Consistent reports whether the residual is within Tolerance.
func (r Result) Consistent() bool {
	return r.Residual.LessThanOrEqual(r.Tolerance())
}

// ComputeSettlement computes balances and a settlement plan for a ledger.
//
// It never fails: empty split groups are charged as if they had one member,
// custom expenses without amounts fall back to equal shares and unmatched
// leftovers are reported in Result.Residual. The function only reads its
// arguments, so it is safe to call concurrently.
func ComputeSettlement(people []string, expenses []models.Expense) Result {
	balances := AccumulateBalances(people, expenses)
	settlements, residual := PlanSettlements(balances)

	degraded := 0
	for _, e := range expenses {
		if e.Degraded() {
			degraded++
		}
	}

	return Result{
		Balances:    balances,
		Settlements: settlements,
		Residual:    residual,
		Degraded:    degraded,
	}
}
