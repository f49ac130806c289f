// Package report renders settlement results as markdown.
package report

import (
	"fmt"
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"

	"github.com/mmynk/splitledger/internal/calculator"
)

// Money formats amount in the given ISO 4217 currency, e.g. "€1,234.50".
// Unknown currency codes fall back to the plain amount followed by the code.
func Money(amount decimal.Decimal, currency string) string {
	cur := money.GetCurrency(currency)
	if cur == nil {
		return strings.TrimSpace(amount.StringFixed(2) + " " + currency)
	}
	minor := amount.Shift(int32(cur.Fraction)).Round(0)
	return money.New(minor.IntPart(), cur.Code).Display()
}

// Markdown renders balances and settlements of r.
func Markdown(r calculator.Result, currency string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Balances\n\n")
	if r.Balances.Len() == 0 {
		fmt.Fprintln(&b, "No people and no expenses.")
	} else {
		fmt.Fprintln(&b, "| Person | Paid | Owed | Balance |")
		fmt.Fprintln(&b, "|:---|---:|---:|---:|")
		for _, bal := range r.Balances.List() {
			fmt.Fprintf(&b, "| %s | %s | %s | %s |\n",
				escape(bal.Name),
				Money(bal.Paid, currency),
				Money(bal.Owed, currency),
				balance(bal.Net, currency),
			)
		}
	}

	fmt.Fprintf(&b, "\n# Settlements\n\n")
	if len(r.Settlements) == 0 {
		fmt.Fprintln(&b, "Everyone is settled up.")
	}
	for _, s := range r.Settlements {
		fmt.Fprintf(&b, "- **%s** pays **%s** %s\n", escape(s.From), escape(s.To), Money(s.Amount, currency))
	}

	var notes []string
	if r.Degraded > 0 {
		notes = append(notes, fmt.Sprintf("%d custom split(s) had no amounts and were split equally.", r.Degraded))
	}
	if !r.Consistent() {
		notes = append(notes, fmt.Sprintf("Balances do not add up: %s is left unassigned.", Money(r.Residual, currency)))
	}
	if len(notes) > 0 {
		fmt.Fprintf(&b, "\n> ")
		fmt.Fprintln(&b, strings.Join(notes, " "))
	}

	return b.String()
}

func balance(net decimal.Decimal, currency string) string {
	if calculator.IsSettled(net) {
		return "settled"
	}
	if net.IsPositive() {
		return "+" + Money(net, currency)
	}
	return Money(net, currency)
}

var escaper = strings.NewReplacer("|", `\|`, "*", `\*`, "_", `\_`)

func escape(s string) string {
	return escaper.Replace(s)
}
