package cli

import (
	"context"
	"flag"
	"fmt"

	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"

	"github.com/mmynk/splitledger/internal/calculator"
	"github.com/mmynk/splitledger/internal/report"
)

// settleCmd holds the flags for the 'settle' subcommand.
type settleCmd struct {
	defaultCurrency string

	file     string
	currency string
	raw      bool
}

func (*settleCmd) Name() string     { return "settle" }
func (*settleCmd) Synopsis() string { return "print balances and the transfers that settle them" }
func (*settleCmd) Usage() string {
	return `splitctl settle -f <ledger.json> [-currency <code>] [-raw]

  Computes every person's balance and the fewest largest-first transfers
  that settle the ledger.
`
}

func (c *settleCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.file, "f", "-", "Path to the ledger file, - for standard input")
	currency := c.defaultCurrency
	if currency == "" {
		currency = "EUR"
	}
	f.StringVar(&c.currency, "currency", currency, "ISO 4217 currency used to display amounts (default from CURRENCY)")
	f.BoolVar(&c.raw, "raw", false, "print markdown without terminal rendering")
}

func (c *settleCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	file, err := DecodeFile(c.file)
	if err != nil {
		fmt.Fprintf(stderr, "Error loading ledger: %v\n", err)
		return subcommands.ExitFailure
	}

	result := calculator.ComputeSettlement(file.People, file.Expenses)
	md := report.Markdown(result, c.currency)

	if c.raw {
		fmt.Fprint(stdout, md)
		return subcommands.ExitSuccess
	}
	if err := printMarkdown(md); err != nil {
		fmt.Fprintf(stderr, "Error rendering report: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

func printMarkdown(md string) error {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(100),
	)
	if err != nil {
		return err
	}
	out, err := r.Render(md)
	if err != nil {
		return err
	}
	_, err = fmt.Fprint(stdout, out)
	return err
}
