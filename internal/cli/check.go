package cli

import (
	"context"
	"flag"
	"fmt"
	"strings"

	"github.com/google/subcommands"

	"github.com/mmynk/splitledger/internal/ledger"
)

// checkCmd holds the flags for the 'check' subcommand.
type checkCmd struct {
	file string
}

func (*checkCmd) Name() string     { return "check" }
func (*checkCmd) Synopsis() string { return "report expenses that would not pass validation" }
func (*checkCmd) Usage() string {
	return `splitctl check -f <ledger.json>

  Validates every expense against the roster and lists the problems found:
  custom splits without amounts, custom amounts that do not add up, payers
  or participants missing from the roster. Exits with status 1 if any.
`
}

func (c *checkCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.file, "f", "-", "Path to the ledger file, - for standard input")
}

// Finding is a problem with one expense.
type Finding struct {
	ExpenseID   int64
	Description string
	Problem     string
}

// Check validates every expense of file against its roster.
func Check(file File) []Finding {
	var findings []Finding
	for _, e := range file.Expenses {
		add := func(problem string) {
			findings = append(findings, Finding{ExpenseID: e.ID, Description: e.Description, Problem: problem})
		}

		if e.Degraded() {
			add("custom split without amounts, split equally instead")
			continue
		}

		v, err := ledger.DraftFrom(e).Validate(file.People)
		if err != nil {
			add(err.Error())
			continue
		}
		if !v.Complete() {
			add(fmt.Sprintf("no custom amount for %s (%s unassigned)",
				strings.Join(v.Missing, ", "), v.Remaining.StringFixed(2)))
		}
	}
	return findings
}

func (c *checkCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	file, err := DecodeFile(c.file)
	if err != nil {
		fmt.Fprintf(stderr, "Error loading ledger: %v\n", err)
		return subcommands.ExitFailure
	}

	findings := Check(file)
	if len(findings) == 0 {
		fmt.Fprintf(stdout, "%d expenses, no problems found\n", len(file.Expenses))
		return subcommands.ExitSuccess
	}

	for _, fd := range findings {
		fmt.Fprintf(stdout, "#%d %q: %s\n", fd.ExpenseID, fd.Description, fd.Problem)
	}
	fmt.Fprintf(stdout, "%d of %d expenses have problems\n", len(findings), len(file.Expenses))
	return subcommands.ExitFailure
}
