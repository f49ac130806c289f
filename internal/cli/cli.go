// Package cli implements the splitctl subcommands.
package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/google/subcommands"

	"github.com/mmynk/splitledger/internal/models"
)

// Register the subcommands. currency is the default display currency.
func Register(c *subcommands.Commander, currency string) {
	c.Register(&settleCmd{defaultCurrency: currency}, "ledger")
	c.Register(&checkCmd{}, "ledger")
}

var (
	stdin  io.Reader = os.Stdin
	stdout io.Writer = os.Stdout
	stderr io.Writer = os.Stderr
)

// File is the on-disk form of a roster and its expense log.
type File struct {
	People   []string         `json:"people"`
	Expenses []models.Expense `json:"expenses"`
}

// DecodeFile reads a ledger file. "-" reads standard input.
func DecodeFile(path string) (File, error) {
	var r io.Reader
	if path == "-" {
		r = stdin
	} else {
		f, err := os.Open(path)
		if err != nil {
			return File{}, err
		}
		defer f.Close()
		r = f
	}

	var file File
	if err := json.NewDecoder(r).Decode(&file); err != nil {
		return File{}, fmt.Errorf("decode %s: %w", path, err)
	}
	return file, nil
}
