package models

import (
	"encoding/json"
	"strings"

	"github.com/shopspring/decimal"
)

// CentPlaces is the number of decimal places every amount is kept at.
const CentPlaces = 2

// RoundCents rounds d to cents, half away from zero.
func RoundCents(d decimal.Decimal) decimal.Decimal {
	return d.Round(CentPlaces)
}

// ParseAmount parses a decimal amount such as "12.34" or "12,34".
// Anything that is not a number yields zero.
func ParseAmount(s string) decimal.Decimal {
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", ".")
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}

// amountFromJSON decodes a JSON number or numeric string.
// null, missing and non-numeric values yield zero.
func amountFromJSON(raw json.RawMessage) decimal.Decimal {
	if len(raw) == 0 {
		return decimal.Zero
	}
	var d decimal.Decimal
	if err := d.UnmarshalJSON(raw); err != nil {
		return decimal.Zero
	}
	return d
}
