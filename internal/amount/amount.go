// Package amount parses textual monetary fields into exact decimals.
package amount

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// ErrMalformed indicates a required numeric field could not be parsed.
var ErrMalformed = errors.New("malformed amount")

// Normalize parses amountText as an exact decimal. When feeText is present
// and parses cleanly the fee is netted out (amount - fee); an absent, empty,
// or unparsable fee leaves the amount unchanged. Fee netting is best-effort,
// never fatal.
func Normalize(amountText, feeText string) (decimal.Decimal, error) {
	amt, err := decimal.NewFromString(strings.TrimSpace(amountText))
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("%w: %q", ErrMalformed, amountText)
	}

	feeText = strings.TrimSpace(feeText)
	if feeText == "" {
		return amt, nil
	}
	fee, err := decimal.NewFromString(feeText)
	if err != nil {
		return amt, nil
	}
	return amt.Sub(fee), nil
}
