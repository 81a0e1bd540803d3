package fec

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"
)

var errEmptyAmount = errors.New("empty amount")

// parseAmountCents parses a US-formatted amount string into cents.
// Format examples: "1,234.56" -> 123456, "-588.74" -> -58874, "$50" -> 5000.
// Decimal arithmetic keeps fractional cents from being truncated by float
// conversion.
func parseAmountCents(s string) (int64, error) {
	if s == "" {
		return 0, errEmptyAmount
	}

	clean := strings.ReplaceAll(s, ",", "")
	clean = strings.TrimPrefix(clean, "$")

	d, err := decimal.NewFromString(clean)
	if err != nil {
		return 0, err
	}

	return d.Mul(decimal.NewFromInt(100)).Round(0).IntPart(), nil
}
