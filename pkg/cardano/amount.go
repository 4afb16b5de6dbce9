package cardano

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

const (
	LovelaceUnit    = "lovelace"
	LovelacePerADA  = 1_000_000
	ADASymbol       = "₳"
	adaDisplayScale = 2
)

var ErrInvalidAmount = errors.New("invalid amount")

var lovelacePerADA = decimal.NewFromInt(LovelacePerADA)

// ParseAmount parses a non-negative base-10 integer amount string.
func ParseAmount(s string) (decimal.Decimal, error) {
	d, err := ParseSignedAmount(s)
	if err != nil {
		return decimal.Zero, err
	}
	if d.IsNegative() {
		return decimal.Zero, fmt.Errorf("%w: %q is negative", ErrInvalidAmount, s)
	}
	return d, nil
}

// ParseSignedAmount parses a base-10 integer amount string that may carry a leading minus sign.
func ParseSignedAmount(s string) (decimal.Decimal, error) {
	digits := strings.TrimPrefix(s, "-")
	if digits == "" {
		return decimal.Zero, fmt.Errorf("%w: %q is empty", ErrInvalidAmount, s)
	}
	for _, r := range digits {
		if r < '0' || r > '9' {
			return decimal.Zero, fmt.Errorf("%w: %q is not a base-10 integer", ErrInvalidAmount, s)
		}
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %v", ErrInvalidAmount, err)
	}
	return d, nil
}

// LovelaceToADA converts a lovelace amount string to ADA.
func LovelaceToADA(lovelace string) (decimal.Decimal, error) {
	d, err := ParseAmount(lovelace)
	if err != nil {
		return decimal.Zero, err
	}
	return d.Div(lovelacePerADA), nil
}

// FormatADA renders an ADA value with two decimals and thousands separators, e.g. "1,234.56 ₳".
func FormatADA(ada decimal.Decimal) string {
	fixed := ada.StringFixed(adaDisplayScale)

	sign := ""
	if strings.HasPrefix(fixed, "-") {
		sign, fixed = "-", fixed[1:]
	}
	intPart, frac, _ := strings.Cut(fixed, ".")

	var b strings.Builder
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	return fmt.Sprintf("%s%s.%s %s", sign, b.String(), frac, ADASymbol)
}

// FormatLovelace converts and formats in one step; unparsable input renders as "0 ₳".
func FormatLovelace(lovelace string) string {
	ada, err := LovelaceToADA(lovelace)
	if err != nil {
		return "0 " + ADASymbol
	}
	return FormatADA(ada)
}
