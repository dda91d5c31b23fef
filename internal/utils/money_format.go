package utils

import (
	"strings"

	"github.com/shopspring/decimal"
)

// FormatMoney renders an amount for printed documents in the local
// convention: dot-grouped thousands and a comma decimal separator.
// Example: 140875 -> "140.875,00".
func FormatMoney(amount decimal.Decimal) string {
	fixed := amount.StringFixed(2)
	negative := strings.HasPrefix(fixed, "-")
	if negative {
		fixed = fixed[1:]
	}

	intPart := fixed[:len(fixed)-3]
	decPart := fixed[len(fixed)-2:]

	var groups []string
	for len(intPart) > 3 {
		groups = append([]string{intPart[len(intPart)-3:]}, groups...)
		intPart = intPart[:len(intPart)-3]
	}
	groups = append([]string{intPart}, groups...)

	out := strings.Join(groups, ".") + "," + decPart
	if negative {
		out = "-" + out
	}
	return out
}
