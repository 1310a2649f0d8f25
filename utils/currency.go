package utils

import (
	"fmt"
	"strings"
)

// FormatCurrencyMXN formats an amount as Mexican pesos with thousand
// separators and two fraction digits.
// Example: 1160.5 -> "$1,160.50"
func FormatCurrencyMXN(amount float64) string {
	negative := amount < 0
	if negative {
		amount = -amount
	}

	formatted := fmt.Sprintf("%.2f", amount)
	parts := strings.Split(formatted, ".")
	integerPart := parts[0]
	decimalPart := parts[1]

	var groups []string
	for i := len(integerPart); i > 0; i -= 3 {
		start := i - 3
		if start < 0 {
			start = 0
		}
		groups = append([]string{integerPart[start:i]}, groups...)
	}

	sign := ""
	if negative {
		sign = "-"
	}
	return sign + "$" + strings.Join(groups, ",") + "." + decimalPart
}
