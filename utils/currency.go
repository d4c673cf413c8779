package utils

import (
	"fmt"
	"strings"
)

// FormatCurrencyINR formats an amount in Indian rupee notation, grouping the
// last three digits and then pairs: 1234567.5 -> "₹12,34,567.50".
func FormatCurrencyINR(amount float64) string {
	negative := amount < 0
	if negative {
		amount = -amount
	}

	formatted := fmt.Sprintf("%.2f", amount)
	parts := strings.SplitN(formatted, ".", 2)
	integerPart := parts[0]
	decimalPart := parts[1]

	var groups []string
	if len(integerPart) > 3 {
		head := integerPart[:len(integerPart)-3]
		tail := integerPart[len(integerPart)-3:]
		for len(head) > 2 {
			groups = append([]string{head[len(head)-2:]}, groups...)
			head = head[:len(head)-2]
		}
		if head != "" {
			groups = append([]string{head}, groups...)
		}
		groups = append(groups, tail)
	} else {
		groups = []string{integerPart}
	}

	sign := ""
	if negative {
		sign = "-"
	}
	return fmt.Sprintf("%s₹%s.%s", sign, strings.Join(groups, ","), decimalPart)
}
