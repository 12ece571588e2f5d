package prompt

import (
	"fmt"
	"strings"
)

// amount renders a rupee figure with comma grouping and two decimals,
// e.g. 24623.4561 -> "24,623.46".
func amount(v float64) string {
	s := fmt.Sprintf("%.2f", v)
	dot := strings.IndexByte(s, '.')
	return groupDigits(s[:dot]) + s[dot:]
}

// amount0 renders a rupee figure with comma grouping and no decimals.
func amount0(v float64) string {
	return groupDigits(fmt.Sprintf("%.0f", v))
}

// groupDigits inserts a comma every three digits from the right.
func groupDigits(s string) string {
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	var b strings.Builder
	for i, c := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(c)
	}
	if neg {
		return "-" + b.String()
	}
	return b.String()
}

// orNA substitutes "N/A" for blank optional fields.
func orNA(s string) string {
	if strings.TrimSpace(s) == "" {
		return "N/A"
	}
	return s
}

// amountOrNA renders an optional amount, with zero meaning "not provided".
func amountOrNA(v float64) string {
	if v == 0 {
		return "N/A"
	}
	return amount0(v)
}

// joinOrAny renders a multi-select filter, with the empty selection
// meaning no restriction.
func joinOrAny(values []string) string {
	if len(values) == 0 {
		return "Any"
	}
	return strings.Join(values, ", ")
}
