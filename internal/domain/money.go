package domain

import (
	"math"
	"strconv"
	"strings"
)

// DefaultCurrencySymbol is prefixed to every displayed amount.
const DefaultCurrencySymbol = "₹"

// FormatINR renders amount with Indian digit grouping: the last three digits,
// then groups of two (1234567 -> "₹12,34,567").
func FormatINR(amount int64) string {
	return FormatAmount(DefaultCurrencySymbol, amount)
}

// FormatAmount is FormatINR with a caller-chosen symbol.
func FormatAmount(symbol string, amount int64) string {
	sign := ""
	if amount < 0 {
		sign = "-"
		amount = -amount
	}
	return sign + symbol + GroupDigits(amount)
}

// GroupDigits applies en-IN grouping to a non-negative number.
func GroupDigits(n int64) string {
	digits := strconv.FormatInt(n, 10)
	if len(digits) <= 3 {
		return digits
	}

	head, tail := digits[:len(digits)-3], digits[len(digits)-3:]
	var groups []string
	for len(head) > 2 {
		groups = append([]string{head[len(head)-2:]}, groups...)
		head = head[:len(head)-2]
	}
	if head != "" {
		groups = append([]string{head}, groups...)
	}
	return strings.Join(append(groups, tail), ",")
}

// ParsePrice keeps only the digits of a display price ("₹1,299" -> 1299).
// Unparseable input yields 0.
func ParsePrice(s string) int64 {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	n, err := strconv.ParseInt(b.String(), 10, 64)
	if err != nil {
		return 0
	}
	return n
}

// PriceFromFloat converts an API price to whole rupees. Negative and
// non-finite values become 0.
func PriceFromFloat(f float64) int64 {
	if math.IsNaN(f) || math.IsInf(f, 0) || f <= 0 {
		return 0
	}
	return int64(math.Round(f))
}
