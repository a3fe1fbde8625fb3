package utils

import (
	"math"
	"strconv"
	"strings"
)

// RoundTo rounds v to the given number of decimal places, halves away from zero.
func RoundTo(v float64, places int) float64 {
	scale := math.Pow(10, float64(places))
	return math.Round(v*scale) / scale
}

// FormatINR groups an amount the Indian way: the last three digits, then
// pairs (12,34,56,789). Fractions are rounded off.
func FormatINR(amount float64) string {
	digits := strconv.FormatInt(int64(math.Round(math.Abs(amount))), 10)

	out := digits
	if len(digits) > 3 {
		head, tail := digits[:len(digits)-3], digits[len(digits)-3:]
		var groups []string
		lead := len(head) % 2
		if lead > 0 {
			groups = append(groups, head[:lead])
		}
		for i := lead; i < len(head); i += 2 {
			groups = append(groups, head[i:i+2])
		}
		out = strings.Join(append(groups, tail), ",")
	}

	if amount < 0 && out != "0" {
		return "-" + out
	}
	return out
}

// FormatCrore renders an amount in crores with two decimals, e.g. "1.25Cr".
func FormatCrore(amount float64) string {
	return strconv.FormatFloat(amount/1e7, 'f', 2, 64) + "Cr"
}
