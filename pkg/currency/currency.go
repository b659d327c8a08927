package currency

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// FormatINR renders an amount the way the storefront displays money:
// "Rs. " prefix with Indian digit grouping (last three digits, then
// groups of two). Fractions are rounded to paise and trimmed.
func FormatINR(amount float64) string {
	negative := amount < 0
	if negative {
		amount = -amount
	}

	paise := int64(math.Round(amount * 100))
	whole := paise / 100
	frac := paise % 100

	out := "Rs. " + groupIndian(strconv.FormatInt(whole, 10))
	if frac != 0 {
		out += "." + strings.TrimRight(fmt.Sprintf("%02d", frac), "0")
	}
	if negative {
		out = "-" + out
	}
	return out
}

// groupIndian inserts commas per the Indian numbering system, e.g.
// "1234567" becomes "12,34,567".
func groupIndian(digits string) string {
	if len(digits) <= 3 {
		return digits
	}

	head := digits[:len(digits)-3]
	tail := digits[len(digits)-3:]

	var groups []string
	for len(head) > 2 {
		groups = append([]string{head[len(head)-2:]}, groups...)
		head = head[:len(head)-2]
	}
	groups = append([]string{head}, groups...)

	return strings.Join(groups, ",") + "," + tail
}
