package analysis

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

/*
FormatCurrency formats an amount as whole dollars with thousand separators.

Examples:

	1234567 -> "$1,234,567"
	-500    -> "-$500"
	0       -> "$0"

Absent fields resolve to 0 before reaching here, so the function is total.
*/
func FormatCurrency(amount float64) string {
	sign := ""
	if amount < 0 {
		sign = "-"
		amount = -amount
	}

	rounded := int64(math.Round(amount))
	grouped := groupThousands(strconv.FormatInt(rounded, 10), ",")
	return fmt.Sprintf("%s$%s", sign, grouped)
}

/*
FormatPercent formats a decimal fraction as a percentage with two decimals.

Example: 0.0825 -> "8.25%".
*/
func FormatPercent(value float64) string {
	return fmt.Sprintf("%.2f%%", value*100)
}

/*
FormatWholePercent formats a decimal fraction as a whole percentage.

Used for the financing rows (down payment, LTV) where decimals are noise.
*/
func FormatWholePercent(value float64) string {
	return fmt.Sprintf("%.0f%%", value*100)
}

/*
FormatRatio formats a plain ratio with two decimals (DSCR, GRM).
*/
func FormatRatio(value float64) string {
	return fmt.Sprintf("%.2f", value)
}

/*
FormatIntHuman formats a count with comma separators for readability.
*/
func FormatIntHuman(value int64) string {
	sign := ""
	if value < 0 {
		sign = "-"
		value = -value
	}
	return sign + groupThousands(strconv.FormatInt(value, 10), ",")
}

/*
groupThousands groups digits in a base-10 string using the provided separator.
*/
func groupThousands(raw string, sep string) string {
	if len(raw) <= 3 {
		return raw
	}

	var builder strings.Builder
	firstGroupLen := len(raw) % 3
	if firstGroupLen == 0 {
		firstGroupLen = 3
	}

	builder.WriteString(raw[:firstGroupLen])

	for index := firstGroupLen; index < len(raw); index += 3 {
		builder.WriteString(sep)
		builder.WriteString(raw[index : index+3])
	}

	return builder.String()
}
