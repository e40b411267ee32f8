package presenter

import (
	"math"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Capitalize upper-cases the first rune and lower-cases the rest
func Capitalize(s string) string {
	first, size := utf8.DecodeRuneInString(s)
	if size == 0 {
		return s
	}
	return string(unicode.ToUpper(first)) + strings.ToLower(s[size:])
}

// formatNumber renders the shortest decimal form, e.g. 3.1 or 80
func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// roundHalfEven rounds ties to the even neighbour, so 0.5 becomes 0 and 1.5 becomes 2
func roundHalfEven(v float64) string {
	rounded := math.RoundToEven(v)
	if rounded == 0 {
		// drop the sign of -0
		rounded = 0
	}
	return formatNumber(rounded)
}
