package numberutils

import (
	"fmt"
	"strconv"
	"unicode"
)

// IsDigits checks if the given string is non-empty and contains only ASCII digits (0-9).
func IsDigits(str string) bool {
	if str == "" {
		return false
	}
	for _, r := range str {
		if r > unicode.MaxASCII || !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

// ToIndex converts a list position such as "0" or "12". Signs, spaces and
// anything besides digits are rejected.
func ToIndex(str string) (int, error) {
	if !IsDigits(str) {
		return 0, fmt.Errorf("invalid index %q", str)
	}
	return strconv.Atoi(str)
}
