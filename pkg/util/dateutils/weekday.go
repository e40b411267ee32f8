package dateutils

import (
	"fmt"
	"strings"
	"time"
)

// DateLayout is the calendar date layout used by forecast samples.
const DateLayout = "2006-01-02"

// daysOfWeek is Monday-first.
var daysOfWeek = [7]string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}

// ParseDate parses the date part of a "YYYY-MM-DD" or "YYYY-MM-DD HH:MM:SS" string.
func ParseDate(dateText string) (time.Time, error) {
	datePart, _, _ := strings.Cut(strings.TrimSpace(dateText), " ")
	date, err := time.Parse(DateLayout, datePart)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", dateText, err)
	}
	return date, nil
}

// WeekdayName returns the weekday of the given date.
func WeekdayName(dateText string) (string, error) {
	date, err := ParseDate(dateText)
	if err != nil {
		return "", err
	}
	return DayOfWeek(date), nil
}

// DayOfWeek maps t to its Monday-first weekday name.
func DayOfWeek(t time.Time) string {
	// time.Weekday counts from Sunday = 0
	return daysOfWeek[(int(t.Weekday())+6)%7]
}
