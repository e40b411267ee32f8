package dateutils

import "time"

// TimestampLayout renders YYYY-MM-DD HH:MM:SS.
const TimestampLayout = "2006-01-02 15:04:05"

// LocalTime formats now shifted from UTC by offsetSeconds.
// No daylight-saving or named zone lookup is applied: the offset is the whole rule.
func LocalTime(now time.Time, offsetSeconds int) string {
	return now.UTC().Add(time.Duration(offsetSeconds) * time.Second).Format(TimestampLayout)
}
