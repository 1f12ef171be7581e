package helpers

import (
	"regexp"
	"strings"
	"time"
)

var (
	nonDigitRegex = regexp.MustCompile(`\D`)
	emailRegex    = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
)

func StringTrim(s string) string {
	return strings.TrimSpace(s)
}

// DigitsOnly strips every non-digit character from s.
func DigitsOnly(s string) string {
	return nonDigitRegex.ReplaceAllString(s, "")
}

// IsValidContactNumber reports whether s reduces to exactly 10 digits.
func IsValidContactNumber(s string) bool {
	return len(DigitsOnly(s)) == 10
}

func IsValidEmail(s string) bool {
	return emailRegex.MatchString(s)
}

// TruncateToDay drops the time-of-day so dates compare on the calendar day.
func TruncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// ParseTravelDate accepts the date-only form clients usually send, with an
// RFC3339 fallback for older clients that post full timestamps. Date-only
// input is parsed in the server's local zone so it compares against "today"
// in the same zone.
func ParseTravelDate(s string) (time.Time, error) {
	if t, err := time.ParseInLocation("2006-01-02", s, time.Local); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, s)
}
