// Package dates holds the shared date arithmetic used by the deferral
// and statute-of-limitations calculators. Periods are measured in
// 365-day years, matching the rest of the statutory deadline math;
// switching to calendar years would move expiry dates across
// leap-year boundaries and change verdicts.
package dates

import (
	"strings"
	"time"
)

// Day is the unit for remaining-time arithmetic.
const Day = 24 * time.Hour

// Year is a statutory year of exactly 365 days.
const Year = 365 * Day

var layouts = []string{
	"1/2/2006",
	"1/2/06",
	"2006-01-02",
	time.RFC3339,
	"Jan 2, 2006",
	"January 2, 2006",
	"Jan-2-2006",
	"2-Jan-2006",
}

// Parse attempts the date formats seen in court records (US-ordered
// slash dates, ISO dates, spelled-out months). The second return is
// false when nothing matched; callers treat an unparseable date as a
// recoverable lower-certainty state, never an error.
func Parse(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range layouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), true
		}
	}
	return time.Time{}, false
}

// Format renders a date the way the court-record tooling displays
// them: M/D/YYYY without zero padding.
func Format(t time.Time) string {
	return t.Format("1/2/2006")
}

// Years returns n statutory years as a duration.
func Years(n int) time.Duration {
	return time.Duration(n) * Year
}

// CeilDays converts a remaining duration to whole days, rounding up.
func CeilDays(d time.Duration) int {
	days := int(d / Day)
	if d%Day > 0 {
		days++
	}
	return days
}

// DaysIn reports the whole days spanned by d, rounding to nearest.
func DaysIn(d time.Duration) int {
	return int((d + Day/2) / Day)
}
