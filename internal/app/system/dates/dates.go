// Package dates handles the calendar-date strings used by announcements.
//
// All announcement dates are plain "YYYY-MM-DD" strings with no time
// component. Storing them as strings keeps Mongo range queries simple:
// for ISO dates, lexicographic order is chronological order.
package dates

import "time"

// Layout is the only accepted calendar date format.
const Layout = "2006-01-02"

// Valid reports whether s is a well-formed YYYY-MM-DD calendar date.
// Parsing is strict: months and days must be zero-padded.
func Valid(s string) bool {
	_, err := time.Parse(Layout, s)
	return err == nil
}

// Today returns the current calendar date in the server's local time zone.
func Today() string {
	return time.Now().Format(Layout)
}

// ActiveOn reports whether an announcement with the given window is active
// on date d. A nil start means the window is open-ended at the front.
func ActiveOn(d string, start *string, expiration string) bool {
	if expiration < d {
		return false
	}
	return start == nil || *start <= d
}
