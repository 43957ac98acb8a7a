package catalog

import (
	"strings"
	"time"
)

// ISODate is the storage layout for calendar dates.
const ISODate = "2006-01-02"

// Accepted input layouts: the date picker's MM/DD/YY and ISO itself.
var dateLayouts = []string{"01/02/06", ISODate}

// now is a seam for tests that need a fixed "today".
var now = time.Now

// ParseDate normalizes a user-entered date to the ISO form. Only MM/DD/YY and
// YYYY-MM-DD inputs are accepted.
func ParseDate(input string) (string, error) {
	trimmed := strings.TrimSpace(input)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, trimmed); err == nil {
			return t.Format(ISODate), nil
		}
	}
	return "", &ValidationError{Field: "date", Reason: "must be MM/DD/YY or YYYY-MM-DD"}
}

// Today returns the current calendar date in ISO form.
func Today() string {
	return now().Format(ISODate)
}

// beforePresent reports whether an ISO date falls strictly before today.
// ISO dates order lexicographically, so a string compare suffices.
func beforePresent(isoDate string) bool {
	return isoDate < Today()
}
