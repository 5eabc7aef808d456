package model

import (
	"time"

	"github.com/m-mizutani/goerr/v2"
)

// DateLayout is the layout of dataset date keys and date inputs
const DateLayout = "2006-01-02"

// ParseDate parses an ISO calendar date into UTC midnight of that day
func ParseDate(s string) (time.Time, error) {
	t, err := time.ParseInLocation(DateLayout, s, time.UTC)
	if err != nil {
		return time.Time{}, goerr.Wrap(err, "failed to parse date", goerr.V("date", s))
	}
	return t, nil
}

// CalendarDate truncates t to midnight of its UTC calendar day
func CalendarDate(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// FormatDate renders t as an ISO calendar date
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// FormatLabel renders the short chart axis label, e.g. "1 - Jan"
func FormatLabel(t time.Time) string {
	return t.Format("2 - Jan")
}

// FormatLongDate renders a label with year, e.g. "1 Jan 2024"
func FormatLongDate(t time.Time) string {
	return t.Format("2 Jan 2006")
}
