// Package date provides day-granularity dates, timestamp parsing for the
// ledger's human-readable date/time column, and the reporting windows used
// by the analytics engine.
package date

import (
	"fmt"
	"time"
)

const readDateFormat = "2006-1-2" // Permissive read date format (allows single-digit month/day).

// DateFormat is the format used to represent dates as strings in ISO-8601 format.
const DateFormat = "2006-01-02" // write date format

// TimeFormat is the canonical format for the date/time column of the ledger files.
const TimeFormat = "2006-01-02 15:04:05"

// Date represents a date with day-level granularity.
type Date struct {
	y int
	m time.Month
	d int
}

// New returns a normalized Date for the given year, month, and day.
func New(year int, month time.Month, day int) Date {
	d := Date{year, month, day}
	d.y, d.m, d.d = d.time().Date()
	return d
}

// Of returns the Date of a time.Time.
func Of(t time.Time) Date { return New(t.Date()) }

// time returns a time.Time that is a canonical representation of that day (at midnight UTC).
func (d Date) time() time.Time { return time.Date(d.y, d.m, d.d, 0, 0, 0, 0, time.UTC) }

// Year returns current year.
func (d Date) Year() int { return d.y }

// Month returns the month of the date.
func (d Date) Month() time.Month { return d.time().Month() }

// Day returns current day of the month.
func (d Date) Day() int { return d.d }

// Weekday returns the day of the week for the date.
func (d Date) Weekday() time.Weekday { return d.time().Weekday() }

// String format the date in ISO-8601.
func (d Date) String() string { return d.time().Format(DateFormat) }

// Format returns a textual representation of the date value formatted
// according to the layout defined by the argument. See [time.Format].
func (d Date) Format(format string) string { return d.time().Format(format) }

// IsZero returns true if the date is the zero value.
func (d Date) IsZero() bool { return d.y == 0 && d.m == 0 && d.d == 0 }

// Before reports whether the day d is before x.
func (d Date) Before(x Date) bool { return d.time().Before(x.time()) }

// After reports whether the day d is after x.
func (d Date) After(x Date) bool { return d.time().After(x.time()) }

// Today returns the current date.
func Today() Date { return New(time.Now().Date()) }

// Add returns a new Date with the given number of days added.
func (d Date) Add(i int) Date { return New(d.y, d.m, d.d+i) }

// StartOfWeek returns the Monday of the week d belongs to.
func (d Date) StartOfWeek() Date {
	offset := (int(d.Weekday()) - int(time.Monday) + 7) % 7
	return d.Add(-offset)
}

// StartOfMonth returns the first day of the month d belongs to.
func (d Date) StartOfMonth() Date { return New(d.y, d.m, 1) }

// StartOfYear returns January 1st of the year d belongs to.
func (d Date) StartOfYear() Date { return New(d.y, time.January, 1) }

// Parse parses a day-granularity date in ISO-8601, permissive about
// single-digit month and day.
func Parse(str string) (Date, error) {
	t, err := time.Parse(readDateFormat, str)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q: %w", str, err)
	}
	return New(t.Date()), nil
}

// MustParse is like Parse but panics on error.
func MustParse(str string) Date {
	d, err := Parse(str)
	if err != nil {
		panic(err)
	}
	return d
}

// timeFormats are the historical layouts found in the date/time column of
// the ledger files. New writes always use TimeFormat; reads accept all.
var timeFormats = []string{
	TimeFormat,
	"2006-01-02 15:04",
	time.RFC3339,
	"Jan 2, 2006 3:04 PM",
	"Jan 2, 2006 15:04",
	"01/02/2006 15:04",
	DateFormat,
}

// ParseTime parses a ledger timestamp, trying every historical layout.
func ParseTime(str string) (time.Time, error) {
	for _, layout := range timeFormats {
		if t, err := time.Parse(layout, str); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid timestamp %q", str)
}

// FormatTime formats a timestamp in the canonical ledger layout.
func FormatTime(t time.Time) string { return t.Format(TimeFormat) }
