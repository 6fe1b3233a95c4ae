package date

import "fmt"

// Range represents an inclusive range of dates.
type Range struct{ From, To Date }

// Contains return true if date is included in the range (boundaries included).
func (r Range) Contains(date Date) bool { return !date.Before(r.From) && !date.After(r.To) }

// Days returns the length of the range in days, boundaries included.
func (r Range) Days() int {
	return int(r.To.time().Sub(r.From.time()).Hours()/24) + 1
}

// Previous returns the range of equal length immediately preceding r.
// It is the comparison basis for growth figures.
func (r Range) Previous() Range {
	n := r.Days()
	return Range{From: r.From.Add(-n), To: r.From.Add(-1)}
}

func (r Range) String() string { return fmt.Sprintf("%s to %s", r.From, r.To) }
