package date

import "strings"

// Window is a symbolic reporting period resolved against a reference date.
type Window int

const (
	Daily Window = iota
	Weekly
	Last7Days
	Last14Days
	Last30Days
	Last90Days
	Monthly
	Yearly
)

// String returns the display name the views use for the window.
func (w Window) String() string {
	switch w {
	case Daily:
		return "Today"
	case Weekly:
		return "This Week"
	case Last7Days:
		return "Last 7 Days"
	case Last14Days:
		return "Last 14 Days"
	case Last30Days:
		return "Last 30 Days"
	case Last90Days:
		return "Last 90 Days"
	case Monthly:
		return "This Month"
	case Yearly:
		return "This Year"
	default:
		return "Last 30 Days"
	}
}

// ParseWindow resolves a symbolic period name. Unknown names fall back to
// Last 30 Days rather than erroring, so a stale selector in a view never
// breaks a report.
func ParseWindow(name string) Window {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "today", "day", "daily":
		return Daily
	case "this week", "week", "weekly":
		return Weekly
	case "last 7 days", "7d":
		return Last7Days
	case "last 14 days", "14d":
		return Last14Days
	case "last 30 days", "30d":
		return Last30Days
	case "last 90 days", "90d":
		return Last90Days
	case "this month", "month", "monthly":
		return Monthly
	case "this year", "year", "yearly":
		return Yearly
	default:
		return Last30Days
	}
}

// Resolve anchors the window on a reference date and returns the inclusive
// date range it covers.
func (w Window) Resolve(on Date) Range {
	switch w {
	case Daily:
		return Range{From: on, To: on}
	case Weekly:
		return Range{From: on.StartOfWeek(), To: on}
	case Last7Days:
		return Range{From: on.Add(-6), To: on}
	case Last14Days:
		return Range{From: on.Add(-13), To: on}
	case Last90Days:
		return Range{From: on.Add(-89), To: on}
	case Monthly:
		return Range{From: on.StartOfMonth(), To: on}
	case Yearly:
		return Range{From: on.StartOfYear(), To: on}
	default: // Last30Days and any unknown value
		return Range{From: on.Add(-29), To: on}
	}
}
