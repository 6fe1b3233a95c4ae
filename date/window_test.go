package date

import "testing"

func TestWindowResolve(t *testing.T) {
	on := MustParse("2025-06-18") // a Wednesday

	testCases := []struct {
		name     string
		window   Window
		wantFrom string
		wantTo   string
	}{
		{name: "today", window: Daily, wantFrom: "2025-06-18", wantTo: "2025-06-18"},
		{name: "this week", window: Weekly, wantFrom: "2025-06-16", wantTo: "2025-06-18"},
		{name: "last 7 days", window: Last7Days, wantFrom: "2025-06-12", wantTo: "2025-06-18"},
		{name: "last 14 days", window: Last14Days, wantFrom: "2025-06-05", wantTo: "2025-06-18"},
		{name: "last 30 days", window: Last30Days, wantFrom: "2025-05-20", wantTo: "2025-06-18"},
		{name: "last 90 days", window: Last90Days, wantFrom: "2025-03-21", wantTo: "2025-06-18"},
		{name: "this month", window: Monthly, wantFrom: "2025-06-01", wantTo: "2025-06-18"},
		{name: "this year", window: Yearly, wantFrom: "2025-01-01", wantTo: "2025-06-18"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := tc.window.Resolve(on)
			want := Range{From: MustParse(tc.wantFrom), To: MustParse(tc.wantTo)}
			if got != want {
				t.Errorf("Resolve() = %v, want %v", got, want)
			}
		})
	}
}

func TestParseWindowFallback(t *testing.T) {
	if got := ParseWindow("Fortnight of Madness"); got != Last30Days {
		t.Errorf("ParseWindow(unknown) = %v, want Last30Days", got)
	}
	if got := ParseWindow("This Week"); got != Weekly {
		t.Errorf("ParseWindow(This Week) = %v, want Weekly", got)
	}
}

func TestRangePrevious(t *testing.T) {
	r := Range{From: MustParse("2025-06-12"), To: MustParse("2025-06-18")}
	if n := r.Days(); n != 7 {
		t.Fatalf("Days() = %d, want 7", n)
	}
	prev := r.Previous()
	want := Range{From: MustParse("2025-06-05"), To: MustParse("2025-06-11")}
	if prev != want {
		t.Errorf("Previous() = %v, want %v", prev, want)
	}
	// Previous of a single day is the day before.
	day := Range{From: MustParse("2025-06-18"), To: MustParse("2025-06-18")}
	if got := day.Previous(); got != (Range{From: MustParse("2025-06-17"), To: MustParse("2025-06-17")}) {
		t.Errorf("Previous(single day) = %v", got)
	}
}
