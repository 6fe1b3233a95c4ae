package pos

import (
	"sort"
	"strings"

	"github.com/wrapnpack/pos/date"
)

// Growth compares a window's revenue to the window of equal length
// immediately before it. When the previous window had no revenue but the
// current one does, there is no meaningful percentage: NewSales is set
// instead of dividing by zero.
type Growth struct {
	Rate     Percent
	NewSales bool
}

func (g Growth) String() string {
	if g.NewSales {
		return "new sales"
	}
	return g.Rate.SignedString()
}

// Summary provides the at-a-glance KPI figures for a resolved reporting
// window. Every figure degrades to zero on sparse data, a window with no
// orders must render, not crash.
type Summary struct {
	Window date.Range

	TotalOrders     int
	CompletedOrders int
	CompletionRate  Percent

	TotalRevenue  Money
	AvgOrderValue Money

	CustomerRetention Percent
	Growth            Growth
	BestSellingItem   string
}

// NewSummary computes the KPI summary of the ledger over a window.
func NewSummary(l *Ledger, window date.Range) *Summary {
	s := &Summary{Window: window, TotalRevenue: M(0), AvgOrderValue: M(0)}

	for _, o := range l.orders {
		if !window.Contains(o.Date()) {
			continue
		}
		s.TotalOrders++
		if o.Status == Completed {
			s.CompletedOrders++
		}
	}
	if s.TotalOrders > 0 {
		s.CompletionRate = Percent(100 * float64(s.CompletedOrders) / float64(s.TotalOrders))
	}

	sales := salesIn(l.sales, window)
	for _, r := range sales {
		s.TotalRevenue = s.TotalRevenue.Add(r.Amount)
	}
	if s.CompletedOrders > 0 {
		s.AvgOrderValue = s.TotalRevenue.DivInt(s.CompletedOrders)
	}

	s.CustomerRetention = retention(sales)
	s.Growth = growth(revenue(salesIn(l.sales, window.Previous())), s.TotalRevenue)
	s.BestSellingItem = bestSellingItem(sales)
	return s
}

func salesIn(sales []SaleRecord, window date.Range) []SaleRecord {
	out := make([]SaleRecord, 0, len(sales))
	for _, r := range sales {
		if window.Contains(r.Date()) {
			out = append(out, r)
		}
	}
	return out
}

func revenue(sales []SaleRecord) Money {
	total := M(0)
	for _, r := range sales {
		total = total.Add(r.Amount)
	}
	return total
}

// retention is the share of the window's distinct customers that bought
// more than once. Customers are keyed by normalized name, the ledger has
// no customer ids.
func retention(sales []SaleRecord) Percent {
	purchases := make(map[string]int)
	for _, r := range sales {
		key := strings.ToLower(strings.TrimSpace(r.CustomerName))
		if key == "" {
			continue
		}
		purchases[key]++
	}
	if len(purchases) == 0 {
		return 0
	}
	repeat := 0
	for _, n := range purchases {
		if n > 1 {
			repeat++
		}
	}
	return Percent(100 * float64(repeat) / float64(len(purchases)))
}

func growth(previous, current Money) Growth {
	if previous.IsZero() {
		if current.IsZero() {
			return Growth{}
		}
		return Growth{NewSales: true}
	}
	delta := current.Sub(previous).AsFloat()
	return Growth{Rate: Percent(100 * delta / previous.AsFloat())}
}

// bestSellingItem aggregates quantities across the window's sales and
// returns the item with the highest total. Ties break alphabetically so
// the figure is deterministic.
func bestSellingItem(sales []SaleRecord) string {
	quantities := make(map[string]int)
	for _, r := range sales {
		for _, it := range r.Items {
			quantities[it.Name] += it.Qty
		}
	}
	if len(quantities) == 0 {
		return ""
	}
	names := make([]string, 0, len(quantities))
	for name := range quantities {
		names = append(names, name)
	}
	sort.Strings(names)
	best := names[0]
	for _, name := range names[1:] {
		if quantities[name] > quantities[best] {
			best = name
		}
	}
	return best
}
