package pos

import (
	"fmt"
	"sort"
	"strings"
)

// StatusAll is the sentinel status filter matching every order.
const StatusAll = "All"

// Filter selects orders for a view. Status is an exact match against the
// order status, or StatusAll. Query is a case-insensitive substring
// matched against the order id, the customer name and the items list; any
// match passes.
type Filter struct {
	Status string
	Query  string
}

// Match reports whether the order passes the filter.
func (f Filter) Match(o *Order) bool {
	if o == nil {
		return false
	}
	if f.Status != "" && f.Status != StatusAll && string(o.Status) != f.Status {
		return false
	}
	if f.Query == "" {
		return true
	}
	q := strings.ToLower(f.Query)
	return strings.Contains(strings.ToLower(o.ID), q) ||
		strings.Contains(strings.ToLower(o.CustomerName), q) ||
		strings.Contains(strings.ToLower(EncodeItems(o.Items)), q)
}

// FilterOrders returns the orders passing the filter, ingestion order
// preserved.
func FilterOrders(orders []*Order, f Filter) []*Order {
	out := make([]*Order, 0, len(orders))
	for _, o := range orders {
		if f.Match(o) {
			out = append(out, o)
		}
	}
	return out
}

// SortKey selects a sort order for an order view.
type SortKey int

const (
	ByDateDesc SortKey = iota // newest first, the default view order
	ByDateAsc
	ByNameAsc
	ByNameDesc
	ByAmountAsc
	ByAmountDesc
	ByStatus
)

// ParseSortKey reads the sort selector the views use.
func ParseSortKey(s string) (SortKey, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "date", "date-desc", "newest":
		return ByDateDesc, nil
	case "date-asc", "oldest":
		return ByDateAsc, nil
	case "name", "name-asc":
		return ByNameAsc, nil
	case "name-desc":
		return ByNameDesc, nil
	case "amount", "amount-asc":
		return ByAmountAsc, nil
	case "amount-desc":
		return ByAmountDesc, nil
	case "status":
		return ByStatus, nil
	default:
		return ByDateDesc, fmt.Errorf("unknown sort key %q", s)
	}
}

// SortOrders sorts in place, stable so equal keys keep ingestion order.
// Nil entries sort after everything else. Date keys resolve unparseable
// timestamps to now; amount keys compare the symbol-stripped decimal;
// name keys compare case-insensitively.
func SortOrders(orders []*Order, key SortKey) {
	less := lessFunc(key)
	sort.SliceStable(orders, func(i, j int) bool {
		a, b := orders[i], orders[j]
		if a == nil {
			return false
		}
		if b == nil {
			return true
		}
		return less(a, b)
	})
}

func lessFunc(key SortKey) func(a, b *Order) bool {
	switch key {
	case ByDateAsc:
		return func(a, b *Order) bool { return a.Time().Before(b.Time()) }
	case ByDateDesc:
		return func(a, b *Order) bool { return b.Time().Before(a.Time()) }
	case ByNameAsc:
		return func(a, b *Order) bool {
			return strings.ToLower(a.CustomerName) < strings.ToLower(b.CustomerName)
		}
	case ByNameDesc:
		return func(a, b *Order) bool {
			return strings.ToLower(b.CustomerName) < strings.ToLower(a.CustomerName)
		}
	case ByAmountAsc:
		return func(a, b *Order) bool { return a.Total.Cmp(b.Total) < 0 }
	case ByAmountDesc:
		return func(a, b *Order) bool { return b.Total.Cmp(a.Total) < 0 }
	case ByStatus:
		return func(a, b *Order) bool { return a.Status < b.Status }
	default:
		return func(a, b *Order) bool { return b.Time().Before(a.Time()) }
	}
}

// Paginate slices one page out of items. The page index clamps into
// [1, pages]; out-of-bounds requests clamp rather than error. An empty
// input yields an empty page 1 of 1.
func Paginate[T any](items []T, page, size int) (pageItems []T, clamped, pages int) {
	if size < 1 {
		size = 10
	}
	pages = (len(items) + size - 1) / size
	if pages < 1 {
		pages = 1
	}
	if page < 1 {
		page = 1
	}
	if page > pages {
		page = pages
	}
	start := (page - 1) * size
	end := start + size
	if start > len(items) {
		start = len(items)
	}
	if end > len(items) {
		end = len(items)
	}
	return items[start:end], page, pages
}
