package pos

import (
	"fmt"
	"testing"
)

func TestFilterMatch(t *testing.T) {
	o := gcashOrder("WP20250601-002", "Ben Cruz", "2025-06-01 11:20:00", 245)

	testCases := []struct {
		name   string
		filter Filter
		want   bool
	}{
		{name: "all sentinel", filter: Filter{Status: StatusAll}, want: true},
		{name: "status exact match", filter: Filter{Status: "Pending"}, want: true},
		{name: "status mismatch", filter: Filter{Status: "Completed"}, want: false},
		{name: "query matches id", filter: Filter{Query: "wp20250601"}, want: true},
		{name: "query matches name", filter: Filter{Query: "cruz"}, want: true},
		{name: "query matches items", filter: Filter{Query: "halo"}, want: true},
		{name: "query matches nothing", filter: Filter{Query: "adobo"}, want: false},
		{name: "status and query both apply", filter: Filter{Status: "Pending", Query: "cruz"}, want: true},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.filter.Match(o); got != tc.want {
				t.Errorf("Match(%+v) = %v, want %v", tc.filter, got, tc.want)
			}
		})
	}
}

func TestSortOrders(t *testing.T) {
	make3 := func() []*Order {
		return []*Order{
			cashOrder("WP20250601-001", "Cely", "2025-06-01 10:00:00", 90, "100.00"),
			cashOrder("WP20250601-002", "ana", "2025-06-02 10:00:00", 30, "30.00"),
			cashOrder("WP20250601-003", "Ben", "2025-06-03 10:00:00", 60, "60.00"),
		}
	}
	testCases := []struct {
		name string
		key  SortKey
		want []string // expected id order
	}{
		{name: "date asc", key: ByDateAsc, want: []string{"WP20250601-001", "WP20250601-002", "WP20250601-003"}},
		{name: "date desc", key: ByDateDesc, want: []string{"WP20250601-003", "WP20250601-002", "WP20250601-001"}},
		{name: "name a-z case insensitive", key: ByNameAsc, want: []string{"WP20250601-002", "WP20250601-003", "WP20250601-001"}},
		{name: "name z-a", key: ByNameDesc, want: []string{"WP20250601-001", "WP20250601-003", "WP20250601-002"}},
		{name: "amount asc", key: ByAmountAsc, want: []string{"WP20250601-002", "WP20250601-003", "WP20250601-001"}},
		{name: "amount desc", key: ByAmountDesc, want: []string{"WP20250601-001", "WP20250601-003", "WP20250601-002"}},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			orders := make3()
			SortOrders(orders, tc.key)
			for i, want := range tc.want {
				if orders[i].ID != want {
					t.Fatalf("orders[%d] = %s, want %s", i, orders[i].ID, want)
				}
			}
		})
	}
}

func TestSortOrdersNilSafe(t *testing.T) {
	orders := []*Order{
		nil,
		cashOrder("WP20250601-001", "Ana", "2025-06-01 10:00:00", 90, "100.00"),
	}
	SortOrders(orders, ByNameAsc)
	if orders[0] == nil || orders[1] != nil {
		t.Error("nil orders must sort after non-nil")
	}
}

func TestPaginate(t *testing.T) {
	items := make([]int, 23)
	for i := range items {
		items[i] = i + 1
	}

	testCases := []struct {
		name      string
		page      int
		size      int
		wantFirst int
		wantLen   int
		wantPage  int
		wantPages int
	}{
		{name: "first page", page: 1, size: 10, wantFirst: 1, wantLen: 10, wantPage: 1, wantPages: 3},
		{name: "last partial page", page: 3, size: 10, wantFirst: 21, wantLen: 3, wantPage: 3, wantPages: 3},
		{name: "beyond bounds clamps", page: 99, size: 10, wantFirst: 21, wantLen: 3, wantPage: 3, wantPages: 3},
		{name: "below bounds clamps", page: 0, size: 10, wantFirst: 1, wantLen: 10, wantPage: 1, wantPages: 3},
		{name: "page size 15", page: 2, size: 15, wantFirst: 16, wantLen: 8, wantPage: 2, wantPages: 2},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, page, pages := Paginate(items, tc.page, tc.size)
			if page != tc.wantPage || pages != tc.wantPages {
				t.Fatalf("page/pages = %d/%d, want %d/%d", page, pages, tc.wantPage, tc.wantPages)
			}
			if len(got) != tc.wantLen || (tc.wantLen > 0 && got[0] != tc.wantFirst) {
				t.Fatalf("page items = %v", got)
			}
		})
	}

	t.Run("empty input", func(t *testing.T) {
		got, page, pages := Paginate([]int{}, 5, 10)
		if len(got) != 0 || page != 1 || pages != 1 {
			t.Errorf("Paginate(empty) = %v, %d, %d", got, page, pages)
		}
	})
}

// Filter, sort and paginate compose: 42 orders filtered to 7 by status,
// sorted by amount descending, page 2 of size 5 returns ranks 6 and 7.
func TestFilterSortPageComposition(t *testing.T) {
	var orders []*Order
	for i := 1; i <= 42; i++ {
		o := cashOrder(fmt.Sprintf("WP20250601-%03d", i), fmt.Sprintf("Customer %d", i),
			"2025-06-01 10:00:00", float64(10*i), "0.00")
		if i%6 == 0 { // 7 of 42
			o.Status = Completed
		} else {
			o.Status = Pending
		}
		orders = append(orders, o)
	}

	filtered := FilterOrders(orders, Filter{Status: "Completed"})
	if len(filtered) != 7 {
		t.Fatalf("filtered = %d orders, want 7", len(filtered))
	}
	SortOrders(filtered, ByAmountDesc)
	page, pageNo, pages := Paginate(filtered, 2, 5)
	if pageNo != 2 || pages != 2 {
		t.Fatalf("page/pages = %d/%d, want 2/2", pageNo, pages)
	}
	if len(page) != 2 {
		t.Fatalf("page has %d orders, want 2", len(page))
	}
	// Amounts descend 420,360,...,60: ranks 6 and 7 are 120 and 60.
	if !page[0].Total.Equal(PHP(120)) || !page[1].Total.Equal(PHP(60)) {
		t.Errorf("page = %s (%s), %s (%s)", page[0].ID, page[0].Total, page[1].ID, page[1].Total)
	}
}
