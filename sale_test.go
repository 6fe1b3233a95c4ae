package pos

import (
	"errors"
	"strings"
	"testing"
)

func TestDeriveSale(t *testing.T) {
	t.Run("completed cash order", func(t *testing.T) {
		o := cashOrder("WP20250601-001", "Ana", "2025-06-01 10:00:00", 90, "100.00")
		r, err := DeriveSale(o, "S001", at("2025-06-01 12:00:00"))
		if err != nil {
			t.Fatal(err)
		}
		if r.OrderID != o.ID || r.CustomerName != "Ana" {
			t.Errorf("sale = %+v", r)
		}
		if r.CashReceived.StringFixed(2) != "100.00" {
			t.Errorf("CashReceived = %s, want 100.00", r.CashReceived.StringFixed(2))
		}
		if r.Reference != "" {
			t.Errorf("Reference = %q, want empty for cash", r.Reference)
		}
	})

	t.Run("cash order with blank amount defaults to 0.00", func(t *testing.T) {
		o := cashOrder("WP20250601-002", "Ben", "2025-06-01 10:00:00", 90, "")
		r, err := DeriveSale(o, "S002", at("2025-06-01 12:00:00"))
		if err != nil {
			t.Fatal(err)
		}
		if r.CashReceived.StringFixed(2) != "0.00" {
			t.Errorf("CashReceived = %s, want 0.00", r.CashReceived.StringFixed(2))
		}
	})

	t.Run("digital order propagates reference", func(t *testing.T) {
		o := gcashOrder("WP20250601-003", "Cely", "2025-06-01 10:00:00", 245)
		o.Status = Completed
		r, err := DeriveSale(o, "S003", at("2025-06-01 12:00:00"))
		if err != nil {
			t.Fatal(err)
		}
		if r.Reference != "GC-88421" {
			t.Errorf("Reference = %q, want GC-88421", r.Reference)
		}
		if r.CashReceived.StringFixed(2) != "0.00" {
			t.Errorf("CashReceived = %s, want 0.00", r.CashReceived.StringFixed(2))
		}
	})

	t.Run("non-completed order is rejected", func(t *testing.T) {
		o := gcashOrder("WP20250601-004", "Dan", "2025-06-01 10:00:00", 245)
		_, err := DeriveSale(o, "S004", at("2025-06-01 12:00:00"))
		if !errors.Is(err, ErrInvalidState) {
			t.Fatalf("DeriveSale(Pending) = %v, want ErrInvalidState", err)
		}
	})
}

func TestNextSaleID(t *testing.T) {
	testCases := []struct {
		name string
		ids  []string
		want string
	}{
		{name: "empty starts at S001", ids: nil, want: "S001"},
		{name: "increments highest", ids: []string{"S001", "S002"}, want: "S003"},
		{name: "gaps are jumped over", ids: []string{"S001", "S002", "S005"}, want: "S006"},
		{name: "fallback ids are ignored", ids: []string{"S001", "S1749810000000000000"}, want: "S002"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			sales := make([]SaleRecord, 0, len(tc.ids))
			for _, id := range tc.ids {
				sales = append(sales, SaleRecord{ID: id})
			}
			if got := NextSaleID(sales); got != tc.want {
				t.Errorf("NextSaleID(%v) = %s, want %s", tc.ids, got, tc.want)
			}
		})
	}
}

func TestFallbackSaleID(t *testing.T) {
	a := fallbackSaleID(at("2025-06-01 12:00:00"))
	b := fallbackSaleID(at("2025-06-01 12:00:01"))
	if !strings.HasPrefix(a, "S") || a == b {
		t.Errorf("fallback ids %q and %q should differ and keep the S prefix", a, b)
	}
}
