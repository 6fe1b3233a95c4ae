package pos

import (
	"errors"
	"reflect"
	"testing"
)

func TestParseItems(t *testing.T) {
	testCases := []struct {
		name string
		in   string
		want []Item
	}{
		{
			name: "two items",
			in:   "2x Siopao; 1x Halo-Halo",
			want: []Item{{2, "Siopao"}, {1, "Halo-Halo"}},
		},
		{
			name: "quantity defaults to one",
			in:   "Siopao",
			want: []Item{{1, "Siopao"}},
		},
		{
			name: "empty tokens skipped",
			in:   "2x Siopao; ; 1x Lumpia;",
			want: []Item{{2, "Siopao"}, {1, "Lumpia"}},
		},
		{
			name: "blank",
			in:   "",
			want: nil,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := ParseItems(tc.in)
			if !reflect.DeepEqual(got, tc.want) {
				t.Errorf("ParseItems(%q) = %v, want %v", tc.in, got, tc.want)
			}
		})
	}
}

func TestEncodeItemsRoundTrip(t *testing.T) {
	items := []Item{{2, "Siopao"}, {1, "Halo-Halo"}, {3, "Lumpia"}}
	if got := ParseItems(EncodeItems(items)); !reflect.DeepEqual(got, items) {
		t.Errorf("round trip = %v, want %v", got, items)
	}
}

func TestSetStatus(t *testing.T) {
	o := gcashOrder("WP20250601-001", "Ana", "2025-06-01 10:00:00", 90)

	// Any status is reachable from any other.
	for _, s := range []OrderStatus{Completed, Pending, Cancelled, InProgress} {
		if err := o.SetStatus(s); err != nil {
			t.Fatalf("SetStatus(%s) = %v", s, err)
		}
		if o.Status != s {
			t.Fatalf("Status = %s, want %s", o.Status, s)
		}
	}

	// An unknown status is rejected and the prior value kept.
	err := o.SetStatus(OrderStatus("Archived"))
	if !errors.Is(err, ErrInvalidStatus) {
		t.Fatalf("SetStatus(Archived) = %v, want ErrInvalidStatus", err)
	}
	if o.Status != InProgress {
		t.Errorf("Status = %s, want prior value In Progress", o.Status)
	}
}

func TestLegacyPaymentStatus(t *testing.T) {
	testCases := []struct {
		status OrderStatus
		want   PaymentStatus
	}{
		{Completed, Paid},
		{Cancelled, Refunded},
		{Pending, Unpaid},
		{InProgress, Unpaid},
	}
	for _, tc := range testCases {
		if got := legacyPaymentStatus(tc.status); got != tc.want {
			t.Errorf("legacyPaymentStatus(%s) = %s, want %s", tc.status, got, tc.want)
		}
	}
}

func TestPaymentDetailsOf(t *testing.T) {
	// Cash with a blank amount defaults to zero, never a stray value.
	d := paymentDetailsOf(Cash, "", "")
	cash, ok := d.(CashPayment)
	if !ok {
		t.Fatalf("details = %T, want CashPayment", d)
	}
	if cash.Received.StringFixed(2) != "0.00" {
		t.Errorf("Received = %s, want 0.00", cash.Received.StringFixed(2))
	}

	// Digital keeps reference and timestamp verbatim.
	d = paymentDetailsOf(GCash, "GC-123", "2025-06-01 10:00:00")
	dig, ok := d.(DigitalPayment)
	if !ok {
		t.Fatalf("details = %T, want DigitalPayment", d)
	}
	if dig.Reference != "GC-123" || dig.Timestamp != "2025-06-01 10:00:00" {
		t.Errorf("DigitalPayment = %+v", dig)
	}
}

func TestDecodeOrderFieldCounts(t *testing.T) {
	full := orderFields(gcashOrder("WP20250601-002", "Ben Cruz", "2025-06-01 11:20:00", 245))

	t.Run("11 tokens", func(t *testing.T) {
		o, err := decodeOrder(full)
		if err != nil {
			t.Fatal(err)
		}
		if o.ContactNumber != "09179876543" {
			t.Errorf("ContactNumber = %q", o.ContactNumber)
		}
		if d, ok := o.Details.(DigitalPayment); !ok || d.Reference != "GC-88421" {
			t.Errorf("Details = %+v", o.Details)
		}
	})

	t.Run("10 tokens drops contact", func(t *testing.T) {
		fields := append(append([]string{}, full[:2]...), full[3:]...)
		o, err := decodeOrder(fields)
		if err != nil {
			t.Fatal(err)
		}
		if o.ContactNumber != "" {
			t.Errorf("ContactNumber = %q, want empty", o.ContactNumber)
		}
		if d, ok := o.Details.(DigitalPayment); !ok || d.Reference != "GC-88421" {
			t.Errorf("Details = %+v", o.Details)
		}
	})

	t.Run("9 tokens drops digital pair", func(t *testing.T) {
		fields := full[:9]
		o, err := decodeOrder(fields)
		if err != nil {
			t.Fatal(err)
		}
		if o.ContactNumber != "09179876543" {
			t.Errorf("ContactNumber = %q", o.ContactNumber)
		}
		d, ok := o.Details.(DigitalPayment)
		if !ok || d.Reference != "" || d.Timestamp != "" {
			t.Errorf("Details = %+v, want empty DigitalPayment", o.Details)
		}
	})

	t.Run("8 tokens drops both", func(t *testing.T) {
		fields := append(append([]string{}, full[:2]...), full[3:9]...)
		o, err := decodeOrder(fields)
		if err != nil {
			t.Fatal(err)
		}
		if o.ContactNumber != "" {
			t.Errorf("ContactNumber = %q, want empty", o.ContactNumber)
		}
	})

	t.Run("7 tokens is malformed", func(t *testing.T) {
		if _, err := decodeOrder(full[:7]); err == nil {
			t.Error("decodeOrder(7 fields) = nil error, want failure")
		}
	})
}

// Loading a legacy line back-fills the payment status from the order status.
func TestDecodeOrderBackfillsPayment(t *testing.T) {
	o := cashOrder("WP20250601-001", "Ana", "2025-06-01 10:00:00", 90, "100.00")
	o.Status = Cancelled
	decoded, err := decodeOrder(orderFields(o))
	if err != nil {
		t.Fatal(err)
	}
	if decoded.Payment != Refunded {
		t.Errorf("Payment = %s, want Refunded", decoded.Payment)
	}
}
