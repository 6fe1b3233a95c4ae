package pos

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/wrapnpack/pos/date"
)

// PHP is a helper for tests to create pesos from a const.
func PHP(v float64) Money { return M(v) }

// at is a helper for tests to build a canonical ledger timestamp.
func at(s string) time.Time {
	t, err := date.ParseTime(s)
	if err != nil {
		panic(err)
	}
	return t
}

// cashOrder builds a completed cash order fixture.
func cashOrder(id, customer, orderedAt string, total float64, received string) *Order {
	items := []Item{{Qty: 2, Name: "Siopao"}}
	return &Order{
		ID:            id,
		CustomerName:  customer,
		ContactNumber: "09171234567",
		Items:         items,
		TotalItems:    TotalQuantity(items),
		Total:         PHP(total),
		Method:        Cash,
		OrderedAt:     orderedAt,
		Status:        Completed,
		Payment:       Paid,
		Details:       CashPayment{Received: parseAmountOrZero(received)},
	}
}

// gcashOrder builds a pending GCash order fixture.
func gcashOrder(id, customer, orderedAt string, total float64) *Order {
	items := []Item{{Qty: 1, Name: "Halo-Halo"}, {Qty: 3, Name: "Lumpia"}}
	return &Order{
		ID:            id,
		CustomerName:  customer,
		ContactNumber: "09179876543",
		Items:         items,
		TotalItems:    TotalQuantity(items),
		Total:         PHP(total),
		Method:        GCash,
		OrderedAt:     orderedAt,
		Status:        Pending,
		Payment:       Unpaid,
		Details:       DigitalPayment{Reference: "GC-88421", Timestamp: orderedAt},
	}
}

// sale builds a sale record fixture in the given amount.
func sale(id, orderID, customer, soldAt string, amount float64, items ...Item) SaleRecord {
	if len(items) == 0 {
		items = []Item{{Qty: 1, Name: "Siopao"}}
	}
	return SaleRecord{
		ID:           id,
		OrderID:      orderID,
		CustomerName: customer,
		Items:        items,
		TotalItems:   TotalQuantity(items),
		Amount:       PHP(amount),
		Method:       Cash,
		SoldAt:       soldAt,
		CashReceived: decimal.Zero,
	}
}
