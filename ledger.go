package pos

import (
	"fmt"
	"strings"
	"time"

	"github.com/wrapnpack/pos/date"
)

// Ledger holds the in-memory order and sale collections the views read
// and mutate. It preserves ingestion order. The ledger itself is not
// safe for concurrent use; the Store serializes access to it.
type Ledger struct {
	orders []*Order
	index  map[string]*Order // orders by id
	sales  []SaleRecord
}

// NewLedger creates an empty ledger.
func NewLedger() *Ledger {
	return &Ledger{index: make(map[string]*Order)}
}

// Orders returns the orders in ingestion order. The slice is a copy, the
// orders are shared.
func (l *Ledger) Orders() []*Order {
	return append([]*Order(nil), l.orders...)
}

// Sales returns the sales in ingestion order.
func (l *Ledger) Sales() []SaleRecord {
	return append([]SaleRecord(nil), l.sales...)
}

// Order returns the order with this id, or nil if unknown.
func (l *Ledger) Order(id string) *Order { return l.index[id] }

// SaleFor returns the sale derived from this order, or nil if none was
// recorded. Finalize uses it to stay idempotent.
func (l *Ledger) SaleFor(orderID string) *SaleRecord {
	for i := range l.sales {
		if l.sales[i].OrderID == orderID {
			return &l.sales[i]
		}
	}
	return nil
}

// AddOrder appends an order to the ledger.
func (l *Ledger) AddOrder(o *Order) error {
	if o.ID == "" {
		return fmt.Errorf("order has no id")
	}
	if _, dup := l.index[o.ID]; dup {
		return fmt.Errorf("duplicate order id %s", o.ID)
	}
	l.orders = append(l.orders, o)
	l.index[o.ID] = o
	return nil
}

// removeOrder undoes an optimistic AddOrder after a failed save.
func (l *Ledger) removeOrder(id string) {
	for i, o := range l.orders {
		if o.ID == id {
			l.orders = append(l.orders[:i], l.orders[i+1:]...)
			break
		}
	}
	delete(l.index, id)
}

// addSale appends a sale record. Sales are immutable once added.
func (l *Ledger) addSale(r SaleRecord) { l.sales = append(l.sales, r) }

// replace swaps in freshly loaded collections. Only Refresh calls it, and
// only after both loads succeeded.
func (l *Ledger) replace(orders []*Order, sales []SaleRecord) {
	index := make(map[string]*Order, len(orders))
	for _, o := range orders {
		index[o.ID] = o
	}
	l.orders = orders
	l.index = index
	l.sales = sales
}

// NextOrderID mints the id for a new order placed on the given day:
// WP<day> plus a 3-digit sequence counting the day's existing orders.
// Not safe under concurrent creation, two concurrent callers can read the
// same count; the Store serializes creation to prevent that.
func (l *Ledger) NextOrderID(on date.Date) string {
	prefix := orderIDPrefix(on)
	count := 0
	for _, o := range l.orders {
		if strings.HasPrefix(o.ID, prefix) {
			count++
		}
	}
	return FormatOrderID(on, count+1)
}

// NewOrder creates a Pending order, mints its id and appends it to the
// ledger. The caller computes the total (usually via the catalog) and
// persists through the Store.
func (l *Ledger) NewOrder(customer, contact string, items []Item, method PaymentMethod, details PaymentDetails, total Money, at time.Time) (*Order, error) {
	if details == nil {
		details = paymentDetailsOf(method, "", "")
	}
	o := &Order{
		ID:            l.NextOrderID(date.Of(at)),
		CustomerName:  customer,
		ContactNumber: contact,
		Items:         items,
		TotalItems:    TotalQuantity(items),
		Total:         total,
		Method:        method,
		OrderedAt:     date.FormatTime(at),
		Status:        Pending,
		Payment:       Unpaid,
		Details:       details,
	}
	if err := l.AddOrder(o); err != nil {
		return nil, err
	}
	return o, nil
}
