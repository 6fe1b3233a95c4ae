package pos

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/wrapnpack/pos/date"
)

// OrderStatus is the fulfilment state of an order. Any status is
// reachable from any other: the outlet's workflow corrects mistakes by
// reassigning freely, so no transition graph is enforced.
type OrderStatus string

const (
	Pending    OrderStatus = "Pending"
	InProgress OrderStatus = "In Progress"
	Completed  OrderStatus = "Completed"
	Cancelled  OrderStatus = "Cancelled"
)

// OrderStatuses lists the valid order statuses in display order.
var OrderStatuses = []OrderStatus{Pending, InProgress, Completed, Cancelled}

// ParseOrderStatus validates membership in the four-value enum.
func ParseOrderStatus(s string) (OrderStatus, error) {
	for _, st := range OrderStatuses {
		if string(st) == s {
			return st, nil
		}
	}
	return "", fmt.Errorf("%w: order status %q", ErrInvalidStatus, s)
}

// PaymentStatus is the settlement state of an order. It is stored
// independently of the order status and is never re-derived after
// creation.
type PaymentStatus string

const (
	Unpaid   PaymentStatus = "Unpaid"
	Paid     PaymentStatus = "Paid"
	Failed   PaymentStatus = "Failed"
	Refunded PaymentStatus = "Refunded"
)

var PaymentStatuses = []PaymentStatus{Unpaid, Paid, Failed, Refunded}

func ParsePaymentStatus(s string) (PaymentStatus, error) {
	for _, st := range PaymentStatuses {
		if string(st) == s {
			return st, nil
		}
	}
	return "", fmt.Errorf("%w: payment status %q", ErrInvalidStatus, s)
}

// legacyPaymentStatus back-fills the payment status from a lone order
// status, the only status old data carries. Applied once at load time;
// later status edits do not re-derive it.
func legacyPaymentStatus(s OrderStatus) PaymentStatus {
	switch s {
	case Completed:
		return Paid
	case Cancelled:
		return Refunded
	default:
		return Unpaid
	}
}

// PaymentMethod is how the customer pays.
type PaymentMethod string

const (
	Cash  PaymentMethod = "Cash"
	GCash PaymentMethod = "GCash"
	Maya  PaymentMethod = "Maya"
)

var PaymentMethods = []PaymentMethod{Cash, GCash, Maya}

func ParsePaymentMethod(s string) (PaymentMethod, error) {
	for _, m := range PaymentMethods {
		if string(m) == s {
			return m, nil
		}
	}
	return "", fmt.Errorf("unknown payment method %q", s)
}

// IsDigital reports whether the method settles through an external
// provider and therefore carries a transaction reference.
func (m PaymentMethod) IsDigital() bool { return m != Cash }

// PaymentDetails carries the method-specific payment data. The backing
// files overload a single column for it (cash amount for cash orders,
// provider timestamp for digital ones); in memory the meaning is explicit
// in the type.
type PaymentDetails interface{ paymentDetails() }

// CashPayment records the amount of cash received.
type CashPayment struct{ Received decimal.Decimal }

// DigitalPayment records the provider transaction id and its timestamp.
type DigitalPayment struct{ Reference, Timestamp string }

func (CashPayment) paymentDetails()    {}
func (DigitalPayment) paymentDetails() {}

// paymentDetailsOf rebuilds the tagged details from the two wire columns.
// For cash orders a blank or unparseable amount becomes zero, never a
// stray value.
func paymentDetailsOf(method PaymentMethod, reference, cashOrTimestamp string) PaymentDetails {
	if method.IsDigital() {
		return DigitalPayment{Reference: reference, Timestamp: cashOrTimestamp}
	}
	return CashPayment{Received: parseAmountOrZero(cashOrTimestamp)}
}

// wire returns the two overloaded columns for the backing files.
func wireDetails(d PaymentDetails) (reference, cashOrTimestamp string) {
	switch v := d.(type) {
	case DigitalPayment:
		return v.Reference, v.Timestamp
	case CashPayment:
		return "", v.Received.StringFixed(2)
	default:
		return "", decimal.Zero.StringFixed(2)
	}
}

// Item is one line of an order: a quantity of a named catalog item.
type Item struct {
	Qty  int
	Name string
}

// ParseItems reads the ";"-joined "<qty>x <name>" item list column.
// Tokens that do not carry a parseable quantity default to 1, the item
// list is display data and must never abort a load.
func ParseItems(s string) []Item {
	var items []Item
	for _, tok := range strings.Split(s, ";") {
		tok = strings.TrimSpace(tok)
		if tok == "" {
			continue
		}
		qty := 1
		name := tok
		if qs, rest, ok := strings.Cut(tok, "x "); ok {
			if n, err := strconv.Atoi(strings.TrimSpace(qs)); err == nil && n > 0 {
				qty = n
				name = strings.TrimSpace(rest)
			}
		}
		items = append(items, Item{Qty: qty, Name: name})
	}
	return items
}

// EncodeItems writes the item list column.
func EncodeItems(items []Item) string {
	toks := make([]string, 0, len(items))
	for _, it := range items {
		toks = append(toks, fmt.Sprintf("%dx %s", it.Qty, it.Name))
	}
	return strings.Join(toks, "; ")
}

// TotalQuantity sums item quantities.
func TotalQuantity(items []Item) int {
	total := 0
	for _, it := range items {
		total += it.Qty
	}
	return total
}

// Order is one ledger record. Orders are created Pending and reach
// durability only through Store.SaveOrders.
type Order struct {
	ID            string // "WP" + YYYYMMDD + "-" + 3-digit daily sequence
	CustomerName  string
	ContactNumber string
	Items         []Item
	TotalItems    int
	Total         Money
	Method        PaymentMethod
	OrderedAt     string // raw timestamp as stored, multiple historical layouts
	Status        OrderStatus
	Payment       PaymentStatus
	Details       PaymentDetails
}

// Time parses the order timestamp. A value that parses under none of the
// historical layouts resolves to now, which keeps date sorts and window
// membership total instead of failing.
func (o *Order) Time() time.Time {
	t, err := date.ParseTime(o.OrderedAt)
	if err != nil {
		return time.Now()
	}
	return t
}

// Date returns the day the order was placed.
func (o *Order) Date() date.Date { return date.Of(o.Time()) }

// SetStatus reassigns the order status. Only enum membership is checked.
func (o *Order) SetStatus(s OrderStatus) error {
	if _, err := ParseOrderStatus(string(s)); err != nil {
		return err
	}
	o.Status = s
	return nil
}

// SetPaymentStatus reassigns the payment status. Only enum membership is
// checked; it is deliberately not synced with the order status.
func (o *Order) SetPaymentStatus(s PaymentStatus) error {
	if _, err := ParsePaymentStatus(string(s)); err != nil {
		return err
	}
	o.Payment = s
	return nil
}

// orderIDPrefix returns the id prefix shared by all orders of a day.
func orderIDPrefix(on date.Date) string { return "WP" + on.Format("20060102") }

// FormatOrderID builds an order id from a day and a daily sequence number.
func FormatOrderID(on date.Date, seq int) string {
	return fmt.Sprintf("%s-%03d", orderIDPrefix(on), seq)
}
