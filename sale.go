package pos

import (
	"fmt"
	"log"
	"regexp"
	"time"

	"github.com/shopspring/decimal"
	"github.com/wrapnpack/pos/date"
)

// SaleRecord is the immutable record appended when a completed order is
// finalized. One sale per order by convention; nothing enforces it at the
// file level.
type SaleRecord struct {
	ID            string // "S" + 3-digit sequence, globally monotonic
	OrderID       string
	CustomerName  string
	ContactNumber string
	Items         []Item
	TotalItems    int
	Amount        Money
	Method        PaymentMethod
	SoldAt        string
	Reference     string // provider transaction id, empty for cash
	CashReceived  decimal.Decimal
}

// Time parses the sale timestamp, resolving failures to now like orders do.
func (r SaleRecord) Time() time.Time {
	t, err := date.ParseTime(r.SoldAt)
	if err != nil {
		return time.Now()
	}
	return t
}

// Date returns the day of the sale.
func (r SaleRecord) Date() date.Date { return date.Of(r.Time()) }

// DeriveSale produces the sale record for an order being finalized. The
// order must be Completed. Cash orders propagate the received amount
// (blank defaults to zero); digital orders propagate the provider
// reference and record zero cash.
func DeriveSale(o *Order, id string, at time.Time) (SaleRecord, error) {
	if o.Status != Completed {
		return SaleRecord{}, fmt.Errorf("%w: cannot derive a sale from order %s with status %q", ErrInvalidState, o.ID, o.Status)
	}
	r := SaleRecord{
		ID:            id,
		OrderID:       o.ID,
		CustomerName:  o.CustomerName,
		ContactNumber: o.ContactNumber,
		Items:         o.Items,
		TotalItems:    o.TotalItems,
		Amount:        o.Total,
		Method:        o.Method,
		SoldAt:        date.FormatTime(at),
		CashReceived:  decimal.Zero,
	}
	switch d := o.Details.(type) {
	case CashPayment:
		r.CashReceived = d.Received
	case DigitalPayment:
		r.Reference = d.Reference
	}
	return r, nil
}

var saleIDPattern = regexp.MustCompile(`^S(\d{3})$`)

// NextSaleID scans existing sales for ids matching S + 3 digits and
// returns the next in sequence, starting at S001. Gaps are jumped over,
// never refilled: given S001, S002, S005 the next id is S006.
func NextSaleID(sales []SaleRecord) string {
	highest := 0
	for _, s := range sales {
		m := saleIDPattern.FindStringSubmatch(s.ID)
		if m == nil {
			continue
		}
		n := 0
		fmt.Sscanf(m[1], "%d", &n)
		if n > highest {
			highest = n
		}
	}
	return fmt.Sprintf("S%03d", highest+1)
}

// fallbackSaleID mints a unique id from the clock when the sales file
// cannot be scanned. It breaks the tidy sequence but never collides,
// losing the sequence is acceptable, losing the sale is not.
func fallbackSaleID(at time.Time) string {
	id := fmt.Sprintf("S%d", at.UnixNano())
	log.Printf("warning: could not scan sales for the next id, falling back to %s", id)
	return id
}
