package renderer

import (
	"fmt"
	"io"
	"strings"

	"github.com/wrapnpack/pos"
)

// ReceiptMarkdown renders a printable receipt for a fully-resolved order
// and, when the order was finalized, its sale. The catalog re-derives the
// line-item prices; a drift between the stored total and the re-derived
// one is called out rather than silently reprinted.
func ReceiptMarkdown(o *pos.Order, sale *pos.SaleRecord, catalog pos.Catalog, category string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Receipt %s\n\n", o.ID)
	fmt.Fprintf(&b, "%s\n\n", o.OrderedAt)
	if o.CustomerName != "" {
		fmt.Fprintf(&b, "Customer: %s", o.CustomerName)
		if o.ContactNumber != "" {
			fmt.Fprintf(&b, " (%s)", o.ContactNumber)
		}
		fmt.Fprintln(&b)
		fmt.Fprintln(&b)
	}

	row(&b, "Qty", "Item", "Unit", "Line")
	rule(&b, 4)
	derived := pos.M(0)
	priced := true
	for _, it := range o.Items {
		unit, ok := catalog.PriceOf(category, it.Name)
		if !ok {
			priced = false
			row(&b, fmt.Sprintf("%d", it.Qty), it.Name, "?", "?")
			continue
		}
		line := pos.M(unit).MulInt(it.Qty)
		derived = derived.Add(line)
		row(&b, fmt.Sprintf("%d", it.Qty), it.Name, pos.M(unit).String(), line.String())
	}
	fmt.Fprintf(&b, "\n**Total: %s**\n", o.Total)

	ConditionalBlock(&b, func(w io.Writer) bool {
		if !priced || derived.Equal(o.Total) {
			return false
		}
		fmt.Fprintf(w, "\n> Catalog prices now total %s.\n", derived)
		return true
	})

	fmt.Fprintf(&b, "\nPaid by %s", o.Method)
	switch d := o.Details.(type) {
	case pos.CashPayment:
		received := pos.M(d.Received)
		fmt.Fprintf(&b, ", received %s", received)
		if o.Total.LessThan(received) {
			fmt.Fprintf(&b, ", change %s", received.Sub(o.Total))
		}
	case pos.DigitalPayment:
		fmt.Fprintf(&b, ", ref %s", d.Reference)
	}
	fmt.Fprintln(&b)

	if sale != nil {
		fmt.Fprintf(&b, "\nSale %s recorded %s\n", sale.ID, sale.SoldAt)
	}
	fmt.Fprintln(&b, "\nSalamat po!")
	return b.String()
}
