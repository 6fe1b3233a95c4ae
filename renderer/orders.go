package renderer

import (
	"fmt"
	"strings"

	"github.com/wrapnpack/pos"
)

// OrdersMarkdown renders one page of the orders table.
func OrdersMarkdown(orders []*pos.Order, page, pages int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Orders\n\n")
	if len(orders) == 0 {
		fmt.Fprintln(&b, "No orders match.")
		return b.String()
	}

	row(&b, "Order", "Customer", "Items", "Total", "Method", "Placed", "Status", "Payment")
	rule(&b, 8)
	for _, o := range orders {
		if o == nil {
			continue
		}
		row(&b, o.ID, o.CustomerName, pos.EncodeItems(o.Items), o.Total.String(),
			string(o.Method), o.OrderedAt, string(o.Status), string(o.Payment))
	}
	fmt.Fprintf(&b, "\nPage %d of %d\n", page, pages)
	return b.String()
}

// SalesMarkdown renders one page of the sales table.
func SalesMarkdown(sales []pos.SaleRecord, page, pages int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Sales\n\n")
	if len(sales) == 0 {
		fmt.Fprintln(&b, "No sales recorded.")
		return b.String()
	}

	row(&b, "Sale", "Order", "Customer", "Items", "Amount", "Method", "Date")
	rule(&b, 7)
	for _, r := range sales {
		row(&b, r.ID, r.OrderID, r.CustomerName, pos.EncodeItems(r.Items),
			r.Amount.String(), string(r.Method), r.SoldAt)
	}
	fmt.Fprintf(&b, "\nPage %d of %d\n", page, pages)
	return b.String()
}
