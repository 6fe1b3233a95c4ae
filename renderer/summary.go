package renderer

import (
	"fmt"
	"io"
	"strings"

	"github.com/wrapnpack/pos"
)

// SummaryMarkdown renders the KPI summary of a reporting window.
func SummaryMarkdown(s *pos.Summary) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Sales Summary\n\n")
	fmt.Fprintf(&b, "%s to %s\n\n", s.Window.From, s.Window.To)

	row(&b, "KPI", "Value")
	rule(&b, 2)
	row(&b, "Total Orders", fmt.Sprintf("%d", s.TotalOrders))
	row(&b, "Completed Orders", fmt.Sprintf("%d", s.CompletedOrders))
	row(&b, "Completion Rate", s.CompletionRate.String())
	row(&b, "Total Revenue", s.TotalRevenue.String())
	row(&b, "Avg Order Value", s.AvgOrderValue.String())
	row(&b, "Customer Retention", s.CustomerRetention.String())
	row(&b, "Growth", s.Growth.String())

	ConditionalBlock(&b, func(w io.Writer) bool {
		if s.BestSellingItem == "" {
			return false
		}
		fmt.Fprintf(w, "\nBest seller: **%s**\n", s.BestSellingItem)
		return true
	})
	return b.String()
}
