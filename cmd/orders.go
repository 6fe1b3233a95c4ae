package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/wrapnpack/pos"
	"github.com/wrapnpack/pos/renderer"
)

// ordersCmd holds the flags for the 'orders' subcommand.
type ordersCmd struct {
	status string
	query  string
	sortBy string
	page   int
	size   int
}

func (*ordersCmd) Name() string     { return "orders" }
func (*ordersCmd) Synopsis() string { return "display a filtered, sorted page of orders" }
func (*ordersCmd) Usage() string {
	return `wpos orders [-status <status>] [-q <text>] [-sort <key>] [-page n] [-size n]

  Displays one page of the orders table. The status filter accepts the
  four order statuses or All; the free-text filter matches order id,
  customer name and items.
`
}

func (c *ordersCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.status, "status", pos.StatusAll, "Status filter (Pending, In Progress, Completed, Cancelled, All)")
	f.StringVar(&c.query, "q", "", "Free-text filter over id, customer and items")
	f.StringVar(&c.sortBy, "sort", "date-desc", "Sort key (date-asc, date-desc, name-asc, name-desc, amount-asc, amount-desc, status)")
	f.IntVar(&c.page, "page", 1, "Page number, clamped into range")
	f.IntVar(&c.size, "size", 10, "Page size")
}

func (c *ordersCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	key, err := pos.ParseSortKey(c.sortBy)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	store, err := openStore()
	if err != nil {
		return fail(err)
	}

	orders := pos.FilterOrders(store.Ledger().Orders(), pos.Filter{Status: c.status, Query: c.query})
	pos.SortOrders(orders, key)
	page, pageNo, pages := pos.Paginate(orders, c.page, c.size)

	printMarkdown(renderer.OrdersMarkdown(page, pageNo, pages))
	return subcommands.ExitSuccess
}

// salesCmd holds the flags for the 'sales' subcommand.
type salesCmd struct {
	page int
	size int
}

func (*salesCmd) Name() string     { return "sales" }
func (*salesCmd) Synopsis() string { return "display a page of recorded sales" }
func (*salesCmd) Usage() string {
	return `wpos sales [-page n] [-size n]

  Displays one page of the sales table, newest first.
`
}

func (c *salesCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.page, "page", 1, "Page number, clamped into range")
	f.IntVar(&c.size, "size", 15, "Page size")
}

func (c *salesCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, err := openStore()
	if err != nil {
		return fail(err)
	}
	sales := store.Ledger().Sales()
	// Newest first.
	for i, j := 0, len(sales)-1; i < j; i, j = i+1, j-1 {
		sales[i], sales[j] = sales[j], sales[i]
	}
	page, pageNo, pages := pos.Paginate(sales, c.page, c.size)
	printMarkdown(renderer.SalesMarkdown(page, pageNo, pages))
	return subcommands.ExitSuccess
}
