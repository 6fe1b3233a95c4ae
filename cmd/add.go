package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/google/subcommands"
	"github.com/shopspring/decimal"
	"github.com/wrapnpack/pos"
)

// addCmd holds the flags for the 'add' subcommand.
type addCmd struct {
	name     string
	contact  string
	items    string
	method   string
	category string
	ref      string
	cash     string
	fallback string
}

func (*addCmd) Name() string     { return "add" }
func (*addCmd) Synopsis() string { return "record a new order" }
func (*addCmd) Usage() string {
	return `wpos add -name <customer> -items "<qty>x <item>; ..." [-method Cash|GCash|Maya] [flags]

  Records a new Pending order. The total is priced from the catalog when
  one is configured; unknown items cost the -price fallback.

Usage Examples:
$ wpos add -name "Ana Reyes" -items "2x Siopao; 1x Halo-Halo" -method Cash -cash 200
$ wpos add -name "Ben Cruz" -items "3x Lumpia" -method GCash -ref GC-88421
`
}

func (c *addCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "Customer name")
	f.StringVar(&c.contact, "contact", "", "Customer contact number")
	f.StringVar(&c.items, "items", "", `Items ordered, e.g. "2x Siopao; 1x Halo-Halo"`)
	f.StringVar(&c.method, "method", "Cash", "Payment method (Cash, GCash, Maya)")
	f.StringVar(&c.category, "category", "", "Catalog category the items belong to")
	f.StringVar(&c.ref, "ref", "", "Provider transaction reference (digital payments)")
	f.StringVar(&c.cash, "cash", "", "Cash received (cash payments)")
	f.StringVar(&c.fallback, "price", "0", "Fallback unit price for items missing from the catalog")
}

func (c *addCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	items := pos.ParseItems(c.items)
	if c.name == "" || len(items) == 0 {
		fmt.Fprintln(os.Stderr, "Error: -name and -items are required")
		return subcommands.ExitUsageError
	}
	method, err := pos.ParsePaymentMethod(c.method)
	if err != nil {
		return fail(err)
	}

	fallback, err := decimal.NewFromString(c.fallback)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid fallback price %q\n", c.fallback)
		return subcommands.ExitUsageError
	}

	store, err := openStore()
	if err != nil {
		return fail(err)
	}

	now := time.Now()
	total := pos.Subtotal(loadCatalog(), c.category, items, fallback)

	var details pos.PaymentDetails
	if method.IsDigital() {
		if c.ref == "" {
			fmt.Fprintf(os.Stderr, "Error: -ref is required for %s payments\n", method)
			return subcommands.ExitUsageError
		}
		details = pos.DigitalPayment{Reference: c.ref, Timestamp: now.Format("2006-01-02 15:04:05")}
	} else {
		var received decimal.Decimal
		if c.cash != "" {
			if received, err = decimal.NewFromString(c.cash); err != nil {
				fmt.Fprintf(os.Stderr, "Error: invalid cash amount %q\n", c.cash)
				return subcommands.ExitUsageError
			}
		}
		details = pos.CashPayment{Received: received}
	}

	o, err := store.CreateOrder(c.name, c.contact, items, method, details, total, now)
	if err != nil {
		return fail(err)
	}
	fmt.Printf("Recorded order %s for %s, total %s\n", o.ID, o.CustomerName, o.Total)
	return subcommands.ExitSuccess
}
