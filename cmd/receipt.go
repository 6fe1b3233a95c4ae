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

// receiptCmd holds the flags for the 'receipt' subcommand.
type receiptCmd struct {
	category string
}

func (*receiptCmd) Name() string     { return "receipt" }
func (*receiptCmd) Synopsis() string { return "render the printable receipt of an order" }
func (*receiptCmd) Usage() string {
	return `wpos receipt <order-id> [-category <catalog category>]

  Renders a printable receipt for an order, re-deriving line-item prices
  from the catalog and flagging drift against the stored total. When the
  order was finalized, the sale reference is included.
`
}

func (c *receiptCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.category, "category", "", "Catalog category to price the items against")
}

func (c *receiptCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprint(os.Stderr, c.Usage())
		return subcommands.ExitUsageError
	}
	store, err := openStore()
	if err != nil {
		return fail(err)
	}

	o := store.Ledger().Order(f.Arg(0))
	if o == nil {
		fmt.Fprintf(os.Stderr, "Error: unknown order %s\n", f.Arg(0))
		return subcommands.ExitFailure
	}
	catalog := loadCatalog()
	if catalog == nil {
		// An empty catalog still renders, every line falls back.
		catalog = make(pos.PriceList)
	}

	printMarkdown(renderer.ReceiptMarkdown(o, store.Ledger().SaleFor(o.ID), catalog, c.category))
	return subcommands.ExitSuccess
}
