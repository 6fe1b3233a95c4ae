// Package cmd implements the CLI application to run the outlet's order
// and sales ledger.
package cmd

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"
	"github.com/wrapnpack/pos"
)

// as a CLI application, it has a very short lived lifecycle, so it is ok
// to use global variables.

var ordersFile = flag.String("orders-file", "orders.txt", "Path to the orders ledger file")
var salesFile = flag.String("sales-file", "sales.txt", "Path to the sales ledger file")
var catalogFile = flag.String("catalog-file", "", "Path to a JSON catalog export (optional)")

// Commands lists the subcommands a main package registers.
var Commands = []subcommands.Command{
	&addCmd{},
	&statusCmd{},
	&payCmd{},
	&finalizeCmd{},
	&ordersCmd{},
	&salesCmd{},
	&summaryCmd{},
	&receiptCmd{},
	&fmtCmd{},
	&assistCmd{},
}

// openStore is the central function to open the ledger store. Missing
// backing files yield an empty ledger.
func openStore() (*pos.Store, error) {
	return pos.OpenStore(*ordersFile, *salesFile)
}

// loadCatalog opens the catalog export if one was configured. A missing
// or broken catalog degrades to fallback pricing, it never blocks the
// order flow.
func loadCatalog() pos.Catalog {
	if *catalogFile == "" {
		return nil
	}
	f, err := os.Open(*catalogFile)
	if err != nil {
		log.Printf("warning: cannot open catalog %q: %v", *catalogFile, err)
		return nil
	}
	defer f.Close()
	list, err := pos.DecodePriceList(f)
	if err != nil {
		log.Printf("warning: cannot read catalog %q: %v", *catalogFile, err)
		return nil
	}
	return list
}

// printMarkdown renders markdown for the terminal, falling back to the
// raw text when the terminal renderer is unavailable.
func printMarkdown(md string) {
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(100))
	if err == nil {
		if out, rerr := r.Render(md); rerr == nil {
			fmt.Print(out)
			return
		}
	}
	fmt.Print(md)
}

// fail prints an error and picks the exit status, usage errors apart.
func fail(err error) subcommands.ExitStatus {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	if errors.Is(err, pos.ErrInvalidStatus) || errors.Is(err, pos.ErrInvalidState) {
		return subcommands.ExitUsageError
	}
	return subcommands.ExitFailure
}
