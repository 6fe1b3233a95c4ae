package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"
)

type fmtCmd struct{}

func (*fmtCmd) Name() string { return "fmt" }
func (*fmtCmd) Synopsis() string {
	return "validates and rewrites the orders file into its canonical form"
}
func (*fmtCmd) Usage() string {
	return `wpos fmt

  Reads the orders file, skipping malformed lines and upgrading legacy
  8/9/10-token lines, and writes it back in the canonical quoted 11-column
  format with its header.
`
}

func (*fmtCmd) SetFlags(*flag.FlagSet) {}

func (c *fmtCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, err := openStore()
	if err != nil {
		return fail(err)
	}
	if err := store.SaveAll(); err != nil {
		return fail(err)
	}
	fmt.Printf("Formatted %s (%d orders)\n", *ordersFile, len(store.Ledger().Orders()))
	return subcommands.ExitSuccess
}
