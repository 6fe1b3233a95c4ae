package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/google/subcommands"
)

type finalizeCmd struct{}

func (*finalizeCmd) Name() string     { return "finalize" }
func (*finalizeCmd) Synopsis() string { return "derive the sale record of a completed order" }
func (*finalizeCmd) Usage() string {
	return `wpos finalize <order-id>

  Appends the sale record derived from a Completed order to the sales
  file. Finalizing an already-finalized order reprints its existing sale,
  so the command is safe to re-run after a crash.
`
}

func (*finalizeCmd) SetFlags(*flag.FlagSet) {}

func (c *finalizeCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprint(os.Stderr, c.Usage())
		return subcommands.ExitUsageError
	}
	store, err := openStore()
	if err != nil {
		return fail(err)
	}
	r, err := store.Finalize(f.Arg(0), time.Now())
	if err != nil {
		return fail(err)
	}
	fmt.Printf("Sale %s recorded for order %s, amount %s\n", r.ID, r.OrderID, r.Amount)
	return subcommands.ExitSuccess
}
