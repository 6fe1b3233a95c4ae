package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/wrapnpack/pos"
	"github.com/wrapnpack/pos/date"
	"github.com/wrapnpack/pos/renderer"
)

// summaryCmd holds the flags for the 'summary' subcommand.
type summaryCmd struct {
	window string
	on     string
}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "display the KPI summary of a reporting window" }
func (*summaryCmd) Usage() string {
	return `wpos summary [-p <period>] [-d <date>]

  Displays the KPI figures of a reporting window: order counts,
  completion rate, revenue, average order value, customer retention,
  growth against the previous window and the best selling item.
`
}

func (c *summaryCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.window, "p", "Last 30 Days", "Reporting window (Today, This Week, Last 7/14/30/90 Days, This Month, This Year)")
	f.StringVar(&c.on, "d", date.Today().String(), "Anchor date for the window")
}

func (c *summaryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	on, err := date.Parse(c.on)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitUsageError
	}
	store, err := openStore()
	if err != nil {
		return fail(err)
	}

	window := date.ParseWindow(c.window).Resolve(on)
	summary := pos.NewSummary(store.Ledger(), window)

	printMarkdown(renderer.SummaryMarkdown(summary))
	return subcommands.ExitSuccess
}
