package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/wrapnpack/pos"
)

type statusCmd struct{}

func (*statusCmd) Name() string     { return "status" }
func (*statusCmd) Synopsis() string { return "update an order's status" }
func (*statusCmd) Usage() string {
	return `wpos status <order-id> <Pending|In Progress|Completed|Cancelled>

  Updates the order status and rewrites the orders file. The in-memory
  edit is rolled back when the write fails.
`
}

func (*statusCmd) SetFlags(*flag.FlagSet) {}

func (c *statusCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 2 {
		fmt.Fprint(os.Stderr, c.Usage())
		return subcommands.ExitUsageError
	}
	store, err := openStore()
	if err != nil {
		return fail(err)
	}
	orderID := f.Arg(0)
	if err := store.SetOrderStatus(orderID, pos.OrderStatus(f.Arg(1))); err != nil {
		return fail(err)
	}
	fmt.Printf("Order %s is now %s\n", orderID, f.Arg(1))
	return subcommands.ExitSuccess
}

type payCmd struct{}

func (*payCmd) Name() string     { return "pay" }
func (*payCmd) Synopsis() string { return "update an order's payment status" }
func (*payCmd) Usage() string {
	return `wpos pay <order-id> <Unpaid|Paid|Failed|Refunded>

  Updates the payment status. It is stored independently of the order
  status and never re-derived from it.
`
}

func (*payCmd) SetFlags(*flag.FlagSet) {}

func (c *payCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 2 {
		fmt.Fprint(os.Stderr, c.Usage())
		return subcommands.ExitUsageError
	}
	store, err := openStore()
	if err != nil {
		return fail(err)
	}
	orderID := f.Arg(0)
	if err := store.SetPaymentStatus(orderID, pos.PaymentStatus(f.Arg(1))); err != nil {
		return fail(err)
	}
	fmt.Printf("Order %s payment is now %s\n", orderID, f.Arg(1))
	return subcommands.ExitSuccess
}
