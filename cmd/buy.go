package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type buyCmd struct {
	ticker   string
	quantity float64
	price    float64
	currency string
}

func (*buyCmd) Name() string     { return "buy" }
func (*buyCmd) Synopsis() string { return "buy units of an asset with the club's cash" }
func (*buyCmd) Usage() string {
	return `clubfolio buy -ticker <symbol> -quantity <units> -price <unit price> [-currency <code>]

  Buys units at the given price. The cost is converted into the club
  currency before checking the cash balance; the holding's average buy
  price stays in the order currency.
`
}

func (c *buyCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.ticker, "ticker", "", "Ticker symbol to buy.")
	f.Float64Var(&c.quantity, "quantity", 0, "Number of units to buy.")
	f.Float64Var(&c.price, "price", 0, "Execution price per unit.")
	f.StringVar(&c.currency, "currency", "EUR", "Currency of the execution price.")
}

func (c *buyCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.ticker == "" {
		fmt.Fprintln(os.Stderr, "Error: -ticker is required.")
		return subcommands.ExitUsageError
	}

	m, err := OpenManager()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	result, err := m.Buy(ctx, ClubID(), UserID(), c.ticker, c.quantity, c.price, c.currency)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error buying %s: %v\n", c.ticker, err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Bought %v %s at %s for %s, cash balance is now %s\n",
		c.quantity, c.ticker, result.Transaction.Price, result.Transaction.Amount, result.Club.CashBalance)
	return subcommands.ExitSuccess
}
