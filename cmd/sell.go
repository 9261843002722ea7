package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type sellCmd struct {
	ticker   string
	quantity float64
	price    float64
	currency string
}

func (*sellCmd) Name() string     { return "sell" }
func (*sellCmd) Synopsis() string { return "sell units of a holding" }
func (*sellCmd) Usage() string {
	return `clubfolio sell -ticker <symbol> -quantity <units> -price <unit price> [-currency <code>]

  Sells units at the given price. A positive realized gain accrues the
  sell tax provision; selling the full position removes the holding.
`
}

func (c *sellCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.ticker, "ticker", "", "Ticker symbol to sell.")
	f.Float64Var(&c.quantity, "quantity", 0, "Number of units to sell.")
	f.Float64Var(&c.price, "price", 0, "Execution price per unit.")
	f.StringVar(&c.currency, "currency", "EUR", "Currency of the execution price.")
}

func (c *sellCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.ticker == "" {
		fmt.Fprintln(os.Stderr, "Error: -ticker is required.")
		return subcommands.ExitUsageError
	}

	m, err := OpenManager()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	result, err := m.Sell(ctx, ClubID(), UserID(), c.ticker, c.quantity, c.price, c.currency)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error selling %s: %v\n", c.ticker, err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Sold %v %s for %s, realized %s, cash balance is now %s\n",
		c.quantity, c.ticker, result.Transaction.Amount,
		result.Transaction.RealizedGain.SignedString(), result.Club.CashBalance)
	return subcommands.ExitSuccess
}
