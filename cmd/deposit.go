package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type depositCmd struct {
	amount float64
	all    bool
}

func (*depositCmd) Name() string     { return "deposit" }
func (*depositCmd) Synopsis() string { return "deposit cash and receive shares at the current NAV" }
func (*depositCmd) Usage() string {
	return `clubfolio deposit -amount <amount> [-all]

  Deposits cash for the acting member, issuing shares at the club's current
  NAV per share. With -all, the same amount is deposited once for every
  member of the club.
`
}

func (c *depositCmd) SetFlags(f *flag.FlagSet) {
	f.Float64Var(&c.amount, "amount", 0, "Amount to deposit, in the club currency.")
	f.BoolVar(&c.all, "all", false, "Deposit the amount for every member of the club.")
}

func (c *depositCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	m, err := OpenManager()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	if c.all {
		result, err := m.CollectiveDeposit(ctx, ClubID(), c.amount)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error depositing: %v\n", err)
			return subcommands.ExitFailure
		}
		fmt.Printf("Deposited %v for each of %d members, cash balance is now %s\n",
			c.amount, len(result.Members), result.Club.CashBalance)
		return subcommands.ExitSuccess
	}

	result, err := m.Deposit(ctx, ClubID(), UserID(), c.amount)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error depositing: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Deposited %s for %s shares, you now own %s shares\n",
		result.Transaction.Amount, result.Transaction.SharesChange, result.Member.SharesOwned)
	return subcommands.ExitSuccess
}
