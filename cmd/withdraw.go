package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type withdrawCmd struct {
	amount float64
}

func (*withdrawCmd) Name() string     { return "withdraw" }
func (*withdrawCmd) Synopsis() string { return "withdraw cash by burning shares at the current NAV" }
func (*withdrawCmd) Usage() string {
	return `clubfolio withdraw -amount <amount>

  Withdraws cash for the acting member, burning amount/NAV shares. The gain
  portion above the member's average cost accrues a tax provision.
`
}

func (c *withdrawCmd) SetFlags(f *flag.FlagSet) {
	f.Float64Var(&c.amount, "amount", 0, "Amount to withdraw, in the club currency.")
}

func (c *withdrawCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	m, err := OpenManager()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	result, err := m.Withdraw(ctx, ClubID(), UserID(), c.amount)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error withdrawing: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Withdrew %s burning %s shares", result.Transaction.Amount, result.Transaction.SharesChange.Neg())
	if result.Transaction.TaxEstimate.IsPositive() {
		fmt.Printf(" (tax provision %s)", result.Transaction.TaxEstimate)
	}
	fmt.Printf("\nYou now own %s shares\n", result.Member.SharesOwned)
	return subcommands.ExitSuccess
}
