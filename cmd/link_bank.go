package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type linkBankCmd struct {
	label string
}

func (*linkBankCmd) Name() string     { return "link-bank" }
func (*linkBankCmd) Synopsis() string { return "record the club's external bank account" }
func (*linkBankCmd) Usage() string {
	return `clubfolio link-bank -label <account label>

  Records which external bank account holds the club's treasury. The label
  is informational and appears in the club summary.
`
}

func (c *linkBankCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.label, "label", "", "Bank account label, e.g. an IBAN or a nickname.")
}

func (c *linkBankCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.label == "" {
		fmt.Fprintln(os.Stderr, "Error: -label is required.")
		return subcommands.ExitUsageError
	}

	m, err := OpenManager()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	club, err := m.LinkBank(ClubID(), c.label)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error linking bank account: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Club %q now linked to %s\n", club.Name, club.LinkedBank)
	return subcommands.ExitSuccess
}
