package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/clubfolio/clubfolio/renderer"
)

type logCmd struct {
	tail int
}

func (*logCmd) Name() string     { return "log" }
func (*logCmd) Synopsis() string { return "list the club's transaction log" }
func (*logCmd) Usage() string {
	return `clubfolio log [-tail <n>]

  Lists the club's audit trail in acceptance order.
`
}

func (c *logCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.tail, "tail", 0, "Show only the last N transactions.")
}

func (c *logCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	m, err := OpenManager()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	club, err := m.Club(ClubID())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading club: %v\n", err)
		return subcommands.ExitFailure
	}
	txs, err := m.Transactions(club.ID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading transactions: %v\n", err)
		return subcommands.ExitFailure
	}
	if c.tail > 0 && c.tail < len(txs) {
		txs = txs[len(txs)-c.tail:]
	}

	printMarkdown(renderer.LogMarkdown(club, txs))
	return subcommands.ExitSuccess
}
