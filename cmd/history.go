package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/clubfolio/clubfolio/renderer"
)

type historyCmd struct{}

func (*historyCmd) Name() string     { return "history" }
func (*historyCmd) Synopsis() string { return "display the club's NAV history" }
func (*historyCmd) Usage() string {
	return `clubfolio history

  Displays the recorded NAV snapshots, oldest first.
`
}

func (c *historyCmd) SetFlags(f *flag.FlagSet) {}

func (c *historyCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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
	entries, err := m.NavHistory(club.ID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading history: %v\n", err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.HistoryMarkdown(club, entries))
	return subcommands.ExitSuccess
}
