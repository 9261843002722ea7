package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/clubfolio/clubfolio/renderer"
)

type summaryCmd struct{}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "display the club's current valuation" }
func (*summaryCmd) Usage() string {
	return `clubfolio summary

  Displays the club's valuation from live quotes: net assets, NAV per
  share, latent P/L and tax liability.
`
}

func (c *summaryCmd) SetFlags(f *flag.FlagSet) {}

func (c *summaryCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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
	summary, err := m.Summary(ctx, club.ID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error valuating club: %v\n", err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.SummaryMarkdown(club, summary))
	return subcommands.ExitSuccess
}
