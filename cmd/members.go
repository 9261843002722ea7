package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/clubfolio/clubfolio/renderer"
)

type membersCmd struct{}

func (*membersCmd) Name() string     { return "members" }
func (*membersCmd) Synopsis() string { return "list the club's members and their stakes" }
func (*membersCmd) Usage() string {
	return `clubfolio members

  Lists the club's members with shares, invested amounts and the current
  value of their stake.
`
}

func (c *membersCmd) SetFlags(f *flag.FlagSet) {}

func (c *membersCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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
	members, err := m.Members(club.ID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading members: %v\n", err)
		return subcommands.ExitFailure
	}
	summary, err := m.Summary(ctx, club.ID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error valuating club: %v\n", err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.MembersMarkdown(club, members, summary.NavPerShare))
	return subcommands.ExitSuccess
}
