package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type joinCmd struct {
	code string
	name string
}

func (*joinCmd) Name() string     { return "join" }
func (*joinCmd) Synopsis() string { return "join a club with an invite code" }
func (*joinCmd) Usage() string {
	return `clubfolio join -code <invite code> [-name <full name>]

  Registers the acting user as a member of the club owning the invite code.
`
}

func (c *joinCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.code, "code", "", "Invite code of the club to join.")
	f.StringVar(&c.name, "name", "", "Full name of the joining member.")
}

func (c *joinCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.code == "" {
		fmt.Fprintln(os.Stderr, "Error: -code is required.")
		return subcommands.ExitUsageError
	}
	if UserID() == "" {
		fmt.Fprintln(os.Stderr, "Error: no acting user, set -user or CLUBFOLIO_USER.")
		return subcommands.ExitUsageError
	}

	m, err := OpenManager()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	club, member, err := m.JoinClub(c.code, UserID(), c.name)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error joining club: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Joined club %q (%s) as %s\n", club.Name, club.ID, member.FullName)
	return subcommands.ExitSuccess
}
