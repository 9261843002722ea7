package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type createClubCmd struct {
	name     string
	currency string
	admin    string
}

func (*createClubCmd) Name() string     { return "create-club" }
func (*createClubCmd) Synopsis() string { return "create a new investment club" }
func (*createClubCmd) Usage() string {
	return `clubfolio create-club -name <name> [-currency <code>] [-admin <full name>]

  Creates a club with a fresh invite code and registers the acting user as
  its admin. Share the invite code with the other members.
`
}

func (c *createClubCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "Name of the club.")
	f.StringVar(&c.currency, "currency", "EUR", "Settlement currency of the club.")
	f.StringVar(&c.admin, "admin", "", "Full name of the founding admin.")
}

func (c *createClubCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.name == "" {
		fmt.Fprintln(os.Stderr, "Error: -name is required.")
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

	club, admin, err := m.CreateClub(c.name, c.currency, UserID(), c.admin)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating club: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Created club %q (%s)\n", club.Name, club.ID)
	fmt.Printf("Invite code: %s\n", club.InviteCode)
	fmt.Printf("Admin: %s (%s)\n", admin.FullName, admin.UserID)
	return subcommands.ExitSuccess
}
