package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type snapshotCmd struct{}

func (*snapshotCmd) Name() string     { return "snapshot" }
func (*snapshotCmd) Synopsis() string { return "freeze the current NAV into the history" }
func (*snapshotCmd) Usage() string {
	return `clubfolio snapshot

  Valuates the club from live quotes and appends the result to the NAV
  history. Snapshots are append-only; running it twice the same day keeps
  both points.
`
}

func (c *snapshotCmd) SetFlags(f *flag.FlagSet) {}

func (c *snapshotCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	m, err := OpenManager()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	entry, err := m.SnapshotNav(ctx, ClubID())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error recording snapshot: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Recorded NAV %s on %s (net assets %s)\n", entry.NavPerShare, entry.Date, entry.TotalNetAssets)
	return subcommands.ExitSuccess
}
