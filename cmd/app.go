// Package cmd implements the CLI application to run an investment club.
package cmd

import (
	"flag"
	"fmt"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"

	"github.com/clubfolio/clubfolio"
	"github.com/clubfolio/clubfolio/store"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&createClubCmd{}, "club")
	c.Register(&joinCmd{}, "club")
	c.Register(&membersCmd{}, "club")
	c.Register(&linkBankCmd{}, "club")

	c.Register(&depositCmd{}, "capital")
	c.Register(&withdrawCmd{}, "capital")

	c.Register(&buyCmd{}, "orders")
	c.Register(&sellCmd{}, "orders")

	c.Register(&summaryCmd{}, "reports")
	c.Register(&snapshotCmd{}, "reports")
	c.Register(&historyCmd{}, "reports")
	c.Register(&logCmd{}, "reports")

	c.Register(&insightCmd{}, "ai")
	c.Register(&topicCmd{}, "documentation")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var dbPath = flag.String("db", "clubfolio.db", "Path to the club database file")
var clubFlag = flag.String("club", "", "Club id to operate on.\n If missing it will read the environment variable CLUBFOLIO_CLUB.")
var userFlag = flag.String("user", "", "Acting user id.\n If missing it will read the environment variable CLUBFOLIO_USER.")

// OpenManager opens the database and wires it to the live price feed.
func OpenManager() (*clubfolio.Manager, error) {
	s, err := store.Open(*dbPath)
	if err != nil {
		return nil, fmt.Errorf("could not open club database %q: %w", *dbPath, err)
	}
	return clubfolio.NewManager(s, clubfolio.NewTwelveData()), nil
}

// ClubID resolves the club to operate on from the flag or the environment.
func ClubID() string {
	if *clubFlag == "" {
		*clubFlag = os.Getenv("CLUBFOLIO_CLUB")
	}
	return *clubFlag
}

// UserID resolves the acting user from the flag or the environment.
func UserID() string {
	if *userFlag == "" {
		*userFlag = os.Getenv("CLUBFOLIO_USER")
	}
	return *userFlag
}

// printMarkdown renders markdown for the terminal, falling back to the raw
// text when the renderer cannot be used.
func printMarkdown(md string) {
	out, err := glamour.Render(md, "auto")
	if err != nil {
		fmt.Println(md)
		return
	}
	fmt.Print(out)
}
