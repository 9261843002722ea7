package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/clubfolio/clubfolio/commentary"
)

type insightCmd struct {
	ticker string
}

func (*insightCmd) Name() string     { return "insight" }
func (*insightCmd) Synopsis() string { return "AI commentary on a ticker or the portfolio" }
func (*insightCmd) Usage() string {
	return `clubfolio insight [-ticker <symbol>]

  With -ticker, prints a short AI sentiment summary for that asset based on
  recent news. Without it, prints one sentence about the diversification of
  the club's current holdings.

  Requires a Gemini API key in the environment (GEMINI_API_KEY).
`
}

func (c *insightCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.ticker, "ticker", "", "Ticker symbol to analyze.")
}

func (c *insightCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	analyst, err := commentary.New(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	if c.ticker != "" {
		printMarkdown(analyst.AssetInsight(ctx, c.ticker))
		return subcommands.ExitSuccess
	}

	m, err := OpenManager()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	summaryClub, err := m.Club(ClubID())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading club: %v\n", err)
		return subcommands.ExitFailure
	}
	assets, err := m.Assets(summaryClub.ID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading holdings: %v\n", err)
		return subcommands.ExitFailure
	}
	if len(assets) == 0 {
		fmt.Println("The club holds no assets yet.")
		return subcommands.ExitSuccess
	}
	tickers := make([]string, 0, len(assets))
	for _, a := range assets {
		tickers = append(tickers, a.Ticker)
	}

	printMarkdown(analyst.DistributionQuip(ctx, tickers))
	return subcommands.ExitSuccess
}
