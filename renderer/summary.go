// Package renderer turns the engine's reports into markdown for terminal
// display.
package renderer

import (
	"bytes"
	"fmt"

	md "github.com/nao1215/markdown"

	"github.com/clubfolio/clubfolio"
)

func SummaryMarkdown(club clubfolio.Club, s clubfolio.PortfolioSummary) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("%s Valuation", club.Name))
	doc.PlainText(fmt.Sprintf("Net Asset Value per share: %s", s.NavPerShare))

	table := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
		Header:    []string{"Figure", "Value"},
		Rows: [][]string{
			{"Total Net Assets", s.TotalNetAssets.String()},
			{"Market Value", s.TotalMarketValue.String()},
			{"Cost Basis", s.TotalCostBasis.String()},
			{"Latent P/L", s.TotalLatentPL.SignedString()},
			{"Variation", s.VariationPercent.SignedString()},
			{"Cash Balance", s.CashBalance.String()},
			{"Tax Liability", s.TaxLiability.String()},
			{"Total Shares", s.TotalShares.String()},
		},
	}
	doc.Table(table)

	if club.LinkedBank != "" {
		doc.PlainText(fmt.Sprintf("Treasury held at: %s", club.LinkedBank))
	}

	return doc.String()
}
