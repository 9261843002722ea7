package renderer

import (
	"strings"
	"testing"
	"time"

	"github.com/clubfolio/clubfolio"
	"github.com/clubfolio/clubfolio/date"
)

func testClub() clubfolio.Club {
	club := clubfolio.NewClub("Les Craypions d'Or", "EUR")
	club.CashBalance = clubfolio.M(500, "EUR")
	return club
}

func TestSummaryMarkdown(t *testing.T) {
	club := testClub()
	summary := clubfolio.PortfolioSummary{
		TotalNetAssets:   clubfolio.M(2900, "EUR"),
		NavPerShare:      clubfolio.M(58, "EUR"),
		TotalMarketValue: clubfolio.M(2400, "EUR"),
		TotalCostBasis:   clubfolio.M(1900, "EUR"),
		TotalLatentPL:    clubfolio.M(500, "EUR"),
		VariationPercent: clubfolio.Percent(26.32),
		TotalShares:      clubfolio.Q(50),
		CashBalance:      clubfolio.M(500, "EUR"),
	}

	out := SummaryMarkdown(club, summary)

	for _, want := range []string{"# Les Craypions d'Or Valuation", "Total Net Assets", "Latent P/L", "Variation"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestLogMarkdown(t *testing.T) {
	club := testClub()
	txs := []clubfolio.Transaction{
		{Type: clubfolio.TxDeposit, Amount: clubfolio.M(1000, "EUR"), SharesChange: clubfolio.Q(10), CreatedAt: time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC), Seq: 1},
		{Type: clubfolio.TxBuy, Amount: clubfolio.M(500, "EUR"), Ticker: "AAPL", Quantity: clubfolio.Q(5), Price: clubfolio.M(100, "EUR"), CreatedAt: time.Date(2025, 3, 2, 10, 0, 0, 0, time.UTC), Seq: 2},
	}

	out := LogMarkdown(club, txs)

	for _, want := range []string{"Transaction Log", "DEPOSIT", "Bought 5 AAPL", "2025-03-02"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestMembersMarkdown(t *testing.T) {
	club := testClub()
	alice := clubfolio.NewMember(club, "user-alice", "Alice", clubfolio.RoleAdmin)
	alice.SharesOwned = clubfolio.Q(10)
	alice.TotalInvested = clubfolio.M(1000, "EUR")

	out := MembersMarkdown(club, []clubfolio.Member{alice}, clubfolio.M(120, "EUR"))

	for _, want := range []string{"Members", club.InviteCode, "Alice", "admin"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestHistoryMarkdown(t *testing.T) {
	club := testClub()
	entries := []clubfolio.NavEntry{
		{Date: date.MustParse("2025-03-01"), NavPerShare: clubfolio.M(100, "EUR"), TotalNetAssets: clubfolio.M(1000, "EUR")},
	}

	out := HistoryMarkdown(club, entries)

	for _, want := range []string{"NAV History", "2025-03-01"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}
