package renderer

import (
	"bytes"
	"fmt"

	md "github.com/nao1215/markdown"

	"github.com/clubfolio/clubfolio"
)

// MembersMarkdown renders the membership with each member's stake valued at
// the given NAV per share.
func MembersMarkdown(club clubfolio.Club, members []clubfolio.Member, nav clubfolio.Money) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("%s Members", club.Name))
	doc.PlainText(fmt.Sprintf("Invite code: %s", club.InviteCode))

	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignLeft,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
		},
		Header: []string{"Member", "Role", "Shares", "Invested", "Current Value"},
		Rows:   [][]string{},
	}
	for _, m := range members {
		value := nav.Mul(m.SharesOwned).Round(2)
		table.Rows = append(table.Rows, []string{
			m.FullName,
			string(m.Role),
			m.SharesOwned.String(),
			m.TotalInvested.String(),
			value.String(),
		})
	}
	doc.Table(table)

	return doc.String()
}
