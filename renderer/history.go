package renderer

import (
	"bytes"
	"fmt"

	md "github.com/nao1215/markdown"

	"github.com/clubfolio/clubfolio"
)

func HistoryMarkdown(club clubfolio.Club, entries []clubfolio.NavEntry) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("%s NAV History", club.Name))

	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignRight,
			md.AlignRight,
		},
		Header: []string{"Date", "NAV per Share", "Total Net Assets"},
		Rows:   [][]string{},
	}
	for _, entry := range entries {
		table.Rows = append(table.Rows, []string{
			entry.Date.String(),
			entry.NavPerShare.String(),
			entry.TotalNetAssets.String(),
		})
	}
	doc.Table(table)

	return doc.String()
}
