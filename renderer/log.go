package renderer

import (
	"bytes"
	"fmt"

	md "github.com/nao1215/markdown"

	"github.com/clubfolio/clubfolio"
)

// Transaction renders a one-line description of a ledger entry.
func Transaction(tx clubfolio.Transaction) string {
	switch tx.Type {
	case clubfolio.TxBuy:
		return fmt.Sprintf("Bought %s %s at %s for %s", tx.Quantity, tx.Ticker, tx.Price, tx.Amount)
	case clubfolio.TxSell:
		return fmt.Sprintf("Sold %s %s at %s for %s (realized %s)", tx.Quantity, tx.Ticker, tx.Price, tx.Amount, tx.RealizedGain.SignedString())
	case clubfolio.TxDeposit:
		return fmt.Sprintf("Deposited %s for %s shares", tx.Amount, tx.SharesChange)
	case clubfolio.TxWithdrawal:
		return fmt.Sprintf("Withdrew %s burning %s shares (tax estimate %s)", tx.Amount, tx.SharesChange.Neg(), tx.TaxEstimate)
	default:
		return string(tx.Type)
	}
}

// LogMarkdown renders the club's audit trail, oldest first.
func LogMarkdown(club clubfolio.Club, txs []clubfolio.Transaction) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("%s Transaction Log", club.Name))

	table := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignRight, md.AlignLeft, md.AlignLeft, md.AlignLeft},
		Header:    []string{"#", "Date", "Type", "Detail"},
		Rows:      [][]string{},
	}
	for _, tx := range txs {
		table.Rows = append(table.Rows, []string{
			fmt.Sprintf("%d", tx.Seq),
			tx.CreatedAt.Format("2006-01-02"),
			string(tx.Type),
			Transaction(tx),
		})
	}
	doc.Table(table)

	return doc.String()
}
