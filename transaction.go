package clubfolio

import (
	"time"

	"github.com/google/uuid"
)

// TransactionType identifies the kind of ledger event.
type TransactionType string

const (
	TxDeposit    TransactionType = "DEPOSIT"
	TxWithdrawal TransactionType = "WITHDRAWAL"
	TxBuy        TransactionType = "BUY"
	TxSell       TransactionType = "SELL"
)

// Transaction is one immutable, append-only entry of the club's audit trail.
// It is never mutated or deleted once appended.
//
// Seq is the per-club monotonic sequence assigned by the store when the
// transaction is appended. It orders the log by the sequence in which the
// causing operations were accepted, independently of wall-clock timestamps.
type Transaction struct {
	ID     string
	ClubID string
	UserID string
	Type   TransactionType
	// Amount is always expressed in the club's settlement currency.
	Amount Money
	// SharesChange is the number of club shares issued (positive) or burnt
	// (negative). Zero for BUY and SELL orders.
	SharesChange Quantity
	Ticker string
	// Quantity is the number of units traded for BUY/SELL, so positions can
	// be reconstructed from the log alone. Zero for capital flows.
	Quantity Quantity
	// Price is the per-unit execution price for BUY/SELL, in the order's
	// native currency.
	Price        Money
	RealizedGain Money
	TaxEstimate  Money
	CreatedAt    time.Time
	Seq          int64
}

func newTransaction(clubID, userID string, typ TransactionType, amount Money) Transaction {
	return Transaction{
		ID:        uuid.NewString(),
		ClubID:    clubID,
		UserID:    userID,
		Type:      typ,
		Amount:    amount,
		CreatedAt: time.Now(),
	}
}

// MarshalJSON writes the transaction with a stable field order, omitting the
// fields that do not apply to its type.
func (t Transaction) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("id", t.ID)
	w.Append("club_id", t.ClubID)
	w.Optional("user_id", t.UserID)
	w.Append("type", t.Type)
	w.Append("amount", t.Amount)
	if !t.SharesChange.IsZero() {
		w.Append("shares_change", t.SharesChange)
	}
	w.Optional("ticker", t.Ticker)
	if !t.Quantity.IsZero() {
		w.Append("quantity", t.Quantity)
	}
	if !t.Price.IsZero() {
		w.Append("price", t.Price)
	}
	if t.Type == TxSell {
		w.Append("realized_gain", t.RealizedGain)
	}
	if t.Type == TxWithdrawal {
		w.Append("tax_estimate", t.TaxEstimate)
	}
	w.Append("created_at", t.CreatedAt.UTC().Format(time.RFC3339))
	w.Optional("seq", t.Seq)
	return w.MarshalJSON()
}
