package clubfolio

import "github.com/shopspring/decimal"

// WithdrawalTaxRate is the flat tax estimated on the gain portion of a
// member's withdrawal.
var WithdrawalTaxRate = decimal.NewFromFloat(0.30)

// DepositResult carries the new state produced by a deposit.
type DepositResult struct {
	Club        Club
	Member      Member
	Transaction Transaction
}

// CollectiveDepositResult carries the new state produced by a collective
// deposit: every member updated, one transaction per member so the log
// stays per-member attributable.
type CollectiveDepositResult struct {
	Club         Club
	Members      []Member
	Transactions []Transaction
}

// WithdrawalResult carries the new state produced by a withdrawal.
type WithdrawalResult struct {
	Club        Club
	Member      Member
	Transaction Transaction
}

// ExecuteDeposit issues shares to a member for a cash contribution at the
// current NAV per share. The member's cumulative invested amount grows by
// the gross deposit; it is the numerator of their personal average cost.
func ExecuteDeposit(club Club, member Member, amount float64, nav Money) (DepositResult, error) {
	if err := validAmount(amount); err != nil {
		return DepositResult{}, err
	}
	if !nav.IsPositive() {
		return DepositResult{}, InvalidNavError{Nav: nav}
	}

	cash := M(amount, club.Currency)
	issued := cash.DivPrice(nav)

	club.CashBalance = club.CashBalance.Add(cash)
	club.TotalShares = club.TotalShares.Add(issued)

	member.SharesOwned = member.SharesOwned.Add(issued)
	member.TotalInvested = member.TotalInvested.Add(cash)

	tx := newTransaction(club.ID, member.UserID, TxDeposit, cash)
	tx.SharesChange = issued

	return DepositResult{Club: club, Member: member, Transaction: tx}, nil
}

// ExecuteCollectiveDeposit applies the identical per-person amount to every
// member of the club as a single all-or-nothing unit. A club with no member
// is a no-op returning the club unchanged.
func ExecuteCollectiveDeposit(club Club, members []Member, amountPerMember float64, nav Money) (CollectiveDepositResult, error) {
	if err := validAmount(amountPerMember); err != nil {
		return CollectiveDepositResult{}, err
	}
	if !nav.IsPositive() {
		return CollectiveDepositResult{}, InvalidNavError{Nav: nav}
	}
	if len(members) == 0 {
		return CollectiveDepositResult{Club: club}, nil
	}

	result := CollectiveDepositResult{
		Members:      make([]Member, 0, len(members)),
		Transactions: make([]Transaction, 0, len(members)),
	}
	for _, member := range members {
		r, err := ExecuteDeposit(club, member, amountPerMember, nav)
		if err != nil {
			return CollectiveDepositResult{}, err
		}
		club = r.Club
		result.Members = append(result.Members, r.Member)
		result.Transactions = append(result.Transactions, r.Transaction)
	}
	result.Club = club
	return result, nil
}

// ExecuteWithdrawal redeems cash for a member, burning amount/nav shares.
// The gain portion above the member's average cost is taxed at
// WithdrawalTaxRate and accrued into the club's liability immediately,
// before any actual payment. The member's cumulative invested amount is
// deliberately not reduced (see Member.TotalInvested).
func ExecuteWithdrawal(club Club, member Member, amount float64, nav Money) (WithdrawalResult, error) {
	if err := validAmount(amount); err != nil {
		return WithdrawalResult{}, err
	}
	if !nav.IsPositive() {
		return WithdrawalResult{}, InvalidNavError{Nav: nav}
	}

	cash := M(amount, club.Currency)
	if club.CashBalance.LessThan(cash) {
		return WithdrawalResult{}, InsufficientTreasuryError{Requested: cash, Available: club.CashBalance}
	}

	sharesToBurn := cash.DivPrice(nav)
	if member.SharesOwned.LessThan(sharesToBurn) {
		return WithdrawalResult{}, InsufficientSharesError{Owned: member.SharesOwned, Required: sharesToBurn}
	}

	capitalPortion := member.AverageCost().Mul(sharesToBurn)
	gainPortion := cash.Sub(capitalPortion)

	taxEstimate := M(0, club.Currency)
	if gainPortion.IsPositive() {
		taxEstimate = gainPortion.MulRate(WithdrawalTaxRate)
	}

	club.CashBalance = club.CashBalance.Sub(cash)
	club.TotalShares = club.TotalShares.Sub(sharesToBurn)
	club.TaxLiability = club.TaxLiability.Add(taxEstimate)

	member.SharesOwned = member.SharesOwned.Sub(sharesToBurn)

	tx := newTransaction(club.ID, member.UserID, TxWithdrawal, cash)
	tx.SharesChange = sharesToBurn.Neg()
	tx.TaxEstimate = taxEstimate

	return WithdrawalResult{Club: club, Member: member, Transaction: tx}, nil
}
