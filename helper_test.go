package clubfolio

// helpers shared by the engine tests.

func newTestClub(currency string, cash float64) Club {
	club := NewClub("Les Craypions d'Or", currency)
	club.CashBalance = M(cash, currency)
	return club
}

func newTestMember(club Club, name string) Member {
	return NewMember(club, "user-"+name, name, RoleMember)
}

func newTestAsset(club Club, ticker string, qty, avgPrice float64, currency string) Asset {
	return Asset{
		ID:          "asset-" + ticker,
		ClubID:      club.ID,
		Ticker:      ticker,
		Quantity:    Q(qty),
		AvgBuyPrice: M(avgPrice, currency),
		Currency:    currency,
	}
}

func moneyEq(m Money, value float64) bool {
	return m.Equal(M(value, m.Currency()))
}
