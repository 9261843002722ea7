package clubfolio

import (
	"errors"
	"testing"
)

func TestExecuteBuy_NewHolding(t *testing.T) {
	club := newTestClub("EUR", 2000)
	admin := newTestMember(club, "alice")

	result, err := ExecuteBuy(DefaultRates, club, nil, "AAPL", Q(10), M(150, "EUR"), admin)
	if err != nil {
		t.Fatalf("ExecuteBuy: %v", err)
	}

	if !moneyEq(result.Club.CashBalance, 500) {
		t.Errorf("CashBalance = %s, want 500", result.Club.CashBalance)
	}
	if len(result.Assets) != 1 {
		t.Fatalf("len(Assets) = %d, want 1", len(result.Assets))
	}
	asset := result.Assets[0]
	if asset.Ticker != "AAPL" || !asset.Quantity.Equal(Q(10)) || !moneyEq(asset.AvgBuyPrice, 150) {
		t.Errorf("asset = %+v, want 10 AAPL @150", asset)
	}
	tx := result.Transaction
	if tx.Type != TxBuy || !moneyEq(tx.Amount, 1500) || tx.Ticker != "AAPL" {
		t.Errorf("transaction = %+v, want BUY 1500 AAPL", tx)
	}
	if !tx.Quantity.Equal(Q(10)) {
		t.Errorf("transaction Quantity = %s, want 10", tx.Quantity)
	}
}

func TestExecuteBuy_WeightedAveragePrice(t *testing.T) {
	// Buying 10@100 then 5@130 blends to an average of 110.
	club := newTestClub("EUR", 10000)
	admin := newTestMember(club, "alice")

	first, err := ExecuteBuy(DefaultRates, club, nil, "AAPL", Q(10), M(100, "EUR"), admin)
	if err != nil {
		t.Fatalf("first buy: %v", err)
	}
	second, err := ExecuteBuy(DefaultRates, first.Club, first.Assets, "AAPL", Q(5), M(130, "EUR"), admin)
	if err != nil {
		t.Fatalf("second buy: %v", err)
	}

	asset := second.Assets[0]
	if !asset.Quantity.Equal(Q(15)) {
		t.Errorf("Quantity = %s, want 15", asset.Quantity)
	}
	if !moneyEq(asset.AvgBuyPrice, 110) {
		t.Errorf("AvgBuyPrice = %s, want 110", asset.AvgBuyPrice)
	}
}

func TestExecuteBuy_InsufficientFunds(t *testing.T) {
	club := newTestClub("EUR", 1000)
	admin := newTestMember(club, "alice")
	assets := []Asset{newTestAsset(club, "AAPL", 5, 100, "EUR")}

	_, err := ExecuteBuy(DefaultRates, club, assets, "AAPL", Q(10), M(150, "EUR"), admin)

	var insufficient InsufficientFundsError
	if !errors.As(err, &insufficient) {
		t.Fatalf("error = %v, want InsufficientFundsError", err)
	}
	if !moneyEq(insufficient.Required, 1500) || !moneyEq(insufficient.Available, 1000) || !moneyEq(insufficient.Shortfall(), 500) {
		t.Errorf("error detail = %+v, want required 1500 available 1000 short 500", insufficient)
	}
	// the inputs are values: the caller's club and assets are untouched
	if !moneyEq(club.CashBalance, 1000) {
		t.Errorf("CashBalance mutated to %s", club.CashBalance)
	}
	if !assets[0].Quantity.Equal(Q(5)) {
		t.Errorf("asset quantity mutated to %s", assets[0].Quantity)
	}
}

func TestExecuteBuy_ConvertsOrderCurrency(t *testing.T) {
	club := newTestClub("EUR", 1000)
	admin := newTestMember(club, "alice")

	// 10 units at 100 USD costs 950 EUR after conversion.
	result, err := ExecuteBuy(DefaultRates, club, nil, "TSLA", Q(10), M(100, "USD"), admin)
	if err != nil {
		t.Fatalf("ExecuteBuy: %v", err)
	}
	if !moneyEq(result.Club.CashBalance, 50) {
		t.Errorf("CashBalance = %s, want 50", result.Club.CashBalance)
	}
	// avg price stays in the order's native currency
	if got := result.Assets[0].AvgBuyPrice; got.Currency() != "USD" || !moneyEq(got, 100) {
		t.Errorf("AvgBuyPrice = %s %s, want 100 USD", got, got.Currency())
	}
}

func TestExecuteBuy_RejectsNonPositiveInputs(t *testing.T) {
	club := newTestClub("EUR", 1000)
	admin := newTestMember(club, "alice")

	for _, tc := range []struct {
		name  string
		qty   Quantity
		price Money
	}{
		{name: "zero quantity", qty: Q(0), price: M(100, "EUR")},
		{name: "negative quantity", qty: Q(-1), price: M(100, "EUR")},
		{name: "zero price", qty: Q(10), price: M(0, "EUR")},
	} {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ExecuteBuy(DefaultRates, club, nil, "AAPL", tc.qty, tc.price, admin)
			var invalid InvalidAmountError
			if !errors.As(err, &invalid) {
				t.Errorf("error = %v, want InvalidAmountError", err)
			}
		})
	}
}

func TestExecuteSell_RealizedGainAndTax(t *testing.T) {
	// Holding 10 units at avg cost 100, selling 10 @150 realizes 500 and
	// accrues 157.0 of tax.
	club := newTestClub("EUR", 0)
	admin := newTestMember(club, "alice")
	assets := []Asset{newTestAsset(club, "AAPL", 10, 100, "EUR")}

	result, err := ExecuteSell(DefaultRates, club, assets, "AAPL", Q(10), M(150, "EUR"), admin)
	if err != nil {
		t.Fatalf("ExecuteSell: %v", err)
	}

	if !moneyEq(result.Transaction.RealizedGain, 500) {
		t.Errorf("RealizedGain = %s, want 500", result.Transaction.RealizedGain)
	}
	if !result.Transaction.Quantity.Equal(Q(10)) {
		t.Errorf("transaction Quantity = %s, want 10", result.Transaction.Quantity)
	}
	if !moneyEq(result.Club.TaxLiability, 157) {
		t.Errorf("TaxLiability = %s, want 157.0", result.Club.TaxLiability)
	}
	if !moneyEq(result.Club.CashBalance, 1500) {
		t.Errorf("CashBalance = %s, want 1500", result.Club.CashBalance)
	}
}

func TestExecuteSell_NoTaxOnLoss(t *testing.T) {
	club := newTestClub("EUR", 0)
	admin := newTestMember(club, "alice")
	assets := []Asset{newTestAsset(club, "AAPL", 10, 100, "EUR")}

	result, err := ExecuteSell(DefaultRates, club, assets, "AAPL", Q(5), M(80, "EUR"), admin)
	if err != nil {
		t.Fatalf("ExecuteSell: %v", err)
	}

	if !result.Transaction.RealizedGain.IsNegative() {
		t.Errorf("RealizedGain = %s, want a loss", result.Transaction.RealizedGain)
	}
	// no tax on a loss, and no refund either
	if !result.Club.TaxLiability.IsZero() {
		t.Errorf("TaxLiability = %s, want 0", result.Club.TaxLiability)
	}
}

func TestExecuteSell_FullSaleRemovesAsset(t *testing.T) {
	club := newTestClub("EUR", 0)
	admin := newTestMember(club, "alice")
	assets := []Asset{
		newTestAsset(club, "AAPL", 10, 100, "EUR"),
		newTestAsset(club, "GOOG", 2, 2800, "EUR"),
	}

	result, err := ExecuteSell(DefaultRates, club, assets, "AAPL", Q(10), M(150, "EUR"), admin)
	if err != nil {
		t.Fatalf("ExecuteSell: %v", err)
	}

	if len(result.Assets) != 1 || result.Assets[0].Ticker != "GOOG" {
		t.Errorf("Assets = %+v, want only GOOG left", result.Assets)
	}
}

func TestExecuteSell_PartialSaleKeepsAveragePrice(t *testing.T) {
	club := newTestClub("EUR", 0)
	admin := newTestMember(club, "alice")
	assets := []Asset{newTestAsset(club, "AAPL", 10, 100, "EUR")}

	result, err := ExecuteSell(DefaultRates, club, assets, "AAPL", Q(4), M(150, "EUR"), admin)
	if err != nil {
		t.Fatalf("ExecuteSell: %v", err)
	}

	asset := result.Assets[0]
	if !asset.Quantity.Equal(Q(6)) {
		t.Errorf("Quantity = %s, want 6", asset.Quantity)
	}
	// selling does not change the average acquisition cost
	if !moneyEq(asset.AvgBuyPrice, 100) {
		t.Errorf("AvgBuyPrice = %s, want 100", asset.AvgBuyPrice)
	}
}

func TestExecuteSell_InsufficientHoldings(t *testing.T) {
	club := newTestClub("EUR", 0)
	admin := newTestMember(club, "alice")
	assets := []Asset{newTestAsset(club, "AAPL", 5, 100, "EUR")}

	testCases := []struct {
		name      string
		ticker    string
		qty       float64
		wantHeld  float64
		wantAsked float64
	}{
		{name: "more than held", ticker: "AAPL", qty: 10, wantHeld: 5, wantAsked: 10},
		{name: "unknown ticker", ticker: "GOOG", qty: 1, wantHeld: 0, wantAsked: 1},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ExecuteSell(DefaultRates, club, assets, tc.ticker, Q(tc.qty), M(150, "EUR"), admin)
			var insufficient InsufficientHoldingsError
			if !errors.As(err, &insufficient) {
				t.Fatalf("error = %v, want InsufficientHoldingsError", err)
			}
			if !insufficient.Held.Equal(Q(tc.wantHeld)) || !insufficient.Requested.Equal(Q(tc.wantAsked)) {
				t.Errorf("error detail = %+v, want held %v requested %v", insufficient, tc.wantHeld, tc.wantAsked)
			}
		})
	}
}
