package clubfolio

import (
	"slices"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SellTaxRate is the flat tax accrued on positive realized gains when an
// asset is sold. Distinct from WithdrawalTaxRate: two tax regimes are
// modeled, one on the fund's trading gains and one on member withdrawals.
var SellTaxRate = decimal.NewFromFloat(0.314)

// TradeResult carries the new state produced by a buy or sell order. The
// inputs are left untouched; the caller persists the result atomically.
type TradeResult struct {
	Club        Club
	Assets      []Asset
	Transaction Transaction
}

// ExecuteBuy buys qty units of ticker at the given per-unit price against
// the club's cash. The cost is converted into the club currency before the
// funds check; the holding's weighted average price is maintained in the
// asset's native quote currency.
//
// On any precondition failure the inputs are returned unchanged inside the
// zero result: no partial application.
func ExecuteBuy(rates Rates, club Club, assets []Asset, ticker string, qty Quantity, price Money, actor Member) (TradeResult, error) {
	if !qty.IsPositive() {
		return TradeResult{}, InvalidAmountError{Value: qty.InexactFloat64()}
	}
	if !price.IsPositive() {
		return TradeResult{}, InvalidAmountError{Value: price.InexactFloat64()}
	}

	costNative := price.Mul(qty)
	cost := rates.Convert(costNative, club.Currency)

	if club.CashBalance.LessThan(cost) {
		return TradeResult{}, InsufficientFundsError{Required: cost, Available: club.CashBalance}
	}

	club.CashBalance = club.CashBalance.Sub(cost)

	updated := slices.Clone(assets)
	if i := findAsset(updated, ticker); i >= 0 {
		asset := updated[i]
		// Blend the old and new lots proportionally by quantity. The figures
		// stay in the asset's native currency, unconverted.
		newQty := asset.Quantity.Add(qty)
		blended := asset.CostBasis().Amount().Add(costNative.Amount()).Div(newQty.Value())
		asset.Quantity = newQty
		asset.AvgBuyPrice = M(blended, asset.Currency)
		updated[i] = asset
	} else {
		updated = append(updated, Asset{
			ID:          uuid.NewString(),
			ClubID:      club.ID,
			Ticker:      ticker,
			Quantity:    qty,
			AvgBuyPrice: price,
			Currency:    price.Currency(),
		})
	}

	tx := newTransaction(club.ID, actor.UserID, TxBuy, cost)
	tx.Ticker = ticker
	tx.Quantity = qty
	tx.Price = price

	return TradeResult{Club: club, Assets: updated, Transaction: tx}, nil
}

// ExecuteSell sells qty units of ticker at the given per-unit price. The
// proceeds are credited to the club's cash; a positive realized gain accrues
// SellTaxRate into the tax liability, a loss accrues nothing and refunds
// nothing. Selling never changes the holding's average buy price; selling
// the full position deletes the asset record.
func ExecuteSell(rates Rates, club Club, assets []Asset, ticker string, qty Quantity, price Money, actor Member) (TradeResult, error) {
	if !qty.IsPositive() {
		return TradeResult{}, InvalidAmountError{Value: qty.InexactFloat64()}
	}
	if !price.IsPositive() {
		return TradeResult{}, InvalidAmountError{Value: price.InexactFloat64()}
	}

	i := findAsset(assets, ticker)
	if i < 0 {
		return TradeResult{}, InsufficientHoldingsError{Ticker: ticker, Held: Q(0), Requested: qty}
	}
	asset := assets[i]
	if asset.Quantity.LessThan(qty) {
		return TradeResult{}, InsufficientHoldingsError{Ticker: ticker, Held: asset.Quantity, Requested: qty}
	}

	revenue := rates.Convert(price.Mul(qty), club.Currency)
	costBasis := rates.Convert(asset.AvgBuyPrice.Mul(qty), club.Currency)
	realizedGain := revenue.Sub(costBasis)

	if realizedGain.IsPositive() {
		club.TaxLiability = club.TaxLiability.Add(realizedGain.MulRate(SellTaxRate))
	}
	club.CashBalance = club.CashBalance.Add(revenue)

	updated := slices.Clone(assets)
	remaining := asset.Quantity.Sub(qty)
	if remaining.IsPositive() {
		asset.Quantity = remaining
		updated[i] = asset
	} else {
		updated = slices.Delete(updated, i, i+1)
	}

	tx := newTransaction(club.ID, actor.UserID, TxSell, revenue)
	tx.Ticker = ticker
	tx.Quantity = qty
	tx.Price = price
	tx.RealizedGain = realizedGain

	return TradeResult{Club: club, Assets: updated, Transaction: tx}, nil
}
