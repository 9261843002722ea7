package clubfolio

// PriceMap holds the current unit price per ticker, each in the asset's
// native quote currency. The map may be incomplete: a missing or zero entry
// means "no usable quote" and valuation falls back to the asset's average
// buy price.
type PriceMap map[string]Money

// resolve returns the usable price for an asset, falling back to its cost
// basis so a missing quote never corrupts the valuation.
func (p PriceMap) resolve(a Asset) Money {
	if price, ok := p[a.Ticker]; ok && !price.IsZero() {
		return price
	}
	return a.AvgBuyPrice
}

// PortfolioSummary is the point-in-time valuation of a club. Monetary
// figures are rounded to 2 decimal places, the NAV per share to 4; the
// computation itself keeps full precision until this final rounding.
type PortfolioSummary struct {
	TotalNetAssets   Money
	NavPerShare      Money
	TotalMarketValue Money
	TotalCostBasis   Money
	TotalLatentPL    Money
	VariationPercent Percent
	TotalShares      Quantity
	TaxLiability     Money
	CashBalance      Money
}

// Valuate computes the club's portfolio summary from its current holdings
// and a (possibly incomplete) price map. It is a pure function: identical
// inputs always produce the identical summary.
func Valuate(rates Rates, club Club, assets []Asset, prices PriceMap) PortfolioSummary {
	marketValue := M(0, club.Currency)
	costBasis := M(0, club.Currency)

	for _, asset := range assets {
		price := prices.resolve(asset)
		marketValue = marketValue.Add(rates.Convert(asset.MarketValue(price), club.Currency))
		costBasis = costBasis.Add(rates.Convert(asset.CostBasis(), club.Currency))
	}

	// Net assets = holdings + cash - accrued tax provision.
	netAssets := marketValue.Add(club.CashBalance).Sub(club.TaxLiability)

	nav := M(GenesisNav, club.Currency)
	if club.TotalShares.IsPositive() {
		nav = netAssets.Div(club.TotalShares)
	}

	latentPL := marketValue.Sub(costBasis)
	variation := Percent(0)
	if costBasis.IsPositive() {
		variation = Percent(latentPL.Amount().Div(costBasis.Amount()).Mul(newDecimal(100)).Round(2).InexactFloat64())
	}

	return PortfolioSummary{
		TotalNetAssets:   netAssets.Round(2),
		NavPerShare:      nav.Round(4),
		TotalMarketValue: marketValue.Round(2),
		TotalCostBasis:   costBasis.Round(2),
		TotalLatentPL:    latentPL.Round(2),
		VariationPercent: variation,
		TotalShares:      club.TotalShares,
		TaxLiability:     club.TaxLiability,
		CashBalance:      club.CashBalance,
	}
}
