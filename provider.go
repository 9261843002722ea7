package clubfolio

import (
	"context"
	"log"
)

// PriceProvider is the market price oracle. Price returns the current price
// of one unit of ticker in the asset's quote currency, or 0 (with or without
// an error) when no quote is available. Callers must treat 0 as "no quote",
// never as a true zero valuation.
type PriceProvider interface {
	Price(ctx context.Context, ticker string) (float64, error)
}

// ResolvePrices queries the provider for every held ticker and builds the
// price map used by Valuate. Failures and zero sentinels are tolerated: the
// ticker is simply left out of the map so valuation falls back to its cost
// basis.
func ResolvePrices(ctx context.Context, provider PriceProvider, assets []Asset) PriceMap {
	prices := make(PriceMap, len(assets))
	if provider == nil {
		return prices
	}
	for _, asset := range assets {
		price, err := provider.Price(ctx, asset.Ticker)
		if err != nil {
			log.Printf("no quote for %s, using cost basis: %v", asset.Ticker, err)
			continue
		}
		if price == 0 {
			continue
		}
		prices[asset.Ticker] = M(price, asset.Currency)
	}
	return prices
}
