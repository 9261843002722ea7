package clubfolio

import "github.com/shopspring/decimal"

// Rates is a fixed conversion table keyed by the ordered "FROM-TO" pair.
// Opposite pairs are quoted independently and are not required to be
// multiplicative inverses of each other.
type Rates map[string]decimal.Decimal

// DefaultRates covers the two settlement currencies the clubs support.
var DefaultRates = Rates{
	"USD-EUR": decimal.NewFromFloat(0.95),
	"EUR-USD": decimal.NewFromFloat(1.05),
}

// Convert returns the amount expressed in the 'to' currency.
//
// Same-currency conversion is an exact identity. An unknown pair falls back
// to the identity too, only retagging the currency: the table is the single
// source of supported pairs and a missing entry is treated as rate 1 rather
// than an error. Tests pin this behavior.
func (r Rates) Convert(m Money, to string) Money {
	if m.Currency() == to {
		return m
	}
	rate, ok := r[m.Currency()+"-"+to]
	if !ok {
		return M(m.value, to)
	}
	return M(m.value.Mul(rate), to)
}
