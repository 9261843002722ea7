package clubfolio

import (
	"fmt"
	"math"
)

// The engine reports precondition failures as typed errors so callers can
// show the figures involved without parsing messages. No partial state
// mutation ever escapes alongside one of these.

// InvalidAmountError reports a non-positive or non-finite monetary input.
type InvalidAmountError struct {
	Value float64
}

func (e InvalidAmountError) Error() string {
	return fmt.Sprintf("invalid amount %v: must be a positive finite number", e.Value)
}

// InvalidNavError reports a non-positive NAV per share supplied to a
// capital-flow operation. Shares cannot be priced at zero or below.
type InvalidNavError struct {
	Nav Money
}

func (e InvalidNavError) Error() string {
	return fmt.Sprintf("invalid nav per share %s: must be positive", e.Nav)
}

// InsufficientFundsError reports a buy order exceeding the club's cash.
type InsufficientFundsError struct {
	Required  Money
	Available Money
}

// Shortfall returns the missing amount.
func (e InsufficientFundsError) Shortfall() Money { return e.Required.Sub(e.Available) }

func (e InsufficientFundsError) Error() string {
	return fmt.Sprintf("insufficient funds: required %s, available %s, short %s",
		e.Required, e.Available, e.Shortfall())
}

// InsufficientHoldingsError reports a sell order exceeding the held quantity.
type InsufficientHoldingsError struct {
	Ticker    string
	Held      Quantity
	Requested Quantity
}

func (e InsufficientHoldingsError) Error() string {
	return fmt.Sprintf("insufficient holdings: cannot sell %s of %s, position is only %s",
		e.Requested, e.Ticker, e.Held)
}

// InsufficientTreasuryError reports a withdrawal exceeding the club's cash.
type InsufficientTreasuryError struct {
	Requested Money
	Available Money
}

func (e InsufficientTreasuryError) Error() string {
	return fmt.Sprintf("insufficient treasury: cannot withdraw %s, cash balance is %s",
		e.Requested, e.Available)
}

// InsufficientSharesError reports a withdrawal burning more shares than the
// member owns.
type InsufficientSharesError struct {
	Owned    Quantity
	Required Quantity
}

func (e InsufficientSharesError) Error() string {
	return fmt.Sprintf("insufficient shares: member owns %s, withdrawal requires %s",
		e.Owned, e.Required)
}

// validAmount checks that a raw float is a positive finite number before it
// enters the decimal domain (decimal cannot represent NaN or Inf).
func validAmount(v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
		return InvalidAmountError{Value: v}
	}
	return nil
}
