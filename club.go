package clubfolio

import (
	"time"

	"github.com/google/uuid"
)

// Role describes a member's privileges within a club.
type Role string

const (
	RoleAdmin  Role = "admin"
	RoleMember Role = "member"
)

// GenesisNav is the fixed per-share value of a club before any share exists.
const GenesisNav = 100

// Club is the root record of a pooled investment fund. All monetary fields
// are expressed in the club's settlement currency.
//
// Version is incremented on every write by the store; concurrent writers use
// it as an optimistic guard so that interleaved read-modify-write cycles fail
// instead of silently losing an update.
type Club struct {
	ID          string
	Name        string
	InviteCode  string
	Currency    string
	CashBalance Money
	TotalShares Quantity
	// TaxLiability is the accrued provision for future tax payment. It only
	// ever grows: sells and withdrawals add to it, nothing subtracts.
	TaxLiability Money
	LinkedBank   string
	Version      uint64
}

// NewClub creates a club with a fresh id and invite code and zeroed balances.
func NewClub(name, currency string) Club {
	return Club{
		ID:           uuid.NewString(),
		Name:         name,
		InviteCode:   NewInviteCode(),
		Currency:     currency,
		CashBalance:  M(0, currency),
		TotalShares:  Q(0),
		TaxLiability: M(0, currency),
	}
}

// Member is one participant of one club.
type Member struct {
	ID       string
	UserID   string
	ClubID   string
	FullName string
	Role     Role
	// SharesOwned is this member's slice of the club's TotalShares.
	SharesOwned Quantity
	// TotalInvested is the cumulative gross amount the member deposited, in
	// the club currency. It is never reduced on withdrawal, so the average
	// cost below degrades after repeated withdrawals. Known simplification.
	TotalInvested Money
	JoinedAt      time.Time
}

// NewMember creates a membership record for userID in club.
func NewMember(club Club, userID, fullName string, role Role) Member {
	return Member{
		ID:            uuid.NewString(),
		UserID:        userID,
		ClubID:        club.ID,
		FullName:      fullName,
		Role:          role,
		SharesOwned:   Q(0),
		TotalInvested: M(0, club.Currency),
		JoinedAt:      time.Now(),
	}
}

// AverageCost returns the member's personal average cost per share
// (TotalInvested / SharesOwned), or zero Money when no share is owned.
func (m Member) AverageCost() Money {
	if m.SharesOwned.IsZero() {
		return M(0, m.TotalInvested.Currency())
	}
	return m.TotalInvested.Div(m.SharesOwned)
}

// Asset is one (club, ticker) holding. A record only exists while the held
// quantity is strictly positive; selling down to zero deletes it.
type Asset struct {
	ID     string
	ClubID string
	Ticker string
	// Quantity is the number of units held, always > 0 for a live record.
	Quantity Quantity
	// AvgBuyPrice is the weighted average acquisition cost per unit, in the
	// asset's native quote currency (not the club currency).
	AvgBuyPrice Money
	Currency    string
}

// MarketValue returns quantity times the given unit price.
func (a Asset) MarketValue(price Money) Money { return price.Mul(a.Quantity) }

// CostBasis returns quantity times the average acquisition cost.
func (a Asset) CostBasis() Money { return a.AvgBuyPrice.Mul(a.Quantity) }

// findAsset returns the index of the asset holding this ticker, or -1.
func findAsset(assets []Asset, ticker string) int {
	for i := range assets {
		if assets[i].Ticker == ticker {
			return i
		}
	}
	return -1
}
