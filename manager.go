package clubfolio

import (
	"context"
	"errors"
	"fmt"
	"sync"
)

// maxRetries bounds the re-read/retry cycles on version conflicts caused by
// writers outside this manager.
const maxRetries = 3

// Manager serializes all mutating operations of a club through a single
// logical owner: one lock per club id. Every operation runs the full
// read-snapshot, pure-engine-call, write-back cycle under that lock, so two
// operations on the same club can never interleave their record updates.
// The store's version guard on the club row additionally catches writers
// that bypass this manager; such conflicts are retried from a fresh read.
type Manager struct {
	store    Store
	provider PriceProvider
	rates    Rates

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// NewManager creates a manager over the given store and price provider,
// converting with the default rate table.
func NewManager(store Store, provider PriceProvider) *Manager {
	return &Manager{
		store:    store,
		provider: provider,
		rates:    DefaultRates,
		locks:    make(map[string]*sync.Mutex),
	}
}

// lock returns the mutex owning all mutations of one club.
func (m *Manager) lock(clubID string) *sync.Mutex {
	m.mu.Lock()
	defer m.mu.Unlock()
	l, ok := m.locks[clubID]
	if !ok {
		l = &sync.Mutex{}
		m.locks[clubID] = l
	}
	return l
}

// CreateClub creates a club and its founding admin member. Invite code
// collisions are resolved by regenerating the code and retrying.
func (m *Manager) CreateClub(name, currency, adminUserID, adminName string) (Club, Member, error) {
	club := NewClub(name, currency)
	for {
		err := m.store.CreateClub(club)
		if err == nil {
			break
		}
		if errors.Is(err, ErrInviteCodeTaken) {
			club.InviteCode = NewInviteCode()
			continue
		}
		return Club{}, Member{}, fmt.Errorf("could not create club: %w", err)
	}

	admin := NewMember(club, adminUserID, adminName, RoleAdmin)
	if err := m.store.CreateMember(admin); err != nil {
		return Club{}, Member{}, fmt.Errorf("could not create admin member: %w", err)
	}
	return club, admin, nil
}

// JoinClub adds a member to the club owning the invite code.
func (m *Manager) JoinClub(inviteCode, userID, fullName string) (Club, Member, error) {
	club, err := m.store.ClubByInviteCode(inviteCode)
	if err != nil {
		return Club{}, Member{}, fmt.Errorf("could not resolve invite code: %w", err)
	}
	member := NewMember(club, userID, fullName, RoleMember)
	if err := m.store.CreateMember(member); err != nil {
		return Club{}, Member{}, fmt.Errorf("could not join club %q: %w", club.Name, err)
	}
	return club, member, nil
}

// Summary computes the club's current valuation: read-only, callable at any
// time, no lock needed.
func (m *Manager) Summary(ctx context.Context, clubID string) (PortfolioSummary, error) {
	club, err := m.store.Club(clubID)
	if err != nil {
		return PortfolioSummary{}, err
	}
	assets, err := m.store.Assets(clubID)
	if err != nil {
		return PortfolioSummary{}, err
	}
	prices := ResolvePrices(ctx, m.provider, assets)
	return Valuate(m.rates, club, assets, prices), nil
}

// Deposit issues shares to one member at the current NAV.
func (m *Manager) Deposit(ctx context.Context, clubID, userID string, amount float64) (DepositResult, error) {
	l := m.lock(clubID)
	l.Lock()
	defer l.Unlock()

	var result DepositResult
	err := m.retry(func() error {
		club, member, nav, err := m.loadForCapitalFlow(ctx, clubID, userID)
		if err != nil {
			return err
		}
		result, err = ExecuteDeposit(club, member, amount, nav)
		if err != nil {
			return err
		}
		if err := m.store.SaveClub(result.Club); err != nil {
			return err
		}
		if err := m.store.SaveMember(result.Member); err != nil {
			return err
		}
		result.Transaction, err = m.store.AppendTransaction(result.Transaction)
		return err
	})
	return result, err
}

// CollectiveDeposit applies the identical amount to every member of the club.
func (m *Manager) CollectiveDeposit(ctx context.Context, clubID string, amountPerMember float64) (CollectiveDepositResult, error) {
	l := m.lock(clubID)
	l.Lock()
	defer l.Unlock()

	var result CollectiveDepositResult
	err := m.retry(func() error {
		club, err := m.store.Club(clubID)
		if err != nil {
			return err
		}
		members, err := m.store.Members(clubID)
		if err != nil {
			return err
		}
		nav, err := m.currentNav(ctx, club)
		if err != nil {
			return err
		}
		result, err = ExecuteCollectiveDeposit(club, members, amountPerMember, nav)
		if err != nil {
			return err
		}
		if len(result.Members) == 0 {
			return nil
		}
		if err := m.store.SaveClub(result.Club); err != nil {
			return err
		}
		for _, member := range result.Members {
			if err := m.store.SaveMember(member); err != nil {
				return err
			}
		}
		for i, tx := range result.Transactions {
			if result.Transactions[i], err = m.store.AppendTransaction(tx); err != nil {
				return err
			}
		}
		return nil
	})
	return result, err
}

// Withdraw redeems cash for one member at the current NAV.
func (m *Manager) Withdraw(ctx context.Context, clubID, userID string, amount float64) (WithdrawalResult, error) {
	l := m.lock(clubID)
	l.Lock()
	defer l.Unlock()

	var result WithdrawalResult
	err := m.retry(func() error {
		club, member, nav, err := m.loadForCapitalFlow(ctx, clubID, userID)
		if err != nil {
			return err
		}
		result, err = ExecuteWithdrawal(club, member, amount, nav)
		if err != nil {
			return err
		}
		if err := m.store.SaveClub(result.Club); err != nil {
			return err
		}
		if err := m.store.SaveMember(result.Member); err != nil {
			return err
		}
		result.Transaction, err = m.store.AppendTransaction(result.Transaction)
		return err
	})
	return result, err
}

// Buy executes a buy order on behalf of the acting member.
func (m *Manager) Buy(ctx context.Context, clubID, userID, ticker string, qty, price float64, priceCurrency string) (TradeResult, error) {
	return m.trade(clubID, userID, func(club Club, assets []Asset, actor Member) (TradeResult, error) {
		return ExecuteBuy(m.rates, club, assets, ticker, Q(qty), M(price, priceCurrency), actor)
	})
}

// Sell executes a sell order on behalf of the acting member.
func (m *Manager) Sell(ctx context.Context, clubID, userID, ticker string, qty, price float64, priceCurrency string) (TradeResult, error) {
	return m.trade(clubID, userID, func(club Club, assets []Asset, actor Member) (TradeResult, error) {
		return ExecuteSell(m.rates, club, assets, ticker, Q(qty), M(price, priceCurrency), actor)
	})
}

func (m *Manager) trade(clubID, userID string, execute func(Club, []Asset, Member) (TradeResult, error)) (TradeResult, error) {
	l := m.lock(clubID)
	l.Lock()
	defer l.Unlock()

	var result TradeResult
	err := m.retry(func() error {
		club, err := m.store.Club(clubID)
		if err != nil {
			return err
		}
		assets, err := m.store.Assets(clubID)
		if err != nil {
			return err
		}
		actor, err := m.store.Member(clubID, userID)
		if err != nil {
			return err
		}
		result, err = execute(club, assets, actor)
		if err != nil {
			return err
		}
		if err := m.store.SaveClub(result.Club); err != nil {
			return err
		}
		if err := m.persistAssetChanges(assets, result.Assets); err != nil {
			return err
		}
		result.Transaction, err = m.store.AppendTransaction(result.Transaction)
		return err
	})
	return result, err
}

// persistAssetChanges diffs the before and after holdings: upserts what the
// order touched, deletes what it closed out.
func (m *Manager) persistAssetChanges(before, after []Asset) error {
	for _, a := range after {
		if i := findAsset(before, a.Ticker); i < 0 || !before[i].Quantity.Equal(a.Quantity) {
			if err := m.store.UpsertAsset(a); err != nil {
				return err
			}
		}
	}
	for _, a := range before {
		if findAsset(after, a.Ticker) < 0 {
			if err := m.store.DeleteAsset(a.ID); err != nil {
				return err
			}
		}
	}
	return nil
}

// SnapshotNav freezes the current valuation into the club's NAV history.
func (m *Manager) SnapshotNav(ctx context.Context, clubID string) (NavEntry, error) {
	summary, err := m.Summary(ctx, clubID)
	if err != nil {
		return NavEntry{}, err
	}
	entry := NewNavSnapshot(clubID, summary)
	if err := m.store.AppendNavEntry(entry); err != nil {
		return NavEntry{}, err
	}
	return entry, nil
}

// Club loads a club record.
func (m *Manager) Club(clubID string) (Club, error) {
	return m.store.Club(clubID)
}

// Assets returns the club's current holdings.
func (m *Manager) Assets(clubID string) ([]Asset, error) {
	return m.store.Assets(clubID)
}

// NavHistory returns the persisted NAV entries, oldest first.
func (m *Manager) NavHistory(clubID string) ([]NavEntry, error) {
	return m.store.NavHistory(clubID)
}

// Transactions returns the club's audit trail in acceptance order.
func (m *Manager) Transactions(clubID string) ([]Transaction, error) {
	return m.store.Transactions(clubID)
}

// Members returns the club's membership.
func (m *Manager) Members(clubID string) ([]Member, error) {
	return m.store.Members(clubID)
}

// currentNav valuates the club to obtain the price per share used by
// deposits and withdrawals.
func (m *Manager) currentNav(ctx context.Context, club Club) (Money, error) {
	assets, err := m.store.Assets(club.ID)
	if err != nil {
		return Money{}, err
	}
	prices := ResolvePrices(ctx, m.provider, assets)
	return Valuate(m.rates, club, assets, prices).NavPerShare, nil
}

func (m *Manager) loadForCapitalFlow(ctx context.Context, clubID, userID string) (Club, Member, Money, error) {
	club, err := m.store.Club(clubID)
	if err != nil {
		return Club{}, Member{}, Money{}, err
	}
	member, err := m.store.Member(clubID, userID)
	if err != nil {
		return Club{}, Member{}, Money{}, err
	}
	nav, err := m.currentNav(ctx, club)
	if err != nil {
		return Club{}, Member{}, Money{}, err
	}
	return club, member, nav, nil
}

// LinkBank records the label of the club's external bank account, shown in
// reports so members know where the treasury actually sits.
func (m *Manager) LinkBank(clubID, label string) (Club, error) {
	lock := m.lock(clubID)
	lock.Lock()
	defer lock.Unlock()

	var club Club
	err := m.retry(func() error {
		var err error
		club, err = m.store.Club(clubID)
		if err != nil {
			return err
		}
		club.LinkedBank = label
		return m.store.SaveClub(club)
	})
	if err != nil {
		return Club{}, err
	}
	return club, nil
}

// retry re-runs fn from a fresh read when the club row was changed under us
// by a writer outside this manager.
func (m *Manager) retry(fn func() error) error {
	var err error
	for range maxRetries {
		if err = fn(); !errors.Is(err, ErrVersionConflict) {
			return err
		}
	}
	return fmt.Errorf("operation kept conflicting after %d attempts: %w", maxRetries, err)
}
