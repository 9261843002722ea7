package store

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/google/uuid"

	"github.com/clubfolio/clubfolio"
	"github.com/clubfolio/clubfolio/date"
)

// Both implementations must behave identically, so every case runs against
// each through the same suite.
func TestStores(t *testing.T) {
	t.Run("memory", func(t *testing.T) {
		runStoreSuite(t, func(t *testing.T) clubfolio.Store { return NewMemory() })
	})
	t.Run("sqlite", func(t *testing.T) {
		runStoreSuite(t, func(t *testing.T) clubfolio.Store {
			s, err := Open(filepath.Join(t.TempDir(), "club.db"))
			if err != nil {
				t.Fatalf("Open: %v", err)
			}
			t.Cleanup(func() { s.Close() })
			return s
		})
	})
}

func runStoreSuite(t *testing.T, open func(t *testing.T) clubfolio.Store) {
	t.Run("club round trip", func(t *testing.T) {
		s := open(t)
		club := clubfolio.NewClub("Les Craypions d'Or", "EUR")
		club.CashBalance = clubfolio.M(1234.56, "EUR")

		if err := s.CreateClub(club); err != nil {
			t.Fatalf("CreateClub: %v", err)
		}
		loaded, err := s.Club(club.ID)
		if err != nil {
			t.Fatalf("Club: %v", err)
		}
		if loaded.Name != club.Name || !loaded.CashBalance.Equal(club.CashBalance) {
			t.Errorf("loaded = %+v, want %+v", loaded, club)
		}

		byCode, err := s.ClubByInviteCode(club.InviteCode)
		if err != nil {
			t.Fatalf("ClubByInviteCode: %v", err)
		}
		if byCode.ID != club.ID {
			t.Errorf("ClubByInviteCode returned %s, want %s", byCode.ID, club.ID)
		}
	})

	t.Run("club not found", func(t *testing.T) {
		s := open(t)
		if _, err := s.Club("nope"); !errors.Is(err, clubfolio.ErrNotFound) {
			t.Errorf("Club error = %v, want ErrNotFound", err)
		}
		if _, err := s.ClubByInviteCode("NOPE42"); !errors.Is(err, clubfolio.ErrNotFound) {
			t.Errorf("ClubByInviteCode error = %v, want ErrNotFound", err)
		}
	})

	t.Run("invite code uniqueness", func(t *testing.T) {
		s := open(t)
		first := clubfolio.NewClub("first", "EUR")
		if err := s.CreateClub(first); err != nil {
			t.Fatalf("CreateClub: %v", err)
		}
		second := clubfolio.NewClub("second", "EUR")
		second.InviteCode = first.InviteCode
		if err := s.CreateClub(second); !errors.Is(err, clubfolio.ErrInviteCodeTaken) {
			t.Errorf("CreateClub error = %v, want ErrInviteCodeTaken", err)
		}
	})

	t.Run("save club guards the version", func(t *testing.T) {
		s := open(t)
		club := clubfolio.NewClub("club", "EUR")
		if err := s.CreateClub(club); err != nil {
			t.Fatalf("CreateClub: %v", err)
		}

		// two snapshots of the same version; the second write must fail
		a, _ := s.Club(club.ID)
		b, _ := s.Club(club.ID)
		a.CashBalance = clubfolio.M(100, "EUR")
		if err := s.SaveClub(a); err != nil {
			t.Fatalf("first SaveClub: %v", err)
		}
		b.CashBalance = clubfolio.M(999, "EUR")
		if err := s.SaveClub(b); !errors.Is(err, clubfolio.ErrVersionConflict) {
			t.Fatalf("second SaveClub error = %v, want ErrVersionConflict", err)
		}

		loaded, _ := s.Club(club.ID)
		if !loaded.CashBalance.Equal(clubfolio.M(100, "EUR")) {
			t.Errorf("CashBalance = %s, the losing write went through", loaded.CashBalance)
		}
		// a stale snapshot must still conflict after a re-read succeeds
		fresh, _ := s.Club(club.ID)
		if err := s.SaveClub(fresh); err != nil {
			t.Errorf("SaveClub after re-read: %v", err)
		}
	})

	t.Run("members", func(t *testing.T) {
		s := open(t)
		club := clubfolio.NewClub("club", "EUR")
		if err := s.CreateClub(club); err != nil {
			t.Fatalf("CreateClub: %v", err)
		}
		alice := clubfolio.NewMember(club, "user-alice", "Alice", clubfolio.RoleAdmin)
		bob := clubfolio.NewMember(club, "user-bob", "Bob", clubfolio.RoleMember)
		for _, m := range []clubfolio.Member{alice, bob} {
			if err := s.CreateMember(m); err != nil {
				t.Fatalf("CreateMember: %v", err)
			}
		}

		members, err := s.Members(club.ID)
		if err != nil {
			t.Fatalf("Members: %v", err)
		}
		if len(members) != 2 {
			t.Fatalf("len(Members) = %d, want 2", len(members))
		}

		alice.SharesOwned = clubfolio.Q(7.5)
		alice.TotalInvested = clubfolio.M(750, "EUR")
		if err := s.SaveMember(alice); err != nil {
			t.Fatalf("SaveMember: %v", err)
		}
		loaded, err := s.Member(club.ID, "user-alice")
		if err != nil {
			t.Fatalf("Member: %v", err)
		}
		if !loaded.SharesOwned.Equal(clubfolio.Q(7.5)) || !loaded.TotalInvested.Equal(clubfolio.M(750, "EUR")) {
			t.Errorf("loaded = %+v, want 7.5 shares and 750 invested", loaded)
		}

		if _, err := s.Member(club.ID, "user-carol"); !errors.Is(err, clubfolio.ErrNotFound) {
			t.Errorf("Member error = %v, want ErrNotFound", err)
		}
	})

	t.Run("one membership per user and club", func(t *testing.T) {
		s := open(t)
		club := clubfolio.NewClub("club", "EUR")
		other := clubfolio.NewClub("other", "EUR")
		for _, c := range []clubfolio.Club{club, other} {
			if err := s.CreateClub(c); err != nil {
				t.Fatalf("CreateClub: %v", err)
			}
		}
		alice := clubfolio.NewMember(club, "user-alice", "Alice", clubfolio.RoleAdmin)
		if err := s.CreateMember(alice); err != nil {
			t.Fatalf("CreateMember: %v", err)
		}

		again := clubfolio.NewMember(club, "user-alice", "Alice", clubfolio.RoleMember)
		if err := s.CreateMember(again); !errors.Is(err, clubfolio.ErrAlreadyMember) {
			t.Fatalf("duplicate CreateMember error = %v, want ErrAlreadyMember", err)
		}
		members, err := s.Members(club.ID)
		if err != nil {
			t.Fatalf("Members: %v", err)
		}
		if len(members) != 1 {
			t.Errorf("len(Members) = %d, want 1", len(members))
		}

		// the same user may belong to a different club
		if err := s.CreateMember(clubfolio.NewMember(other, "user-alice", "Alice", clubfolio.RoleMember)); err != nil {
			t.Errorf("CreateMember in another club: %v", err)
		}
	})

	t.Run("assets", func(t *testing.T) {
		s := open(t)
		club := clubfolio.NewClub("club", "EUR")
		if err := s.CreateClub(club); err != nil {
			t.Fatalf("CreateClub: %v", err)
		}
		asset := clubfolio.Asset{
			ID:          "asset-1",
			ClubID:      club.ID,
			Ticker:      "AAPL",
			Quantity:    clubfolio.Q(10),
			AvgBuyPrice: clubfolio.M(150.25, "USD"),
			Currency:    "USD",
		}
		if err := s.UpsertAsset(asset); err != nil {
			t.Fatalf("UpsertAsset: %v", err)
		}

		asset.Quantity = clubfolio.Q(15)
		if err := s.UpsertAsset(asset); err != nil {
			t.Fatalf("UpsertAsset update: %v", err)
		}
		assets, err := s.Assets(club.ID)
		if err != nil {
			t.Fatalf("Assets: %v", err)
		}
		if len(assets) != 1 || !assets[0].Quantity.Equal(clubfolio.Q(15)) || !assets[0].AvgBuyPrice.Equal(clubfolio.M(150.25, "USD")) {
			t.Errorf("assets = %+v, want one AAPL of 15 @150.25 USD", assets)
		}

		if err := s.DeleteAsset("asset-1"); err != nil {
			t.Fatalf("DeleteAsset: %v", err)
		}
		if assets, _ := s.Assets(club.ID); len(assets) != 0 {
			t.Errorf("assets = %+v after delete, want none", assets)
		}
	})

	t.Run("transactions get sequential seq", func(t *testing.T) {
		s := open(t)
		club := clubfolio.NewClub("club", "EUR")
		if err := s.CreateClub(club); err != nil {
			t.Fatalf("CreateClub: %v", err)
		}

		amounts := []float64{100, 250, 42}
		for _, amount := range amounts {
			tx := clubfolio.Transaction{
				ID:     uuid.NewString(),
				ClubID: club.ID,
				UserID: "user-alice",
				Type:   clubfolio.TxDeposit,
				Amount: clubfolio.M(amount, "EUR"),
			}
			appended, err := s.AppendTransaction(tx)
			if err != nil {
				t.Fatalf("AppendTransaction: %v", err)
			}
			if appended.Seq == 0 {
				t.Errorf("Seq not assigned for amount %v", amount)
			}
		}

		txs, err := s.Transactions(club.ID)
		if err != nil {
			t.Fatalf("Transactions: %v", err)
		}
		if len(txs) != 3 {
			t.Fatalf("len(Transactions) = %d, want 3", len(txs))
		}
		for i, tx := range txs {
			if tx.Seq != int64(i+1) {
				t.Errorf("tx %d Seq = %d, want %d", i, tx.Seq, i+1)
			}
			if !tx.Amount.Equal(clubfolio.M(amounts[i], "EUR")) {
				t.Errorf("tx %d Amount = %s, want %v", i, tx.Amount, amounts[i])
			}
		}

		// a trade keeps its traded quantity through the round trip
		buy := clubfolio.Transaction{
			ID:       uuid.NewString(),
			ClubID:   club.ID,
			UserID:   "user-alice",
			Type:     clubfolio.TxBuy,
			Amount:   clubfolio.M(1500, "EUR"),
			Ticker:   "AAPL",
			Quantity: clubfolio.Q(10),
			Price:    clubfolio.M(150, "EUR"),
		}
		if _, err := s.AppendTransaction(buy); err != nil {
			t.Fatalf("AppendTransaction: %v", err)
		}
		txs, err = s.Transactions(club.ID)
		if err != nil {
			t.Fatalf("Transactions: %v", err)
		}
		last := txs[len(txs)-1]
		if !last.Quantity.Equal(clubfolio.Q(10)) || last.Ticker != "AAPL" {
			t.Errorf("trade round trip = %+v, want 10 AAPL", last)
		}
	})

	t.Run("nav history keeps same day duplicates", func(t *testing.T) {
		s := open(t)
		club := clubfolio.NewClub("club", "EUR")
		if err := s.CreateClub(club); err != nil {
			t.Fatalf("CreateClub: %v", err)
		}

		day := date.New(2025, 3, 10)
		for i, nav := range []float64{101.5, 102.25} {
			e := clubfolio.NavEntry{
				ID:             uuid.NewString(),
				ClubID:         club.ID,
				Date:           day,
				NavPerShare:    clubfolio.M(nav, "EUR"),
				TotalNetAssets: clubfolio.M(1000+float64(i), "EUR"),
			}
			if err := s.AppendNavEntry(e); err != nil {
				t.Fatalf("AppendNavEntry: %v", err)
			}
		}

		entries, err := s.NavHistory(club.ID)
		if err != nil {
			t.Fatalf("NavHistory: %v", err)
		}
		if len(entries) != 2 {
			t.Fatalf("len(NavHistory) = %d, want 2: same day snapshots both kept", len(entries))
		}
		if !entries[1].NavPerShare.Equal(clubfolio.M(102.25, "EUR")) {
			t.Errorf("latest entry = %s, want 102.25", entries[1].NavPerShare)
		}
	})
}
