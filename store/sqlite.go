package store

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/mattn/go-sqlite3"
	"github.com/shopspring/decimal"

	"github.com/clubfolio/clubfolio"
	"github.com/clubfolio/clubfolio/date"
)

var (
	_ clubfolio.Store = (*Memory)(nil)
	_ clubfolio.Store = (*SQLite)(nil)
)

// SQLite persists the club's records in a single SQLite file. Monetary and
// share figures are stored as decimal strings, never as floats, so nothing
// is lost across a round trip.
type SQLite struct {
	db *sql.DB
}

// Open opens (creating if needed) the SQLite database at path and applies the
// schema. The busy timeout covers concurrent writers from other processes.
func Open(path string) (*SQLite, error) {
	db, err := sql.Open("sqlite3", path+"?_busy_timeout=5000&_journal_mode=WAL&_fk=1")
	if err != nil {
		return nil, fmt.Errorf("could not open database %q: %w", path, err)
	}
	if err := applySchema(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("could not apply schema: %w", err)
	}
	return &SQLite{db: db}, nil
}

func (s *SQLite) Close() error { return s.db.Close() }

func applySchema(db *sql.DB) error {
	schema := `
CREATE TABLE IF NOT EXISTS clubs (
  id            TEXT PRIMARY KEY,
  name          TEXT NOT NULL,
  invite_code   TEXT NOT NULL UNIQUE,
  currency      TEXT NOT NULL,
  cash_balance  TEXT NOT NULL,
  total_shares  TEXT NOT NULL,
  tax_liability TEXT NOT NULL,
  linked_bank   TEXT NOT NULL DEFAULT '',
  version       INTEGER NOT NULL DEFAULT 0
);

CREATE TABLE IF NOT EXISTS members (
  id             TEXT PRIMARY KEY,
  club_id        TEXT NOT NULL REFERENCES clubs(id) ON DELETE CASCADE,
  user_id        TEXT NOT NULL,
  full_name      TEXT NOT NULL,
  role           TEXT NOT NULL,
  shares_owned   TEXT NOT NULL,
  total_invested TEXT NOT NULL,
  joined_at      TEXT NOT NULL,
  UNIQUE(club_id, user_id)
);

CREATE TABLE IF NOT EXISTS assets (
  id            TEXT PRIMARY KEY,
  club_id       TEXT NOT NULL REFERENCES clubs(id) ON DELETE CASCADE,
  ticker        TEXT NOT NULL,
  quantity      TEXT NOT NULL,
  avg_buy_price TEXT NOT NULL,
  currency      TEXT NOT NULL,
  UNIQUE(club_id, ticker)
);

CREATE TABLE IF NOT EXISTS transactions (
  id             TEXT PRIMARY KEY,
  club_id        TEXT NOT NULL REFERENCES clubs(id) ON DELETE CASCADE,
  user_id        TEXT NOT NULL DEFAULT '',
  type           TEXT NOT NULL,
  amount         TEXT NOT NULL,
  shares_change  TEXT NOT NULL,
  ticker         TEXT NOT NULL DEFAULT '',
  quantity       TEXT NOT NULL DEFAULT '0',
  price          TEXT NOT NULL,
  price_currency TEXT NOT NULL DEFAULT '',
  realized_gain  TEXT NOT NULL,
  tax_estimate   TEXT NOT NULL,
  created_at     TEXT NOT NULL,
  seq            INTEGER NOT NULL,
  UNIQUE(club_id, seq)
);

CREATE TABLE IF NOT EXISTS nav_entries (
  id               TEXT PRIMARY KEY,
  club_id          TEXT NOT NULL REFERENCES clubs(id) ON DELETE CASCADE,
  day              TEXT NOT NULL,
  nav_per_share    TEXT NOT NULL,
  total_net_assets TEXT NOT NULL
);
`
	_, err := db.Exec(schema)
	return err
}

// isUniqueViolation reports whether err is a UNIQUE constraint failure.
func isUniqueViolation(err error) bool {
	var serr sqlite3.Error
	return errors.As(err, &serr) && serr.ExtendedCode == sqlite3.ErrConstraintUnique
}

func (s *SQLite) CreateClub(club clubfolio.Club) error {
	_, err := s.db.Exec(`INSERT INTO clubs (id, name, invite_code, currency, cash_balance, total_shares, tax_liability, linked_bank, version)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		club.ID, club.Name, club.InviteCode, club.Currency,
		club.CashBalance.Amount().String(), club.TotalShares.Value().String(), club.TaxLiability.Amount().String(),
		club.LinkedBank, club.Version)
	if isUniqueViolation(err) {
		return clubfolio.ErrInviteCodeTaken
	}
	return err
}

func (s *SQLite) Club(id string) (clubfolio.Club, error) {
	return s.scanClub(s.db.QueryRow(`SELECT id, name, invite_code, currency, cash_balance, total_shares, tax_liability, linked_bank, version
		FROM clubs WHERE id = ?`, id))
}

func (s *SQLite) ClubByInviteCode(code string) (clubfolio.Club, error) {
	return s.scanClub(s.db.QueryRow(`SELECT id, name, invite_code, currency, cash_balance, total_shares, tax_liability, linked_bank, version
		FROM clubs WHERE invite_code = ?`, code))
}

func (s *SQLite) scanClub(row *sql.Row) (clubfolio.Club, error) {
	var c clubfolio.Club
	var cash, shares, tax string
	err := row.Scan(&c.ID, &c.Name, &c.InviteCode, &c.Currency, &cash, &shares, &tax, &c.LinkedBank, &c.Version)
	if errors.Is(err, sql.ErrNoRows) {
		return clubfolio.Club{}, clubfolio.ErrNotFound
	}
	if err != nil {
		return clubfolio.Club{}, err
	}
	if c.CashBalance, err = parseMoney(cash, c.Currency); err != nil {
		return clubfolio.Club{}, err
	}
	if c.TotalShares, err = parseQuantity(shares); err != nil {
		return clubfolio.Club{}, err
	}
	if c.TaxLiability, err = parseMoney(tax, c.Currency); err != nil {
		return clubfolio.Club{}, err
	}
	return c, nil
}

func (s *SQLite) SaveClub(club clubfolio.Club) error {
	res, err := s.db.Exec(`UPDATE clubs SET name = ?, invite_code = ?, cash_balance = ?, total_shares = ?, tax_liability = ?, linked_bank = ?, version = version + 1
		WHERE id = ? AND version = ?`,
		club.Name, club.InviteCode,
		club.CashBalance.Amount().String(), club.TotalShares.Value().String(), club.TaxLiability.Amount().String(),
		club.LinkedBank, club.ID, club.Version)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		if _, err := s.Club(club.ID); errors.Is(err, clubfolio.ErrNotFound) {
			return clubfolio.ErrNotFound
		}
		return clubfolio.ErrVersionConflict
	}
	return nil
}

func (s *SQLite) CreateMember(m clubfolio.Member) error {
	_, err := s.db.Exec(`INSERT INTO members (id, club_id, user_id, full_name, role, shares_owned, total_invested, joined_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		m.ID, m.ClubID, m.UserID, m.FullName, string(m.Role),
		m.SharesOwned.Value().String(), m.TotalInvested.Amount().String(),
		m.JoinedAt.UTC().Format(time.RFC3339Nano))
	if isUniqueViolation(err) {
		return clubfolio.ErrAlreadyMember
	}
	return err
}

func (s *SQLite) Members(clubID string) ([]clubfolio.Member, error) {
	rows, err := s.db.Query(`SELECT m.id, m.club_id, m.user_id, m.full_name, m.role, m.shares_owned, m.total_invested, m.joined_at, c.currency
		FROM members m JOIN clubs c ON c.id = m.club_id
		WHERE m.club_id = ? ORDER BY m.joined_at`, clubID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var members []clubfolio.Member
	for rows.Next() {
		m, err := scanMember(rows)
		if err != nil {
			return nil, err
		}
		members = append(members, m)
	}
	return members, rows.Err()
}

func (s *SQLite) Member(clubID, userID string) (clubfolio.Member, error) {
	rows, err := s.db.Query(`SELECT m.id, m.club_id, m.user_id, m.full_name, m.role, m.shares_owned, m.total_invested, m.joined_at, c.currency
		FROM members m JOIN clubs c ON c.id = m.club_id
		WHERE m.club_id = ? AND m.user_id = ?`, clubID, userID)
	if err != nil {
		return clubfolio.Member{}, err
	}
	defer rows.Close()
	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return clubfolio.Member{}, err
		}
		return clubfolio.Member{}, clubfolio.ErrNotFound
	}
	return scanMember(rows)
}

func scanMember(rows *sql.Rows) (clubfolio.Member, error) {
	var m clubfolio.Member
	var role, shares, invested, joined, currency string
	if err := rows.Scan(&m.ID, &m.ClubID, &m.UserID, &m.FullName, &role, &shares, &invested, &joined, &currency); err != nil {
		return clubfolio.Member{}, err
	}
	m.Role = clubfolio.Role(role)
	var err error
	if m.SharesOwned, err = parseQuantity(shares); err != nil {
		return clubfolio.Member{}, err
	}
	if m.TotalInvested, err = parseMoney(invested, currency); err != nil {
		return clubfolio.Member{}, err
	}
	if m.JoinedAt, err = time.Parse(time.RFC3339Nano, joined); err != nil {
		return clubfolio.Member{}, fmt.Errorf("invalid joined_at for member %s: %w", m.ID, err)
	}
	return m, nil
}

func (s *SQLite) SaveMember(m clubfolio.Member) error {
	res, err := s.db.Exec(`UPDATE members SET full_name = ?, role = ?, shares_owned = ?, total_invested = ? WHERE id = ?`,
		m.FullName, string(m.Role), m.SharesOwned.Value().String(), m.TotalInvested.Amount().String(), m.ID)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err != nil {
		return err
	} else if n == 0 {
		return clubfolio.ErrNotFound
	}
	return nil
}

func (s *SQLite) Assets(clubID string) ([]clubfolio.Asset, error) {
	rows, err := s.db.Query(`SELECT id, club_id, ticker, quantity, avg_buy_price, currency FROM assets WHERE club_id = ? ORDER BY ticker`, clubID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var assets []clubfolio.Asset
	for rows.Next() {
		var a clubfolio.Asset
		var qty, price string
		if err := rows.Scan(&a.ID, &a.ClubID, &a.Ticker, &qty, &price, &a.Currency); err != nil {
			return nil, err
		}
		if a.Quantity, err = parseQuantity(qty); err != nil {
			return nil, err
		}
		if a.AvgBuyPrice, err = parseMoney(price, a.Currency); err != nil {
			return nil, err
		}
		assets = append(assets, a)
	}
	return assets, rows.Err()
}

func (s *SQLite) UpsertAsset(a clubfolio.Asset) error {
	_, err := s.db.Exec(`INSERT INTO assets (id, club_id, ticker, quantity, avg_buy_price, currency)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(club_id, ticker) DO UPDATE SET quantity = excluded.quantity, avg_buy_price = excluded.avg_buy_price, currency = excluded.currency`,
		a.ID, a.ClubID, a.Ticker, a.Quantity.Value().String(), a.AvgBuyPrice.Amount().String(), a.Currency)
	return err
}

func (s *SQLite) DeleteAsset(id string) error {
	res, err := s.db.Exec(`DELETE FROM assets WHERE id = ?`, id)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err != nil {
		return err
	} else if n == 0 {
		return clubfolio.ErrNotFound
	}
	return nil
}

func (s *SQLite) AppendTransaction(tx clubfolio.Transaction) (clubfolio.Transaction, error) {
	dbtx, err := s.db.Begin()
	if err != nil {
		return clubfolio.Transaction{}, err
	}
	defer dbtx.Rollback()

	if err := dbtx.QueryRow(`SELECT COALESCE(MAX(seq), 0) + 1 FROM transactions WHERE club_id = ?`, tx.ClubID).Scan(&tx.Seq); err != nil {
		return clubfolio.Transaction{}, err
	}
	_, err = dbtx.Exec(`INSERT INTO transactions (id, club_id, user_id, type, amount, shares_change, ticker, quantity, price, price_currency, realized_gain, tax_estimate, created_at, seq)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		tx.ID, tx.ClubID, tx.UserID, string(tx.Type),
		tx.Amount.Amount().String(), tx.SharesChange.Value().String(),
		tx.Ticker, tx.Quantity.Value().String(), tx.Price.Amount().String(), tx.Price.Currency(),
		tx.RealizedGain.Amount().String(), tx.TaxEstimate.Amount().String(),
		tx.CreatedAt.UTC().Format(time.RFC3339Nano), tx.Seq)
	if err != nil {
		return clubfolio.Transaction{}, err
	}
	if err := dbtx.Commit(); err != nil {
		return clubfolio.Transaction{}, err
	}
	return tx, nil
}

func (s *SQLite) Transactions(clubID string) ([]clubfolio.Transaction, error) {
	rows, err := s.db.Query(`SELECT t.id, t.club_id, t.user_id, t.type, t.amount, t.shares_change, t.ticker, t.quantity, t.price, t.price_currency, t.realized_gain, t.tax_estimate, t.created_at, t.seq, c.currency
		FROM transactions t JOIN clubs c ON c.id = t.club_id
		WHERE t.club_id = ? ORDER BY t.seq`, clubID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var txs []clubfolio.Transaction
	for rows.Next() {
		var tx clubfolio.Transaction
		var typ, amount, shares, quantity, price, priceCur, gain, tax, created, currency string
		if err := rows.Scan(&tx.ID, &tx.ClubID, &tx.UserID, &typ, &amount, &shares, &tx.Ticker, &quantity, &price, &priceCur, &gain, &tax, &created, &tx.Seq, &currency); err != nil {
			return nil, err
		}
		tx.Type = clubfolio.TransactionType(typ)
		if tx.Amount, err = parseMoney(amount, currency); err != nil {
			return nil, err
		}
		if tx.SharesChange, err = parseQuantity(shares); err != nil {
			return nil, err
		}
		if tx.Quantity, err = parseQuantity(quantity); err != nil {
			return nil, err
		}
		if tx.Price, err = parseMoney(price, priceCur); err != nil {
			return nil, err
		}
		if tx.RealizedGain, err = parseMoney(gain, currency); err != nil {
			return nil, err
		}
		if tx.TaxEstimate, err = parseMoney(tax, currency); err != nil {
			return nil, err
		}
		if tx.CreatedAt, err = time.Parse(time.RFC3339Nano, created); err != nil {
			return nil, fmt.Errorf("invalid created_at for transaction %s: %w", tx.ID, err)
		}
		txs = append(txs, tx)
	}
	return txs, rows.Err()
}

func (s *SQLite) AppendNavEntry(e clubfolio.NavEntry) error {
	_, err := s.db.Exec(`INSERT INTO nav_entries (id, club_id, day, nav_per_share, total_net_assets) VALUES (?, ?, ?, ?, ?)`,
		e.ID, e.ClubID, e.Date.String(), e.NavPerShare.Amount().String(), e.TotalNetAssets.Amount().String())
	return err
}

func (s *SQLite) NavHistory(clubID string) ([]clubfolio.NavEntry, error) {
	rows, err := s.db.Query(`SELECT n.id, n.club_id, n.day, n.nav_per_share, n.total_net_assets, c.currency
		FROM nav_entries n JOIN clubs c ON c.id = n.club_id
		WHERE n.club_id = ? ORDER BY n.day, n.rowid`, clubID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []clubfolio.NavEntry
	for rows.Next() {
		var e clubfolio.NavEntry
		var day, nav, net, currency string
		if err := rows.Scan(&e.ID, &e.ClubID, &day, &nav, &net, &currency); err != nil {
			return nil, err
		}
		if e.Date, err = date.Parse(day); err != nil {
			return nil, err
		}
		if e.NavPerShare, err = parseMoney(nav, currency); err != nil {
			return nil, err
		}
		if e.TotalNetAssets, err = parseMoney(net, currency); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

func parseMoney(s, currency string) (clubfolio.Money, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return clubfolio.Money{}, fmt.Errorf("invalid stored amount %q: %w", s, err)
	}
	return clubfolio.M(d, currency), nil
}

func parseQuantity(s string) (clubfolio.Quantity, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return clubfolio.Quantity{}, fmt.Errorf("invalid stored quantity %q: %w", s, err)
	}
	return clubfolio.Q(d), nil
}
