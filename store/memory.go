// Package store provides the persistence implementations of the engine's
// Store contract: a SQLite-backed store for real use and an in-memory store
// for tests and ephemeral setups.
package store

import (
	"slices"
	"sync"

	"github.com/clubfolio/clubfolio"
)

// Memory is an in-memory Store. It honors the same version guard and
// per-club sequence semantics as the SQLite store, so the two are
// interchangeable in tests.
type Memory struct {
	mu           sync.RWMutex
	clubs        map[string]clubfolio.Club
	members      map[string][]clubfolio.Member      // clubID -> members
	assets       map[string][]clubfolio.Asset       // clubID -> holdings
	transactions map[string][]clubfolio.Transaction // clubID -> log, seq order
	navEntries   map[string][]clubfolio.NavEntry    // clubID -> history, append order
}

func NewMemory() *Memory {
	return &Memory{
		clubs:        make(map[string]clubfolio.Club),
		members:      make(map[string][]clubfolio.Member),
		assets:       make(map[string][]clubfolio.Asset),
		transactions: make(map[string][]clubfolio.Transaction),
		navEntries:   make(map[string][]clubfolio.NavEntry),
	}
}

func (s *Memory) CreateClub(club clubfolio.Club) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, c := range s.clubs {
		if c.InviteCode == club.InviteCode {
			return clubfolio.ErrInviteCodeTaken
		}
	}
	s.clubs[club.ID] = club
	return nil
}

func (s *Memory) Club(id string) (clubfolio.Club, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	club, ok := s.clubs[id]
	if !ok {
		return clubfolio.Club{}, clubfolio.ErrNotFound
	}
	return club, nil
}

func (s *Memory) ClubByInviteCode(code string) (clubfolio.Club, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, club := range s.clubs {
		if club.InviteCode == code {
			return club, nil
		}
	}
	return clubfolio.Club{}, clubfolio.ErrNotFound
}

func (s *Memory) SaveClub(club clubfolio.Club) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	current, ok := s.clubs[club.ID]
	if !ok {
		return clubfolio.ErrNotFound
	}
	if current.Version != club.Version {
		return clubfolio.ErrVersionConflict
	}
	club.Version++
	s.clubs[club.ID] = club
	return nil
}

func (s *Memory) CreateMember(m clubfolio.Member) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.members[m.ClubID] {
		if existing.UserID == m.UserID {
			return clubfolio.ErrAlreadyMember
		}
	}
	s.members[m.ClubID] = append(s.members[m.ClubID], m)
	return nil
}

func (s *Memory) Members(clubID string) ([]clubfolio.Member, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.members[clubID]), nil
}

func (s *Memory) Member(clubID, userID string) (clubfolio.Member, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, m := range s.members[clubID] {
		if m.UserID == userID {
			return m, nil
		}
	}
	return clubfolio.Member{}, clubfolio.ErrNotFound
}

func (s *Memory) SaveMember(m clubfolio.Member) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	members := s.members[m.ClubID]
	for i := range members {
		if members[i].ID == m.ID {
			members[i] = m
			return nil
		}
	}
	return clubfolio.ErrNotFound
}

func (s *Memory) Assets(clubID string) ([]clubfolio.Asset, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.assets[clubID]), nil
}

func (s *Memory) UpsertAsset(a clubfolio.Asset) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	assets := s.assets[a.ClubID]
	for i := range assets {
		if assets[i].ID == a.ID {
			assets[i] = a
			return nil
		}
	}
	s.assets[a.ClubID] = append(assets, a)
	return nil
}

func (s *Memory) DeleteAsset(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for clubID, assets := range s.assets {
		for i := range assets {
			if assets[i].ID == id {
				s.assets[clubID] = slices.Delete(assets, i, i+1)
				return nil
			}
		}
	}
	return clubfolio.ErrNotFound
}

func (s *Memory) AppendTransaction(tx clubfolio.Transaction) (clubfolio.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	log := s.transactions[tx.ClubID]
	tx.Seq = 1
	if n := len(log); n > 0 {
		tx.Seq = log[n-1].Seq + 1
	}
	s.transactions[tx.ClubID] = append(log, tx)
	return tx, nil
}

func (s *Memory) Transactions(clubID string) ([]clubfolio.Transaction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.transactions[clubID]), nil
}

func (s *Memory) AppendNavEntry(e clubfolio.NavEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.navEntries[e.ClubID] = append(s.navEntries[e.ClubID], e)
	return nil
}

func (s *Memory) NavHistory(clubID string) ([]clubfolio.NavEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.navEntries[clubID]), nil
}
