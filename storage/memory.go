package storage

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"
)

// In-memory implementations of the storage interfaces, selected by
// the "memory" storage driver. They back local development and the
// test suite, so they mirror the Dynamo semantics: scoped lookups,
// per-player delete, conditional puts.

type MemorySessionStorage struct {
	mu    sync.RWMutex
	items map[string]Session
}

func NewMemorySessionStorage() *MemorySessionStorage {
	return &MemorySessionStorage{items: make(map[string]Session)}
}

func (s *MemorySessionStorage) Get(_ context.Context, id string) (*Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	session, ok := s.items[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &session, nil
}

func (s *MemorySessionStorage) Put(_ context.Context, session *Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.items[session.ID]; ok {
		return fmt.Errorf("session %s already exists", session.ID)
	}
	if session.CreatedAt.IsZero() {
		session.CreatedAt = time.Now().UTC()
	}
	s.items[session.ID] = *session
	return nil
}

func (s *MemorySessionStorage) UpdateStatus(_ context.Context, id string, status string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.items[id]
	if !ok {
		return ErrNotFound
	}
	session.Status = status
	s.items[id] = session
	return nil
}

type MemoryPlayerStorage struct {
	mu    sync.RWMutex
	items map[string]map[string]Player // session id -> player id
}

func NewMemoryPlayerStorage() *MemoryPlayerStorage {
	return &MemoryPlayerStorage{items: make(map[string]map[string]Player)}
}

func (s *MemoryPlayerStorage) Get(_ context.Context, sessionID, playerID string) (*Player, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	player, ok := s.items[sessionID][playerID]
	if !ok {
		return nil, ErrNotFound
	}
	return &player, nil
}

func (s *MemoryPlayerStorage) ListBySession(_ context.Context, sessionID string) ([]*Player, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	players := make([]*Player, 0, len(s.items[sessionID]))
	for _, player := range s.items[sessionID] {
		p := player
		players = append(players, &p)
	}
	sort.Slice(players, func(i, j int) bool { return players[i].CreatedAt.Before(players[j].CreatedAt) })
	return players, nil
}

func (s *MemoryPlayerStorage) Put(_ context.Context, player *Player) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if player.CreatedAt.IsZero() {
		player.CreatedAt = time.Now().UTC()
	}
	if s.items[player.SessionID] == nil {
		s.items[player.SessionID] = make(map[string]Player)
	}
	if _, ok := s.items[player.SessionID][player.ID]; ok {
		return fmt.Errorf("player %s already exists in session %s", player.ID, player.SessionID)
	}
	s.items[player.SessionID][player.ID] = *player
	return nil
}

type MemoryFeatureStorage struct {
	mu    sync.RWMutex
	items map[string]map[string]Feature // session id -> feature id
}

func NewMemoryFeatureStorage() *MemoryFeatureStorage {
	return &MemoryFeatureStorage{items: make(map[string]map[string]Feature)}
}

func (s *MemoryFeatureStorage) ListBySession(_ context.Context, sessionID string) ([]*Feature, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	features := make([]*Feature, 0, len(s.items[sessionID]))
	for _, feature := range s.items[sessionID] {
		f := feature
		features = append(features, &f)
	}
	sort.Slice(features, func(i, j int) bool { return features[i].CreatedAt.Before(features[j].CreatedAt) })
	return features, nil
}

func (s *MemoryFeatureStorage) Put(_ context.Context, feature *Feature) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if feature.CreatedAt.IsZero() {
		feature.CreatedAt = time.Now().UTC()
	}
	if s.items[feature.SessionID] == nil {
		s.items[feature.SessionID] = make(map[string]Feature)
	}
	s.items[feature.SessionID][feature.ID] = *feature
	return nil
}

type MemoryVoteStorage struct {
	mu    sync.RWMutex
	items map[string]map[string]Vote // session id -> sort key
}

func NewMemoryVoteStorage() *MemoryVoteStorage {
	return &MemoryVoteStorage{items: make(map[string]map[string]Vote)}
}

func (s *MemoryVoteStorage) DeleteByPlayer(_ context.Context, sessionID, playerID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for sortKey := range s.items[sessionID] {
		if voteKeyMatchesPlayer(sortKey, playerID) {
			delete(s.items[sessionID], sortKey)
		}
	}
	return nil
}

func (s *MemoryVoteStorage) PutBatch(_ context.Context, votes []*Vote) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, vote := range votes {
		if vote.SortKey == "" {
			vote.SortKey = VoteSortKey(vote.PlayerID, vote.FeatureID)
		}
		if vote.CreatedAt.IsZero() {
			vote.CreatedAt = time.Now().UTC()
		}
		if s.items[vote.SessionID] == nil {
			s.items[vote.SessionID] = make(map[string]Vote)
		}
		s.items[vote.SessionID][vote.SortKey] = *vote
	}
	return nil
}

func (s *MemoryVoteStorage) ListBySession(_ context.Context, sessionID string) ([]*Vote, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	votes := make([]*Vote, 0, len(s.items[sessionID]))
	for _, vote := range s.items[sessionID] {
		v := vote
		votes = append(votes, &v)
	}
	sort.Slice(votes, func(i, j int) bool { return votes[i].SortKey < votes[j].SortKey })
	return votes, nil
}

func (s *MemoryVoteStorage) ListVotedPlayers(_ context.Context, sessionID string) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	seen := make(map[string]struct{})
	players := make([]string, 0)
	for _, vote := range s.items[sessionID] {
		if _, ok := seen[vote.PlayerID]; ok {
			continue
		}
		seen[vote.PlayerID] = struct{}{}
		players = append(players, vote.PlayerID)
	}
	sort.Strings(players)
	return players, nil
}
