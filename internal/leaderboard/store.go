package leaderboard

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"

	"github.com/rs/zerolog"

	"redditionaire/internal/game"
	"redditionaire/internal/identity"
)

const keyPrefix = "leaderboard:"

// Entry is one leaderboard row.
type Entry struct {
	Username string `json:"username"`
	Score    int64  `json:"score"`
}

// StoreOptions configures the leaderboard store.
type StoreOptions struct {
	KV     KV
	TopN   int
	Logger zerolog.Logger
}

// Store keeps one top-N table per community as a single JSON value. Updates
// are read-modify-write and not atomic across writers: two games finishing
// at the same moment in the same community can race, and the loser's entry
// is silently dropped. Last writer wins.
type Store struct {
	kv     KV
	topN   int
	logger zerolog.Logger
}

func NewStore(opts StoreOptions) *Store {
	topN := opts.TopN
	if topN <= 0 {
		topN = 10
	}
	return &Store{
		kv:     opts.KV,
		topN:   topN,
		logger: opts.Logger.With().Str("component", "leaderboard").Logger(),
	}
}

func key(communityID string) string {
	if communityID == "" {
		communityID = identity.DefaultCommunity
	}
	return keyPrefix + communityID
}

// Top returns the community's table, best score first. Read failures are
// logged and degrade to an empty table, never surfaced to the caller.
func (s *Store) Top(ctx context.Context, communityID string) []Entry {
	entries, err := s.read(ctx, communityID)
	if err != nil {
		s.logger.Warn().Err(err).Str("community_id", communityID).Msg("leaderboard read failed, serving empty table")
		return nil
	}
	return entries
}

// Record implements game.Recorder: append the finished game's score and
// rewrite the top-N table. Zero scores never produce an entry.
func (s *Store) Record(ctx context.Context, communityID, username string, score game.Amount) error {
	if score.Value == 0 {
		return nil
	}
	if username == "" {
		username = identity.AnonymousName
	}

	entries, err := s.read(ctx, communityID)
	if err != nil {
		return fmt.Errorf("read table: %w", err)
	}

	entries = append(entries, Entry{Username: username, Score: score.Value})
	sort.SliceStable(entries, func(i, j int) bool { return entries[i].Score > entries[j].Score })
	if len(entries) > s.topN {
		entries = entries[:s.topN]
	}

	raw, err := json.Marshal(entries)
	if err != nil {
		return fmt.Errorf("marshal table: %w", err)
	}
	if err := s.kv.Set(ctx, key(communityID), string(raw)); err != nil {
		return fmt.Errorf("write table: %w", err)
	}

	s.logger.Info().
		Str("community_id", communityID).
		Str("username", username).
		Int64("score", score.Value).
		Msg("score recorded")
	return nil
}

// Clear drops the community's table.
func (s *Store) Clear(ctx context.Context, communityID string) error {
	return s.kv.Del(ctx, key(communityID))
}

func (s *Store) read(ctx context.Context, communityID string) ([]Entry, error) {
	raw, err := s.kv.Get(ctx, key(communityID))
	if errors.Is(err, ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var entries []Entry
	if err := json.Unmarshal([]byte(raw), &entries); err != nil {
		return nil, fmt.Errorf("decode table: %w", err)
	}
	return entries, nil
}
