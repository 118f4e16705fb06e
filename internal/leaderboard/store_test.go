package leaderboard

import (
	"context"
	"fmt"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	"redditionaire/internal/game"
)

func newTestStore(t *testing.T) (*Store, *miniredis.Miniredis) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	store := NewStore(StoreOptions{
		KV:     NewRedisKV(client),
		TopN:   10,
		Logger: zerolog.Nop(),
	})
	return store, mr
}

func amount(value int64) game.Amount {
	return game.Amount{Display: fmt.Sprintf("$%d", value), Value: value}
}

func TestRecordSortsDescendingByScore(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	assert.NoError(t, store.Record(ctx, "general", "alice", amount(500_000)))
	assert.NoError(t, store.Record(ctx, "general", "bob", amount(1_000_000)))
	assert.NoError(t, store.Record(ctx, "general", "carol", amount(250_000)))

	entries := store.Top(ctx, "general")
	assert.Equal(t, []Entry{
		{Username: "bob", Score: 1_000_000},
		{Username: "alice", Score: 500_000},
		{Username: "carol", Score: 250_000},
	}, entries)
}

func TestRecordSkipsZeroScores(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	assert.NoError(t, store.Record(ctx, "general", "alice", game.ZeroAmount))
	assert.Empty(t, store.Top(ctx, "general"))
}

func TestRecordTruncatesToTopTen(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	for i := 1; i <= 12; i++ {
		assert.NoError(t, store.Record(ctx, "general", fmt.Sprintf("player-%d", i), amount(int64(i)*100_000)))
	}

	entries := store.Top(ctx, "general")
	assert.Len(t, entries, 10)
	assert.Equal(t, int64(1_200_000), entries[0].Score)
	assert.Equal(t, int64(300_000), entries[9].Score, "lowest two scores pushed out")
}

func TestRecordAnonymousFallback(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	assert.NoError(t, store.Record(ctx, "general", "", amount(100_000)))

	entries := store.Top(ctx, "general")
	assert.Len(t, entries, 1)
	assert.Equal(t, "Anonymous", entries[0].Username)
}

func TestTablesAreNamespacedByCommunity(t *testing.T) {
	store, mr := newTestStore(t)
	ctx := context.Background()

	assert.NoError(t, store.Record(ctx, "gaming", "alice", amount(100_000)))
	assert.NoError(t, store.Record(ctx, "science", "bob", amount(200_000)))

	assert.Len(t, store.Top(ctx, "gaming"), 1)
	assert.Len(t, store.Top(ctx, "science"), 1)
	assert.True(t, mr.Exists("leaderboard:gaming"))
	assert.True(t, mr.Exists("leaderboard:science"))
}

func TestTopDegradesToEmptyOnCorruptData(t *testing.T) {
	store, mr := newTestStore(t)
	mr.Set("leaderboard:general", "not-json")

	assert.Empty(t, store.Top(context.Background(), "general"))
}

func TestTopDegradesToEmptyOnReadFailure(t *testing.T) {
	store, mr := newTestStore(t)
	mr.SetError("connection refused")

	assert.Empty(t, store.Top(context.Background(), "general"))
}

func TestRecordFailsOnWriteFailure(t *testing.T) {
	store, mr := newTestStore(t)
	mr.SetError("connection refused")

	err := store.Record(context.Background(), "general", "alice", amount(100_000))
	assert.Error(t, err)
}

func TestClearDropsTable(t *testing.T) {
	store, mr := newTestStore(t)
	ctx := context.Background()

	assert.NoError(t, store.Record(ctx, "general", "alice", amount(100_000)))
	assert.NoError(t, store.Clear(ctx, "general"))
	assert.False(t, mr.Exists("leaderboard:general"))
	assert.Empty(t, store.Top(ctx, "general"))
}

func TestEmptyCommunityFallsBackToDefaultKey(t *testing.T) {
	store, mr := newTestStore(t)

	assert.NoError(t, store.Record(context.Background(), "", "alice", amount(100_000)))
	assert.True(t, mr.Exists("leaderboard:general"))
}
