package redis_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	backend "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/mamdani/pkg/adapters/redis"
	"github.com/aretw0/mamdani/pkg/domain"
	contract "github.com/aretw0/mamdani/pkg/ports/tests"
)

func newClient(t *testing.T) (*miniredis.Miniredis, *backend.Client) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := backend.NewClient(&backend.Options{
		Addr: mr.Addr(),
	})
	t.Cleanup(func() { _ = client.Close() })
	return mr, client
}

func TestRedisStore_Contract(t *testing.T) {
	_, client := newClient(t)

	store := redis.NewFromClient(client)
	require.NoError(t, store.Ping(context.Background()))
	contract.RecordStoreContractTest(t, store)
}

func TestRedisStore_TTL_Expiration(t *testing.T) {
	mr, client := newClient(t)

	now := time.Now()
	clock := func() time.Time { return now }
	store := redis.NewFromClient(client, redis.WithTTL(time.Second), redis.WithClock(clock))
	ctx := context.Background()

	rec := domain.NewRecord("irrigation", map[string]float64{"humidity": 65})
	require.NoError(t, store.Save(ctx, rec))

	ids, err := store.List(ctx)
	require.NoError(t, err)
	assert.Contains(t, ids, rec.ID)

	// Key expiry in miniredis.
	mr.FastForward(2 * time.Second)
	_, err = store.Load(ctx, rec.ID)
	assert.ErrorIs(t, err, domain.ErrRecordNotFound)

	// Index entries are pruned lazily once the clock passes their score.
	now = now.Add(2 * time.Second)
	ids, err = store.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, ids)
}

func TestRedisStore_Prefix(t *testing.T) {
	mr, client := newClient(t)

	store := redis.NewFromClient(client, redis.WithPrefix("custom:app:"))
	ctx := context.Background()

	rec := domain.NewRecord("irrigation", nil)
	require.NoError(t, store.Save(ctx, rec))

	assert.True(t, mr.Exists("custom:app:"+rec.ID), "Expected key with custom prefix to exist")
	assert.True(t, mr.Exists("index:custom:app:order"), "Expected index with custom prefix to exist")

	ids, err := store.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{rec.ID}, ids)
}

func TestRedisStore_List_SaveOrderWithinOneTick(t *testing.T) {
	_, client := newClient(t)

	now := time.Unix(1_700_000_000, 0)
	clock := func() time.Time { return now }
	store := redis.NewFromClient(client, redis.WithTTL(time.Hour), redis.WithClock(clock))
	ctx := context.Background()

	var want []string
	for range 5 {
		rec := domain.NewRecord("irrigation", nil)
		require.NoError(t, store.Save(ctx, rec))
		want = append(want, rec.ID)
	}

	ids, err := store.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, want, ids)
}

func TestRedisStore_List_SaveOrderWithoutTTL(t *testing.T) {
	_, client := newClient(t)

	store := redis.NewFromClient(client)
	ctx := context.Background()

	records := []*domain.Record{
		{ID: "zz", Pipeline: "irrigation"},
		{ID: "aa", Pipeline: "irrigation"},
		{ID: "mm", Pipeline: "irrigation"},
	}
	for _, rec := range records {
		require.NoError(t, store.Save(ctx, rec))
	}

	ids, err := store.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"zz", "aa", "mm"}, ids)
}

func TestRedisStore_IndexLikeIDs(t *testing.T) {
	_, client := newClient(t)

	store := redis.NewFromClient(client)
	ctx := context.Background()

	first := domain.NewRecord("irrigation", nil)
	require.NoError(t, store.Save(ctx, first))

	for _, id := range []string{"index", "order", "expiry", "seq"} {
		require.NoError(t, store.Save(ctx, &domain.Record{ID: id, Pipeline: "irrigation"}))
	}
	last := domain.NewRecord("irrigation", nil)
	require.NoError(t, store.Save(ctx, last))

	ids, err := store.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{first.ID, "index", "order", "expiry", "seq", last.ID}, ids)

	got, err := store.Load(ctx, "index")
	require.NoError(t, err)
	assert.Equal(t, "index", got.ID)
}
