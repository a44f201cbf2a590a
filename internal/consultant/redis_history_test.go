package consultant

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/luxesalon/salon-platform/pkg/logging"
)

func newTestRedisStore(t *testing.T) (*RedisHistoryStore, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewRedisHistoryStore(client, time.Hour), mr
}

func TestRedisHistoryRoundTrip(t *testing.T) {
	store, _ := newTestRedisStore(t)
	ctx := context.Background()

	history := []Message{
		{ID: "m1", Role: RoleUser, Text: "hello", Timestamp: time.Now().UTC().Truncate(time.Second)},
		{ID: "m2", Role: RoleAssistant, Text: "hi there", Timestamp: time.Now().UTC().Truncate(time.Second)},
	}
	require.NoError(t, store.Save(ctx, "sess-1", history))

	loaded, err := store.Load(ctx, "sess-1")
	require.NoError(t, err)
	require.Len(t, loaded, 2)
	assert.Equal(t, history[0].Text, loaded[0].Text)
	assert.Equal(t, RoleAssistant, loaded[1].Role)
}

func TestRedisHistoryUnknownSession(t *testing.T) {
	store, _ := newTestRedisStore(t)

	loaded, err := store.Load(context.Background(), "never-seen")
	require.NoError(t, err)
	assert.Empty(t, loaded)
}

func TestRedisHistorySessionExpiry(t *testing.T) {
	store, mr := newTestRedisStore(t)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "sess-1", []Message{{ID: "m1", Role: RoleUser, Text: "hi"}}))
	require.True(t, mr.Exists("consultation:sess-1"))

	mr.FastForward(2 * time.Hour)

	loaded, err := store.Load(ctx, "sess-1")
	require.NoError(t, err)
	assert.Empty(t, loaded, "expired sessions read as empty")
}

func TestRedisHistorySaveRefreshesTTL(t *testing.T) {
	store, mr := newTestRedisStore(t)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "sess-1", []Message{{ID: "m1", Role: RoleUser, Text: "hi"}}))
	mr.FastForward(30 * time.Minute)
	require.NoError(t, store.Save(ctx, "sess-1", []Message{{ID: "m1", Role: RoleUser, Text: "hi"}, {ID: "m2", Role: RoleAssistant, Text: "hello"}}))
	mr.FastForward(45 * time.Minute)

	loaded, err := store.Load(ctx, "sess-1")
	require.NoError(t, err)
	assert.Len(t, loaded, 2)
}

func TestGatewayWithRedisHistory(t *testing.T) {
	store, _ := newTestRedisStore(t)
	stub := &stubLLMClient{response: LLMResponse{Text: "reply"}}
	gw := NewGateway(stub, store, logging.Default())

	_, err := gw.Send(context.Background(), "sess-1", "hello")
	require.NoError(t, err)

	history, err := gw.History(context.Background(), "sess-1")
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, "hello", history[0].Text)
	assert.Equal(t, "reply", history[1].Text)
}
