package changebus

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRedisBus(t *testing.T) (*RedisBus, *miniredis.Miniredis) {
	t.Helper()

	server := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: server.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return NewRedisBus(client, "ecospot:", slog.New(slog.NewTextHandler(io.Discard, nil))), server
}

func TestRedisBus_PublishReachesSubscriber(t *testing.T) {
	bus, _ := newTestRedisBus(t)
	ctx := context.Background()

	ch, cancel, err := bus.Subscribe(ctx, "spot:42")
	require.NoError(t, err)
	defer cancel()

	require.NoError(t, bus.Publish(ctx, "spot:42"))
	assert.True(t, receive(t, ch))
}

func TestRedisBus_UsesChannelPrefix(t *testing.T) {
	bus, server := newTestRedisBus(t)
	ctx := context.Background()

	_, cancel, err := bus.Subscribe(ctx, "spots")
	require.NoError(t, err)
	defer cancel()

	assert.Contains(t, server.PubSubChannels(""), "ecospot:spots")
}

func TestRedisBus_CancelClosesChannel(t *testing.T) {
	bus, _ := newTestRedisBus(t)

	ch, cancel, err := bus.Subscribe(context.Background(), "spots")
	require.NoError(t, err)

	cancel()
	assert.False(t, receive(t, ch))
}
