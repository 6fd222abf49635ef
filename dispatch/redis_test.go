package dispatch

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/hostdeck/wsconnect/api"
	"github.com/hostdeck/wsconnect/model"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedisRelayEnvelope(t *testing.T) {
	relay := NewRedisRelay(&RedisConfig{Addr: "127.0.0.1:1", Prefix: "hostdeck:"})
	defer relay.Stop()

	assert.Equal(t, "hostdeck:notifications", relay.Channel())

	receivedAt := time.Now().Truncate(time.Millisecond)
	msg, err := model.NewMessage([]byte(`{"type":"ping"}`), receivedAt)
	require.NoError(t, err)

	data, err := relay.encode(msg)
	require.NoError(t, err)

	var decoded relayEnvelope
	require.NoError(t, json.Unmarshal(data, &decoded))

	assert.Equal(t, "ws-message", decoded.Event)
	assert.Equal(t, relay.instanceID, decoded.InstanceID)
	assert.True(t, receivedAt.Equal(decoded.ReceivedAt))
	assert.JSONEq(t, `{"type":"ping"}`, string(decoded.Message))
}

func TestRedisRelayInactive(t *testing.T) {
	relay := NewRedisRelay(&RedisConfig{Addr: "127.0.0.1:1"})
	defer relay.Stop()

	assert.False(t, relay.Available())

	msg, err := model.NewMessage([]byte(`{}`), time.Now())
	require.NoError(t, err)

	// not started, nothing is queued
	relay.HandleMessage(msg)
	assert.Equal(t, 0, len(relay.queue))
}

func TestRedisRelayStartUnreachable(t *testing.T) {
	relay := NewRedisRelay(&RedisConfig{Addr: "127.0.0.1:1"})
	defer relay.Stop()

	err := relay.Start()
	assert.Error(t, err)
	assert.False(t, relay.Available())
}

func TestRedisRelayAsListener(t *testing.T) {
	relay := NewRedisRelay(&RedisConfig{Addr: "127.0.0.1:1"})
	defer relay.Stop()

	bridge := NewBridge()
	sub := bridge.Subscribe(relay)
	defer sub.Unsubscribe()

	assert.Nil(t, bridge.HandleFrame([]byte(`{"type":"ping"}`)))
	assert.Equal(t, 1, bridge.Subscribers())
}

func TestRedisRelayInstanceIDUnique(t *testing.T) {
	r1 := NewRedisRelay(&RedisConfig{Addr: "127.0.0.1:1"})
	defer r1.Stop()
	r2 := NewRedisRelay(&RedisConfig{Addr: "127.0.0.1:1"})
	defer r2.Stop()

	assert.NotEqual(t, r1.instanceID, r2.instanceID)
}

func TestRedisRelayPublishes(t *testing.T) {
	server := miniredis.RunT(t)

	relay := NewRedisRelay(&RedisConfig{Addr: server.Addr(), Prefix: "hostdeck:"})
	require.NoError(t, relay.Start())
	defer relay.Stop()
	assert.True(t, relay.Available())

	client := redis.NewClient(&redis.Options{Addr: server.Addr()})
	defer client.Close()

	ctx := context.Background()
	pubsub := client.Subscribe(ctx, "hostdeck:notifications")
	defer pubsub.Close()
	_, err := pubsub.Receive(ctx)
	require.NoError(t, err)
	messages := pubsub.Channel()

	bridge := NewBridge()
	sub := bridge.Subscribe(relay)
	defer sub.Unsubscribe()

	frames := []string{`{"type":"host_added","id":"42"}`, `{"type":"host_removed","id":"42"}`}
	for _, frame := range frames {
		assert.Nil(t, bridge.HandleFrame([]byte(frame)))
	}

	for _, frame := range frames {
		select {
		case msg := <-messages:
			var env relayEnvelope
			require.NoError(t, json.Unmarshal([]byte(msg.Payload), &env))

			assert.Equal(t, api.MessageNotificationName, env.Event)
			assert.Equal(t, relay.instanceID, env.InstanceID)
			assert.False(t, env.ReceivedAt.IsZero())
			assert.JSONEq(t, frame, string(env.Message))
		case <-time.After(2 * time.Second):
			t.Fatal("notification was not relayed")
		}
	}
}

func TestRedisRelayServerGone(t *testing.T) {
	server := miniredis.RunT(t)

	relay := NewRedisRelay(&RedisConfig{Addr: server.Addr()})
	require.NoError(t, relay.Start())

	server.Close()

	bridge := NewBridge()
	sub := bridge.Subscribe(relay)
	defer sub.Unsubscribe()

	// publish errors are only logged, the bridge never waits for Redis
	start := time.Now()
	for i := 0; i < 2*relayQueueSize; i++ {
		assert.Nil(t, bridge.HandleFrame([]byte(`{"type":"ping"}`)))
	}
	assert.Less(t, time.Since(start), time.Second)
	assert.True(t, relay.Available())

	stopped := make(chan struct{})
	go func() {
		_ = relay.Stop()
		close(stopped)
	}()

	select {
	case <-stopped:
	case <-time.After(relayPublishTimeout + time.Second):
		t.Fatal("relay did not stop")
	}
	assert.False(t, relay.Available())
}
