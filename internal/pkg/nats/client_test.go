package nats

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/nats-io/nats-server/v2/server"
	natsserver "github.com/nats-io/nats-server/v2/test"
	"github.com/nats-io/nats.go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runServer(t *testing.T) *server.Server {
	opts := natsserver.DefaultTestOptions
	opts.Port = -1
	s := natsserver.RunServer(&opts)
	t.Cleanup(s.Shutdown)
	return s
}

func TestNewClient_InvalidAddress(t *testing.T) {
	client, err := NewClient("nats://127.0.0.1:1", "test")
	assert.Error(t, err)
	assert.Nil(t, client)
	assert.Contains(t, err.Error(), "failed to connect to NATS server")
}

func TestClient_PublishAndQueueSubscribe(t *testing.T) {
	s := runServer(t)

	client, err := NewClient(s.ClientURL(), "test")
	require.NoError(t, err)
	defer client.Close()

	received := make(chan map[string]string, 1)
	_, err = client.QueueSubscribe("location.update", "workers", func(msg *nats.Msg) {
		var payload map[string]string
		_ = json.Unmarshal(msg.Data, &payload)
		received <- payload
	})
	require.NoError(t, err)

	require.NoError(t, client.PublishJSON("location.update", map[string]string{"actor_id": "d1"}))

	select {
	case payload := <-received:
		assert.Equal(t, "d1", payload["actor_id"])
	case <-time.After(2 * time.Second):
		t.Fatal("message not received")
	}
}

func TestClient_RequestJSON(t *testing.T) {
	s := runServer(t)

	client, err := NewClient(s.ClientURL(), "test")
	require.NoError(t, err)
	defer client.Close()

	_, err = client.QueueSubscribe("notification.push", "push", func(msg *nats.Msg) {
		_ = msg.Respond([]byte(`{"delivered":true}`))
	})
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	var reply struct {
		Delivered bool `json:"delivered"`
	}
	require.NoError(t, client.RequestJSON(ctx, "notification.push", map[string]string{"token": "t"}, &reply))
	assert.True(t, reply.Delivered)
}

func TestClient_RequestJSON_NoResponders(t *testing.T) {
	s := runServer(t)

	client, err := NewClient(s.ClientURL(), "test")
	require.NoError(t, err)
	defer client.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 500*time.Millisecond)
	defer cancel()

	var reply map[string]interface{}
	err = client.RequestJSON(ctx, "nobody.home", map[string]string{}, &reply)
	assert.Error(t, err)
}
