package broadcast

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func dialHub(t *testing.T, hub *Hub, channel string) *websocket.Conn {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hub.ServeWS(w, r, channel)
	}))
	t.Cleanup(srv.Close)

	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return conn
}

func waitForSubscribers(t *testing.T, hub *Hub, channel string, n int) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for hub.SubscriberCount(channel) < n {
		if time.Now().After(deadline) {
			t.Fatalf("never reached %d subscribers on %s", n, channel)
		}
		time.Sleep(5 * time.Millisecond)
	}
}

func TestHub_PublishReachesSubscriber(t *testing.T) {
	hub := NewHub(zap.NewNop())
	conn := dialHub(t, hub, "battle-NBA-TEST")
	waitForSubscribers(t, hub, "battle-NBA-TEST", 1)

	hub.Publish("battle-NBA-TEST", "game-sync", map[string]string{"code": "NBA-TEST"})

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, msg, err := conn.ReadMessage()
	require.NoError(t, err)

	var ev Event
	require.NoError(t, json.Unmarshal(msg, &ev))
	assert.Equal(t, "game-sync", ev.Event)
	payload, ok := ev.Payload.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "NBA-TEST", payload["code"])
}

func TestHub_ChannelsAreIsolated(t *testing.T) {
	hub := NewHub(zap.NewNop())
	conn := dialHub(t, hub, "battle-AAAA")
	waitForSubscribers(t, hub, "battle-AAAA", 1)

	hub.Publish("battle-BBBB", "game-sync", "other battle")
	hub.Publish("battle-AAAA", "move-made", "mine")

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, msg, err := conn.ReadMessage()
	require.NoError(t, err)

	var ev Event
	require.NoError(t, json.Unmarshal(msg, &ev))
	assert.Equal(t, "move-made", ev.Event, "events from other channels must not leak")
}

func TestHub_DisconnectPrunesSubscriber(t *testing.T) {
	hub := NewHub(zap.NewNop())
	conn := dialHub(t, hub, "battle-GONE")
	waitForSubscribers(t, hub, "battle-GONE", 1)

	conn.Close()
	deadline := time.Now().Add(2 * time.Second)
	for hub.SubscriberCount("battle-GONE") != 0 {
		if time.Now().After(deadline) {
			t.Fatal("closed connection was never pruned")
		}
		time.Sleep(5 * time.Millisecond)
	}
}

func TestHub_PublishToEmptyChannel(t *testing.T) {
	hub := NewHub(zap.NewNop())
	// Nothing listening is not an error.
	hub.Publish("battle-NOBODY", "game-sync", "payload")
	assert.Equal(t, 0, hub.SubscriberCount("battle-NOBODY"))
}

func TestNop(t *testing.T) {
	n := NewNop()
	n.Publish("anywhere", "anything", struct{}{})
}
