package websocket

import (
	"testing"
	"time"

	"oguso-digital-be/internal/dto"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type quietLogger struct{}

func (quietLogger) Debug(string, string, map[string]interface{}) {}
func (quietLogger) Info(string, string, map[string]interface{})  {}
func (quietLogger) Warn(string, string, map[string]interface{})  {}
func (quietLogger) Error(string, string, map[string]interface{}) {}
func (quietLogger) Sync() error                                  { return nil }

func newTestHub() *Hub {
	h := NewHub(nil, quietLogger{})
	go h.Run()
	return h
}

func (h *Hub) clientCount(userID uuid.UUID) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients[userID])
}

func TestBroadcastReachesRegisteredClient(t *testing.T) {
	h := newTestHub()

	client := &Client{Hub: h, UserID: uuid.New(), Send: make(chan []byte, 8)}
	h.register <- client
	require.Eventually(t, func() bool {
		return h.clientCount(client.UserID) == 1
	}, time.Second, 10*time.Millisecond)

	h.Broadcast(dto.AdminNotification{Type: "contact_received"})

	select {
	case msg := <-client.Send:
		assert.Contains(t, string(msg), "contact_received")
	case <-time.After(time.Second):
		t.Fatal("no message delivered")
	}
}

func TestFullBufferClientIsDroppedOnce(t *testing.T) {
	h := newTestHub()

	client := &Client{Hub: h, UserID: uuid.New(), Send: make(chan []byte, 1)}
	client.Send <- []byte("stale")
	h.register <- client
	require.Eventually(t, func() bool {
		return h.clientCount(client.UserID) == 1
	}, time.Second, 10*time.Millisecond)

	// Both broadcasts hit a full buffer; the hub must survive dropping
	// the client and close Send exactly once.
	h.Broadcast(dto.AdminNotification{Type: "contact_received"})
	h.Broadcast(dto.AdminNotification{Type: "contact_received"})

	require.Eventually(t, func() bool {
		return h.clientCount(client.UserID) == 0
	}, time.Second, 10*time.Millisecond)

	<-client.Send // drain the pre-filled entry
	select {
	case _, ok := <-client.Send:
		assert.False(t, ok, "Send should be closed after the drop")
	case <-time.After(time.Second):
		t.Fatal("Send was never closed")
	}

	// A later broadcast must not see the dropped client.
	h.Broadcast(dto.AdminNotification{Type: "contact_received"})
	assert.Equal(t, 0, h.clientCount(client.UserID))
}

func TestDuplicateUnregisterIsHarmless(t *testing.T) {
	h := newTestHub()

	client := &Client{Hub: h, UserID: uuid.New(), Send: make(chan []byte, 1)}
	h.register <- client
	require.Eventually(t, func() bool {
		return h.clientCount(client.UserID) == 1
	}, time.Second, 10*time.Millisecond)

	h.unregister <- client
	h.unregister <- client

	require.Eventually(t, func() bool {
		return h.clientCount(client.UserID) == 0
	}, time.Second, 10*time.Millisecond)

	// The hub loop must still be alive.
	other := &Client{Hub: h, UserID: uuid.New(), Send: make(chan []byte, 1)}
	h.register <- other
	require.Eventually(t, func() bool {
		return h.clientCount(other.UserID) == 1
	}, time.Second, 10*time.Millisecond)
}
