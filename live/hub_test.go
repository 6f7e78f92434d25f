package live

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(room string) *Client {
	return &Client{Room: room, Send: make(chan []byte, 8)}
}

func receiveUpdate(t *testing.T, c *Client) Update {
	t.Helper()
	select {
	case data := <-c.Send:
		var u Update
		require.NoError(t, json.Unmarshal(data, &u))
		return u
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for update")
		return Update{}
	}
}

func TestHub_BroadcastReachesOnlyTheRoom(t *testing.T) {
	hub := NewHub()
	go hub.Run()
	defer hub.Stop()

	evClient := newTestClient("ev1")
	globalClient := newTestClient(GlobalRoom)
	hub.register <- evClient
	hub.register <- globalClient

	hub.TicketIssued("ev1")

	u := receiveUpdate(t, evClient)
	assert.Equal(t, "ticket_issued", u.Type)
	assert.Equal(t, "ev1", u.EventID)
	assert.NotZero(t, u.Timestamp)

	select {
	case data := <-globalClient.Send:
		t.Fatalf("global room received event update: %s", data)
	case <-time.After(50 * time.Millisecond):
	}
}

func TestHub_AppStatusGoesToGlobalRoom(t *testing.T) {
	hub := NewHub()
	go hub.Run()
	defer hub.Stop()

	c := newTestClient(GlobalRoom)
	hub.register <- c

	hub.AppStatus(false)

	u := receiveUpdate(t, c)
	assert.Equal(t, "app_status", u.Type)
	require.NotNil(t, u.Online)
	assert.False(t, *u.Online)
}

func TestHub_EventPhase(t *testing.T) {
	hub := NewHub()
	go hub.Run()
	defer hub.Stop()

	c := newTestClient("ev1")
	hub.register <- c

	hub.EventPhase("ev1", "Live")

	u := receiveUpdate(t, c)
	assert.Equal(t, "event_phase", u.Type)
	assert.Equal(t, "Live", u.Phase)
}

func TestHub_UnregisterClosesSend(t *testing.T) {
	hub := NewHub()
	go hub.Run()
	defer hub.Stop()

	c := newTestClient("ev1")
	hub.register <- c
	hub.unregister <- c

	select {
	case _, ok := <-c.Send:
		assert.False(t, ok)
	case <-time.After(time.Second):
		t.Fatal("send channel was not closed")
	}

	// Broadcasting to the emptied room must not block.
	hub.TicketIssued("ev1")
}
