package realtime

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestHub(t *testing.T) *Hub {
	t.Helper()
	hub := NewHub(slog.New(slog.NewTextHandler(io.Discard, nil)))
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	go hub.Run(ctx)
	return hub
}

func TestHub_BroadcastToRoom(t *testing.T) {
	hub := newTestHub(t)

	inRoom := NewClient(hub, nil, CompetitionRoom(7))
	elsewhere := NewClient(hub, nil, CompetitionRoom(8))
	hub.Register(inRoom)
	hub.Register(elsewhere)
	require.Eventually(t, func() bool {
		return hub.RoomSize(CompetitionRoom(7)) == 1 && hub.RoomSize(CompetitionRoom(8)) == 1
	}, time.Second, 5*time.Millisecond)

	hub.BroadcastToRoom(CompetitionRoom(7), Message{Type: MessageMatchUpdated, Payload: map[string]int{"id": 3}})

	select {
	case raw := <-inRoom.send:
		var msg Message
		require.NoError(t, json.Unmarshal(raw, &msg))
		assert.Equal(t, MessageMatchUpdated, msg.Type)
	case <-time.After(time.Second):
		t.Fatal("message was not delivered")
	}
	assert.Empty(t, elsewhere.send)
}

func TestHub_UnregisterClosesClient(t *testing.T) {
	hub := newTestHub(t)

	c := NewClient(hub, nil, "competition_1")
	hub.Register(c)
	require.Eventually(t, func() bool { return hub.RoomSize("competition_1") == 1 }, time.Second, 5*time.Millisecond)

	hub.Unregister(c)
	require.Eventually(t, func() bool { return hub.RoomSize("competition_1") == 0 }, time.Second, 5*time.Millisecond)

	_, open := <-c.send
	assert.False(t, open)

	// Broadcasting to a room without clients is a no-op.
	hub.BroadcastToRoom("competition_1", Message{Type: MessageMatchDeleted})
}

func TestCompetitionRoom(t *testing.T) {
	assert.Equal(t, "competition_12", CompetitionRoom(12))
}
