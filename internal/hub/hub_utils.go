package hub

import (
	"context"
	"ctchen222/tictactoe-engine/internal/player"
	"ctchen222/tictactoe-engine/pkg/proto"
	"encoding/json"
	"fmt"
	"log/slog"
)

// SendError reports a rejected message to a single client.
func (h *Hub) SendError(ctx context.Context, client *player.Client, cause error) {
	data, err := json.Marshal(&proto.ServerToClientMessage{Type: proto.TypeError, Reason: cause.Error()})
	if err != nil {
		slog.ErrorContext(ctx, "Could not marshal error message", "error", err)
		return
	}
	if !client.Enqueue(data) {
		slog.WarnContext(ctx, "Could not queue error for client", "client.id", client.ID, "room.id", client.RoomID)
	}
}

// broadcastLocked queues the room's state for every client. A client whose
// queue is full or already closed is dropped.
func (h *Hub) broadcastLocked(ctx context.Context, entry *roomEntry) {
	if len(entry.clients) == 0 {
		return
	}
	data, err := updateMessage(entry)
	if err != nil {
		slog.ErrorContext(ctx, "Could not marshal room state", "room.id", entry.room.ID, "error", err)
		return
	}
	for id, c := range entry.clients {
		if c.Enqueue(data) {
			continue
		}
		slog.WarnContext(ctx, "Dropping client that stopped receiving", "room.id", entry.room.ID, "client.id", id)
		if err := c.Close(); err != nil {
			slog.WarnContext(ctx, "Error closing client connection", "room.id", entry.room.ID, "client.id", id, "error", err)
		}
		delete(entry.clients, id)
	}
}

func updateMessage(entry *roomEntry) ([]byte, error) {
	state := entry.room.Snapshot()
	data, err := json.Marshal(&proto.ServerToClientMessage{Type: proto.TypeUpdate, State: &state})
	if err != nil {
		return nil, fmt.Errorf("marshal update: %w", err)
	}
	return data, nil
}
