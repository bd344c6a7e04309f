package hub

import (
	"context"
	"ctchen222/tictactoe-engine/internal/player"
	"log/slog"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// Subscribe attaches conn to a room, starts its writer and queues the
// current state for it.
func (h *Hub) Subscribe(ctx context.Context, roomID string, conn player.Connection) (*player.Client, error) {
	ctx, span := tracer.Start(ctx, "hub.Subscribe", trace.WithAttributes(
		attribute.String("room.id", roomID),
	))
	defer span.End()

	h.mu.Lock()
	defer h.mu.Unlock()

	entry, err := h.entryLocked(roomID)
	if err != nil {
		recordSpanError(span, err, "Room not found")
		return nil, err
	}
	data, err := updateMessage(entry)
	if err != nil {
		recordSpanError(span, err, "Could not encode initial state")
		return nil, err
	}

	client := player.NewClient(uuid.New().String(), roomID, conn)
	go client.WritePump(context.WithoutCancel(ctx))
	client.Enqueue(data)

	entry.clients[client.ID] = client
	span.SetAttributes(attribute.String("client.id", client.ID))
	slog.InfoContext(ctx, "Client subscribed", "room.id", roomID, "client.id", client.ID, "clients.count", len(entry.clients))
	return client, nil
}

// Unsubscribe detaches a client and closes it.
func (h *Hub) Unsubscribe(ctx context.Context, client *player.Client) {
	h.mu.Lock()
	if entry, ok := h.rooms[client.RoomID]; ok {
		if _, ok := entry.clients[client.ID]; ok {
			delete(entry.clients, client.ID)
			slog.InfoContext(ctx, "Client unsubscribed", "room.id", client.RoomID, "client.id", client.ID)
		}
	}
	h.mu.Unlock()

	if err := client.Close(); err != nil {
		slog.DebugContext(ctx, "Error closing client connection", "client.id", client.ID, "error", err)
	}
}
