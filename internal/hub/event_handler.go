package hub

import (
	"context"
	"ctchen222/tictactoe-engine/internal/game"
	"ctchen222/tictactoe-engine/internal/room"
	"ctchen222/tictactoe-engine/internal/validator"
	"ctchen222/tictactoe-engine/pkg/proto"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

var (
	ErrInvalidMessage = errors.New("invalid message")
	ErrMissingCell    = errors.New("move message requires a cell")
)

// Play places the human's mark on cell.
func (h *Hub) Play(ctx context.Context, roomID string, cell int) (proto.RoomState, error) {
	return h.mutate(ctx, "hub.Play", roomID, func(ctx context.Context, r *room.Room) error {
		verdict, err := r.Play(cell)
		if err != nil {
			return err
		}
		slog.DebugContext(ctx, "Move played", "room.id", roomID, "move.cell", cell)
		h.metrics.recordMove(ctx, false, verdict)
		return nil
	}, attribute.Int("move.cell", cell))
}

// Undo takes back the last move.
func (h *Hub) Undo(ctx context.Context, roomID string) (proto.RoomState, error) {
	return h.mutate(ctx, "hub.Undo", roomID, func(_ context.Context, r *room.Room) error {
		return r.Undo()
	})
}

// Restart starts a new round and keeps the score.
func (h *Hub) Restart(ctx context.Context, roomID string) (proto.RoomState, error) {
	return h.mutate(ctx, "hub.Restart", roomID, func(_ context.Context, r *room.Room) error {
		r.Restart()
		return nil
	})
}

// ResetScore zeroes the score and starts a new round.
func (h *Hub) ResetScore(ctx context.Context, roomID string) (proto.RoomState, error) {
	return h.mutate(ctx, "hub.ResetScore", roomID, func(_ context.Context, r *room.Room) error {
		r.ResetScore()
		return nil
	})
}

// ChangeMode switches between "ai" and "pvp" and starts a new round.
func (h *Hub) ChangeMode(ctx context.Context, roomID, mode string) (proto.RoomState, error) {
	return h.mutate(ctx, "hub.ChangeMode", roomID, func(_ context.Context, r *room.Room) error {
		return r.ChangeMode(room.Mode(mode))
	}, attribute.String("room.mode", mode))
}

// ChangeDifficulty sets how the computer plays from its next move on.
func (h *Hub) ChangeDifficulty(ctx context.Context, roomID, difficulty string) (proto.RoomState, error) {
	return h.mutate(ctx, "hub.ChangeDifficulty", roomID, func(_ context.Context, r *room.Room) error {
		return r.SetDifficulty(difficulty)
	}, attribute.String("bot.difficulty", difficulty))
}

// HandleMessage decodes a websocket message and applies it to the room.
func (h *Hub) HandleMessage(ctx context.Context, roomID string, raw []byte) error {
	ctx, span := tracer.Start(ctx, "hub.HandleMessage", trace.WithAttributes(
		attribute.String("room.id", roomID),
	))
	defer span.End()

	var msg proto.ClientToServerMessage
	if err := json.Unmarshal(raw, &msg); err != nil {
		err = fmt.Errorf("%w: %v", ErrInvalidMessage, err)
		recordSpanError(span, err, "Could not unmarshal message")
		return err
	}
	if err := validator.Struct(msg); err != nil {
		err = fmt.Errorf("%w: %v", ErrInvalidMessage, err)
		recordSpanError(span, err, "Message failed validation")
		return err
	}
	span.SetAttributes(attribute.String("message.type", msg.Type))

	var err error
	switch msg.Type {
	case proto.TypeMove:
		if msg.Cell == nil {
			err = ErrMissingCell
			break
		}
		_, err = h.Play(ctx, roomID, *msg.Cell)
	case proto.TypeUndo:
		_, err = h.Undo(ctx, roomID)
	case proto.TypeRestart:
		_, err = h.Restart(ctx, roomID)
	case proto.TypeResetScore:
		_, err = h.ResetScore(ctx, roomID)
	case proto.TypeMode:
		_, err = h.ChangeMode(ctx, roomID, msg.Mode)
	case proto.TypeDifficulty:
		_, err = h.ChangeDifficulty(ctx, roomID, msg.Difficulty)
	}
	if err != nil {
		recordSpanError(span, err, "Could not apply message")
	}
	return err
}

// mutate runs fn against the room under the hub lock, then broadcasts the
// new state and schedules the computer if it now owes a move.
func (h *Hub) mutate(ctx context.Context, spanName, roomID string, fn func(context.Context, *room.Room) error, attrs ...attribute.KeyValue) (proto.RoomState, error) {
	attrs = append(attrs, attribute.String("room.id", roomID))
	ctx, span := tracer.Start(ctx, spanName, trace.WithAttributes(attrs...))
	defer span.End()

	h.mu.Lock()
	defer h.mu.Unlock()

	entry, err := h.entryLocked(roomID)
	if err != nil {
		recordSpanError(span, err, "Room not found")
		return proto.RoomState{}, err
	}
	if err := fn(ctx, entry.room); err != nil {
		slog.InfoContext(ctx, "Room action rejected", "room.id", roomID, "action", spanName, "error", err)
		recordSpanError(span, err, "Room action rejected")
		return entry.room.Snapshot(), err
	}

	h.afterChangeLocked(ctx, entry)
	return entry.room.Snapshot(), nil
}

func (h *Hub) afterChangeLocked(ctx context.Context, entry *roomEntry) {
	entry.generation++
	if entry.timer != nil {
		entry.timer.Stop()
		entry.timer = nil
	}
	h.broadcastLocked(ctx, entry)
	if entry.room.ComputerToMove() {
		h.scheduleComputerLocked(ctx, entry)
	}
}

func outcomeLabel(v game.Verdict) string {
	if v.Outcome == game.Draw {
		return "draw"
	}
	if v.Winner == game.PlayerX {
		return "x"
	}
	return "o"
}
