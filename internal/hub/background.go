package hub

import (
	"context"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// scheduleComputerLocked plays the computer's move after the configured
// delay. Any mutation in between bumps the generation and voids the timer.
func (h *Hub) scheduleComputerLocked(ctx context.Context, entry *roomEntry) {
	if h.opts.BotDelay <= 0 {
		h.playComputerLocked(ctx, entry)
		return
	}

	roomID := entry.room.ID
	generation := entry.generation
	spanCtx := trace.SpanContextFromContext(ctx)

	entry.timer = time.AfterFunc(h.opts.BotDelay, func() {
		h.runComputerMove(trace.ContextWithSpanContext(context.Background(), spanCtx), roomID, generation)
	})
}

func (h *Hub) runComputerMove(ctx context.Context, roomID string, generation uint64) {
	h.mu.Lock()
	defer h.mu.Unlock()

	entry, ok := h.rooms[roomID]
	if !ok || entry.generation != generation {
		slog.DebugContext(ctx, "Discarding stale computer move", "room.id", roomID)
		return
	}
	entry.timer = nil
	h.playComputerLocked(ctx, entry)
}

func (h *Hub) playComputerLocked(ctx context.Context, entry *roomEntry) {
	ctx, span := tracer.Start(ctx, "hub.playComputer", trace.WithAttributes(
		attribute.String("room.id", entry.room.ID),
		attribute.String("bot.difficulty", string(entry.room.Difficulty)),
	))
	defer span.End()

	cell, verdict, err := entry.room.PlayComputer(h.calculator)
	if err != nil {
		slog.ErrorContext(ctx, "Computer could not move", "room.id", entry.room.ID, "error", err)
		recordSpanError(span, err, "Computer could not move")
		return
	}
	span.SetAttributes(attribute.Int("move.cell", cell))
	slog.DebugContext(ctx, "Computer moved", "room.id", entry.room.ID, "move.cell", cell)
	h.metrics.recordMove(ctx, true, verdict)

	h.afterChangeLocked(ctx, entry)
}
