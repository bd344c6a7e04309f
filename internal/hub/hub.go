package hub

import (
	"context"
	"ctchen222/tictactoe-engine/internal/bot"
	"ctchen222/tictactoe-engine/internal/hub/types"
	"ctchen222/tictactoe-engine/internal/player"
	"ctchen222/tictactoe-engine/internal/room"
	"ctchen222/tictactoe-engine/pkg/proto"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

var tracer = otel.Tracer("hub")

var ErrRoomNotFound = errors.New("room not found")

// Options configures a Hub.
type Options struct {
	// BotDelay is how long the computer "thinks". Zero plays synchronously.
	BotDelay          time.Duration
	DefaultMode       room.Mode
	DefaultDifficulty bot.Difficulty
}

// Hub manages all the rooms and the clients watching them.
type Hub struct {
	mu         sync.Mutex
	rooms      map[string]*roomEntry
	calculator room.MoveCalculator
	opts       Options
	metrics    *hubMetrics
}

type roomEntry struct {
	room    *room.Room
	clients map[string]*player.Client

	// generation changes on every mutation so stale computer timers can
	// tell they have been overtaken.
	generation uint64
	timer      *time.Timer
}

// NewHub creates a new hub.
func NewHub(calculator room.MoveCalculator, opts Options) *Hub {
	if opts.DefaultMode == "" {
		opts.DefaultMode = room.ModeComputer
	}
	if opts.DefaultDifficulty == "" {
		opts.DefaultDifficulty = bot.Hard
	}
	return &Hub{
		rooms:      make(map[string]*roomEntry),
		calculator: calculator,
		opts:       opts,
		metrics:    newHubMetrics(),
	}
}

// CreateRoom opens a room with an empty board.
func (h *Hub) CreateRoom(ctx context.Context, req types.CreateRoomRequest) (proto.RoomState, error) {
	ctx, span := tracer.Start(ctx, "hub.CreateRoom", trace.WithAttributes(
		attribute.String("room.mode", req.Mode),
		attribute.String("bot.difficulty", req.Difficulty),
	))
	defer span.End()

	mode := h.opts.DefaultMode
	if req.Mode != "" {
		m, err := room.ParseMode(req.Mode)
		if err != nil {
			recordSpanError(span, err, "Invalid mode")
			return proto.RoomState{}, err
		}
		mode = m
	}

	difficulty := h.opts.DefaultDifficulty
	if req.Difficulty != "" {
		d, err := bot.ParseDifficulty(req.Difficulty)
		if err != nil {
			err = fmt.Errorf("%w: %v", room.ErrInvalidDifficulty, err)
			recordSpanError(span, err, "Invalid difficulty")
			return proto.RoomState{}, err
		}
		difficulty = d
	}

	roomID := uuid.New().String()
	span.SetAttributes(attribute.String("room.id", roomID))

	h.mu.Lock()
	defer h.mu.Unlock()

	r := room.NewRoom(roomID, mode, difficulty)
	h.rooms[roomID] = &roomEntry{
		room:    r,
		clients: make(map[string]*player.Client),
	}
	slog.InfoContext(ctx, "Room created", "room.id", roomID, "room.mode", mode, "bot.difficulty", difficulty)

	return r.Snapshot(), nil
}

// State returns the current snapshot of a room.
func (h *Hub) State(ctx context.Context, roomID string) (proto.RoomState, error) {
	_, span := tracer.Start(ctx, "hub.State", trace.WithAttributes(
		attribute.String("room.id", roomID),
	))
	defer span.End()

	h.mu.Lock()
	defer h.mu.Unlock()

	entry, err := h.entryLocked(roomID)
	if err != nil {
		recordSpanError(span, err, "Room not found")
		return proto.RoomState{}, err
	}
	return entry.room.Snapshot(), nil
}

// CloseRoom drops a room, cancels any pending computer move and closes its clients.
func (h *Hub) CloseRoom(ctx context.Context, roomID string) error {
	ctx, span := tracer.Start(ctx, "hub.CloseRoom", trace.WithAttributes(
		attribute.String("room.id", roomID),
	))
	defer span.End()

	h.mu.Lock()
	defer h.mu.Unlock()

	entry, err := h.entryLocked(roomID)
	if err != nil {
		recordSpanError(span, err, "Room not found")
		return err
	}
	h.closeEntryLocked(ctx, entry)
	delete(h.rooms, roomID)
	slog.InfoContext(ctx, "Room closed", "room.id", roomID)
	return nil
}

// RoomCount reports how many rooms are open.
func (h *Hub) RoomCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.rooms)
}

// Shutdown closes every room.
func (h *Hub) Shutdown(ctx context.Context) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for id, entry := range h.rooms {
		h.closeEntryLocked(ctx, entry)
		delete(h.rooms, id)
	}
	slog.InfoContext(ctx, "Hub shut down")
}

func (h *Hub) entryLocked(roomID string) (*roomEntry, error) {
	entry, ok := h.rooms[roomID]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrRoomNotFound, roomID)
	}
	return entry, nil
}

func (h *Hub) closeEntryLocked(ctx context.Context, entry *roomEntry) {
	entry.generation++
	if entry.timer != nil {
		entry.timer.Stop()
		entry.timer = nil
	}
	for id, c := range entry.clients {
		if err := c.Close(); err != nil {
			slog.WarnContext(ctx, "Error closing client connection", "client.id", id, "room.id", entry.room.ID, "error", err)
		}
		delete(entry.clients, id)
	}
}

func recordSpanError(span trace.Span, err error, description string) {
	span.RecordError(err)
	span.SetStatus(codes.Error, description)
}
