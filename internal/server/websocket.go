package server

import (
	"context"
	"ctchen222/tictactoe-engine/internal/api/response"
	"ctchen222/tictactoe-engine/internal/hub"
	"ctchen222/tictactoe-engine/internal/player"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// handleWebSocket upgrades the connection, subscribes it to the room and
// feeds incoming messages to the hub until the client goes away.
func (s *Server) handleWebSocket(c *gin.Context) {
	roomID := c.Param("id")
	ctx, span := tracer.Start(c.Request.Context(), "server.handleWebSocket", trace.WithAttributes(
		attribute.String("http.url", c.Request.URL.String()),
		attribute.String("room.id", roomID),
	))

	if _, err := s.hub.State(ctx, roomID); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "Room not found")
		span.End()
		status := http.StatusInternalServerError
		if errors.Is(err, hub.ErrRoomNotFound) {
			status = http.StatusNotFound
		}
		response.ErrorResponse(c, status, err.Error())
		return
	}

	conn, err := s.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		slog.ErrorContext(ctx, "Failed to upgrade connection", "room.id", roomID, "error", err)
		span.RecordError(err)
		span.SetStatus(codes.Error, "Failed to upgrade connection")
		span.End()
		return
	}

	client, err := s.hub.Subscribe(ctx, roomID, conn)
	if err != nil {
		slog.WarnContext(ctx, "Could not subscribe client", "room.id", roomID, "error", err)
		span.RecordError(err)
		span.SetStatus(codes.Error, "Could not subscribe client")
		span.End()
		conn.Close()
		return
	}
	span.SetAttributes(attribute.String("client.id", client.ID))
	span.End()

	s.readPump(context.WithoutCancel(ctx), client)
}

func (s *Server) readPump(ctx context.Context, client *player.Client) {
	defer s.hub.Unsubscribe(ctx, client)

	for {
		_, raw, err := client.Conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				slog.WarnContext(ctx, "Unexpected websocket close", "client.id", client.ID, "error", err)
			}
			return
		}
		if err := s.hub.HandleMessage(ctx, client.RoomID, raw); err != nil {
			s.hub.SendError(ctx, client, err)
		}
	}
}
