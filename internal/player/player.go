package player

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

const (
	// WriteWait bounds a single write to the peer.
	WriteWait = 10 * time.Second
	// SendBuffer is how many messages may wait for the writer before the
	// client is considered too slow to keep.
	SendBuffer = 16
)

// Connection is an interface that abstracts the websocket connection.
type Connection interface {
	WriteMessage(messageType int, data []byte) error
	ReadMessage() (int, []byte, error)
	SetWriteDeadline(t time.Time) error
	Close() error
}

// Client is a UI connection watching a room. Outgoing messages go through
// a buffered queue drained by WritePump, so nobody else writes to Conn.
type Client struct {
	ID     string
	RoomID string
	Conn   Connection

	mu        sync.Mutex
	send      chan []byte
	closed    bool
	closeOnce sync.Once
	closeErr  error
}

// NewClient creates a client for roomID.
func NewClient(id, roomID string, conn Connection) *Client {
	return &Client{
		ID:     id,
		RoomID: roomID,
		Conn:   conn,
		send:   make(chan []byte, SendBuffer),
	}
}

// Enqueue hands data to the writer without blocking. It reports false when
// the client is closed or its queue is full.
func (c *Client) Enqueue(data []byte) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return false
	}
	select {
	case c.send <- data:
		return true
	default:
		return false
	}
}

// WritePump writes queued messages until the client is closed or a write
// fails. A failed write closes the client.
func (c *Client) WritePump(ctx context.Context) {
	for data := range c.send {
		if c.isClosed() {
			return
		}
		if err := c.write(data); err != nil {
			slog.WarnContext(ctx, "Error writing to client", "client.id", c.ID, "room.id", c.RoomID, "error", err)
			if err := c.Close(); err != nil {
				slog.WarnContext(ctx, "Error closing client connection", "client.id", c.ID, "error", err)
			}
			return
		}
	}
}

// Close stops the writer and closes the connection. Later calls return the
// first result.
func (c *Client) Close() error {
	c.closeOnce.Do(func() {
		c.mu.Lock()
		c.closed = true
		close(c.send)
		c.mu.Unlock()

		c.closeErr = c.Conn.Close()
	})
	return c.closeErr
}

func (c *Client) isClosed() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.closed
}

func (c *Client) write(data []byte) error {
	if err := c.Conn.SetWriteDeadline(time.Now().Add(WriteWait)); err != nil {
		return err
	}
	return c.Conn.WriteMessage(websocket.TextMessage, data)
}
