// Package feed receives display messages pushed by a host over WebSocket.
// Each text frame is one message to show on the panel.
package feed

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/gorilla/websocket"
)

// Client represents a WebSocket message feed client.
type Client struct {
	url      string
	conn     *websocket.Conn
	messages chan string
	done     chan struct{}
}

// NewClient creates a client for the given ws:// or wss:// URL.
func NewClient(url string) *Client {
	return &Client{
		url:      url,
		messages: make(chan string, 10),
		done:     make(chan struct{}),
	}
}

// Connect dials the feed server and starts reading messages.
func (c *Client) Connect(ctx context.Context) error {
	conn, _, err := websocket.DefaultDialer.DialContext(ctx, c.url, nil)
	if err != nil {
		return fmt.Errorf("failed to connect to feed %s: %w", c.url, err)
	}
	c.conn = conn
	go c.readPump(ctx)
	return nil
}

// Messages returns the channel on which received display messages arrive.
func (c *Client) Messages() <-chan string {
	return c.messages
}

// Close closes the client.
func (c *Client) Close() {
	close(c.done)
	if c.conn != nil {
		c.conn.Close()
	}
}

// readPump pumps text frames from the WebSocket connection to the message
// channel. When the channel is full the oldest pending message is the one
// the display has not picked up yet, so new frames are dropped instead.
func (c *Client) readPump(ctx context.Context) {
	defer c.conn.Close()

	c.conn.SetReadLimit(4096)
	c.conn.SetReadDeadline(time.Now().Add(60 * time.Second))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(60 * time.Second))
		return nil
	})

	for {
		select {
		case <-ctx.Done():
			return
		case <-c.done:
			return
		default:
			kind, message, err := c.conn.ReadMessage()
			if err != nil {
				if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
					log.Printf("feed read error: %v", err)
				}
				return
			}
			if kind != websocket.TextMessage {
				continue
			}
			text := strings.TrimSpace(string(message))
			if text == "" {
				continue
			}
			select {
			case c.messages <- text:
			default:
			}
		}
	}
}
