package feed

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
)

// feedServer serves one WebSocket connection and writes the given frames.
func feedServer(t *testing.T, frames [][]byte) *httptest.Server {
	t.Helper()
	upgrader := websocket.Upgrader{}
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			t.Errorf("upgrade failed: %v", err)
			return
		}
		defer conn.Close()
		for _, f := range frames {
			if err := conn.WriteMessage(websocket.TextMessage, f); err != nil {
				return
			}
		}
		// Hold the connection open until the client goes away.
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}))
}

func wsURL(srv *httptest.Server) string {
	return "ws" + strings.TrimPrefix(srv.URL, "http")
}

func waitMessage(t *testing.T, c *Client) string {
	t.Helper()
	select {
	case msg := <-c.Messages():
		return msg
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for a feed message")
		return ""
	}
}

// TestClientReceivesMessages tests dialing and frame delivery
func TestClientReceivesMessages(t *testing.T) {
	srv := feedServer(t, [][]byte{
		[]byte("  hello panel  \n"),
		[]byte("مرحبا"),
	})
	defer srv.Close()

	c := NewClient(wsURL(srv))
	if err := c.Connect(context.Background()); err != nil {
		t.Fatalf("Connect() failed: %v", err)
	}
	defer c.Close()

	if got := waitMessage(t, c); got != "hello panel" {
		t.Errorf("message = %q, want trimmed %q", got, "hello panel")
	}
	if got := waitMessage(t, c); got != "مرحبا" {
		t.Errorf("message = %q, want %q", got, "مرحبا")
	}
}

// TestClientSkipsBlankFrames tests that whitespace-only frames never reach
// the display
func TestClientSkipsBlankFrames(t *testing.T) {
	srv := feedServer(t, [][]byte{
		[]byte("   \n\t"),
		[]byte("real message"),
	})
	defer srv.Close()

	c := NewClient(wsURL(srv))
	if err := c.Connect(context.Background()); err != nil {
		t.Fatalf("Connect() failed: %v", err)
	}
	defer c.Close()

	if got := waitMessage(t, c); got != "real message" {
		t.Errorf("message = %q, want %q", got, "real message")
	}
}

// TestClientConnectError tests dial failure reporting
func TestClientConnectError(t *testing.T) {
	c := NewClient("ws://127.0.0.1:1/nope")
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	if err := c.Connect(ctx); err == nil {
		t.Error("expected connect error")
	}
}
