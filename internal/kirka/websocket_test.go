package kirka

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

// newWSServer upgrades incoming connections and hands them to onConn.
func newWSServer(t *testing.T, onConn func(conn *websocket.Conn)) string {
	t.Helper()
	upgrader := websocket.Upgrader{
		Subprotocols: []string{"test-token"},
	}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			t.Errorf("upgrade: %v", err)
			return
		}
		onConn(conn)
	}))
	t.Cleanup(server.Close)
	return "ws" + strings.TrimPrefix(server.URL, "http")
}

func TestWebSocketDeliversFrames(t *testing.T) {
	wsURL := newWSServer(t, func(conn *websocket.Conn) {
		conn.WriteMessage(websocket.TextMessage,
			[]byte(`{"type":2,"message":"hi","user":{"id":"u1","shortId":"AB12C","name":"a"}}`))
	})

	ws := NewWebSocket(wsURL, "test-token", 0, time.Second, nil, zap.NewNop())
	t.Cleanup(func() { ws.Disconnect() })

	frames := make(chan *Frame, 1)
	ws.OnFrame(func(frame *Frame) {
		select {
		case frames <- frame:
		default:
		}
	})

	if err := ws.Connect(context.Background()); err != nil {
		t.Fatalf("Connect: %v", err)
	}
	if !ws.IsConnected() {
		t.Fatal("not connected after Connect")
	}

	select {
	case frame := <-frames:
		if frame.Type != FrameTypeChat || frame.Message != "hi" {
			t.Errorf("frame = %+v", frame)
		}
		if frame.User == nil || frame.User.ShortID != "AB12C" {
			t.Errorf("user = %+v", frame.User)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("no frame delivered")
	}
}

func TestWebSocketSend(t *testing.T) {
	received := make(chan string, 1)
	wsURL := newWSServer(t, func(conn *websocket.Conn) {
		_, msg, err := conn.ReadMessage()
		if err != nil {
			return
		}
		received <- string(msg)
	})

	ws := NewWebSocket(wsURL, "test-token", 0, time.Second, nil, zap.NewNop())
	t.Cleanup(func() { ws.Disconnect() })

	if err := ws.Connect(context.Background()); err != nil {
		t.Fatalf("Connect: %v", err)
	}
	if err := ws.Send(context.Background(), "hello"); err != nil {
		t.Fatalf("Send: %v", err)
	}

	select {
	case got := <-received:
		if got != "hello" {
			t.Errorf("server received %q", got)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("server never received the message")
	}
}

func TestWebSocketSendWhenDisconnected(t *testing.T) {
	ws := NewWebSocket("ws://127.0.0.1:0", "", 0, time.Second, nil, zap.NewNop())
	if err := ws.Send(context.Background(), "hello"); err != ErrNotConnected {
		t.Errorf("Send = %v, want ErrNotConnected", err)
	}
}

func TestWebSocketStateCallback(t *testing.T) {
	wsURL := newWSServer(t, func(conn *websocket.Conn) {
		// Hold the connection open until the test tears down.
		conn.ReadMessage()
	})

	ws := NewWebSocket(wsURL, "test-token", 0, time.Second, nil, zap.NewNop())
	t.Cleanup(func() { ws.Disconnect() })

	states := make(chan WebSocketState, 8)
	remove := ws.OnStateChange(func(state WebSocketState) {
		states <- state
	})

	if err := ws.Connect(context.Background()); err != nil {
		t.Fatalf("Connect: %v", err)
	}

	sawConnected := false
	deadline := time.After(2 * time.Second)
	for !sawConnected {
		select {
		case state := <-states:
			if state == WSStateConnected {
				sawConnected = true
			}
		case <-deadline:
			t.Fatal("never observed the connected state")
		}
	}

	remove()
}
