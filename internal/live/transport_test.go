package live

import (
	"bufio"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServeSSE_StreamsConnectedThenMessages(t *testing.T) {
	hub := startHub(t)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hub.ServeSSE(w, r, "p1", map[string]int{"level": 1})
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, srv.URL+"?types=rank.changed", nil)
	require.NoError(t, err)

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, "text/event-stream", resp.Header.Get("Content-Type"))

	reader := bufio.NewReader(resp.Body)
	first := readSSEData(t, reader)
	assert.Equal(t, MessageTypeConnected, first.Type)
	payload := first.Payload.(map[string]interface{})
	assert.Equal(t, []interface{}{"rank.changed"}, payload["filters"])
	assert.NotNil(t, payload["snapshot"])

	waitForClients(t, hub, 1)
	hub.Broadcast(Message{Type: "state.refreshed", PlayerID: "p1"})
	hub.Broadcast(Message{Type: "rank.changed", PlayerID: "p1"})

	next := readSSEData(t, reader)
	assert.Equal(t, "rank.changed", next.Type)

	cancel()
	waitForClients(t, hub, 0)
}

func readSSEData(t *testing.T, r *bufio.Reader) Message {
	t.Helper()
	for {
		line, err := r.ReadString('\n')
		require.NoError(t, err)
		if data, ok := strings.CutPrefix(line, "data: "); ok {
			var msg Message
			require.NoError(t, json.Unmarshal([]byte(strings.TrimSpace(data)), &msg))
			return msg
		}
	}
}

func TestServeSSE_RequiresFlusher(t *testing.T) {
	hub := startHub(t)
	w := &nonFlushingWriter{header: http.Header{}}
	hub.ServeSSE(w, httptest.NewRequest(http.MethodGet, "/", nil), "p1", nil)
	assert.Equal(t, http.StatusInternalServerError, w.status)
}

type nonFlushingWriter struct {
	header http.Header
	status int
}

func (w *nonFlushingWriter) Header() http.Header         { return w.header }
func (w *nonFlushingWriter) Write(b []byte) (int, error) { return len(b), nil }
func (w *nonFlushingWriter) WriteHeader(code int)        { w.status = code }

func TestServeWebSocket_StreamsMessages(t *testing.T) {
	hub := startHub(t)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hub.ServeWebSocket(w, r, "p1", "snap")
	}))
	defer srv.Close()

	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)

	_ = conn.SetReadDeadline(time.Now().Add(2 * time.Second))

	var first Message
	require.NoError(t, conn.ReadJSON(&first))
	assert.Equal(t, MessageTypeConnected, first.Type)

	waitForClients(t, hub, 1)
	hub.Broadcast(Message{Type: "production.completed", PlayerID: "p1"})
	hub.Broadcast(Message{Type: "production.completed", PlayerID: "someone-else"})
	hub.Broadcast(Message{Type: "rank.changed", PlayerID: "p1"})

	var second, third Message
	require.NoError(t, conn.ReadJSON(&second))
	require.NoError(t, conn.ReadJSON(&third))
	assert.Equal(t, "production.completed", second.Type)
	assert.Equal(t, "rank.changed", third.Type)

	require.NoError(t, conn.WriteMessage(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, "")))
	conn.Close()
	waitForClients(t, hub, 0)
}

func TestServeWebSocket_HubStopSendsClose(t *testing.T) {
	hub := NewHub()
	hub.Start()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hub.ServeWebSocket(w, r, "p1", nil)
	}))
	defer srv.Close()

	conn, _, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(srv.URL, "http"), nil)
	require.NoError(t, err)
	defer conn.Close()
	_ = conn.SetReadDeadline(time.Now().Add(2 * time.Second))

	var first Message
	require.NoError(t, conn.ReadJSON(&first))
	waitForClients(t, hub, 1)

	hub.Stop()

	_, _, err = conn.ReadMessage()
	assert.True(t, websocket.IsCloseError(err, websocket.CloseGoingAway), "got %v", err)
}

func TestParseTypes(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/?types=a,%20b,,c", nil)
	assert.Equal(t, []string{"a", "b", "c"}, parseTypes(r))
	assert.Nil(t, parseTypes(httptest.NewRequest(http.MethodGet, "/", nil)))
}
