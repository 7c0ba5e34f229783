package hub

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T, h *Hub) *httptest.Server {
	t.Helper()
	upgrader := websocket.Upgrader{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		h.Register(conn)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				break
			}
		}
		h.Unregister(conn)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func dial(t *testing.T, srv *httptest.Server) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	return conn
}

func TestPublishReachesAllClients(t *testing.T) {
	log := logrus.New()
	log.SetLevel(logrus.ErrorLevel)
	h := New(log)
	srv := newTestServer(t, h)

	a := dial(t, srv)
	defer a.Close()
	b := dial(t, srv)
	defer b.Close()

	require.Eventually(t, func() bool { return h.ClientCount() == 2 }, 2*time.Second, 10*time.Millisecond)

	h.Publish("table_update", map[string]int{"table_number": 4})

	for _, conn := range []*websocket.Conn{a, b} {
		conn.SetReadDeadline(time.Now().Add(2 * time.Second))
		_, raw, err := conn.ReadMessage()
		require.NoError(t, err)

		var msg struct {
			Event string         `json:"event"`
			Data  map[string]int `json:"data"`
		}
		require.NoError(t, json.Unmarshal(raw, &msg))
		assert.Equal(t, "table_update", msg.Event)
		assert.Equal(t, 4, msg.Data["table_number"])
	}
}

func TestClientDisconnectUnregisters(t *testing.T) {
	h := New(nil)
	srv := newTestServer(t, h)

	conn := dial(t, srv)
	require.Eventually(t, func() bool { return h.ClientCount() == 1 }, 2*time.Second, 10*time.Millisecond)

	conn.Close()
	require.Eventually(t, func() bool { return h.ClientCount() == 0 }, 2*time.Second, 10*time.Millisecond)

	// tanpa client, Publish tidak boleh panic
	h.Publish("session_update", nil)
}
