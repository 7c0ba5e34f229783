package hub

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"
)

const writeWait = 5 * time.Second

type Message struct {
	Event string      `json:"event"`
	Data  interface{} `json:"data"`
}

// Hub menampung semua layar yang tersambung lewat WebSocket dan menyiarkan
// perubahan sesi ke mereka.
type Hub struct {
	clients map[*websocket.Conn]string // conn -> client id
	mutex   sync.Mutex
	log     *logrus.Logger
}

func New(log *logrus.Logger) *Hub {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Hub{
		clients: make(map[*websocket.Conn]string),
		log:     log,
	}
}

// Register menambahkan connection dan mengembalikan id client.
func (h *Hub) Register(conn *websocket.Conn) string {
	id := uuid.NewString()
	h.mutex.Lock()
	h.clients[conn] = id
	h.mutex.Unlock()

	h.log.WithField("client", id).Debug("display client connected")
	return id
}

// Unregister melepaskan connection dan menutupnya.
func (h *Hub) Unregister(conn *websocket.Conn) {
	h.mutex.Lock()
	id, ok := h.clients[conn]
	delete(h.clients, conn)
	h.mutex.Unlock()

	if ok {
		h.log.WithField("client", id).Debug("display client disconnected")
	}
	conn.Close()
}

func (h *Hub) ClientCount() int {
	h.mutex.Lock()
	defer h.mutex.Unlock()
	return len(h.clients)
}

// Publish sends the event to every connected client. Clients whose write fails
// are dropped.
func (h *Hub) Publish(event string, data interface{}) {
	payload, err := json.Marshal(Message{Event: event, Data: data})
	if err != nil {
		h.log.WithError(err).WithField("event", event).Error("marshal hub message")
		return
	}

	h.mutex.Lock()
	defer h.mutex.Unlock()

	for conn, id := range h.clients {
		conn.SetWriteDeadline(time.Now().Add(writeWait))
		if err := conn.WriteMessage(websocket.TextMessage, payload); err != nil {
			h.log.WithError(err).WithField("client", id).Warn("dropping display client")
			delete(h.clients, conn)
			conn.Close()
		}
	}
}
