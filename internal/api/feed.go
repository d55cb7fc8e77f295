package api

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

// recentNotifications bounds the dashboard's notification history.
const recentNotifications = 50

// WebSocket upgrader configuration
var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true // Allow all origins for development
	},
}

// Notification is a dashboard activity entry, also streamed over the
// websocket feed.
type Notification struct {
	ID      int       `json:"id"`
	Type    string    `json:"type"`
	Message string    `json:"message"`
	Time    time.Time `json:"time"`
}

// Feed fans console activity out to connected dashboard clients and
// keeps a bounded history for the notifications panel.
type Feed struct {
	mu      sync.Mutex
	clients map[*feedClient]struct{}
	recent  []Notification
	nextID  int
	log     *zap.Logger
}

type feedClient struct {
	conn *websocket.Conn
	send chan []byte
}

// NewFeed creates an empty notification feed.
func NewFeed(log *zap.Logger) *Feed {
	return &Feed{
		clients: make(map[*feedClient]struct{}),
		nextID:  1,
		log:     log,
	}
}

// Notify records a notification and broadcasts it to every connected
// client. Clients that cannot keep up have the message dropped.
func (f *Feed) Notify(level, message string) {
	f.mu.Lock()
	defer f.mu.Unlock()

	note := Notification{
		ID:      f.nextID,
		Type:    level,
		Message: message,
		Time:    time.Now(),
	}
	f.nextID++

	f.recent = append(f.recent, note)
	if len(f.recent) > recentNotifications {
		f.recent = f.recent[len(f.recent)-recentNotifications:]
	}

	data, err := json.Marshal(note)
	if err != nil {
		f.log.Error("failed to marshal notification", zap.Error(err))
		return
	}
	for client := range f.clients {
		select {
		case client.send <- data:
		default:
			f.log.Warn("notification buffer full, dropping message")
		}
	}
}

// Recent returns the notification history, newest last.
func (f *Feed) Recent() []Notification {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]Notification(nil), f.recent...)
}

func (f *Feed) register(client *feedClient) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.clients[client] = struct{}{}
}

func (f *Feed) unregister(client *feedClient) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.clients[client]; ok {
		delete(f.clients, client)
		close(client.send)
	}
}

// handleNotificationSocket upgrades the connection and streams
// notifications to the client.
func (s *Server) handleNotificationSocket(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		s.log.Error("failed to upgrade connection", zap.Error(err))
		return
	}

	client := &feedClient{
		conn: conn,
		send: make(chan []byte, 256),
	}
	s.feed.register(client)

	go s.feed.writePump(client)
	go s.feed.readPump(client)
}

// readPump drains the connection until the client goes away. The feed
// is broadcast-only; incoming messages are discarded.
func (f *Feed) readPump(client *feedClient) {
	defer func() {
		f.unregister(client)
		client.conn.Close()
	}()

	client.conn.SetReadLimit(512)
	client.conn.SetReadDeadline(time.Now().Add(60 * time.Second))
	client.conn.SetPongHandler(func(string) error {
		client.conn.SetReadDeadline(time.Now().Add(60 * time.Second))
		return nil
	})

	for {
		if _, _, err := client.conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				f.log.Warn("websocket error", zap.Error(err))
			}
			break
		}
	}
}

// writePump pumps notifications from the feed to the connection.
func (f *Feed) writePump(client *feedClient) {
	ticker := time.NewTicker(30 * time.Second)
	defer func() {
		ticker.Stop()
		client.conn.Close()
	}()

	for {
		select {
		case message, ok := <-client.send:
			client.conn.SetWriteDeadline(time.Now().Add(10 * time.Second))
			if !ok {
				// The channel was closed
				client.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := client.conn.WriteMessage(websocket.TextMessage, message); err != nil {
				return
			}
		case <-ticker.C:
			client.conn.SetWriteDeadline(time.Now().Add(10 * time.Second))
			if err := client.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
