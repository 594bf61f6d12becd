package server

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/pkg/errors"

	models "github.com/nezia1/missive/internal/user/model"
	"github.com/nezia1/missive/pkg/logger"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = (pongWait * 9) / 10
	readLimit  = 64 * 1024
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		// Browser clients are not a target; the apps set no Origin.
		return true
	},
}

// wsClient adapts one websocket connection to the router's Conn interface.
// All writes go through the send channel so the write pump is the only
// goroutine touching the socket for writes.
type wsClient struct {
	conn   *websocket.Conn
	user   *models.User
	send   chan []byte
	done   chan struct{}
	once   sync.Once
	logger *logger.Logger
}

func newWsClient(conn *websocket.Conn, user *models.User, logger *logger.Logger) *wsClient {
	return &wsClient{
		conn:   conn,
		user:   user,
		send:   make(chan []byte, 256),
		done:   make(chan struct{}),
		logger: logger,
	}
}

// Send queues one JSON frame. A full buffer counts as a failed delivery so
// the caller can fall back to store-and-forward instead of blocking.
func (c *wsClient) Send(v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return errors.Wrap(err, "wsClient.Send.Marshal")
	}
	select {
	case c.send <- data:
		return nil
	case <-c.done:
		return errors.New("connection closed")
	default:
		return errors.New("send buffer full")
	}
}

func (c *wsClient) Close() error {
	c.once.Do(func() {
		close(c.done)
		_ = c.conn.Close()
	})
	return nil
}

func (c *wsClient) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		_ = c.Close()
	}()
	for {
		select {
		case msg := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				return
			}
		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		case <-c.done:
			return
		}
	}
}

func (s *Server) readPump(c *wsClient) {
	defer func() {
		s.presence.Disconnect(c.user.ID, c)
		_ = c.Close()
	}()

	c.conn.SetReadLimit(readLimit)
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		_, raw, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				s.logger.Debug("websocket closed unexpectedly", "user_id", c.user.ID, "err", err)
			}
			return
		}
		// The request context dies with the HTTP handler; frame handling
		// outlives it.
		s.router.HandleFrame(context.Background(), c.user, raw, c)
	}
}

func (s *Server) handleWebsocket(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}

	// Authentication happens after the upgrade so the failure can be
	// signaled in websocket terms rather than an opaque handshake error.
	u, _, err := s.tokens.Authenticate(r.Context(), BearerToken(r))
	if err != nil {
		msg := websocket.FormatCloseMessage(websocket.ClosePolicyViolation, "authentication required")
		_ = conn.WriteControl(websocket.CloseMessage, msg, time.Now().Add(writeWait))
		_ = conn.Close()
		return
	}

	client := newWsClient(conn, u, s.logger)
	s.presence.Connect(u.ID, client)
	s.logger.Info("websocket connected", "user_id", u.ID, "online", s.presence.Online())

	go client.writePump()
	s.readPump(client)
	s.logger.Info("websocket disconnected", "user_id", u.ID, "online", s.presence.Online())
}
