package v1

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/vietanh2810/youthopia-api/internal/api/handler/v1/response"
	"github.com/vietanh2810/youthopia-api/internal/api/middleware"
	"github.com/vietanh2810/youthopia-api/internal/service"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = pongWait * 9 / 10
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

type Client struct {
	id      string
	contact string
	conn    *websocket.Conn
	send    chan []byte
}

// NotificationHub pushes ledger notifications and achievement batches to the
// WebSocket connections of the participant they concern. It implements
// service.Publisher.
type NotificationHub struct {
	clients    map[string]*Client
	broadcast  chan service.Event
	register   chan *Client
	unregister chan *Client
	done       chan struct{}
}

func NewNotificationHub() *NotificationHub {
	return &NotificationHub{
		clients:    make(map[string]*Client),
		broadcast:  make(chan service.Event, 64),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		done:       make(chan struct{}),
	}
}

// Publish never blocks: it is called while the ledger holds its lock.
func (h *NotificationHub) Publish(event service.Event) {
	select {
	case h.broadcast <- event:
	default:
		zap.L().Warn("notification hub full, event dropped",
			zap.String("kind", string(event.Kind)),
			zap.String("contact", event.Contact),
		)
	}
}

// Run owns the client map until ctx is done.
func (h *NotificationHub) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			close(h.done)
			for id, client := range h.clients {
				close(client.send)
				delete(h.clients, id)
			}
			return
		case client := <-h.register:
			h.clients[client.id] = client
		case client := <-h.unregister:
			if _, ok := h.clients[client.id]; ok {
				delete(h.clients, client.id)
				close(client.send)
			}
		case event := <-h.broadcast:
			message, err := json.Marshal(event)
			if err != nil {
				zap.L().Error("failed to encode notification", zap.Error(err))
				continue
			}
			for id, client := range h.clients {
				if client.contact != event.Contact {
					continue
				}
				select {
				case client.send <- message:
				default:
					close(client.send)
					delete(h.clients, id)
				}
			}
		}
	}
}

// HandleWebSocket godoc
// @Summary Subscribe to live notifications
// @Description Upgrades to a WebSocket that streams notification and achievement events for the logged in participant. Browsers pass the token as ?token=.
// @Tags passport
// @Success 101 {string} string "Switching Protocols to WebSocket"
// @Failure 401 {object} response.Err
// @Router /ws [get]
// @Security BearerAuth
func (h *NotificationHub) HandleWebSocket(ctx *gin.Context) {
	contact := ctx.GetString(middleware.ContextKeySubject)
	if contact == "" {
		response.RenderErr(ctx, response.ErrUnauthorized(errors.New("not logged in")))
		return
	}

	conn, err := upgrader.Upgrade(ctx.Writer, ctx.Request, nil)
	if err != nil {
		zap.L().Warn("websocket upgrade failed", zap.Error(err))
		return
	}

	client := &Client{
		id:      uuid.NewString(),
		contact: contact,
		conn:    conn,
		send:    make(chan []byte, 16),
	}
	select {
	case h.register <- client:
	case <-h.done:
		conn.Close()
		return
	}

	go client.writePump()
	go client.readPump(h)
}

func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()
	for {
		select {
		case message, ok := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, message); err != nil {
				return
			}
		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// readPump only drains control frames; clients never send data.
func (c *Client) readPump(h *NotificationHub) {
	defer func() {
		select {
		case h.unregister <- c:
		case <-h.done:
		}
		c.conn.Close()
	}()
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})
	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				zap.L().Debug("websocket closed", zap.String("client", c.id), zap.Error(err))
			}
			return
		}
	}
}
