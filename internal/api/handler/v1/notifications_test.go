package v1

import (
	"context"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/goccy/go-json"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vietanh2810/youthopia-api/internal/api/middleware"
	"github.com/vietanh2810/youthopia-api/internal/domain"
	"github.com/vietanh2810/youthopia-api/internal/service"
)

func TestNotificationHub_DeliversToSubscriber(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	hub := NewNotificationHub()
	go hub.Run(ctx)

	r := gin.New()
	r.GET("/ws", func(c *gin.Context) {
		c.Set(middleware.ContextKeySubject, c.Query("as"))
	}, hub.HandleWebSocket)

	srv := httptest.NewServer(r)
	defer srv.Close()

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws?as=9999999999"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	defer conn.Close()

	received := make(chan service.Event, 8)
	go func() {
		for {
			_, msg, err := conn.ReadMessage()
			if err != nil {
				return
			}
			var e service.Event
			if json.Unmarshal(msg, &e) == nil {
				received <- e
			}
		}
	}()

	// The subscription registers asynchronously, so keep publishing until it lands.
	var got service.Event
	require.Eventually(t, func() bool {
		hub.Publish(service.Event{Kind: service.EventNotification, Contact: "1111111111", Notification: &domain.Notification{Message: "not yours"}})
		hub.Publish(service.Event{Kind: service.EventNotification, Contact: "9999999999", Notification: &domain.Notification{Message: "yours"}})
		select {
		case got = <-received:
			return true
		case <-time.After(50 * time.Millisecond):
			return false
		}
	}, 3*time.Second, 10*time.Millisecond)

	assert.Equal(t, "9999999999", got.Contact)
	require.NotNil(t, got.Notification)
	assert.Equal(t, "yours", got.Notification.Message)
}

func TestNotificationHub_PublishNeverBlocks(t *testing.T) {
	hub := NewNotificationHub()

	done := make(chan struct{})
	go func() {
		for i := 0; i < 1000; i++ {
			hub.Publish(service.Event{Kind: service.EventAchievements, Contact: "1"})
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Publish blocked without a running hub")
	}
}
