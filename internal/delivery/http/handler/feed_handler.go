package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"salestrack/internal/feed"
	"salestrack/internal/logger"
)

// FeedHandler bridges the in-process change feed onto websocket clients so
// remote consoles can subscribe per collection and event type.
type FeedHandler struct {
	broker   feed.Broker
	upgrader websocket.Upgrader
}

func NewFeedHandler(broker feed.Broker) *FeedHandler {
	return &FeedHandler{
		broker: broker,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
		},
	}
}

func (h *FeedHandler) RegisterRoutes(router *gin.Engine) {
	router.GET("/ws/feed", h.Stream)
}

// Stream upgrades the connection and forwards matching events until the
// client goes away. Slow consumers lose events rather than block the hub;
// consoles refetch on every event anyway, so a dropped notification is
// recovered by the next one or by the poll tick.
func (h *FeedHandler) Stream(c *gin.Context) {
	collections := c.QueryArray("collection")
	if len(collections) == 0 {
		collections = []string{
			feed.CollectionSalespeople,
			feed.CollectionVisits,
			feed.CollectionOrders,
			feed.CollectionClients,
			feed.CollectionPings,
		}
	}
	mask := feed.EventType(c.DefaultQuery("event", string(feed.EventAll)))

	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		logger.Warn("Feed upgrade failed", zap.Error(err))
		return
	}
	defer conn.Close()

	events := make(chan feed.Event, 64)
	subs := make([]feed.Subscription, 0, len(collections))
	for _, collection := range collections {
		subs = append(subs, h.broker.Subscribe(collection, mask, func(e feed.Event) {
			select {
			case events <- e:
			default:
			}
		}))
	}
	defer func() {
		for _, sub := range subs {
			sub.Unsubscribe()
		}
	}()

	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	pingTicker := time.NewTicker(30 * time.Second)
	defer pingTicker.Stop()

	for {
		select {
		case event := <-events:
			conn.SetWriteDeadline(time.Now().Add(10 * time.Second))
			if err := conn.WriteJSON(event); err != nil {
				return
			}
		case <-pingTicker.C:
			conn.SetWriteDeadline(time.Now().Add(10 * time.Second))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		case <-done:
			return
		}
	}
}
