package remote

import (
	"encoding/json"
	"net/url"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"salestrack/internal/feed"
	"salestrack/internal/logger"
)

// Feed subscribes to the server's websocket change feed and redistributes
// events through a local hub, so console code uses the same subscription
// interface whether it runs in-process with the server or remotely.
type Feed struct {
	wsURL string
	hub   *feed.Hub

	mu     sync.Mutex
	conn   *websocket.Conn
	closed chan struct{}
	once   sync.Once
}

// NewFeed derives the websocket endpoint from the API base URL.
func NewFeed(baseURL string) (*Feed, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, err
	}
	switch u.Scheme {
	case "https":
		u.Scheme = "wss"
	default:
		u.Scheme = "ws"
	}
	u.Path = "/ws/feed"

	return &Feed{
		wsURL:  u.String(),
		hub:    feed.NewHub(),
		closed: make(chan struct{}),
	}, nil
}

// Start dials the feed endpoint and begins dispatching events. The read
// loop reconnects with a flat backoff until Close is called; consoles also
// poll, so a gap in the feed only delays updates rather than losing them.
func (f *Feed) Start() error {
	conn, _, err := websocket.DefaultDialer.Dial(f.wsURL, nil)
	if err != nil {
		return err
	}

	f.mu.Lock()
	f.conn = conn
	f.mu.Unlock()

	go f.readLoop(conn)
	return nil
}

func (f *Feed) readLoop(conn *websocket.Conn) {
	for {
		_, raw, err := conn.ReadMessage()
		if err != nil {
			conn.Close()

			select {
			case <-f.closed:
				return
			default:
			}

			logger.Warn("Change feed connection lost, reconnecting", zap.Error(err))
			conn = f.redial()
			if conn == nil {
				return
			}
			continue
		}

		var event feed.Event
		if err := json.Unmarshal(raw, &event); err != nil {
			logger.Warn("Discarding unparsable feed event", zap.Error(err))
			continue
		}
		f.hub.Publish(event)
	}
}

func (f *Feed) redial() *websocket.Conn {
	for {
		select {
		case <-f.closed:
			return nil
		case <-time.After(2 * time.Second):
		}

		conn, _, err := websocket.DefaultDialer.Dial(f.wsURL, nil)
		if err != nil {
			logger.Warn("Change feed reconnect failed", zap.Error(err))
			continue
		}

		f.mu.Lock()
		f.conn = conn
		f.mu.Unlock()
		return conn
	}
}

// Subscribe registers a handler with the local hub.
func (f *Feed) Subscribe(collection string, mask feed.EventType, handler feed.Handler) feed.Subscription {
	return f.hub.Subscribe(collection, mask, handler)
}

// Publish satisfies feed.Broker; the remote feed is read-only, so local
// publishes only reach local subscribers.
func (f *Feed) Publish(event feed.Event) {
	f.hub.Publish(event)
}

// Close stops the read loop and drops the connection. Safe to call twice.
func (f *Feed) Close() {
	f.once.Do(func() {
		close(f.closed)
		f.mu.Lock()
		if f.conn != nil {
			f.conn.Close()
		}
		f.mu.Unlock()
	})
}
