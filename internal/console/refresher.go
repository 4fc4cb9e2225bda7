package console

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"go.uber.org/zap"

	"salestrack/internal/domain/ping"
	"salestrack/internal/feed"
	"salestrack/internal/logger"
)

// FeedSource is the subscription half of the change feed; both the
// in-process hub and the websocket feed satisfy it.
type FeedSource interface {
	Subscribe(collection string, mask feed.EventType, handler feed.Handler) feed.Subscription
}

// RefreshConfig tunes the poll-driven half of the refresh loop.
type RefreshConfig struct {
	PollInterval time.Duration
}

// Refresher keeps the admin dashboard current: an immediate full fetch on
// start, a poll tick as the safety net, and change-feed subscriptions for
// the low-latency path. Stop tears everything down exactly once.
type Refresher struct {
	fetcher  *Fetcher
	source   FeedSource
	interval time.Duration

	mu      sync.Mutex
	started bool
	cancel  context.CancelFunc
	subs    []feed.Subscription
	done    chan struct{}
	once    sync.Once
}

func NewRefresher(fetcher *Fetcher, source FeedSource, interval time.Duration) *Refresher {
	if interval <= 0 {
		interval = 5 * time.Second
	}
	return &Refresher{
		fetcher:  fetcher,
		source:   source,
		interval: interval,
	}
}

// Start fetches everything once, then begins polling and listening. Calling
// Start twice is a no-op.
func (r *Refresher) Start(ctx context.Context) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.started {
		return
	}
	r.started = true

	ctx, r.cancel = context.WithCancel(ctx)
	r.done = make(chan struct{})

	r.fetcher.FetchAll(ctx)

	// Any salespeople change refetches the collection; the event payload is
	// deliberately ignored so the replica always reflects a full snapshot.
	r.subs = append(r.subs, r.source.Subscribe(feed.CollectionSalespeople, feed.EventAll, func(feed.Event) {
		r.fetcher.FetchSalespeople(ctx)
	}))

	// Position reports move the marker immediately via write-through, then
	// the refetch reconciles with the server's row.
	r.subs = append(r.subs, r.source.Subscribe(feed.CollectionPings, feed.EventInsert, func(e feed.Event) {
		r.applyPing(e)
		r.fetcher.FetchSalespeople(ctx)
	}))

	go r.poll(ctx)
}

func (r *Refresher) applyPing(e feed.Event) {
	if len(e.Payload) == 0 {
		return
	}

	var row ping.Ping
	if err := json.Unmarshal(e.Payload, &row); err != nil {
		logger.Warn("Discarding unparsable ping event", zap.Error(err))
		return
	}

	at := row.RecordedAt
	if at.IsZero() {
		at = time.Now()
	}
	r.fetcher.store.ApplyPing(row.SalespersonID, row.Latitude, row.Longitude, at)
}

func (r *Refresher) poll(ctx context.Context) {
	defer close(r.done)

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			r.fetcher.FetchAll(ctx)
		}
	}
}

// Stop cancels polling and drops the subscriptions. Idempotent; the view
// teardown path may run it more than once.
func (r *Refresher) Stop() {
	r.once.Do(func() {
		r.mu.Lock()
		defer r.mu.Unlock()

		if !r.started {
			return
		}

		r.cancel()
		<-r.done
		for _, sub := range r.subs {
			sub.Unsubscribe()
		}
		r.subs = nil
	})
}
