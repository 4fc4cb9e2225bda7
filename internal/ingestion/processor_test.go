package ingestion

import (
	"context"
	"os"
	"sync"
	"testing"
	"time"

	"go.uber.org/zap"

	"salestrack/internal/domain/ping"
	"salestrack/internal/domain/salesperson"
	"salestrack/internal/feed"
	"salestrack/internal/logger"
)

func TestMain(m *testing.M) {
	logger.Logger = zap.NewNop()
	os.Exit(m.Run())
}

type recordingPingRepo struct {
	mu   sync.Mutex
	rows []ping.Ping
}

func (r *recordingPingRepo) Create(_ context.Context, p *ping.Ping) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	p.ID = uint(len(r.rows) + 1)
	r.rows = append(r.rows, *p)
	return nil
}

func (r *recordingPingRepo) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.rows)
}

type positionRecord struct {
	id       uint
	lat, lng float64
	at       time.Time
}

// recordingSalespersonRepo implements only the calls the processor makes;
// the rest of the repository surface is stubbed out.
type recordingSalespersonRepo struct {
	mu        sync.Mutex
	positions []positionRecord
}

func (r *recordingSalespersonRepo) List(context.Context) ([]salesperson.Salesperson, error) {
	return nil, nil
}

func (r *recordingSalespersonRepo) GetByID(context.Context, uint) (*salesperson.Salesperson, error) {
	return &salesperson.Salesperson{}, nil
}

func (r *recordingSalespersonRepo) Create(context.Context, *salesperson.Salesperson) error {
	return nil
}

func (r *recordingSalespersonRepo) Update(context.Context, *salesperson.Salesperson) error {
	return nil
}

func (r *recordingSalespersonRepo) Delete(context.Context, uint) error {
	return nil
}

func (r *recordingSalespersonRepo) UpdatePosition(_ context.Context, id uint, latitude, longitude float64, at time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.positions = append(r.positions, positionRecord{id: id, lat: latitude, lng: longitude, at: at})
	return nil
}

func (r *recordingSalespersonRepo) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.positions)
}

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal("condition not met before deadline")
}

func TestProcessorAppliesPingEndToEnd(t *testing.T) {
	pingRepo := &recordingPingRepo{}
	spRepo := &recordingSalespersonRepo{}
	hub := feed.NewHub()

	var eventsMu sync.Mutex
	var events []feed.Event
	hub.Subscribe(feed.CollectionPings, feed.EventInsert, func(e feed.Event) {
		eventsMu.Lock()
		events = append(events, e)
		eventsMu.Unlock()
	})
	hub.Subscribe(feed.CollectionSalespeople, feed.EventUpdate, func(e feed.Event) {
		eventsMu.Lock()
		events = append(events, e)
		eventsMu.Unlock()
	})

	processor := NewProcessor(pingRepo, spRepo, hub, 8)
	processor.Start()
	defer processor.Stop()

	processor.ProcessPing(&PingMessage{
		SalespersonID: 1,
		Latitude:      12.10,
		Longitude:     -86.20,
		RecordedAt:    time.Now(),
	})

	waitFor(t, func() bool { return pingRepo.count() == 1 && spRepo.count() == 1 })
	waitFor(t, func() bool {
		eventsMu.Lock()
		defer eventsMu.Unlock()
		return len(events) == 2
	})

	pos := spRepo.positions[0]
	if pos.id != 1 || pos.lat != 12.10 || pos.lng != -86.20 {
		t.Fatalf("unexpected write-through: %+v", pos)
	}
}

func TestProcessorRejectsInvalidPing(t *testing.T) {
	pingRepo := &recordingPingRepo{}
	spRepo := &recordingSalespersonRepo{}

	processor := NewProcessor(pingRepo, spRepo, feed.NopBroker{}, 8)
	processor.Start()

	processor.ProcessPing(&PingMessage{
		SalespersonID: 1,
		Latitude:      120, // out of range
		Longitude:     -86.20,
		RecordedAt:    time.Now(),
	})

	processor.Stop()

	if pingRepo.count() != 0 {
		t.Fatal("invalid ping reached storage")
	}
	if got := processor.GetMetrics().PingsFailed; got != 1 {
		t.Fatalf("expected 1 failed ping, got %d", got)
	}
}

func TestProcessorStopDrainsQueue(t *testing.T) {
	pingRepo := &recordingPingRepo{}
	spRepo := &recordingSalespersonRepo{}

	processor := NewProcessor(pingRepo, spRepo, feed.NopBroker{}, 8)
	processor.Start()

	for i := 0; i < 5; i++ {
		processor.ProcessPing(&PingMessage{
			SalespersonID: 1,
			Latitude:      12.10,
			Longitude:     -86.20,
			RecordedAt:    time.Now(),
		})
	}

	processor.Stop()

	if pingRepo.count() != 5 {
		t.Fatalf("queue not drained on stop: %d of 5 applied", pingRepo.count())
	}
}

func TestProcessorIgnoresPingsAfterStop(t *testing.T) {
	pingRepo := &recordingPingRepo{}
	spRepo := &recordingSalespersonRepo{}

	processor := NewProcessor(pingRepo, spRepo, feed.NopBroker{}, 8)
	processor.Start()
	processor.Stop()
	processor.Stop()

	processor.ProcessPing(&PingMessage{
		SalespersonID: 1,
		Latitude:      12.10,
		Longitude:     -86.20,
		RecordedAt:    time.Now(),
	})

	if pingRepo.count() != 0 {
		t.Fatalf("ping accepted after stop: %d applied", pingRepo.count())
	}
	if got := processor.GetMetrics().PingsReceived; got != 0 {
		t.Fatalf("stopped processor counted %d received pings", got)
	}
}
