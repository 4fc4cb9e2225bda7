package ingestion

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"salestrack/internal/domain/ping"
	"salestrack/internal/domain/salesperson"
	"salestrack/internal/feed"
	"salestrack/internal/logger"
)

// Processor consumes position reports, persists them and applies the
// write-through to the owning salesperson record: the ping row is inserted
// first, then the salesperson's last-known position and timestamp are
// overwritten, then a change event is published so consoles refetch.
type Processor struct {
	pingRepo        ping.Repository
	salespersonRepo salesperson.Repository
	broker          feed.Broker

	pingChan chan *PingMessage

	mu      sync.Mutex
	stopped bool

	wg sync.WaitGroup

	metrics *MetricsTracker
}

const defaultBufferSize = 256

func NewProcessor(pingRepo ping.Repository, salespersonRepo salesperson.Repository, broker feed.Broker, bufferSize int) *Processor {
	if bufferSize <= 0 {
		bufferSize = defaultBufferSize
	}
	return &Processor{
		pingRepo:        pingRepo,
		salespersonRepo: salespersonRepo,
		broker:          broker,
		pingChan:        make(chan *PingMessage, bufferSize),
		metrics:         NewMetricsTracker(),
	}
}

// Start launches the ping worker.
func (p *Processor) Start() {
	p.wg.Add(1)
	go p.pingWorker()

	logger.Info("Ping processor started")
}

// Stop drains the queue and waits for the worker to finish. The stopped
// flag keeps a concurrent ProcessPing from sending on the closed channel.
func (p *Processor) Stop() {
	p.mu.Lock()
	if p.stopped {
		p.mu.Unlock()
		return
	}
	p.stopped = true
	close(p.pingChan)
	p.mu.Unlock()

	p.wg.Wait()

	logger.Info("Ping processor stopped")
}

// ProcessPing validates and queues a position report. A full buffer drops
// the message: position is a latest-value signal, so the next fix supersedes
// a lost one anyway.
func (p *Processor) ProcessPing(msg *PingMessage) {
	if err := ValidatePingMessage(msg); err != nil {
		logger.Warn("Invalid location ping", zap.Error(err))
		p.metrics.Update(func(m *IngestMetrics) {
			m.PingsFailed++
		})
		return
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if p.stopped {
		return
	}

	select {
	case p.pingChan <- msg:
		p.metrics.Update(func(m *IngestMetrics) {
			m.PingsReceived++
			m.BufferSize = len(p.pingChan)
		})
	default:
		logger.Warn("Ping buffer full, dropping message",
			zap.Uint("salesperson_id", msg.SalespersonID),
		)
		p.metrics.Update(func(m *IngestMetrics) {
			m.PingsFailed++
		})
	}
}

func (p *Processor) pingWorker() {
	defer p.wg.Done()

	for msg := range p.pingChan {
		if err := p.applyPing(msg); err != nil {
			logger.Error("Failed to apply location ping",
				zap.Uint("salesperson_id", msg.SalespersonID),
				zap.Error(err),
			)
			p.metrics.Update(func(m *IngestMetrics) {
				m.PingsFailed++
			})
			continue
		}

		p.metrics.Update(func(m *IngestMetrics) {
			m.PingsProcessed++
			m.LastProcessedAt = time.Now()
		})
	}
}

func (p *Processor) applyPing(msg *PingMessage) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	record := &ping.Ping{
		SalespersonID:  msg.SalespersonID,
		Latitude:       msg.Latitude,
		Longitude:      msg.Longitude,
		AccuracyMeters: msg.AccuracyMeters,
		RecordedAt:     msg.RecordedAt,
	}

	if err := p.pingRepo.Create(ctx, record); err != nil {
		return err
	}

	if err := p.salespersonRepo.UpdatePosition(ctx, msg.SalespersonID, msg.Latitude, msg.Longitude, msg.RecordedAt); err != nil {
		return err
	}

	p.broker.Publish(feed.Event{
		Collection: feed.CollectionPings,
		Type:       feed.EventInsert,
		Payload:    feed.MarshalPayload(record),
	})
	p.broker.Publish(feed.Event{
		Collection: feed.CollectionSalespeople,
		Type:       feed.EventUpdate,
	})

	return nil
}

// GetMetrics returns current metrics.
func (p *Processor) GetMetrics() IngestMetrics {
	return p.metrics.Snapshot()
}
