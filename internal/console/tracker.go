package console

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"salestrack/internal/geo"
	"salestrack/internal/logger"
	"salestrack/internal/remote"
)

// Tracker pushes GPS fixes to the remote store. Continuous tracking holds
// at most one live watch: starting again first stops the previous watch, so
// watches never stack, and stopping guarantees no further pushes begin.
type Tracker struct {
	provider geo.Provider
	remote   remote.Store

	mu    sync.Mutex
	watch geo.Watch

	// LastError carries the classified message for the agent screen.
	errMu     sync.Mutex
	lastError string
}

func NewTracker(provider geo.Provider, remoteStore remote.Store) *Tracker {
	return &Tracker{provider: provider, remote: remoteStore}
}

// SendCurrent obtains a single fix and pushes it. Unlike the watch path the
// error is returned, so the "update my location" button can show it.
func (t *Tracker) SendCurrent(ctx context.Context, salespersonID uint) error {
	pos, err := t.provider.Current(ctx)
	if err != nil {
		t.setLastError(geo.UserMessage(err))
		logger.Warn("Failed to obtain position", zap.Error(err))
		return err
	}

	if err := t.remote.UpdateSalespersonLocation(ctx, salespersonID, pos.Latitude, pos.Longitude); err != nil {
		logger.Error("Failed to push position", zap.Error(err))
		return err
	}

	t.setLastError("")
	return nil
}

// StartTracking opens a position watch for the agent. Each fix is pushed
// fire-and-forget: a failed push is logged and the watch keeps running.
func (t *Tracker) StartTracking(salespersonID uint) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.watch != nil {
		t.watch.Stop()
		t.watch = nil
	}

	watch, err := t.provider.Watch(func(pos *geo.Position, err error) {
		if err != nil {
			t.setLastError(geo.UserMessage(err))
			logger.Warn("Position watch error", zap.Error(err))
			return
		}
		t.setLastError("")

		go func() {
			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()

			if err := t.remote.UpdateSalespersonLocation(ctx, salespersonID, pos.Latitude, pos.Longitude); err != nil {
				logger.Error("Failed to push position", zap.Error(err))
			}
		}()
	})
	if err != nil {
		t.setLastError(geo.UserMessage(err))
		return err
	}

	t.watch = watch
	return nil
}

// StopTracking cancels the live watch, if any. Idempotent.
func (t *Tracker) StopTracking() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.watch != nil {
		t.watch.Stop()
		t.watch = nil
	}
}

// Tracking reports whether a watch is live.
func (t *Tracker) Tracking() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.watch != nil
}

// LastError is the most recent classified positioning message, empty after
// a successful fix.
func (t *Tracker) LastError() string {
	t.errMu.Lock()
	defer t.errMu.Unlock()
	return t.lastError
}

func (t *Tracker) setLastError(msg string) {
	t.errMu.Lock()
	t.lastError = msg
	t.errMu.Unlock()
}
