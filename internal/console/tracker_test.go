package console

import (
	"context"
	"sync"
	"testing"

	"salestrack/internal/domain/salesperson"
	"salestrack/internal/geo"
)

// fakeProvider hands out controllable watches and records how many are live.
type fakeProvider struct {
	mu      sync.Mutex
	current *geo.Position
	currErr error
	watches []*fakeWatch
}

type fakeWatch struct {
	mu      sync.Mutex
	stopped bool
	handler func(*geo.Position, error)
}

func (w *fakeWatch) Stop() {
	w.mu.Lock()
	w.stopped = true
	w.mu.Unlock()
}

func (w *fakeWatch) isStopped() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.stopped
}

// fire delivers a fix the way the hardware layer would, respecting Stop.
func (w *fakeWatch) fire(pos *geo.Position, err error) {
	w.mu.Lock()
	stopped := w.stopped
	w.mu.Unlock()
	if !stopped {
		w.handler(pos, err)
	}
}

func (p *fakeProvider) Current(context.Context) (*geo.Position, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.currErr != nil {
		return nil, p.currErr
	}
	return p.current, nil
}

func (p *fakeProvider) Watch(handler func(*geo.Position, error)) (geo.Watch, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	w := &fakeWatch{handler: handler}
	p.watches = append(p.watches, w)
	return w, nil
}

func (p *fakeProvider) liveWatches() []*fakeWatch {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]*fakeWatch, len(p.watches))
	copy(out, p.watches)
	return out
}

func TestTrackerStartReplacesLiveWatch(t *testing.T) {
	provider := &fakeProvider{}
	tracker := NewTracker(provider, &fakeRemote{})

	if err := tracker.StartTracking(1); err != nil {
		t.Fatal(err)
	}
	if err := tracker.StartTracking(1); err != nil {
		t.Fatal(err)
	}

	watches := provider.liveWatches()
	if len(watches) != 2 {
		t.Fatalf("expected 2 watches opened, got %d", len(watches))
	}
	if !watches[0].isStopped() {
		t.Fatal("first watch kept running after restart")
	}
	if watches[1].isStopped() {
		t.Fatal("replacement watch is not live")
	}
}

func TestTrackerStopCancelsWatch(t *testing.T) {
	provider := &fakeProvider{}
	remote := &fakeRemote{salespeople: []salesperson.Salesperson{namedSalesperson(1, "Ana")}}
	tracker := NewTracker(provider, remote)

	if err := tracker.StartTracking(1); err != nil {
		t.Fatal(err)
	}
	tracker.StopTracking()
	tracker.StopTracking()

	if tracker.Tracking() {
		t.Fatal("tracker still reports a live watch")
	}

	watch := provider.liveWatches()[0]
	watch.fire(&geo.Position{Latitude: 12.10, Longitude: -86.20}, nil)

	if len(remote.pushes()) != 0 {
		t.Fatal("a push ran after the watch was stopped")
	}
}

func TestTrackerPushesFixes(t *testing.T) {
	provider := &fakeProvider{}
	remote := &fakeRemote{salespeople: []salesperson.Salesperson{namedSalesperson(1, "Ana")}}
	tracker := NewTracker(provider, remote)

	if err := tracker.StartTracking(1); err != nil {
		t.Fatal(err)
	}
	defer tracker.StopTracking()

	provider.liveWatches()[0].fire(&geo.Position{Latitude: 12.10, Longitude: -86.20}, nil)

	waitFor(t, func() bool { return len(remote.pushes()) == 1 })

	push := remote.pushes()[0]
	if push.id != 1 || push.lat != 12.10 || push.lng != -86.20 {
		t.Fatalf("unexpected push: %+v", push)
	}
}

func TestTrackerClassifiesWatchErrors(t *testing.T) {
	provider := &fakeProvider{}
	tracker := NewTracker(provider, &fakeRemote{})

	if err := tracker.StartTracking(1); err != nil {
		t.Fatal(err)
	}
	defer tracker.StopTracking()

	provider.liveWatches()[0].fire(nil, &geo.Error{Kind: geo.FailurePermissionDenied})

	if got := tracker.LastError(); got != "Permiso de ubicación denegado. Por favor habilite el GPS." {
		t.Fatalf("unexpected message: %q", got)
	}

	// A later successful fix clears the message.
	provider.liveWatches()[0].fire(&geo.Position{Latitude: 12.10, Longitude: -86.20}, nil)
	if tracker.LastError() != "" {
		t.Fatal("error message survived a successful fix")
	}
}

func TestTrackerSendCurrent(t *testing.T) {
	provider := &fakeProvider{current: &geo.Position{Latitude: 12.15, Longitude: -86.25}}
	remote := &fakeRemote{salespeople: []salesperson.Salesperson{namedSalesperson(1, "Ana")}}
	tracker := NewTracker(provider, remote)

	if err := tracker.SendCurrent(context.Background(), 1); err != nil {
		t.Fatal(err)
	}
	if len(remote.pushes()) != 1 {
		t.Fatalf("expected one push, got %d", len(remote.pushes()))
	}
}

func TestTrackerSendCurrentReportsFailure(t *testing.T) {
	provider := &fakeProvider{currErr: &geo.Error{Kind: geo.FailureTimeout}}
	tracker := NewTracker(provider, &fakeRemote{})

	if err := tracker.SendCurrent(context.Background(), 1); err == nil {
		t.Fatal("expected an error")
	}
	if got := tracker.LastError(); got != "Tiempo de espera agotado" {
		t.Fatalf("unexpected message: %q", got)
	}
}
