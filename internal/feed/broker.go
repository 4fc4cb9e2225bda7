package feed

import (
	"encoding/json"
)

// Collections carried on the change feed.
const (
	CollectionSalespeople = "salespeople"
	CollectionVisits      = "visits"
	CollectionOrders      = "orders"
	CollectionClients     = "clients"
	CollectionPings       = "location_pings"
)

type EventType string

const (
	EventInsert EventType = "insert"
	EventUpdate EventType = "update"
	EventDelete EventType = "delete"
	EventAll    EventType = "*"
)

// Event is one change notification. Payload carries the affected row as
// JSON; consumers that only refetch may ignore it.
type Event struct {
	Collection string          `json:"collection"`
	Type       EventType       `json:"type"`
	Payload    json.RawMessage `json:"payload,omitempty"`
}

// Matches reports whether the event satisfies a subscription mask.
func (e Event) Matches(collection string, mask EventType) bool {
	if e.Collection != collection {
		return false
	}
	return mask == EventAll || mask == e.Type
}

type Handler func(Event)

// Subscription is a handle to an active feed subscription. Unsubscribe is
// idempotent: the view teardown path may run it exactly once, but calling it
// again is harmless.
type Subscription interface {
	Unsubscribe()
}

// Broker is the change-notification capability. The sync layer depends only
// on this interface so it is not hard-wired to one backend's subscription
// mechanism; polling-only deployments use the no-op implementation.
type Broker interface {
	Subscribe(collection string, mask EventType, handler Handler) Subscription
	Publish(event Event)
}

// NopBroker is the polling-only fallback: subscriptions never fire.
type NopBroker struct{}

func (NopBroker) Subscribe(string, EventType, Handler) Subscription {
	return nopSubscription{}
}

func (NopBroker) Publish(Event) {}

type nopSubscription struct{}

func (nopSubscription) Unsubscribe() {}

// MarshalPayload encodes a row for an event, dropping it silently when the
// row does not encode; feed consumers must tolerate empty payloads anyway.
func MarshalPayload(row interface{}) json.RawMessage {
	if row == nil {
		return nil
	}
	data, err := json.Marshal(row)
	if err != nil {
		return nil
	}
	return data
}
