package feed

import "testing"

func TestHubDispatchesToMatchingSubscribers(t *testing.T) {
	hub := NewHub()

	var got []Event
	hub.Subscribe(CollectionVisits, EventAll, func(e Event) {
		got = append(got, e)
	})

	hub.Publish(Event{Collection: CollectionVisits, Type: EventInsert})
	hub.Publish(Event{Collection: CollectionOrders, Type: EventInsert})

	if len(got) != 1 {
		t.Fatalf("expected 1 delivered event, got %d", len(got))
	}
	if got[0].Collection != CollectionVisits {
		t.Fatalf("wrong event delivered: %+v", got[0])
	}
}

func TestHubRespectsEventMask(t *testing.T) {
	hub := NewHub()

	inserts := 0
	hub.Subscribe(CollectionPings, EventInsert, func(Event) {
		inserts++
	})

	hub.Publish(Event{Collection: CollectionPings, Type: EventInsert})
	hub.Publish(Event{Collection: CollectionPings, Type: EventUpdate})
	hub.Publish(Event{Collection: CollectionPings, Type: EventDelete})

	if inserts != 1 {
		t.Fatalf("mask leaked: %d deliveries", inserts)
	}
}

func TestHubUnsubscribeIsIdempotent(t *testing.T) {
	hub := NewHub()

	calls := 0
	sub := hub.Subscribe(CollectionSalespeople, EventAll, func(Event) {
		calls++
	})

	sub.Unsubscribe()
	sub.Unsubscribe()

	hub.Publish(Event{Collection: CollectionSalespeople, Type: EventInsert})
	if calls != 0 {
		t.Fatal("handler ran after unsubscribe")
	}
}

func TestHubUnsubscribeLeavesOtherSubscriptions(t *testing.T) {
	hub := NewHub()

	first, second := 0, 0
	sub := hub.Subscribe(CollectionVisits, EventAll, func(Event) { first++ })
	hub.Subscribe(CollectionVisits, EventAll, func(Event) { second++ })

	sub.Unsubscribe()
	hub.Publish(Event{Collection: CollectionVisits, Type: EventUpdate})

	if first != 0 || second != 1 {
		t.Fatalf("unexpected deliveries: first=%d second=%d", first, second)
	}
}

func TestEventMatches(t *testing.T) {
	e := Event{Collection: CollectionOrders, Type: EventDelete}

	if !e.Matches(CollectionOrders, EventAll) {
		t.Fatal("wildcard mask did not match")
	}
	if !e.Matches(CollectionOrders, EventDelete) {
		t.Fatal("exact mask did not match")
	}
	if e.Matches(CollectionOrders, EventInsert) {
		t.Fatal("mismatched type matched")
	}
	if e.Matches(CollectionVisits, EventAll) {
		t.Fatal("mismatched collection matched")
	}
}

func TestNopBroker(t *testing.T) {
	var broker Broker = NopBroker{}

	sub := broker.Subscribe(CollectionSalespeople, EventAll, func(Event) {
		t.Fatal("no-op broker delivered an event")
	})
	broker.Publish(Event{Collection: CollectionSalespeople, Type: EventInsert})
	sub.Unsubscribe()
	sub.Unsubscribe()
}
