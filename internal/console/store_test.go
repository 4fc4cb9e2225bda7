package console

import (
	"testing"
	"time"

	orderdomain "salestrack/internal/domain/order"
	"salestrack/internal/domain/salesperson"
	"salestrack/internal/feed"
)

func TestStoreDiscardsStaleSnapshot(t *testing.T) {
	store := NewStore()

	// Two fetches leave in order; the later one's response lands first.
	early := store.Begin(feed.CollectionSalespeople)
	late := store.Begin(feed.CollectionSalespeople)

	if !store.ReplaceSalespeople(late, []salesperson.Salesperson{namedSalesperson(1, "Ana"), namedSalesperson(2, "Luis")}) {
		t.Fatal("fresh snapshot was rejected")
	}
	if store.ReplaceSalespeople(early, []salesperson.Salesperson{namedSalesperson(1, "Ana")}) {
		t.Fatal("stale snapshot was applied")
	}

	got := store.Salespeople()
	if len(got) != 2 {
		t.Fatalf("expected the newer snapshot to survive, got %d rows", len(got))
	}
}

// Without the issue-order guard, whichever response lands last would win
// regardless of when its request left. This pins the exact interleaving the
// guard exists to prevent.
func TestStoreSameSequenceReappliesButNeverRegresses(t *testing.T) {
	store := NewStore()

	seq := store.Begin(feed.CollectionSalespeople)
	if !store.ReplaceSalespeople(seq, []salesperson.Salesperson{namedSalesperson(1, "Ana")}) {
		t.Fatal("first application rejected")
	}

	// A retry of the same fetch may reapply; only strictly older fetches
	// are discarded.
	if !store.ReplaceSalespeople(seq, []salesperson.Salesperson{namedSalesperson(1, "Ana")}) {
		t.Fatal("same-sequence reapply rejected")
	}

	newer := store.Begin(feed.CollectionSalespeople)
	if !store.ReplaceSalespeople(newer, nil) {
		t.Fatal("newer snapshot rejected")
	}
	if store.ReplaceSalespeople(seq, []salesperson.Salesperson{namedSalesperson(1, "Ana")}) {
		t.Fatal("older snapshot applied after a newer one")
	}
}

func TestStoreSequencesArePerCollection(t *testing.T) {
	store := NewStore()

	spSeq := store.Begin(feed.CollectionSalespeople)
	store.Begin(feed.CollectionVisits)
	visitSeq := store.Begin(feed.CollectionVisits)

	if !store.ReplaceVisits(visitSeq, nil) {
		t.Fatal("visit snapshot rejected")
	}
	// The salespeople fetch was issued before both visit fetches, but the
	// collections do not share a sequence.
	if !store.ReplaceSalespeople(spSeq, []salesperson.Salesperson{namedSalesperson(1, "Ana")}) {
		t.Fatal("salespeople snapshot rejected by an unrelated collection's sequence")
	}
}

func TestApplyPingMovesMarkerInPlace(t *testing.T) {
	store := NewStore()
	seq := store.Begin(feed.CollectionSalespeople)
	store.ReplaceSalespeople(seq, []salesperson.Salesperson{
		namedSalesperson(1, "Ana"),
		namedSalesperson(2, "Luis"),
	})

	at := time.Date(2026, 3, 14, 10, 30, 0, 0, time.UTC)
	store.ApplyPing(1, 12.10, -86.20, at)

	people := store.Salespeople()
	if people[0].Latitude == nil || *people[0].Latitude != 12.10 {
		t.Fatalf("expected Ana's latitude 12.10, got %v", people[0].Latitude)
	}
	if people[0].LastUpdated == nil || !people[0].LastUpdated.Equal(at) {
		t.Fatalf("expected LastUpdated %v, got %v", at, people[0].LastUpdated)
	}
	if people[1].Latitude != nil {
		t.Fatal("ping for one agent moved another agent's marker")
	}
}

func TestApplyPingForUnknownAgentIsIgnored(t *testing.T) {
	store := NewStore()
	seq := store.Begin(feed.CollectionSalespeople)
	store.ReplaceSalespeople(seq, []salesperson.Salesperson{namedSalesperson(1, "Ana")})

	store.ApplyPing(99, 12.10, -86.20, time.Now())

	if store.Salespeople()[0].Latitude != nil {
		t.Fatal("ping for an unknown agent mutated the replica")
	}
}

func TestStats(t *testing.T) {
	store := NewStore()

	inactive := namedSalesperson(2, "Luis")
	inactive.Status = salesperson.StatusInactive
	store.ReplaceSalespeople(store.Begin(feed.CollectionSalespeople), []salesperson.Salesperson{
		namedSalesperson(1, "Ana"),
		inactive,
	})
	store.ReplaceOrders(store.Begin(feed.CollectionOrders), []orderdomain.Order{
		{ID: 1, TotalAmount: 150.50},
		{ID: 2, TotalAmount: 49.50},
	})

	stats := store.Stats()
	if stats.TotalSalespeople != 2 || stats.ActiveSalespeople != 1 {
		t.Fatalf("unexpected salespeople stats: %+v", stats)
	}
	if stats.TotalSales != 200.0 {
		t.Fatalf("expected total sales 200.0, got %v", stats.TotalSales)
	}
}
