package console

import (
	"sync"
	"time"

	clientdomain "salestrack/internal/domain/client"
	orderdomain "salestrack/internal/domain/order"
	"salestrack/internal/domain/salesperson"
	visitdomain "salestrack/internal/domain/visit"
	"salestrack/internal/feed"
)

// Store holds the console's read replicas of the remote collections.
//
// Replacement is whole-collection and guarded by an issue-order sequence:
// every fetch reserves a sequence number before its request leaves, and a
// response is applied only while no later-issued response has landed first.
// A slow early response can therefore never overwrite a newer snapshot.
type Store struct {
	mu sync.RWMutex

	salespeople []salesperson.Salesperson
	visits      []visitdomain.Visit
	orders      []orderdomain.Order
	clients     []clientdomain.Client

	issued  map[string]uint64
	applied map[string]uint64
}

func NewStore() *Store {
	return &Store{
		issued:  make(map[string]uint64),
		applied: make(map[string]uint64),
	}
}

// Begin reserves the next sequence number for a fetch of the collection.
// Call it before issuing the request, not after the response arrives.
func (s *Store) Begin(collection string) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.issued[collection]++
	return s.issued[collection]
}

// admit records seq as applied when it is not older than the newest applied
// response for the collection.
func (s *Store) admit(collection string, seq uint64) bool {
	if seq < s.applied[collection] {
		return false
	}
	s.applied[collection] = seq
	return true
}

// ReplaceSalespeople swaps in a fetched snapshot. Returns false when the
// snapshot was stale and discarded.
func (s *Store) ReplaceSalespeople(seq uint64, rows []salesperson.Salesperson) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.admit(feed.CollectionSalespeople, seq) {
		return false
	}
	s.salespeople = rows
	return true
}

func (s *Store) ReplaceVisits(seq uint64, rows []visitdomain.Visit) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.admit(feed.CollectionVisits, seq) {
		return false
	}
	s.visits = rows
	return true
}

func (s *Store) ReplaceOrders(seq uint64, rows []orderdomain.Order) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.admit(feed.CollectionOrders, seq) {
		return false
	}
	s.orders = rows
	return true
}

func (s *Store) ReplaceClients(seq uint64, rows []clientdomain.Client) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.admit(feed.CollectionClients, seq) {
		return false
	}
	s.clients = rows
	return true
}

// ApplyPing is the write-through for a live position report: the matching
// agent's marker moves immediately, before the follow-up refetch confirms.
func (s *Store) ApplyPing(salespersonID uint, latitude, longitude float64, at time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.salespeople {
		if s.salespeople[i].ID != salespersonID {
			continue
		}
		lat, lng, ts := latitude, longitude, at
		s.salespeople[i].Latitude = &lat
		s.salespeople[i].Longitude = &lng
		s.salespeople[i].LastUpdated = &ts
		return
	}
}

// Salespeople returns a copy of the replica.
func (s *Store) Salespeople() []salesperson.Salesperson {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]salesperson.Salesperson, len(s.salespeople))
	copy(out, s.salespeople)
	return out
}

func (s *Store) Visits() []visitdomain.Visit {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]visitdomain.Visit, len(s.visits))
	copy(out, s.visits)
	return out
}

func (s *Store) Orders() []orderdomain.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]orderdomain.Order, len(s.orders))
	copy(out, s.orders)
	return out
}

func (s *Store) Clients() []clientdomain.Client {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]clientdomain.Client, len(s.clients))
	copy(out, s.clients)
	return out
}

// Stats are the dashboard headline numbers, computed over the replicas.
type Stats struct {
	TotalSalespeople  int
	ActiveSalespeople int
	TotalVisits       int
	TotalSales        float64
}

func (s *Store) Stats() Stats {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stats := Stats{
		TotalSalespeople: len(s.salespeople),
		TotalVisits:      len(s.visits),
	}
	for i := range s.salespeople {
		if s.salespeople[i].Status == salesperson.StatusActive {
			stats.ActiveSalespeople++
		}
	}
	for i := range s.orders {
		stats.TotalSales += s.orders[i].TotalAmount
	}
	return stats
}
