// Package store owns the append-only order collection and the next-id
// counter. The orchestrator is its only writer; no external mutation path
// exists. State lives for the process lifetime only.
package store

import (
	"sync"

	"github.com/lojademo/pedidos/internal/order-service/domain"
)

// Store guards the order list and the id counter with one mutex, so two
// concurrent creations can never receive the same id or interleave an append.
type Store struct {
	mu     sync.Mutex
	orders []domain.Order
	nextID int
}

func NewStore() *Store {
	return &Store{nextID: 1}
}

// Append reserves the next id, stamps it on the assembled order, and stores
// it — a single critical section, so no observer can see the counter advanced
// without the corresponding order. Callers must only reach this point after
// every lookup has succeeded: a failed attempt never consumes an id.
func (s *Store) Append(order domain.Order) domain.Order {
	s.mu.Lock()
	defer s.mu.Unlock()

	order.ID = s.nextID
	s.nextID++
	s.orders = append(s.orders, order)
	return order
}

// List returns a snapshot of all orders in insertion order.
func (s *Store) List() []domain.Order {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]domain.Order, len(s.orders))
	copy(out, s.orders)
	return out
}
