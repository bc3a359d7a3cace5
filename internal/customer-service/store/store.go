// Package store holds the in-memory customer directory. State lives for the
// process lifetime only; there is no durability requirement for this demo.
package store

import (
	"sync"

	"github.com/lojademo/pedidos/internal/customer-service/domain"
)

// Store owns the customer records and the next-id counter.
type Store struct {
	mu        sync.RWMutex
	customers []domain.Customer
	nextID    int
}

// NewStore returns a store seeded with the demo customers.
func NewStore() *Store {
	return &Store{
		customers: []domain.Customer{
			{ID: 1, Nome: "Alice"},
			{ID: 2, Nome: "Bruno"},
		},
		nextID: 3,
	}
}

// List returns a snapshot of all customers in insertion order.
func (s *Store) List() []domain.Customer {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Customer, len(s.customers))
	copy(out, s.customers)
	return out
}

// Create assigns the next id and appends the record.
func (s *Store) Create(nome string) domain.Customer {
	s.mu.Lock()
	defer s.mu.Unlock()

	customer := domain.Customer{ID: s.nextID, Nome: nome}
	s.nextID++
	s.customers = append(s.customers, customer)
	return customer
}
