// Package store holds the in-memory product catalog.
package store

import (
	"sync"

	"github.com/lojademo/pedidos/internal/product-service/domain"
)

// Store owns the product records and the next-id counter.
type Store struct {
	mu       sync.RWMutex
	products []domain.Product
	nextID   int
}

// NewStore returns a store seeded with the demo products.
func NewStore() *Store {
	return &Store{
		products: []domain.Product{
			{ID: 1, Nome: "Teclado", Preco: 120.50},
			{ID: 2, Nome: "Mouse", Preco: 70.00},
		},
		nextID: 3,
	}
}

// List returns a snapshot of all products in insertion order.
func (s *Store) List() []domain.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Product, len(s.products))
	copy(out, s.products)
	return out
}

// Create assigns the next id and appends the record.
func (s *Store) Create(nome string, preco float64) domain.Product {
	s.mu.Lock()
	defer s.mu.Unlock()

	product := domain.Product{ID: s.nextID, Nome: nome, Preco: preco}
	s.nextID++
	s.products = append(s.products, product)
	return product
}
