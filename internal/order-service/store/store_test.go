package store

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lojademo/pedidos/internal/order-service/domain"
)

func sampleOrder() domain.Order {
	return domain.Order{
		Cliente: domain.Customer{ID: 1, Nome: "Alice"},
		Itens: []domain.PricedLineItem{
			{ProductID: 1, Nome: "Teclado", Preco: 120.50, Quantidade: 1, Subtotal: 120.50},
		},
		Total: 120.50,
	}
}

func TestAppendAssignsIncreasingIDs(t *testing.T) {
	s := NewStore()

	first := s.Append(sampleOrder())
	second := s.Append(sampleOrder())

	assert.Equal(t, 1, first.ID)
	assert.Equal(t, 2, second.ID)
}

func TestListPreservesInsertionOrder(t *testing.T) {
	s := NewStore()
	s.Append(sampleOrder())
	s.Append(sampleOrder())

	orders := s.List()
	require.Len(t, orders, 2)
	assert.Equal(t, 1, orders[0].ID)
	assert.Equal(t, 2, orders[1].ID)
}

func TestListReturnsSnapshot(t *testing.T) {
	s := NewStore()
	s.Append(sampleOrder())

	first := s.List()
	first[0].Total = -1

	again := s.List()
	assert.InDelta(t, 120.50, again[0].Total, 1e-9)
}

func TestListTwiceWithoutWritesIsIdentical(t *testing.T) {
	s := NewStore()
	s.Append(sampleOrder())
	s.Append(sampleOrder())

	assert.Equal(t, s.List(), s.List())
}

func TestConcurrentAppendsNeverReuseIDs(t *testing.T) {
	s := NewStore()
	const workers = 64

	var wg sync.WaitGroup
	wg.Add(workers)
	for range workers {
		go func() {
			defer wg.Done()
			s.Append(sampleOrder())
		}()
	}
	wg.Wait()

	orders := s.List()
	require.Len(t, orders, workers)

	seen := make(map[int]bool, workers)
	for _, order := range orders {
		assert.False(t, seen[order.ID], "id %d assigned twice", order.ID)
		seen[order.ID] = true
	}
	// No gaps either: a store with N orders has consumed exactly ids 1..N.
	for id := 1; id <= workers; id++ {
		assert.True(t, seen[id], "id %d missing", id)
	}
}
