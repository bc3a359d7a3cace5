package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeedData(t *testing.T) {
	s := NewStore()

	customers := s.List()
	require.Len(t, customers, 2)
	assert.Equal(t, "Alice", customers[0].Nome)
	assert.Equal(t, "Bruno", customers[1].Nome)
}

func TestCreateAssignsIDsAboveSeed(t *testing.T) {
	s := NewStore()

	carla := s.Create("Carla")
	daniel := s.Create("Daniel")

	assert.Equal(t, 3, carla.ID)
	assert.Equal(t, 4, daniel.ID)
	assert.Len(t, s.List(), 4)
}

func TestListReturnsSnapshot(t *testing.T) {
	s := NewStore()

	list := s.List()
	list[0].Nome = "mutated"

	assert.Equal(t, "Alice", s.List()[0].Nome)
}
