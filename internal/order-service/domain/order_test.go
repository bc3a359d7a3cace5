package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeQuantity(t *testing.T) {
	tests := []struct {
		name string
		in   int
		want int
	}{
		{"missing defaults to one", 0, 1},
		{"negative clamps to one", -3, 1},
		{"one stays one", 1, 1},
		{"positive passes through", 7, 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeQuantity(tt.in))
		})
	}
}

func TestRoundCurrency(t *testing.T) {
	assert.InDelta(t, 311.00, RoundCurrency(311.004), 1e-9)
	assert.InDelta(t, 311.01, RoundCurrency(311.005), 1e-9)
	assert.InDelta(t, 0.1, RoundCurrency(0.1+0.2-0.2), 1e-9)
	assert.InDelta(t, 0, RoundCurrency(0), 1e-9)
}

func TestPriceLineItem(t *testing.T) {
	product := Product{ID: 1, Nome: "Teclado", Preco: 120.50}

	item := PriceLineItem(product, 2)

	assert.Equal(t, 1, item.ProductID)
	assert.Equal(t, "Teclado", item.Nome)
	assert.InDelta(t, 120.50, item.Preco, 1e-9)
	assert.Equal(t, 2, item.Quantidade)
	assert.InDelta(t, 241.00, item.Subtotal, 1e-9)
}

func TestTotalSumsSubtotalsRounded(t *testing.T) {
	items := []PricedLineItem{
		PriceLineItem(Product{ID: 1, Nome: "Teclado", Preco: 120.50}, 2),
		PriceLineItem(Product{ID: 2, Nome: "Mouse", Preco: 70.00}, 1),
	}

	require.InDelta(t, 311.00, Total(items), 1e-9)
}

func TestTotalOfNoItemsIsZero(t *testing.T) {
	assert.Zero(t, Total(nil))
}
