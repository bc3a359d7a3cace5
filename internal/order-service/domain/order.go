// Package domain holds the order aggregate and the orchestrator's own view of
// collaborator records. Customer and Product here are snapshots read from the
// directory and catalog services; once embedded in an Order they are decoupled
// from later changes to the source records.
package domain

import "math"

// Customer is the directory record as seen by the order service.
type Customer struct {
	ID   int    `json:"id"`
	Nome string `json:"nome"`
}

// Product is the catalog record as seen by the order service.
type Product struct {
	ID    int     `json:"id"`
	Nome  string  `json:"nome"`
	Preco float64 `json:"preco"`
}

// LineItemRequest is one requested product+quantity entry. It exists only
// within a single order-creation call and is never persisted.
type LineItemRequest struct {
	ProductID int
	Quantity  int
}

// PricedLineItem is an immutable line item priced against the catalog state
// at the moment of order creation.
type PricedLineItem struct {
	ProductID  int     `json:"produtoId"`
	Nome       string  `json:"nome"`
	Preco      float64 `json:"preco"`
	Quantidade int     `json:"quantidade"`
	Subtotal   float64 `json:"subtotal"`
}

// Order is the core aggregate: a customer snapshot, the priced line items in
// request order, and the rounded total. Never mutated after creation.
type Order struct {
	ID      int              `json:"id"`
	Cliente Customer         `json:"cliente"`
	Itens   []PricedLineItem `json:"itens"`
	Total   float64          `json:"total"`
}

// NormalizeQuantity clamps a missing, zero, or negative quantity to 1.
// Orders are never rejected on quantity alone, only on unresolvable references.
func NormalizeQuantity(q int) int {
	if q < 1 {
		return 1
	}
	return q
}

// RoundCurrency rounds to 2 decimal places using standard half-away rounding.
func RoundCurrency(v float64) float64 {
	return math.Round(v*100) / 100
}

// PriceLineItem snapshots a product into a line item with the given
// (already normalized) quantity.
func PriceLineItem(p Product, quantity int) PricedLineItem {
	return PricedLineItem{
		ProductID:  p.ID,
		Nome:       p.Nome,
		Preco:      p.Preco,
		Quantidade: quantity,
		Subtotal:   p.Preco * float64(quantity),
	}
}

// Total sums all subtotals and rounds the result to 2 decimal places.
func Total(items []PricedLineItem) float64 {
	var total float64
	for _, item := range items {
		total += item.Subtotal
	}
	return RoundCurrency(total)
}
