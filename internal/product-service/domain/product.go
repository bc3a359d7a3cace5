package domain

import "errors"

var (
	// ErrNameRequired is returned when a product is created without a name.
	ErrNameRequired = errors.New("product name is required")
	// ErrPriceInvalid is returned for a missing or negative unit price.
	ErrPriceInvalid = errors.New("product price must be non-negative")
)

// Product is a catalog record. Preco is the unit price in the store currency.
type Product struct {
	ID    int     `json:"id"`
	Nome  string  `json:"nome"`
	Preco float64 `json:"preco"`
}

// Validate checks the fields a caller may supply.
func (p Product) Validate() error {
	if p.Nome == "" {
		return ErrNameRequired
	}
	if p.Preco < 0 {
		return ErrPriceInvalid
	}
	return nil
}
