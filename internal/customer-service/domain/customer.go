package domain

import "errors"

// ErrNameRequired is returned when a customer is created without a name.
var ErrNameRequired = errors.New("customer name is required")

// Customer is a directory record. IDs are assigned by the store,
// monotonically, starting above the seed data.
type Customer struct {
	ID   int    `json:"id"`
	Nome string `json:"nome"`
}

// Validate checks the fields a caller may supply.
func (c Customer) Validate() error {
	if c.Nome == "" {
		return ErrNameRequired
	}
	return nil
}
