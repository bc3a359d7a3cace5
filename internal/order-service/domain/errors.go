package domain

import (
	"errors"
	"fmt"
)

// ErrInvalidRequest is returned when the order request is malformed before
// any remote call is made: missing/non-positive customer id or empty items.
var ErrInvalidRequest = errors.New("clienteId and itens are required")

// Resource names used in not-found classification. They double as the
// Portuguese wire vocabulary.
const (
	ResourceCustomer = "cliente"
	ResourceProduct  = "produto"
)

// Collaborator names used in upstream classification.
const (
	UpstreamCustomers = "clientes"
	UpstreamProducts  = "produtos"
)

// NotFoundError reports that a referenced customer or product does not exist.
// A client error: retrying with the same ids will not succeed.
type NotFoundError struct {
	Resource string
	ID       int
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %d not found", e.Resource, e.ID)
}

// NewCustomerNotFound builds a NotFoundError for a customer id.
func NewCustomerNotFound(id int) *NotFoundError {
	return &NotFoundError{Resource: ResourceCustomer, ID: id}
}

// NewProductNotFound builds a NotFoundError for a product id.
func NewProductNotFound(id int) *NotFoundError {
	return &NotFoundError{Resource: ResourceProduct, ID: id}
}

// UpstreamError reports that a collaborator could not be reached or timed
// out. Terminal for the current call, but retryable from the caller's side.
type UpstreamError struct {
	Service string
	Err     error
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("%s service unavailable: %v", e.Service, e.Err)
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}

// AsNotFound extracts a NotFoundError from an error chain.
func AsNotFound(err error) (*NotFoundError, bool) {
	var nf *NotFoundError
	ok := errors.As(err, &nf)
	return nf, ok
}

// AsUpstream extracts an UpstreamError from an error chain.
func AsUpstream(err error) (*UpstreamError, bool) {
	var ue *UpstreamError
	ok := errors.As(err, &ue)
	return ue, ok
}
