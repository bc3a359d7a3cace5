package httpx

// CreateCustomerRequest is the body of POST /clientes.
type CreateCustomerRequest struct {
	Nome string `json:"nome"`
}
