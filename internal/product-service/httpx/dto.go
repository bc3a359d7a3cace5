package httpx

// CreateProductRequest is the body of POST /produtos. Preco is a pointer so
// a missing price can be told apart from an explicit zero (zero is valid).
type CreateProductRequest struct {
	Nome  string   `json:"nome"`
	Preco *float64 `json:"preco"`
}
