package httpx

// CreateOrderRequest is the body of POST /pedidos, in the frontend's wire
// vocabulary.
type CreateOrderRequest struct {
	ClienteID int           `json:"clienteId"`
	Itens     []LineItemDTO `json:"itens"`
}

// LineItemDTO is one requested item. Quantidade may be absent, zero, or
// negative; the orchestrator clamps it to 1.
type LineItemDTO struct {
	ProdutoID  int `json:"produtoId"`
	Quantidade int `json:"quantidade"`
}
