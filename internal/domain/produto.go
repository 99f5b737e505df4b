package domain

// Produto é um item do catálogo de produtos.
type Produto struct {
	ID           int     `json:"id"`
	Nome         string  `json:"nome"`
	Descricao    string  `json:"descricao,omitempty"`
	Categoria    string  `json:"categoria,omitempty"`
	Marca        string  `json:"marca,omitempty"`
	IMEI         string  `json:"imei,omitempty"`
	EstoqueAtual int     `json:"estoque_atual"`
	PrecoVenda   float64 `json:"preco_venda"`
	PrecoCusto   float64 `json:"preco_custo,omitempty"`
}

// ProdutoInput é o payload de criação/edição de produto.
type ProdutoInput struct {
	Nome         string  `json:"nome"`
	Descricao    string  `json:"descricao,omitempty"`
	Categoria    string  `json:"categoria,omitempty"`
	Marca        string  `json:"marca,omitempty"`
	IMEI         string  `json:"imei,omitempty"`
	EstoqueAtual int     `json:"estoque_atual"`
	PrecoVenda   float64 `json:"preco_venda"`
	PrecoCusto   float64 `json:"preco_custo,omitempty"`
}
