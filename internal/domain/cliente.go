package domain

// Cliente é o registro de cliente devolvido pela API.
type Cliente struct {
	ID       int    `json:"id"`
	Nome     string `json:"nome"`
	CPFCNPJ  string `json:"cpf_cnpj"`
	Endereco string `json:"endereco,omitempty"`
	Telefone string `json:"telefone,omitempty"`
	Email    string `json:"email,omitempty"`
}

// ClienteInput é o payload de criação/edição de cliente.
type ClienteInput struct {
	Nome     string `json:"nome"`
	CPFCNPJ  string `json:"cpf_cnpj"`
	Endereco string `json:"endereco,omitempty"`
	Telefone string `json:"telefone,omitempty"`
	Email    string `json:"email,omitempty"`
}

// ClienteSummary é a resposta de GET /clients/{id}/summary.
type ClienteSummary struct {
	ClienteID         int     `json:"cliente_id"`
	TotalCarnes       int     `json:"total_carnes"`
	CarnesAtivos      int     `json:"carnes_ativos"`
	CarnesQuitados    int     `json:"carnes_quitados"`
	CarnesEmAtraso    int     `json:"carnes_em_atraso"`
	ValorTotalDevido  float64 `json:"valor_total_devido"`
	ValorTotalPago    float64 `json:"valor_total_pago"`
	SaldoDevedorTotal float64 `json:"saldo_devedor_total"`
}
