package domain

// Status de carnê e de parcela como devolvidos pela API.
const (
	StatusCarneAtivo     = "Ativo"
	StatusCarneQuitado   = "Quitado"
	StatusCarneEmAtraso  = "Em Atraso"
	StatusCarneCancelado = "Cancelado"

	StatusParcelaPendente        = "Pendente"
	StatusParcelaPaga            = "Paga"
	StatusParcelaPagaComAtraso   = "Paga com Atraso"
	StatusParcelaAtrasada        = "Atrasada"
	StatusParcelaParcialmentePag = "Parcialmente Paga"
)

// Frequências de pagamento aceitas na criação do carnê.
var FrequenciasPagamento = []string{"mensal", "quinzenal", "semanal"}

// DateLayout é o formato de data (sem hora) trocado com a API.
const DateLayout = "2006-01-02"

// Carne é um plano de pagamento parcelado de um cliente.
type Carne struct {
	ID                     int       `json:"id"`
	IDCliente              int       `json:"id_cliente"`
	DataCriacao            string    `json:"data_criacao,omitempty"`
	ValorTotalOriginal     float64   `json:"valor_total_original"`
	NumeroParcelas         int       `json:"numero_parcelas"`
	ValorParcelaOriginal   float64   `json:"valor_parcela_original"`
	DataPrimeiroVencimento string    `json:"data_primeiro_vencimento"`
	FrequenciaPagamento    string    `json:"frequencia_pagamento"`
	StatusCarne            string    `json:"status_carne"`
	Observacoes            string    `json:"observacoes,omitempty"`
	ValorEntrada           float64   `json:"valor_entrada"`
	FormaPagamentoEntrada  string    `json:"forma_pagamento_entrada,omitempty"`
	Cliente                *Cliente  `json:"cliente,omitempty"`
	Parcelas               []Parcela `json:"parcelas,omitempty"`
}

// CarneInput é o payload de criação/edição de carnê.
type CarneInput struct {
	IDCliente              int     `json:"id_cliente"`
	ValorTotalOriginal     float64 `json:"valor_total_original"`
	NumeroParcelas         int     `json:"numero_parcelas"`
	DataPrimeiroVencimento string  `json:"data_primeiro_vencimento"`
	FrequenciaPagamento    string  `json:"frequencia_pagamento"`
	StatusCarne            string  `json:"status_carne,omitempty"`
	Observacoes            string  `json:"observacoes,omitempty"`
	ValorEntrada           float64 `json:"valor_entrada"`
	FormaPagamentoEntrada  string  `json:"forma_pagamento_entrada,omitempty"`
}

// CarneFilter são os filtros de GET /carnes/. Campos vazios não são enviados.
type CarneFilter struct {
	ClienteID       int
	Status          string
	DataVencimentoI string
	DataVencimentoF string
	SearchQuery     string
}

// Parcela é uma prestação de um carnê.
type Parcela struct {
	ID                    int     `json:"id"`
	IDCarne               int     `json:"id_carne"`
	NumeroParcela         int     `json:"numero_parcela"`
	ValorDevido           float64 `json:"valor_devido"`
	DataVencimento        string  `json:"data_vencimento"`
	ValorPago             float64 `json:"valor_pago"`
	SaldoDevedor          float64 `json:"saldo_devedor"`
	JurosMultaAnterior    float64 `json:"juros_multa_anterior_aplicada,omitempty"`
	JurosMulta            float64 `json:"juros_multa"`
	StatusParcela         string  `json:"status_parcela"`
	DataPagamentoCompleto string  `json:"data_pagamento_completo,omitempty"`
	Observacoes           string  `json:"observacoes,omitempty"`
}

// ParcelaUpdate é o payload de PUT /carnes/parcelas/{id}.
type ParcelaUpdate struct {
	ValorDevido    *float64 `json:"valor_devido,omitempty"`
	DataVencimento string   `json:"data_vencimento,omitempty"`
	StatusParcela  string   `json:"status_parcela,omitempty"`
	Observacoes    string   `json:"observacoes,omitempty"`
}

// RenegotiateInput é o payload de POST /carnes/parcelas/{id}/renegotiate.
type RenegotiateInput struct {
	NovaDataVencimento string   `json:"nova_data_vencimento"`
	NovoValorDevido    *float64 `json:"novo_valor_devido,omitempty"`
	Observacoes        string   `json:"observacoes,omitempty"`
}

// Pagamento é um pagamento aplicado a uma parcela.
type Pagamento struct {
	ID                int     `json:"id"`
	IDParcela         int     `json:"id_parcela"`
	DataPagamento     string  `json:"data_pagamento"`
	ValorPago         float64 `json:"valor_pago"`
	FormaPagamento    string  `json:"forma_pagamento"`
	Observacoes       string  `json:"observacoes,omitempty"`
	IDUsuarioRegistro int     `json:"id_usuario_registro,omitempty"`
}

// PagamentoInput é o payload de POST /carnes/pagamentos/.
type PagamentoInput struct {
	IDParcela      int     `json:"id_parcela"`
	ValorPago      float64 `json:"valor_pago"`
	FormaPagamento string  `json:"forma_pagamento"`
	DataPagamento  string  `json:"data_pagamento,omitempty"`
	Observacoes    string  `json:"observacoes,omitempty"`
}
