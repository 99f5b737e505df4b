package domain

// DashboardSummary é a resposta de GET /reports/dashboard/summary.
type DashboardSummary struct {
	TotalClientes             int     `json:"total_clientes"`
	TotalCarnes               int     `json:"total_carnes"`
	TotalCarnesAtivos         int     `json:"total_carnes_ativos"`
	TotalCarnesQuitados       int     `json:"total_carnes_quitados"`
	TotalCarnesEmAtraso       int     `json:"total_carnes_em_atraso"`
	TotalRecebidoMes          float64 `json:"total_recebido_mes"`
	TotalAReceberMes          float64 `json:"total_a_receber_mes"`
	ParcelasVencidas          int     `json:"parcelas_vencidas"`
	ParcelasAVencerProximos7D int     `json:"parcelas_a_vencer_proximos_7_dias"`
}

// ReceiptItem é uma linha de GET /reports/receipts.
type ReceiptItem struct {
	PagamentoID    int     `json:"pagamento_id"`
	DataPagamento  string  `json:"data_pagamento"`
	ValorPago      float64 `json:"valor_pago"`
	FormaPagamento string  `json:"forma_pagamento"`
	ParcelaID      int     `json:"parcela_id"`
	NumeroParcela  int     `json:"numero_parcela"`
	CarneID        int     `json:"carne_id"`
	ClienteNome    string  `json:"cliente_nome"`
}

// ReceiptsReport é a resposta de GET /reports/receipts.
type ReceiptsReport struct {
	StartDate     string        `json:"start_date"`
	EndDate       string        `json:"end_date"`
	TotalRecebido float64       `json:"total_recebido"`
	Items         []ReceiptItem `json:"items"`
}

// ReceiptsFilter é o intervalo de datas do relatório de recebimentos (YYYY-MM-DD).
type ReceiptsFilter struct {
	StartDate string
	EndDate   string
}

// PendingDebt é uma parcela em aberto no relatório de pendências do cliente.
type PendingDebt struct {
	CarneID        int     `json:"carne_id"`
	ParcelaID      int     `json:"parcela_id"`
	NumeroParcela  int     `json:"numero_parcela"`
	DataVencimento string  `json:"data_vencimento"`
	ValorDevido    float64 `json:"valor_devido"`
	ValorPago      float64 `json:"valor_pago"`
	SaldoDevedor   float64 `json:"saldo_devedor"`
	JurosMulta     float64 `json:"juros_multa"`
	StatusParcela  string  `json:"status_parcela"`
}

// PendingDebtsReport é a resposta de GET /reports/pending-debts-by-client/{id}.
type PendingDebtsReport struct {
	ClienteID         int           `json:"cliente_id"`
	ClienteNome       string        `json:"cliente_nome"`
	TotalSaldoDevedor float64       `json:"total_saldo_devedor"`
	Items             []PendingDebt `json:"items"`
}
