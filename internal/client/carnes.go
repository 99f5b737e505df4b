package client

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"gocarne/internal/domain"
)

// CarnesAPI agrupa /carnes.
type CarnesAPI struct{ c *Client }

func carneQuery(f domain.CarneFilter) url.Values {
	q := url.Values{}
	if f.ClienteID > 0 {
		q.Set("cliente_id", strconv.Itoa(f.ClienteID))
	}
	if f.Status != "" {
		q.Set("status_carne", f.Status)
	}
	if f.DataVencimentoI != "" {
		q.Set("data_vencimento_inicio", f.DataVencimentoI)
	}
	if f.DataVencimentoF != "" {
		q.Set("data_vencimento_fim", f.DataVencimentoF)
	}
	if f.SearchQuery != "" {
		q.Set("search_query", f.SearchQuery)
	}
	return q
}

func (a *CarnesAPI) List(ctx context.Context, f domain.CarneFilter) ([]domain.Carne, error) {
	var out []domain.Carne
	err := a.c.do(ctx, request{group: "carnes", method: http.MethodGet, path: "/carnes/", query: carneQuery(f)}, &out)
	return out, err
}

func (a *CarnesAPI) Get(ctx context.Context, id int) (domain.Carne, error) {
	var out domain.Carne
	err := a.c.do(ctx, request{group: "carnes", method: http.MethodGet, path: idPath("/carnes/%d", id)}, &out)
	return out, err
}

func (a *CarnesAPI) Create(ctx context.Context, in domain.CarneInput) (domain.Carne, error) {
	var out domain.Carne
	err := a.c.do(ctx, request{group: "carnes", method: http.MethodPost, path: "/carnes/", body: in}, &out)
	return out, err
}

func (a *CarnesAPI) Update(ctx context.Context, id int, in domain.CarneInput) (domain.Carne, error) {
	var out domain.Carne
	err := a.c.do(ctx, request{group: "carnes", method: http.MethodPut, path: idPath("/carnes/%d", id), body: in}, &out)
	return out, err
}

func (a *CarnesAPI) Delete(ctx context.Context, id int) error {
	return a.c.do(ctx, request{group: "carnes", method: http.MethodDelete, path: idPath("/carnes/%d", id)}, nil)
}

// ParcelasAPI agrupa as rotas de parcelas, aninhadas em /carnes.
type ParcelasAPI struct{ c *Client }

func (a *ParcelasAPI) ListByCarne(ctx context.Context, carneID int) ([]domain.Parcela, error) {
	var out []domain.Parcela
	err := a.c.do(ctx, request{group: "parcelas", method: http.MethodGet, path: idPath("/carnes/%d/parcelas", carneID)}, &out)
	return out, err
}

func (a *ParcelasAPI) Get(ctx context.Context, id int) (domain.Parcela, error) {
	var out domain.Parcela
	err := a.c.do(ctx, request{group: "parcelas", method: http.MethodGet, path: idPath("/carnes/parcelas/%d", id)}, &out)
	return out, err
}

func (a *ParcelasAPI) Update(ctx context.Context, id int, in domain.ParcelaUpdate) (domain.Parcela, error) {
	var out domain.Parcela
	err := a.c.do(ctx, request{group: "parcelas", method: http.MethodPut, path: idPath("/carnes/parcelas/%d", id), body: in}, &out)
	return out, err
}

func (a *ParcelasAPI) Delete(ctx context.Context, id int) error {
	return a.c.do(ctx, request{group: "parcelas", method: http.MethodDelete, path: idPath("/carnes/parcelas/%d", id)}, nil)
}

// Renegotiate altera vencimento e/ou valor devido de uma parcela.
func (a *ParcelasAPI) Renegotiate(ctx context.Context, id int, in domain.RenegotiateInput) (domain.Parcela, error) {
	var out domain.Parcela
	err := a.c.do(ctx, request{group: "parcelas", method: http.MethodPost, path: idPath("/carnes/parcelas/%d/renegotiate", id), body: in}, &out)
	return out, err
}

// PagamentosAPI agrupa o registro, a listagem e o estorno de pagamentos.
type PagamentosAPI struct{ c *Client }

func (a *PagamentosAPI) Register(ctx context.Context, in domain.PagamentoInput) (domain.Pagamento, error) {
	var out domain.Pagamento
	err := a.c.do(ctx, request{group: "pagamentos", method: http.MethodPost, path: "/carnes/pagamentos/", body: in}, &out)
	return out, err
}

func (a *PagamentosAPI) ListByParcela(ctx context.Context, parcelaID int) ([]domain.Pagamento, error) {
	var out []domain.Pagamento
	err := a.c.do(ctx, request{group: "pagamentos", method: http.MethodGet, path: idPath("/carnes/parcelas/%d/pagamentos", parcelaID)}, &out)
	return out, err
}

// Reverse estorna um pagamento (somente admin; a API valida o perfil).
func (a *PagamentosAPI) Reverse(ctx context.Context, id int) error {
	return a.c.do(ctx, request{group: "pagamentos", method: http.MethodDelete, path: idPath("/carnes/pagamentos/%d", id)}, nil)
}
