package client

import (
	"context"
	"net/http"
	"net/url"

	"gocarne/internal/domain"
)

// ProdutosAPI agrupa /api/produtos.
type ProdutosAPI struct{ c *Client }

func (a *ProdutosAPI) List(ctx context.Context, search string) ([]domain.Produto, error) {
	var q url.Values
	if search != "" {
		q = url.Values{"q": {search}}
	}
	var out []domain.Produto
	err := a.c.do(ctx, request{group: "produtos", method: http.MethodGet, path: "/api/produtos/", query: q}, &out)
	return out, err
}

func (a *ProdutosAPI) Get(ctx context.Context, id int) (domain.Produto, error) {
	var out domain.Produto
	err := a.c.do(ctx, request{group: "produtos", method: http.MethodGet, path: idPath("/api/produtos/%d", id)}, &out)
	return out, err
}

func (a *ProdutosAPI) Create(ctx context.Context, in domain.ProdutoInput) (domain.Produto, error) {
	var out domain.Produto
	err := a.c.do(ctx, request{group: "produtos", method: http.MethodPost, path: "/api/produtos/", body: in}, &out)
	return out, err
}

func (a *ProdutosAPI) Update(ctx context.Context, id int, in domain.ProdutoInput) (domain.Produto, error) {
	var out domain.Produto
	err := a.c.do(ctx, request{group: "produtos", method: http.MethodPut, path: idPath("/api/produtos/%d", id), body: in}, &out)
	return out, err
}

func (a *ProdutosAPI) Delete(ctx context.Context, id int) error {
	return a.c.do(ctx, request{group: "produtos", method: http.MethodDelete, path: idPath("/api/produtos/%d", id)}, nil)
}
