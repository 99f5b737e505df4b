package client

import (
	"context"
	"net/http"
	"net/url"

	"gocarne/internal/domain"
)

// ClientesAPI agrupa /clients.
type ClientesAPI struct{ c *Client }

// List lista os clientes; search vazio lista todos.
func (a *ClientesAPI) List(ctx context.Context, search string) ([]domain.Cliente, error) {
	var q url.Values
	if search != "" {
		q = url.Values{"search_query": {search}}
	}
	var out []domain.Cliente
	err := a.c.do(ctx, request{group: "clients", method: http.MethodGet, path: "/clients/", query: q}, &out)
	return out, err
}

func (a *ClientesAPI) Get(ctx context.Context, id int) (domain.Cliente, error) {
	var out domain.Cliente
	err := a.c.do(ctx, request{group: "clients", method: http.MethodGet, path: idPath("/clients/%d", id)}, &out)
	return out, err
}

func (a *ClientesAPI) Create(ctx context.Context, in domain.ClienteInput) (domain.Cliente, error) {
	var out domain.Cliente
	err := a.c.do(ctx, request{group: "clients", method: http.MethodPost, path: "/clients/", body: in}, &out)
	return out, err
}

func (a *ClientesAPI) Update(ctx context.Context, id int, in domain.ClienteInput) (domain.Cliente, error) {
	var out domain.Cliente
	err := a.c.do(ctx, request{group: "clients", method: http.MethodPut, path: idPath("/clients/%d", id), body: in}, &out)
	return out, err
}

func (a *ClientesAPI) Delete(ctx context.Context, id int) error {
	return a.c.do(ctx, request{group: "clients", method: http.MethodDelete, path: idPath("/clients/%d", id)}, nil)
}

func (a *ClientesAPI) Summary(ctx context.Context, id int) (domain.ClienteSummary, error) {
	var out domain.ClienteSummary
	err := a.c.do(ctx, request{group: "clients", method: http.MethodGet, path: idPath("/clients/%d/summary", id)}, &out)
	return out, err
}
