package client

import (
	"context"
	"net/http"
	"net/url"

	"gocarne/internal/domain"
)

// AuthAPI agrupa /token, /me e os endpoints de registro.
type AuthAPI struct{ c *Client }

// Login troca email e senha por um token (POST /token, form-urlencoded).
func (a *AuthAPI) Login(ctx context.Context, email, password string) (domain.TokenResponse, error) {
	var out domain.TokenResponse
	form := url.Values{}
	form.Set("username", email)
	form.Set("password", password)
	err := a.c.do(ctx, request{group: "auth", method: http.MethodPost, path: "/token", form: form}, &out)
	return out, err
}

// Me busca o usuário dono do token atual.
func (a *AuthAPI) Me(ctx context.Context) (domain.User, error) {
	var out domain.User
	err := a.c.do(ctx, request{group: "auth", method: http.MethodGet, path: "/me"}, &out)
	return out, err
}

// UpdateMe atualiza o perfil do usuário atual.
func (a *AuthAPI) UpdateMe(ctx context.Context, in domain.ProfileInput) (domain.User, error) {
	var out domain.User
	err := a.c.do(ctx, request{group: "auth", method: http.MethodPut, path: "/me", body: in}, &out)
	return out, err
}

func (a *AuthAPI) Register(ctx context.Context, in domain.Registration) (domain.User, error) {
	return a.register(ctx, "/register", in)
}

func (a *AuthAPI) RegisterAdmin(ctx context.Context, in domain.Registration) (domain.User, error) {
	return a.register(ctx, "/register-admin", in)
}

func (a *AuthAPI) RegisterAtendente(ctx context.Context, in domain.Registration) (domain.User, error) {
	return a.register(ctx, "/register-atendente", in)
}

func (a *AuthAPI) register(ctx context.Context, path string, in domain.Registration) (domain.User, error) {
	var out domain.User
	err := a.c.do(ctx, request{group: "auth", method: http.MethodPost, path: path, body: in}, &out)
	return out, err
}
