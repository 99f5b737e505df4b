package fakeapi_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gocarne/internal/domain"
	"gocarne/internal/fakeapi"
	"gocarne/internal/pkg/logger"
	"gocarne/internal/pkg/token"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	handler, _ := fakeapi.NewServer(fakeapi.Options{
		Tokens:        token.NewService("segredo", time.Hour),
		AdminEmail:    "admin@loja.com",
		AdminPassword: "admin123",
		Registry:      prometheus.NewRegistry(),
	}, logger.NewLogger("debug"))

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return srv
}

func login(t *testing.T, srv *httptest.Server, email, password string) string {
	t.Helper()
	resp, err := http.PostForm(srv.URL+"/token", url.Values{"username": {email}, "password": {password}})
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out domain.TokenResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out.AccessToken
}

func call(t *testing.T, srv *httptest.Server, method, path, tok, body string) *http.Response {
	t.Helper()
	req, err := http.NewRequest(method, srv.URL+path, strings.NewReader(body))
	require.NoError(t, err)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if tok != "" {
		req.Header.Set("Authorization", "Bearer "+tok)
	}
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func detail(t *testing.T, resp *http.Response) string {
	t.Helper()
	var body domain.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return body.Detail
}

func TestRouter_Ping(t *testing.T) {
	srv := newTestServer(t)
	resp := call(t, srv, http.MethodGet, "/ping", "", "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestRouter_RequiresBearerToken(t *testing.T) {
	srv := newTestServer(t)

	resp := call(t, srv, http.MethodGet, "/clients/", "", "")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "Bearer", resp.Header.Get("WWW-Authenticate"))
	assert.Equal(t, "Não autenticado.", detail(t, resp))

	resp = call(t, srv, http.MethodGet, "/me", "lixo", "")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestRouter_LoginWrongPassword(t *testing.T) {
	srv := newTestServer(t)
	resp, err := http.PostForm(srv.URL+"/token", url.Values{"username": {"admin@loja.com"}, "password": {"errada"}})
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "Email ou senha incorretos.", detail(t, resp))
}

func TestRouter_CollectionWithAndWithoutSlash(t *testing.T) {
	srv := newTestServer(t)
	tok := login(t, srv, "admin@loja.com", "admin123")

	resp := call(t, srv, http.MethodPost, "/clients", tok, `{"nome":"Maria","cpf_cnpj":"123"}`)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	resp = call(t, srv, http.MethodGet, "/clients/?search_query=mar", tok, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var clientes []domain.Cliente
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&clientes))
	assert.Len(t, clientes, 1)
}

func TestRouter_AdminOnlyRoutes(t *testing.T) {
	srv := newTestServer(t)
	admin := login(t, srv, "admin@loja.com", "admin123")

	resp := call(t, srv, http.MethodPost, "/register-atendente", admin, `{"nome":"Bia","email":"bia@loja.com","password":"123456"}`)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	atendente := login(t, srv, "bia@loja.com", "123456")
	resp = call(t, srv, http.MethodPost, "/register-admin", atendente, `{"nome":"X","email":"x@loja.com","password":"123456"}`)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	resp = call(t, srv, http.MethodDelete, "/carnes/pagamentos/1", atendente, "")
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestRouter_PublicRegisterIsAtendente(t *testing.T) {
	srv := newTestServer(t)

	resp := call(t, srv, http.MethodPost, "/register", "", `{"nome":"Caio","email":"caio@loja.com","password":"123456","perfil":"admin"}`)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var user domain.User
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&user))
	assert.Equal(t, domain.PerfilAtendente, user.Perfil)
}

func TestRouter_UnknownRouteAndBadID(t *testing.T) {
	srv := newTestServer(t)
	tok := login(t, srv, "admin@loja.com", "admin123")

	resp := call(t, srv, http.MethodGet, "/nao-existe", tok, "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp = call(t, srv, http.MethodGet, "/carnes/999", tok, "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "Carnê não encontrado.", detail(t, resp))
}

func TestRouter_MetricsEndpoint(t *testing.T) {
	srv := newTestServer(t)
	call(t, srv, http.MethodGet, "/ping", "", "")

	resp := call(t, srv, http.MethodGet, "/metrics", "", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `gocarne_fakeapi_requests_total{code="200",method="GET",route="/ping"} 1`)
}

func TestRouter_SwaggerDoc(t *testing.T) {
	srv := newTestServer(t)

	resp := call(t, srv, http.MethodGet, "/swagger/doc.json", "", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var doc map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&doc))
	assert.Equal(t, "2.0", doc["swagger"])
	assert.Contains(t, doc["paths"], "/carnes/pagamentos/")
}

func TestRouter_LoginRateLimit(t *testing.T) {
	handler, _ := fakeapi.NewServer(fakeapi.Options{
		Tokens:     token.NewService("segredo", time.Hour),
		LoginLimit: 1,
	}, logger.NewNopLogger())
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	form := url.Values{"username": {"ninguem@loja.com"}, "password": {"x"}}
	first, err := http.PostForm(srv.URL+"/token", form)
	require.NoError(t, err)
	first.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, first.StatusCode)

	second, err := http.PostForm(srv.URL+"/token", form)
	require.NoError(t, err)
	defer second.Body.Close()
	assert.Equal(t, http.StatusTooManyRequests, second.StatusCode)
	assert.Equal(t, "Muitas tentativas. Aguarde e tente novamente.", detail(t, second))
}
