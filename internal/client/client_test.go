package client_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/sony/gobreaker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gocarne/internal/client"
	"gocarne/internal/domain"
	apperror "gocarne/internal/errors"
	"gocarne/internal/pkg/storage"
)

func newTestClient(t *testing.T, handler http.HandlerFunc, store storage.Storage, opts ...func(*client.Options)) *client.Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	o := client.Options{BaseURL: srv.URL, Timeout: 2 * time.Second}
	for _, fn := range opts {
		fn(&o)
	}
	return client.New(o, store)
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func TestClient_AttachesBearerTokenFromStorage(t *testing.T) {
	store := storage.NewMemoryStorage()
	require.NoError(t, store.Set(context.Background(), storage.KeyToken, "tok-123"))

	var gotAuth, gotRequestID string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotRequestID = r.Header.Get("X-Request-ID")
		writeJSON(w, http.StatusOK, []domain.Cliente{{ID: 1, Nome: "Maria"}})
	}, store)

	clientes, err := c.Clientes.List(context.Background(), "")
	require.NoError(t, err)
	assert.Len(t, clientes, 1)
	assert.Equal(t, "Bearer tok-123", gotAuth)
	assert.NotEmpty(t, gotRequestID)
}

func TestClient_NoTokenSendsUnauthenticated(t *testing.T) {
	var hadHeader bool
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, hadHeader = r.Header["Authorization"]
		writeJSON(w, http.StatusUnauthorized, domain.ErrorResponse{Detail: "Not authenticated"})
	}, storage.NewMemoryStorage())

	_, err := c.Auth.Me(context.Background())
	require.Error(t, err)
	assert.False(t, hadHeader)

	var apiErr *apperror.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusUnauthorized, apiErr.Status)
	assert.Equal(t, "Not authenticated", apiErr.Detail)
}

func TestClient_LoginIsFormEncoded(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/token", r.URL.Path)
		assert.Equal(t, "application/x-www-form-urlencoded", r.Header.Get("Content-Type"))
		assert.NoError(t, r.ParseForm())
		assert.Equal(t, "ana@loja.com", r.PostForm.Get("username"))
		assert.Equal(t, "segredo", r.PostForm.Get("password"))
		writeJSON(w, http.StatusOK, domain.TokenResponse{
			AccessToken: "tok", TokenType: "bearer",
			User: domain.User{ID: 1, Nome: "Ana", Email: "ana@loja.com", Perfil: domain.PerfilAdmin},
		})
	}, storage.NewMemoryStorage())

	resp, err := c.Auth.Login(context.Background(), "ana@loja.com", "segredo")
	require.NoError(t, err)
	assert.Equal(t, "tok", resp.AccessToken)
	assert.Equal(t, domain.PerfilAdmin, resp.User.Perfil)
}

func TestClient_ValidationDetailList(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusUnprocessableEntity, map[string]interface{}{
			"detail": []map[string]string{{"msg": "field required"}},
		})
	}, storage.NewMemoryStorage())

	_, err := c.Clientes.Create(context.Background(), domain.ClienteInput{})
	var apiErr *apperror.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "field required", apiErr.Detail)
}

func TestClient_CarneFiltersInQuery(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		assert.Equal(t, "7", q.Get("cliente_id"))
		assert.Equal(t, "Ativo", q.Get("status_carne"))
		assert.Equal(t, "2024-01-01", q.Get("data_vencimento_inicio"))
		assert.Empty(t, q.Get("data_vencimento_fim"))
		assert.False(t, q.Has("search_query"))
		writeJSON(w, http.StatusOK, []domain.Carne{})
	}, storage.NewMemoryStorage())

	_, err := c.Carnes.List(context.Background(), domain.CarneFilter{ClienteID: 7, Status: "Ativo", DataVencimentoI: "2024-01-01"})
	require.NoError(t, err)
}

func TestClient_DeleteWithEmptyBody(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/clients/9", r.URL.Path)
		w.WriteHeader(http.StatusNoContent)
	}, storage.NewMemoryStorage())

	assert.NoError(t, c.Clientes.Delete(context.Background(), 9))
}

func TestClient_TransportError(t *testing.T) {
	c := client.New(client.Options{BaseURL: "http://127.0.0.1:1", Timeout: time.Second}, storage.NewMemoryStorage())

	_, err := c.Reports.DashboardSummary(context.Background())
	var transport *apperror.TransportError
	assert.ErrorAs(t, err, &transport)
}

func TestClient_NoRetryOnServerError(t *testing.T) {
	var calls int32
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		writeJSON(w, http.StatusInternalServerError, domain.ErrorResponse{Detail: "boom"})
	}, storage.NewMemoryStorage())

	_, err := c.Produtos.List(context.Background(), "")
	require.Error(t, err)
	assert.EqualValues(t, 1, atomic.LoadInt32(&calls))
}

func TestClient_BreakerOpensAfterConsecutiveFailures(t *testing.T) {
	var calls int32
	cb := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:    "teste",
		Timeout: time.Minute,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 2
		},
	})
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		writeJSON(w, http.StatusBadGateway, domain.ErrorResponse{Detail: "upstream"})
	}, storage.NewMemoryStorage(), func(o *client.Options) { o.Breaker = cb })

	for i := 0; i < 2; i++ {
		_, err := c.Reports.DashboardSummary(context.Background())
		var apiErr *apperror.APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, http.StatusBadGateway, apiErr.Status)
	}

	_, err := c.Reports.DashboardSummary(context.Background())
	var apiErr *apperror.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusServiceUnavailable, apiErr.Status)
	assert.EqualValues(t, 2, atomic.LoadInt32(&calls))
}

func TestClient_BreakerIgnoresClientErrors(t *testing.T) {
	cb := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name: "teste",
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 1
		},
	})
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusNotFound, domain.ErrorResponse{Detail: "Cliente não encontrado"})
	}, storage.NewMemoryStorage(), func(o *client.Options) { o.Breaker = cb })

	for i := 0; i < 3; i++ {
		_, err := c.Clientes.Get(context.Background(), 1)
		var apiErr *apperror.APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, http.StatusNotFound, apiErr.Status)
	}
	assert.Equal(t, gobreaker.StateClosed, cb.State())
}

func TestClient_RecordsMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	metrics := client.NewMetrics(reg)

	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, domain.DashboardSummary{TotalClientes: 3})
	}, storage.NewMemoryStorage(), func(o *client.Options) { o.Metrics = metrics })

	summary, err := c.Reports.DashboardSummary(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, summary.TotalClientes)

	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.Requests().WithLabelValues("reports", http.MethodGet, "200")))
}
