package middleware_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gocarne/internal/domain"
	apperror "gocarne/internal/errors"
	"gocarne/internal/pkg/logger"
	"gocarne/internal/pkg/middleware"
	"gocarne/internal/pkg/token"
)

func okHandler(w http.ResponseWriter, r *http.Request) {
	claims, _ := middleware.GetUserClaimsFromContext(r.Context())
	json.NewEncoder(w).Encode(claims)
}

func TestAuthMiddleware(t *testing.T) {
	svc := token.NewService("segredo", time.Hour)
	tok, err := svc.GenerateToken(7, "ana@loja.com", "admin")
	require.NoError(t, err)

	h := middleware.NewAuthMiddleware(svc)(http.HandlerFunc(okHandler))

	t.Run("sem header", func(t *testing.T) {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/me", nil))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.JSONEq(t, `{"detail":"Não autenticado."}`, rec.Body.String())
	})

	t.Run("token inválido", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		req.Header.Set("Authorization", "Bearer lixo")
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("token válido", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		req.Header.Set("Authorization", "Bearer "+tok)
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		require.Equal(t, http.StatusOK, rec.Code)

		var claims middleware.UserClaims
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&claims))
		assert.Equal(t, middleware.UserClaims{UserID: 7, Email: "ana@loja.com", Perfil: domain.PerfilAdmin}, claims)
	})
}

func TestPermissionMiddleware(t *testing.T) {
	svc := token.NewService("segredo", time.Hour)
	h := middleware.NewAuthMiddleware(svc)(middleware.PermissionMiddleware(domain.PerfilAdmin)(http.HandlerFunc(okHandler)))

	tok, err := svc.GenerateToken(2, "bia@loja.com", "atendente")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/register-admin", nil)
	req.Header.Set("Authorization", "Bearer "+tok)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestWriteError(t *testing.T) {
	rec := httptest.NewRecorder()
	middleware.WriteError(rec, apperror.NewConflictError("Email já cadastrado."))
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.JSONEq(t, `{"detail":"Email já cadastrado."}`, rec.Body.String())

	rec = httptest.NewRecorder()
	middleware.WriteError(rec, apperror.NewInternalError("falha no banco", nil))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"detail":"`+apperror.GenericMessage+`"}`, rec.Body.String())
}

func TestHTTPMetrics_UsesRouteTemplate(t *testing.T) {
	reg := prometheus.NewRegistry()
	metrics := middleware.NewHTTPMetrics(reg)

	r := mux.NewRouter()
	r.Use(metrics.Middleware(logger.NewNopLogger()))
	r.HandleFunc("/clients/{id}", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	for _, path := range []string{"/clients/1", "/clients/2"} {
		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodDelete, path, nil))
	}

	assert.Equal(t, 2.0, testutil.ToFloat64(metrics.Requests().WithLabelValues("/clients/{id}", http.MethodDelete, "204")))
}

func TestRateLimiter(t *testing.T) {
	h := middleware.RateLimiter(middleware.NewMemoryCounter(), 2, time.Minute)(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodPost, "/token", nil)
		req.RemoteAddr = "10.0.0.1:5000"
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		codes = append(codes, rec.Code)
	}
	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)

	req := httptest.NewRequest(http.MethodPost, "/token", nil)
	req.RemoteAddr = "10.0.0.2:5000"
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}

// fakeRedisCounter implementa Incr/Expire em memória com os tipos de comando do go-redis.
type fakeRedisCounter struct {
	mu      sync.Mutex
	counts  map[string]int64
	ttls    map[string]time.Duration
	failing bool
}

func newFakeRedisCounter() *fakeRedisCounter {
	return &fakeRedisCounter{counts: make(map[string]int64), ttls: make(map[string]time.Duration)}
}

func (f *fakeRedisCounter) Incr(_ context.Context, key string) *redis.IntCmd {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failing {
		return redis.NewIntResult(0, assert.AnError)
	}
	f.counts[key]++
	return redis.NewIntResult(f.counts[key], nil)
}

func (f *fakeRedisCounter) Expire(_ context.Context, key string, expiration time.Duration) *redis.BoolCmd {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.ttls[key] = expiration
	return redis.NewBoolResult(true, nil)
}

func TestRedisCounter_SetsWindowOnFirstHit(t *testing.T) {
	rdb := newFakeRedisCounter()
	counter := middleware.NewRedisCounter(rdb, "fakeapi")
	ctx := context.Background()

	for want := 1; want <= 3; want++ {
		n, err := counter.Incr(ctx, "rate-limit:10.0.0.1", time.Minute)
		require.NoError(t, err)
		assert.Equal(t, want, n)
	}
	assert.Equal(t, map[string]time.Duration{"gocarne:fakeapi:rate-limit:10.0.0.1": time.Minute}, rdb.ttls)
}

func TestRateLimiter_RedisCounter(t *testing.T) {
	rdb := newFakeRedisCounter()
	h := middleware.RateLimiter(middleware.NewRedisCounter(rdb, "fakeapi"), 1, time.Minute)(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	send := func() int {
		req := httptest.NewRequest(http.MethodPost, "/token", nil)
		req.RemoteAddr = "10.0.0.9:5000"
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		return rec.Code
	}

	assert.Equal(t, http.StatusOK, send())
	assert.Equal(t, http.StatusTooManyRequests, send())

	rdb.failing = true
	assert.Equal(t, http.StatusInternalServerError, send())
}
