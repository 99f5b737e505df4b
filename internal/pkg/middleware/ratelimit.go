package middleware

import (
	"context"
	"net"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"

	apperror "gocarne/internal/errors"
)

// Counter conta eventos por chave dentro de uma janela fixa.
type Counter interface {
	// Incr soma um à chave e devolve o total da janela corrente.
	Incr(ctx context.Context, key string, window time.Duration) (int, error)
}

// RateLimiter limita requisições por IP. Excedido o limite, responde 429 até a janela virar.
func RateLimiter(counter Counter, limit int, window time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ip, _, err := net.SplitHostPort(r.RemoteAddr)
			if err != nil {
				ip = r.RemoteAddr
			}

			count, err := counter.Incr(r.Context(), "rate-limit:"+ip, window)
			if err != nil {
				WriteError(w, apperror.NewInternalError("falha no contador de tentativas", err))
				return
			}
			if count > limit {
				w.Header().Set("Retry-After", strconv.Itoa(int(window.Seconds())))
				WriteError(w, apperror.NewAPIError(http.StatusTooManyRequests, "Muitas tentativas. Aguarde e tente novamente."))
				return
			}

			w.Header().Set("X-RateLimit-Remaining", strconv.Itoa(limit-count))
			next.ServeHTTP(w, r)
		})
	}
}

type windowEntry struct {
	count   int
	resetAt time.Time
}

// MemoryCounter é um Counter em memória com janela fixa por chave.
type MemoryCounter struct {
	mu      sync.Mutex
	now     func() time.Time
	entries map[string]windowEntry
}

// NewMemoryCounter cria um MemoryCounter vazio.
func NewMemoryCounter() *MemoryCounter {
	return &MemoryCounter{now: time.Now, entries: make(map[string]windowEntry)}
}

func (c *MemoryCounter) Incr(_ context.Context, key string, window time.Duration) (int, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	e, ok := c.entries[key]
	if !ok || !now.Before(e.resetAt) {
		e = windowEntry{resetAt: now.Add(window)}
	}
	e.count++
	c.entries[key] = e
	return e.count, nil
}

// redisIncr é o subconjunto do *redis.Client usado pelo RedisCounter.
type redisIncr interface {
	Incr(ctx context.Context, key string) *redis.IntCmd
	Expire(ctx context.Context, key string, expiration time.Duration) *redis.BoolCmd
}

// RedisCounter guarda as janelas no Redis, compartilhadas entre instâncias do backend.
type RedisCounter struct {
	rdb    redisIncr
	prefix string
}

// NewRedisCounter usa um cliente go-redis já conectado.
func NewRedisCounter(rdb redisIncr, namespace string) *RedisCounter {
	return &RedisCounter{rdb: rdb, prefix: "gocarne:" + namespace + ":"}
}

// Incr soma um à chave. A primeira batida da janela define a expiração.
func (c *RedisCounter) Incr(ctx context.Context, key string, window time.Duration) (int, error) {
	key = c.prefix + key
	n, err := c.rdb.Incr(ctx, key).Result()
	if err != nil {
		return 0, err
	}
	if n == 1 {
		if err := c.rdb.Expire(ctx, key, window).Err(); err != nil {
			return 0, err
		}
	}
	return int(n), nil
}
