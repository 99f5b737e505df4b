package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/go-redis/redis/v8"
)

// redisCmdable é o subconjunto do *redis.Client usado aqui.
type redisCmdable interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
}

// RedisStorage persiste a sessão no Redis, com as chaves prefixadas pelo namespace.
type RedisStorage struct {
	rdb    redisCmdable
	prefix string
}

// NewRedisStorage conecta ao Redis e testa a conexão com PING.
func NewRedisStorage(addr, namespace string) (*RedisStorage, error) {
	rdb := redis.NewClient(&redis.Options{Addr: addr})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		rdb.Close()
		return nil, fmt.Errorf("não foi possível conectar ao Redis em %s: %w", addr, err)
	}

	return NewRedisStorageWithClient(rdb, namespace), nil
}

// NewRedisStorageWithClient usa um cliente já construído.
func NewRedisStorageWithClient(rdb redisCmdable, namespace string) *RedisStorage {
	return &RedisStorage{rdb: rdb, prefix: "gocarne:" + namespace + ":"}
}

func (s *RedisStorage) Get(ctx context.Context, key string) (string, error) {
	val, err := s.rdb.Get(ctx, s.prefix+key).Result()
	if errors.Is(err, redis.Nil) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", err
	}
	return val, nil
}

// Set grava sem expiração; a validade do token é decidida pela API.
func (s *RedisStorage) Set(ctx context.Context, key string, value string) error {
	return s.rdb.Set(ctx, s.prefix+key, value, 0).Err()
}

func (s *RedisStorage) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	prefixed := make([]string, len(keys))
	for i, key := range keys {
		prefixed[i] = s.prefix + key
	}
	return s.rdb.Del(ctx, prefixed...).Err()
}

// Close fecha a conexão quando o cliente foi aberto por NewRedisStorage.
func (s *RedisStorage) Close() error {
	if c, ok := s.rdb.(io.Closer); ok {
		return c.Close()
	}
	return nil
}
