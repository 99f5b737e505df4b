package storage

import (
	"context"
	"errors"
)

// Chaves persistidas pela sessão. São sempre apagadas juntas.
const (
	KeyToken = "token"
	KeyUser  = "user"
)

// ErrNotFound é retornado por Get quando a chave não existe.
var ErrNotFound = errors.New("storage: chave não encontrada")

// Storage é a porta de persistência chave-valor usada pela sessão
// (o equivalente ao localStorage do navegador).
type Storage interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value string) error
	Delete(ctx context.Context, keys ...string) error
}
