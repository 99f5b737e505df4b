package storage

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"time"

	"github.com/pressly/goose/v3"

	"gocarne/internal/pkg/database"
)

//go:embed migrations/*.sql
var migrations embed.FS

// Migrate aplica as migrações embutidas da tabela session_kv.
func Migrate(db *sql.DB, driver database.Driver) error {
	goose.SetBaseFS(migrations)
	goose.SetLogger(goose.NopLogger())

	if err := goose.SetDialect(driver.GooseDialect()); err != nil {
		return fmt.Errorf("goose: dialeto inválido: %w", err)
	}
	if err := goose.Up(db, "migrations"); err != nil {
		return fmt.Errorf("goose up: %w", err)
	}
	return nil
}

// MigrationsFS expõe as migrações para o cmd/migrate.
func MigrationsFS() embed.FS {
	return migrations
}

const (
	selectSQL = `SELECT value FROM session_kv WHERE namespace = $1 AND name = $2`
	upsertSQL = `INSERT INTO session_kv (namespace, name, value, updated_at)
                 VALUES ($1, $2, $3, CURRENT_TIMESTAMP)
                 ON CONFLICT (namespace, name) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP`
	deleteSQL = `DELETE FROM session_kv WHERE namespace = $1 AND name = $2`
)

// SQLStorage persiste a sessão numa tabela chave-valor (SQLite ou PostgreSQL).
type SQLStorage struct {
	DB        *sql.DB
	Namespace string
	DBTimeout time.Duration
}

// NewSQLStorage cria o armazenamento sobre um pool já migrado.
func NewSQLStorage(db *sql.DB, namespace string, dbTimeout time.Duration) *SQLStorage {
	return &SQLStorage{DB: db, Namespace: namespace, DBTimeout: dbTimeout}
}

func (s *SQLStorage) Get(ctx context.Context, key string) (string, error) {
	ctxTimeout, cancel := context.WithTimeout(ctx, s.DBTimeout)
	defer cancel()

	var value string
	err := s.DB.QueryRowContext(ctxTimeout, selectSQL, s.Namespace, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("falha ao ler chave %q: %w", key, err)
	}
	return value, nil
}

func (s *SQLStorage) Set(ctx context.Context, key string, value string) error {
	ctxTimeout, cancel := context.WithTimeout(ctx, s.DBTimeout)
	defer cancel()

	if _, err := s.DB.ExecContext(ctxTimeout, upsertSQL, s.Namespace, key, value); err != nil {
		return fmt.Errorf("falha ao gravar chave %q: %w", key, err)
	}
	return nil
}

// Delete apaga todas as chaves numa única transação.
func (s *SQLStorage) Delete(ctx context.Context, keys ...string) (err error) {
	ctxTimeout, cancel := context.WithTimeout(ctx, s.DBTimeout)
	defer cancel()

	tx, err := s.DB.BeginTx(ctxTimeout, nil)
	if err != nil {
		return fmt.Errorf("falha ao iniciar transação: %w", err)
	}
	defer func() {
		if err != nil {
			tx.Rollback()
		}
	}()

	for _, key := range keys {
		if _, err = tx.ExecContext(ctxTimeout, deleteSQL, s.Namespace, key); err != nil {
			return fmt.Errorf("falha ao apagar chave %q: %w", key, err)
		}
	}
	return tx.Commit()
}
