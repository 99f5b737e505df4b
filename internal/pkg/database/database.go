package database

import (
	"database/sql"
	"fmt"
	"net/url"
	"strings"
	"time"

	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"
)

// Driver identifica o driver database/sql usado pelo armazenamento da sessão.
type Driver string

const (
	DriverSQLite   Driver = "sqlite"
	DriverPostgres Driver = "postgres"
)

// GooseDialect devolve o nome do dialeto esperado pelo goose.
func (d Driver) GooseDialect() string {
	if d == DriverPostgres {
		return "postgres"
	}
	return "sqlite3"
}

// ParseDSN interpreta a URL do banco e devolve o driver e o DSN para database/sql.
// Aceita sqlite://caminho.db, sqlite:///caminho/absoluto.db e postgres(ql)://...
// Qualquer outra coisa é tratada como caminho de arquivo SQLite.
func ParseDSN(databaseURL string) (Driver, string) {
	if strings.HasPrefix(databaseURL, "postgres://") || strings.HasPrefix(databaseURL, "postgresql://") {
		return DriverPostgres, databaseURL
	}

	path := databaseURL
	if u, err := url.Parse(databaseURL); err == nil && u.Scheme == "sqlite" {
		path = strings.TrimPrefix(databaseURL, "sqlite://")
	}
	return DriverSQLite, fmt.Sprintf("file:%s?mode=rwc&_pragma=busy_timeout(5000)", path)
}

// Open abre e testa o pool de conexões para a URL informada.
func Open(databaseURL string) (*sql.DB, Driver, error) {
	driver, dsn := ParseDSN(databaseURL)

	db, err := sql.Open(string(driver), dsn)
	if err != nil {
		return nil, driver, fmt.Errorf("falha ao abrir a conexão com o DB: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, driver, fmt.Errorf("falha ao realizar o ping inicial no DB: %w", err)
	}

	// Um cliente usa poucas conexões; SQLite serializa escritas de qualquer forma.
	if driver == DriverSQLite {
		db.SetMaxOpenConns(1)
	} else {
		db.SetMaxOpenConns(5)
		db.SetMaxIdleConns(2)
	}
	db.SetConnMaxLifetime(5 * time.Minute)
	db.SetConnMaxIdleTime(2 * time.Minute)

	return db, driver, nil
}
