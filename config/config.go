package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config armazena todas as configurações do cliente GoCarnê e do backend de desenvolvimento.
type Config struct {
	// Geral
	Environment string
	LogLevel    string

	// API remota
	APIBaseURL  string
	HTTPTimeout time.Duration

	// Notificações
	NotificationTTL time.Duration

	// Armazenamento durável da sessão (token + snapshot do usuário)
	SessionStore       string // "sql", "redis" ou "memory"
	SessionDatabaseURL string
	SessionNamespace   string
	RedisAddr          string
	DBTimeout          time.Duration

	// Circuit breaker em volta das chamadas HTTP
	BreakerEnabled  bool
	BreakerFailures int
	BreakerTimeout  time.Duration

	// Backend fake (cmd/fakeapi)
	FakeAPIPort       string
	JWTSecretKey      string
	TokenExpiry       time.Duration
	FakeAdminEmail    string
	FakeAdminPassword string
	FakeLoginLimit    int
	FakeLimitRedis    bool // contador de tentativas de login no Redis (REDIS_ADDR)
}

// LoadConfig carrega as configurações a partir das variáveis de ambiente.
func LoadConfig() *Config {
	cfg := &Config{
		Environment: getEnv("ENV", "development"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),

		APIBaseURL:  strings.TrimRight(getEnv("API_BASE_URL", "http://localhost:8000"), "/"),
		HTTPTimeout: getDurationEnv("HTTP_TIMEOUT_SEC", 15) * time.Second,

		NotificationTTL: getDurationEnv("NOTIFICATION_TTL_SEC", 5) * time.Second,

		SessionStore:       getEnv("SESSION_STORE", "sql"),
		SessionDatabaseURL: getEnv("SESSION_DATABASE_URL", "sqlite://.gocarne-session.db"),
		SessionNamespace:   getEnv("SESSION_NAMESPACE", "default"),
		RedisAddr:          getEnv("REDIS_ADDR", "localhost:6379"),
		DBTimeout:          getDurationEnv("DB_TIMEOUT_SEC", 5) * time.Second,

		BreakerEnabled:  getBoolEnv("BREAKER_ENABLED", false),
		BreakerFailures: getIntEnv("BREAKER_FAILURES", 3),
		BreakerTimeout:  getDurationEnv("BREAKER_TIMEOUT_SEC", 30) * time.Second,

		FakeAPIPort:       getEnv("FAKEAPI_PORT", "8000"),
		JWTSecretKey:      getEnv("JWT_SECRET_KEY", "dev-secret"),
		TokenExpiry:       getDurationEnv("JWT_EXPIRY_MIN", 60) * time.Minute,
		FakeAdminEmail:    getEnv("FAKEAPI_ADMIN_EMAIL", "admin@gocarne.local"),
		FakeAdminPassword: getEnv("FAKEAPI_ADMIN_PASSWORD", "admin123"),
		FakeLoginLimit:    getIntEnv("FAKEAPI_LOGIN_LIMIT", 20),
		FakeLimitRedis:    getBoolEnv("FAKEAPI_LIMIT_REDIS", false),
	}

	if cfg.SessionStore == "sql" && cfg.SessionDatabaseURL == "" {
		log.Fatalf("❌ Erro de Configuração: SESSION_DATABASE_URL deve ser definida quando SESSION_STORE=sql.")
	}

	return cfg
}

// Funções Helpers (Auxiliares)

// getEnv lê a variável de ambiente ou retorna um valor padrão.
func getEnv(key string, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getDurationEnv lê uma variável de ambiente numérica e retorna-a como time.Duration.
func getDurationEnv(key string, defaultValue int) time.Duration {
	return time.Duration(getIntEnv(key, defaultValue))
}

// getIntEnv lê uma variável de ambiente numérica e retorna-a como int.
func getIntEnv(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("⚠️ Aviso: Valor de %s ('%s') não é um número inteiro válido. Usando padrão (%d).", key, valueStr, defaultValue)
		return defaultValue
	}
	return value
}

// getBoolEnv aceita "true/false", "1/0" e afins (strconv.ParseBool).
func getBoolEnv(key string, defaultValue bool) bool {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		log.Printf("⚠️ Aviso: Valor de %s ('%s') não é um booleano válido. Usando padrão (%t).", key, valueStr, defaultValue)
		return defaultValue
	}
	return value
}
