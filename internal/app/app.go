package app

import (
	"context"
	"fmt"
	"io"

	"github.com/prometheus/client_golang/prometheus"

	"gocarne/config"
	"gocarne/internal/client"
	"gocarne/internal/notification"
	"gocarne/internal/pkg/database"
	"gocarne/internal/pkg/logger"
	"gocarne/internal/pkg/storage"
	"gocarne/internal/router"
	"gocarne/internal/service/authservice"
	"gocarne/internal/service/carneservice"
	"gocarne/internal/service/clienteservice"
	"gocarne/internal/service/parcelaservice"
	"gocarne/internal/service/produtoservice"
	"gocarne/internal/service/reportservice"
	"gocarne/internal/session"
)

// App é a raiz de composição do cliente: um único dono para sessão, notificações e navegação.
type App struct {
	Config        *config.Config
	Logger        logger.Logger
	Storage       storage.Storage
	Registry      *prometheus.Registry
	Metrics       *client.Metrics
	Client        *client.Client
	Notifications *notification.Channel
	Session       *session.Store
	Navigator     *router.Navigator

	Auth     *authservice.Service
	Clientes *clienteservice.Service
	Carnes   *carneservice.Service
	Parcelas *parcelaservice.Service
	Reports  *reportservice.Service
	Produtos *produtoservice.Service

	closers []io.Closer
}

// New abre o armazenamento configurado e monta a aplicação.
func New(cfg *config.Config, log logger.Logger) (*App, error) {
	store, closers, err := OpenStorage(cfg, log)
	if err != nil {
		return nil, err
	}

	a := NewWithStorage(cfg, log, store)
	a.closers = closers
	return a, nil
}

// NewWithStorage monta a aplicação sobre um armazenamento já aberto.
func NewWithStorage(cfg *config.Config, log logger.Logger, store storage.Storage) *App {
	registry := prometheus.NewRegistry()
	metrics := client.NewMetrics(registry)

	api := client.New(client.Options{
		BaseURL: cfg.APIBaseURL,
		Timeout: cfg.HTTPTimeout,
		Breaker: config.NewCircuitBreaker(cfg),
		Metrics: metrics,
		Logger:  log,
	}, store)
	log.Debug("Cliente HTTP inicializado.", map[string]interface{}{"base_url": cfg.APIBaseURL, "breaker": cfg.BreakerEnabled})

	notifications := notification.NewChannel(cfg.NotificationTTL)
	sess := session.NewStore(api.Auth, store, log)
	nav := router.NewNavigator(nil, sess, notifications, log)

	a := &App{
		Config:        cfg,
		Logger:        log,
		Storage:       store,
		Registry:      registry,
		Metrics:       metrics,
		Client:        api,
		Notifications: notifications,
		Session:       sess,
		Navigator:     nav,

		Auth:     authservice.NewService(sess, api.Auth, notifications, log),
		Clientes: clienteservice.NewService(api.Clientes, notifications, log),
		Carnes:   carneservice.NewService(api.Carnes, notifications, log),
		Parcelas: parcelaservice.NewService(api.Parcelas, api.Pagamentos, sess, notifications, log),
		Reports:  reportservice.NewService(api.Reports, notifications, log),
		Produtos: produtoservice.NewService(api.Produtos, notifications, log),
	}
	a.wireAuthFailure()
	return a
}

// wireAuthFailure faz qualquer 401 vindo de uma tela encerrar a sessão.
// Os guards passam a redirecionar para o login na próxima navegação.
func (a *App) wireAuthFailure() {
	expire := func() {
		if !a.Session.State().Authenticated() {
			return
		}
		a.Logger.Info("API recusou o token; sessão encerrada.", nil)
		if err := a.Session.Logout(context.Background()); err != nil {
			a.Logger.Error("Falha ao encerrar sessão recusada.", err)
		}
	}
	a.Auth.OnAuthFailure = expire
	a.Clientes.OnAuthFailure = expire
	a.Carnes.OnAuthFailure = expire
	a.Parcelas.OnAuthFailure = expire
	a.Reports.OnAuthFailure = expire
	a.Produtos.OnAuthFailure = expire
}

// Start restaura a sessão persistida. Falhas de autenticação não são fatais: a sessão fica anônima.
func (a *App) Start(ctx context.Context) {
	if err := a.Session.Rehydrate(ctx); err != nil {
		a.Logger.Info("Sessão anterior descartada.", map[string]interface{}{"error": err.Error()})
	}
}

// Close encerra cargas pendentes e fecha o armazenamento.
func (a *App) Close() error {
	a.Clientes.Shutdown()
	a.Carnes.Shutdown()
	a.Parcelas.Shutdown()
	a.Reports.Shutdown()
	a.Produtos.Shutdown()
	a.Notifications.Clear()

	var firstErr error
	for _, c := range a.closers {
		if err := c.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

// OpenStorage abre o armazenamento durável escolhido em SESSION_STORE.
func OpenStorage(cfg *config.Config, log logger.Logger) (storage.Storage, []io.Closer, error) {
	switch cfg.SessionStore {
	case "memory":
		log.Warn("Sessão em memória: o login não sobrevive ao fim do processo.", nil)
		return storage.NewMemoryStorage(), nil, nil

	case "redis":
		rs, err := storage.NewRedisStorage(cfg.RedisAddr, cfg.SessionNamespace)
		if err != nil {
			return nil, nil, err
		}
		log.Debug("Sessão persistida no Redis.", map[string]interface{}{"addr": cfg.RedisAddr})
		return rs, []io.Closer{rs}, nil

	case "sql":
		db, driver, err := database.Open(cfg.SessionDatabaseURL)
		if err != nil {
			return nil, nil, err
		}
		if err := storage.Migrate(db, driver); err != nil {
			db.Close()
			return nil, nil, err
		}
		log.Debug("Sessão persistida em banco SQL.", map[string]interface{}{"driver": string(driver)})
		return storage.NewSQLStorage(db, cfg.SessionNamespace, cfg.DBTimeout), []io.Closer{db}, nil

	default:
		return nil, nil, fmt.Errorf("SESSION_STORE desconhecido: %q (use sql, redis ou memory)", cfg.SessionStore)
	}
}
