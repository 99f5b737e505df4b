package fakeapi

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	"gocarne/internal/domain"
	_ "gocarne/internal/fakeapi/docs"
	"gocarne/internal/pkg/logger"
	"gocarne/internal/pkg/middleware"
	"gocarne/internal/pkg/token"
)

// Options configura o servidor de desenvolvimento.
type Options struct {
	Tokens        *token.Service
	AdminEmail    string
	AdminPassword string
	Registry      *prometheus.Registry // opcional; nil cria um registro próprio
	LoginLimit    int                  // tentativas de login por IP por minuto; 0 desliga
	LoginCounter  middleware.Counter   // opcional; nil usa um contador em memória
}

// NewServer monta o Store, semeia o administrador e devolve o roteador completo.
func NewServer(opts Options, log logger.Logger) (http.Handler, *Store) {
	store := NewStore()
	seedAdmin(store, opts.AdminEmail, opts.AdminPassword, log)

	reg := opts.Registry
	if reg == nil {
		reg = prometheus.NewRegistry()
	}
	h := NewHandler(store, opts.Tokens, log)
	var limiter func(http.Handler) http.Handler
	if opts.LoginLimit > 0 {
		counter := opts.LoginCounter
		if counter == nil {
			counter = middleware.NewMemoryCounter()
		}
		limiter = middleware.RateLimiter(counter, opts.LoginLimit, time.Minute)
	}
	return NewRouter(h, opts.Tokens, reg, limiter, log), store
}

// NewRouter configura as rotas. Rotas de coleção aceitam a barra final e a forma sem barra.
// loginLimiter protege POST /token; nil deixa a rota sem limite.
func NewRouter(h *Handler, tokens middleware.TokenService, reg *prometheus.Registry, loginLimiter func(http.Handler) http.Handler, log logger.Logger) http.Handler {
	r := mux.NewRouter()
	r.Use(middleware.NewHTTPMetrics(reg).Middleware(log))

	// --- 1. Rotas públicas ---
	r.HandleFunc("/ping", Ping).Methods(http.MethodGet)
	r.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{})).Methods(http.MethodGet)
	r.PathPrefix("/swagger/").Handler(httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))
	var login http.Handler = http.HandlerFunc(h.Login)
	if loginLimiter != nil {
		login = loginLimiter(login)
	}
	r.Handle("/token", login).Methods(http.MethodPost)
	r.HandleFunc("/register", h.Register).Methods(http.MethodPost)

	// --- 2. Rotas autenticadas ---
	api := r.NewRoute().Subrouter()
	api.Use(middleware.NewAuthMiddleware(tokens))

	adminOnly := middleware.PermissionMiddleware(domain.PerfilAdmin)

	api.HandleFunc("/me", h.Me).Methods(http.MethodGet)
	api.HandleFunc("/me", h.UpdateMe).Methods(http.MethodPut)
	api.Handle("/register-admin", adminOnly(http.HandlerFunc(h.RegisterAdmin))).Methods(http.MethodPost)
	api.Handle("/register-atendente", adminOnly(http.HandlerFunc(h.RegisterAtendente))).Methods(http.MethodPost)

	collection(api, "/clients", h.ListClientes, h.CreateCliente)
	api.HandleFunc("/clients/{id:[0-9]+}", h.GetCliente).Methods(http.MethodGet)
	api.HandleFunc("/clients/{id:[0-9]+}", h.UpdateCliente).Methods(http.MethodPut)
	api.HandleFunc("/clients/{id:[0-9]+}", h.DeleteCliente).Methods(http.MethodDelete)
	api.HandleFunc("/clients/{id:[0-9]+}/summary", h.ClienteSummary).Methods(http.MethodGet)

	// Rotas de parcelas e pagamentos antes de /carnes/{id} para não colidirem.
	collection(api, "/carnes/pagamentos", nil, h.RegisterPagamento)
	api.Handle("/carnes/pagamentos/{id:[0-9]+}", adminOnly(http.HandlerFunc(h.ReversePagamento))).Methods(http.MethodDelete)
	api.HandleFunc("/carnes/parcelas/{id:[0-9]+}", h.GetParcela).Methods(http.MethodGet)
	api.HandleFunc("/carnes/parcelas/{id:[0-9]+}", h.UpdateParcela).Methods(http.MethodPut)
	api.HandleFunc("/carnes/parcelas/{id:[0-9]+}", h.DeleteParcela).Methods(http.MethodDelete)
	api.HandleFunc("/carnes/parcelas/{id:[0-9]+}/renegotiate", h.RenegotiateParcela).Methods(http.MethodPost)
	api.HandleFunc("/carnes/parcelas/{id:[0-9]+}/pagamentos", h.ListPagamentos).Methods(http.MethodGet)

	collection(api, "/carnes", h.ListCarnes, h.CreateCarne)
	api.HandleFunc("/carnes/{id:[0-9]+}", h.GetCarne).Methods(http.MethodGet)
	api.HandleFunc("/carnes/{id:[0-9]+}", h.UpdateCarne).Methods(http.MethodPut)
	api.HandleFunc("/carnes/{id:[0-9]+}", h.DeleteCarne).Methods(http.MethodDelete)
	api.HandleFunc("/carnes/{id:[0-9]+}/parcelas", h.ListParcelas).Methods(http.MethodGet)

	api.HandleFunc("/reports/dashboard/summary", h.Dashboard).Methods(http.MethodGet)
	api.HandleFunc("/reports/receipts", h.Receipts).Methods(http.MethodGet)
	api.HandleFunc("/reports/pending-debts-by-client/{id:[0-9]+}", h.PendingDebts).Methods(http.MethodGet)

	collection(api, "/api/produtos", h.ListProdutos, h.CreateProduto)
	api.HandleFunc("/api/produtos/{id:[0-9]+}", h.GetProduto).Methods(http.MethodGet)
	api.HandleFunc("/api/produtos/{id:[0-9]+}", h.UpdateProduto).Methods(http.MethodPut)
	api.HandleFunc("/api/produtos/{id:[0-9]+}", h.DeleteProduto).Methods(http.MethodDelete)

	r.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		middleware.WriteError(w, notFound)
	})
	return r
}

// collection registra GET e POST com e sem a barra final, sem redirecionar.
func collection(r *mux.Router, base string, list, create http.HandlerFunc) {
	for _, path := range []string{base, base + "/"} {
		if list != nil {
			r.HandleFunc(path, list).Methods(http.MethodGet)
		}
		if create != nil {
			r.HandleFunc(path, create).Methods(http.MethodPost)
		}
	}
}
