package router

import (
	"fmt"
	"strings"
	"sync"

	apperror "gocarne/internal/errors"
	"gocarne/internal/guard"
	"gocarne/internal/pkg/logger"
)

// Access é o nível de proteção de uma rota.
type Access int

const (
	AccessPublic Access = iota
	AccessAuth
	AccessAdmin
)

// Route associa um padrão de caminho a um nome de tela e ao nível de proteção.
// Segmentos no formato {nome} casam com qualquer valor não vazio.
type Route struct {
	Pattern string
	Name    string
	Access  Access
}

// Routes é a tabela de telas do cliente.
var Routes = []Route{
	{Pattern: "/", Name: "login", Access: AccessPublic},
	{Pattern: "/register", Name: "register", Access: AccessPublic},
	{Pattern: "/dashboard", Name: "dashboard", Access: AccessAuth},
	{Pattern: "/profile", Name: "profile", Access: AccessAuth},
	{Pattern: "/clients", Name: "clients", Access: AccessAuth},
	{Pattern: "/clients/new", Name: "client-new", Access: AccessAuth},
	{Pattern: "/clients/{id}", Name: "client-details", Access: AccessAuth},
	{Pattern: "/clients/{id}/edit", Name: "client-edit", Access: AccessAuth},
	{Pattern: "/carnes", Name: "carnes", Access: AccessAuth},
	{Pattern: "/carnes/new", Name: "carne-new", Access: AccessAuth},
	{Pattern: "/carnes/{id}", Name: "carne-details", Access: AccessAuth},
	{Pattern: "/carnes/{id}/edit", Name: "carne-edit", Access: AccessAuth},
	{Pattern: "/produtos", Name: "produtos", Access: AccessAuth},
	{Pattern: "/produtos/new", Name: "produto-new", Access: AccessAuth},
	{Pattern: "/produtos/{id}/edit", Name: "produto-edit", Access: AccessAuth},
	{Pattern: "/reports/receipts", Name: "reports-receipts", Access: AccessAuth},
	{Pattern: "/reports/pending-debts/{id}", Name: "reports-pending-debts", Access: AccessAuth},
	{Pattern: "/register-admin", Name: "register-admin", Access: AccessAdmin},
	{Pattern: "/register-atendente", Name: "register-atendente", Access: AccessAdmin},
}

// maxRedirects limita cadeias de redirecionamento entre guardas.
const maxRedirects = 5

// View é a tela atualmente montada.
type View struct {
	Path    string
	Route   Route
	Params  map[string]string
	Outcome guard.Outcome
}

// Navigator monta uma guarda nova a cada navegação e segue os redirecionamentos.
type Navigator struct {
	routes   []Route
	session  guard.SessionView
	notifier guard.Notifier
	logger   logger.Logger

	mu      sync.Mutex
	current View
	mount   guard.Guard
}

// NewNavigator cria o navegador sobre a tabela informada (nil usa Routes).
func NewNavigator(routes []Route, session guard.SessionView, notifier guard.Notifier, log logger.Logger) *Navigator {
	if routes == nil {
		routes = Routes
	}
	return &Navigator{routes: routes, session: session, notifier: notifier, logger: log}
}

// Navigate monta a rota de path, avalia sua guarda e segue redirecionamentos.
func (n *Navigator) Navigate(path string) (View, error) {
	n.mu.Lock()
	defer n.mu.Unlock()

	return n.navigateLocked(path, 0)
}

// Render reavalia a guarda da montagem atual (por exemplo, quando a sessão termina de carregar).
// Não cria uma montagem nova: a notificação de acesso negado não se repete.
func (n *Navigator) Render() (View, error) {
	n.mu.Lock()
	defer n.mu.Unlock()

	if n.mount == nil {
		return View{}, apperror.NewValidationError("nenhuma rota montada")
	}
	return n.evaluateLocked(n.mount, n.current, 0)
}

// Current devolve a tela montada.
func (n *Navigator) Current() View {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.current
}

func (n *Navigator) navigateLocked(path string, hops int) (View, error) {
	if hops > maxRedirects {
		return View{}, apperror.NewInternalError(fmt.Sprintf("redirecionamentos demais a partir de %s", path), nil)
	}

	route, params, ok := Match(n.routes, path)
	if !ok {
		return View{}, apperror.NewNotFoundError(fmt.Sprintf("rota %s", path))
	}

	mount := n.newGuard(route.Access)
	view := View{Path: path, Route: route, Params: params}
	return n.evaluateLocked(mount, view, hops)
}

func (n *Navigator) evaluateLocked(mount guard.Guard, view View, hops int) (View, error) {
	res := mount.Evaluate()
	if res.Outcome == guard.Redirect {
		n.logger.Debug("Navegação redirecionada.", map[string]interface{}{"from": view.Path, "to": res.RedirectTo})
		return n.navigateLocked(res.RedirectTo, hops+1)
	}

	view.Outcome = res.Outcome
	n.current = view
	n.mount = mount
	return view, nil
}

func (n *Navigator) newGuard(access Access) guard.Guard {
	switch access {
	case AccessAdmin:
		return guard.NewAdminGuard(n.session, n.notifier)
	case AccessAuth:
		return guard.NewAuthGuard(n.session)
	default:
		return guard.Public{}
	}
}

// Match encontra a rota de path. Rotas sem parâmetros têm prioridade.
func Match(routes []Route, path string) (Route, map[string]string, bool) {
	path = normalize(path)
	for _, r := range routes {
		if !strings.Contains(r.Pattern, "{") && r.Pattern == path {
			return r, map[string]string{}, true
		}
	}

	segments := strings.Split(path, "/")
	for _, r := range routes {
		if !strings.Contains(r.Pattern, "{") {
			continue
		}
		if params, ok := matchSegments(strings.Split(r.Pattern, "/"), segments); ok {
			return r, params, true
		}
	}
	return Route{}, nil, false
}

func matchSegments(pattern, segments []string) (map[string]string, bool) {
	if len(pattern) != len(segments) {
		return nil, false
	}
	params := make(map[string]string)
	for i, p := range pattern {
		if strings.HasPrefix(p, "{") && strings.HasSuffix(p, "}") {
			if segments[i] == "" {
				return nil, false
			}
			params[p[1:len(p)-1]] = segments[i]
			continue
		}
		if p != segments[i] {
			return nil, false
		}
	}
	return params, true
}

func normalize(path string) string {
	if i := strings.IndexAny(path, "?#"); i >= 0 {
		path = path[:i]
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	if len(path) > 1 {
		path = strings.TrimRight(path, "/")
	}
	return path
}
