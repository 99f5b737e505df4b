package guard

import (
	"sync"

	"gocarne/internal/domain"
)

const (
	// LoginRoute recebe quem não está autenticado.
	LoginRoute = "/"
	// FallbackRoute recebe quem está autenticado mas não tem permissão.
	FallbackRoute = "/clients"

	AdminDeniedMessage = "Acesso negado. Você não tem permissão de administrador para acessar esta página."
)

// Outcome é o resultado de uma avaliação de guarda.
type Outcome int

const (
	// Placeholder: sessão ainda carregando; nada de redirecionar.
	Placeholder Outcome = iota
	Render
	Redirect
)

func (o Outcome) String() string {
	switch o {
	case Placeholder:
		return "placeholder"
	case Render:
		return "render"
	case Redirect:
		return "redirect"
	default:
		return "desconhecido"
	}
}

// Result diz o que fazer com a navegação. RedirectTo só é preenchido em Redirect.
type Result struct {
	Outcome    Outcome
	RedirectTo string
}

// SessionView é a parte da sessão que as guardas consultam.
type SessionView interface {
	State() domain.SessionState
}

// Notifier é a parte do canal de notificações que as guardas usam.
type Notifier interface {
	Set(message string, typ domain.NotificationType)
}

// Guard decide se uma rota montada pode ser exibida.
type Guard interface {
	Evaluate() Result
}

// Public não restringe nada.
type Public struct{}

func (Public) Evaluate() Result { return Result{Outcome: Render} }

// AuthGuard exige usuário autenticado.
type AuthGuard struct {
	session SessionView
}

func NewAuthGuard(session SessionView) *AuthGuard {
	return &AuthGuard{session: session}
}

func (g *AuthGuard) Evaluate() Result {
	st := g.session.State()
	switch {
	case st.Loading:
		return Result{Outcome: Placeholder}
	case st.User != nil:
		return Result{Outcome: Render}
	default:
		return Result{Outcome: Redirect, RedirectTo: LoginRoute}
	}
}

// AdminGuard exige usuário autenticado com perfil admin.
//
// Cada instância corresponde a uma montagem da rota. A notificação de acesso
// negado é disparada na transição para "negado", então avaliações repetidas da
// mesma montagem não repetem a notificação.
type AdminGuard struct {
	auth     *AuthGuard
	notifier Notifier

	mu     sync.Mutex
	denied bool
}

func NewAdminGuard(session SessionView, notifier Notifier) *AdminGuard {
	return &AdminGuard{auth: NewAuthGuard(session), notifier: notifier}
}

func (g *AdminGuard) Evaluate() Result {
	res := g.auth.Evaluate()
	if res.Outcome != Render {
		return res
	}

	if g.auth.session.State().User.IsAdmin() {
		g.mu.Lock()
		g.denied = false
		g.mu.Unlock()
		return res
	}

	g.mu.Lock()
	fire := !g.denied
	g.denied = true
	g.mu.Unlock()

	if fire {
		g.notifier.Set(AdminDeniedMessage, domain.NotificationError)
	}
	return Result{Outcome: Redirect, RedirectTo: FallbackRoute}
}
