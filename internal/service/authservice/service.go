package authservice

import (
	"context"
	"strings"

	"gocarne/internal/domain"
	"gocarne/internal/guard"
	"gocarne/internal/pkg/logger"
	"gocarne/internal/service"
)

const (
	LoginSuccessMessage = "Login realizado com sucesso!"
	// AfterLoginRoute é para onde a tela de login navega após autenticar.
	AfterLoginRoute = "/dashboard"
)

// SessionStore é o contrato que este controlador espera da sessão.
type SessionStore interface {
	State() domain.SessionState
	Login(ctx context.Context, email, password string) error
	Logout(ctx context.Context) error
	Register(ctx context.Context, in domain.Registration) (domain.User, error)
	RegisterAdmin(ctx context.Context, in domain.Registration) (domain.User, error)
	RegisterAtendente(ctx context.Context, in domain.Registration) (domain.User, error)
	UpdateUser(ctx context.Context, upd domain.UserUpdate) error
}

// ProfileAPI edita o perfil do usuário logado (PUT /me).
type ProfileAPI interface {
	UpdateMe(ctx context.Context, in domain.ProfileInput) (domain.User, error)
}

// Service controla as telas de login, cadastro e perfil.
type Service struct {
	service.Base
	session SessionStore
	profile ProfileAPI
}

// NewService cria o controlador de autenticação.
func NewService(session SessionStore, profile ProfileAPI, notifier service.Notifier, log logger.Logger) *Service {
	return &Service{
		Base:    service.Base{Notifier: notifier, Logger: log},
		session: session,
		profile: profile,
	}
}

// Login autentica e devolve a rota seguinte.
func (s *Service) Login(ctx context.Context, email, password string) (string, error) {
	if strings.TrimSpace(email) == "" || password == "" {
		return "", s.Invalid("Informe email e senha.")
	}

	if err := s.session.Login(ctx, strings.TrimSpace(email), password); err != nil {
		return "", s.Fail("login", err)
	}

	s.Success(LoginSuccessMessage)
	return AfterLoginRoute, nil
}

// Logout encerra a sessão e devolve a rota de login.
func (s *Service) Logout(ctx context.Context) (string, error) {
	if err := s.session.Logout(ctx); err != nil {
		return "", s.Fail("logout", err)
	}
	s.Notifier.Set("Sessão encerrada.", domain.NotificationInfo)
	return guard.LoginRoute, nil
}

// Register cria uma conta pela tela pública de cadastro.
func (s *Service) Register(ctx context.Context, in domain.Registration) (domain.User, error) {
	if msg := validateRegistration(in); msg != "" {
		return domain.User{}, s.Invalid(msg)
	}

	user, err := s.session.Register(ctx, in)
	if err != nil {
		return domain.User{}, s.Fail("cadastro", err)
	}
	s.Success("Cadastro realizado com sucesso! Faça login para continuar.")
	return user, nil
}

// RegisterAdmin cria uma conta com perfil escolhido. Só admin.
func (s *Service) RegisterAdmin(ctx context.Context, in domain.Registration) (domain.User, error) {
	if err := s.RequireAdmin(s.session, service.AdminOnlyMessage); err != nil {
		return domain.User{}, err
	}
	if msg := validateRegistration(in); msg != "" {
		return domain.User{}, s.Invalid(msg)
	}
	if !in.Perfil.Valid() {
		return domain.User{}, s.Invalid("Selecione um perfil válido (admin ou atendente).")
	}

	user, err := s.session.RegisterAdmin(ctx, in)
	if err != nil {
		return domain.User{}, s.Fail("cadastro de usuário", err)
	}
	s.Success("Usuário " + user.Nome + " cadastrado com sucesso!")
	return user, nil
}

// RegisterAtendente cria uma conta de atendente. Só admin.
func (s *Service) RegisterAtendente(ctx context.Context, in domain.Registration) (domain.User, error) {
	if err := s.RequireAdmin(s.session, service.AdminOnlyMessage); err != nil {
		return domain.User{}, err
	}
	if msg := validateRegistration(in); msg != "" {
		return domain.User{}, s.Invalid(msg)
	}
	in.Perfil = ""

	user, err := s.session.RegisterAtendente(ctx, in)
	if err != nil {
		return domain.User{}, s.Fail("cadastro de atendente", err)
	}
	s.Success("Atendente " + user.Nome + " cadastrado com sucesso!")
	return user, nil
}

// UpdateProfile salva o perfil na API e aplica o merge local na sessão, sem refetch.
func (s *Service) UpdateProfile(ctx context.Context, in domain.ProfileInput) (domain.User, error) {
	if s.session.State().User == nil {
		return domain.User{}, s.Invalid("Faça login para editar o perfil.")
	}
	if in.Nome == "" && in.Email == "" && in.Password == "" {
		return domain.User{}, s.Invalid("Nada para atualizar.")
	}
	if in.Email != "" && !strings.Contains(in.Email, "@") {
		return domain.User{}, s.Invalid("Informe um email válido.")
	}

	user, err := s.profile.UpdateMe(ctx, in)
	if err != nil {
		return domain.User{}, s.Fail("edição de perfil", err)
	}

	if err := s.session.UpdateUser(ctx, domain.UserUpdate{Nome: &user.Nome, Email: &user.Email}); err != nil {
		return domain.User{}, s.Fail("edição de perfil", err)
	}
	s.Success("Perfil atualizado com sucesso!")
	return user, nil
}

func validateRegistration(in domain.Registration) string {
	switch {
	case strings.TrimSpace(in.Nome) == "":
		return "O nome é obrigatório."
	case !strings.Contains(in.Email, "@"):
		return "Informe um email válido."
	case len(in.Password) < 6:
		return "A senha deve ter pelo menos 6 caracteres."
	}
	return ""
}
