// Package service reúne o que os controladores de tela têm em comum:
// validar localmente, chamar a API e traduzir o resultado em notificação.
package service

import (
	"gocarne/internal/domain"
	apperror "gocarne/internal/errors"
	"gocarne/internal/loader"
	"gocarne/internal/pkg/logger"
)

// Notifier é a parte do canal de notificações usada pelos controladores.
type Notifier interface {
	Set(message string, typ domain.NotificationType)
	Notify(n domain.Notification)
}

// Session é a parte da sessão consultada pelos controladores.
type Session interface {
	State() domain.SessionState
}

// Base agrupa as dependências comuns dos controladores.
type Base struct {
	Notifier Notifier
	Logger   logger.Logger
	// OnAuthFailure encerra a sessão quando a API recusa o token. Opcional.
	OnAuthFailure func()
}

// Invalid avisa o usuário e devolve um ValidationError sem tocar na rede.
func (b Base) Invalid(msg string) error {
	err := apperror.NewValidationError(msg)
	b.Notifier.Notify(apperror.NotificationFor(err))
	return err
}

// Fail notifica o erro ao usuário e o devolve. Cargas descartadas passam em silêncio.
func (b Base) Fail(op string, err error) error {
	if loader.Stale(err) {
		return err
	}

	status, category, _ := apperror.Describe(err)
	if status >= 500 || status == 0 {
		b.Logger.Error("Falha em "+op+".", err)
	} else {
		b.Logger.Debug("Operação recusada pela API.", map[string]interface{}{"op": op, "status": status, "category": category})
	}
	b.Notifier.Notify(apperror.NotificationFor(err))
	if apperror.IsAuthFailure(err) && b.OnAuthFailure != nil {
		b.OnAuthFailure()
	}
	return err
}

// Success publica uma notificação de sucesso.
func (b Base) Success(msg string) {
	b.Notifier.Set(msg, domain.NotificationSuccess)
}

// RequireAdmin devolve ForbiddenError (já notificado) quando o usuário não é admin.
func (b Base) RequireAdmin(s Session, msg string) error {
	st := s.State()
	if st.User.IsAdmin() {
		return nil
	}
	err := apperror.NewForbiddenError(msg)
	b.Notifier.Notify(apperror.NotificationFor(err))
	return err
}

// AdminOnlyMessage é a recusa padrão para operações exclusivas de admin.
const AdminOnlyMessage = "Apenas administradores podem realizar esta operação."
