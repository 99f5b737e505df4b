package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gocarne/internal/domain"
	apperror "gocarne/internal/errors"
	"gocarne/internal/loader"
	"gocarne/internal/notification"
	"gocarne/internal/pkg/logger"
	"gocarne/internal/service"
)

type staticSession domain.SessionState

func (s staticSession) State() domain.SessionState { return domain.SessionState(s) }

func newBase() (service.Base, *notification.Channel) {
	ch := notification.NewChannel(time.Minute)
	return service.Base{Notifier: ch, Logger: logger.NewLogger("debug")}, ch
}

func TestBase_InvalidNotifiesWarning(t *testing.T) {
	b, ch := newBase()

	err := b.Invalid("Informe o nome.")
	var validation *apperror.ValidationError
	require.ErrorAs(t, err, &validation)

	n, ok := ch.Current()
	require.True(t, ok)
	assert.Equal(t, domain.Notification{Message: "Informe o nome.", Type: domain.NotificationWarning}, n)
}

func TestBase_FailUsesServerDetail(t *testing.T) {
	b, ch := newBase()

	err := b.Fail("teste", apperror.NewAPIError(409, "CPF/CNPJ já cadastrado."))
	require.Error(t, err)

	n, ok := ch.Current()
	require.True(t, ok)
	assert.Equal(t, domain.Notification{Message: "CPF/CNPJ já cadastrado.", Type: domain.NotificationError}, n)
}

func TestBase_FailIgnoresStaleLoads(t *testing.T) {
	b, ch := newBase()

	l := loader.New[int]()
	l.Close()
	_, err := l.Load(context.Background(), func(context.Context) (int, error) { return 1, nil })
	require.Error(t, err)

	assert.Equal(t, err, b.Fail("lista", err))
	_, ok := ch.Current()
	assert.False(t, ok)
}

func TestBase_FailEndsSessionOnAuthFailure(t *testing.T) {
	b, ch := newBase()
	var ended int
	b.OnAuthFailure = func() { ended++ }

	b.Fail("lista", apperror.NewAPIError(403, "Sem permissão."))
	assert.Zero(t, ended)

	b.Fail("lista", apperror.NewAPIError(401, "Token inválido ou expirado."))
	assert.Equal(t, 1, ended)

	n, ok := ch.Current()
	require.True(t, ok)
	assert.Equal(t, "Token inválido ou expirado.", n.Message)
}

func TestBase_RequireAdmin(t *testing.T) {
	b, ch := newBase()
	admin := &domain.User{ID: 1, Perfil: domain.PerfilAdmin}
	atendente := &domain.User{ID: 2, Perfil: domain.PerfilAtendente}

	assert.NoError(t, b.RequireAdmin(staticSession{User: admin}, service.AdminOnlyMessage))
	_, ok := ch.Current()
	assert.False(t, ok)

	err := b.RequireAdmin(staticSession{User: atendente}, service.AdminOnlyMessage)
	var forbidden *apperror.ForbiddenError
	require.ErrorAs(t, err, &forbidden)
	n, _ := ch.Current()
	assert.Equal(t, service.AdminOnlyMessage, n.Message)

	assert.Error(t, b.RequireAdmin(staticSession{}, service.AdminOnlyMessage))
}
