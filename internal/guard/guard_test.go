package guard_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"gocarne/internal/domain"
	"gocarne/internal/guard"
)

type fakeSession struct {
	mu sync.Mutex
	st domain.SessionState
}

func (f *fakeSession) State() domain.SessionState {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.st
}

func (f *fakeSession) set(st domain.SessionState) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.st = st
}

type recordingNotifier struct {
	got []domain.Notification
}

func (r *recordingNotifier) Set(message string, typ domain.NotificationType) {
	r.got = append(r.got, domain.Notification{Message: message, Type: typ})
}

var (
	admin     = &domain.User{ID: 1, Nome: "Ana", Perfil: domain.PerfilAdmin}
	atendente = &domain.User{ID: 2, Nome: "Bia", Perfil: domain.PerfilAtendente}
)

func TestAuthGuard(t *testing.T) {
	tests := []struct {
		name  string
		state domain.SessionState
		want  guard.Result
	}{
		{"carregando", domain.SessionState{Loading: true}, guard.Result{Outcome: guard.Placeholder}},
		{"carregando com snapshot", domain.SessionState{Loading: true, User: atendente, Token: "t"}, guard.Result{Outcome: guard.Placeholder}},
		{"autenticado", domain.SessionState{User: atendente, Token: "t"}, guard.Result{Outcome: guard.Render}},
		{"anônimo", domain.SessionState{}, guard.Result{Outcome: guard.Redirect, RedirectTo: guard.LoginRoute}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := guard.NewAuthGuard(&fakeSession{st: tt.state})
			assert.Equal(t, tt.want, g.Evaluate())
		})
	}
}

func TestAdminGuard_AdminRenders(t *testing.T) {
	n := &recordingNotifier{}
	g := guard.NewAdminGuard(&fakeSession{st: domain.SessionState{User: admin, Token: "t"}}, n)

	assert.Equal(t, guard.Render, g.Evaluate().Outcome)
	assert.Empty(t, n.got)
}

func TestAdminGuard_AnonymousGoesToLoginWithoutNotification(t *testing.T) {
	n := &recordingNotifier{}
	g := guard.NewAdminGuard(&fakeSession{}, n)

	assert.Equal(t, guard.Result{Outcome: guard.Redirect, RedirectTo: guard.LoginRoute}, g.Evaluate())
	assert.Empty(t, n.got)
}

func TestAdminGuard_NonAdminNotifiesOncePerMount(t *testing.T) {
	n := &recordingNotifier{}
	g := guard.NewAdminGuard(&fakeSession{st: domain.SessionState{User: atendente, Token: "t"}}, n)

	for i := 0; i < 5; i++ {
		assert.Equal(t, guard.Result{Outcome: guard.Redirect, RedirectTo: guard.FallbackRoute}, g.Evaluate())
	}

	if assert.Len(t, n.got, 1) {
		assert.Equal(t, domain.NotificationError, n.got[0].Type)
		assert.Equal(t, guard.AdminDeniedMessage, n.got[0].Message)
	}
}

func TestAdminGuard_NewMountNotifiesAgain(t *testing.T) {
	n := &recordingNotifier{}
	session := &fakeSession{st: domain.SessionState{User: atendente, Token: "t"}}

	guard.NewAdminGuard(session, n).Evaluate()
	guard.NewAdminGuard(session, n).Evaluate()

	assert.Len(t, n.got, 2)
}

func TestAdminGuard_LoadingThenDenied(t *testing.T) {
	n := &recordingNotifier{}
	session := &fakeSession{st: domain.SessionState{Loading: true}}
	g := guard.NewAdminGuard(session, n)

	assert.Equal(t, guard.Placeholder, g.Evaluate().Outcome)
	assert.Empty(t, n.got)

	session.set(domain.SessionState{User: atendente, Token: "t"})
	g.Evaluate()
	g.Evaluate()
	assert.Len(t, n.got, 1)
}

func TestPublic(t *testing.T) {
	assert.Equal(t, guard.Render, guard.Public{}.Evaluate().Outcome)
}
