package router_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gocarne/internal/domain"
	apperror "gocarne/internal/errors"
	"gocarne/internal/guard"
	"gocarne/internal/pkg/logger"
	"gocarne/internal/router"
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

func newNavigator(st domain.SessionState) (*router.Navigator, *fakeSession, *recordingNotifier) {
	session := &fakeSession{st: st}
	n := &recordingNotifier{}
	return router.NewNavigator(nil, session, n, logger.NewNopLogger()), session, n
}

func TestMatch(t *testing.T) {
	tests := []struct {
		path   string
		name   string
		params map[string]string
	}{
		{"/", "login", map[string]string{}},
		{"/clients", "clients", map[string]string{}},
		{"/clients/", "clients", map[string]string{}},
		{"/clients/new", "client-new", map[string]string{}},
		{"/clients/42", "client-details", map[string]string{"id": "42"}},
		{"/clients/42/edit", "client-edit", map[string]string{"id": "42"}},
		{"/reports/receipts?x=1", "reports-receipts", map[string]string{}},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			r, params, ok := router.Match(router.Routes, tt.path)
			require.True(t, ok)
			assert.Equal(t, tt.name, r.Name)
			assert.Equal(t, tt.params, params)
		})
	}

	_, _, ok := router.Match(router.Routes, "/nao-existe")
	assert.False(t, ok)
}

func TestNavigate_AnonymousRedirectedToLogin(t *testing.T) {
	nav, _, _ := newNavigator(domain.SessionState{})

	view, err := nav.Navigate("/clients")
	require.NoError(t, err)
	assert.Equal(t, "/", view.Path)
	assert.Equal(t, "login", view.Route.Name)
	assert.Equal(t, guard.Render, view.Outcome)
}

func TestNavigate_LoadingShowsPlaceholderThenRenders(t *testing.T) {
	nav, session, _ := newNavigator(domain.SessionState{Loading: true})

	view, err := nav.Navigate("/dashboard")
	require.NoError(t, err)
	assert.Equal(t, "/dashboard", view.Path)
	assert.Equal(t, guard.Placeholder, view.Outcome)

	session.set(domain.SessionState{User: &domain.User{ID: 1, Perfil: domain.PerfilAtendente}, Token: "t"})
	view, err = nav.Render()
	require.NoError(t, err)
	assert.Equal(t, "/dashboard", view.Path)
	assert.Equal(t, guard.Render, view.Outcome)
}

func TestNavigate_NonAdminRedirectedToClientsOnce(t *testing.T) {
	nav, _, notifier := newNavigator(domain.SessionState{User: &domain.User{ID: 2, Perfil: domain.PerfilAtendente}, Token: "t"})

	view, err := nav.Navigate("/register-admin")
	require.NoError(t, err)
	assert.Equal(t, "/clients", view.Path)
	assert.Equal(t, guard.Render, view.Outcome)

	_, err = nav.Render()
	require.NoError(t, err)

	require.Len(t, notifier.got, 1)
	assert.Equal(t, domain.NotificationError, notifier.got[0].Type)
}

func TestNavigate_AdminReachesAdminRoute(t *testing.T) {
	nav, _, notifier := newNavigator(domain.SessionState{User: &domain.User{ID: 1, Perfil: domain.PerfilAdmin}, Token: "t"})

	view, err := nav.Navigate("/register-atendente")
	require.NoError(t, err)
	assert.Equal(t, "/register-atendente", view.Path)
	assert.Equal(t, guard.Render, view.Outcome)
	assert.Empty(t, notifier.got)
	assert.Equal(t, view, nav.Current())
}

func TestNavigate_UnknownRoute(t *testing.T) {
	nav, _, _ := newNavigator(domain.SessionState{})

	_, err := nav.Navigate("/nao-existe")
	var notFound *apperror.NotFoundError
	assert.ErrorAs(t, err, &notFound)
}

func TestRender_WithoutMount(t *testing.T) {
	nav, _, _ := newNavigator(domain.SessionState{})

	_, err := nav.Render()
	assert.Error(t, err)
}
