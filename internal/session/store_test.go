package session_test

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"gocarne/internal/domain"
	apperror "gocarne/internal/errors"
	"gocarne/internal/pkg/logger"
	"gocarne/internal/pkg/storage"
	"gocarne/internal/pkg/token"
	"gocarne/internal/session"
)

// MockAuthAPI é uma implementação mock da interface AuthAPI
type MockAuthAPI struct {
	mock.Mock
}

func (m *MockAuthAPI) Login(ctx context.Context, email, password string) (domain.TokenResponse, error) {
	args := m.Called(ctx, email, password)
	return args.Get(0).(domain.TokenResponse), args.Error(1)
}

func (m *MockAuthAPI) Me(ctx context.Context) (domain.User, error) {
	args := m.Called(ctx)
	return args.Get(0).(domain.User), args.Error(1)
}

func (m *MockAuthAPI) Register(ctx context.Context, in domain.Registration) (domain.User, error) {
	args := m.Called(ctx, in)
	return args.Get(0).(domain.User), args.Error(1)
}

func (m *MockAuthAPI) RegisterAdmin(ctx context.Context, in domain.Registration) (domain.User, error) {
	args := m.Called(ctx, in)
	return args.Get(0).(domain.User), args.Error(1)
}

func (m *MockAuthAPI) RegisterAtendente(ctx context.Context, in domain.Registration) (domain.User, error) {
	args := m.Called(ctx, in)
	return args.Get(0).(domain.User), args.Error(1)
}

var ana = domain.User{ID: 1, Nome: "Ana", Email: "ana@loja.com", Perfil: domain.PerfilAdmin}

func newStore(t *testing.T) (*session.Store, *MockAuthAPI, *storage.MemoryStorage) {
	t.Helper()
	api := new(MockAuthAPI)
	mem := storage.NewMemoryStorage()
	return session.NewStore(api, mem, logger.NewNopLogger()), api, mem
}

func persist(t *testing.T, mem storage.Storage, tok string, user *domain.User) {
	t.Helper()
	ctx := context.Background()
	require.NoError(t, mem.Set(ctx, storage.KeyToken, tok))
	if user != nil {
		raw, err := json.Marshal(user)
		require.NoError(t, err)
		require.NoError(t, mem.Set(ctx, storage.KeyUser, string(raw)))
	}
}

func TestNewStore_StartsLoading(t *testing.T) {
	store, _, _ := newStore(t)

	st := store.State()
	assert.True(t, st.Loading)
	assert.Nil(t, st.User)
	assert.False(t, st.Authenticated())
}

func TestRehydrate_NoToken(t *testing.T) {
	store, api, _ := newStore(t)

	require.NoError(t, store.Rehydrate(context.Background()))

	st := store.State()
	assert.False(t, st.Loading)
	assert.Nil(t, st.User)
	assert.Empty(t, st.Token)
	api.AssertNotCalled(t, "Me", mock.Anything)
}

func TestRehydrate_ValidToken(t *testing.T) {
	store, api, mem := newStore(t)
	persist(t, mem, "tok-valido", &domain.User{ID: 1, Nome: "Ana antiga", Perfil: domain.PerfilAdmin})
	api.On("Me", mock.Anything).Return(ana, nil)

	require.NoError(t, store.Rehydrate(context.Background()))

	st := store.State()
	assert.False(t, st.Loading)
	require.NotNil(t, st.User)
	assert.Equal(t, ana, *st.User)
	assert.Equal(t, "tok-valido", st.Token)

	raw, err := mem.Get(context.Background(), storage.KeyUser)
	require.NoError(t, err)
	assert.Contains(t, raw, `"nome":"Ana"`)
	api.AssertExpectations(t)
}

func TestRehydrate_OptimisticSnapshotBeforeMe(t *testing.T) {
	store, api, mem := newStore(t)
	snapshot := domain.User{ID: 1, Nome: "Ana antiga", Perfil: domain.PerfilAdmin}
	persist(t, mem, "tok", &snapshot)
	api.On("Me", mock.Anything).Return(ana, nil)

	var states []domain.SessionState
	store.Subscribe(func(st domain.SessionState) { states = append(states, st) })

	require.NoError(t, store.Rehydrate(context.Background()))

	require.Len(t, states, 2)
	assert.True(t, states[0].Loading)
	require.NotNil(t, states[0].User)
	assert.Equal(t, "Ana antiga", states[0].User.Nome)
	assert.False(t, states[1].Loading)
	assert.Equal(t, "Ana", states[1].User.Nome)
}

func TestRehydrate_RejectedTokenClearsEverything(t *testing.T) {
	store, api, mem := newStore(t)
	persist(t, mem, "tok-revogado", &ana)
	api.On("Me", mock.Anything).Return(domain.User{}, apperror.NewAPIError(http.StatusUnauthorized, "Could not validate credentials"))

	err := store.Rehydrate(context.Background())
	assert.Error(t, err)

	st := store.State()
	assert.False(t, st.Loading)
	assert.Nil(t, st.User)
	assert.Empty(t, st.Token)
	assert.Equal(t, 0, mem.Len())
}

func TestRehydrate_NetworkErrorClearsEverything(t *testing.T) {
	store, api, mem := newStore(t)
	persist(t, mem, "tok", &ana)
	api.On("Me", mock.Anything).Return(domain.User{}, apperror.NewTransportError("GET /me", assert.AnError))

	assert.Error(t, store.Rehydrate(context.Background()))
	assert.Nil(t, store.State().User)
	assert.Equal(t, 0, mem.Len())
}

// unreadableToken simula um armazenamento que falha ao ler o token mas ainda aceita Delete.
type unreadableToken struct {
	*storage.MemoryStorage
}

func (u unreadableToken) Get(ctx context.Context, key string) (string, error) {
	if key == storage.KeyToken {
		return "", assert.AnError
	}
	return u.MemoryStorage.Get(ctx, key)
}

func TestRehydrate_StorageReadFailureWipesStorage(t *testing.T) {
	api := new(MockAuthAPI)
	mem := storage.NewMemoryStorage()
	persist(t, mem, "tok", &ana)
	store := session.NewStore(api, unreadableToken{mem}, logger.NewNopLogger())

	err := store.Rehydrate(context.Background())

	var internal *apperror.InternalError
	assert.ErrorAs(t, err, &internal)
	assert.ErrorIs(t, err, assert.AnError)
	st := store.State()
	assert.False(t, st.Loading)
	assert.Nil(t, st.User)
	assert.Equal(t, 0, mem.Len())
	api.AssertNotCalled(t, "Me", mock.Anything)
}

func TestRehydrate_ExpiredJWTSkipsNetwork(t *testing.T) {
	store, api, mem := newStore(t)
	expired, err := token.NewService("segredo", -time.Minute).GenerateToken(1, ana.Email, string(ana.Perfil))
	require.NoError(t, err)
	persist(t, mem, expired, &ana)

	err = store.Rehydrate(context.Background())

	var unauthorized *apperror.UnauthorizedError
	assert.ErrorAs(t, err, &unauthorized)
	assert.Nil(t, store.State().User)
	assert.False(t, store.State().Loading)
	assert.Equal(t, 0, mem.Len())
	api.AssertNotCalled(t, "Me", mock.Anything)
}

func TestLogin_Success(t *testing.T) {
	store, api, mem := newStore(t)
	api.On("Login", mock.Anything, "ana@loja.com", "segredo").
		Return(domain.TokenResponse{AccessToken: "tok-novo", TokenType: "bearer", User: ana}, nil)

	var sawLoading bool
	store.Subscribe(func(st domain.SessionState) {
		if st.Loading {
			sawLoading = true
		}
	})

	require.NoError(t, store.Login(context.Background(), "ana@loja.com", "segredo"))

	st := store.State()
	assert.True(t, sawLoading)
	assert.False(t, st.Loading)
	assert.True(t, st.Authenticated())
	assert.Equal(t, "tok-novo", st.Token)

	tok, err := mem.Get(context.Background(), storage.KeyToken)
	require.NoError(t, err)
	assert.Equal(t, "tok-novo", tok)
	_, err = mem.Get(context.Background(), storage.KeyUser)
	assert.NoError(t, err)
}

func TestLogin_FailureLeavesNoSession(t *testing.T) {
	store, api, mem := newStore(t)
	require.NoError(t, store.Rehydrate(context.Background()))
	api.On("Login", mock.Anything, "ana@loja.com", "errada").
		Return(domain.TokenResponse{}, apperror.NewAPIError(http.StatusUnauthorized, "Incorrect email or password"))

	err := store.Login(context.Background(), "ana@loja.com", "errada")

	var apiErr *apperror.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "Incorrect email or password", apiErr.Detail)

	st := store.State()
	assert.False(t, st.Loading)
	assert.Nil(t, st.User)
	assert.Empty(t, st.Token)
	assert.Equal(t, 0, mem.Len())
}

func TestLogout_ClearsMemoryAndStorage(t *testing.T) {
	store, api, mem := newStore(t)
	api.On("Login", mock.Anything, mock.Anything, mock.Anything).
		Return(domain.TokenResponse{AccessToken: "tok", User: ana}, nil)
	require.NoError(t, store.Login(context.Background(), "ana@loja.com", "segredo"))

	require.NoError(t, store.Logout(context.Background()))

	st := store.State()
	assert.Nil(t, st.User)
	assert.Empty(t, st.Token)
	assert.False(t, st.Loading)
	assert.Equal(t, 0, mem.Len())
}

func TestRegisterAdmin_DoesNotChangeSession(t *testing.T) {
	store, api, _ := newStore(t)
	api.On("Login", mock.Anything, mock.Anything, mock.Anything).
		Return(domain.TokenResponse{AccessToken: "tok", User: ana}, nil)
	require.NoError(t, store.Login(context.Background(), "ana@loja.com", "segredo"))

	in := domain.Registration{Nome: "Bia", Email: "bia@loja.com", Password: "123456", Perfil: domain.PerfilAtendente}
	created := domain.User{ID: 2, Nome: "Bia", Email: "bia@loja.com", Perfil: domain.PerfilAtendente}
	api.On("RegisterAdmin", mock.Anything, in).Return(created, nil)

	got, err := store.RegisterAdmin(context.Background(), in)
	require.NoError(t, err)
	assert.Equal(t, created, got)
	assert.Equal(t, ana, *store.State().User)
	api.AssertExpectations(t)
}

func TestUpdateUser_MergesLocally(t *testing.T) {
	store, api, mem := newStore(t)
	api.On("Login", mock.Anything, mock.Anything, mock.Anything).
		Return(domain.TokenResponse{AccessToken: "tok", User: ana}, nil)
	require.NoError(t, store.Login(context.Background(), "ana@loja.com", "segredo"))

	nome := "Ana Souza"
	require.NoError(t, store.UpdateUser(context.Background(), domain.UserUpdate{Nome: &nome}))

	st := store.State()
	assert.Equal(t, "Ana Souza", st.User.Nome)
	assert.Equal(t, ana.Email, st.User.Email)

	raw, err := mem.Get(context.Background(), storage.KeyUser)
	require.NoError(t, err)
	assert.Contains(t, raw, "Ana Souza")
	api.AssertNumberOfCalls(t, "Me", 0)
}

func TestUpdateUser_NoSessionIsNoop(t *testing.T) {
	store, _, mem := newStore(t)
	require.NoError(t, store.Rehydrate(context.Background()))

	nome := "X"
	require.NoError(t, store.UpdateUser(context.Background(), domain.UserUpdate{Nome: &nome}))
	assert.Nil(t, store.State().User)
	assert.Equal(t, 0, mem.Len())
}

func TestState_ReturnsCopy(t *testing.T) {
	store, api, _ := newStore(t)
	api.On("Login", mock.Anything, mock.Anything, mock.Anything).
		Return(domain.TokenResponse{AccessToken: "tok", User: ana}, nil)
	require.NoError(t, store.Login(context.Background(), "ana@loja.com", "segredo"))

	st := store.State()
	st.User.Nome = "mutado"
	assert.Equal(t, "Ana", store.State().User.Nome)
}
