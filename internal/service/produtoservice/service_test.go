package produtoservice_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"gocarne/internal/domain"
	"gocarne/internal/notification"
	"gocarne/internal/pkg/logger"
	"gocarne/internal/service/produtoservice"
)

// MockProdutoAPI é uma implementação mock da interface ProdutoAPI
type MockProdutoAPI struct {
	mock.Mock
}

func (m *MockProdutoAPI) List(ctx context.Context, search string) ([]domain.Produto, error) {
	args := m.Called(ctx, search)
	return args.Get(0).([]domain.Produto), args.Error(1)
}

func (m *MockProdutoAPI) Get(ctx context.Context, id int) (domain.Produto, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Produto), args.Error(1)
}

func (m *MockProdutoAPI) Create(ctx context.Context, in domain.ProdutoInput) (domain.Produto, error) {
	args := m.Called(ctx, in)
	return args.Get(0).(domain.Produto), args.Error(1)
}

func (m *MockProdutoAPI) Update(ctx context.Context, id int, in domain.ProdutoInput) (domain.Produto, error) {
	args := m.Called(ctx, id, in)
	return args.Get(0).(domain.Produto), args.Error(1)
}

func (m *MockProdutoAPI) Delete(ctx context.Context, id int) error {
	return m.Called(ctx, id).Error(0)
}

func setup() (*produtoservice.Service, *MockProdutoAPI, *notification.Channel) {
	api := new(MockProdutoAPI)
	ch := notification.NewChannel(time.Minute)
	return produtoservice.NewService(api, ch, logger.NewLogger("debug")), api, ch
}

func TestValidate(t *testing.T) {
	assert.Empty(t, produtoservice.Validate(domain.ProdutoInput{Nome: "Capinha", PrecoVenda: 0}))
	assert.NotEmpty(t, produtoservice.Validate(domain.ProdutoInput{}))
	assert.NotEmpty(t, produtoservice.Validate(domain.ProdutoInput{Nome: "X", PrecoVenda: -1}))
	assert.NotEmpty(t, produtoservice.Validate(domain.ProdutoInput{Nome: "X", EstoqueAtual: -2}))
}

func TestCreate_InvalidNoCall(t *testing.T) {
	svc, api, ch := setup()

	_, err := svc.Create(context.Background(), domain.ProdutoInput{Nome: "  "})
	assert.Error(t, err)
	n, _ := ch.Current()
	assert.Equal(t, domain.NotificationWarning, n.Type)
	api.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreate_Success(t *testing.T) {
	svc, api, ch := setup()
	in := domain.ProdutoInput{Nome: "Carregador", PrecoVenda: 49.9, EstoqueAtual: 10}
	api.On("Create", mock.Anything, in).Return(domain.Produto{ID: 1, Nome: "Carregador"}, nil)

	p, err := svc.Create(context.Background(), in)
	require.NoError(t, err)
	assert.Equal(t, 1, p.ID)
	n, _ := ch.Current()
	assert.Equal(t, "Produto cadastrado com sucesso!", n.Message)
}

func TestList(t *testing.T) {
	svc, api, _ := setup()
	api.On("List", mock.Anything, "cabo").Return([]domain.Produto{{ID: 2, Nome: "Cabo USB"}}, nil)

	got, err := svc.List(context.Background(), " cabo")
	require.NoError(t, err)
	assert.Len(t, got, 1)
}
