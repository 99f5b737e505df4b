package parcelaservice_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"gocarne/internal/domain"
	apperror "gocarne/internal/errors"
	"gocarne/internal/loader"
	"gocarne/internal/notification"
	"gocarne/internal/pkg/logger"
	"gocarne/internal/service/parcelaservice"
)

// MockParcelaAPI é uma implementação mock da interface ParcelaAPI
type MockParcelaAPI struct {
	mock.Mock
}

func (m *MockParcelaAPI) ListByCarne(ctx context.Context, carneID int) ([]domain.Parcela, error) {
	args := m.Called(ctx, carneID)
	return args.Get(0).([]domain.Parcela), args.Error(1)
}

func (m *MockParcelaAPI) Get(ctx context.Context, id int) (domain.Parcela, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Parcela), args.Error(1)
}

func (m *MockParcelaAPI) Update(ctx context.Context, id int, in domain.ParcelaUpdate) (domain.Parcela, error) {
	args := m.Called(ctx, id, in)
	return args.Get(0).(domain.Parcela), args.Error(1)
}

func (m *MockParcelaAPI) Delete(ctx context.Context, id int) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockParcelaAPI) Renegotiate(ctx context.Context, id int, in domain.RenegotiateInput) (domain.Parcela, error) {
	args := m.Called(ctx, id, in)
	return args.Get(0).(domain.Parcela), args.Error(1)
}

// MockPagamentoAPI é uma implementação mock da interface PagamentoAPI
type MockPagamentoAPI struct {
	mock.Mock
}

func (m *MockPagamentoAPI) Register(ctx context.Context, in domain.PagamentoInput) (domain.Pagamento, error) {
	args := m.Called(ctx, in)
	return args.Get(0).(domain.Pagamento), args.Error(1)
}

func (m *MockPagamentoAPI) ListByParcela(ctx context.Context, parcelaID int) ([]domain.Pagamento, error) {
	args := m.Called(ctx, parcelaID)
	return args.Get(0).([]domain.Pagamento), args.Error(1)
}

func (m *MockPagamentoAPI) Reverse(ctx context.Context, id int) error {
	return m.Called(ctx, id).Error(0)
}

type staticSession domain.SessionState

func (s staticSession) State() domain.SessionState { return domain.SessionState(s) }

func setup(user *domain.User) (*parcelaservice.Service, *MockParcelaAPI, *MockPagamentoAPI, *notification.Channel) {
	parcelas := new(MockParcelaAPI)
	pagamentos := new(MockPagamentoAPI)
	ch := notification.NewChannel(time.Minute)
	session := staticSession{User: user, Token: "t"}
	return parcelaservice.NewService(parcelas, pagamentos, session, ch, logger.NewLogger("debug")), parcelas, pagamentos, ch
}

var (
	admin     = &domain.User{ID: 1, Perfil: domain.PerfilAdmin}
	atendente = &domain.User{ID: 2, Perfil: domain.PerfilAtendente}
)

func TestRegisterPayment_Validation(t *testing.T) {
	tests := []struct {
		name string
		in   domain.PagamentoInput
	}{
		{"sem parcela", domain.PagamentoInput{ValorPago: 10, FormaPagamento: "pix"}},
		{"valor zero", domain.PagamentoInput{IDParcela: 1, FormaPagamento: "pix"}},
		{"sem forma", domain.PagamentoInput{IDParcela: 1, ValorPago: 10, FormaPagamento: "  "}},
		{"data inválida", domain.PagamentoInput{IDParcela: 1, ValorPago: 10, FormaPagamento: "pix", DataPagamento: "ontem"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _, pagamentos, ch := setup(atendente)

			_, err := svc.RegisterPayment(context.Background(), tt.in)

			var validation *apperror.ValidationError
			assert.ErrorAs(t, err, &validation)
			n, _ := ch.Current()
			assert.Equal(t, domain.NotificationWarning, n.Type)
			pagamentos.AssertNotCalled(t, "Register", mock.Anything, mock.Anything)
		})
	}
}

func TestRegisterPayment_Success(t *testing.T) {
	svc, _, pagamentos, ch := setup(atendente)
	in := domain.PagamentoInput{IDParcela: 4, ValorPago: 100, FormaPagamento: "dinheiro"}
	pagamentos.On("Register", mock.Anything, in).Return(domain.Pagamento{ID: 11, IDParcela: 4, ValorPago: 100}, nil)

	p, err := svc.RegisterPayment(context.Background(), in)
	require.NoError(t, err)
	assert.Equal(t, 11, p.ID)
	n, _ := ch.Current()
	assert.Equal(t, "Pagamento registrado com sucesso!", n.Message)
}

func TestReversePayment_AdminOnly(t *testing.T) {
	svc, _, pagamentos, ch := setup(atendente)

	err := svc.ReversePayment(context.Background(), 11)

	var forbidden *apperror.ForbiddenError
	assert.ErrorAs(t, err, &forbidden)
	n, _ := ch.Current()
	assert.Equal(t, domain.NotificationError, n.Type)
	pagamentos.AssertNotCalled(t, "Reverse", mock.Anything, mock.Anything)
}

func TestReversePayment_Admin(t *testing.T) {
	svc, _, pagamentos, ch := setup(admin)
	pagamentos.On("Reverse", mock.Anything, 11).Return(nil)

	require.NoError(t, svc.ReversePayment(context.Background(), 11))
	n, _ := ch.Current()
	assert.Equal(t, domain.NotificationSuccess, n.Type)
	pagamentos.AssertExpectations(t)
}

func TestRenegotiate(t *testing.T) {
	svc, parcelas, _, ch := setup(atendente)

	_, err := svc.Renegotiate(context.Background(), 3, domain.RenegotiateInput{})
	assert.Error(t, err)

	zero := 0.0
	_, err = svc.Renegotiate(context.Background(), 3, domain.RenegotiateInput{NovaDataVencimento: "2024-06-01", NovoValorDevido: &zero})
	assert.Error(t, err)
	parcelas.AssertNotCalled(t, "Renegotiate", mock.Anything, mock.Anything, mock.Anything)

	in := domain.RenegotiateInput{NovaDataVencimento: "2024-06-01"}
	parcelas.On("Renegotiate", mock.Anything, 3, in).Return(domain.Parcela{ID: 3, NumeroParcela: 2, DataVencimento: "2024-06-01"}, nil)

	p, err := svc.Renegotiate(context.Background(), 3, in)
	require.NoError(t, err)
	assert.Equal(t, "2024-06-01", p.DataVencimento)
	n, _ := ch.Current()
	assert.Equal(t, "Parcela 2 renegociada com sucesso!", n.Message)
}

func TestUpdate_InvalidValor(t *testing.T) {
	svc, parcelas, _, _ := setup(admin)
	neg := -5.0

	_, err := svc.Update(context.Background(), 1, domain.ParcelaUpdate{ValorDevido: &neg})
	assert.Error(t, err)
	parcelas.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
}

func TestListByCarne_SwitchingCarneDiscardsPreviousLoad(t *testing.T) {
	svc, parcelas, _, ch := setup(atendente)
	started := make(chan struct{})
	release := make(chan struct{})
	parcelas.On("ListByCarne", mock.Anything, 10).
		Run(func(mock.Arguments) {
			close(started)
			<-release
		}).
		Return([]domain.Parcela{{ID: 100, IDCarne: 10}}, nil).Once()
	parcelas.On("ListByCarne", mock.Anything, 20).
		Return([]domain.Parcela{{ID: 200, IDCarne: 20}}, nil).Once()

	done := make(chan error, 1)
	go func() {
		_, err := svc.ListByCarne(context.Background(), 10)
		done <- err
	}()

	<-started
	ps, err := svc.ListByCarne(context.Background(), 20)
	require.NoError(t, err)
	require.Len(t, ps, 1)
	assert.Equal(t, 200, ps[0].ID)

	close(release)
	assert.ErrorIs(t, <-done, loader.ErrSuperseded)
	_, ok := ch.Current()
	assert.False(t, ok)
}

func TestPayments_ReloadAfterClose(t *testing.T) {
	svc, _, pagamentos, _ := setup(atendente)
	pagamentos.On("ListByParcela", mock.Anything, 7).Return([]domain.Pagamento{{ID: 1, IDParcela: 7}}, nil)

	svc.Close()

	ps, err := svc.Payments(context.Background(), 7)
	require.NoError(t, err)
	assert.Len(t, ps, 1)
}
