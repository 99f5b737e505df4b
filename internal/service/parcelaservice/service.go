package parcelaservice

import (
	"context"
	"fmt"
	"strings"
	"time"

	"gocarne/internal/domain"
	"gocarne/internal/loader"
	"gocarne/internal/pkg/logger"
	"gocarne/internal/service"
)

// ParcelaAPI define o contrato de parcelas esperado do cliente HTTP.
type ParcelaAPI interface {
	ListByCarne(ctx context.Context, carneID int) ([]domain.Parcela, error)
	Get(ctx context.Context, id int) (domain.Parcela, error)
	Update(ctx context.Context, id int, in domain.ParcelaUpdate) (domain.Parcela, error)
	Delete(ctx context.Context, id int) error
	Renegotiate(ctx context.Context, id int, in domain.RenegotiateInput) (domain.Parcela, error)
}

// PagamentoAPI define o contrato de pagamentos esperado do cliente HTTP.
type PagamentoAPI interface {
	Register(ctx context.Context, in domain.PagamentoInput) (domain.Pagamento, error)
	ListByParcela(ctx context.Context, parcelaID int) ([]domain.Pagamento, error)
	Reverse(ctx context.Context, id int) error
}

// Service controla parcelas e pagamentos de um carnê.
type Service struct {
	service.Base
	parcelas   ParcelaAPI
	pagamentos PagamentoAPI
	session    service.Session

	list     *loader.Loader[[]domain.Parcela]
	payments *loader.Loader[[]domain.Pagamento]
}

// NewService cria o controlador de parcelas e pagamentos.
func NewService(parcelas ParcelaAPI, pagamentos PagamentoAPI, session service.Session, notifier service.Notifier, log logger.Logger) *Service {
	return &Service{
		Base:       service.Base{Notifier: notifier, Logger: log},
		parcelas:   parcelas,
		pagamentos: pagamentos,
		session:    session,
		list:       loader.New[[]domain.Parcela](),
		payments:   loader.New[[]domain.Pagamento](),
	}
}

// ListByCarne carrega as parcelas de um carnê. Abrir outro carnê descarta a carga anterior.
func (s *Service) ListByCarne(ctx context.Context, carneID int) ([]domain.Parcela, error) {
	ps, err := s.list.Load(ctx, func(ctx context.Context) ([]domain.Parcela, error) {
		return s.parcelas.ListByCarne(ctx, carneID)
	})
	if err != nil {
		return nil, s.Fail("listagem de parcelas", err)
	}
	return ps, nil
}

// Payments carrega os pagamentos de uma parcela.
func (s *Service) Payments(ctx context.Context, parcelaID int) ([]domain.Pagamento, error) {
	ps, err := s.payments.Load(ctx, func(ctx context.Context) ([]domain.Pagamento, error) {
		return s.pagamentos.ListByParcela(ctx, parcelaID)
	})
	if err != nil {
		return nil, s.Fail("listagem de pagamentos", err)
	}
	return ps, nil
}

// Update salva a edição manual de uma parcela.
func (s *Service) Update(ctx context.Context, id int, in domain.ParcelaUpdate) (domain.Parcela, error) {
	if in.ValorDevido != nil && *in.ValorDevido <= 0 {
		return domain.Parcela{}, s.Invalid("O valor devido deve ser maior que zero.")
	}
	if in.DataVencimento != "" && !validDate(in.DataVencimento) {
		return domain.Parcela{}, s.Invalid("Data de vencimento inválida (use AAAA-MM-DD).")
	}

	p, err := s.parcelas.Update(ctx, id, in)
	if err != nil {
		return domain.Parcela{}, s.Fail("edição de parcela", err)
	}
	s.Success("Parcela atualizada com sucesso!")
	return p, nil
}

// Delete exclui uma parcela.
func (s *Service) Delete(ctx context.Context, id int) error {
	if err := s.parcelas.Delete(ctx, id); err != nil {
		return s.Fail("exclusão de parcela", err)
	}
	s.Success("Parcela excluída com sucesso!")
	return nil
}

// Renegotiate muda vencimento e, opcionalmente, o valor de uma parcela.
func (s *Service) Renegotiate(ctx context.Context, id int, in domain.RenegotiateInput) (domain.Parcela, error) {
	switch {
	case in.NovaDataVencimento == "":
		return domain.Parcela{}, s.Invalid("Informe a nova data de vencimento.")
	case !validDate(in.NovaDataVencimento):
		return domain.Parcela{}, s.Invalid("Nova data de vencimento inválida (use AAAA-MM-DD).")
	case in.NovoValorDevido != nil && *in.NovoValorDevido <= 0:
		return domain.Parcela{}, s.Invalid("O novo valor devido deve ser maior que zero.")
	}

	p, err := s.parcelas.Renegotiate(ctx, id, in)
	if err != nil {
		return domain.Parcela{}, s.Fail("renegociação de parcela", err)
	}
	s.Success(fmt.Sprintf("Parcela %d renegociada com sucesso!", p.NumeroParcela))
	return p, nil
}

// RegisterPayment registra um pagamento numa parcela.
func (s *Service) RegisterPayment(ctx context.Context, in domain.PagamentoInput) (domain.Pagamento, error) {
	in.FormaPagamento = strings.TrimSpace(in.FormaPagamento)
	switch {
	case in.IDParcela <= 0:
		return domain.Pagamento{}, s.Invalid("Selecione a parcela do pagamento.")
	case in.ValorPago <= 0:
		return domain.Pagamento{}, s.Invalid("O valor pago deve ser maior que zero.")
	case in.FormaPagamento == "":
		return domain.Pagamento{}, s.Invalid("Informe a forma de pagamento.")
	case in.DataPagamento != "" && !validDate(in.DataPagamento):
		return domain.Pagamento{}, s.Invalid("Data de pagamento inválida (use AAAA-MM-DD).")
	}

	p, err := s.pagamentos.Register(ctx, in)
	if err != nil {
		return domain.Pagamento{}, s.Fail("registro de pagamento", err)
	}
	s.Success("Pagamento registrado com sucesso!")
	return p, nil
}

// ReversePayment estorna um pagamento. Só admin.
func (s *Service) ReversePayment(ctx context.Context, id int) error {
	if err := s.RequireAdmin(s.session, "Apenas administradores podem estornar pagamentos."); err != nil {
		return err
	}

	if err := s.pagamentos.Reverse(ctx, id); err != nil {
		return s.Fail("estorno de pagamento", err)
	}
	s.Success("Pagamento estornado com sucesso!")
	return nil
}

// Close descarta as cargas em andamento quando a tela do carnê é fechada.
func (s *Service) Close() {
	s.list.Reset()
	s.payments.Reset()
}

// Shutdown encerra o controlador junto com a aplicação.
func (s *Service) Shutdown() {
	s.list.Close()
	s.payments.Close()
}

func validDate(s string) bool {
	_, err := time.Parse(domain.DateLayout, s)
	return err == nil
}
