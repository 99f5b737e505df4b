package carneservice

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

// CarneAPI define o contrato que este controlador espera do cliente HTTP.
type CarneAPI interface {
	List(ctx context.Context, f domain.CarneFilter) ([]domain.Carne, error)
	Get(ctx context.Context, id int) (domain.Carne, error)
	Create(ctx context.Context, in domain.CarneInput) (domain.Carne, error)
	Update(ctx context.Context, id int, in domain.CarneInput) (domain.Carne, error)
	Delete(ctx context.Context, id int) error
}

// Service controla as telas de carnês.
type Service struct {
	service.Base
	api  CarneAPI
	list *loader.Loader[[]domain.Carne]
}

// NewService cria o controlador de carnês.
func NewService(api CarneAPI, notifier service.Notifier, log logger.Logger) *Service {
	return &Service{
		Base: service.Base{Notifier: notifier, Logger: log},
		api:  api,
		list: loader.New[[]domain.Carne](),
	}
}

// List carrega a lista com os filtros da tela. Trocar o filtro descarta a carga anterior.
func (s *Service) List(ctx context.Context, f domain.CarneFilter) ([]domain.Carne, error) {
	if f.DataVencimentoI != "" && f.DataVencimentoF != "" && f.DataVencimentoI > f.DataVencimentoF {
		return nil, s.Invalid("A data inicial de vencimento não pode ser posterior à data final.")
	}

	carnes, err := s.list.Load(ctx, func(ctx context.Context) ([]domain.Carne, error) {
		return s.api.List(ctx, f)
	})
	if err != nil {
		return nil, s.Fail("listagem de carnês", err)
	}
	return carnes, nil
}

// Get carrega o carnê com as parcelas.
func (s *Service) Get(ctx context.Context, id int) (domain.Carne, error) {
	c, err := s.api.Get(ctx, id)
	if err != nil {
		return domain.Carne{}, s.Fail("busca de carnê", err)
	}
	return c, nil
}

// Create valida o formulário e cria o carnê. A API gera as parcelas.
func (s *Service) Create(ctx context.Context, in domain.CarneInput) (domain.Carne, error) {
	if msg := Validate(in); msg != "" {
		return domain.Carne{}, s.Invalid(msg)
	}

	c, err := s.api.Create(ctx, in)
	if err != nil {
		return domain.Carne{}, s.Fail("criação de carnê", err)
	}
	s.Success(fmt.Sprintf("Carnê #%d criado com sucesso!", c.ID))
	return c, nil
}

// Update valida e salva a edição do carnê.
func (s *Service) Update(ctx context.Context, id int, in domain.CarneInput) (domain.Carne, error) {
	if msg := Validate(in); msg != "" {
		return domain.Carne{}, s.Invalid(msg)
	}

	c, err := s.api.Update(ctx, id, in)
	if err != nil {
		return domain.Carne{}, s.Fail("edição de carnê", err)
	}
	s.Success("Carnê atualizado com sucesso!")
	return c, nil
}

// Delete exclui o carnê.
func (s *Service) Delete(ctx context.Context, id int) error {
	if err := s.api.Delete(ctx, id); err != nil {
		return s.Fail("exclusão de carnê", err)
	}
	s.Success("Carnê excluído com sucesso!")
	return nil
}

// Close descarta a carga em andamento quando a tela de listagem é fechada.
// A próxima abertura da tela volta a carregar normalmente.
func (s *Service) Close() {
	s.list.Reset()
}

// Shutdown encerra o controlador junto com a aplicação.
func (s *Service) Shutdown() {
	s.list.Close()
}

// Validate devolve a mensagem de erro do formulário de carnê, ou "" se estiver válido.
func Validate(in domain.CarneInput) string {
	switch {
	case in.IDCliente <= 0:
		return "Selecione o cliente do carnê."
	case in.ValorTotalOriginal <= 0:
		return "O valor total deve ser maior que zero."
	case in.NumeroParcelas < 1:
		return "O número de parcelas deve ser pelo menos 1."
	case in.ValorEntrada < 0:
		return "O valor de entrada não pode ser negativo."
	case in.ValorEntrada > in.ValorTotalOriginal:
		return "O valor de entrada não pode ser maior que o valor total."
	case in.DataPrimeiroVencimento == "":
		return "Informe a data do primeiro vencimento."
	case !validDate(in.DataPrimeiroVencimento):
		return "Data do primeiro vencimento inválida (use AAAA-MM-DD)."
	case !validFrequencia(in.FrequenciaPagamento):
		return "Frequência de pagamento inválida (mensal, quinzenal ou semanal)."
	}
	return ""
}

func validDate(s string) bool {
	_, err := time.Parse(domain.DateLayout, s)
	return err == nil
}

func validFrequencia(f string) bool {
	f = strings.ToLower(strings.TrimSpace(f))
	for _, ok := range domain.FrequenciasPagamento {
		if f == ok {
			return true
		}
	}
	return false
}
