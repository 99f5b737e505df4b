package clienteservice

import (
	"context"
	"strings"

	"gocarne/internal/domain"
	"gocarne/internal/loader"
	"gocarne/internal/pkg/logger"
	"gocarne/internal/service"
)

// ClienteAPI define o contrato que este controlador espera do cliente HTTP.
type ClienteAPI interface {
	List(ctx context.Context, search string) ([]domain.Cliente, error)
	Get(ctx context.Context, id int) (domain.Cliente, error)
	Create(ctx context.Context, in domain.ClienteInput) (domain.Cliente, error)
	Update(ctx context.Context, id int, in domain.ClienteInput) (domain.Cliente, error)
	Delete(ctx context.Context, id int) error
	Summary(ctx context.Context, id int) (domain.ClienteSummary, error)
}

// Service controla as telas de clientes.
type Service struct {
	service.Base
	api  ClienteAPI
	list *loader.Loader[[]domain.Cliente]
}

// NewService cria o controlador de clientes.
func NewService(api ClienteAPI, notifier service.Notifier, log logger.Logger) *Service {
	return &Service{
		Base: service.Base{Notifier: notifier, Logger: log},
		api:  api,
		list: loader.New[[]domain.Cliente](),
	}
}

// List carrega a lista, opcionalmente filtrada. Uma busca nova descarta a anterior.
func (s *Service) List(ctx context.Context, search string) ([]domain.Cliente, error) {
	search = strings.TrimSpace(search)
	clientes, err := s.list.Load(ctx, func(ctx context.Context) ([]domain.Cliente, error) {
		return s.api.List(ctx, search)
	})
	if err != nil {
		return nil, s.Fail("listagem de clientes", err)
	}
	return clientes, nil
}

// Get carrega um cliente para a tela de edição.
func (s *Service) Get(ctx context.Context, id int) (domain.Cliente, error) {
	c, err := s.api.Get(ctx, id)
	if err != nil {
		return domain.Cliente{}, s.Fail("busca de cliente", err)
	}
	return c, nil
}

// Details carrega o cliente e o resumo financeiro da tela de detalhes.
func (s *Service) Details(ctx context.Context, id int) (domain.Cliente, domain.ClienteSummary, error) {
	c, err := s.api.Get(ctx, id)
	if err != nil {
		return domain.Cliente{}, domain.ClienteSummary{}, s.Fail("busca de cliente", err)
	}
	summary, err := s.api.Summary(ctx, id)
	if err != nil {
		return domain.Cliente{}, domain.ClienteSummary{}, s.Fail("resumo do cliente", err)
	}
	return c, summary, nil
}

// Create valida e cadastra um cliente.
func (s *Service) Create(ctx context.Context, in domain.ClienteInput) (domain.Cliente, error) {
	in = normalize(in)
	if msg := Validate(in); msg != "" {
		return domain.Cliente{}, s.Invalid(msg)
	}

	c, err := s.api.Create(ctx, in)
	if err != nil {
		return domain.Cliente{}, s.Fail("cadastro de cliente", err)
	}
	s.Success("Cliente cadastrado com sucesso!")
	return c, nil
}

// Update valida e salva a edição de um cliente.
func (s *Service) Update(ctx context.Context, id int, in domain.ClienteInput) (domain.Cliente, error) {
	in = normalize(in)
	if msg := Validate(in); msg != "" {
		return domain.Cliente{}, s.Invalid(msg)
	}

	c, err := s.api.Update(ctx, id, in)
	if err != nil {
		return domain.Cliente{}, s.Fail("edição de cliente", err)
	}
	s.Success("Cliente atualizado com sucesso!")
	return c, nil
}

// Delete exclui o cliente. A API apaga em cascata os carnês dele.
func (s *Service) Delete(ctx context.Context, id int) error {
	if err := s.api.Delete(ctx, id); err != nil {
		return s.Fail("exclusão de cliente", err)
	}
	s.Success("Cliente excluído com sucesso!")
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

// Validate devolve a mensagem de erro do formulário de cliente, ou "" se estiver válido.
func Validate(in domain.ClienteInput) string {
	switch {
	case in.Nome == "":
		return "O nome do cliente é obrigatório."
	case in.CPFCNPJ == "":
		return "O CPF/CNPJ do cliente é obrigatório."
	case in.Email != "" && !strings.Contains(in.Email, "@"):
		return "Informe um email válido."
	}
	return ""
}

func normalize(in domain.ClienteInput) domain.ClienteInput {
	in.Nome = strings.TrimSpace(in.Nome)
	in.CPFCNPJ = strings.TrimSpace(in.CPFCNPJ)
	in.Email = strings.TrimSpace(in.Email)
	return in
}
