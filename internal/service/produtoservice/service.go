package produtoservice

import (
	"context"
	"strings"

	"gocarne/internal/domain"
	"gocarne/internal/loader"
	"gocarne/internal/pkg/logger"
	"gocarne/internal/service"
)

// ProdutoAPI define o contrato de produtos esperado do cliente HTTP.
type ProdutoAPI interface {
	List(ctx context.Context, search string) ([]domain.Produto, error)
	Get(ctx context.Context, id int) (domain.Produto, error)
	Create(ctx context.Context, in domain.ProdutoInput) (domain.Produto, error)
	Update(ctx context.Context, id int, in domain.ProdutoInput) (domain.Produto, error)
	Delete(ctx context.Context, id int) error
}

// Service controla as telas do catálogo de produtos.
type Service struct {
	service.Base
	api  ProdutoAPI
	list *loader.Loader[[]domain.Produto]
}

// NewService cria o controlador de produtos.
func NewService(api ProdutoAPI, notifier service.Notifier, log logger.Logger) *Service {
	return &Service{
		Base: service.Base{Notifier: notifier, Logger: log},
		api:  api,
		list: loader.New[[]domain.Produto](),
	}
}

// List carrega o catálogo com busca opcional.
func (s *Service) List(ctx context.Context, search string) ([]domain.Produto, error) {
	search = strings.TrimSpace(search)
	produtos, err := s.list.Load(ctx, func(ctx context.Context) ([]domain.Produto, error) {
		return s.api.List(ctx, search)
	})
	if err != nil {
		return nil, s.Fail("listagem de produtos", err)
	}
	return produtos, nil
}

// Get carrega um produto para edição.
func (s *Service) Get(ctx context.Context, id int) (domain.Produto, error) {
	p, err := s.api.Get(ctx, id)
	if err != nil {
		return domain.Produto{}, s.Fail("busca de produto", err)
	}
	return p, nil
}

// Create valida e cadastra um produto.
func (s *Service) Create(ctx context.Context, in domain.ProdutoInput) (domain.Produto, error) {
	in.Nome = strings.TrimSpace(in.Nome)
	if msg := Validate(in); msg != "" {
		return domain.Produto{}, s.Invalid(msg)
	}

	p, err := s.api.Create(ctx, in)
	if err != nil {
		return domain.Produto{}, s.Fail("cadastro de produto", err)
	}
	s.Success("Produto cadastrado com sucesso!")
	return p, nil
}

// Update valida e salva a edição de um produto.
func (s *Service) Update(ctx context.Context, id int, in domain.ProdutoInput) (domain.Produto, error) {
	in.Nome = strings.TrimSpace(in.Nome)
	if msg := Validate(in); msg != "" {
		return domain.Produto{}, s.Invalid(msg)
	}

	p, err := s.api.Update(ctx, id, in)
	if err != nil {
		return domain.Produto{}, s.Fail("edição de produto", err)
	}
	s.Success("Produto atualizado com sucesso!")
	return p, nil
}

// Delete exclui um produto.
func (s *Service) Delete(ctx context.Context, id int) error {
	if err := s.api.Delete(ctx, id); err != nil {
		return s.Fail("exclusão de produto", err)
	}
	s.Success("Produto excluído com sucesso!")
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

// Validate devolve a mensagem de erro do formulário de produto, ou "" se estiver válido.
func Validate(in domain.ProdutoInput) string {
	switch {
	case in.Nome == "":
		return "O nome do produto é obrigatório."
	case in.PrecoVenda < 0:
		return "O preço de venda não pode ser negativo."
	case in.PrecoCusto < 0:
		return "O preço de custo não pode ser negativo."
	case in.EstoqueAtual < 0:
		return "O estoque não pode ser negativo."
	}
	return ""
}
