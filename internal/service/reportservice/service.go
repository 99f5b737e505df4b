package reportservice

import (
	"context"
	"time"

	"gocarne/internal/domain"
	"gocarne/internal/loader"
	"gocarne/internal/pkg/logger"
	"gocarne/internal/service"
)

// ReportAPI define o contrato de relatórios esperado do cliente HTTP.
type ReportAPI interface {
	DashboardSummary(ctx context.Context) (domain.DashboardSummary, error)
	Receipts(ctx context.Context, f domain.ReceiptsFilter) (domain.ReceiptsReport, error)
	PendingDebtsByClient(ctx context.Context, clienteID int) (domain.PendingDebtsReport, error)
}

// Service controla o dashboard e as telas de relatório.
type Service struct {
	service.Base
	api      ReportAPI
	receipts *loader.Loader[domain.ReceiptsReport]
	pending  *loader.Loader[domain.PendingDebtsReport]
}

// NewService cria o controlador de relatórios.
func NewService(api ReportAPI, notifier service.Notifier, log logger.Logger) *Service {
	return &Service{
		Base:     service.Base{Notifier: notifier, Logger: log},
		api:      api,
		receipts: loader.New[domain.ReceiptsReport](),
		pending:  loader.New[domain.PendingDebtsReport](),
	}
}

// Dashboard carrega os totais da tela inicial.
func (s *Service) Dashboard(ctx context.Context) (domain.DashboardSummary, error) {
	summary, err := s.api.DashboardSummary(ctx)
	if err != nil {
		return domain.DashboardSummary{}, s.Fail("dashboard", err)
	}
	return summary, nil
}

// Receipts carrega os recebimentos do período. Um período novo descarta a carga anterior.
func (s *Service) Receipts(ctx context.Context, f domain.ReceiptsFilter) (domain.ReceiptsReport, error) {
	start, errStart := time.Parse(domain.DateLayout, f.StartDate)
	end, errEnd := time.Parse(domain.DateLayout, f.EndDate)
	switch {
	case errStart != nil || errEnd != nil:
		return domain.ReceiptsReport{}, s.Invalid("Informe as datas inicial e final (AAAA-MM-DD).")
	case start.After(end):
		return domain.ReceiptsReport{}, s.Invalid("A data inicial não pode ser posterior à data final.")
	}

	report, err := s.receipts.Load(ctx, func(ctx context.Context) (domain.ReceiptsReport, error) {
		return s.api.Receipts(ctx, f)
	})
	if err != nil {
		return domain.ReceiptsReport{}, s.Fail("relatório de recebimentos", err)
	}
	return report, nil
}

// PendingDebts carrega as parcelas em aberto de um cliente.
// Trocar de cliente descarta a carga do cliente anterior.
func (s *Service) PendingDebts(ctx context.Context, clienteID int) (domain.PendingDebtsReport, error) {
	if clienteID <= 0 {
		return domain.PendingDebtsReport{}, s.Invalid("Selecione um cliente.")
	}
	report, err := s.pending.Load(ctx, func(ctx context.Context) (domain.PendingDebtsReport, error) {
		return s.api.PendingDebtsByClient(ctx, clienteID)
	})
	if err != nil {
		return domain.PendingDebtsReport{}, s.Fail("relatório de pendências", err)
	}
	return report, nil
}

// Close descarta as cargas em andamento quando a tela de relatório é fechada.
func (s *Service) Close() {
	s.receipts.Reset()
	s.pending.Reset()
}

// Shutdown encerra o controlador junto com a aplicação.
func (s *Service) Shutdown() {
	s.receipts.Close()
	s.pending.Close()
}
