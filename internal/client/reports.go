package client

import (
	"context"
	"net/http"
	"net/url"

	"gocarne/internal/domain"
)

// ReportsAPI agrupa /reports.
type ReportsAPI struct{ c *Client }

func (a *ReportsAPI) DashboardSummary(ctx context.Context) (domain.DashboardSummary, error) {
	var out domain.DashboardSummary
	err := a.c.do(ctx, request{group: "reports", method: http.MethodGet, path: "/reports/dashboard/summary"}, &out)
	return out, err
}

func (a *ReportsAPI) Receipts(ctx context.Context, f domain.ReceiptsFilter) (domain.ReceiptsReport, error) {
	var out domain.ReceiptsReport
	q := url.Values{"start_date": {f.StartDate}, "end_date": {f.EndDate}}
	err := a.c.do(ctx, request{group: "reports", method: http.MethodGet, path: "/reports/receipts", query: q}, &out)
	return out, err
}

func (a *ReportsAPI) PendingDebtsByClient(ctx context.Context, clienteID int) (domain.PendingDebtsReport, error) {
	var out domain.PendingDebtsReport
	err := a.c.do(ctx, request{group: "reports", method: http.MethodGet, path: idPath("/reports/pending-debts-by-client/%d", clienteID)}, &out)
	return out, err
}
