// Package cli implementa os subcomandos do binário carnes sobre a App.
package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"gocarne/internal/app"
	"gocarne/internal/domain"
	apperror "gocarne/internal/errors"
	"gocarne/internal/guard"
)

// Códigos de saída.
const (
	ExitOK    = 0
	ExitError = 1
	ExitUsage = 2
)

// Usage descreve os subcomandos.
const Usage = `uso: carnes <comando> [argumentos]

comandos:
  login EMAIL SENHA          autentica e grava a sessão
  logout                     encerra a sessão
  whoami                     mostra o usuário da sessão
  clients [BUSCA]            lista clientes
  carnes [BUSCA]             lista carnês
  produtos [BUSCA]           lista produtos
  dashboard                  indicadores do painel
  receipts INICIO FIM        recebimentos no período (AAAA-MM-DD)
  pending CLIENTE_ID         parcelas em aberto de um cliente
  metrics                    requisições feitas nesta execução
`

// Output é o envelope impresso no stdout.
type Output struct {
	Route        string               `json:"route,omitempty"`
	Result       interface{}          `json:"result,omitempty"`
	Notification *domain.Notification `json:"notification,omitempty"`
}

type command struct {
	route string // tela montada antes de executar; vazio não passa por guarda
	args  int    // mínimo de argumentos
	run   func(ctx context.Context, a *app.App, args []string) (interface{}, error)
}

var commands = map[string]command{
	"login": {route: guard.LoginRoute, args: 2, run: runLogin},
	"logout": {args: 0, run: func(ctx context.Context, a *app.App, _ []string) (interface{}, error) {
		next, err := a.Auth.Logout(ctx)
		return map[string]string{"next": next}, err
	}},
	"whoami": {route: "/profile", run: func(_ context.Context, a *app.App, _ []string) (interface{}, error) {
		return a.Session.State().User, nil
	}},
	"clients": {route: "/clients", run: func(ctx context.Context, a *app.App, args []string) (interface{}, error) {
		return a.Clientes.List(ctx, optional(args))
	}},
	"carnes": {route: "/carnes", run: func(ctx context.Context, a *app.App, args []string) (interface{}, error) {
		return a.Carnes.List(ctx, domain.CarneFilter{SearchQuery: optional(args)})
	}},
	"produtos": {route: "/produtos", run: func(ctx context.Context, a *app.App, args []string) (interface{}, error) {
		return a.Produtos.List(ctx, optional(args))
	}},
	"dashboard": {route: "/dashboard", run: func(ctx context.Context, a *app.App, _ []string) (interface{}, error) {
		return a.Reports.Dashboard(ctx)
	}},
	"receipts": {route: "/reports/receipts", args: 2, run: func(ctx context.Context, a *app.App, args []string) (interface{}, error) {
		return a.Reports.Receipts(ctx, domain.ReceiptsFilter{StartDate: args[0], EndDate: args[1]})
	}},
	"pending": {args: 1, run: runPending},
	"metrics": {run: func(_ context.Context, a *app.App, _ []string) (interface{}, error) {
		return requestCounts(a)
	}},
}

// Run executa um subcomando e escreve o resultado em out. Devolve o código de saída.
func Run(ctx context.Context, a *app.App, args []string, out io.Writer) int {
	if len(args) == 0 {
		fmt.Fprint(out, Usage)
		return ExitUsage
	}
	cmd, ok := commands[args[0]]
	if !ok || len(args)-1 < cmd.args {
		fmt.Fprint(out, Usage)
		return ExitUsage
	}

	var result Output
	if cmd.route != "" {
		view, err := a.Navigator.Navigate(cmd.route)
		if err != nil {
			return finish(out, a, result, err)
		}
		result.Route = view.Path
		if view.Path != cmd.route {
			return finish(out, a, result, redirected(a, view.Path))
		}
	}

	value, err := cmd.run(ctx, a, args[1:])
	result.Result = value
	if err == nil {
		if next := a.Navigator.Current().Path; next != "" {
			result.Route = next
		}
	}
	return finish(out, a, result, err)
}

func runLogin(ctx context.Context, a *app.App, args []string) (interface{}, error) {
	next, err := a.Auth.Login(ctx, args[0], args[1])
	if err != nil {
		return nil, err
	}
	if _, err := a.Navigator.Navigate(next); err != nil {
		return nil, err
	}
	return a.Session.State().User, nil
}

func runPending(ctx context.Context, a *app.App, args []string) (interface{}, error) {
	id, err := strconv.Atoi(args[0])
	if err != nil {
		return nil, apperror.NewValidationError("CLIENTE_ID deve ser numérico.")
	}
	path := fmt.Sprintf("/reports/pending-debts/%d", id)
	view, err := a.Navigator.Navigate(path)
	if err != nil {
		return nil, err
	}
	if view.Path != path {
		return nil, redirected(a, view.Path)
	}
	return a.Reports.PendingDebts(ctx, id)
}

// redirected explica por que a guarda não montou a tela pedida.
func redirected(a *app.App, to string) error {
	if to == guard.LoginRoute {
		return apperror.NewUnauthorizedError("Faça login para continuar.")
	}
	if n, ok := a.Notifications.Current(); ok {
		return apperror.NewForbiddenError(n.Message)
	}
	return apperror.NewForbiddenError(guard.AdminDeniedMessage)
}

func finish(out io.Writer, a *app.App, result Output, err error) int {
	if n, ok := a.Notifications.Current(); ok {
		result.Notification = &n
	} else if err != nil {
		n := apperror.NotificationFor(err)
		result.Notification = &n
	}

	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	if encErr := enc.Encode(result); encErr != nil {
		a.Logger.Error("Falha ao escrever a saída.", encErr)
		return ExitError
	}

	if err != nil {
		return ExitError
	}
	return ExitOK
}

func optional(args []string) string {
	return strings.TrimSpace(strings.Join(args, " "))
}

// requestCounts lê o contador de requisições do cliente no registro da App.
func requestCounts(a *app.App) (map[string]float64, error) {
	families, err := a.Registry.Gather()
	if err != nil {
		return nil, apperror.NewInternalError("falha ao coletar métricas", err)
	}

	counts := make(map[string]float64)
	for _, mf := range families {
		if mf.GetName() != "gocarne_client_requests_total" {
			continue
		}
		for _, m := range mf.GetMetric() {
			labels := make([]string, 0, len(m.GetLabel()))
			for _, l := range m.GetLabel() {
				labels = append(labels, l.GetName()+"="+l.GetValue())
			}
			sort.Strings(labels)
			counts[strings.Join(labels, ",")] = m.GetCounter().GetValue()
		}
	}
	return counts, nil
}
