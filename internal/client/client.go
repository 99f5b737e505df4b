package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sony/gobreaker"

	apperror "gocarne/internal/errors"
	"gocarne/internal/pkg/logger"
	"gocarne/internal/pkg/storage"
)

// Options configura o Client.
type Options struct {
	BaseURL    string
	Timeout    time.Duration
	HTTPClient *http.Client              // opcional; substitui o http.Client padrão
	Breaker    *gobreaker.CircuitBreaker // opcional; nil desliga o circuit breaker
	Metrics    *Metrics                  // opcional
	Logger     logger.Logger
}

// Client despacha as requisições para a API de carnês.
// Cada chamada é uma única ida e volta: sem retry, sem fila, sem cache.
type Client struct {
	baseURL string
	http    *http.Client
	store   storage.Storage
	breaker *gobreaker.CircuitBreaker
	metrics *Metrics
	logger  logger.Logger

	Auth       *AuthAPI
	Clientes   *ClientesAPI
	Carnes     *CarnesAPI
	Parcelas   *ParcelasAPI
	Pagamentos *PagamentosAPI
	Reports    *ReportsAPI
	Produtos   *ProdutosAPI
}

// New cria o Client. O token é lido de store a cada requisição.
func New(opts Options, store storage.Storage) *Client {
	httpClient := opts.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: opts.Timeout}
	}
	log := opts.Logger
	if log == nil {
		log = logger.NewNopLogger()
	}

	c := &Client{
		baseURL: strings.TrimRight(opts.BaseURL, "/"),
		http:    httpClient,
		store:   store,
		breaker: opts.Breaker,
		metrics: opts.Metrics,
		logger:  log,
	}
	c.Auth = &AuthAPI{c: c}
	c.Clientes = &ClientesAPI{c: c}
	c.Carnes = &CarnesAPI{c: c}
	c.Parcelas = &ParcelasAPI{c: c}
	c.Pagamentos = &PagamentosAPI{c: c}
	c.Reports = &ReportsAPI{c: c}
	c.Produtos = &ProdutosAPI{c: c}
	return c
}

// request descreve uma chamada. Body é serializado como JSON, a menos que Form esteja preenchido.
type request struct {
	group  string
	method string
	path   string
	query  url.Values
	body   interface{}
	form   url.Values
}

// errServerFailure marca respostas 5xx como falha para o circuit breaker.
var errServerFailure = errors.New("resposta 5xx")

func (c *Client) do(ctx context.Context, req request, out interface{}) error {
	httpReq, err := c.newRequest(ctx, req)
	if err != nil {
		return err
	}

	start := time.Now()
	resp, err := c.roundTrip(httpReq)
	if err != nil {
		c.metrics.observe(req.group, req.method, "error", time.Since(start))
		c.logger.Debug("Falha de comunicação com a API.", map[string]interface{}{
			"method": req.method, "path": req.path, "error": err.Error(),
		})
		return err
	}
	defer resp.Body.Close()
	c.metrics.observe(req.group, req.method, strconv.Itoa(resp.StatusCode), time.Since(start))

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return apperror.NewTransportError("falha ao ler resposta", err)
	}

	if resp.StatusCode >= 400 {
		apiErr := apperror.NewAPIError(resp.StatusCode, parseDetail(payload))
		c.logger.Debug("API respondeu com erro.", map[string]interface{}{
			"method": req.method, "path": req.path, "status": resp.StatusCode,
		})
		return apiErr
	}

	if out == nil || len(bytes.TrimSpace(payload)) == 0 {
		return nil
	}
	if err := json.Unmarshal(payload, out); err != nil {
		return apperror.NewInternalError(fmt.Sprintf("resposta inválida de %s %s", req.method, req.path), err)
	}
	return nil
}

func (c *Client) newRequest(ctx context.Context, req request) (*http.Request, error) {
	target := c.baseURL + req.path
	if len(req.query) > 0 {
		target += "?" + req.query.Encode()
	}

	var body io.Reader
	contentType := ""
	switch {
	case req.form != nil:
		body = strings.NewReader(req.form.Encode())
		contentType = "application/x-www-form-urlencoded"
	case req.body != nil:
		raw, err := json.Marshal(req.body)
		if err != nil {
			return nil, apperror.NewInternalError("falha ao serializar payload", err)
		}
		body = bytes.NewReader(raw)
		contentType = "application/json"
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.method, target, body)
	if err != nil {
		return nil, apperror.NewInternalError("falha ao montar requisição", err)
	}
	if contentType != "" {
		httpReq.Header.Set("Content-Type", contentType)
	}
	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set("X-Request-ID", uuid.NewString())

	if tok := c.currentToken(ctx); tok != "" {
		httpReq.Header.Set("Authorization", "Bearer "+tok)
	}
	return httpReq, nil
}

// currentToken lê o token persistido. Sem token a requisição segue sem autenticação.
func (c *Client) currentToken(ctx context.Context) string {
	tok, err := c.store.Get(ctx, storage.KeyToken)
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			c.logger.Warn("Falha ao ler token do armazenamento; requisição seguirá sem autenticação.", map[string]interface{}{"error": err.Error()})
		}
		return ""
	}
	return tok
}

func (c *Client) roundTrip(httpReq *http.Request) (*http.Response, error) {
	if c.breaker == nil {
		resp, err := c.http.Do(httpReq)
		if err != nil {
			return nil, apperror.NewTransportError(httpReq.Method+" "+httpReq.URL.Path, err)
		}
		return resp, nil
	}

	result, err := c.breaker.Execute(func() (interface{}, error) {
		resp, err := c.http.Do(httpReq)
		if err != nil {
			return nil, err
		}
		if resp.StatusCode >= 500 {
			return resp, errServerFailure
		}
		return resp, nil
	})

	switch {
	case err == nil, errors.Is(err, errServerFailure):
		return result.(*http.Response), nil
	case errors.Is(err, gobreaker.ErrOpenState), errors.Is(err, gobreaker.ErrTooManyRequests):
		return nil, apperror.NewAPIError(http.StatusServiceUnavailable, "Servidor indisponível no momento. Tente novamente em instantes.")
	default:
		return nil, apperror.NewTransportError(httpReq.Method+" "+httpReq.URL.Path, err)
	}
}

// parseDetail extrai a mensagem do corpo de erro.
// Aceita {"detail": "texto"} e a forma de lista de erros de validação {"detail": [{"msg": "..."}]}.
func parseDetail(payload []byte) string {
	var body struct {
		Detail json.RawMessage `json:"detail"`
	}
	if err := json.Unmarshal(payload, &body); err != nil || len(body.Detail) == 0 {
		return ""
	}

	var text string
	if err := json.Unmarshal(body.Detail, &text); err == nil {
		return text
	}

	var items []struct {
		Msg string `json:"msg"`
	}
	if err := json.Unmarshal(body.Detail, &items); err == nil && len(items) > 0 {
		return items[0].Msg
	}
	return ""
}

func idPath(format string, id int) string {
	return fmt.Sprintf(format, id)
}
