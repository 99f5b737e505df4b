package fakeapi

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/mux"

	"gocarne/internal/domain"
	apperror "gocarne/internal/errors"
	"gocarne/internal/pkg/logger"
	"gocarne/internal/pkg/middleware"
)

// TokenService define o contrato de emissão de tokens usado no login.
type TokenService interface {
	GenerateToken(userID int, email string, perfil string) (string, error)
}

// Handler agrupa os handlers HTTP do backend de desenvolvimento.
type Handler struct {
	Store  *Store
	Tokens TokenService
	Logger logger.Logger
}

// NewHandler cria uma nova instância do Handler.
func NewHandler(store *Store, tokens TokenService, log logger.Logger) *Handler {
	return &Handler{Store: store, Tokens: tokens, Logger: log}
}

// respond padroniza a resposta: JSON em sucesso, {"detail"} em erro.
func (h *Handler) respond(w http.ResponseWriter, r *http.Request, data interface{}, err error, successStatus int) {
	if err != nil {
		if status, _, _ := apperror.Describe(err); status >= 500 {
			h.Logger.Error("Erro interno no backend fake: "+r.Method+" "+r.URL.Path, err)
		}
		middleware.WriteError(w, err)
		return
	}

	if data == nil {
		w.WriteHeader(successStatus)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(successStatus)
	json.NewEncoder(w).Encode(data)
}

func decode(r *http.Request, v interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return apperror.NewValidationError("Payload JSON inválido.")
	}
	return nil
}

func pathID(r *http.Request) (int, error) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil || id <= 0 {
		return 0, apperror.NewValidationError("ID inválido.")
	}
	return id, nil
}

func currentUserID(r *http.Request) int {
	claims, _ := middleware.GetUserClaimsFromContext(r.Context())
	return claims.UserID
}

// --- Autenticação ---

// Login lida com POST /token.
// @Summary Autentica um usuário e retorna um JWT
// @Description Recebe username (email) e password como form-urlencoded e emite um token Bearer.
// @Tags auth
// @Accept x-www-form-urlencoded
// @Produce json
// @Param username formData string true "Email"
// @Param password formData string true "Senha"
// @Success 200 {object} domain.TokenResponse
// @Failure 401 {object} domain.ErrorResponse "Credenciais inválidas"
// @Router /token [post]
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.respond(w, r, nil, apperror.NewValidationError("Formulário inválido."), http.StatusOK)
		return
	}

	user, err := h.Store.Authenticate(r.PostForm.Get("username"), r.PostForm.Get("password"))
	if err != nil {
		h.Logger.Warn("Tentativa de login rejeitada.", map[string]interface{}{"username": r.PostForm.Get("username")})
		h.respond(w, r, nil, err, http.StatusOK)
		return
	}

	tok, err := h.Tokens.GenerateToken(user.ID, user.Email, string(user.Perfil))
	if err != nil {
		h.respond(w, r, nil, apperror.NewInternalError("Falha ao gerar token.", err), http.StatusOK)
		return
	}
	h.respond(w, r, domain.TokenResponse{AccessToken: tok, TokenType: "bearer", User: user}, nil, http.StatusOK)
}

// Me lida com GET /me.
// @Summary Usuário autenticado
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} domain.User
// @Failure 401 {object} domain.ErrorResponse
// @Router /me [get]
func (h *Handler) Me(w http.ResponseWriter, r *http.Request) {
	user, err := h.Store.GetUser(currentUserID(r))
	h.respond(w, r, user, err, http.StatusOK)
}

// UpdateMe lida com PUT /me.
// @Summary Edita o próprio perfil
// @Tags auth
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param profile body domain.ProfileInput true "Campos alterados"
// @Success 200 {object} domain.User
// @Failure 409 {object} domain.ErrorResponse "Email já cadastrado"
// @Router /me [put]
func (h *Handler) UpdateMe(w http.ResponseWriter, r *http.Request) {
	var in domain.ProfileInput
	if err := decode(r, &in); err != nil {
		h.respond(w, r, nil, err, http.StatusOK)
		return
	}
	user, err := h.Store.UpdateUser(currentUserID(r), in)
	h.respond(w, r, user, err, http.StatusOK)
}

// Register lida com POST /register. Cadastros públicos são sempre atendentes.
// @Summary Cadastro público
// @Tags auth
// @Accept json
// @Produce json
// @Param registration body domain.Registration true "Dados do usuário"
// @Success 201 {object} domain.User
// @Failure 409 {object} domain.ErrorResponse "Email já cadastrado"
// @Router /register [post]
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	h.register(w, r, func(domain.Registration) domain.Perfil { return domain.PerfilAtendente })
}

// RegisterAdmin lida com POST /register-admin. O perfil vem do payload (padrão admin).
// @Summary Cadastro de usuário por um administrador
// @Tags auth
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param registration body domain.Registration true "Dados do usuário"
// @Success 201 {object} domain.User
// @Failure 403 {object} domain.ErrorResponse
// @Router /register-admin [post]
func (h *Handler) RegisterAdmin(w http.ResponseWriter, r *http.Request) {
	h.register(w, r, func(reg domain.Registration) domain.Perfil {
		if reg.Perfil == "" {
			return domain.PerfilAdmin
		}
		return reg.Perfil
	})
}

// RegisterAtendente lida com POST /register-atendente.
// @Summary Cadastro de atendente por um administrador
// @Tags auth
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param registration body domain.Registration true "Dados do usuário"
// @Success 201 {object} domain.User
// @Failure 403 {object} domain.ErrorResponse
// @Router /register-atendente [post]
func (h *Handler) RegisterAtendente(w http.ResponseWriter, r *http.Request) {
	h.register(w, r, func(domain.Registration) domain.Perfil { return domain.PerfilAtendente })
}

func (h *Handler) register(w http.ResponseWriter, r *http.Request, perfil func(domain.Registration) domain.Perfil) {
	var reg domain.Registration
	if err := decode(r, &reg); err != nil {
		h.respond(w, r, nil, err, http.StatusCreated)
		return
	}

	user, err := h.Store.CreateUser(reg, perfil(reg))
	if err == nil {
		h.Logger.Info("Usuário cadastrado.", map[string]interface{}{"user_id": user.ID, "perfil": user.Perfil})
	}
	h.respond(w, r, user, err, http.StatusCreated)
}

// --- Clientes ---

// ListClientes lida com GET /clients/.
// @Summary Lista clientes
// @Tags clients
// @Produce json
// @Security BearerAuth
// @Param search_query query string false "Busca por nome, CPF/CNPJ, email ou telefone"
// @Success 200 {array} domain.Cliente
// @Router /clients/ [get]
func (h *Handler) ListClientes(w http.ResponseWriter, r *http.Request) {
	h.respond(w, r, h.Store.ListClientes(r.URL.Query().Get("search_query")), nil, http.StatusOK)
}

// GetCliente lida com GET /clients/{id}.
// @Summary Busca um cliente
// @Tags clients
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID do cliente"
// @Success 200 {object} domain.Cliente
// @Failure 404 {object} domain.ErrorResponse
// @Router /clients/{id} [get]
func (h *Handler) GetCliente(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.respond(w, r, nil, err, http.StatusOK)
		return
	}
	c, err := h.Store.GetCliente(id)
	h.respond(w, r, c, err, http.StatusOK)
}

// CreateCliente lida com POST /clients/.
// @Summary Cadastra um cliente
// @Tags clients
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param cliente body domain.ClienteInput true "Dados do cliente"
// @Success 201 {object} domain.Cliente
// @Failure 409 {object} domain.ErrorResponse "CPF/CNPJ já cadastrado"
// @Router /clients/ [post]
func (h *Handler) CreateCliente(w http.ResponseWriter, r *http.Request) {
	var in domain.ClienteInput
	if err := decode(r, &in); err != nil {
		h.respond(w, r, nil, err, http.StatusCreated)
		return
	}
	c, err := h.Store.CreateCliente(in)
	h.respond(w, r, c, err, http.StatusCreated)
}

// UpdateCliente lida com PUT /clients/{id}.
// @Summary Edita um cliente
// @Tags clients
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID do cliente"
// @Param cliente body domain.ClienteInput true "Dados do cliente"
// @Success 200 {object} domain.Cliente
// @Router /clients/{id} [put]
func (h *Handler) UpdateCliente(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.respond(w, r, nil, err, http.StatusOK)
		return
	}
	var in domain.ClienteInput
	if err := decode(r, &in); err != nil {
		h.respond(w, r, nil, err, http.StatusOK)
		return
	}
	c, err := h.Store.UpdateCliente(id, in)
	h.respond(w, r, c, err, http.StatusOK)
}

// DeleteCliente lida com DELETE /clients/{id}. Remove também carnês, parcelas e pagamentos.
// @Summary Exclui um cliente
// @Tags clients
// @Security BearerAuth
// @Param id path int true "ID do cliente"
// @Success 204
// @Router /clients/{id} [delete]
func (h *Handler) DeleteCliente(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err == nil {
		err = h.Store.DeleteCliente(id)
	}
	h.respond(w, r, nil, err, http.StatusNoContent)
}

// ClienteSummary lida com GET /clients/{id}/summary.
// @Summary Resumo financeiro do cliente
// @Tags clients
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID do cliente"
// @Success 200 {object} domain.ClienteSummary
// @Router /clients/{id}/summary [get]
func (h *Handler) ClienteSummary(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.respond(w, r, nil, err, http.StatusOK)
		return
	}
	s, err := h.Store.ClienteSummary(id)
	h.respond(w, r, s, err, http.StatusOK)
}

// --- Carnês ---

// ListCarnes lida com GET /carnes/.
// @Summary Lista carnês
// @Tags carnes
// @Produce json
// @Security BearerAuth
// @Param cliente_id query int false "Filtra por cliente"
// @Param status_carne query string false "Ativo, Quitado, Em Atraso ou Cancelado"
// @Param data_vencimento_inicio query string false "YYYY-MM-DD"
// @Param data_vencimento_fim query string false "YYYY-MM-DD"
// @Param search_query query string false "Busca por cliente ou observações"
// @Success 200 {array} domain.Carne
// @Router /carnes/ [get]
func (h *Handler) ListCarnes(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	f := domain.CarneFilter{
		Status:          q.Get("status_carne"),
		DataVencimentoI: q.Get("data_vencimento_inicio"),
		DataVencimentoF: q.Get("data_vencimento_fim"),
		SearchQuery:     q.Get("search_query"),
	}
	if raw := q.Get("cliente_id"); raw != "" {
		id, err := strconv.Atoi(raw)
		if err != nil {
			h.respond(w, r, nil, apperror.NewValidationError("cliente_id inválido."), http.StatusOK)
			return
		}
		f.ClienteID = id
	}
	h.respond(w, r, h.Store.ListCarnes(f), nil, http.StatusOK)
}

// GetCarne lida com GET /carnes/{id}.
// @Summary Busca um carnê com cliente e parcelas
// @Tags carnes
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID do carnê"
// @Success 200 {object} domain.Carne
// @Failure 404 {object} domain.ErrorResponse
// @Router /carnes/{id} [get]
func (h *Handler) GetCarne(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.respond(w, r, nil, err, http.StatusOK)
		return
	}
	c, err := h.Store.GetCarne(id)
	h.respond(w, r, c, err, http.StatusOK)
}

// CreateCarne lida com POST /carnes/.
// @Summary Cria um carnê e gera as parcelas
// @Tags carnes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param carne body domain.CarneInput true "Dados do carnê"
// @Success 201 {object} domain.Carne
// @Failure 400 {object} domain.ErrorResponse
// @Router /carnes/ [post]
func (h *Handler) CreateCarne(w http.ResponseWriter, r *http.Request) {
	var in domain.CarneInput
	if err := decode(r, &in); err != nil {
		h.respond(w, r, nil, err, http.StatusCreated)
		return
	}
	c, err := h.Store.CreateCarne(in)
	if err == nil {
		h.Logger.Debug("Carnê criado.", map[string]interface{}{"carne_id": c.ID, "parcelas": len(c.Parcelas)})
	}
	h.respond(w, r, c, err, http.StatusCreated)
}

// UpdateCarne lida com PUT /carnes/{id}.
// @Summary Edita um carnê
// @Tags carnes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID do carnê"
// @Param carne body domain.CarneInput true "Dados do carnê"
// @Success 200 {object} domain.Carne
// @Router /carnes/{id} [put]
func (h *Handler) UpdateCarne(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.respond(w, r, nil, err, http.StatusOK)
		return
	}
	var in domain.CarneInput
	if err := decode(r, &in); err != nil {
		h.respond(w, r, nil, err, http.StatusOK)
		return
	}
	c, err := h.Store.UpdateCarne(id, in)
	h.respond(w, r, c, err, http.StatusOK)
}

// DeleteCarne lida com DELETE /carnes/{id}.
// @Summary Exclui um carnê
// @Tags carnes
// @Security BearerAuth
// @Param id path int true "ID do carnê"
// @Success 204
// @Router /carnes/{id} [delete]
func (h *Handler) DeleteCarne(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err == nil {
		err = h.Store.DeleteCarne(id)
	}
	h.respond(w, r, nil, err, http.StatusNoContent)
}

// --- Parcelas e pagamentos ---

// ListParcelas lida com GET /carnes/{id}/parcelas.
// @Summary Parcelas de um carnê
// @Tags parcelas
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID do carnê"
// @Success 200 {array} domain.Parcela
// @Router /carnes/{id}/parcelas [get]
func (h *Handler) ListParcelas(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.respond(w, r, nil, err, http.StatusOK)
		return
	}
	ps, err := h.Store.ListParcelas(id)
	h.respond(w, r, ps, err, http.StatusOK)
}

// GetParcela lida com GET /carnes/parcelas/{id}.
// @Summary Busca uma parcela
// @Tags parcelas
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID da parcela"
// @Success 200 {object} domain.Parcela
// @Router /carnes/parcelas/{id} [get]
func (h *Handler) GetParcela(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.respond(w, r, nil, err, http.StatusOK)
		return
	}
	p, err := h.Store.GetParcela(id)
	h.respond(w, r, p, err, http.StatusOK)
}

// UpdateParcela lida com PUT /carnes/parcelas/{id}.
// @Summary Edita uma parcela
// @Tags parcelas
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID da parcela"
// @Param parcela body domain.ParcelaUpdate true "Campos alterados"
// @Success 200 {object} domain.Parcela
// @Router /carnes/parcelas/{id} [put]
func (h *Handler) UpdateParcela(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.respond(w, r, nil, err, http.StatusOK)
		return
	}
	var in domain.ParcelaUpdate
	if err := decode(r, &in); err != nil {
		h.respond(w, r, nil, err, http.StatusOK)
		return
	}
	p, err := h.Store.UpdateParcela(id, in)
	h.respond(w, r, p, err, http.StatusOK)
}

// DeleteParcela lida com DELETE /carnes/parcelas/{id}.
// @Summary Exclui uma parcela
// @Tags parcelas
// @Security BearerAuth
// @Param id path int true "ID da parcela"
// @Success 204
// @Router /carnes/parcelas/{id} [delete]
func (h *Handler) DeleteParcela(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err == nil {
		err = h.Store.DeleteParcela(id)
	}
	h.respond(w, r, nil, err, http.StatusNoContent)
}

// RenegotiateParcela lida com POST /carnes/parcelas/{id}/renegotiate.
// @Summary Renegocia vencimento e valor de uma parcela
// @Tags parcelas
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID da parcela"
// @Param renegociacao body domain.RenegotiateInput true "Novo vencimento e valor"
// @Success 200 {object} domain.Parcela
// @Router /carnes/parcelas/{id}/renegotiate [post]
func (h *Handler) RenegotiateParcela(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.respond(w, r, nil, err, http.StatusOK)
		return
	}
	var in domain.RenegotiateInput
	if err := decode(r, &in); err != nil {
		h.respond(w, r, nil, err, http.StatusOK)
		return
	}
	p, err := h.Store.RenegotiateParcela(id, in)
	h.respond(w, r, p, err, http.StatusOK)
}

// ListPagamentos lida com GET /carnes/parcelas/{id}/pagamentos.
// @Summary Pagamentos de uma parcela
// @Tags pagamentos
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID da parcela"
// @Success 200 {array} domain.Pagamento
// @Router /carnes/parcelas/{id}/pagamentos [get]
func (h *Handler) ListPagamentos(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.respond(w, r, nil, err, http.StatusOK)
		return
	}
	ps, err := h.Store.ListPagamentos(id)
	h.respond(w, r, ps, err, http.StatusOK)
}

// RegisterPagamento lida com POST /carnes/pagamentos/.
// @Summary Registra um pagamento
// @Tags pagamentos
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param pagamento body domain.PagamentoInput true "Dados do pagamento"
// @Success 201 {object} domain.Pagamento
// @Failure 400 {object} domain.ErrorResponse "Valor excede o saldo devedor"
// @Router /carnes/pagamentos/ [post]
func (h *Handler) RegisterPagamento(w http.ResponseWriter, r *http.Request) {
	var in domain.PagamentoInput
	if err := decode(r, &in); err != nil {
		h.respond(w, r, nil, err, http.StatusCreated)
		return
	}
	pay, err := h.Store.RegisterPagamento(in, currentUserID(r))
	h.respond(w, r, pay, err, http.StatusCreated)
}

// ReversePagamento lida com DELETE /carnes/pagamentos/{id}. Apenas administradores.
// @Summary Estorna um pagamento
// @Tags pagamentos
// @Security BearerAuth
// @Param id path int true "ID do pagamento"
// @Success 204
// @Failure 403 {object} domain.ErrorResponse
// @Router /carnes/pagamentos/{id} [delete]
func (h *Handler) ReversePagamento(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err == nil {
		err = h.Store.ReversePagamento(id)
	}
	if err == nil {
		h.Logger.Info("Pagamento estornado.", map[string]interface{}{"pagamento_id": id, "user_id": currentUserID(r)})
	}
	h.respond(w, r, nil, err, http.StatusNoContent)
}

// --- Relatórios ---

// Dashboard lida com GET /reports/dashboard/summary.
// @Summary Indicadores do painel
// @Tags reports
// @Produce json
// @Security BearerAuth
// @Success 200 {object} domain.DashboardSummary
// @Router /reports/dashboard/summary [get]
func (h *Handler) Dashboard(w http.ResponseWriter, r *http.Request) {
	h.respond(w, r, h.Store.Dashboard(), nil, http.StatusOK)
}

// Receipts lida com GET /reports/receipts.
// @Summary Recebimentos no período
// @Tags reports
// @Produce json
// @Security BearerAuth
// @Param start_date query string true "YYYY-MM-DD"
// @Param end_date query string true "YYYY-MM-DD"
// @Success 200 {object} domain.ReceiptsReport
// @Router /reports/receipts [get]
func (h *Handler) Receipts(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	report, err := h.Store.Receipts(q.Get("start_date"), q.Get("end_date"))
	h.respond(w, r, report, err, http.StatusOK)
}

// PendingDebts lida com GET /reports/pending-debts-by-client/{id}.
// @Summary Parcelas em aberto de um cliente
// @Tags reports
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID do cliente"
// @Success 200 {object} domain.PendingDebtsReport
// @Router /reports/pending-debts-by-client/{id} [get]
func (h *Handler) PendingDebts(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.respond(w, r, nil, err, http.StatusOK)
		return
	}
	report, err := h.Store.PendingDebts(id)
	h.respond(w, r, report, err, http.StatusOK)
}

// --- Produtos ---

// ListProdutos lida com GET /api/produtos/.
// @Summary Lista produtos
// @Tags produtos
// @Produce json
// @Security BearerAuth
// @Param q query string false "Busca por nome, categoria, marca ou IMEI"
// @Success 200 {array} domain.Produto
// @Router /api/produtos/ [get]
func (h *Handler) ListProdutos(w http.ResponseWriter, r *http.Request) {
	h.respond(w, r, h.Store.ListProdutos(r.URL.Query().Get("q")), nil, http.StatusOK)
}

// GetProduto lida com GET /api/produtos/{id}.
// @Summary Busca um produto
// @Tags produtos
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID do produto"
// @Success 200 {object} domain.Produto
// @Router /api/produtos/{id} [get]
func (h *Handler) GetProduto(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.respond(w, r, nil, err, http.StatusOK)
		return
	}
	p, err := h.Store.GetProduto(id)
	h.respond(w, r, p, err, http.StatusOK)
}

// CreateProduto lida com POST /api/produtos/.
// @Summary Cadastra um produto
// @Tags produtos
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param produto body domain.ProdutoInput true "Dados do produto"
// @Success 201 {object} domain.Produto
// @Router /api/produtos/ [post]
func (h *Handler) CreateProduto(w http.ResponseWriter, r *http.Request) {
	var in domain.ProdutoInput
	if err := decode(r, &in); err != nil {
		h.respond(w, r, nil, err, http.StatusCreated)
		return
	}
	p, err := h.Store.SaveProduto(0, in)
	h.respond(w, r, p, err, http.StatusCreated)
}

// UpdateProduto lida com PUT /api/produtos/{id}.
// @Summary Edita um produto
// @Tags produtos
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID do produto"
// @Param produto body domain.ProdutoInput true "Dados do produto"
// @Success 200 {object} domain.Produto
// @Router /api/produtos/{id} [put]
func (h *Handler) UpdateProduto(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.respond(w, r, nil, err, http.StatusOK)
		return
	}
	var in domain.ProdutoInput
	if err := decode(r, &in); err != nil {
		h.respond(w, r, nil, err, http.StatusOK)
		return
	}
	p, err := h.Store.SaveProduto(id, in)
	h.respond(w, r, p, err, http.StatusOK)
}

// DeleteProduto lida com DELETE /api/produtos/{id}.
// @Summary Exclui um produto
// @Tags produtos
// @Security BearerAuth
// @Param id path int true "ID do produto"
// @Success 204
// @Router /api/produtos/{id} [delete]
func (h *Handler) DeleteProduto(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err == nil {
		err = h.Store.DeleteProduto(id)
	}
	h.respond(w, r, nil, err, http.StatusNoContent)
}

// Ping é o health check.
func Ping(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("pong"))
}

// seedAdmin garante um administrador inicial para o primeiro login.
func seedAdmin(store *Store, email, password string, log logger.Logger) {
	if strings.TrimSpace(email) == "" || password == "" {
		return
	}
	_, err := store.CreateUser(domain.Registration{Nome: "Administrador", Email: email, Password: password}, domain.PerfilAdmin)
	if err != nil {
		log.Warn("Administrador inicial não criado.", map[string]interface{}{"email": email, "error": err.Error()})
		return
	}
	log.Info("Administrador inicial criado.", map[string]interface{}{"email": email})
}
