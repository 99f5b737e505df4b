package fakeapi

import (
	"fmt"
	"math"
	"sort"
	"strings"
	"sync"
	"time"

	"golang.org/x/crypto/bcrypt"

	"gocarne/internal/domain"
	apperror "gocarne/internal/errors"
)

// tolerance absorve arredondamento de centavos nas comparações de saldo.
const tolerance = 0.005

type userRecord struct {
	domain.User
	PasswordHash string
}

// Store guarda todos os dados do backend de desenvolvimento em memória.
// Juros e multa são sempre zero: não é uma referência de regras de negócio.
type Store struct {
	mu  sync.RWMutex
	now func() time.Time

	seq        map[string]int
	users      map[int]userRecord
	clientes   map[int]domain.Cliente
	carnes     map[int]domain.Carne
	parcelas   map[int]domain.Parcela
	pagamentos map[int]domain.Pagamento
	produtos   map[int]domain.Produto
}

// NewStore cria um Store vazio.
func NewStore() *Store {
	return &Store{
		now:        time.Now,
		seq:        make(map[string]int),
		users:      make(map[int]userRecord),
		clientes:   make(map[int]domain.Cliente),
		carnes:     make(map[int]domain.Carne),
		parcelas:   make(map[int]domain.Parcela),
		pagamentos: make(map[int]domain.Pagamento),
		produtos:   make(map[int]domain.Produto),
	}
}

func (s *Store) nextID(kind string) int {
	s.seq[kind]++
	return s.seq[kind]
}

func (s *Store) today() string {
	return s.now().Format(domain.DateLayout)
}

// --- Usuários ---

// CreateUser grava o usuário com a senha em bcrypt.
func (s *Store) CreateUser(reg domain.Registration, perfil domain.Perfil) (domain.User, error) {
	email := strings.ToLower(strings.TrimSpace(reg.Email))
	if strings.TrimSpace(reg.Nome) == "" || email == "" || reg.Password == "" {
		return domain.User{}, apperror.NewValidationError("Nome, email e senha são obrigatórios.")
	}
	if !perfil.Valid() {
		return domain.User{}, apperror.NewValidationError("Perfil inválido.")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(reg.Password), bcrypt.DefaultCost)
	if err != nil {
		return domain.User{}, apperror.NewInternalError("Falha ao gerar hash da senha.", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if u.Email == email {
			return domain.User{}, apperror.NewConflictError("Email já cadastrado.")
		}
	}

	rec := userRecord{
		User:         domain.User{ID: s.nextID("user"), Nome: strings.TrimSpace(reg.Nome), Email: email, Perfil: perfil},
		PasswordHash: string(hash),
	}
	s.users[rec.ID] = rec
	return rec.User, nil
}

// Authenticate confere email e senha.
func (s *Store) Authenticate(email, password string) (domain.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	s.mu.RLock()
	var found *userRecord
	for _, u := range s.users {
		if u.Email == email {
			u := u
			found = &u
			break
		}
	}
	s.mu.RUnlock()

	if found == nil {
		return domain.User{}, apperror.NewUnauthorizedError("Email ou senha incorretos.")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(found.PasswordHash), []byte(password)); err != nil {
		return domain.User{}, apperror.NewUnauthorizedError("Email ou senha incorretos.")
	}
	return found.User, nil
}

// GetUser busca um usuário pelo ID.
func (s *Store) GetUser(id int) (domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.users[id]
	if !ok {
		return domain.User{}, apperror.NewUnauthorizedError("Usuário não encontrado.")
	}
	return u.User, nil
}

// UpdateUser edita nome, email e senha do próprio usuário.
func (s *Store) UpdateUser(id int, in domain.ProfileInput) (domain.User, error) {
	var hash []byte
	if in.Password != "" {
		var err error
		if hash, err = bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost); err != nil {
			return domain.User{}, apperror.NewInternalError("Falha ao gerar hash da senha.", err)
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.users[id]
	if !ok {
		return domain.User{}, apperror.NewNotFoundError("Usuário não encontrado.")
	}
	if in.Email != "" {
		email := strings.ToLower(strings.TrimSpace(in.Email))
		for otherID, u := range s.users {
			if otherID != id && u.Email == email {
				return domain.User{}, apperror.NewConflictError("Email já cadastrado.")
			}
		}
		rec.Email = email
	}
	if in.Nome != "" {
		rec.Nome = strings.TrimSpace(in.Nome)
	}
	if hash != nil {
		rec.PasswordHash = string(hash)
	}
	s.users[id] = rec
	return rec.User, nil
}

// --- Clientes ---

func (s *Store) ListClientes(search string) []domain.Cliente {
	s.mu.RLock()
	defer s.mu.RUnlock()

	search = strings.ToLower(strings.TrimSpace(search))
	out := make([]domain.Cliente, 0, len(s.clientes))
	for _, c := range s.clientes {
		if search == "" || containsFold(search, c.Nome, c.CPFCNPJ, c.Email, c.Telefone) {
			out = append(out, c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (s *Store) GetCliente(id int) (domain.Cliente, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	c, ok := s.clientes[id]
	if !ok {
		return domain.Cliente{}, apperror.NewNotFoundError("Cliente não encontrado.")
	}
	return c, nil
}

func (s *Store) CreateCliente(in domain.ClienteInput) (domain.Cliente, error) {
	if err := validateCliente(in); err != nil {
		return domain.Cliente{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.checkDocumentLocked(0, in.CPFCNPJ); err != nil {
		return domain.Cliente{}, err
	}
	c := clienteFromInput(s.nextID("cliente"), in)
	s.clientes[c.ID] = c
	return c, nil
}

func (s *Store) UpdateCliente(id int, in domain.ClienteInput) (domain.Cliente, error) {
	if err := validateCliente(in); err != nil {
		return domain.Cliente{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.clientes[id]; !ok {
		return domain.Cliente{}, apperror.NewNotFoundError("Cliente não encontrado.")
	}
	if err := s.checkDocumentLocked(id, in.CPFCNPJ); err != nil {
		return domain.Cliente{}, err
	}
	c := clienteFromInput(id, in)
	s.clientes[id] = c
	return c, nil
}

// DeleteCliente apaga o cliente e, em cascata, carnês, parcelas e pagamentos.
func (s *Store) DeleteCliente(id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.clientes[id]; !ok {
		return apperror.NewNotFoundError("Cliente não encontrado.")
	}
	for carneID, c := range s.carnes {
		if c.IDCliente == id {
			s.deleteCarneLocked(carneID)
		}
	}
	delete(s.clientes, id)
	return nil
}

func (s *Store) ClienteSummary(id int) (domain.ClienteSummary, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.clientes[id]; !ok {
		return domain.ClienteSummary{}, apperror.NewNotFoundError("Cliente não encontrado.")
	}

	summary := domain.ClienteSummary{ClienteID: id}
	for _, c := range s.carnes {
		if c.IDCliente != id {
			continue
		}
		c = s.refreshCarneLocked(c.ID)
		summary.TotalCarnes++
		switch c.StatusCarne {
		case domain.StatusCarneAtivo:
			summary.CarnesAtivos++
		case domain.StatusCarneQuitado:
			summary.CarnesQuitados++
		case domain.StatusCarneEmAtraso:
			summary.CarnesEmAtraso++
		}
		for _, p := range s.parcelasOfLocked(c.ID) {
			summary.ValorTotalDevido += p.ValorDevido
			summary.ValorTotalPago += p.ValorPago
			summary.SaldoDevedorTotal += p.SaldoDevedor
		}
	}
	summary.ValorTotalDevido = round2(summary.ValorTotalDevido)
	summary.ValorTotalPago = round2(summary.ValorTotalPago)
	summary.SaldoDevedorTotal = round2(summary.SaldoDevedorTotal)
	return summary, nil
}

func (s *Store) checkDocumentLocked(selfID int, doc string) error {
	doc = strings.TrimSpace(doc)
	for id, c := range s.clientes {
		if id != selfID && c.CPFCNPJ == doc {
			return apperror.NewConflictError("CPF/CNPJ já cadastrado.")
		}
	}
	return nil
}

func validateCliente(in domain.ClienteInput) error {
	if strings.TrimSpace(in.Nome) == "" || strings.TrimSpace(in.CPFCNPJ) == "" {
		return apperror.NewValidationError("Nome e CPF/CNPJ são obrigatórios.")
	}
	return nil
}

func clienteFromInput(id int, in domain.ClienteInput) domain.Cliente {
	return domain.Cliente{
		ID:       id,
		Nome:     strings.TrimSpace(in.Nome),
		CPFCNPJ:  strings.TrimSpace(in.CPFCNPJ),
		Endereco: in.Endereco,
		Telefone: in.Telefone,
		Email:    in.Email,
	}
}

// --- Carnês ---

func (s *Store) ListCarnes(f domain.CarneFilter) []domain.Carne {
	s.mu.Lock()
	defer s.mu.Unlock()

	search := strings.ToLower(strings.TrimSpace(f.SearchQuery))
	out := make([]domain.Carne, 0)
	for id := range s.carnes {
		c := s.refreshCarneLocked(id)
		if f.ClienteID != 0 && c.IDCliente != f.ClienteID {
			continue
		}
		if f.Status != "" && c.StatusCarne != f.Status {
			continue
		}
		if (f.DataVencimentoI != "" || f.DataVencimentoF != "") && !s.hasDueInRangeLocked(id, f.DataVencimentoI, f.DataVencimentoF) {
			continue
		}
		cliente := s.clientes[c.IDCliente]
		if search != "" && !containsFold(search, cliente.Nome, cliente.CPFCNPJ, c.Observacoes) {
			continue
		}
		c.Cliente = &cliente
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (s *Store) GetCarne(id int) (domain.Carne, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.carnes[id]; !ok {
		return domain.Carne{}, apperror.NewNotFoundError("Carnê não encontrado.")
	}
	return s.fullCarneLocked(id), nil
}

// CreateCarne grava o carnê e gera as parcelas iguais sobre o valor financiado (total - entrada).
func (s *Store) CreateCarne(in domain.CarneInput) (domain.Carne, error) {
	first, err := validateCarne(in)
	if err != nil {
		return domain.Carne{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.clientes[in.IDCliente]; !ok {
		return domain.Carne{}, apperror.NewNotFoundError("Cliente não encontrado.")
	}

	c := domain.Carne{ID: s.nextID("carne"), DataCriacao: s.today()}
	applyCarneInput(&c, in)
	s.carnes[c.ID] = c
	s.generateParcelasLocked(c, first)
	return s.fullCarneLocked(c.ID), nil
}

// UpdateCarne edita o carnê. Valores e datas só mudam enquanto não houver pagamento.
func (s *Store) UpdateCarne(id int, in domain.CarneInput) (domain.Carne, error) {
	first, err := validateCarne(in)
	if err != nil {
		return domain.Carne{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.carnes[id]
	if !ok {
		return domain.Carne{}, apperror.NewNotFoundError("Carnê não encontrado.")
	}
	if _, ok := s.clientes[in.IDCliente]; !ok {
		return domain.Carne{}, apperror.NewNotFoundError("Cliente não encontrado.")
	}

	scheduleChanged := c.ValorTotalOriginal != in.ValorTotalOriginal ||
		c.NumeroParcelas != in.NumeroParcelas ||
		c.ValorEntrada != in.ValorEntrada ||
		c.DataPrimeiroVencimento != in.DataPrimeiroVencimento ||
		c.FrequenciaPagamento != strings.ToLower(in.FrequenciaPagamento)

	if scheduleChanged && s.hasPaymentsLocked(id) {
		return domain.Carne{}, apperror.NewValidationError("Não é possível alterar valores de um carnê com pagamentos registrados.")
	}

	applyCarneInput(&c, in)
	s.carnes[id] = c
	if scheduleChanged {
		for pid, p := range s.parcelas {
			if p.IDCarne == id {
				delete(s.parcelas, pid)
			}
		}
		s.generateParcelasLocked(c, first)
	}
	return s.fullCarneLocked(id), nil
}

func (s *Store) DeleteCarne(id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.carnes[id]; !ok {
		return apperror.NewNotFoundError("Carnê não encontrado.")
	}
	s.deleteCarneLocked(id)
	return nil
}

func (s *Store) deleteCarneLocked(id int) {
	for pid, p := range s.parcelas {
		if p.IDCarne != id {
			continue
		}
		for payID, pay := range s.pagamentos {
			if pay.IDParcela == pid {
				delete(s.pagamentos, payID)
			}
		}
		delete(s.parcelas, pid)
	}
	delete(s.carnes, id)
}

func validateCarne(in domain.CarneInput) (time.Time, error) {
	switch {
	case in.IDCliente <= 0:
		return time.Time{}, apperror.NewValidationError("Cliente é obrigatório.")
	case in.ValorTotalOriginal <= 0:
		return time.Time{}, apperror.NewValidationError("O valor total deve ser maior que zero.")
	case in.NumeroParcelas < 1:
		return time.Time{}, apperror.NewValidationError("O número de parcelas deve ser pelo menos 1.")
	case in.ValorEntrada < 0 || in.ValorEntrada > in.ValorTotalOriginal:
		return time.Time{}, apperror.NewValidationError("O valor de entrada deve estar entre zero e o valor total.")
	}
	if _, ok := frequencyStep(in.FrequenciaPagamento); !ok {
		return time.Time{}, apperror.NewValidationError("Frequência de pagamento inválida.")
	}
	first, err := time.Parse(domain.DateLayout, in.DataPrimeiroVencimento)
	if err != nil {
		return time.Time{}, apperror.NewValidationError("Data do primeiro vencimento inválida.")
	}
	return first, nil
}

func applyCarneInput(c *domain.Carne, in domain.CarneInput) {
	c.IDCliente = in.IDCliente
	c.ValorTotalOriginal = round2(in.ValorTotalOriginal)
	c.NumeroParcelas = in.NumeroParcelas
	c.DataPrimeiroVencimento = in.DataPrimeiroVencimento
	c.FrequenciaPagamento = strings.ToLower(in.FrequenciaPagamento)
	c.Observacoes = in.Observacoes
	c.ValorEntrada = round2(in.ValorEntrada)
	c.FormaPagamentoEntrada = in.FormaPagamentoEntrada
	c.ValorParcelaOriginal = round2((c.ValorTotalOriginal - c.ValorEntrada) / float64(c.NumeroParcelas))
	if in.StatusCarne == domain.StatusCarneCancelado {
		c.StatusCarne = domain.StatusCarneCancelado
	} else if c.StatusCarne == "" || c.StatusCarne == domain.StatusCarneCancelado {
		c.StatusCarne = domain.StatusCarneAtivo
	}
}

// generateParcelasLocked cria as parcelas; a última absorve a diferença de centavos.
func (s *Store) generateParcelasLocked(c domain.Carne, first time.Time) {
	financed := round2(c.ValorTotalOriginal - c.ValorEntrada)
	if financed <= tolerance {
		return
	}

	each := round2(financed / float64(c.NumeroParcelas))
	step, _ := frequencyStep(c.FrequenciaPagamento)
	for i := 0; i < c.NumeroParcelas; i++ {
		valor := each
		if i == c.NumeroParcelas-1 {
			valor = round2(financed - each*float64(c.NumeroParcelas-1))
		}
		p := domain.Parcela{
			ID:             s.nextID("parcela"),
			IDCarne:        c.ID,
			NumeroParcela:  i + 1,
			ValorDevido:    valor,
			DataVencimento: step(first, i).Format(domain.DateLayout),
			SaldoDevedor:   valor,
		}
		s.parcelas[p.ID] = p
	}
}

func frequencyStep(freq string) (func(time.Time, int) time.Time, bool) {
	switch strings.ToLower(strings.TrimSpace(freq)) {
	case "mensal":
		return func(t time.Time, i int) time.Time { return t.AddDate(0, i, 0) }, true
	case "quinzenal":
		return func(t time.Time, i int) time.Time { return t.AddDate(0, 0, 15*i) }, true
	case "semanal":
		return func(t time.Time, i int) time.Time { return t.AddDate(0, 0, 7*i) }, true
	}
	return nil, false
}

// fullCarneLocked devolve o carnê com cliente e parcelas, status recalculados.
func (s *Store) fullCarneLocked(id int) domain.Carne {
	c := s.refreshCarneLocked(id)
	if cliente, ok := s.clientes[c.IDCliente]; ok {
		c.Cliente = &cliente
	}
	c.Parcelas = s.parcelasOfLocked(id)
	return c
}

// refreshCarneLocked recalcula o status de todas as parcelas e do carnê.
func (s *Store) refreshCarneLocked(id int) domain.Carne {
	c := s.carnes[id]
	parcelas := s.parcelasOfLocked(id)

	if c.StatusCarne == domain.StatusCarneCancelado {
		return c
	}

	paid, late := 0, false
	for _, p := range parcelas {
		switch p.StatusParcela {
		case domain.StatusParcelaPaga, domain.StatusParcelaPagaComAtraso:
			paid++
		case domain.StatusParcelaAtrasada:
			late = true
		case domain.StatusParcelaParcialmentePag:
			if p.DataVencimento < s.today() {
				late = true
			}
		}
	}
	switch {
	case paid == len(parcelas):
		c.StatusCarne = domain.StatusCarneQuitado
	case late:
		c.StatusCarne = domain.StatusCarneEmAtraso
	default:
		c.StatusCarne = domain.StatusCarneAtivo
	}
	s.carnes[id] = c
	return c
}

// parcelasOfLocked devolve as parcelas do carnê ordenadas, com saldo e status recalculados.
func (s *Store) parcelasOfLocked(carneID int) []domain.Parcela {
	out := make([]domain.Parcela, 0)
	for id, p := range s.parcelas {
		if p.IDCarne == carneID {
			out = append(out, s.refreshParcelaLocked(id))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].NumeroParcela < out[j].NumeroParcela })
	return out
}

func (s *Store) refreshParcelaLocked(id int) domain.Parcela {
	p := s.parcelas[id]

	pago, lastPayment := 0.0, ""
	for _, pay := range s.pagamentos {
		if pay.IDParcela == id {
			pago += pay.ValorPago
			if pay.DataPagamento > lastPayment {
				lastPayment = pay.DataPagamento
			}
		}
	}
	p.ValorPago = round2(pago)
	p.JurosMulta = 0
	p.SaldoDevedor = round2(math.Max(p.ValorDevido-p.ValorPago, 0))
	p.DataPagamentoCompleto = ""

	switch {
	case p.SaldoDevedor <= tolerance && lastPayment > p.DataVencimento:
		p.StatusParcela = domain.StatusParcelaPagaComAtraso
		p.DataPagamentoCompleto = lastPayment
	case p.SaldoDevedor <= tolerance:
		p.StatusParcela = domain.StatusParcelaPaga
		p.DataPagamentoCompleto = lastPayment
	case p.ValorPago > 0:
		p.StatusParcela = domain.StatusParcelaParcialmentePag
	case p.DataVencimento < s.today():
		p.StatusParcela = domain.StatusParcelaAtrasada
	default:
		p.StatusParcela = domain.StatusParcelaPendente
	}
	s.parcelas[id] = p
	return p
}

func (s *Store) hasPaymentsLocked(carneID int) bool {
	for _, pay := range s.pagamentos {
		if p, ok := s.parcelas[pay.IDParcela]; ok && p.IDCarne == carneID {
			return true
		}
	}
	return false
}

func (s *Store) hasDueInRangeLocked(carneID int, start, end string) bool {
	for _, p := range s.parcelas {
		if p.IDCarne != carneID {
			continue
		}
		if (start == "" || p.DataVencimento >= start) && (end == "" || p.DataVencimento <= end) {
			return true
		}
	}
	return false
}

// --- Parcelas ---

func (s *Store) ListParcelas(carneID int) ([]domain.Parcela, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.carnes[carneID]; !ok {
		return nil, apperror.NewNotFoundError("Carnê não encontrado.")
	}
	return s.parcelasOfLocked(carneID), nil
}

func (s *Store) GetParcela(id int) (domain.Parcela, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.parcelas[id]; !ok {
		return domain.Parcela{}, apperror.NewNotFoundError("Parcela não encontrada.")
	}
	return s.refreshParcelaLocked(id), nil
}

func (s *Store) UpdateParcela(id int, in domain.ParcelaUpdate) (domain.Parcela, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.parcelas[id]
	if !ok {
		return domain.Parcela{}, apperror.NewNotFoundError("Parcela não encontrada.")
	}
	if in.ValorDevido != nil {
		if *in.ValorDevido <= 0 {
			return domain.Parcela{}, apperror.NewValidationError("O valor devido deve ser maior que zero.")
		}
		p.ValorDevido = round2(*in.ValorDevido)
	}
	if in.DataVencimento != "" {
		if _, err := time.Parse(domain.DateLayout, in.DataVencimento); err != nil {
			return domain.Parcela{}, apperror.NewValidationError("Data de vencimento inválida.")
		}
		p.DataVencimento = in.DataVencimento
	}
	if in.Observacoes != "" {
		p.Observacoes = in.Observacoes
	}
	s.parcelas[id] = p
	s.refreshCarneLocked(p.IDCarne)
	return s.refreshParcelaLocked(id), nil
}

func (s *Store) DeleteParcela(id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.parcelas[id]
	if !ok {
		return apperror.NewNotFoundError("Parcela não encontrada.")
	}
	for payID, pay := range s.pagamentos {
		if pay.IDParcela == id {
			delete(s.pagamentos, payID)
		}
	}
	delete(s.parcelas, id)
	s.refreshCarneLocked(p.IDCarne)
	return nil
}

// RenegotiateParcela muda o vencimento e, opcionalmente, o valor devido.
func (s *Store) RenegotiateParcela(id int, in domain.RenegotiateInput) (domain.Parcela, error) {
	if _, err := time.Parse(domain.DateLayout, in.NovaDataVencimento); err != nil {
		return domain.Parcela{}, apperror.NewValidationError("Nova data de vencimento inválida.")
	}
	if in.NovoValorDevido != nil && *in.NovoValorDevido <= 0 {
		return domain.Parcela{}, apperror.NewValidationError("O novo valor devido deve ser maior que zero.")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.parcelas[id]
	if !ok {
		return domain.Parcela{}, apperror.NewNotFoundError("Parcela não encontrada.")
	}
	p = s.refreshParcelaLocked(id)
	if p.SaldoDevedor <= tolerance {
		return domain.Parcela{}, apperror.NewValidationError("Parcela já quitada não pode ser renegociada.")
	}

	note := fmt.Sprintf("Renegociada em %s: vencimento %s -> %s", s.today(), p.DataVencimento, in.NovaDataVencimento)
	p.DataVencimento = in.NovaDataVencimento
	if in.NovoValorDevido != nil {
		note += fmt.Sprintf(", valor %.2f -> %.2f", p.ValorDevido, *in.NovoValorDevido)
		p.ValorDevido = round2(*in.NovoValorDevido)
	}
	if in.Observacoes != "" {
		note += ". " + in.Observacoes
	}
	p.Observacoes = strings.TrimSpace(p.Observacoes + "\n" + note)
	s.parcelas[id] = p
	s.refreshCarneLocked(p.IDCarne)
	return s.refreshParcelaLocked(id), nil
}

// --- Pagamentos ---

func (s *Store) RegisterPagamento(in domain.PagamentoInput, userID int) (domain.Pagamento, error) {
	if in.ValorPago <= 0 {
		return domain.Pagamento{}, apperror.NewValidationError("O valor pago deve ser maior que zero.")
	}
	if strings.TrimSpace(in.FormaPagamento) == "" {
		return domain.Pagamento{}, apperror.NewValidationError("A forma de pagamento é obrigatória.")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.parcelas[in.IDParcela]; !ok {
		return domain.Pagamento{}, apperror.NewNotFoundError("Parcela não encontrada.")
	}
	p := s.refreshParcelaLocked(in.IDParcela)
	if in.ValorPago > p.SaldoDevedor+tolerance {
		return domain.Pagamento{}, apperror.NewValidationError(fmt.Sprintf("Valor pago excede o saldo devedor da parcela (%.2f).", p.SaldoDevedor))
	}

	date := in.DataPagamento
	if date == "" {
		date = s.today()
	} else if _, err := time.Parse(domain.DateLayout, date); err != nil {
		return domain.Pagamento{}, apperror.NewValidationError("Data de pagamento inválida.")
	}

	pay := domain.Pagamento{
		ID:                s.nextID("pagamento"),
		IDParcela:         in.IDParcela,
		DataPagamento:     date,
		ValorPago:         round2(in.ValorPago),
		FormaPagamento:    strings.TrimSpace(in.FormaPagamento),
		Observacoes:       in.Observacoes,
		IDUsuarioRegistro: userID,
	}
	s.pagamentos[pay.ID] = pay
	s.refreshParcelaLocked(in.IDParcela)
	s.refreshCarneLocked(p.IDCarne)
	return pay, nil
}

func (s *Store) ListPagamentos(parcelaID int) ([]domain.Pagamento, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if _, ok := s.parcelas[parcelaID]; !ok {
		return nil, apperror.NewNotFoundError("Parcela não encontrada.")
	}
	out := make([]domain.Pagamento, 0)
	for _, pay := range s.pagamentos {
		if pay.IDParcela == parcelaID {
			out = append(out, pay)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

// ReversePagamento estorna (apaga) um pagamento e recalcula parcela e carnê.
func (s *Store) ReversePagamento(id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	pay, ok := s.pagamentos[id]
	if !ok {
		return apperror.NewNotFoundError("Pagamento não encontrado.")
	}
	delete(s.pagamentos, id)
	if p, ok := s.parcelas[pay.IDParcela]; ok {
		s.refreshParcelaLocked(p.ID)
		s.refreshCarneLocked(p.IDCarne)
	}
	return nil
}

// --- Relatórios ---

func (s *Store) Dashboard() domain.DashboardSummary {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	today := now.Format(domain.DateLayout)
	month := now.Format("2006-01")
	in7 := now.AddDate(0, 0, 7).Format(domain.DateLayout)

	d := domain.DashboardSummary{TotalClientes: len(s.clientes), TotalCarnes: len(s.carnes)}
	for id := range s.carnes {
		switch s.refreshCarneLocked(id).StatusCarne {
		case domain.StatusCarneAtivo:
			d.TotalCarnesAtivos++
		case domain.StatusCarneQuitado:
			d.TotalCarnesQuitados++
		case domain.StatusCarneEmAtraso:
			d.TotalCarnesEmAtraso++
		}
	}
	for id := range s.parcelas {
		p := s.refreshParcelaLocked(id)
		if p.SaldoDevedor <= tolerance {
			continue
		}
		if strings.HasPrefix(p.DataVencimento, month) {
			d.TotalAReceberMes += p.SaldoDevedor
		}
		switch {
		case p.DataVencimento < today:
			d.ParcelasVencidas++
		case p.DataVencimento <= in7:
			d.ParcelasAVencerProximos7D++
		}
	}
	for _, pay := range s.pagamentos {
		if strings.HasPrefix(pay.DataPagamento, month) {
			d.TotalRecebidoMes += pay.ValorPago
		}
	}
	d.TotalRecebidoMes = round2(d.TotalRecebidoMes)
	d.TotalAReceberMes = round2(d.TotalAReceberMes)
	return d
}

func (s *Store) Receipts(start, end string) (domain.ReceiptsReport, error) {
	if _, err := time.Parse(domain.DateLayout, start); err != nil {
		return domain.ReceiptsReport{}, apperror.NewValidationError("start_date inválida.")
	}
	if _, err := time.Parse(domain.DateLayout, end); err != nil {
		return domain.ReceiptsReport{}, apperror.NewValidationError("end_date inválida.")
	}
	if start > end {
		return domain.ReceiptsReport{}, apperror.NewValidationError("start_date deve ser anterior ou igual a end_date.")
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	report := domain.ReceiptsReport{StartDate: start, EndDate: end, Items: []domain.ReceiptItem{}}
	for _, pay := range s.pagamentos {
		if pay.DataPagamento < start || pay.DataPagamento > end {
			continue
		}
		p := s.parcelas[pay.IDParcela]
		c := s.carnes[p.IDCarne]
		report.Items = append(report.Items, domain.ReceiptItem{
			PagamentoID:    pay.ID,
			DataPagamento:  pay.DataPagamento,
			ValorPago:      pay.ValorPago,
			FormaPagamento: pay.FormaPagamento,
			ParcelaID:      p.ID,
			NumeroParcela:  p.NumeroParcela,
			CarneID:        c.ID,
			ClienteNome:    s.clientes[c.IDCliente].Nome,
		})
		report.TotalRecebido += pay.ValorPago
	}
	sort.Slice(report.Items, func(i, j int) bool {
		if report.Items[i].DataPagamento == report.Items[j].DataPagamento {
			return report.Items[i].PagamentoID < report.Items[j].PagamentoID
		}
		return report.Items[i].DataPagamento < report.Items[j].DataPagamento
	})
	report.TotalRecebido = round2(report.TotalRecebido)
	return report, nil
}

func (s *Store) PendingDebts(clienteID int) (domain.PendingDebtsReport, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cliente, ok := s.clientes[clienteID]
	if !ok {
		return domain.PendingDebtsReport{}, apperror.NewNotFoundError("Cliente não encontrado.")
	}

	report := domain.PendingDebtsReport{ClienteID: clienteID, ClienteNome: cliente.Nome, Items: []domain.PendingDebt{}}
	for carneID, c := range s.carnes {
		if c.IDCliente != clienteID || c.StatusCarne == domain.StatusCarneCancelado {
			continue
		}
		for _, p := range s.parcelasOfLocked(carneID) {
			if p.SaldoDevedor <= tolerance {
				continue
			}
			report.Items = append(report.Items, domain.PendingDebt{
				CarneID:        carneID,
				ParcelaID:      p.ID,
				NumeroParcela:  p.NumeroParcela,
				DataVencimento: p.DataVencimento,
				ValorDevido:    p.ValorDevido,
				ValorPago:      p.ValorPago,
				SaldoDevedor:   p.SaldoDevedor,
				JurosMulta:     p.JurosMulta,
				StatusParcela:  p.StatusParcela,
			})
			report.TotalSaldoDevedor += p.SaldoDevedor
		}
	}
	sort.Slice(report.Items, func(i, j int) bool { return report.Items[i].DataVencimento < report.Items[j].DataVencimento })
	report.TotalSaldoDevedor = round2(report.TotalSaldoDevedor)
	return report, nil
}

// --- Produtos ---

func (s *Store) ListProdutos(q string) []domain.Produto {
	s.mu.RLock()
	defer s.mu.RUnlock()

	q = strings.ToLower(strings.TrimSpace(q))
	out := make([]domain.Produto, 0, len(s.produtos))
	for _, p := range s.produtos {
		if q == "" || containsFold(q, p.Nome, p.Categoria, p.Marca, p.IMEI) {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (s *Store) GetProduto(id int) (domain.Produto, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.produtos[id]
	if !ok {
		return domain.Produto{}, apperror.NewNotFoundError("Produto não encontrado.")
	}
	return p, nil
}

func (s *Store) SaveProduto(id int, in domain.ProdutoInput) (domain.Produto, error) {
	if strings.TrimSpace(in.Nome) == "" {
		return domain.Produto{}, apperror.NewValidationError("O nome do produto é obrigatório.")
	}
	if in.PrecoVenda < 0 || in.PrecoCusto < 0 || in.EstoqueAtual < 0 {
		return domain.Produto{}, apperror.NewValidationError("Preços e estoque não podem ser negativos.")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if id == 0 {
		id = s.nextID("produto")
	} else if _, ok := s.produtos[id]; !ok {
		return domain.Produto{}, apperror.NewNotFoundError("Produto não encontrado.")
	}
	p := domain.Produto{
		ID:           id,
		Nome:         strings.TrimSpace(in.Nome),
		Descricao:    in.Descricao,
		Categoria:    in.Categoria,
		Marca:        in.Marca,
		IMEI:         in.IMEI,
		EstoqueAtual: in.EstoqueAtual,
		PrecoVenda:   round2(in.PrecoVenda),
		PrecoCusto:   round2(in.PrecoCusto),
	}
	s.produtos[id] = p
	return p, nil
}

func (s *Store) DeleteProduto(id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.produtos[id]; !ok {
		return apperror.NewNotFoundError("Produto não encontrado.")
	}
	delete(s.produtos, id)
	return nil
}

func containsFold(needle string, fields ...string) bool {
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), needle) {
			return true
		}
	}
	return false
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

var notFound = apperror.NewNotFoundError("Rota não encontrada.")
