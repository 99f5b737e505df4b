package session

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"time"

	"gocarne/internal/domain"
	apperror "gocarne/internal/errors"
	"gocarne/internal/pkg/logger"
	"gocarne/internal/pkg/storage"
	"gocarne/internal/pkg/token"
)

// AuthAPI é o contrato que a sessão espera do cliente HTTP.
type AuthAPI interface {
	Login(ctx context.Context, email, password string) (domain.TokenResponse, error)
	Me(ctx context.Context) (domain.User, error)
	Register(ctx context.Context, in domain.Registration) (domain.User, error)
	RegisterAdmin(ctx context.Context, in domain.Registration) (domain.User, error)
	RegisterAtendente(ctx context.Context, in domain.Registration) (domain.User, error)
}

// Listener recebe o novo estado após cada transição.
type Listener func(domain.SessionState)

// Store é a fonte única de "quem está logado".
// Rehydrate, Login e Logout rodam até o fim antes da próxima transição começar.
type Store struct {
	api     AuthAPI
	storage storage.Storage
	logger  logger.Logger
	now     func() time.Time

	op sync.Mutex // serializa as operações

	mu        sync.RWMutex
	state     domain.SessionState
	listeners map[int]Listener
	nextID    int
}

// NewStore cria a sessão no estado inicial (carregando, sem usuário).
// O chamador deve invocar Rehydrate uma vez na inicialização.
func NewStore(api AuthAPI, store storage.Storage, log logger.Logger) *Store {
	return &Store{
		api:       api,
		storage:   store,
		logger:    log,
		now:       time.Now,
		state:     domain.SessionState{Loading: true},
		listeners: make(map[int]Listener),
	}
}

// State devolve uma cópia do estado atual.
func (s *Store) State() domain.SessionState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return copyState(s.state)
}

// Subscribe registra um Listener e devolve a função para cancelar o registro.
func (s *Store) Subscribe(fn Listener) func() {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextID
	s.nextID++
	s.listeners[id] = fn

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.listeners, id)
	}
}

// Rehydrate restaura a sessão persistida: snapshot otimista primeiro, depois GET /me.
// Qualquer falha limpa token, usuário e armazenamento. Sempre termina com Loading=false.
func (s *Store) Rehydrate(ctx context.Context) error {
	s.op.Lock()
	defer s.op.Unlock()

	tok, err := s.storage.Get(ctx, storage.KeyToken)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			s.commit(domain.SessionState{})
			return nil
		}
		s.logger.Warn("Falha ao ler token persistido; sessão iniciará anônima.", map[string]interface{}{"error": err.Error()})
		s.clear(ctx)
		return apperror.NewStorageError("falha ao ler token persistido", err)
	}

	optimistic := domain.SessionState{Loading: true}
	if snapshot, ok := s.loadSnapshot(ctx); ok {
		optimistic.User = &snapshot
		optimistic.Token = tok
	}
	s.commit(optimistic)

	if token.Expired(tok, s.now()) {
		s.logger.Info("Token persistido expirado; sessão descartada sem consultar a API.", nil)
		s.clear(ctx)
		return apperror.NewUnauthorizedError("Sessão expirada. Faça login novamente.")
	}

	user, err := s.api.Me(ctx)
	if err != nil {
		s.logger.Info("Sessão persistida rejeitada; limpando credenciais.", map[string]interface{}{"error": err.Error()})
		s.clear(ctx)
		return err
	}

	if err := s.saveSnapshot(ctx, user); err != nil {
		s.logger.Error("Falha ao atualizar snapshot do usuário.", err)
	}
	s.commit(domain.SessionState{User: &user, Token: tok})
	s.logger.Debug("Sessão restaurada.", map[string]interface{}{"user_id": user.ID, "perfil": user.Perfil})
	return nil
}

// Login troca credenciais por token e grava token e usuário na memória e no armazenamento.
// Em falha, limpa tudo e devolve o erro; a mensagem ao usuário fica a cargo do chamador.
func (s *Store) Login(ctx context.Context, email, password string) error {
	s.op.Lock()
	defer s.op.Unlock()

	current := s.State()
	current.Loading = true
	s.commit(current)

	resp, err := s.api.Login(ctx, email, password)
	if err != nil {
		s.clear(ctx)
		return err
	}

	if err := s.storage.Set(ctx, storage.KeyToken, resp.AccessToken); err != nil {
		s.clear(ctx)
		return apperror.NewStorageError("falha ao gravar token", err)
	}
	if err := s.saveSnapshot(ctx, resp.User); err != nil {
		s.clear(ctx)
		return apperror.NewStorageError("falha ao gravar usuário", err)
	}

	user := resp.User
	s.commit(domain.SessionState{User: &user, Token: resp.AccessToken})
	s.logger.Info("Login realizado.", map[string]interface{}{"user_id": user.ID, "perfil": user.Perfil})
	return nil
}

// Logout limpa token, usuário e armazenamento. Não faz chamada de rede.
func (s *Store) Logout(ctx context.Context) error {
	s.op.Lock()
	defer s.op.Unlock()

	return s.clear(ctx)
}

// Register cria uma conta pública. Não altera a sessão atual.
func (s *Store) Register(ctx context.Context, in domain.Registration) (domain.User, error) {
	return s.api.Register(ctx, in)
}

// RegisterAdmin cria uma conta com perfil escolhido pelo admin. Não altera a sessão atual.
func (s *Store) RegisterAdmin(ctx context.Context, in domain.Registration) (domain.User, error) {
	return s.api.RegisterAdmin(ctx, in)
}

// RegisterAtendente cria uma conta de atendente. Não altera a sessão atual.
func (s *Store) RegisterAtendente(ctx context.Context, in domain.Registration) (domain.User, error) {
	return s.api.RegisterAtendente(ctx, in)
}

// UpdateUser aplica um merge local no snapshot, sem refetch. Sem usuário logado não faz nada.
func (s *Store) UpdateUser(ctx context.Context, upd domain.UserUpdate) error {
	s.op.Lock()
	defer s.op.Unlock()

	current := s.State()
	if current.User == nil {
		return nil
	}

	merged := upd.Apply(*current.User)
	if err := s.saveSnapshot(ctx, merged); err != nil {
		return apperror.NewStorageError("falha ao gravar usuário", err)
	}
	current.User = &merged
	s.commit(current)
	return nil
}

// clear zera memória e armazenamento juntos.
func (s *Store) clear(ctx context.Context) error {
	s.commit(domain.SessionState{})
	if err := s.storage.Delete(ctx, storage.KeyToken, storage.KeyUser); err != nil {
		s.logger.Error("Falha ao limpar armazenamento da sessão.", err)
		return apperror.NewStorageError("falha ao limpar sessão", err)
	}
	return nil
}

func (s *Store) loadSnapshot(ctx context.Context) (domain.User, bool) {
	raw, err := s.storage.Get(ctx, storage.KeyUser)
	if err != nil {
		return domain.User{}, false
	}
	var user domain.User
	if err := json.Unmarshal([]byte(raw), &user); err != nil {
		s.logger.Warn("Snapshot do usuário corrompido; ignorando.", map[string]interface{}{"error": err.Error()})
		return domain.User{}, false
	}
	return user, true
}

func (s *Store) saveSnapshot(ctx context.Context, user domain.User) error {
	raw, err := json.Marshal(user)
	if err != nil {
		return err
	}
	return s.storage.Set(ctx, storage.KeyUser, string(raw))
}

func (s *Store) commit(next domain.SessionState) {
	s.mu.Lock()
	s.state = copyState(next)
	snapshot := copyState(s.state)
	listeners := make([]Listener, 0, len(s.listeners))
	for _, l := range s.listeners {
		listeners = append(listeners, l)
	}
	s.mu.Unlock()

	for _, l := range listeners {
		l(snapshot)
	}
}

func copyState(st domain.SessionState) domain.SessionState {
	if st.User != nil {
		u := *st.User
		st.User = &u
	}
	return st
}
