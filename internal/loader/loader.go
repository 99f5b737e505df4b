package loader

import (
	"context"
	"errors"
	"sync"
)

var (
	// ErrSuperseded indica que uma carga mais nova começou antes desta terminar.
	ErrSuperseded = errors.New("carga substituída por uma mais recente")
	// ErrClosed indica que a tela foi fechada; o resultado foi descartado.
	ErrClosed = errors.New("carga descartada: loader fechado")
)

// Func busca os dados de uma tela.
type Func[T any] func(ctx context.Context) (T, error)

// Loader mantém o resultado da carga mais recente de uma tela.
// Cada Load cancela a anterior; respostas que chegam fora de ordem são descartadas.
type Loader[T any] struct {
	mu     sync.Mutex
	seq    uint64
	cancel context.CancelFunc
	closed bool

	value  T
	loaded bool
}

// New cria um Loader vazio.
func New[T any]() *Loader[T] {
	return &Loader[T]{}
}

// Load executa fn e, se ainda for a carga mais recente, guarda o resultado.
// Cargas superadas devolvem ErrSuperseded; após Close devolvem ErrClosed.
func (l *Loader[T]) Load(ctx context.Context, fn Func[T]) (T, error) {
	var zero T

	l.mu.Lock()
	if l.closed {
		l.mu.Unlock()
		return zero, ErrClosed
	}
	if l.cancel != nil {
		l.cancel()
	}
	l.seq++
	seq := l.seq
	ctx, cancel := context.WithCancel(ctx)
	l.cancel = cancel
	l.mu.Unlock()

	value, err := fn(ctx)

	l.mu.Lock()
	defer l.mu.Unlock()

	switch {
	case l.closed:
		cancel()
		return zero, ErrClosed
	case seq != l.seq:
		cancel()
		return zero, ErrSuperseded
	}

	l.cancel = nil
	cancel()
	if err != nil {
		return zero, err
	}
	l.value = value
	l.loaded = true
	return value, nil
}

// Value devolve o último resultado aceito.
func (l *Loader[T]) Value() (T, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.value, l.loaded
}

// Reset cancela a carga em andamento quando a tela sai de cena.
// A carga cancelada devolve ErrSuperseded; o Loader continua utilizável na próxima montagem.
func (l *Loader[T]) Reset() {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.seq++
	if l.cancel != nil {
		l.cancel()
		l.cancel = nil
	}
}

// Close cancela a carga em andamento e descarta qualquer resultado futuro.
// Usado no encerramento da aplicação; depois dele todo Load devolve ErrClosed.
func (l *Loader[T]) Close() {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.closed = true
	if l.cancel != nil {
		l.cancel()
		l.cancel = nil
	}
}

// Stale indica que o erro veio de uma carga descartada e não deve virar notificação.
func Stale(err error) bool {
	return errors.Is(err, ErrSuperseded) || errors.Is(err, ErrClosed)
}
