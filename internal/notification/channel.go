package notification

import (
	"sync"
	"time"

	"gocarne/internal/domain"
)

// DefaultTTL é o tempo até a notificação sumir sozinha.
const DefaultTTL = 5 * time.Second

// Timer é o subconjunto de *time.Timer usado pelo canal.
type Timer interface {
	Stop() bool
}

// Clock agenda o auto-dismiss. Trocado por um relógio falso nos testes.
type Clock interface {
	AfterFunc(d time.Duration, f func()) Timer
}

type realClock struct{}

func (realClock) AfterFunc(d time.Duration, f func()) Timer { return time.AfterFunc(d, f) }

// Listener recebe a notificação visível após cada mudança; nil significa banner vazio.
type Listener func(n *domain.Notification)

// Option configura o Channel.
type Option func(*Channel)

// WithClock substitui o relógio real.
func WithClock(c Clock) Option {
	return func(ch *Channel) { ch.clock = c }
}

// Channel guarda no máximo uma notificação pendente para o app inteiro.
// Uma nova notificação substitui a anterior e reinicia o timer; não há fila.
type Channel struct {
	mu        sync.Mutex
	ttl       time.Duration
	clock     Clock
	current   *domain.Notification
	timer     Timer
	gen       uint64
	listeners map[int]Listener
	nextID    int
}

// NewChannel cria o canal. ttl <= 0 usa DefaultTTL.
func NewChannel(ttl time.Duration, opts ...Option) *Channel {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	ch := &Channel{
		ttl:       ttl,
		clock:     realClock{},
		listeners: make(map[int]Listener),
	}
	for _, opt := range opts {
		opt(ch)
	}
	return ch
}

// Set substitui a notificação atual e reinicia o timer de auto-dismiss.
func (c *Channel) Set(message string, typ domain.NotificationType) {
	c.mu.Lock()
	c.stopTimerLocked()
	c.gen++
	gen := c.gen
	c.current = &domain.Notification{Message: message, Type: typ}
	c.timer = c.clock.AfterFunc(c.ttl, func() { c.expire(gen) })
	snapshot, listeners := c.snapshotLocked()
	c.mu.Unlock()

	emit(listeners, snapshot)
}

// Notify é um atalho para Set com uma notificação já montada.
func (c *Channel) Notify(n domain.Notification) {
	c.Set(n.Message, n.Type)
}

// Clear remove a notificação imediatamente e cancela o timer pendente.
func (c *Channel) Clear() {
	c.mu.Lock()
	c.stopTimerLocked()
	c.gen++
	wasSet := c.current != nil
	c.current = nil
	snapshot, listeners := c.snapshotLocked()
	c.mu.Unlock()

	if wasSet {
		emit(listeners, snapshot)
	}
}

// Current devolve a notificação visível, se houver.
func (c *Channel) Current() (domain.Notification, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.current == nil {
		return domain.Notification{}, false
	}
	return *c.current, true
}

// Subscribe registra um Listener e devolve a função para cancelar o registro.
func (c *Channel) Subscribe(fn Listener) func() {
	c.mu.Lock()
	defer c.mu.Unlock()

	id := c.nextID
	c.nextID++
	c.listeners[id] = fn

	return func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		delete(c.listeners, id)
	}
}

// expire só limpa se o timer ainda pertence à notificação que o agendou.
func (c *Channel) expire(gen uint64) {
	c.mu.Lock()
	if gen != c.gen || c.current == nil {
		c.mu.Unlock()
		return
	}
	c.current = nil
	c.timer = nil
	snapshot, listeners := c.snapshotLocked()
	c.mu.Unlock()

	emit(listeners, snapshot)
}

func (c *Channel) stopTimerLocked() {
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
}

func (c *Channel) snapshotLocked() (*domain.Notification, []Listener) {
	var snapshot *domain.Notification
	if c.current != nil {
		n := *c.current
		snapshot = &n
	}
	listeners := make([]Listener, 0, len(c.listeners))
	for _, l := range c.listeners {
		listeners = append(listeners, l)
	}
	return snapshot, listeners
}

func emit(listeners []Listener, n *domain.Notification) {
	for _, l := range listeners {
		l(n)
	}
}
