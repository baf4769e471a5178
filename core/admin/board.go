package admin

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/trezcool/masomo-admin/core"
)

// DefaultNoticeTTL is how long a notice stays on the board.
const DefaultNoticeTTL = 4 * time.Second

type Kind string

const (
	KindSuccess Kind = "success"
	KindInfo    Kind = "info"
	KindError   Kind = "error"
)

type Notice struct {
	Kind    Kind
	Message string
	At      time.Time
}

func (n Notice) String() string {
	return fmt.Sprintf("[%s] %s", n.Kind, n.Message)
}

// Notifier is anything able to give transient feedback to the user.
type Notifier interface {
	Success(msg string)
	Info(msg string)
	Error(msg string)
}

type BoardOption func(b *Board)

// WithPrinter forwards every notice to `w`, one per line.
func WithPrinter(w io.Writer) BoardOption {
	return func(b *Board) { b.printer = w }
}

// WithLogger logs error notices.
func WithLogger(logger core.Logger) BoardOption {
	return func(b *Board) { b.logger = logger }
}

// Board shows at most one notice at a time. A notice expires after the board's TTL,
// unless a newer notice replaced it first: an expiring notice never clears a newer one.
type Board struct {
	mu      sync.Mutex
	ttl     time.Duration
	current Notice
	shown   bool
	gen     uint64
	history []Notice

	printer io.Writer
	logger  core.Logger
}

var _ Notifier = (*Board)(nil)

// NewBoard returns a Board; a ttl <= 0 keeps notices until replaced.
func NewBoard(ttl time.Duration, opts ...BoardOption) *Board {
	b := &Board{ttl: ttl}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

func (b *Board) Success(msg string) { b.show(KindSuccess, msg) }
func (b *Board) Info(msg string)    { b.show(KindInfo, msg) }
func (b *Board) Error(msg string)   { b.show(KindError, msg) }

func (b *Board) show(kind Kind, msg string) {
	notice := Notice{Kind: kind, Message: msg, At: time.Now()}

	b.mu.Lock()
	b.gen++
	gen := b.gen
	b.current = notice
	b.shown = true
	b.history = append(b.history, notice)
	if b.printer != nil {
		_, _ = fmt.Fprintln(b.printer, notice)
	}
	b.mu.Unlock()

	if kind == KindError && b.logger != nil {
		b.logger.Error(msg)
	}
	if b.ttl > 0 {
		time.AfterFunc(b.ttl, func() { b.expire(gen) })
	}
}

func (b *Board) expire(gen uint64) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.gen == gen {
		b.shown = false
		b.current = Notice{}
	}
}

// Current returns the notice on display, if any.
func (b *Board) Current() (Notice, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.current, b.shown
}

// History returns every notice shown so far, oldest first.
func (b *Board) History() []Notice {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append(make([]Notice, 0, len(b.history)), b.history...)
}
