package sigslot

import (
	"context"

	"golang.org/x/sync/semaphore"

	"github.com/mvantonder/sigslot/internal"
)

// Policy selects how Emit delivers a payload to the connected handlers.
// It is fixed when the Signal is created and cannot change afterwards.
type Policy int

const (
	// Synchronous invokes handlers sequentially in connection order; Emit
	// waits for each handler to return before starting the next.
	Synchronous Policy = iota

	// Asynchronous invokes all handlers concurrently with each other; Emit
	// still blocks until every handler from that call has finished. It is
	// concurrency within one emission, not asynchrony of the emission
	// relative to its caller.
	Asynchronous
)

func (p Policy) String() string {
	switch p {
	case Synchronous:
		return "sync"
	case Asynchronous:
		return "async"
	}

	return "unknown"
}

// Handler is a slot: a callback connected to a Signal. The ctx is the one
// passed to Emit, forwarded untouched; the Signal itself never cancels or
// times out an invocation.
type Handler[T any] func(ctx context.Context, v T) error

// Signal is an ordered registry of handlers sharing one payload type and one
// delivery policy. A Signal has no identity beyond its reference and no
// knowledge of who connects or emits; producers and consumers only need to
// share a pointer to it.
//
// The zero value is not usable; create signals with New, NewSync or NewAsync.
type Signal[T any] struct {
	policy Policy
	reg    *internal.Registry
	sem    *semaphore.Weighted

	*Options
}

// New creates a Signal with the given delivery policy.
func New[T any](policy Policy, opts ...Option) *Signal[T] {
	options := defaultOptions()
	options.Apply(opts...)

	s := &Signal[T]{
		policy:  policy,
		reg:     &internal.Registry{},
		Options: options,
	}

	if options.maxConcurrent > 0 {
		s.sem = semaphore.NewWeighted(options.maxConcurrent)
	}

	return s
}

// NewSync creates a Signal with the Synchronous delivery policy.
func NewSync[T any](opts ...Option) *Signal[T] {
	return New[T](Synchronous, opts...)
}

// NewAsync creates a Signal with the Asynchronous delivery policy.
func NewAsync[T any](opts ...Option) *Signal[T] {
	return New[T](Asynchronous, opts...)
}

func as[T any](v any) T {
	if v == nil {
		var zero T
		return zero
	}

	return v.(T)
}

// Connect appends h to the signal's handlers. Registration cannot fail and
// the number of connections is unbounded. Handlers connected while an Emit
// is in flight are included in subsequent emissions, not the current one.
//
// Whatever state h closes over must stay valid for as long as it remains
// connected; the Signal holds only the callback itself.
func (s *Signal[T]) Connect(h Handler[T]) *Connection {
	conn := s.reg.Add(func(ctx context.Context, payload any) error {
		return h(ctx, as[T](payload))
	})

	return &Connection{conn: conn}
}

// Emit delivers v to every connected handler per the signal's policy.
//
// Under Synchronous, handlers run in connection order and the first handler
// error stops the rest (fail-fast). Under Asynchronous, all handlers start
// concurrently, Emit joins every invocation before returning, and all
// handler errors and recovered panics are aggregated into the returned
// error; use multierr.Errors to split it.
//
// With no connected handlers Emit is a no-op. Emitting a signal from within
// one of its own handlers will not deadlock, but it is up to the caller to
// keep the recursion bounded.
func (s *Signal[T]) Emit(ctx context.Context, v T) error {
	conns := s.reg.Snapshot()
	if len(conns) == 0 {
		return nil
	}

	depth := s.reg.EnterEmit()
	defer s.reg.ExitEmit()

	s.logger.Debug().
		Str("signal", s.name).
		Stringer("policy", s.policy).
		Int("handlers", len(conns)).
		Msg("emitting signal")

	if depth > 1 {
		s.logger.Debug().
			Str("signal", s.name).
			Int("depth", depth).
			Msg("re-entrant emit")
	}

	if s.policy == Asynchronous {
		return internal.DispatchAsync(ctx, conns, v, s.sem)
	}

	return internal.DispatchSync(ctx, conns, v)
}

// Policy returns the delivery policy the signal was created with.
func (s *Signal[T]) Policy() Policy {
	return s.policy
}

// Len returns the number of connected (and not disconnected) handlers.
func (s *Signal[T]) Len() int {
	return s.reg.Len()
}

// IsEmpty reports whether the signal has no connected handlers.
func (s *Signal[T]) IsEmpty() bool {
	return s.Len() == 0
}
