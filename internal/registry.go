package internal

import (
	"context"
	"sync"
	"sync/atomic"
)

// Handler is the untyped form of a slot. The public package converts the
// payload back to its declared type before the user callback runs.
type Handler func(ctx context.Context, payload any) error

// Conn is a single registration in a Registry. Removal is a tombstone: the
// entry keeps its position so the ordering of the remaining live handlers
// never changes.
type Conn struct {
	handler Handler
	removed atomic.Bool
}

func (c *Conn) Remove() {
	c.removed.Store(true)
}

func (c *Conn) Removed() bool {
	return c.removed.Load()
}

// Registry is an ordered, append-only sequence of connections shared by one
// signal. Add appends under the write lock; emission reads an immutable
// snapshot, so a connection made while an emission is in flight becomes
// visible to the next emission, not the current one.
type Registry struct {
	mu    sync.RWMutex
	conns []*Conn

	// emitDepths tracks, per goroutine, how many emissions of this registry
	// are on the stack. See reentry.go.
	emitDepths sync.Map
}

func (r *Registry) Add(h Handler) *Conn {
	c := &Conn{handler: h}

	r.mu.Lock()
	r.conns = append(r.conns, c)
	r.mu.Unlock()

	return c
}

// Snapshot returns the live connections in insertion order.
func (r *Registry) Snapshot() []*Conn {
	r.mu.RLock()
	defer r.mu.RUnlock()

	live := make([]*Conn, 0, len(r.conns))
	for _, c := range r.conns {
		if !c.Removed() {
			live = append(live, c)
		}
	}

	return live
}

// Len counts the live connections.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	n := 0
	for _, c := range r.conns {
		if !c.Removed() {
			n++
		}
	}

	return n
}
