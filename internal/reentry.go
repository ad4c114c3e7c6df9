package internal

import (
	"github.com/petermattis/goid"
)

// EnterEmit records that an emission started on the calling goroutine and
// returns the resulting depth. A depth above one means a handler is emitting
// the signal that invoked it; that is the caller's responsibility to keep
// bounded, the registry only makes it observable.
func (r *Registry) EnterEmit() int {
	gid := goid.Get()

	depth := 1
	if d, ok := r.emitDepths.Load(gid); ok {
		depth = d.(int) + 1
	}
	r.emitDepths.Store(gid, depth)

	return depth
}

func (r *Registry) ExitEmit() {
	gid := goid.Get()

	d, ok := r.emitDepths.Load(gid)
	if !ok {
		return
	}

	if depth := d.(int) - 1; depth > 0 {
		r.emitDepths.Store(gid, depth)
	} else {
		r.emitDepths.Delete(gid)
	}
}
