package sigslot

import (
	"github.com/mvantonder/sigslot/internal"
)

// PanicError is recorded when an asynchronously dispatched handler panics.
// It appears inside the aggregate error returned by Emit; retrieve it with
// errors.As. Panics in synchronously dispatched handlers are not caught,
// they unwind the emitter's own stack.
type PanicError = internal.PanicError
