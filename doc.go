// Package sigslot implements typed signals and slots: an in-process,
// in-memory dispatch primitive connecting anonymous producers to anonymous
// consumers.
//
// A Signal holds an ordered, append-only registry of handlers ("slots") of
// one payload type. Producers call Emit to deliver a payload to every
// connected handler; consumers call Connect to register one. Delivery
// follows the policy the signal was created with:
//
//   - Synchronous: handlers run sequentially, in connection order, on the
//     emitter's goroutine. The first handler error stops the rest.
//   - Asynchronous: handlers run concurrently with each other, but Emit
//     still blocks until all of them have finished. Failures are aggregated,
//     never dropped.
//
// A typical producer exposes a signal so other components can connect, and
// emits at points of interest:
//
//	type Worker struct {
//		Done *sigslot.Signal[Result]
//	}
//
//	func NewWorker() *Worker {
//		return &Worker{Done: sigslot.NewSync[Result]()}
//	}
//
//	func (w *Worker) run(ctx context.Context) {
//		// ...
//		_ = w.Done.Emit(ctx, result)
//	}
//
// A consumer connects once per signal it cares about, usually with a closure
// forwarding into its own state:
//
//	worker.Done.Connect(func(ctx context.Context, r Result) error {
//		return store.Save(ctx, r)
//	})
//
// Connect and Emit are safe to call concurrently on the same signal: each
// emission operates on a snapshot of the handlers taken when it starts, so
// connections made mid-emission take effect on the next one. Two obligations
// remain with the caller: state captured by a handler must outlive its
// connection, and recursive emission of a signal from within its own handler
// must be kept bounded (it will not deadlock, but nothing stops the
// recursion either).
package sigslot
