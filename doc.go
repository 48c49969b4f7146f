// Package borrowcell provides single-thread ownership and runtime
// borrow-checking primitives for Go.
//
// The module is a small family of composable aliasing primitives, each in
// its own package:
//
//   - cell: a single-owner mutable slot exposing only copy-out and
//     overwrite, never a reference into its interior.
//   - rc: a reference-counted shared-ownership handle whose count lives in
//     a cell.Cell; the last Drop releases the allocation exactly once.
//   - refcell: an interior-mutability slot whose borrow mode (Unshared,
//     Shared(n), Exclusive) lives in a cell.Cell and is enforced at run
//     time through scoped guards.
//
// # Intended composition
//
// An rc.Rc over a refcell.RefCell is the shape for data that is shared,
// mutable and runtime-checked:
//
//	shared := rc.New(refcell.New(0))
//	defer shared.Drop()
//
//	worker := shared.Clone()
//	defer worker.Drop()
//
//	counter := *worker.Value()
//	if err := counter.Update(func(n *int) { *n++ }); err != nil {
//		// a borrow was outstanding; handle the conflict
//	}
//
// # Single-thread contract
//
// None of the primitives carry synchronization. They model ownership and
// aliasing within one logical thread of execution; sharing any of them
// across goroutines is an unchecked precondition violation. For concurrent
// sharing reach for sync, sync/atomic or channels instead.
//
// # Error model
//
// A denied borrow is a normal outcome surfaced as an error wrapping
// refcell.ErrBorrowConflict, and callers must handle it. Contract misuse
// (using a dropped handle or a released guard) and internal bookkeeping
// defects panic: the former names the caller's broken precondition, the
// latter a bug in this module.
//
// # Tracing
//
// SetTraceLogger wires the primitives' lifecycle events (retain, release,
// free, borrow grant/deny/release) to a zap logger for debugging; tracing
// is off by default and free when disabled.
package borrowcell
