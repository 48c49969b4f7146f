// Package rc implements a reference-counted shared-ownership handle.
//
// An Rc hands out shared access to one heap allocation. Cloning a handle
// increments the allocation's reference count, dropping one decrements it,
// and the drop that observes the last remaining handle releases the
// allocation: the optional release hook runs, the slot is cleared, and any
// later access through a handle panics.
//
// # Ownership model
//
// The count lives in a cell.Cell and is updated with plain reads and
// writes. That makes Rc a deliberately single-threaded construct: it models
// shared ownership between parts of one logical thread of execution, not
// between goroutines. For cross-goroutine sharing use sync/atomic counting
// or channels; those are a different problem and out of scope here.
//
// # Deterministic release under a garbage collector
//
// Go reclaims memory on its own schedule, so "deallocation" here means the
// deterministic part: on the final Drop the release hook fires, the value
// is zeroed and every handle is disconnected, exactly once. Tests can pin
// release timing on that severing without depending on the collector.
//
// # Composition
//
// Rc over a refcell.RefCell is the intended shape for data that is shared,
// mutable and runtime-checked:
//
//	shared := rc.New(refcell.New(0))
//	other := shared.Clone()
//	counter := *other.Value()
//	_ = counter.Update(func(n *int) { *n++ })
package rc
