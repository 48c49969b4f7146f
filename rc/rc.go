package rc

import (
	"math"

	"github.com/kolkov/borrowcell/cell"
	"github.com/kolkov/borrowcell/internal/trace"
)

// rcInner is the shared heap cell behind one or more handles. Callers never
// see it; every access goes through a handle. The reference count lives in a
// cell.Cell so the count can be rewritten while shared views of the value
// are outstanding without ever exposing a reference to the count itself.
type rcInner[T any] struct {
	value    T
	refcount cell.Cell[uint64]
	release  func(T)
}

// Rc is a shared-ownership handle. Several handles may reference the same
// allocation; the count of live handles is the allocation's reference count.
//
// Invariant: the reference count equals exactly the number of handles that
// have been created (by New or Clone) and not yet dropped. The allocation is
// released exactly once, by the Drop that observes a count of one.
//
// Rc is explicitly not goroutine-safe: the count update is a plain
// read-modify-write with no synchronization, so concurrent Clone or Drop
// from multiple goroutines is a precondition violation, not a supported use.
type Rc[T any] struct {
	inner *rcInner[T]
}

// New allocates storage holding v with a reference count of one and returns
// the first handle to it.
func New[T any](v T) *Rc[T] {
	return NewReleasing(v, nil)
}

// NewReleasing is like New but additionally registers release, which the
// final Drop invokes with the contained value just before severing access.
// A nil release means no hook.
func NewReleasing[T any](v T, release func(T)) *Rc[T] {
	inner := &rcInner[T]{value: v, release: release}
	inner.refcount.Set(1)
	return &Rc[T]{inner: inner}
}

// Value returns a pointer to the shared value.
//
// The pointer stays valid exactly as long as any handle to the allocation
// is live; do not retain it past the last Drop. Panics if this handle has
// already been dropped.
func (r *Rc[T]) Value() *T {
	if r.inner == nil {
		panic("rc: use of dropped handle")
	}
	return &r.inner.value
}

// Clone creates another handle to the same allocation, incrementing the
// reference count.
//
// Panics if this handle has been dropped, or if the count is at its maximum
// (the count never wraps; an overflowing Clone aborts instead of silently
// corrupting the release-exactly-once invariant).
func (r *Rc[T]) Clone() *Rc[T] {
	if r.inner == nil {
		panic("rc: clone of dropped handle")
	}
	c := r.inner.refcount.Get()
	if c == math.MaxUint64 {
		panic("rc: refcount overflow")
	}
	r.inner.refcount.Set(c + 1)
	trace.RcRetain(c + 1)
	return &Rc[T]{inner: r.inner}
}

// Drop gives up this handle's ownership share.
//
// The Drop that observes a count of one is the final one: it runs the
// release hook, clears the shared slot and severs access, so Value on any
// handle panics afterwards. The memory itself is reclaimed by the garbage
// collector later; only the severing is deterministic.
//
// Drop is idempotent: dropping an already-dropped handle is a no-op, so a
// deferred Drop composes with an explicit early one.
func (r *Rc[T]) Drop() {
	if r.inner == nil {
		return
	}
	inner := r.inner
	r.inner = nil
	c := inner.refcount.Get()
	if c == 1 {
		if inner.release != nil {
			inner.release(inner.value)
		}
		var zero T
		inner.value = zero
		inner.refcount.Set(0)
		trace.RcFree()
		return
	}
	inner.refcount.Set(c - 1)
	trace.RcRelease(c - 1)
}

// RefCount returns the number of live handles sharing the allocation, or
// zero if this handle has been dropped.
func (r *Rc[T]) RefCount() uint64 {
	if r.inner == nil {
		return 0
	}
	return r.inner.refcount.Get()
}
