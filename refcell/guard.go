package refcell

import "github.com/kolkov/borrowcell/internal/trace"

// Ref is a live shared borrow of a RefCell. It holds the owning cell, never
// the value, and exists only for the duration of the borrow.
//
// A Ref never exposes a pointer to the value, so the view through it is
// read-only by construction. Releasing the guard is the only path by which
// the cell's state moves back toward Unshared.
type Ref[T any] struct {
	cell     *RefCell[T]
	released bool
}

// Value returns a copy of the borrowed value.
// Panics if the guard has already been released.
func (g *Ref[T]) Value() T {
	if g.released {
		panic("refcell: use of released shared guard")
	}
	return g.cell.value
}

// Release ends this shared borrow: Shared(1) becomes Unshared and
// Shared(n) becomes Shared(n-1).
//
// Release is idempotent, so deferring it composes with an explicit early
// release. A first release that observes Unshared or Exclusive means the
// cell's own bookkeeping is broken; that is a defect in this package, not a
// caller error, and it panics rather than continue with corrupt state.
func (g *Ref[T]) Release() {
	if g.released {
		return
	}
	g.released = true
	st := g.cell.state.Get()
	if !st.IsShared() {
		panic("refcell: shared guard released in state " + st.String())
	}
	next := st - 1
	g.cell.state.Set(next)
	trace.BorrowReleased("shared", next.String())
}

// RefMut is the live exclusive borrow of a RefCell. At most one exists at a
// time, and never concurrently with any Ref.
type RefMut[T any] struct {
	cell     *RefCell[T]
	released bool
}

// Value returns a copy of the borrowed value.
// Panics if the guard has already been released.
func (g *RefMut[T]) Value() T {
	if g.released {
		panic("refcell: use of released exclusive guard")
	}
	return g.cell.value
}

// Set overwrites the borrowed value with v.
// Panics if the guard has already been released.
func (g *RefMut[T]) Set(v T) {
	if g.released {
		panic("refcell: use of released exclusive guard")
	}
	g.cell.value = v
}

// Update runs f with a pointer to the borrowed value for in-place mutation.
// The pointer is only valid inside f; do not retain it.
// Panics if the guard has already been released.
func (g *RefMut[T]) Update(f func(*T)) {
	if g.released {
		panic("refcell: use of released exclusive guard")
	}
	f(&g.cell.value)
}

// Release ends the exclusive borrow, returning the cell to Unshared.
//
// Release is idempotent. A first release that observes anything other than
// Exclusive is an internal bookkeeping defect and panics.
func (g *RefMut[T]) Release() {
	if g.released {
		return
	}
	g.released = true
	st := g.cell.state.Get()
	if !st.IsExclusive() {
		panic("refcell: exclusive guard released in state " + st.String())
	}
	g.cell.state.Set(Unshared)
	trace.BorrowReleased("exclusive", Unshared.String())
}
