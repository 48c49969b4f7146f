package refcell

import (
	"errors"
	"fmt"

	"github.com/kolkov/borrowcell/cell"
	"github.com/kolkov/borrowcell/internal/trace"
)

// Borrow conflict errors. Every denial wraps ErrBorrowConflict, so callers
// that only care about the class branch with errors.Is(err, ErrBorrowConflict)
// and callers that care about the cause match the specific sentinel.
var (
	// ErrBorrowConflict is the root of all borrow denials. A denial is a
	// normal, expected outcome the caller must handle, never a panic.
	ErrBorrowConflict = errors.New("refcell: borrow conflict")

	// ErrExclusiveBorrow reports a request denied because the exclusive
	// borrow is outstanding.
	ErrExclusiveBorrow = fmt.Errorf("%w: value is exclusively borrowed", ErrBorrowConflict)

	// ErrSharedBorrow reports an exclusive request denied because shared
	// borrows are outstanding.
	ErrSharedBorrow = fmt.Errorf("%w: value is borrowed by readers", ErrBorrowConflict)
)

// RefCell owns a value whose aliasing rule, many readers XOR one writer, is
// enforced at run time by the BorrowState machine. The state itself lives
// in a cell.Cell next to the value.
//
// Like the other primitives, a RefCell belongs to a single logical thread
// of execution; the state transitions are plain read-modify-writes.
type RefCell[T any] struct {
	value T
	state cell.Cell[BorrowState]
}

// New returns a RefCell owning v with no outstanding borrows.
// The zero BorrowState is Unshared, so the state cell needs no seeding.
func New[T any](v T) *RefCell[T] {
	return &RefCell[T]{value: v}
}

// Borrow requests a shared (read-only) borrow.
//
// Unshared becomes Shared(1) and Shared(n) becomes Shared(n+1), each
// returning a live Ref guard. While the exclusive borrow is outstanding the
// request is denied with ErrExclusiveBorrow and the state is unchanged.
func (rc *RefCell[T]) Borrow() (*Ref[T], error) {
	st := rc.state.Get()
	if st.IsExclusive() {
		trace.BorrowDenied("borrow", st.String())
		return nil, ErrExclusiveBorrow
	}
	next := st + 1
	rc.state.Set(next)
	trace.BorrowShared(next.Readers())
	return &Ref[T]{cell: rc}, nil
}

// BorrowMut requests the exclusive borrow.
//
// Only Unshared grants it, moving to Exclusive and returning a live RefMut
// guard. Any outstanding borrow denies the request, ErrSharedBorrow under
// Shared(n) and ErrExclusiveBorrow under Exclusive, leaving the state
// unchanged.
func (rc *RefCell[T]) BorrowMut() (*RefMut[T], error) {
	st := rc.state.Get()
	switch {
	case st.IsExclusive():
		trace.BorrowDenied("borrow_mut", st.String())
		return nil, ErrExclusiveBorrow
	case st.IsShared():
		trace.BorrowDenied("borrow_mut", st.String())
		return nil, ErrSharedBorrow
	}
	rc.state.Set(Exclusive)
	trace.BorrowExclusive()
	return &RefMut[T]{cell: rc}, nil
}

// State returns the current borrow state. The state only changes through
// Borrow, BorrowMut and guard releases.
func (rc *RefCell[T]) State() BorrowState {
	return rc.state.Get()
}

// View runs f with a copy of the value under a shared borrow scoped to the
// call: the guard is acquired before f and released on every exit path,
// including a panic inside f. Returns the borrow error if the shared borrow
// is denied, nil otherwise.
func (rc *RefCell[T]) View(f func(T)) error {
	g, err := rc.Borrow()
	if err != nil {
		return err
	}
	defer g.Release()
	f(g.Value())
	return nil
}

// Update runs f with a pointer to the value under the exclusive borrow
// scoped to the call, releasing the guard on every exit path. Returns the
// borrow error if the exclusive borrow is denied, nil otherwise.
func (rc *RefCell[T]) Update(f func(*T)) error {
	g, err := rc.BorrowMut()
	if err != nil {
		return err
	}
	defer g.Release()
	g.Update(f)
	return nil
}
