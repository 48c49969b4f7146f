// Package refcell implements an interior-mutability slot whose aliasing
// rule is checked at run time.
//
// A RefCell owns one value and a BorrowState tracking how the value is
// currently borrowed. Instead of a compiler proving that readers and the
// writer never alias, the cell checks every borrow request against the
// state machine below and either grants a guard or denies the request with
// an error.
//
// # State machine
//
// States are Unshared (initial), Shared(n) for n >= 1, and Exclusive:
//
//	Borrow      Unshared   -> Shared(1)      guard granted
//	Borrow      Shared(n)  -> Shared(n+1)    guard granted
//	Borrow      Exclusive  -> Exclusive      denied (ErrExclusiveBorrow)
//	BorrowMut   Unshared   -> Exclusive      guard granted
//	BorrowMut   Shared(n)  -> Shared(n)      denied (ErrSharedBorrow)
//	BorrowMut   Exclusive  -> Exclusive      denied (ErrExclusiveBorrow)
//
// Releasing a guard is the only transition out of a borrowed state:
// releasing a Ref steps Shared(n) down to Shared(n-1) or Unshared, and
// releasing the RefMut returns Exclusive to Unshared. A release that
// observes a state inconsistent with the guard's kind indicates corrupt
// bookkeeping inside this package and panics.
//
// # Guards, not locks
//
// This is scoped acquisition with guaranteed release, not locking: a borrow
// request never blocks, it either succeeds immediately or is denied
// immediately, and the caller is expected to handle denial as a normal
// outcome. Defer the guard's Release (or use the View/Update helpers, which
// do it for you) so the state unwinds on every exit path:
//
//	c := refcell.New(32)
//	g, err := c.BorrowMut()
//	if err != nil {
//		// someone is reading or writing; back off
//	}
//	defer g.Release()
//	g.Set(100)
//
// # Single-thread contract
//
// The state transitions are plain read-modify-writes through a cell.Cell.
// RefCell serializes aliasing within one logical thread of execution; it is
// not a concurrency primitive, and sharing one across goroutines violates
// its contract. Compose with the rc package (an Rc over a RefCell) for
// shared, mutable, runtime-checked data within that contract.
package refcell
