package refcell

import "strconv"

// BorrowState is the tagged borrow mode of a RefCell, packed into a single
// signed integer so it fits a cell.Cell and compares in one instruction:
//
//	 0  Unshared    no borrow outstanding
//	-1  Exclusive   exactly one exclusive borrow outstanding
//	 n  Shared(n)   n >= 1 shared borrows outstanding
//
// Any other negative value is unreachable.
type BorrowState int64

const (
	// Unshared is the initial state: no borrow outstanding.
	Unshared BorrowState = 0

	// Exclusive means one exclusive borrow is outstanding.
	Exclusive BorrowState = -1
)

// Shared returns the state representing n outstanding shared borrows.
// n must be >= 1.
func Shared(n int64) BorrowState {
	if n < 1 {
		panic("refcell: Shared requires n >= 1")
	}
	return BorrowState(n)
}

// IsUnshared reports whether no borrow is outstanding.
func (s BorrowState) IsUnshared() bool {
	return s == Unshared
}

// IsExclusive reports whether the exclusive borrow is outstanding.
func (s BorrowState) IsExclusive() bool {
	return s == Exclusive
}

// IsShared reports whether one or more shared borrows are outstanding.
func (s BorrowState) IsShared() bool {
	return s > 0
}

// Readers returns the number of outstanding shared borrows, zero unless
// IsShared.
func (s BorrowState) Readers() int64 {
	if s > 0 {
		return int64(s)
	}
	return 0
}

// String returns "Unshared", "Exclusive" or "Shared(n)". Diagnostic only,
// not on the borrow hot path.
func (s BorrowState) String() string {
	switch {
	case s == Unshared:
		return "Unshared"
	case s == Exclusive:
		return "Exclusive"
	case s > 0:
		return "Shared(" + strconv.FormatInt(int64(s), 10) + ")"
	}
	return "Invalid(" + strconv.FormatInt(int64(s), 10) + ")"
}
