// Package cell implements the single-owner mutable slot that underpins the
// other borrowcell primitives.
//
// A Cell never hands out a pointer into its interior: the only ways in and
// out are Set (total overwrite) and Get (copy-out). Because no reference to
// the slot can escape the type, overwriting is always sound as long as the
// cell has a single logical owner.
//
// The rc package stores its reference count in a Cell, and the refcell
// package stores its borrow state in one; both rely on exactly this
// no-escaping-references property.
package cell

// Cell owns exactly one value of type T.
//
// The zero Cell holds the zero value of T and is ready to use; New exists to
// make the ownership transfer explicit at the construction site.
//
// Contract: a Cell has one logical owner and no call into the same Cell may
// be interleaved with another. The type carries no synchronization and does
// not defend against concurrent access; sharing a Cell across goroutines is
// a precondition violation, not a supported use.
type Cell[T any] struct {
	value T
}

// New returns a Cell owning value.
func New[T any](value T) *Cell[T] {
	return &Cell[T]{value: value}
}

// Set unconditionally overwrites the slot with v. It cannot fail.
//
// Values previously copied out with Get are independent and unaffected, and
// no view into the slot can be invalidated because no view ever exists.
func (c *Cell[T]) Set(v T) {
	c.value = v
}

// Get returns a copy of the current value. It cannot fail.
//
// The copy is shallow: if T contains pointers, slices or maps, the copy
// shares their referents with the slot.
func (c *Cell[T]) Get() T {
	return c.value
}
