package cursors

import "iter"

// Seq returns a sequence over the elements c has yet to produce.
// Each step of the sequence advances c once; nothing is buffered, so the
// sequence can only be consumed once and reflects whatever c has left.
func Seq[T any](c Cursor[T]) iter.Seq[T] {
	return Map(c, func(v T) T { return v })
}

// Map is like Seq but yields transform applied to each element.
// transform runs once per successful advance, only when the element is demanded.
func Map[T, R any](c Cursor[T], transform func(T) R) iter.Seq[R] {
	return func(yield func(R) bool) {
		for c.Next() {
			if !yield(transform(c.Current())) {
				return
			}
		}
	}
}

// ToSlice drains c into a new slice, in traversal order.
// It returns an empty, non-nil slice if c has nothing left.
func ToSlice[T any](c Cursor[T]) []T {
	out := []T{}
	for v := range Seq(c) {
		out = append(out, v)
	}
	return out
}
