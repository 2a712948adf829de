// Package cursors adapts forward-only cursors to iter.Seq.
//
// A cursor is the stateful "advance, then read" protocol used by result sets,
// scanners and hand-written iterators:
//
//	for c.Next() {
//		use(c.Current())
//	}
//
// [Seq], [Map] and [ToSlice] bridge such a cursor to the range-over-func world.
// The adapters borrow the cursor: they never rewind or close it.
package cursors

import (
	"fmt"
	"iter"
)

// Cursor is a forward-only, single-pass iteration handle.
type Cursor[T any] interface {
	// Next advances the cursor and reports whether an element is available.
	// Once it returns false it keeps returning false.
	Next() bool

	// Current returns the element the cursor is on.
	// It is only meaningful after Next returned true.
	Current() T
}

// SliceCursor walks a slice from front to back.
type SliceCursor[T any] struct {
	s   []T
	pos int
}

// FromSlice returns a cursor positioned before the first element of s.
func FromSlice[T any](s []T) *SliceCursor[T] {
	return &SliceCursor[T]{s: s}
}

func (c *SliceCursor[T]) Next() bool {
	if c.pos >= len(c.s) {
		return false
	}
	c.pos++
	return true
}

// Current returns the zero value if the cursor has not been advanced.
func (c *SliceCursor[T]) Current() (val T) {
	if c.pos == 0 {
		return val
	}
	return c.s[c.pos-1]
}

// Remaining reports how many elements Next has yet to produce.
func (c *SliceCursor[T]) Remaining() int {
	return len(c.s) - c.pos
}

// PullCursor walks an iter.Seq through iter.Pull.
// It must be closed when no longer needed.
type PullCursor[T any] struct {
	next    func() (T, bool)
	stop    func()
	current T
	done    bool
}

// FromSeq returns a cursor over seq.
func FromSeq[T any](seq iter.Seq[T]) *PullCursor[T] {
	next, stop := iter.Pull(seq)
	return &PullCursor[T]{next: next, stop: stop}
}

func (c *PullCursor[T]) Next() bool {
	if c.done {
		return false
	}
	v, ok := c.next()
	if !ok {
		c.done = true
		var zero T
		c.current = zero
		return false
	}
	c.current = v
	return true
}

func (c *PullCursor[T]) Current() T {
	return c.current
}

// Close releases the underlying iterator. It is safe to call more than once;
// a closed cursor reports no more elements.
func (c *PullCursor[T]) Close() {
	c.done = true
	var zero T
	c.current = zero
	c.stop()
}

type funcCursor[T any] struct {
	next    func() bool
	current func() T
	done    bool
}

// Next stops consulting next once it has reported the end.
func (c *funcCursor[T]) Next() bool {
	if c.done {
		return false
	}
	if !c.next() {
		c.done = true
		return false
	}
	return true
}

func (c *funcCursor[T]) Current() T { return c.current() }

// FromFuncs builds a cursor from a pair of functions, typically method values
// of a type with a similar protocol:
//
//	sc := bufio.NewScanner(r)
//	lines := cursors.Seq(cursors.FromFuncs(sc.Scan, sc.Text))
func FromFuncs[T any](next func() bool, current func() T) Cursor[T] {
	return &funcCursor[T]{next: next, current: current}
}

type castCursor[T any] struct {
	Cursor[any]
}

func (c castCursor[T]) Current() T {
	v := c.Cursor.Current()
	if v == nil {
		var zero T
		return zero
	}
	t, ok := v.(T)
	if !ok {
		panic(fmt.Sprintf("cursors: element of type %T is not %T", v, t))
	}
	return t
}

// Cast adapts a cursor over untyped elements to a cursor over T.
// A nil element becomes the zero value of T; any other element that is not
// a T makes Current panic.
func Cast[T any](c Cursor[any]) Cursor[T] {
	return castCursor[T]{Cursor: c}
}
