package seqs

import "iter"

// Single returns a sequence that yields value exactly once.
func Single[T any](value T) iter.Seq[T] {
	return func(yield func(T) bool) {
		yield(value)
	}
}

// Prepend returns a sequence that yields head followed by every element of tail.
func Prepend[T any](tail iter.Seq[T], head T) iter.Seq[T] {
	return Concat(Single(head), tail)
}

// Append returns a sequence that yields every element of head followed by tail.
func Append[T any](head iter.Seq[T], tail T) iter.Seq[T] {
	return Concat(head, Single(tail))
}

// Concat yields the elements of each sequence in turn.
func Concat[T any](seqs ...iter.Seq[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, seq := range seqs {
			for v := range seq {
				if !yield(v) {
					return
				}
			}
		}
	}
}
