package seqs

import "iter"

// ForEach calls action for every element of seq, in order.
func ForEach[T any](seq iter.Seq[T], action func(T)) {
	for v := range seq {
		action(v)
	}
}
