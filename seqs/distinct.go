package seqs

import "iter"

// DistinctBy returns a sequence that yields, for each distinct key, only the
// first element that produced it. Keys keep the order in which they first appear.
// It maintains a set of seen keys, so memory usage is proportional to the number of distinct keys.
func DistinctBy[T any, K comparable](seq iter.Seq[T], key func(T) K) iter.Seq[T] {
	return func(yield func(T) bool) {
		seen := make(map[K]struct{})
		for v := range seq {
			k := key(v)
			if _, ok := seen[k]; ok {
				continue
			}
			seen[k] = struct{}{}
			if !yield(v) {
				return
			}
		}
	}
}

// Distinct returns a sequence that yields only the first occurrence of each element.
func Distinct[T comparable](seq iter.Seq[T]) iter.Seq[T] {
	return DistinctBy(seq, identity[T])
}
