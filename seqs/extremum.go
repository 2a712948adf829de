package seqs

import (
	"cmp"
	"errors"
	"iter"

	"golang.org/x/exp/constraints"
)

// ErrEmptySequence is returned when an element is requested from a sequence with no elements.
var ErrEmptySequence = errors.New("seqs: sequence has no elements")

// Min returns the smallest element of seq.
// The boolean is false if seq is empty.
// Floating point NaNs order before every other value, as in cmp.Compare.
func Min[T constraints.Ordered](seq iter.Seq[T]) (T, bool) {
	return bestBy(seq, identity[T], cmp.Compare[T], isLess)
}

// Max returns the largest element of seq.
// The boolean is false if seq is empty.
func Max[T constraints.Ordered](seq iter.Seq[T]) (T, bool) {
	return bestBy(seq, identity[T], cmp.Compare[T], isGreater)
}

// MinOr returns the smallest element of seq, or fallback if seq is empty.
func MinOr[T constraints.Ordered](seq iter.Seq[T], fallback T) T {
	if v, ok := Min(seq); ok {
		return v
	}
	return fallback
}

// MaxOr returns the largest element of seq, or fallback if seq is empty.
func MaxOr[T constraints.Ordered](seq iter.Seq[T], fallback T) T {
	if v, ok := Max(seq); ok {
		return v
	}
	return fallback
}

// MinBy returns the element of seq whose key is the smallest.
// If several elements share the smallest key, the first one wins.
// It returns ErrEmptySequence if seq is empty.
func MinBy[T any, K constraints.Ordered](seq iter.Seq[T], key func(T) K) (T, error) {
	return MinByFunc(seq, key, cmp.Compare[K])
}

// MaxBy returns the element of seq whose key is the largest.
// If several elements share the largest key, the first one wins.
// It returns ErrEmptySequence if seq is empty.
func MaxBy[T any, K constraints.Ordered](seq iter.Seq[T], key func(T) K) (T, error) {
	return MaxByFunc(seq, key, cmp.Compare[K])
}

// MinByOr is like MinBy but calls orElse instead of failing when seq is empty.
// orElse is not called otherwise.
func MinByOr[T any, K constraints.Ordered](seq iter.Seq[T], key func(T) K, orElse func() T) T {
	if best, ok := bestBy(seq, key, cmp.Compare[K], isLess); ok {
		return best
	}
	return orElse()
}

// MaxByOr is like MaxBy but calls orElse instead of failing when seq is empty.
// orElse is not called otherwise.
func MaxByOr[T any, K constraints.Ordered](seq iter.Seq[T], key func(T) K, orElse func() T) T {
	if best, ok := bestBy(seq, key, cmp.Compare[K], isGreater); ok {
		return best
	}
	return orElse()
}

// MinByFunc is like MinBy but orders keys with compare, which returns
// a negative number when a < b, zero when a == b and a positive number when a > b.
func MinByFunc[T, K any](seq iter.Seq[T], key func(T) K, compare func(a, b K) int) (T, error) {
	best, ok := bestBy(seq, key, compare, isLess)
	if !ok {
		return best, ErrEmptySequence
	}
	return best, nil
}

// MaxByFunc is like MaxBy but orders keys with compare.
func MaxByFunc[T, K any](seq iter.Seq[T], key func(T) K, compare func(a, b K) int) (T, error) {
	best, ok := bestBy(seq, key, compare, isGreater)
	if !ok {
		return best, ErrEmptySequence
	}
	return best, nil
}

// bestBy scans seq once, keeping the element whose key satisfies better
// against the best key so far. better must be strict so ties keep the first element.
func bestBy[T, K any](seq iter.Seq[T], key func(T) K, compare func(a, b K) int, better func(int) bool) (T, bool) {
	var (
		best    T
		bestKey K
	)
	first := true
	for v := range seq {
		k := key(v)
		if first {
			best, bestKey = v, k
			first = false
			continue
		}
		if better(compare(k, bestKey)) {
			best, bestKey = v, k
		}
	}
	return best, !first
}

func isLess(c int) bool { return c < 0 }
func isGreater(c int) bool { return c > 0 }

func identity[T any](v T) T { return v }
