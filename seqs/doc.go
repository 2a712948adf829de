/*
Package seqs provides small building blocks for Go 1.23+ iterators (iter.Seq)
that the standard library leaves out.

It covers:

  - **Single values**: [Single] wraps a value as a one-element sequence,
    [Prepend] and [Append] attach a value to either end of a sequence.
  - **Extremes with fallbacks**: [MinOr] and [MaxOr] return the smallest or
    largest element, or a fallback when the sequence is empty.
  - **Extremes by key**: [MinBy], [MaxBy], [MinByOr], [MaxByOr] and the
    comparator forms [MinByFunc], [MaxByFunc] pick the element with the
    smallest or largest derived key. Ties go to the first element seen.
  - **Deduplication**: [DistinctBy] keeps the first element for each derived key.
  - **Traversal**: [ForEach] runs an action over every element.

# Laziness

Functions returning iter.Seq do no work until the sequence is ranged over and
stop as soon as the consumer stops. Functions returning a value consume the
sequence exactly once.

	first := seqs.Prepend(slices.Values(rest), head)
	oldest, err := seqs.MinBy(slices.Values(users), func(u User) time.Time {
		return u.CreatedAt
	})

# Error Handling

[MinBy], [MaxBy], [MinByFunc] and [MaxByFunc] return [ErrEmptySequence] when
there is nothing to choose from. The "Or" variants never fail: they resolve the
empty case through the supplied fallback.
*/
package seqs
