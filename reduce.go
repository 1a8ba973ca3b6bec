package typelist

import "golang.org/x/exp/constraints"

// Min returns the smallest element of l.
func Min[T constraints.Signed](l *List[T]) (T, error) {
	return MinWith(l, Natural[T]())
}

// Max returns the largest element of l.
func Max[T constraints.Signed](l *List[T]) (T, error) {
	return MaxWith(l, Natural[T]())
}

// MinWith returns the smallest element of l under c, the earliest one on ties.
func MinWith[T any](l *List[T], c Comparator[T]) (T, error) {
	mustComparator(c)
	return reduce(l, func(a, b T) T {
		if IsGreater(c, a, b) {
			return b
		}
		return a
	})
}

// MaxWith returns the largest element of l under c, the earliest one on ties.
func MaxWith[T any](l *List[T], c Comparator[T]) (T, error) {
	mustComparator(c)
	return reduce(l, func(a, b T) T {
		if IsGreater(c, b, a) {
			return b
		}
		return a
	})
}

// reduce seeds the fold with the last element and folds the rest against it.
func reduce[T any](l *List[T], pick func(a, b T) T) (T, error) {
	if l == nil {
		var zero T
		return zero, ErrEmptyList
	}
	return fold(l.rest, l.last, pick), nil
}

// fold(Empty, v) = v, fold(Cons(r, x), v) = pick(fold(r, x), v). The running
// extreme of the inner elements is always the first argument of pick.
func fold[T any](l *List[T], v T, pick func(a, b T) T) T {
	if l == nil {
		return v
	}
	return pick(fold(l.rest, l.last, pick), v)
}
