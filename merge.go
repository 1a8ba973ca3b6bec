package typelist

import "golang.org/x/exp/constraints"

// Merge merges two ascending lists of signed integers into one ascending list.
func Merge[T constraints.Signed](left, right *List[T]) *List[T] {
	return MergeWith(left, right, Natural[T]())
}

// MergeWith merges two lists that are ascending under c. The last elements of
// both lists are compared and the greater one is pushed last onto the merge of
// what remains. On a tie the right element is peeled first, so equal elements
// keep left before right.
func MergeWith[T any](left, right *List[T], c Comparator[T]) *List[T] {
	mustComparator(c)
	return merge(left, right, c)
}

func merge[T any](left, right *List[T], c Comparator[T]) *List[T] {
	switch {
	case right == nil:
		return left
	case left == nil:
		return right
	case IsGreater(c, left.last, right.last):
		return merge(left.rest, right, c).Push(left.last)
	default:
		return merge(left, right.rest, c).Push(right.last)
	}
}
