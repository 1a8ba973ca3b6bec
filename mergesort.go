package typelist

import "golang.org/x/exp/constraints"

// MergeSort returns the elements of l in ascending order.
func MergeSort[T constraints.Signed](l *List[T]) *List[T] {
	return MergeSortWith(l, Natural[T]())
}

// MergeSortWith returns the elements of l in ascending order under c. The sort
// is stable: equal elements keep their written order.
func MergeSortWith[T any](l *List[T], c Comparator[T]) *List[T] {
	mustComparator(c)
	return mergeSort(l, c)
}

func mergeSort[T any](l *List[T], c Comparator[T]) *List[T] {
	switch l.Shape() {
	case ShapeEmpty, ShapeSingle:
		return l
	default:
		left, right := SplitHalf(l)
		return merge(mergeSort(left, c), mergeSort(right, c), c)
	}
}

// IsSorted reports whether no element of l is greater than the one after it.
func IsSorted[T any](l *List[T], c Comparator[T]) bool {
	mustComparator(c)
	for n := l; n.Len() > 1; n = n.rest {
		if IsGreater(c, n.rest.last, n.last) {
			return false
		}
	}
	return true
}
