package typelist

import "fmt"

// Split partitions l into left and right so that left holds the first mid
// elements and Concat(left, right) equals l.
func Split[T any](l *List[T], mid int) (left, right *List[T], err error) {
	if mid < 0 || mid > l.Len() {
		return nil, nil, fmt.Errorf("%w: %d is not in [0, %d]", ErrBadIndex, mid, l.Len())
	}
	left, right = splitInner(l, nil, l.Len()-mid)

	return left, right, nil
}

// SplitHalf splits l so that left gets the larger half on odd lengths. For
// lists of two or more elements both halves are strictly shorter than l.
func SplitHalf[T any](l *List[T]) (left, right *List[T]) {
	// The budget is the size of the right half, floor(Len/2).
	return splitInner(l, nil, l.Len()/2)
}

// splitInner peels budget elements off the append end of l into buf, which
// collects them in reverse, and mirrors buf back once the budget runs out.
// The budget never exceeds l.Len().
func splitInner[T any](l, buf *List[T], budget int) (*List[T], *List[T]) {
	if budget == 0 {
		return l, Mirror(buf)
	}
	return splitInner(l.rest, buf.Push(l.last), budget-1)
}
