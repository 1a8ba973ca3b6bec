package typelist

// Concat returns the elements of left followed by the elements of right.
// right is unfolded one Cons at a time and re-pushed onto left, so the result
// shares left as its tail.
func Concat[T any](left, right *List[T]) *List[T] {
	switch {
	case right == nil:
		return left
	case left == nil:
		return right
	default:
		return Concat(left, right.rest).Push(right.last)
	}
}

// Mirror returns the list in reverse order.
func Mirror[T any](l *List[T]) *List[T] {
	return inverse(l, nil)
}

// inverse peels l from its append end onto buf.
func inverse[T any](l, buf *List[T]) *List[T] {
	if l == nil {
		return buf
	}
	return inverse(l.rest, buf.Push(l.last))
}
