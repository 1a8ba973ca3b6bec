package typelist

import (
	"fmt"
	"iter"
)

// Shape classifies a list for the algorithms that need mutually exclusive
// base and recursive cases.
type Shape uint8

const (
	ShapeEmpty Shape = iota
	ShapeSingle
	ShapeMany
)

func (s Shape) String() string {
	switch s {
	case ShapeEmpty:
		return "EMPTY"
	case ShapeSingle:
		return "SINGLE"
	default:
		return "MANY"
	}
}

// List is an immutable Cons(Rest, Last) node. The nil *List is the empty list,
// all methods accept a nil receiver.
type List[T any] struct {
	rest   *List[T]
	last   T
	length int
}

// Empty returns the empty list.
func Empty[T any]() *List[T] {
	return nil
}

// Of builds a list from values in their written order: values[0] ends up
// innermost and values[len(values)-1] is the outermost Last.
func Of[T any](values ...T) *List[T] {
	var l *List[T]
	for _, v := range values {
		l = l.Push(v)
	}
	return l
}

// Len returns the number of elements, 0 for the empty list.
func (l *List[T]) Len() int {
	if l == nil {
		return 0
	}
	return l.length
}

// Shape returns the shape of the list.
func (l *List[T]) Shape() Shape {
	switch l.Len() {
	case 0:
		return ShapeEmpty
	case 1:
		return ShapeSingle
	default:
		return ShapeMany
	}
}

// Push returns Cons(l, v), l is left untouched.
func (l *List[T]) Push(v T) *List[T] {
	return &List[T]{
		rest:   l,
		last:   v,
		length: l.Len() + 1,
	}
}

// Pop returns the most recently pushed element.
func (l *List[T]) Pop() (T, error) {
	if l == nil {
		var zero T
		return zero, ErrEmptyList
	}
	return l.last, nil
}

// Last is Pop with an ok flag instead of an error.
func (l *List[T]) Last() (T, bool) {
	if l == nil {
		var zero T
		return zero, false
	}
	return l.last, true
}

// Rest returns the list without its last element, the rest of the empty list
// is the empty list.
func (l *List[T]) Rest() *List[T] {
	if l == nil {
		return nil
	}
	return l.rest
}

// Slice returns the elements in written order.
func (l *List[T]) Slice() []T {
	out := make([]T, l.Len())
	for n := l; n != nil; n = n.rest {
		out[n.length-1] = n.last
	}
	return out
}

// All iterates over the elements in written order.
func (l *List[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, v := range l.Slice() {
			if !yield(v) {
				return
			}
		}
	}
}

func (l *List[T]) String() string {
	return fmt.Sprint(l.Slice())
}

// Same reports whether a and b hold the same elements in the same order.
func Same[T comparable](a, b *List[T]) bool {
	if a.Len() != b.Len() {
		return false
	}
	for ; a != nil; a, b = a.rest, b.rest {
		if a == b {
			return true
		}
		if a.last != b.last {
			return false
		}
	}
	return true
}
