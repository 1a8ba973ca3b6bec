package typelist

import "golang.org/x/exp/constraints"

// Ordering is the verdict of comparing two elements.
type Ordering int8

const (
	Less Ordering = iota - 1
	Equal
	Greater
)

func (o Ordering) String() string {
	switch o {
	case Less:
		return "LESS"
	case Equal:
		return "EQUAL"
	default:
		return "GREATER"
	}
}

// Comparator is the capability Merge, MergeSort, Min and Max need for every
// pair of elements they look at.
type Comparator[T any] interface {
	Compare(a, b T) Ordering
}

// CompareFunc adapts an ordinary function to a Comparator.
type CompareFunc[T any] func(a, b T) Ordering

func (f CompareFunc[T]) Compare(a, b T) Ordering {
	return f(a, b)
}

// Natural returns the comparator of the < operator on signed integers.
func Natural[T constraints.Signed]() Comparator[T] {
	return CompareFunc[T](func(a, b T) Ordering {
		switch {
		case a < b:
			return Less
		case a > b:
			return Greater
		default:
			return Equal
		}
	})
}

// IsGreater collapses the verdict of c to greater / not greater.
func IsGreater[T any](c Comparator[T], a, b T) bool {
	return c.Compare(a, b) == Greater
}

func mustComparator[T any](c Comparator[T]) {
	if c == nil {
		panic(ErrNoComparator)
	}
}
