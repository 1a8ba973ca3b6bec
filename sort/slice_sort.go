// Package sort is a slice rendition of the typelist algorithms. It is the
// executable reference the list algebra is checked against.
package sort

import (
	"errors"
	"fmt"

	"golang.org/x/exp/constraints"
)

// ErrBadIndex returns when Split is given an index outside of the slice
var ErrBadIndex = errors.New("bad index")

type Comparable interface {
	constraints.Signed | ~string
}

// Merge merges two ascending slices, taking from left while its head is not
// greater than the head of right.
func Merge[T Comparable](left, right []T) []T {
	switch {
	case len(right) == 0:
		return append([]T{}, left...)
	case len(left) == 0:
		return append([]T{}, right...)
	case left[0] <= right[0]:
		return append([]T{left[0]}, Merge(left[1:], right)...)
	default:
		return append([]T{right[0]}, Merge(left, right[1:])...)
	}
}

// MergeSort returns a sorted copy of s, s itself is not modified.
func MergeSort[T Comparable](s []T) []T {
	if len(s) < 2 {
		return append([]T{}, s...)
	}
	left, right, _ := Split(s, len(s)/2)

	return Merge(MergeSort(left), MergeSort(right))
}

// Split returns copies of s[:i] and s[i:], moving one element at a time from
// the front of the right part to the back of the left part.
func Split[T Comparable](s []T, i int) ([]T, []T, error) {
	return splitInner([]T{}, s, i)
}

func splitInner[T Comparable](left, right []T, i int) ([]T, []T, error) {
	switch {
	case i == 0:
		return left, append([]T{}, right...), nil
	case i < 0 || len(right) == 0:
		return nil, nil, fmt.Errorf("%w: %d", ErrBadIndex, i)
	default:
		return splitInner(append(left, right[0]), right[1:], i-1)
	}
}

func merge[T Comparable](s []T, low, mid, high int, temp []T) {
	copy(temp[low:high+1], s[low:high+1])
	i, j := low, mid+1
	for k := low; k <= high; k++ {
		switch {
		case i > mid:
			s[k] = temp[j]
			j++
		case j > high:
			s[k] = temp[i]
			i++
		case temp[j] < temp[i]:
			s[k] = temp[j]
			j++
		default:
			s[k] = temp[i]
			i++
		}
	}
}

func sortRange[T Comparable](s []T, low, high int, temp []T) {
	if high <= low {
		return
	}
	mid := low + (high-low)/2
	sortRange(s, low, mid, temp)
	sortRange(s, mid+1, high, temp)
	// Halves are already in order
	if s[mid] <= s[mid+1] {
		return
	}
	merge(s, low, mid, high, temp)
}

// SortInPlace sorts s in place with a single scratch buffer and returns it.
func SortInPlace[T Comparable](s []T) []T {
	temp := make([]T, len(s))
	sortRange(s, 0, len(s)-1, temp)
	return s
}
