package typelist

import "errors"

var (
	// ErrEmptyList returns when Pop, Min or Max is asked for an element of an empty list
	ErrEmptyList = errors.New("empty list")
	// ErrBadIndex returns when Split is given a midpoint outside of [0, Len]
	ErrBadIndex = errors.New("bad index")
	// ErrNoComparator is the panic value of the *With functions called with a nil Comparator
	ErrNoComparator = errors.New("no comparator")
)
