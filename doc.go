// Package typelist implements a persistent, append-ordered list of comparable
// values and the structural algorithms over it: length, push, pop,
// concatenation, split, mirror, two-way merge, merge sort, minimum and
// maximum.
//
// A list is either Empty (the nil *List) or Cons(Rest, Last), where Last is
// the most recently pushed element. Walking from a list towards Empty visits
// elements from right to left. No operation modifies an existing list; every
// result is a new list that may share tails with its inputs, so lists can be
// passed between goroutines freely.
//
// The algorithms are intended to run once, at build time, through the
// typelistgen generator, which emits the results as Go constant tables.
package typelist
