// Package units shows a client of typelistgen: the exponent lists of composite
// units are declared in units.yaml and sorted at build time into lists.go.
package units

import "sort"

//go:generate go run github.com/sbezverk/typelist/cmd/typelistgen generate --manifest units.yaml --out lists.go

// HasDimension reports whether exp is an exponent of Dimensions.
func HasDimension(exp int64) bool {
	i := sort.Search(len(Dimensions), func(i int) bool { return Dimensions[i] >= exp })
	return i < len(Dimensions) && Dimensions[i] == exp
}
