package gen

import (
	"errors"
	"fmt"
	"go/token"
	"strings"

	"github.com/sbezverk/typelist"
)

var (
	// ErrInvalidName error returns when a list name is not an exported Go identifier
	ErrInvalidName = errors.New("invalid list name")
	// ErrNameCollision error returns when identifiers generated for two lists clash
	ErrNameCollision = errors.New("generated identifier collision")
)

// Table is a list evaluated at generation time.
type Table struct {
	Name string
	// Input is the list in written order
	Input   []int64
	Sorted  []int64
	Len     int
	Min     int64
	Max     int64
	Bounded bool
}

func (t *Table) Key() string {
	return t.Name
}

// identifiers returns every top level identifier generated for the table.
func (t *Table) identifiers() []string {
	return []string{t.Name, t.Name + "Len", t.Name + "Min", t.Name + "Max"}
}

// BuildTable evaluates the list values named name.
func BuildTable(name string, values []int64) (*Table, error) {
	if !token.IsIdentifier(name) || !token.IsExported(name) {
		return nil, fmt.Errorf("%w: %q is not an exported Go identifier", ErrInvalidName, name)
	}
	l := typelist.Of(values...)
	sorted := typelist.MergeSort(l)
	if sorted.Len() != l.Len() || !typelist.IsSorted(sorted, typelist.Natural[int64]()) {
		return nil, fmt.Errorf("list %s: sorting %s produced %s", name, l, sorted)
	}
	t := &Table{
		Name:   name,
		Input:  l.Slice(),
		Sorted: sorted.Slice(),
		Len:    l.Len(),
	}
	min, err := typelist.Min(l)
	switch {
	case errors.Is(err, typelist.ErrEmptyList):
		return t, nil
	case err != nil:
		return nil, fmt.Errorf("list %s: %w", name, err)
	}
	max, err := typelist.Max(l)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", name, err)
	}
	t.Min, t.Max, t.Bounded = min, max, true

	return t, nil
}

var byName = typelist.CompareFunc[*Table](func(a, b *Table) typelist.Ordering {
	return typelist.Ordering(strings.Compare(a.Name, b.Name))
})

// orderTables sorts tables by name and checks their identifiers do not clash.
func orderTables(tables []*Table) ([]*Table, error) {
	ordered := typelist.MergeSortWith(typelist.Of(tables...), byName).Slice()
	owner := make(map[string]string)
	for _, t := range ordered {
		for _, id := range t.identifiers() {
			if other, ok := owner[id]; ok {
				return nil, fmt.Errorf("%w: %s is generated for both %s and %s", ErrNameCollision, id, other, t.Name)
			}
			owner[id] = t.Name
		}
	}
	return ordered, nil
}
