package typelist

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/go-test/deep"

	oracle "github.com/sbezverk/typelist/sort"
)

func TestMergeSort(t *testing.T) {
	tests := []struct {
		name   string
		input  []int8
		expect []int8
	}{
		{
			name:   "empty",
			expect: []int8{},
		},
		{
			name:   "single",
			input:  []int8{7},
			expect: []int8{7},
		},
		{
			name:   "nine elements with duplicates",
			input:  []int8{5, 3, -2, 1, 2, 1, 2, 3, 4},
			expect: []int8{-2, 1, 1, 2, 2, 3, 3, 4, 5},
		},
		{
			name:   "five elements",
			input:  []int8{5, 100, 3, 10, -1},
			expect: []int8{-1, 3, 5, 10, 100},
		},
		{
			name:   "eight elements",
			input:  []int8{50, -100, 5, 100, 3, 10, -1, 100},
			expect: []int8{-100, -1, 3, 5, 10, 50, 100, 100},
		},
		{
			name:   "already sorted",
			input:  []int8{1, 2, 3},
			expect: []int8{1, 2, 3},
		},
		{
			name:   "descending",
			input:  []int8{3, 2, 1, 0},
			expect: []int8{0, 1, 2, 3},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := Of(tt.input...)
			sorted := MergeSort(input)
			if diff := deep.Equal(sorted.Slice(), tt.expect); diff != nil {
				t.Errorf("%+v", diff)
			}
			if !IsSorted(sorted, Natural[int8]()) {
				t.Errorf("%s is not sorted", sorted)
			}
			if !Same(MergeSort(sorted), sorted) {
				t.Errorf("sorting %s again changed it", sorted)
			}
			if diff := deep.Equal(input.Slice(), append([]int8{}, tt.input...)); diff != nil {
				t.Errorf("input was modified: %+v", diff)
			}
		})
	}
}

func TestMergeSortTrivialShapes(t *testing.T) {
	single := Of(7)
	if MergeSort(single) != single {
		t.Errorf("single element list must be returned unchanged")
	}
	if MergeSort(Empty[int]()) != nil {
		t.Errorf("empty list must sort to the empty list")
	}
}

func TestMergeSortMatchesOracle(t *testing.T) {
	r := rand.New(rand.NewSource(5))
	for i := 0; i < 200; i++ {
		l := randomList(r, r.Intn(40))
		got := MergeSort(l)
		if diff := deep.Equal(got.Slice(), oracle.MergeSort(l.Slice())); diff != nil {
			t.Fatalf("sorting %s: %+v", l, diff)
		}
		if !Same(MergeSort(got), got) {
			t.Fatalf("sort of %s is not idempotent", l)
		}
	}
}

func TestMergeSortIsStable(t *testing.T) {
	input := Of(
		tagged{2, "a"},
		tagged{1, "b"},
		tagged{2, "c"},
		tagged{1, "d"},
		tagged{0, "e"},
		tagged{2, "f"},
	)
	expect := []tagged{
		{0, "e"},
		{1, "b"},
		{1, "d"},
		{2, "a"},
		{2, "c"},
		{2, "f"},
	}
	if diff := deep.Equal(MergeSortWith(input, byKey).Slice(), expect); diff != nil {
		t.Errorf("%+v", diff)
	}
}

func TestMergeSortWithStrings(t *testing.T) {
	byString := CompareFunc[string](func(a, b string) Ordering {
		return Ordering(strings.Compare(a, b))
	})
	got := MergeSortWith(Of("mass", "length", "time", "current"), byString)
	if diff := deep.Equal(got.Slice(), []string{"current", "length", "mass", "time"}); diff != nil {
		t.Errorf("%+v", diff)
	}
}

func TestIsSorted(t *testing.T) {
	tests := []struct {
		name   string
		input  []int
		expect bool
	}{
		{
			name:   "empty",
			expect: true,
		},
		{
			name:   "single",
			input:  []int{1},
			expect: true,
		},
		{
			name:   "ascending with ties",
			input:  []int{1, 1, 2},
			expect: true,
		},
		{
			name:  "out of order at the front",
			input: []int{2, 1, 3},
		},
		{
			name:  "out of order at the back",
			input: []int{1, 3, 2},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsSorted(Of(tt.input...), Natural[int]()); got != tt.expect {
				t.Fatalf("expected %t, got %t", tt.expect, got)
			}
		})
	}
}
