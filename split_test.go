package typelist

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/go-test/deep"
)

func TestSplit(t *testing.T) {
	list := Of(1, 2, 3, 4, 5, 4, 1, 0)
	tests := []struct {
		name  string
		mid   int
		left  []int
		right []int
		fail  bool
	}{
		{
			name:  "middle",
			mid:   4,
			left:  []int{1, 2, 3, 4},
			right: []int{5, 4, 1, 0},
		},
		{
			name:  "zero",
			mid:   0,
			left:  []int{},
			right: []int{1, 2, 3, 4, 5, 4, 1, 0},
		},
		{
			name:  "full length",
			mid:   8,
			left:  []int{1, 2, 3, 4, 5, 4, 1, 0},
			right: []int{},
		},
		{
			name: "past the end",
			mid:  9,
			fail: true,
		},
		{
			name: "negative",
			mid:  -1,
			fail: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			left, right, err := Split(list, tt.mid)
			if err != nil && !tt.fail {
				t.Fatalf("supposed to succeed but fail with error: %+v", err)
			}
			if err == nil && tt.fail {
				t.Fatalf("supposed to fail but succeeded")
			}
			if tt.fail {
				if !errors.Is(err, ErrBadIndex) {
					t.Fatalf("expected %v, got %v", ErrBadIndex, err)
				}
				return
			}
			if diff := deep.Equal(left.Slice(), tt.left); diff != nil {
				t.Errorf("left: %+v", diff)
			}
			if diff := deep.Equal(right.Slice(), tt.right); diff != nil {
				t.Errorf("right: %+v", diff)
			}
		})
	}
}

func TestSplitZeroIsIdentity(t *testing.T) {
	list := Of(3, 1, 2)
	left, right, err := Split(list, 0)
	if err != nil {
		t.Fatalf("supposed to succeed but fail with error: %+v", err)
	}
	if left != nil {
		t.Fatalf("left part must be empty, got %s", left)
	}
	if !Same(right, list) {
		t.Fatalf("right part %s must equal %s", right, list)
	}
}

func TestSplitRoundTrip(t *testing.T) {
	r := rand.New(rand.NewSource(4))
	for size := 0; size < 16; size++ {
		l := randomList(r, size)
		for mid := 0; mid <= size; mid++ {
			left, right, err := Split(l, mid)
			if err != nil {
				t.Fatalf("split of %s at %d failed with error: %+v", l, mid, err)
			}
			if left.Len() != mid {
				t.Fatalf("split of %s at %d has left length %d", l, mid, left.Len())
			}
			if !Same(Concat(left, right), l) {
				t.Fatalf("split of %s at %d does not concatenate back: %s %s", l, mid, left, right)
			}
		}
	}
}

func TestSplitHalf(t *testing.T) {
	tests := []struct {
		name  string
		input []int
		left  []int
		right []int
	}{
		{
			name:  "empty",
			left:  []int{},
			right: []int{},
		},
		{
			name:  "single",
			input: []int{1},
			left:  []int{1},
			right: []int{},
		},
		{
			name:  "two",
			input: []int{1, 2},
			left:  []int{1},
			right: []int{2},
		},
		{
			name:  "odd length gives the larger half to the left",
			input: []int{5, 100, 3, 10, -1},
			left:  []int{5, 100, 3},
			right: []int{10, -1},
		},
		{
			name:  "even length",
			input: []int{1, 2, 3, 4, 5, 4, 1, 0},
			left:  []int{1, 2, 3, 4},
			right: []int{5, 4, 1, 0},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			left, right := SplitHalf(Of(tt.input...))
			if diff := deep.Equal(left.Slice(), tt.left); diff != nil {
				t.Errorf("left: %+v", diff)
			}
			if diff := deep.Equal(right.Slice(), tt.right); diff != nil {
				t.Errorf("right: %+v", diff)
			}
		})
	}
}
