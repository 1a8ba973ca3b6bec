package typelist

import (
	"math/rand"
	"testing"

	"github.com/go-test/deep"
)

func TestConcat(t *testing.T) {
	tests := []struct {
		name   string
		left   *List[int]
		right  *List[int]
		expect []int
	}{
		{
			name:   "both empty",
			expect: []int{},
		},
		{
			name:   "empty right",
			left:   Of(1, 2),
			expect: []int{1, 2},
		},
		{
			name:   "empty left",
			right:  Of(3, 4),
			expect: []int{3, 4},
		},
		{
			name:   "both non empty",
			left:   Of(1, 2),
			right:  Of(3, 4, 5),
			expect: []int{1, 2, 3, 4, 5},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Concat(tt.left, tt.right)
			if diff := deep.Equal(got.Slice(), tt.expect); diff != nil {
				t.Errorf("%+v", diff)
			}
		})
	}
}

func TestConcatProperties(t *testing.T) {
	r := rand.New(rand.NewSource(2))
	for i := 0; i < 50; i++ {
		a, b, c := randomList(r, r.Intn(10)), randomList(r, r.Intn(10)), randomList(r, r.Intn(10))
		ab := Concat(a, b)
		if ab.Len() != a.Len()+b.Len() {
			t.Fatalf("length of %s ++ %s is %d", a, b, ab.Len())
		}
		if !Same(Concat(ab, c), Concat(a, Concat(b, c))) {
			t.Fatalf("concat of %s, %s, %s is not associative", a, b, c)
		}
		if diff := deep.Equal(ab.Slice(), append(a.Slice(), b.Slice()...)); diff != nil {
			t.Fatalf("%+v", diff)
		}
	}
}

func TestMirror(t *testing.T) {
	if diff := deep.Equal(Mirror(Of(1, 2, 3)).Slice(), []int{3, 2, 1}); diff != nil {
		t.Errorf("%+v", diff)
	}
	if Mirror(Empty[int]()) != nil {
		t.Errorf("mirror of empty list must be empty")
	}
	r := rand.New(rand.NewSource(3))
	for size := 0; size < 30; size++ {
		l := randomList(r, size)
		if !Same(Mirror(Mirror(l)), l) {
			t.Fatalf("mirror is not an involution for %s", l)
		}
	}
}
