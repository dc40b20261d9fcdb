package lattice

import "testing"

// maxInt is a semilattice over the usual numeric order on ints, where
// join yields the greater operand.
type maxInt struct {
	n int
}

func (e *maxInt) Get() int { return e.n }

func (e *maxInt) Join(other maxInt) {
	if other.n > e.n {
		e.n = other.n
	}
}

var _ = Assert[maxInt, int]
var _ Interface[maxInt, int] = &maxInt{}

func TestMaxJoin(t *testing.T) {
	tests := []struct {
		a, b, expected maxInt
	}{
		{maxInt{0}, maxInt{0}, maxInt{0}},
		{maxInt{3}, maxInt{7}, maxInt{7}},
		{maxInt{7}, maxInt{3}, maxInt{7}},
		{maxInt{5}, maxInt{5}, maxInt{5}},
		{maxInt{-1}, maxInt{1}, maxInt{1}},
		{maxInt{-7}, maxInt{-3}, maxInt{-3}},
	}

	for _, test := range tests {
		res := test.a
		res.Join(test.b)
		if NotEqual[maxInt, int](res, test.expected) {
			t.Errorf("%d ⊔ %d = %d, expected %d\n", test.a.n, test.b.n, res.n, test.expected.n)
		} else {
			t.Logf("%d ⊔ %d = %d\n", test.a.n, test.b.n, res.n)
		}
	}
}

func TestMaxJoinLaws(t *testing.T) {
	elems := []maxInt{{-7}, {-1}, {0}, {3}, {5}, {7}}

	join := func(a, b maxInt) maxInt {
		a.Join(b)
		return a
	}

	for _, x := range elems {
		if NotEqual[maxInt, int](join(x, x), x) {
			t.Errorf("%d ⊔ %d ≠ %d\n", x.n, x.n, x.n)
		}

		for _, y := range elems {
			if NotEqual[maxInt, int](join(x, y), join(y, x)) {
				t.Errorf("%d ⊔ %d ≠ %d ⊔ %d\n", x.n, y.n, y.n, x.n)
			}

			for _, z := range elems {
				l, r := join(x, join(y, z)), join(join(x, y), z)
				if NotEqual[maxInt, int](l, r) {
					t.Errorf("%d ⊔ (%d ⊔ %d) = %d, but (%d ⊔ %d) ⊔ %d = %d\n",
						x.n, y.n, z.n, l.n, x.n, y.n, z.n, r.n)
				}
			}
		}
	}
}
