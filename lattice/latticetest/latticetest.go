// Package latticetest validates the semantic obligations of a lattice
// implementation: the semilattice laws of Join and the properties of
// the partial order derived from it. The lattice contract cannot
// enforce these structurally, so every implementer should run both
// checks over a representative sample of elements:
//
//	func TestIntervalLattice(t *testing.T) {
//		elems := []Interval{ ... }
//		latticetest.Laws[Interval, int](t, elems)
//		latticetest.Order[Interval, int](t, elems)
//	}
//
// The sample should include the bottom element if one exists, as well
// as pairs that are incomparable under the intended order.
package latticetest

import (
	"fmt"
	"testing"

	"github.com/fatih/color"

	"github.com/deepinit-arek/LatticeFlow/lattice"
)

var colorize = struct {
	Element func(...interface{}) string
	Op      func(...interface{}) string
}{
	Element: color.New(color.FgCyan).SprintFunc(),
	Op:      color.New(color.FgYellow).SprintFunc(),
}

// join yields x ⊔ y without touching either operand.
func join[L any, T comparable, PL lattice.Ptr[L, T]](x, y L) L {
	PL(&x).Join(y)
	return x
}

// view reads the element behind x.
func view[L any, T comparable, PL lattice.Ptr[L, T]](x L) T {
	return PL(&x).Get()
}

// str renders an element for counterexample output.
func str[L any, T comparable, PL lattice.Ptr[L, T]](x L) string {
	return colorize.Element(fmt.Sprintf("%v", view[L, T, PL](x)))
}

// Laws checks that Join is idempotent, commutative and associative over
// every pair and triple drawn from elems, and that Equal and NotEqual
// agree with each other.
func Laws[L any, T comparable, PL lattice.Ptr[L, T]](t *testing.T, elems []L) {
	var (
		jn  = join[L, T, PL]
		el  = str[L, T, PL]
		eq  = lattice.Equal[L, T, PL]
		neq = lattice.NotEqual[L, T, PL]
		sym = colorize.Op("⊔")
	)

	for _, x := range elems {
		if res := jn(x, x); neq(res, x) {
			t.Errorf("%s %s %s = %s, expected %s",
				el(x), sym, el(x), el(res), el(x))
		}
	}

	for _, x := range elems {
		for _, y := range elems {
			if eq(x, y) == neq(x, y) {
				t.Errorf("= and ≠ disagree on %s and %s", el(x), el(y))
			}

			xy, yx := jn(x, y), jn(y, x)
			if neq(xy, yx) {
				t.Errorf("%s %s %s = %s, but %s %s %s = %s",
					el(x), sym, el(y), el(xy),
					el(y), sym, el(x), el(yx))
			}

			for _, z := range elems {
				l, r := jn(x, jn(y, z)), jn(jn(x, y), z)
				if neq(l, r) {
					t.Errorf("%s %s (%s %s %s) = %s, but (%s %s %s) %s %s = %s",
						el(x), sym, el(y), sym, el(z), el(l),
						el(x), sym, el(y), sym, el(z), el(r))
				}
			}
		}
	}
}

// Order checks that the order induced by Join is reflexive,
// antisymmetric and transitive over elems, and that comparing two
// elements leaves both of their views unchanged.
func Order[L any, T comparable, PL lattice.Ptr[L, T]](t *testing.T, elems []L) {
	var (
		get = view[L, T, PL]
		el  = str[L, T, PL]
		neq = lattice.NotEqual[L, T, PL]
		leq = lattice.Leq[L, T, PL]
		sym = colorize.Op("⊑")
	)

	for _, x := range elems {
		if !leq(x, x) {
			t.Errorf("%s %s %s does not hold", el(x), sym, el(x))
		}
	}

	for _, x := range elems {
		for _, y := range elems {
			before := [2]T{get(x), get(y)}
			xy, yx := leq(x, y), leq(y, x)
			if after := [2]T{get(x), get(y)}; after != before {
				t.Errorf("comparing %s and %s mutated an operand", el(x), el(y))
			}

			if xy && yx && neq(x, y) {
				t.Errorf("%s and %s are mutually %s but unequal", el(x), el(y), sym)
			}

			for _, z := range elems {
				if xy && leq(y, z) && !leq(x, z) {
					t.Errorf("%s %s %s %s %s, but not %s %s %s",
						el(x), sym, el(y), sym, el(z), el(x), sym, el(z))
				}
			}
		}
	}
}
