// Package lattice defines a capability contract for join-semilattice
// value types, and derives generic comparison operators from it.
//
// A join semilattice is a partially ordered set (S, ⊑) in which every
// pair of elements x and y has a least upper bound, called their join
// and written x ⊔ y. Join is associative, commutative and idempotent:
//
//	associative: x ⊔ (y ⊔ z) = (x ⊔ y) ⊔ z
//	commutative: x ⊔ y = y ⊔ x
//	idempotent:  x ⊔ x = x
//
// Dually, any set S with an associative, commutative, idempotent
// operator ⊔ induces a partial order on S: x ⊑ y if and only if
// x ⊔ y = y. The comparison operators in this package are derived from
// Join through exactly this equivalence, so conforming types never
// hand-write them.
//
// A type L declares itself a join semilattice over an element type T by
// implementing Interface[L, T] on *L: Get and Join live on the pointer
// receiver, and L itself stays a plain value type so that generic code
// can copy elements by assignment. Copies must be independent as far as
// Join is concerned; implementations whose state is map- or
// slice-shaped should back it with persistent structures (see
// github.com/benbjohnson/immutable) rather than mutate shared memory.
//
// Semilattices are not required to have a bottom element, but if one
// exists it is recommended that the zero value of L be it.
package lattice

// Interface is the capability set of a join-semilattice value type L
// over an element type T.
type Interface[L, T any] interface {
	// Get returns the current element of the semilattice. It must not
	// mutate the receiver.
	Get() T

	// Join joins another instance of the semilattice into this one,
	// leaving the receiver as the least upper bound of both. Join must
	// satisfy the semilattice laws and must never mutate other. It has
	// no error channel; implementations that can receive incompatible
	// operands must document their own policy.
	Join(other L)
}

// Ptr is satisfied by the pointer type of any conforming lattice value
// type L over T. The comparison operators accept elements of type L by
// value and reach Get and Join through Ptr, so joins performed during a
// comparison land on a local copy instead of a caller's value.
type Ptr[L, T any] interface {
	*L
	Interface[L, T]
}

// Assert rejects, at compile time, type arguments for which *L does not
// implement the lattice capability set over T. It does nothing at
// runtime. Conformance can be self-checked in package scope:
//
//	var _ = lattice.Assert[Interval, int]
func Assert[L, T any, PL Ptr[L, T]]() {}
