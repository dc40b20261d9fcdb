package lattice

// The operators below require equality on T, not on L: two lattice
// values are compared by their Get views, never by structural identity
// of the wrapping type. L and T must be named at the call site; PL is
// always inferred.

// Equal computes l = r, where two elements are equal when their views
// coincide.
func Equal[L any, T comparable, PL Ptr[L, T]](l, r L) bool {
	return PL(&l).Get() == PL(&r).Get()
}

// NotEqual computes l ≠ r.
func NotEqual[L any, T comparable, PL Ptr[L, T]](l, r L) bool {
	return !Equal[L, T, PL](l, r)
}

// Leq computes l ⊑ r in the partial order induced by Join, by checking
// that l ⊔ r = r. The join lands on the copy of l made by the call
// itself; neither value held by the caller is mutated.
func Leq[L any, T comparable, PL Ptr[L, T]](l, r L) bool {
	PL(&l).Join(r)
	return PL(&l).Get() == PL(&r).Get()
}
