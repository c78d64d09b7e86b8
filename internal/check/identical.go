package check

import "github.com/velalang/velac/internal/types"

// identical reports type equivalence for binary-op/equality purposes
// (spec.md §4.6 "Binary op": "Equality/relational ops require types to be
// equivalent (modulo aliases and native int/uint canonicalization)").
// Once both operands have been fully checked, interned user types compare
// by pointer (spec.md §8 invariant 2), so this only needs to fall back to
// structural comparison for the handful of kinds interning deliberately
// skips (mut-ref, mut-slice) and for basics, which are universe
// singletons and so already compare by pointer too.
func (c *Checker) identical(x, y types.Type) bool {
	x = unwrapAlias(x)
	y = unwrapAlias(y)
	x = canonicalizeIntKind(c.Conf.Universe, x)
	y = canonicalizeIntKind(c.Conf.Universe, y)
	if x == y {
		return true
	}
	if x.Kind() != y.Kind() {
		return false
	}
	switch xv := x.(type) {
	case *types.MutRef:
		yv := y.(*types.MutRef)
		return c.identical(xv.Elem, yv.Elem)
	case *types.MutSlice:
		yv := y.(*types.MutSlice)
		return c.identical(xv.Elem, yv.Elem)
	default:
		return false
	}
}

// assignableAfterStrip reports whether Y is assignable to X after
// stripping one layer of alias/ref on each side, used by construction
// rules that accept either a bare value or a reference to one (spec.md
// §4.7 primitive construction: "identical-after-alias-and-ref-strip").
func (c *Checker) assignableAfterStrip(x, y types.Type) bool {
	ux := unwrapAlias(x)
	uy := unwrapAlias(y)
	if e, ok := unwrapRef(ux); ok {
		ux = e
	}
	if e, ok := unwrapRef(uy); ok {
		uy = e
	}
	return c.identical(ux, uy)
}
