package check

import "github.com/velalang/velac/internal/types"

// assignable implements spec.md §8 invariant 5: "Assigning a value of type
// Y to a target of type X is accepted iff the assignability rules of §4
// hold; in particular, ?T <- T holds, T <- ?T does not, &T <- mut&T
// holds, mut&T <- &T does not."
func (c *Checker) assignable(dst, src types.Type) bool {
	if dst == nil || src == nil {
		return false
	}
	dstU := unwrapAlias(dst)
	srcU := unwrapAlias(src)

	if c.identical(dstU, srcU) {
		return true
	}

	// unknown poisons assignability checks to true to avoid cascading
	// diagnostics once an earlier error already fired (spec.md §7:
	// "reported_error... suppresses some follow-on errors").
	if dstU.Kind() == types.KindUnknown || srcU.Kind() == types.KindUnknown {
		return true
	}

	switch d := dstU.(type) {
	case *types.Optional:
		// T <- nothing-wrapped is the "?T <- T" rule: src need not itself
		// be optional.
		if s, ok := srcU.(*types.Optional); ok {
			return c.identical(d.Elem, s.Elem)
		}
		return c.assignable(d.Elem, srcU)
	case *types.Ref:
		// "&T <- mut&T holds": accept either a Ref or a MutRef to an
		// identical element.
		switch s := srcU.(type) {
		case *types.Ref:
			return c.identical(d.Elem, s.Elem)
		case *types.MutRef:
			return c.identical(d.Elem, s.Elem)
		}
		return false
	case *types.MutRef:
		// "mut&T <- &T does not": only another MutRef to an identical
		// element is accepted.
		if s, ok := srcU.(*types.MutRef); ok {
			return c.identical(d.Elem, s.Elem)
		}
		return false
	case *types.MutSlice:
		if s, ok := srcU.(*types.MutSlice); ok {
			return c.identical(d.Elem, s.Elem)
		}
		return false
	case *types.Slice:
		switch s := srcU.(type) {
		case *types.Slice:
			return c.identical(d.Elem, s.Elem)
		case *types.MutSlice:
			return c.identical(d.Elem, s.Elem)
		}
		return false
	}

	// A ?T is never assignable to a plain T: a bare-?T source
	// has already failed the identical() check above and falls through to
	// here, correctly rejected since dst is not itself Optional.
	return false
}
