package types

// Interner deduplicates user types by structural id (spec.md §4.3): after
// a struct/array/function/pointer-like/template-instance type's components
// are themselves interned, interning the parent lets type compatibility
// checks use pointer equality (spec.md §8 invariant 2).
type Interner struct {
	byID map[string]Type
}

func NewInterner() *Interner {
	return &Interner{byID: make(map[string]Type, 256)}
}

// Intern computes (or reuses the cached) structural id for *tp; if a
// structurally identical type is already interned, *tp is overwritten with
// the canonical pointer and Intern returns added=false. Otherwise the type
// is registered as canonical and Intern returns added=true.
//
// Only kinds flagged IsUserType are eligible (spec.md §4.3 lists struct,
// array, function, ptr, ref, slice, optional, and template-instance
// explicitly; mut-ref and mut-slice are deliberately not interned, see
// Kind.IsUserType).
func (in *Interner) Intern(tp *Type) bool {
	t := *tp
	if t == nil || !t.Kind().IsUserType() {
		return true
	}
	id := TypeID(t)
	if existing, ok := in.byID[id]; ok {
		*tp = existing
		return false
	}
	in.byID[id] = t
	return true
}

// Lookup returns the canonical type for id, if any has been interned.
func (in *Interner) Lookup(id string) (Type, bool) {
	t, ok := in.byID[id]
	return t, ok
}
