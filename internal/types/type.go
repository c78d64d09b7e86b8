// Package types implements the type node family of spec.md §3: primitive
// types, user types (struct, alias, function, pointer-likes, slices,
// optional, array, namespace, placeholder, template-instance, unresolved),
// their structural type-id based interning (spec.md §4.3), and template
// instantiation (spec.md §4.4).
//
// The shape follows the teacher's types2 package (a closed Type interface
// with one concrete struct per kind, e.g. *Basic, *Struct, *Named,
// *Pointer, *Slice); the teacher's "Named" maps onto this package's Alias
// and Struct, since the source language has no single catch-all named-type
// wrapper.
package types

// Type is implemented by every concrete type node.
type Type interface {
	Kind() Kind
	Size() int
	Align() int
	// String satisfies ast.TypeNode so a Type can be stored in an
	// ast.Expr's type slot without internal/ast importing internal/types.
	String() string
}

// base is embedded by every concrete type and carries the common layout
// fields plus the cached structural id (spec.md §3 "Type id (structural)").
type base struct {
	kind      Kind
	size      int
	align     int
	id        string
	idValid   bool
	checked   bool // has passed through Checker.checkType once
	subowners bool
	drop      bool
}

func (b *base) Kind() Kind { return b.kind }
func (b *base) Size() int  { return b.size }
func (b *base) Align() int { return b.align }

// invalidateID clears the cached structural id, forcing recomputation.
// Nothing calls it at present: template expansion (spec.md §4.4 step 5)
// allocates new nodes rather than rewriting a type's children, so no
// cached id goes stale.
func (b *base) invalidateID() {
	b.id = ""
	b.idValid = false
}

// Checked/MarkChecked implement the "check at most once" rule (spec.md §3
// flags table "checked", §8 invariant 4) for type nodes.
func (b *base) Checked() bool   { return b.checked }
func (b *base) MarkChecked()    { b.checked = true }

// SubOwners reports the cached "subowners" flag (spec.md §3 flags table).
func SubOwners(t Type) bool {
	if s, ok := t.(interface{ subOwnersFlag() bool }); ok {
		return s.subOwnersFlag()
	}
	return false
}

// HasDrop reports the cached "drop" flag.
func HasDrop(t Type) bool {
	if s, ok := t.(interface{ dropFlag() bool }); ok {
		return s.dropFlag()
	}
	return false
}
