package ast

// Flags is the per-node bitset described in spec.md §3.
type Flags uint32

const (
	// Checked marks a node as already visited by the checker; check() is a
	// no-op on a node with this flag set (spec.md §4.6, §8 invariant 4).
	Checked Flags = 1 << iota
	// RValue marks an expression used in rvalue position.
	RValue
	// Narrowed marks a binding whose type has been refined by an enclosing
	// condition (spec.md §4.5).
	Narrowed
	// Unknown marks a name that has not been fully resolved yet; it bubbles
	// up through enclosing expressions.
	Unknown
	// Drop marks a type that owns resources and has a user-defined
	// destructor.
	Drop
	// SubOwners marks a type that transitively contains owning fields.
	SubOwners
	// Exit marks a block terminated by return/break.
	Exit
	// Const marks a constant expression.
	Const
	// Template marks a type that is a template (carries placeholders).
	Template
	// TemplateInstance marks a type produced by instantiating a template.
	TemplateInstance

	visibilityShift = 10
)

// Visibility is a 2-bit sub-field of Flags.
type Visibility uint8

const (
	VisUnit Visibility = iota
	VisPackage
	VisPublic
)

const visibilityMask Flags = 0x3 << visibilityShift

// NamesType marks an Ident/Member whose resolution is a type declaration
// rather than a value of some type (spec.md §4.7: the call rule's "receiver
// names a type" test). Placed above the visibility sub-field rather than in
// the main iota run so it doesn't shift visibilityShift.
const NamesType Flags = 1 << 12

// Has reports whether all bits of want are set.
func (f Flags) Has(want Flags) bool { return f&want == want }

// Any reports whether at least one bit of want is set.
func (f Flags) Any(want Flags) bool { return f&want != 0 }

// Set returns f with the given bits set.
func (f Flags) Set(bits Flags) Flags { return f | bits }

// Clear returns f with the given bits cleared.
func (f Flags) Clear(bits Flags) Flags { return f &^ bits }

// Visibility extracts the 2-bit visibility sub-field.
func (f Flags) Visibility() Visibility { return Visibility((f & visibilityMask) >> visibilityShift) }

// WithVisibility returns f with its visibility sub-field replaced, but only
// ever widened upward (spec.md §4.1: lookup "upgrades" visibility, it never
// narrows it).
func (f Flags) WithVisibility(v Visibility) Flags {
	if v <= f.Visibility() {
		return f
	}
	return (f &^ visibilityMask) | Flags(v)<<visibilityShift
}
