package types

// Alias is a named alias for another type (spec.md §4.6 "Alias type").
// Alias chains can cycle (`type A = B; type B = A`); the checker breaks
// cycles by rewriting Referent to Unknown (spec.md §4.6, §8 invariant for
// S5).
type Alias struct {
	base
	Name      string
	Referent  Type
	resolving bool // true while Referent is being resolved, for cycle detection
}

// Resolving reports whether this alias is currently partway through
// resolving its Referent (a grey node in the usual DFS cycle-detection
// sense), as opposed to not yet visited or fully resolved.
func (a *Alias) Resolving() bool { return a.resolving }

func (a *Alias) SetResolving(r bool) { a.resolving = r }

func (a *Alias) String() string { return a.Name }

func NewAlias(name string) *Alias {
	return &Alias{base: base{kind: KindAlias}, Name: name}
}

// SetReferent installs the aliased type and copies its size/align/flags,
// so an Alias behaves transparently like its referent for layout
// purposes.
func (a *Alias) SetReferent(t Type) {
	a.Referent = t
	a.size = t.Size()
	a.align = t.Align()
	if sub, ok := t.(interface{ subOwnersFlag() bool }); ok {
		a.subowners = sub.subOwnersFlag()
	}
}

func (a *Alias) subOwnersFlag() bool { return a.subowners }
