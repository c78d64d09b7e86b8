// Package scope implements the lexical scope stack of spec.md §4.1: a flat
// vector of (symbol, node) pairs with a stack of "base" indices, the same
// shape the teacher's Scope uses (a slice of elements plus parent
// chaining) but flattened into one vector with push/pop markers instead of
// one allocation per nested scope, matching spec.md §3 "Scope" exactly.
package scope

import "github.com/velalang/velac/internal/symbol"

// entry is one (symbol, node) binding. Node is stored as `any` so this
// package does not need to import internal/ast; callers type-assert back
// to *ast.Binding/*ast.Func/etc.
type entry struct {
	sym  *symbol.Symbol
	node any
}

// Stack is the scope stack used while checking one package. The package-
// level definition table consulted on a scoped miss (spec.md §4.1
// "lookup... consults the package-global definition table") is supplied
// externally via PackageLookup rather than owned here, since it is shared
// across every unit in the package.
type Stack struct {
	entries []entry
	bases   []int
	syms    *symbol.Table

	// PackageLookup resolves name at package scope on a local miss. It
	// returns the found node and true, or (nil, false). The caller (the
	// checker) is responsible for upgrading the found object's visibility,
	// per spec.md §4.1.
	PackageLookup func(name *symbol.Symbol) (any, bool)
}

// New returns an empty stack rooted with no open scopes.
func New(syms *symbol.Table) *Stack {
	return &Stack{syms: syms}
}

// Enter pushes a new scope.
func (s *Stack) Enter() {
	s.bases = append(s.bases, len(s.entries))
}

// Leave pops the innermost scope, discarding everything defined in it.
func (s *Stack) Leave() {
	n := len(s.bases)
	base := s.bases[n-1]
	s.bases = s.bases[:n-1]
	s.entries = s.entries[:base]
}

// Depth reports how many scopes are currently open.
func (s *Stack) Depth() int { return len(s.bases) }

// Define adds name -> node to the innermost open scope. Defining the
// ignored name "_" is a no-op (spec.md §4.1). In debug builds, defining a
// name already present in the *current* scope only is a programmer error:
// duplicate-definition should have been reported by the parser already.
func (s *Stack) Define(debug bool, name *symbol.Symbol, node any) {
	if s.syms.IsIgnored(name) {
		return
	}
	if debug {
		if _, found := s.lookupCurrent(name); found {
			panic("scope: duplicate definition of " + name.String() + " in current scope")
		}
	}
	s.entries = append(s.entries, entry{sym: name, node: node})
}

func (s *Stack) lookupCurrent(name *symbol.Symbol) (any, bool) {
	if len(s.bases) == 0 {
		return nil, false
	}
	base := s.bases[len(s.bases)-1]
	for i := len(s.entries) - 1; i >= base; i-- {
		if s.entries[i].sym == name {
			return s.entries[i].node, true
		}
	}
	return nil, false
}

// Lookup searches scopes from innermost outward, then falls back to
// PackageLookup (spec.md §4.1). It reports (node, fromPackage, found).
func (s *Stack) Lookup(name *symbol.Symbol) (node any, fromPackage bool, found bool) {
	for i := len(s.entries) - 1; i >= 0; i-- {
		if s.entries[i].sym == name {
			return s.entries[i].node, false, true
		}
	}
	if s.PackageLookup != nil {
		if n, ok := s.PackageLookup(name); ok {
			return n, true, true
		}
	}
	return nil, false, false
}

// LookupLocal searches only the currently open (innermost) scope, used by
// callers that must reject redefinition within one block without walking
// outward.
func (s *Stack) LookupLocal(name *symbol.Symbol) (any, bool) {
	return s.lookupCurrent(name)
}

// snapshot/restore support "stash"/"unstash" (spec.md §4.1): temporarily
// hide the current scope. Unused by the core itself (per spec.md, "used
// nowhere in the core but available"), kept for parity with the teacher's
// Scope API surface.
type Snapshot struct {
	entries []entry
	bases   []int
}

// Stash hides every scope currently open, returning a Snapshot that
// Unstash restores. Between Stash and Unstash, Lookup only reaches
// PackageLookup.
func (s *Stack) Stash() Snapshot {
	snap := Snapshot{entries: s.entries, bases: s.bases}
	s.entries = nil
	s.bases = nil
	return snap
}

// Unstash restores a Snapshot produced by Stash.
func (s *Stack) Unstash(snap Snapshot) {
	s.entries = snap.entries
	s.bases = snap.bases
}

// Names returns every symbol currently visible from the innermost scope
// outward, used by the "did you mean" suggester (spec.md §4.9(b)) to
// gather candidates without exposing the entry representation.
func (s *Stack) Names() []*symbol.Symbol {
	seen := make(map[*symbol.Symbol]bool, len(s.entries))
	out := make([]*symbol.Symbol, 0, len(s.entries))
	for i := len(s.entries) - 1; i >= 0; i-- {
		sym := s.entries[i].sym
		if !seen[sym] {
			seen[sym] = true
			out = append(out, sym)
		}
	}
	return out
}
