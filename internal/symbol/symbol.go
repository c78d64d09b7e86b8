// Package symbol implements interned identifiers.
//
// A Symbol is a pointer to a canonical string record; two symbols spelling
// the same name always compare pointer-equal. This mirrors how the teacher
// (cmd/compile/internal/types2, via the universal symbol-interning service
// named in spec.md §1) treats identifier names: equality of names is
// equality of pointers, never strings.Compare.
package symbol

import "sync"

// Symbol is an interned name. The zero value is not a valid Symbol; use
// Intern to obtain one.
type Symbol struct {
	name string
}

// String returns the spelled name.
func (s *Symbol) String() string {
	if s == nil {
		return "<nil>"
	}
	return s.name
}

// Table interns strings into canonical *Symbol values.
type Table struct {
	mu   sync.Mutex
	syms map[string]*Symbol

	// Ignore is the distinguished "_" symbol; defining it is always a no-op
	// (spec.md §4.1).
	Ignore *Symbol
}

// NewTable returns an initialized interning table with "_" pre-interned.
func NewTable() *Table {
	t := &Table{syms: make(map[string]*Symbol, 64)}
	t.Ignore = t.Intern("_")
	return t
}

// Intern returns the canonical Symbol for name, creating it on first use.
//
// The package-level interning service is the "universal symbol-interning
// service" spec.md §1 calls out as an external collaborator; Table is the
// in-process stand-in the core is built against, confined behind this one
// type rather than a package-level global (spec.md §9 "Global compile-time
// state").
func (t *Table) Intern(name string) *Symbol {
	t.mu.Lock()
	defer t.mu.Unlock()
	if s, ok := t.syms[name]; ok {
		return s
	}
	s := &Symbol{name: name}
	t.syms[name] = s
	return s
}

// IsIgnored reports whether s is the "_" symbol.
func (t *Table) IsIgnored(s *Symbol) bool {
	return s == t.Ignore
}
