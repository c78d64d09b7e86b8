package ast

import "github.com/velalang/velac/internal/symbol"

// Import is one unit-level import declaration (spec.md §4.10): a path,
// optionally a local alias for the whole package namespace, optionally an
// explicit (possibly renaming) identifier list, or a wildcard.
type Import struct {
	Pos      Pos
	Path     string
	Alias    *symbol.Symbol // non-nil for `import "path" as alias`
	Names    []ImportedName // non-nil for `import "path" (a, b as c)`
	Wildcard bool           // `import "path" *`
}

// ImportedName is one entry of an import's identifier list; Local equals
// Source when the import does not rename.
type ImportedName struct {
	Pos    Pos
	Source *symbol.Symbol
	Local  *symbol.Symbol
}

// TypeDecl is a named top-level type declaration (struct, alias, and so
// on); the checked type itself lives in internal/types, referenced here
// through the narrow TypeNode interface to avoid a package cycle.
type TypeDecl struct {
	TypePos Pos
	Name    *symbol.Symbol
	Type    TypeNode
}

func (d *TypeDecl) Pos() Pos { return d.TypePos }

// Unit is one source file's top-level declarations (spec.md §5
// "Ordering guarantees": declarations are first hoisted, then checked in
// source order).
type Unit struct {
	Path    string
	Imports []Import
	Types   []*TypeDecl
	Funcs   []*Func
	Vars    []*Binding
}
