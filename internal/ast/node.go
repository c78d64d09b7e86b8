// Package ast defines the AST node family the semantic analysis pass
// operates on: a closed set of statement/expression node kinds (spec.md
// §3) plus the type node family in the sibling internal/types package.
//
// Producing these nodes (lexing and parsing) is out of scope per spec.md
// §1; this package only defines the shape the external parser is assumed
// to produce and the checker mutates in place.
package ast

import "github.com/velalang/velac/internal/symbol"

// Kind is the closed enumeration of statement/expression node kinds.
type Kind uint8

const (
	KindBad Kind = iota
	KindIdent
	KindBlock
	KindCall
	KindTypeCons
	KindBinding // var/let, parameter, or struct field, see BindKind
	KindMember
	KindSubscript
	KindUnary
	KindBinary
	KindAssign
	KindIf
	KindReturn
	KindIntLit
	KindFloatLit
	KindStringLit
	KindArrayLit
	KindFunc
)

func (k Kind) String() string {
	switch k {
	case KindBad:
		return "bad"
	case KindIdent:
		return "ident"
	case KindBlock:
		return "block"
	case KindCall:
		return "call"
	case KindTypeCons:
		return "type-construction"
	case KindBinding:
		return "binding"
	case KindMember:
		return "member"
	case KindSubscript:
		return "subscript"
	case KindUnary:
		return "unary"
	case KindBinary:
		return "binary"
	case KindAssign:
		return "assign"
	case KindIf:
		return "if"
	case KindReturn:
		return "return"
	case KindIntLit:
		return "int-lit"
	case KindFloatLit:
		return "float-lit"
	case KindStringLit:
		return "string-lit"
	case KindArrayLit:
		return "array-lit"
	case KindFunc:
		return "func"
	default:
		return "unknown-kind"
	}
}

// TypeNode is implemented by internal/types.Type. Kept as a narrow
// interface here (rather than importing internal/types, which itself does
// not need to import internal/ast) to avoid a cyclic package dependency;
// the checker package, which imports both, is where the concrete
// internal/types.Type is actually stored in a Node's typ field.
type TypeNode interface {
	String() string
}

// Node is the common header every statement/expression node shares: kind,
// flags, use-count, and source location (spec.md §3).
type Node interface {
	Kind() Kind
	Pos() Pos
	Flags() Flags
	SetFlags(Flags)
	UseCount() int
	AddUse(n int)
}

// base is embedded by every concrete node and implements the Node
// interface's bookkeeping fields.
type base struct {
	kind     Kind
	pos      Pos
	flags    Flags
	useCount int
}

func (b *base) Kind() Kind       { return b.kind }
func (b *base) Pos() Pos         { return b.pos }
func (b *base) Flags() Flags     { return b.flags }
func (b *base) SetFlags(f Flags) { b.flags = f }
func (b *base) UseCount() int    { return b.useCount }
func (b *base) AddUse(n int)     { b.useCount += n }

// Expr is a statement that also carries a type (spec.md §3). Every
// expression node's type is nil until the checker visits it; it is not
// preset to the universe's Unknown type.
type Expr interface {
	Node
	Type() TypeNode
	SetType(TypeNode)
}

// exprBase is embedded by every expression node.
type exprBase struct {
	base
	typ TypeNode
}

func (e *exprBase) Type() TypeNode     { return e.typ }
func (e *exprBase) SetType(t TypeNode) { e.typ = t }

// Ref is a non-owning back-edge from a using node to its declaration,
// e.g. an identifier's resolved binding or a member's target function
// (spec.md §3 "Ownership"). It is represented as a slot so the checker can
// overwrite it in place without the caller needing to know the concrete
// node type.
type Ref struct {
	node Node
}

func (r *Ref) Get() Node     { return r.node }
func (r *Ref) Set(n Node)    { r.node = n }
func (r *Ref) IsSet() bool   { return r.node != nil }

// Sym returns the canonical interned name for an identifier-like node, or
// nil.
func Sym(n Node) *symbol.Symbol {
	switch v := n.(type) {
	case *Ident:
		return v.Name
	case *Binding:
		return v.Name
	case *Func:
		return v.Name
	}
	return nil
}
