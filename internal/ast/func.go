package ast

import "github.com/velalang/velac/internal/symbol"

// Func is both a function literal and a named top-level/type-function
// declaration (spec.md §4.6 "Function"). Top-level function names are
// pre-defined at unit scope before any body is checked (spec.md §5
// "Ordering guarantees"), so bodies may reference siblings declared later
// in the same unit.
type Func struct {
	exprBase
	Name       *symbol.Symbol // nil for anonymous function literals
	Receiver   *Binding       // non-nil for a type-function ("this" parameter)
	Params     []*Binding
	Result     TypeNode
	Body       *Block
	IsDrop     bool // true once validated as the receiver type's `drop` method
}

func NewFunc(pos Pos, name *symbol.Symbol) *Func {
	return &Func{exprBase: exprBase{base: base{kind: KindFunc, pos: pos}}, Name: name}
}
