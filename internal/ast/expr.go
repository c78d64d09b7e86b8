package ast

import "github.com/velalang/velac/internal/symbol"

// Ident is an identifier reference (spec.md §4.6 "Identifier").
type Ident struct {
	exprBase
	Name *symbol.Symbol
	Ref  Ref // resolved declaration; nil or Unknown-flagged until resolved
}

func NewIdent(pos Pos, name *symbol.Symbol) *Ident {
	return &Ident{exprBase: exprBase{base: base{kind: KindIdent, pos: pos}}, Name: name}
}

// Block is a sequence of statements; it is itself an expression whose type
// is the type of its last statement when used as an rvalue (spec.md §4.6
// "Block").
type Block struct {
	exprBase
	Stmts []Expr
}

func NewBlock(pos Pos) *Block {
	return &Block{exprBase: exprBase{base: base{kind: KindBlock, pos: pos}}}
}

// Call is `receiver(args...)`. When the receiver resolves to a type
// (spec.md §4.7) the checker applies the construction rules to the Call
// node itself; no TypeCons node is allocated for it.
type Call struct {
	exprBase
	Receiver Expr
	Args     []Arg
}

// Arg is a (possibly named) call or construction argument.
type Arg struct {
	Name  *symbol.Symbol // nil for positional arguments
	Value Expr
}

func NewCall(pos Pos, receiver Expr, args []Arg) *Call {
	return &Call{exprBase: exprBase{base: base{kind: KindCall, pos: pos}}, Receiver: receiver, Args: args}
}

// TypeCons is a type-construction node, e.g. `int(x)` or `Point{x: 1}`
// (spec.md §4.7), as emitted by the parser for literal construction
// syntax. Its Args field mirrors Call's.
type TypeCons struct {
	exprBase
	ConsType TypeNode
	Args     []Arg
}

func NewTypeCons(pos Pos, t TypeNode, args []Arg) *TypeCons {
	return &TypeCons{exprBase: exprBase{base: base{kind: KindTypeCons, pos: pos}}, ConsType: t, Args: args}
}

// BindKind distinguishes the three uses of a Binding node.
type BindKind uint8

const (
	BindVar BindKind = iota
	BindParam
	BindField
)

// Binding is a variable/let declaration, a function parameter, or a
// struct field (spec.md §3 "field/variable/parameter binding").
type Binding struct {
	exprBase
	BindKind   BindKind
	Name       *symbol.Symbol
	Annotated  TypeNode // explicit type annotation, if any
	Init       Expr     // initializer, if any (var/let only)
	Mutable    bool
	Offset     int // not set by the checker; struct layout records offsets in types.Field.Offset
}

func NewBinding(pos Pos, kind BindKind, name *symbol.Symbol) *Binding {
	return &Binding{exprBase: exprBase{base: base{kind: KindBinding, pos: pos}}, BindKind: kind, Name: name}
}

// Clone returns a shallow copy of b, used by the narrower to produce a
// distinct narrowed binding that shadows the original in a branch scope
// (spec.md §4.5).
func (b *Binding) Clone() *Binding {
	nb := *b
	return &nb
}

// Member is `receiver.name` (spec.md §4.6 "Member").
type Member struct {
	exprBase
	Receiver Expr
	Name     *symbol.Symbol
	Target   Ref // resolved field or type-function
}

func NewMember(pos Pos, recv Expr, name *symbol.Symbol) *Member {
	return &Member{exprBase: exprBase{base: base{kind: KindMember, pos: pos}}, Receiver: recv, Name: name}
}

// Subscript is `receiver[index]` (spec.md §4.6 "Subscript").
type Subscript struct {
	exprBase
	Receiver Expr
	Index    Expr
}

func NewSubscript(pos Pos, recv, index Expr) *Subscript {
	return &Subscript{exprBase: exprBase{base: base{kind: KindSubscript, pos: pos}}, Receiver: recv, Index: index}
}

// UnaryOp enumerates prefix/postfix/deref unary operators.
type UnaryOp uint8

const (
	UnaryAddr    UnaryOp = iota // &x
	UnaryMutAddr                // mut&x
	UnaryDeref                  // *x
	UnaryNot                    // !x
	UnaryNeg                    // -x
	UnaryInc                    // x++ / ++x
	UnaryDec                    // x-- / --x
)

// Unary covers prefix/postfix/deref unary expressions (spec.md §4.6
// "Unary/deref").
type Unary struct {
	exprBase
	Op      UnaryOp
	Operand Expr
	Postfix bool
}

func NewUnary(pos Pos, op UnaryOp, operand Expr, postfix bool) *Unary {
	return &Unary{exprBase: exprBase{base: base{kind: KindUnary, pos: pos}}, Op: op, Operand: operand, Postfix: postfix}
}

// BinaryOp enumerates binary operators (spec.md §6 operator table).
type BinaryOp uint8

const (
	OpAdd BinaryOp = iota
	OpSub
	OpMul
	OpDiv
	OpMod
	OpAnd // &
	OpOr  // |
	OpXor // ^
	OpShl
	OpShr
	OpLAnd // &&
	OpLOr  // ||
	OpEq
	OpNe
	OpLt
	OpGt
	OpLe
	OpGe
)

// Binary is a binary-operator expression (spec.md §4.6 "Binary op").
type Binary struct {
	exprBase
	Op    BinaryOp
	Left  Expr
	Right Expr
}

func NewBinary(pos Pos, op BinaryOp, l, r Expr) *Binary {
	return &Binary{exprBase: exprBase{base: base{kind: KindBinary, pos: pos}}, Op: op, Left: l, Right: r}
}

// Assign is `lhs = rhs` together with the op-assign forms, which the
// checker treats as `lhs = lhs OP rhs` for operator-support purposes
// (spec.md §4.6 "Assignment").
type Assign struct {
	exprBase
	Op   BinaryOp // only meaningful when IsOpAssign
	IsOpAssign bool
	LHS  Expr
	RHS  Expr
}

func NewAssign(pos Pos, lhs, rhs Expr) *Assign {
	return &Assign{exprBase: exprBase{base: base{kind: KindAssign, pos: pos}}, LHS: lhs, RHS: rhs}
}

// If is a conditional expression (spec.md §4.6 "If").
type If struct {
	exprBase
	Cond    Expr
	LetName *symbol.Symbol // non-nil for `if let name = expr`
	LetInit Expr
	Then    *Block
	Else    *Block // nil if no else branch
}

func NewIf(pos Pos, cond Expr, then *Block) *If {
	return &If{exprBase: exprBase{base: base{kind: KindIf, pos: pos}}, Cond: cond, Then: then}
}

// Return is `return expr` (expr may be nil); spec.md §3 lists "return"
// among the expression kinds since it carries a type too (generally void,
// but uniform treatment simplifies the checker dispatch).
type Return struct {
	exprBase
	Value Expr // nil for bare `return`
}

func NewReturn(pos Pos, value Expr) *Return {
	return &Return{exprBase: exprBase{base: base{kind: KindReturn, pos: pos}}, Value: value}
}
