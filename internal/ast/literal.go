package ast

// IntLit is an integer literal. Its concrete width is decided during
// checking from the expected type on the type-context stack (spec.md §4.6
// "Integer literal").
type IntLit struct {
	exprBase
	Value  uint64
	Negative bool
	Text   string // original spelling, for overflow diagnostics
}

func NewIntLit(pos Pos, value uint64, negative bool, text string) *IntLit {
	return &IntLit{exprBase: exprBase{base: base{kind: KindIntLit, pos: pos}}, Value: value, Negative: negative, Text: text}
}

// FloatLit is a floating-point literal (spec.md §4.6 "Float literal").
type FloatLit struct {
	exprBase
	Value float64
	Text  string
}

func NewFloatLit(pos Pos, value float64, text string) *FloatLit {
	return &FloatLit{exprBase: exprBase{base: base{kind: KindFloatLit, pos: pos}}, Value: value, Text: text}
}

// StringLit is a string literal (spec.md §4.6 "String literal").
type StringLit struct {
	exprBase
	Value string
}

func NewStringLit(pos Pos, value string) *StringLit {
	return &StringLit{exprBase: exprBase{base: base{kind: KindStringLit, pos: pos}}, Value: value}
}

// ArrayLit is an array literal (spec.md §4.6 "Array literal").
type ArrayLit struct {
	exprBase
	Elems []Expr
}

func NewArrayLit(pos Pos, elems []Expr) *ArrayLit {
	return &ArrayLit{exprBase: exprBase{base: base{kind: KindArrayLit, pos: pos}}, Elems: elems}
}
