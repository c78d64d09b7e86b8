package check

import (
	"github.com/velalang/velac/internal/ast"
	"github.com/velalang/velac/internal/symbol"
	"github.com/velalang/velac/internal/types"
)

// narrowEntry is one binding produced by the narrower: binding is the
// then-branch clone (already narrowed to the positive type), elseBinding
// is the else-branch clone (narrowed to the inverted type). Both clones are
// always built; checkIf installs elseBinding only when the if has an else
// branch (spec.md §4.5).
type narrowEntry struct {
	sym         *symbol.Symbol
	binding     *ast.Binding
	elseBinding *ast.Binding
}

// narrowState accumulates the single-pass walk's findings.
type narrowState struct {
	entries      []narrowEntry
	hasComplexOp bool // saw `||` or `!` anywhere in the condition
	hasLocalDef  bool // this is an `if let` form
}

// narrow implements spec.md §4.5 end to end for one If node: either a
// plain condition (cond != nil, letName == nil) or an `if let name = init`
// form (letName != nil, cond is the If's own position holder and may be
// nil). Returns false (with a diagnostic already emitted) when the
// complex-op/local-definition combination is rejected (S6); callers must
// not install any entries in that case.
func (c *Checker) narrow(pos ast.Pos, cond ast.Expr, letName *symbol.Symbol, letInit ast.Expr) ([]narrowEntry, bool) {
	st := &narrowState{}

	if letName != nil {
		st.hasLocalDef = true
		c.detectComplexOp(letInit, st)
	} else if cond != nil {
		c.walkNarrow(cond, st, false)
	}

	if st.hasComplexOp && st.hasLocalDef {
		c.Diag.Error(pos, "cannot use type-narrowing let definition with '||' operation")
		return nil, false
	}

	if letName != nil {
		e, ok := c.narrowLetEntry(letName, letInit, pos)
		if !ok {
			return nil, false
		}
		return []narrowEntry{e}, true
	}
	return st.entries, true
}

// walkNarrow implements the single-pass condition walk (spec.md §4.5):
// `&&` threads the same polarity into both operands without itself being a
// complex-op; `||` and `!` are complex-ops and `!` flips polarity for its
// operand subtree.
func (c *Checker) walkNarrow(n ast.Expr, st *narrowState, negative bool) {
	switch v := n.(type) {
	case *ast.Unary:
		if v.Op == ast.UnaryNot {
			st.hasComplexOp = true
			c.walkNarrow(v.Operand, st, !negative)
		}
	case *ast.Binary:
		switch v.Op {
		case ast.OpLAnd:
			c.walkNarrow(v.Left, st, negative)
			c.walkNarrow(v.Right, st, negative)
		case ast.OpLOr:
			st.hasComplexOp = true
			c.walkNarrow(v.Left, st, negative)
			c.walkNarrow(v.Right, st, negative)
		}
	case *ast.Ident:
		b, ok := v.Ref.Get().(*ast.Binding)
		if !ok {
			return
		}
		c.addNarrowEntry(st, v.Name, b, negative)
	}
}

// detectComplexOp walks e purely to find whether it contains `||` or `!`
// anywhere, used for the `if let x = e` form where e itself (not a
// condition being narrowed) may combine optionals with those operators
// (spec.md §4.5, scenario S6).
func (c *Checker) detectComplexOp(e ast.Expr, st *narrowState) {
	switch v := e.(type) {
	case *ast.Unary:
		if v.Op == ast.UnaryNot {
			st.hasComplexOp = true
		}
		c.detectComplexOp(v.Operand, st)
	case *ast.Binary:
		if v.Op == ast.OpLOr {
			st.hasComplexOp = true
		}
		c.detectComplexOp(v.Left, st)
		c.detectComplexOp(v.Right, st)
	}
}

// addNarrowEntry narrows one optional-typed identifier reference: the
// underlying T comes from the binding's own type, or, absent that, from an
// initializer of optional type (spec.md §4.5).
func (c *Checker) addNarrowEntry(st *narrowState, name *symbol.Symbol, b *ast.Binding, negative bool) {
	bt, _ := b.Type().(types.Type)
	opt, ok := unwrapAlias(bt).(*types.Optional)
	if !ok && b.Init != nil {
		if it, ok2 := b.Init.Type().(types.Type); ok2 {
			opt, ok = unwrapAlias(it).(*types.Optional)
		}
	}
	if !ok {
		return
	}

	positiveType, negativeType := types.Type(opt.Elem), types.Type(c.Conf.Universe.Void)
	if negative {
		positiveType, negativeType = negativeType, positiveType
	}
	if b.Annotated != nil {
		if at, ok := b.Annotated.(types.Type); ok && !c.assignable(at, positiveType) {
			c.Diag.Error(b.Pos(), "narrowed type %s is not assignable to declared type %s", positiveType, at)
		}
	}

	then := b.Clone()
	then.SetFlags(then.Flags().Set(ast.Narrowed | ast.Checked))
	then.SetType(positiveType)

	els := b.Clone()
	els.SetFlags(els.Flags().Set(ast.Narrowed | ast.Checked))
	els.SetType(negativeType)

	st.entries = append(st.entries, narrowEntry{sym: name, binding: then, elseBinding: els})
}

// narrowLetEntry implements the `if let name = init` form of spec.md §4.5.
func (c *Checker) narrowLetEntry(name *symbol.Symbol, init ast.Expr, pos ast.Pos) (narrowEntry, bool) {
	it, _ := init.Type().(types.Type)
	opt, ok := unwrapAlias(it).(*types.Optional)
	if !ok {
		c.Diag.Error(pos, "'if let' requires an optional initializer")
		return narrowEntry{}, false
	}
	b := ast.NewBinding(pos, ast.BindVar, name)
	b.Init = init
	b.SetFlags(b.Flags().Set(ast.Narrowed | ast.Checked))
	b.SetType(opt.Elem)

	els := b.Clone()
	els.SetType(c.Conf.Universe.Void)

	return narrowEntry{sym: name, binding: b, elseBinding: els}, true
}
