package check

import (
	"math"

	"github.com/velalang/velac/internal/ast"
	"github.com/velalang/velac/internal/types"
)

// checkIntLit implements spec.md §4.6 "Integer literal": a concrete width
// is chosen from the expected type (unwrapping aliases) or, absent one,
// from the literal's own magnitude and sign.
func (c *Checker) checkIntLit(l *ast.IntLit) {
	want := unwrapAlias(c.TCtx.Top())
	target, ok := want.(*types.Basic)
	if !ok || !target.Kind().IsInteger() {
		target = c.defaultIntType(l)
	}
	_, hi := types.IntRange(c.Conf.Universe, target, l.Negative)
	if l.Value > hi {
		c.Diag.Error(l.Pos(), "integer constant %s overflows %s", l.Text, target)
	}
	l.SetFlags(l.Flags().Set(ast.Const))
	l.SetType(target)
}

// defaultIntType picks int/uint/i64/u64 based on magnitude and sign,
// parameterized by the target's configured int-size (spec.md §4.6
// "Integer literal": "parameterized by the target's configured
// int-size").
func (c *Checker) defaultIntType(l *ast.IntLit) *types.Basic {
	u := c.Conf.Universe
	if l.Negative {
		_, intHi := types.IntRange(u, u.Int, true)
		if l.Value <= intHi {
			return u.Int
		}
		return u.I64
	}
	_, intHi := types.IntRange(u, u.Int, false)
	if l.Value <= intHi {
		return u.Int
	}
	_, uintHi := types.IntRange(u, u.Uint, false)
	if l.Value <= uintHi {
		return u.Uint
	}
	_, i64Hi := types.IntRange(u, u.I64, false)
	if l.Value <= i64Hi {
		return u.I64
	}
	return u.U64
}

// checkFloatLit implements spec.md §4.6 "Float literal".
func (c *Checker) checkFloatLit(l *ast.FloatLit) {
	want := unwrapAlias(c.TCtx.Top())
	u := c.Conf.Universe
	if b, ok := want.(*types.Basic); ok && b.Kind() == types.KindF32 {
		if math.IsInf(float64(float32(l.Value)), 0) {
			c.Diag.Error(l.Pos(), "float constant %s overflows f32", l.Text)
		}
		l.SetFlags(l.Flags().Set(ast.Const))
		l.SetType(u.F32)
		return
	}
	if math.IsInf(l.Value, 0) {
		c.Diag.Error(l.Pos(), "float constant %s overflows f64", l.Text)
	}
	l.SetFlags(l.Flags().Set(ast.Const))
	l.SetType(u.F64)
}

// checkStringLit implements spec.md §4.6 "String literal".
func (c *Checker) checkStringLit(l *ast.StringLit) {
	if c.TCtx.Top() == types.Type(c.Conf.StrAlias) {
		l.SetFlags(l.Flags().Set(ast.Const))
		l.SetType(c.Conf.StrAlias)
		return
	}
	arr := types.NewArray(c.Conf.Universe.U8, uint64(len(l.Value)))
	arrT := types.Type(arr)
	c.Interner.Intern(&arrT)
	ref := types.NewRef(arrT, c.Conf.PtrSize)
	refT := types.Type(ref)
	c.Interner.Intern(&refT)
	l.SetFlags(l.Flags().Set(ast.Const))
	l.SetType(refT)
}

// checkArrayLit implements spec.md §4.6 "Array literal".
func (c *Checker) checkArrayLit(l *ast.ArrayLit) {
	want := unwrapAlias(c.TCtx.Top())
	arrWant, isArr := want.(*types.Array)
	if isArr && uint64(len(l.Elems)) > arrWant.Length {
		c.Diag.Error(l.Pos(), "too many values for array of length %d", arrWant.Length)
	}

	var elemType types.Type
	start := 0
	if isArr {
		elemType = arrWant.Elem
	} else if len(l.Elems) > 0 {
		c.TCtx.WithTop(c.Conf.Universe.Unknown, func() { c.check(l.Elems[0]) })
		elemType, _ = l.Elems[0].Type().(types.Type)
		start = 1
	} else {
		elemType = c.Conf.Universe.Unknown
	}

	c.TCtx.WithTop(elemType, func() {
		for i := start; i < len(l.Elems); i++ {
			c.check(l.Elems[i])
			et, _ := l.Elems[i].Type().(types.Type)
			if !c.assignable(elemType, et) {
				c.Diag.Error(l.Elems[i].Pos(), "element %s is not assignable to %s", et, elemType)
			}
		}
	})

	length := uint64(len(l.Elems))
	if isArr {
		length = arrWant.Length
	}
	arrT := types.Type(types.NewArray(elemType, length))
	c.Interner.Intern(&arrT)
	l.SetType(arrT)
}

// checkUnary implements spec.md §4.6 "Unary/deref".
func (c *Checker) checkUnary(u *ast.Unary) {
	switch u.Op {
	case ast.UnaryAddr:
		c.TCtx.WithTop(c.Conf.Universe.Unknown, func() { c.check(u.Operand) })
		ot, _ := u.Operand.Type().(types.Type)
		rt := types.Type(types.NewRef(ot, c.Conf.PtrSize))
		c.Interner.Intern(&rt)
		u.SetType(rt)

	case ast.UnaryMutAddr:
		c.TCtx.WithTop(c.Conf.Universe.Unknown, func() { c.check(u.Operand) })
		ot, _ := u.Operand.Type().(types.Type)
		if !c.validAssignTarget(u.Operand) {
			c.Diag.Error(u.Pos(), "cannot take a mutable reference to a non-mutable target")
		}
		u.SetType(types.NewMutRef(ot, c.Conf.PtrSize))

	case ast.UnaryDeref:
		c.TCtx.WithTop(c.Conf.Universe.Unknown, func() { c.check(u.Operand) })
		ot, _ := u.Operand.Type().(types.Type)
		switch v := unwrapAlias(ot).(type) {
		case *types.Pointer:
			u.SetType(v.Elem)
		case *types.Ref:
			if types.HasDrop(v.Elem) || types.SubOwners(v.Elem) {
				c.Diag.Error(u.Pos(), "cannot dereference a reference to an owning value")
			}
			u.SetType(v.Elem)
		case *types.MutRef:
			u.SetType(v.Elem)
		default:
			c.Diag.Error(u.Pos(), "%s is not a pointer-like type", ot)
			u.SetType(c.Conf.Universe.Unknown)
		}

	case ast.UnaryNot:
		c.TCtx.WithTop(c.Conf.Universe.Bool, func() { c.check(u.Operand) })
		ot, _ := u.Operand.Type().(types.Type)
		if !isBoolOrOptional(unwrapAlias(ot)) {
			c.Diag.Error(u.Pos(), "'!' requires a bool or optional operand")
		}
		u.SetType(c.Conf.Universe.Bool)

	case ast.UnaryNeg:
		c.TCtx.WithTop(c.Conf.Universe.Unknown, func() { c.check(u.Operand) })
		ot, _ := u.Operand.Type().(types.Type)
		ut := unwrapAlias(ot)
		if ut != nil && !ut.Kind().IsInteger() && !ut.Kind().IsFloat() {
			c.Diag.Error(u.Pos(), "'-' requires a numeric operand")
		}
		u.SetType(ot)

	case ast.UnaryInc, ast.UnaryDec:
		c.TCtx.WithTop(c.Conf.Universe.Unknown, func() { c.check(u.Operand) })
		ot, _ := u.Operand.Type().(types.Type)
		if !c.validAssignTarget(u.Operand) {
			c.Diag.Error(u.Pos(), "operand of '++'/'--' must be a writable target")
		}
		if ut := unwrapAlias(ot); ut == nil || !ut.Kind().IsInteger() {
			c.Diag.Error(u.Pos(), "'++'/'--' require an integer operand")
		}
		u.SetType(ot)
	}
}
