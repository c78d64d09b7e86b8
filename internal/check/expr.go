package check

import (
	"fmt"

	"github.com/velalang/velac/internal/ast"
	"github.com/velalang/velac/internal/types"
)

// check is the single entry point for every statement/expression node
// (spec.md §4.6): short-circuits if the node is already checked, else
// marks it checked and dispatches on its concrete kind. The Checked-flag
// guard is what makes every rule idempotent (spec.md §8 invariant 4), so
// individual rules below never need to re-test it themselves.
//
// The Checked flag is set before the reported_error gate below, not
// after, matching original_source/src/typecheck.c's exprp: once an error
// has fired anywhere, every not-yet-visited node becomes a no-op rather
// than a real check, but it's still marked checked so nothing tries to
// check it again later (spec.md §5, §7 "reported_error...suppresses some
// follow-on errors that would otherwise cascade").
func (c *Checker) check(n ast.Expr) {
	if n == nil {
		return
	}
	if n.Flags().Has(ast.Checked) {
		return
	}
	n.SetFlags(n.Flags().Set(ast.Checked))

	if c.Diag.ReportedError {
		return
	}

	switch v := n.(type) {
	case *ast.Ident:
		c.checkIdent(v)
	case *ast.Member:
		c.checkMember(v)
	case *ast.Subscript:
		c.checkSubscript(v)
	case *ast.Binary:
		c.checkBinary(v)
	case *ast.Assign:
		c.checkAssign(v)
	case *ast.Call:
		c.checkCall(v)
	case *ast.Return:
		c.checkReturn(v)
	case *ast.If:
		c.checkIf(v)
	case *ast.Block:
		c.checkBlock(v)
	case *ast.IntLit:
		c.checkIntLit(v)
	case *ast.FloatLit:
		c.checkFloatLit(v)
	case *ast.StringLit:
		c.checkStringLit(v)
	case *ast.ArrayLit:
		c.checkArrayLit(v)
	case *ast.Unary:
		c.checkUnary(v)
	case *ast.Binding:
		c.checkBinding(v)
	case *ast.Func:
		c.checkFunc(v)
	case *ast.TypeCons:
		c.checkTypeConsNode(v)
	default:
		c.fatal(fmt.Errorf("check: unexpected node %T", n))
	}
}

// checkTypeNode bridges an ast.TypeNode slot (as stored on Binding.Annotated
// or Func.Result) to the types package's checker. Parser output that isn't
// actually a types.Type (it always is, in this implementation) falls
// through untouched.
func (c *Checker) checkTypeNode(tp *ast.TypeNode) {
	if *tp == nil {
		return
	}
	t, ok := (*tp).(types.Type)
	if !ok {
		return
	}
	c.checkType(&t)
	*tp = t
}

// checkIdent implements spec.md §4.6 "Identifier". The outer check()
// dispatcher already guarantees this runs at most once per node, so unlike
// the spec's literal "if ref is null or unknown" guard this always
// resolves; Ref is still populated (for value bindings only — see
// typeOfReceiver) so later rules like assignment-target checking can walk
// back to the declaration.
func (c *Checker) checkIdent(id *ast.Ident) {
	obj, fromPkg, found := c.Scope.Lookup(id.Name)
	if !found {
		c.Diag.Error(id.Pos(), "unknown identifier %q", id.Name)
		c.suggest(id.Name.String(), id.Pos())
		id.SetFlags(id.Flags().Set(ast.Unknown))
		id.SetType(c.Conf.Universe.Unknown)
		return
	}
	if fromPkg {
		if node, ok := obj.(ast.Node); ok {
			node.SetFlags(node.Flags().WithVisibility(ast.VisPackage))
		}
	}

	if t, ok := asType(obj); ok {
		id.SetType(t)
		id.SetFlags(id.Flags().Set(ast.NamesType))
		return
	}
	if node, ok := obj.(ast.Node); ok {
		id.Ref.Set(node)
	}
	if e, ok := obj.(ast.Expr); ok {
		c.check(e)
		if t, ok := e.Type().(types.Type); ok {
			id.SetType(t)
			return
		}
	}
	id.SetType(c.Conf.Universe.Unknown)
}

// checkMember implements spec.md §4.6 "Member".
func (c *Checker) checkMember(m *ast.Member) {
	c.TCtx.WithTop(c.Conf.Universe.Unknown, func() { c.check(m.Receiver) })

	recvType, ok := m.Receiver.Type().(types.Type)
	if !ok || recvType == nil {
		m.SetType(c.Conf.Universe.Unknown)
		return
	}
	base := unwrapAlias(recvType)
	for {
		if e, wasRef := unwrapRef(base); wasRef {
			base = unwrapAlias(e)
			continue
		}
		break
	}

	if ns, ok := base.(*types.Namespace); ok {
		c.checkNamespaceMember(m, ns)
		return
	}
	if _, ok := base.(*types.Optional); ok {
		c.Diag.Error(m.Pos(), "optional value may not be valid")
		c.Diag.Help(m.Pos(), "check %q before accessing a member", m.Name)
		m.SetType(c.Conf.Universe.Unknown)
		return
	}
	if s, ok := base.(*types.Struct); ok {
		if f := s.FieldByName(m.Name.String()); f != nil {
			m.SetType(f.Type)
			return
		}
	}
	if c.Conf.TypeFunLookup != nil {
		if fn := c.Conf.TypeFunLookup(base, m.Name); fn != nil {
			if node, ok := fn.(ast.Node); ok {
				m.Target.Set(node)
			}
			if e, ok := fn.(ast.Expr); ok {
				c.check(e)
				if t, ok := e.Type().(types.Type); ok {
					m.SetType(t)
					return
				}
			}
		}
	}
	c.Diag.Error(m.Pos(), "%s has no member %q", base, m.Name)
	m.SetType(c.Conf.Universe.Unknown)
}

func (c *Checker) checkNamespaceMember(m *ast.Member, ns *types.Namespace) {
	obj, ok := ns.Members[m.Name.String()]
	if !ok {
		c.Diag.Error(m.Pos(), "%s has no member %q", ns, m.Name)
		m.SetType(c.Conf.Universe.Unknown)
		return
	}
	no, ok := obj.(nsObj)
	if !ok {
		m.SetType(c.Conf.Universe.Unknown)
		return
	}
	if t, ok := asType(no.node); ok {
		m.SetType(t)
		m.SetFlags(m.Flags().Set(ast.NamesType))
		return
	}
	if node, ok := no.node.(ast.Node); ok {
		m.Target.Set(node)
	}
	if e, ok := no.node.(ast.Expr); ok {
		c.check(e)
		if t, ok := e.Type().(types.Type); ok {
			m.SetType(t)
			return
		}
	}
	m.SetType(c.Conf.Universe.Unknown)
}

// checkSubscript implements spec.md §4.6 "Subscript".
func (c *Checker) checkSubscript(s *ast.Subscript) {
	c.TCtx.WithTop(c.Conf.Universe.Unknown, func() { c.check(s.Receiver) })
	c.TCtx.WithTop(c.Conf.Universe.Uint, func() { c.check(s.Index) })

	recvType, _ := s.Receiver.Type().(types.Type)
	base := unwrapAlias(recvType)

	var elem types.Type
	var length uint64
	haveLength := false
	switch v := base.(type) {
	case *types.Array:
		elem, length, haveLength = v.Elem, v.Length, true
	case *types.Slice:
		elem = v.Elem
	case *types.MutSlice:
		elem = v.Elem
	case *types.Optional:
		c.Diag.Error(s.Pos(), "optional value may not be valid")
		c.Diag.Help(s.Pos(), "check the value before subscripting")
		s.SetType(c.Conf.Universe.Unknown)
		return
	default:
		c.Diag.Error(s.Pos(), "%s is not indexable", base)
		s.SetType(c.Conf.Universe.Unknown)
		return
	}

	if c.Conf.ComptimeEvalUint != nil {
		if ok, idx := c.Conf.ComptimeEvalUint(s.Index, 0); ok {
			s.Index.SetFlags(s.Index.Flags().Set(ast.Const))
			if haveLength && idx >= length {
				c.Diag.Error(s.Pos(), "index %d out of bounds for array of length %d", idx, length)
			}
		}
	}
	s.SetType(elem)
}

func isBoolOrOptional(t types.Type) bool {
	if t == nil {
		return false
	}
	k := t.Kind()
	return k == types.KindBool || k == types.KindOptional
}

// checkBinary implements spec.md §4.6 "Binary op" and the §6 operator
// table.
func (c *Checker) checkBinary(b *ast.Binary) {
	c.TCtx.WithTop(c.Conf.Universe.Unknown, func() { c.check(b.Left) })
	lt, _ := b.Left.Type().(types.Type)
	c.TCtx.WithTop(lt, func() { c.check(b.Right) })
	rt, _ := b.Right.Type().(types.Type)
	if lt == nil || rt == nil {
		b.SetType(c.Conf.Universe.Unknown)
		return
	}

	ult := unwrapAlias(lt)
	urt := unwrapAlias(rt)
	if e, wasRef := unwrapRef(ult); wasRef {
		ult = e
	}
	if e, wasRef := unwrapRef(urt); wasRef {
		urt = e
	}

	switch b.Op {
	case ast.OpLAnd:
		if !c.logicalOperandOK(b.Left, ult) || !c.logicalOperandOK(b.Right, urt) {
			c.Diag.Error(b.Pos(), "'&&' requires bool, optional, or narrowed operands")
		}
		b.SetType(c.Conf.Universe.Bool)
		return
	case ast.OpLOr:
		if !isBoolOrOptional(ult) || !isBoolOrOptional(urt) {
			c.Diag.Error(b.Pos(), "'||' requires bool or optional operands")
		}
		b.SetType(c.Conf.Universe.Bool)
		return
	}

	if !c.identical(ult, urt) {
		c.Diag.Error(b.Pos(), "mismatched operand types %s and %s", lt, rt)
		b.SetType(c.Conf.Universe.Unknown)
		return
	}
	if !opAllowed(ult, b.Op) {
		c.Diag.Error(b.Pos(), "operator not supported on type %s", ult)
		b.SetType(c.Conf.Universe.Unknown)
		return
	}

	switch b.Op {
	case ast.OpEq, ast.OpNe, ast.OpLt, ast.OpGt, ast.OpLe, ast.OpGe:
		b.SetType(c.Conf.Universe.Bool)
	default:
		b.SetType(lt)
	}
}

func (c *Checker) logicalOperandOK(e ast.Expr, t types.Type) bool {
	if isBoolOrOptional(t) {
		return true
	}
	return e.Flags().Has(ast.Narrowed)
}

// rootBinding walks through member/deref chains to the Ident at the root,
// returning its resolved binding, used by assignment-target validation.
func rootBinding(e ast.Expr) (*ast.Binding, bool) {
	switch v := e.(type) {
	case *ast.Ident:
		b, ok := v.Ref.Get().(*ast.Binding)
		return b, ok
	case *ast.Member:
		return rootBinding(v.Receiver)
	case *ast.Unary:
		if v.Op == ast.UnaryDeref {
			return rootBinding(v.Operand)
		}
	}
	return nil, false
}

// validAssignTarget implements spec.md §4.6 "Assignment"'s LHS-target
// rules: a variable, a writable member, or a deref through *T/mut&T.
func (c *Checker) validAssignTarget(e ast.Expr) bool {
	switch v := e.(type) {
	case *ast.Ident:
		if v.Name.String() == "_" {
			return true
		}
		if b, ok := v.Ref.Get().(*ast.Binding); ok && b.BindKind == ast.BindVar && !b.Mutable {
			c.Diag.Error(v.Pos(), "cannot assign to let %q", v.Name)
			return false
		}
		return true
	case *ast.Member:
		if b, ok := rootBinding(v.Receiver); ok && b.Name.String() == "this" && !b.Mutable {
			c.Diag.Error(v.Pos(), "cannot assign through a non-mut 'this'")
			return false
		}
		return true
	case *ast.Unary:
		if v.Op != ast.UnaryDeref {
			return false
		}
		t, _ := v.Operand.Type().(types.Type)
		switch unwrapAlias(t).(type) {
		case *types.Pointer, *types.MutRef:
			return true
		case *types.Ref:
			c.Diag.Error(v.Pos(), "cannot assign through an immutable reference")
			return false
		}
		return false
	default:
		return false
	}
}

// checkAssign implements spec.md §4.6 "Assignment".
func (c *Checker) checkAssign(a *ast.Assign) {
	if id, ok := a.LHS.(*ast.Ident); ok && id.Name.String() == "_" {
		c.TCtx.WithTop(c.Conf.Universe.Unknown, func() { c.check(a.LHS) })
		c.TCtx.WithTop(c.Conf.Universe.Unknown, func() { c.check(a.RHS) })
		rt, _ := a.RHS.Type().(types.Type)
		a.SetType(rt)
		return
	}

	c.TCtx.WithTop(c.Conf.Universe.Unknown, func() { c.check(a.LHS) })
	lt, _ := a.LHS.Type().(types.Type)
	c.TCtx.WithTop(lt, func() { c.check(a.RHS) })
	rt, _ := a.RHS.Type().(types.Type)

	if a.IsOpAssign && lt != nil {
		if !isOpAssignable(unwrapAlias(lt), a.Op) {
			c.Diag.Error(a.Pos(), "operator-assignment not supported on type %s", lt)
		}
	}
	if !c.assignable(lt, rt) {
		c.Diag.Error(a.Pos(), "cannot assign %s to %s", rt, lt)
	}
	c.validAssignTarget(a.LHS)

	a.SetType(lt)
}

// checkReturn implements spec.md §4.6 "Return".
func (c *Checker) checkReturn(r *ast.Return) {
	if c.funcResult == nil {
		c.Diag.Error(r.Pos(), "return outside a function")
		r.SetType(c.Conf.Universe.Void)
		return
	}
	if r.Value != nil {
		c.TCtx.WithTop(c.funcResult, func() { c.check(r.Value) })
		vt, _ := r.Value.Type().(types.Type)
		if !c.assignable(c.funcResult, vt) {
			c.Diag.Error(r.Pos(), "cannot return %s as %s", vt, c.funcResult)
		}
	} else if c.funcResult.Kind() != types.KindVoid {
		c.Diag.Error(r.Pos(), "missing return value")
	}
	r.SetType(c.Conf.Universe.Void)
}

// checkIf implements spec.md §4.6 "If", delegating the narrowing algorithm
// to narrow.go.
func (c *Checker) checkIf(f *ast.If) {
	rvalue := f.Flags().Has(ast.RValue)
	c.Scope.Enter()

	var cond ast.Expr
	if f.LetName != nil {
		c.TCtx.WithTop(c.Conf.Universe.Unknown, func() { c.check(f.LetInit) })
	} else {
		c.TCtx.WithTop(c.Conf.Universe.Bool, func() { c.check(f.Cond) })
		cond = f.Cond
	}

	var entries []narrowEntry
	if f.LetName != nil || cond != nil {
		if es, ok := c.narrow(f.Pos(), cond, f.LetName, f.LetInit); ok {
			entries = es
		}
	}
	if f.LetName == nil {
		if ct, ok := cond.Type().(types.Type); ok && !isBoolOrOptional(unwrapAlias(ct)) {
			c.Diag.Error(f.Pos(), "if condition must be bool or optional")
		}
	}

	for _, e := range entries {
		c.Scope.Define(c.Conf.Debug, e.sym, e.binding)
	}
	if rvalue {
		f.Then.SetFlags(f.Then.Flags().Set(ast.RValue))
	}
	c.check(f.Then)
	c.Scope.Leave()

	elseType := types.Type(c.Conf.Universe.Void)
	if f.Else != nil {
		c.Scope.Enter()
		for _, e := range entries {
			if e.elseBinding != nil {
				c.Scope.Define(c.Conf.Debug, e.sym, e.elseBinding)
			}
		}
		if rvalue {
			f.Else.SetFlags(f.Else.Flags().Set(ast.RValue))
		}
		c.check(f.Else)
		c.Scope.Leave()
		if t, ok := f.Else.Type().(types.Type); ok && t != nil {
			elseType = t
		}
	}

	if !rvalue {
		f.SetType(c.Conf.Universe.Void)
		return
	}
	thenType, _ := f.Then.Type().(types.Type)
	if thenType == nil {
		thenType = c.Conf.Universe.Void
	}
	if f.Else != nil && thenType.Kind() != types.KindVoid && elseType.Kind() != types.KindVoid {
		if !c.assignable(thenType, elseType) {
			c.Diag.Error(f.Pos(), "if branches have incompatible types %s and %s", thenType, elseType)
		}
		f.SetType(thenType)
		return
	}
	f.SetType(types.NewOptional(thenType, c.Conf.PtrSize))
}

// checkBinding implements the var/let and parameter binding rule implied
// throughout spec.md §4.6 (not given its own bullet, since the spec
// documents it via Assignment/If/Function instead); reached for local
// `let`/`var` statements. Function parameters do not pass through here:
// checkFunc marks them Checked itself.
func (c *Checker) checkBinding(b *ast.Binding) {
	want := types.Type(c.Conf.Universe.Unknown)
	if b.Annotated != nil {
		c.checkTypeNode(&b.Annotated)
		if t, ok := b.Annotated.(types.Type); ok {
			want = t
		}
	}
	if b.Init != nil {
		c.TCtx.WithTop(want, func() { c.check(b.Init) })
		it, _ := b.Init.Type().(types.Type)
		if b.Annotated != nil {
			if at, ok := b.Annotated.(types.Type); ok {
				if !c.assignable(at, it) {
					c.Diag.Error(b.Pos(), "cannot initialize %q: %s is not assignable to %s", b.Name, it, at)
				}
				b.SetType(at)
			}
		} else {
			b.SetType(it)
		}
	} else if b.Annotated != nil {
		b.SetType(want)
	} else {
		c.Diag.Error(b.Pos(), "%q has neither a type annotation nor an initializer", b.Name)
		b.SetType(c.Conf.Universe.Unknown)
	}
	if b.BindKind == ast.BindVar {
		c.Scope.Define(c.Conf.Debug, b.Name, b)
	}
}

// checkTypeConsNode is the entry point for a TypeCons node produced
// directly by the parser (e.g. `Struct{...}` literal syntax); a Call whose
// receiver names a type is folded into the same construction logic by
// call.go without ever materializing a TypeCons (see call.go's doc
// comment for why).
func (c *Checker) checkTypeConsNode(tc *ast.TypeCons) {
	c.checkTypeNode(&tc.ConsType)
	t, ok := tc.ConsType.(types.Type)
	if !ok {
		tc.SetType(c.Conf.Universe.Unknown)
		return
	}
	c.checkConstruction(tc.Pos(), t, tc.Args, tc)
}
