package check

import (
	"fmt"

	"github.com/velalang/velac/internal/ast"
	"github.com/velalang/velac/internal/types"
)

// checkType resolves and checks a type expression in place, spec.md §4.6's
// type-node rules. tp is a slot (a pointer into the parent's field) so
// replacement — the unresolved-name and template-use rules both replace
// their slot's contents — is visible to the caller without the caller
// needing to know which rule fired (spec.md §9 "In-place node
// replacement").
func (c *Checker) checkType(tp *types.Type) {
	t := *tp
	if t == nil {
		return
	}
	switch v := t.(type) {
	case *types.Basic, *types.Namespace, *types.Placeholder:
		if ph, ok := t.(*types.Placeholder); ok && c.templateNest == 0 {
			c.Diag.Error(ast.NoPos, "placeholder type %q used outside a template body", ph.Name)
		}
	case *types.Unresolved:
		c.checkUnresolved(tp, v)
	case *types.TemplateUse:
		for i := range v.Args {
			c.checkType(&v.Args[i])
		}
		*tp = c.checkTemplateUse(v)
	case *types.Struct:
		if v.Kind() == types.KindTemplateInstance || v.Checked() {
			return
		}
		v.MarkChecked()
		if v.IsTemplate() {
			// Template bodies are only checked on instantiation (spec.md
			// §4.4 step 8); the declaration itself is left as-is so it can
			// be looked up and instantiated later.
			return
		}
		c.checkStructDecl(v)
	case *types.Alias:
		if v.Checked() {
			return
		}
		c.checkAlias(v)
		v.MarkChecked()
	case *types.FuncType:
		if v.Checked() {
			return
		}
		v.MarkChecked()
		c.checkFuncType(v)
	case *types.Pointer:
		c.checkType(&v.Elem)
		c.Interner.Intern(tp)
	case *types.Ref:
		c.checkType(&v.Elem)
		c.Interner.Intern(tp)
	case *types.MutRef:
		c.checkType(&v.Elem)
	case *types.Slice:
		c.checkType(&v.Elem)
		c.Interner.Intern(tp)
	case *types.MutSlice:
		c.checkType(&v.Elem)
	case *types.Optional:
		c.checkType(&v.Elem)
		c.Interner.Intern(tp)
	case *types.ArrayExpr:
		*tp = c.checkArrayExpr(v)
	case *types.Array:
		c.checkType(&v.Elem)
		c.Interner.Intern(tp)
	default:
		c.fatal(fmt.Errorf("checkType: unexpected type %T", t))
	}
}

// checkStructDecl checks an ordinary (non-template) struct declaration:
// each field's type in order, then layout, interning, and post-analysis
// enqueue (spec.md §4.6 "Struct type").
func (c *Checker) checkStructDecl(s *types.Struct) {
	for _, f := range s.Fields {
		c.checkType(&f.Type)
	}
	c.checkStructBody(s)
}

// checkStructBody computes layout, propagates the subowners flag, interns
// the (now fully-typed) struct, and enqueues it for post-analysis. Shared
// by ordinary struct declarations and freshly-expanded template instances
// (spec.md §4.4 step 8, §4.6 "Struct type", §4.8).
func (c *Checker) checkStructBody(s *types.Struct) {
	sub := false
	for _, f := range s.Fields {
		if types.HasDrop(f.Type) || types.SubOwners(f.Type) {
			sub = true
		}
	}
	s.SetSubOwners(sub)
	s.Layout()
	var asType types.Type = s
	c.Interner.Intern(&asType)
	for _, f := range s.Fields {
		if fs, ok := unwrapAlias(f.Type).(*types.Struct); ok {
			c.dependents[fs] = append(c.dependents[fs], s)
		}
	}
	c.enqueuePostAnalysis(s)
}

// checkAlias checks the referent type, inherits subowners, and detects
// alias cycles via the CheckTypeDep collaborator, rewriting the referent
// to Unknown to cut the cycle on detection (spec.md §4.6 "Alias type").
func (c *Checker) checkAlias(a *types.Alias) {
	if a.Resolving() {
		c.Diag.Error(ast.NoPos, "alias %q participates in a cycle", a.Name)
		a.SetReferent(c.Conf.Universe.Unknown)
		return
	}
	if c.Conf.CheckTypeDep != nil && !c.Conf.CheckTypeDep(a) {
		c.Diag.Error(ast.NoPos, "alias %q participates in a cycle", a.Name)
		a.SetReferent(c.Conf.Universe.Unknown)
		return
	}
	a.SetResolving(true)
	c.checkType(&a.Referent)
	a.SetReferent(a.Referent)
	a.SetResolving(false)
}

// checkFuncType checks a function-type expression's parameters and result
// (spec.md §4.6 "Function type"). The parameters are checked without any
// "this"-type context; no such context is pushed or consulted here.
func (c *Checker) checkFuncType(f *types.FuncType) {
	for i := range f.Params {
		c.checkType(&f.Params[i])
	}
	c.checkType(&f.Result)
	var asType types.Type = f
	c.Interner.Intern(&asType)
}

// checkArrayExpr checks the element type and, if a length expression is
// present, evaluates it via Conf.ComptimeEvalUint and rejects a
// zero-length result (spec.md §4.6 "Array type").
func (c *Checker) checkArrayExpr(a *types.ArrayExpr) types.Type {
	c.checkType(&a.Elem)
	if a.LengthExpr == nil {
		c.Diag.Error(ast.NoPos, "array type requires a length")
		return c.Conf.Universe.Unknown
	}
	if c.Conf.ComptimeEvalUint == nil {
		c.fatal(fmt.Errorf("checkArrayExpr: no comptime-eval-uint collaborator configured"))
	}
	ok, length := c.Conf.ComptimeEvalUint(a.LengthExpr, 0)
	if !ok {
		c.Diag.Error(ast.NoPos, "array length is not a compile-time unsigned integer")
		return c.Conf.Universe.Unknown
	}
	if length == 0 {
		c.Diag.Error(ast.NoPos, "array length must be nonzero")
		return c.Conf.Universe.Unknown
	}
	arr := types.NewArray(a.Elem, length)
	var asType types.Type = arr
	c.Interner.Intern(&asType)
	return asType
}

// checkUnresolved looks up an `name` forward type reference in scope; on
// miss it reports once and defines the name as the universe's Unknown type
// (to limit cascades, spec.md §7: an unknown identifier is "redefined... to
// suppress repeat reports"), and on
// hit to a non-type it reports an error pointing at the definition
// (spec.md §4.6 "Unresolved type").
func (c *Checker) checkUnresolved(tp *types.Type, u *types.Unresolved) {
	sym := c.Syms.Intern(u.Name)
	obj, _, found := c.Scope.Lookup(sym)
	if !found {
		c.Diag.Error(ast.NoPos, "unknown type %q", u.Name)
		u.Resolved = c.Conf.Universe.Unknown
		c.Scope.Define(c.Conf.Debug, sym, c.Conf.Universe.Unknown)
		return
	}
	resolvedType, ok := asType(obj)
	if !ok {
		c.Diag.Error(ast.NoPos, "%q is not a type", u.Name)
		c.Diag.Help(ast.NoPos, "%q is defined here", u.Name)
		u.Resolved = c.Conf.Universe.Unknown
		return
	}
	c.checkType(&resolvedType)
	u.Resolved = resolvedType
	*tp = resolvedType
}

// passByValue resolves the Open Question in spec.md §9 about the "this"
// parameter's calling convention as a fixed ABI rule rather than a
// heuristic: small primitives always pass by value; a struct (or template
// instance) passes by value only if it fits in two pointer-widths and its
// alignment does not exceed a pointer, otherwise every "this" parameter is
// wrapped in a reference.
func (c *Checker) passByValue(t types.Type) bool {
	k := unwrapAlias(t).Kind()
	if k.IsInteger() || k.IsFloat() || k == types.KindBool {
		return true
	}
	if k == types.KindStruct || k == types.KindTemplateInstance {
		return t.Size() <= 2*c.Conf.PtrSize && t.Align() <= c.Conf.PtrSize
	}
	return false
}

// ownerStruct unwraps alias/reference layers to find the concrete struct a
// receiver binding names, used to attach the `drop` flag (spec.md §4.6
// "Function": "If the function is named drop on a receiver type...").
func ownerStruct(recv *ast.Binding) (*types.Struct, bool) {
	t, ok := recv.Type().(types.Type)
	if !ok {
		return nil, false
	}
	t = unwrapAlias(t)
	if e, wasRef := unwrapRef(t); wasRef {
		t = unwrapAlias(e)
	}
	s, ok := t.(*types.Struct)
	return s, ok
}

func paramTypes(params []*ast.Binding) []types.Type {
	out := make([]types.Type, len(params))
	for i, p := range params {
		out[i], _ = p.Type().(types.Type)
	}
	return out
}

func mustType(e ast.Expr) types.Type {
	t, _ := e.Type().(types.Type)
	return t
}

// implicitReturn implements spec.md §4.6 "Function": "If the result type
// is non-void and the body does not flow into a return, treat the last
// expression of the body as an implicit return." The last statement's slot
// in the block is overwritten with a freshly built Return node wrapping it.
func (c *Checker) implicitReturn(body *ast.Block, resultType types.Type) {
	if len(body.Stmts) == 0 {
		return
	}
	i := len(body.Stmts) - 1
	last := body.Stmts[i]
	if !c.assignable(resultType, mustType(last)) {
		c.Diag.Error(last.Pos(), "implicit return: %s is not assignable to result type %s", mustType(last), resultType)
	}
	ret := ast.NewReturn(last.Pos(), last)
	ret.SetFlags(ret.Flags().Set(ast.Checked))
	ret.SetType(c.Conf.Universe.Void)
	body.Stmts[i] = ret
}

// checkFunc implements spec.md §4.6 "Function".
func (c *Checker) checkFunc(f *ast.Func) {
	outer := c.environment
	c.environment = environment{}

	if f.Receiver != nil {
		c.checkTypeNode(&f.Receiver.Annotated)
		recvType, _ := f.Receiver.Annotated.(types.Type)
		if recvType != nil && !c.passByValue(recvType) {
			if f.Receiver.Mutable {
				recvType = types.NewMutRef(recvType, c.Conf.PtrSize)
			} else {
				recvType = types.NewRef(recvType, c.Conf.PtrSize)
			}
		}
		f.Receiver.SetType(recvType)
		f.Receiver.SetFlags(f.Receiver.Flags().Set(ast.Checked))
		c.environment.thisType = recvType
	}

	for _, p := range f.Params {
		c.checkTypeNode(&p.Annotated)
		if t, ok := p.Annotated.(types.Type); ok {
			p.SetType(t)
		}
		p.SetFlags(p.Flags().Set(ast.Checked))
	}

	c.checkTypeNode(&f.Result)
	resultType, _ := f.Result.(types.Type)
	if resultType == nil {
		resultType = c.Conf.Universe.Void
	}
	c.environment.funcResult = resultType

	if f.Name != nil && f.Name.String() == "drop" && f.Receiver != nil {
		if f.Receiver.Mutable && resultType.Kind() == types.KindVoid && len(f.Params) == 0 {
			if owner, ok := ownerStruct(f.Receiver); ok {
				owner.SetDrop(true)
				f.IsDrop = true
			}
		} else {
			c.Diag.Error(f.Pos(), "drop must have signature (mut this) -> void")
		}
	}

	c.Scope.Enter()
	if f.Receiver != nil {
		c.Scope.Define(c.Conf.Debug, f.Receiver.Name, f.Receiver)
	}
	for _, p := range f.Params {
		c.Scope.Define(c.Conf.Debug, p.Name, p)
	}
	c.TCtx.WithTop(resultType, func() {
		f.Body.SetFlags(f.Body.Flags().Set(ast.RValue))
		c.check(f.Body)
	})
	c.Scope.Leave()

	if resultType.Kind() != types.KindVoid && !f.Body.Flags().Has(ast.Exit) {
		c.implicitReturn(f.Body, resultType)
	}

	f.SetType(types.NewFuncType(c.Conf.PtrSize, paramTypes(f.Params), resultType))
	c.environment = outer
}

// asType reports whether obj is itself a type, as opposed to a value
// (function or binding) that merely has a type. Type declarations are
// always stored directly as a types.Type in scope/namespace tables (see
// entry.go's hoist), never wrapped in a Binding, so that's the only case
// that counts.
func asType(obj any) (types.Type, bool) {
	t, ok := obj.(types.Type)
	return t, ok
}
