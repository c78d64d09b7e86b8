package check

import (
	"github.com/velalang/velac/internal/ast"
	"github.com/velalang/velac/internal/types"
)

// checkCall implements spec.md §4.6 "Call" and, when the receiver names a
// type, §4.7's construction rules.
//
// The spec describes the type-construction path as rewriting the Call node
// into a distinct TypeCons node through the caller's slot. This checker's
// check() dispatches by value rather than by slot, so
// the construction logic below runs directly against the Call's own
// Receiver/Args instead of allocating a TypeCons — the parser is still free
// to emit TypeCons directly for its own literal syntax (`Struct{...}`),
// handled by checkTypeConsNode in expr.go, which shares checkConstruction.
func (c *Checker) checkCall(call *ast.Call) {
	c.TCtx.WithTop(c.Conf.Universe.Unknown, func() { c.check(call.Receiver) })

	if t, isType := typeOfReceiver(call.Receiver); isType {
		c.checkConstruction(call.Pos(), t, call.Args, call)
		return
	}

	rt, _ := call.Receiver.Type().(types.Type)
	ft, ok := unwrapAlias(rt).(*types.FuncType)
	if !ok {
		c.Diag.Error(call.Pos(), "%s is not callable", rt)
		call.SetType(c.Conf.Universe.Unknown)
		return
	}

	c.checkArgsPositional(call.Pos(), ft.Params, call.Args)
	call.SetType(ft.Result)

	if ft.Result != nil && types.SubOwners(ft.Result) && !call.Flags().Has(ast.RValue) {
		c.Diag.Warn(call.Pos(), "unused result")
	}
}

// typeOfReceiver reports whether e was resolved (by checkIdent/checkMember)
// to a type declaration rather than a value.
func typeOfReceiver(e ast.Expr) (types.Type, bool) {
	if !e.Flags().Has(ast.NamesType) {
		return nil, false
	}
	t, ok := e.Type().(types.Type)
	return t, ok
}

// checkArgsPositional checks an ordinary function call's arguments against
// params (spec.md §4.6 "Call"). It reports a positional argument that
// follows a named one, then matches every argument to params by position:
// an argument's name is not compared with any parameter name.
func (c *Checker) checkArgsPositional(pos ast.Pos, params []types.Type, args []ast.Arg) {
	seenNamed := false
	for _, a := range args {
		if a.Name == nil {
			if seenNamed {
				c.Diag.Error(pos, "positional argument follows named argument")
			}
		} else {
			seenNamed = true
		}
	}
	if len(args) != len(params) {
		c.Diag.Error(pos, "expected %d arguments, got %d", len(params), len(args))
	}
	for i, a := range args {
		var want types.Type = c.Conf.Universe.Unknown
		if i < len(params) {
			want = params[i]
		}
		c.TCtx.WithTop(want, func() { c.check(a.Value) })
		at, _ := a.Value.Type().(types.Type)
		if i < len(params) && !c.assignable(want, at) {
			c.Diag.Error(a.Value.Pos(), "argument %d: %s is not assignable to %s", i+1, at, want)
		}
	}
}

// checkConstruction implements spec.md §4.7.
func (c *Checker) checkConstruction(pos ast.Pos, t types.Type, args []ast.Arg, dst ast.Expr) {
	ut := unwrapAlias(t)

	if ut.Kind() == types.KindVoid {
		if len(args) != 0 {
			c.Diag.Error(pos, "void() takes no arguments")
		}
		dst.SetType(c.Conf.Universe.Void)
		return
	}

	if s, ok := ut.(*types.Struct); ok {
		c.checkStructConstruction(pos, s, args, dst)
		return
	}
	if ut.Kind().IsInteger() || ut.Kind().IsFloat() || ut.Kind() == types.KindBool {
		c.checkPrimitiveConstruction(pos, t, args, dst)
		return
	}

	// Other user types (spec.md §4.7 "placeholder"): each argument is
	// checked on its own; neither their count nor their types are compared
	// with t.
	for _, a := range args {
		c.TCtx.WithTop(c.Conf.Universe.Unknown, func() { c.check(a.Value) })
	}
	dst.SetType(t)
}

// checkPrimitiveConstruction implements spec.md §4.7 "Primitive T(x)".
func (c *Checker) checkPrimitiveConstruction(pos ast.Pos, t types.Type, args []ast.Arg, dst ast.Expr) {
	if len(args) != 1 || args[0].Name != nil {
		c.Diag.Error(pos, "%s(...) requires exactly one positional argument", t)
		dst.SetType(c.Conf.Universe.Unknown)
		return
	}
	arg := args[0].Value
	c.TCtx.WithTop(t, func() { c.check(arg) })
	at, _ := arg.Type().(types.Type)

	if at != nil && c.identical(unwrapAlias(t), unwrapAlias(at)) {
		arg.AddUse(1)
		dst.SetType(t)
		return
	}
	ut := unwrapAlias(t)
	convertible := false
	if at != nil {
		uat := unwrapAlias(at)
		isNumericPair := (ut.Kind().IsInteger() || ut.Kind().IsFloat()) &&
			(uat.Kind().IsInteger() || uat.Kind().IsFloat())
		convertible = isNumericPair || c.assignableAfterStrip(t, at)
	}
	if !convertible {
		c.Diag.Error(pos, "cannot construct %s from %s", t, at)
		dst.SetType(c.Conf.Universe.Unknown)
		return
	}
	dst.SetType(t)
}

// checkStructConstruction implements spec.md §4.7 "Struct{...}"/"Struct(...)".
func (c *Checker) checkStructConstruction(pos ast.Pos, s *types.Struct, args []ast.Arg, dst ast.Expr) {
	byName := make(map[string]*types.Field, len(s.Fields))
	for _, f := range s.Fields {
		byName[f.Name] = f
	}

	used := make(map[string]bool, len(args))
	for _, a := range args {
		name := ""
		if a.Name != nil {
			name = a.Name.String()
		} else if id, ok := a.Value.(*ast.Ident); ok {
			name = id.Name.String()
		} else {
			c.Diag.Error(a.Value.Pos(), "struct construction argument must be name: value or a matching identifier")
			continue
		}
		field, ok := byName[name]
		if !ok {
			c.Diag.Error(a.Value.Pos(), "%s has no field %q", s, name)
			continue
		}
		if used[name] {
			c.Diag.Error(a.Value.Pos(), "duplicate field %q", name)
			continue
		}
		used[name] = true

		c.TCtx.WithTop(field.Type, func() { c.check(a.Value) })
		vt, _ := a.Value.Type().(types.Type)
		if !c.assignable(field.Type, vt) {
			c.Diag.Error(a.Value.Pos(), "field %q: %s is not assignable to %s", name, vt, field.Type)
		}
	}
	for _, f := range s.Fields {
		if !used[f.Name] {
			c.Diag.Error(pos, "missing field %q in construction of %s", f.Name, s)
		}
	}
	dst.SetType(s)
}
