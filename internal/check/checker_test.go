package check

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/velalang/velac/internal/ast"
	"github.com/velalang/velac/internal/config"
	"github.com/velalang/velac/internal/diag"
	"github.com/velalang/velac/internal/symbol"
	"github.com/velalang/velac/internal/types"
)

// harness bundles a fresh Checker with its diagnostics collected into a
// slice, for the testify-based scenario tests below (in the manner of
// _examples/termfx-morfx/models/models_test.go).
type harness struct {
	*Checker
	diags []diag.Diagnostic
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	h := &harness{}
	conf := config.New(8, 8)
	reporter := diag.NewReporter(func(d diag.Diagnostic) { h.diags = append(h.diags, d) })
	h.Checker = New(conf, symbol.NewTable(), ast.NewFileTable(), reporter)
	return h
}

func (h *harness) errors() []string {
	var out []string
	for _, d := range h.diags {
		if d.Kind == diag.KindError {
			out = append(out, d.Message)
		}
	}
	return out
}

// S1: fun f(a ?int) int { if a { a } else { 0 } }
func TestScenarioS1_NarrowingOfOptionalParam(t *testing.T) {
	h := newHarness(t)
	u := h.Conf.Universe

	aSym := h.Syms.Intern("a")
	param := ast.NewBinding(ast.NoPos, ast.BindParam, aSym)
	param.Annotated = types.NewOptional(u.Int, h.Conf.PtrSize)

	thenRef := ast.NewIdent(ast.NoPos, aSym)
	thenRef.SetFlags(thenRef.Flags().Set(ast.RValue))
	thenBlock := ast.NewBlock(ast.NoPos)
	thenBlock.Stmts = []ast.Expr{thenRef}

	elseBlock := ast.NewBlock(ast.NoPos)
	elseBlock.Stmts = []ast.Expr{ast.NewIntLit(ast.NoPos, 0, false, "0")}

	condRef := ast.NewIdent(ast.NoPos, aSym)
	ifExpr := ast.NewIf(ast.NoPos, condRef, thenBlock)
	ifExpr.Else = elseBlock
	ifExpr.SetFlags(ifExpr.Flags().Set(ast.RValue))

	body := ast.NewBlock(ast.NoPos)
	body.Stmts = []ast.Expr{ifExpr}

	f := ast.NewFunc(ast.NoPos, h.Syms.Intern("f"))
	f.Params = []*ast.Binding{param}
	f.Result = u.Int
	f.Body = body

	h.checkFunc(f)

	require.Empty(t, h.errors())
	assert.Equal(t, u.Int, thenRef.Type())
	assert.Equal(t, u.Int, elseBlock.Stmts[0].Type())
	assert.Equal(t, u.Int, ifExpr.Type())
}

// S2: fun f() { let x = 1; x = 2 }
func TestScenarioS2_AssignToLet(t *testing.T) {
	h := newHarness(t)
	u := h.Conf.Universe

	xSym := h.Syms.Intern("x")
	letX := ast.NewBinding(ast.NoPos, ast.BindVar, xSym)
	letX.Init = ast.NewIntLit(ast.NoPos, 1, false, "1")

	assign := ast.NewAssign(ast.NoPos, ast.NewIdent(ast.NoPos, xSym), ast.NewIntLit(ast.NoPos, 2, false, "2"))

	body := ast.NewBlock(ast.NoPos)
	body.Stmts = []ast.Expr{letX, assign}

	f := ast.NewFunc(ast.NoPos, h.Syms.Intern("f"))
	f.Result = u.Void
	f.Body = body

	h.checkFunc(f)

	errs := h.errors()
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0], `cannot assign to let "x"`)
}

// S3: let a: i8 = 128
func TestScenarioS3_IntLitOverflow(t *testing.T) {
	h := newHarness(t)
	u := h.Conf.Universe

	a := ast.NewBinding(ast.NoPos, ast.BindVar, h.Syms.Intern("a"))
	a.Annotated = u.I8
	a.Init = ast.NewIntLit(ast.NoPos, 128, false, "128")

	h.check(a)

	errs := h.errors()
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0], "overflows i8")
}

// S4: type Foo<T> { x T } var v = Foo<int>{x: 1} var w = Foo<int>{x: 2}
func TestScenarioS4_TemplateInstanceMemoization(t *testing.T) {
	h := newHarness(t)
	u := h.Conf.Universe

	foo := types.NewStruct("Foo")
	tParam := types.NewPlaceholder("T", nil)
	foo.Placeholders = []*types.Placeholder{tParam}
	foo.Fields = []*types.Field{{Name: "x", Type: tParam}}
	var asType types.Type = foo
	h.checkType(&asType)

	use1 := types.Type(types.NewTemplateUse(foo, []types.Type{u.Int}))
	h.checkType(&use1)
	use2 := types.Type(types.NewTemplateUse(foo, []types.Type{u.Int}))
	h.checkType(&use2)

	require.Empty(t, h.errors())
	assert.Same(t, use1, use2)
}

// S5: type A = B; type B = A
func TestScenarioS5_AliasCycle(t *testing.T) {
	h := newHarness(t)

	a := types.NewAlias("A")
	b := types.NewAlias("B")
	a.Referent = b
	b.Referent = a

	seen := map[types.Type]bool{}
	h.Conf.CheckTypeDep = func(node any) bool {
		n, ok := node.(*types.Alias)
		if !ok {
			return true
		}
		if seen[n] {
			return false
		}
		seen[n] = true
		return true
	}

	var at types.Type = a
	h.checkType(&at)

	require.NotEmpty(t, h.errors())
	assert.Equal(t, types.KindUnknown, unwrapAlias(a).Kind())
}

// S6: fun f(a ?int) { if let x = a || !a { } }
func TestScenarioS6_ComplexOpWithLocalDefRejected(t *testing.T) {
	h := newHarness(t)

	aSym := h.Syms.Intern("a")
	notA := ast.NewUnary(ast.NoPos, ast.UnaryNot, ast.NewIdent(ast.NoPos, aSym), false)
	letInit := ast.NewBinary(ast.NoPos, ast.OpLOr, ast.NewIdent(ast.NoPos, aSym), notA)

	_, ok := h.narrow(ast.NoPos, nil, h.Syms.Intern("x"), letInit)

	assert.False(t, ok)
	errs := h.errors()
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0], "cannot use type-narrowing let definition with '||' operation")
}

// §8 invariant 2: structural equality implies pointer equality once
// interned. Two independently constructed *int pointer types collapse to
// the same canonical node (spec.md §4.3).
func TestInvariant_StructuralInterning(t *testing.T) {
	h := newHarness(t)
	u := h.Conf.Universe

	var t1 types.Type = types.NewPointer(u.Int, h.Conf.PtrSize)
	h.checkType(&t1)

	var t2 types.Type = types.NewPointer(u.Int, h.Conf.PtrSize)
	h.checkType(&t2)

	assert.Same(t, t1, t2)
}

// §8 invariant 4: check is idempotent.
func TestInvariant_CheckIdempotent(t *testing.T) {
	h := newHarness(t)
	lit := ast.NewIntLit(ast.NoPos, 5, false, "5")
	h.check(lit)
	firstType := lit.Type()
	h.check(lit)
	assert.Same(t, firstType, lit.Type())
}
