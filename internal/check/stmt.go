package check

import (
	"github.com/velalang/velac/internal/ast"
	"github.com/velalang/velac/internal/types"
)

// checkBlock implements spec.md §4.6 "Block": statements are checked in
// source order; once a return is seen, the block is marked exit and
// subsequent statements are not checked, only flagged Checked; they get no
// unused marker and no diagnostic (spec.md §5 "Ordering guarantees").
func (c *Checker) checkBlock(b *ast.Block) {
	rvalue := b.Flags().Has(ast.RValue)
	exited := false

	for i, stmt := range b.Stmts {
		last := i == len(b.Stmts)-1
		if exited {
			stmt.SetFlags(stmt.Flags().Set(ast.Checked))
			continue
		}
		if last && rvalue {
			stmt.SetFlags(stmt.Flags().Set(ast.RValue))
		}
		c.check(stmt)
		if _, ok := stmt.(*ast.Return); ok {
			exited = true
			b.SetFlags(b.Flags().Set(ast.Exit))
			continue
		}
		if !last && !hasSideEffects(stmt) && stmt.UseCount() == 0 {
			c.Diag.Warn(stmt.Pos(), "unused expression")
		}
	}

	if !rvalue || b.Flags().Has(ast.Exit) || len(b.Stmts) == 0 {
		b.SetType(c.Conf.Universe.Void)
		return
	}
	last := b.Stmts[len(b.Stmts)-1]
	if t, ok := last.Type().(types.Type); ok && t != nil {
		b.SetType(t)
		return
	}
	b.SetType(c.Conf.Universe.Void)
}

// hasSideEffects reports whether an expression's evaluation is observable,
// per spec.md §4.6 "Block": only a statement "with no observable side
// effects" and a zero use-count is eligible for the unused warning.
func hasSideEffects(e ast.Expr) bool {
	switch v := e.(type) {
	case *ast.Call, *ast.Assign, *ast.Binding, *ast.Return:
		return true
	case *ast.Unary:
		return v.Op == ast.UnaryInc || v.Op == ast.UnaryDec
	default:
		return false
	}
}
