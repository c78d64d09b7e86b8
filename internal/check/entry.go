package check

import (
	"github.com/velalang/velac/internal/ast"
	"github.com/velalang/velac/internal/symbol"
	"github.com/velalang/velac/internal/types"
)

// Run implements spec.md §6's `typecheck(compiler, ast-arena, pkg,
// units[])` entry point for one package: top-level hoist, per-unit
// checking in source order, delayed-action draining, post-analysis
// draining. Returns the first fatal error recovered from a bailout, or
// nil.
func (c *Checker) Run(units []*ast.Unit) (err error) {
	defer c.handleBailout(&err)

	c.Scope.PackageLookup = func(name *symbol.Symbol) (any, bool) {
		obj, ok := c.Pkg.Members[name.String()]
		if no, isNs := obj.(nsObj); isNs {
			return no.node, ok
		}
		return obj, ok
	}

	c.hoist(units)

	for _, u := range units {
		c.checkUnit(u)
		c.drainDelayed()
	}

	c.drainPostAnalysis()
	return nil
}

// hoist implements spec.md §5 "Ordering guarantees": declarations are
// first assigned namespace-parent pointers and function names are
// pre-defined at unit scope, before any declaration's body is checked.
func (c *Checker) hoist(units []*ast.Unit) {
	for _, u := range units {
		for _, td := range u.Types {
			t, ok := td.Type.(types.Type)
			if !ok {
				continue
			}
			if s, ok := t.(*types.Struct); ok {
				s.Namespace = c.Pkg
			}
			c.Pkg.Members[td.Name.String()] = newNsObj(td.Name.String(), t)
			c.Scope.Define(c.Conf.Debug, td.Name, t)
		}
		for _, f := range u.Funcs {
			if f.Name == nil {
				continue
			}
			c.Pkg.Members[f.Name.String()] = newNsObj(f.Name.String(), f)
			c.Scope.Define(c.Conf.Debug, f.Name, f)
		}
	}
}

// checkUnit processes one unit's imports (§4.10) and then checks its
// declarations in source order (§5).
func (c *Checker) checkUnit(u *ast.Unit) {
	for _, imp := range u.Imports {
		api := c.Conf.APINamespaces[imp.Path]
		c.importUnit(imp, api)
	}

	for _, td := range u.Types {
		t, ok := td.Type.(types.Type)
		if !ok {
			continue
		}
		c.checkType(&t)
	}

	for _, v := range u.Vars {
		c.check(v)
	}

	for _, f := range u.Funcs {
		c.check(f)
	}
}
