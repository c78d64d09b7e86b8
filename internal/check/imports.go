package check

import (
	"github.com/velalang/velac/internal/ast"
	"github.com/velalang/velac/internal/symbol"
	"github.com/velalang/velac/internal/types"
)

// nsObj wraps an arbitrary package-namespace member (a *types.Struct, a
// *types.Alias, an *ast.Func or *ast.Binding materialized at package scope)
// so it satisfies types.Object, matching how the teacher's Scope stores an
// untyped Object and callers type-assert back to the concrete kind they
// expect.
type nsObj struct {
	name string
	node any
}

func (o nsObj) Name() string { return o.name }

// newNsObj builds the Object wrapper for a package-API member.
func newNsObj(name string, node any) nsObj { return nsObj{name: name, node: node} }

// importUnit implements spec.md §4.10 for one unit's import list. api is
// the target package's API namespace, looked up by path in
// Conf.APINamespaces by the caller (the top-level entry point) before this
// is invoked, since path resolution itself is out of scope for the core.
func (c *Checker) importUnit(imp ast.Import, api *types.Namespace) {
	if api == nil {
		c.Diag.Error(imp.Pos, "unknown import path %q", imp.Path)
		return
	}

	if imp.Alias != nil {
		c.defineImport(imp.Pos, imp.Alias, newNsObj(imp.Alias.String(), api))
	}

	if len(imp.Names) > 0 {
		for _, n := range imp.Names {
			obj, ok := api.Members[n.Source.String()]
			if !ok {
				c.Diag.Error(n.Pos, "%q has no member %q", imp.Path, n.Source)
				c.recordLikelyFromOtherPackages(n.Source, n.Pos, api)
				continue
			}
			c.defineImport(n.Pos, n.Local, obj)
		}
	}

	if imp.Wildcard {
		explicit := make(map[string]bool, len(imp.Names))
		for _, n := range imp.Names {
			explicit[n.Local.String()] = true
		}
		for name, obj := range api.Members {
			if explicit[name] {
				continue
			}
			sym := c.Syms.Intern(name)
			c.defineImport(imp.Pos, sym, obj)
		}
	}
}

// defineImport installs name -> obj at the current scope, reporting a
// collision with a name already defined there (spec.md §4.10). The message
// is the same for both cases: it does not say whether the earlier name came
// from an import or from a definition.
func (c *Checker) defineImport(pos ast.Pos, sym *symbol.Symbol, obj any) {
	if existing, found := c.Scope.LookupLocal(sym); found {
		c.Diag.Error(pos, "%q collides with a previous import or definition", sym)
		_ = existing
		return
	}
	c.Scope.Define(c.Conf.Debug, sym, obj)
}

// recordLikelyFromOtherPackages scans every other configured package
// namespace for a member spelled like the missing name, recording it as a
// "likely wanted" candidate for suggest.go (SPEC_FULL.md SUPPLEMENTED
// FEATURES: the didyoumean provenance table populated during import).
func (c *Checker) recordLikelyFromOtherPackages(name *symbol.Symbol, pos ast.Pos, skip *types.Namespace) {
	for path, ns := range c.Conf.APINamespaces {
		if ns == skip {
			continue
		}
		if _, ok := ns.Members[name.String()]; ok {
			c.recordLikely(name, path+"."+name.String(), pos)
		}
	}
}
