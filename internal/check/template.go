package check

import (
	"github.com/velalang/velac/internal/ast"
	"github.com/velalang/velac/internal/checkast"
	"github.com/velalang/velac/internal/types"
)

// checkTemplateUse resolves a `Foo<A, B, ...>` reference, spec.md §4.4.
func (c *Checker) checkTemplateUse(use *types.TemplateUse) types.Type {
	template := use.Template
	required, total := template.RequiredArity()

	// Step 1: enforce arity against (required, total).
	if len(use.Args) < required || len(use.Args) > total {
		c.Diag.Error(ast.NoPos, "template %q expects between %d and %d type arguments, got %d",
			template.Name, required, total, len(use.Args))
		return c.Conf.Universe.Unknown
	}

	// Step 2: arguments are assumed already checked (this implementation
	// accepts type arguments only, not
	// arbitrary compile-time expressions, a simplification of the
	// original's `templateparam_t` which also allows non-type params).
	args := make([]types.Type, total)
	copy(args, use.Args)
	for i := len(use.Args); i < total; i++ {
		args[i] = template.Placeholders[i].Default
	}

	// Step 3: inside an enclosing template definition, defer expansion.
	if c.templateNest > 0 {
		return types.NewTemplateUse(template, args)
	}

	// Step 4: memoization key is (template pointer, concatenated arg ids).
	key := types.InstanceKey(template, args)
	if inst, ok := c.instances[key]; ok {
		return inst
	}

	// Step 5: deep-transform the template body, substituting placeholders.
	substituted := checkast.Transform(types.Type(template), func(t types.Type) (types.Type, bool) {
		ph, ok := t.(*types.Placeholder)
		if !ok {
			return nil, false
		}
		for i, p := range template.Placeholders {
			if p == ph {
				return args[i], true
			}
		}
		return nil, false
	})

	instStruct, ok := substituted.(*types.Struct)
	if !ok {
		c.Diag.Error(ast.NoPos, "template %q did not expand to a struct", template.Name)
		return c.Conf.Universe.Unknown
	}

	// Step 6: clone if reference-equal (no placeholder occurred anywhere,
	// e.g. a template whose fields never mention any of its own
	// parameters); every instance must be a distinct node.
	if instStruct == template {
		clone := types.NewStruct(template.Name)
		clone.Fields = append([]*types.Field(nil), template.Fields...)
		clone.Namespace = template.Namespace
		instStruct = clone
	}

	// Step 7: flip template -> template-instance, attach the arg vector,
	// and register in the memoization map *before* checking the body, so
	// a self-referential instantiation terminates.
	instStruct.Origin = template
	instStruct.Args = args
	instStruct.SetKind(types.KindTemplateInstance)
	c.instances[key] = instStruct

	// Step 8: check the instance through the normal type-checking entry.
	c.checkStructBody(instStruct)

	return instStruct
}
