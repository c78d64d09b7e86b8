// Package checkast implements the generic AST-transformation helper used
// by template instantiation (spec.md §4.4 step 5, §9 "AST transformation
// for template expansion"): a map over a type tree with a keep-or-replace
// callback that is offered each node before its children; a node it does
// not replace is rebuilt only after its children are transformed, modeled
// on the same "a node whose children are all verbatim is itself verbatim"
// policy the
// pack's AST-rewriting examples use (golang-open2opaque's dst-based
// fixers, miaomiao1992-dingo's pkg/generator), adapted from go/ast nodes
// to this compiler's internal/types.Type nodes.
package checkast

import "github.com/velalang/velac/internal/types"

// Fn is called for every node encountered during Transform, pre-order. If
// it returns matched=true, replacement is substituted directly (its own
// children are not walked — this is how a placeholder is swapped for an
// already-checked argument type without re-visiting the argument).
// Otherwise Transform recurses into the node's children and only
// allocates a new node if at least one child actually changed.
type Fn func(t types.Type) (replacement types.Type, matched bool)

// Transform deep-transforms t per Fn, returning t unchanged (same
// pointer) if no descendant was modified.
func Transform(t types.Type, fn Fn) types.Type {
	if t == nil {
		return nil
	}
	if repl, matched := fn(t); matched {
		return repl
	}

	switch v := t.(type) {
	case *types.Struct:
		return transformStruct(v, fn)
	case *types.FuncType:
		return transformFunc(v, fn)
	case *types.Pointer:
		if e, changed := transformElem(v.Elem, fn); changed {
			return types.NewPointer(e, v.Size())
		}
		return v
	case *types.Ref:
		if e, changed := transformElem(v.Elem, fn); changed {
			return types.NewRef(e, v.Size())
		}
		return v
	case *types.MutRef:
		if e, changed := transformElem(v.Elem, fn); changed {
			return types.NewMutRef(e, v.Size())
		}
		return v
	case *types.Slice:
		if e, changed := transformElem(v.Elem, fn); changed {
			return types.NewSlice(e, v.Size())
		}
		return v
	case *types.MutSlice:
		if e, changed := transformElem(v.Elem, fn); changed {
			return types.NewMutSlice(e, v.Size())
		}
		return v
	case *types.Optional:
		if e, changed := transformElem(v.Elem, fn); changed {
			return types.NewOptional(e, v.Size())
		}
		return v
	case *types.Array:
		if e, changed := transformElem(v.Elem, fn); changed {
			return types.NewArray(e, v.Length)
		}
		return v
	default:
		// Basic, Placeholder (already handled via matched above, but a
		// stray one falls through here verbatim), Unresolved, Namespace,
		// Alias: leafy or intentionally not substituted into.
		return v
	}
}

func transformElem(elem types.Type, fn Fn) (types.Type, bool) {
	newElem := Transform(elem, fn)
	return newElem, newElem != elem
}

func transformStruct(s *types.Struct, fn Fn) types.Type {
	changed := false
	newFields := make([]*types.Field, len(s.Fields))
	for i, f := range s.Fields {
		nt := Transform(f.Type, fn)
		if nt != f.Type {
			changed = true
			newFields[i] = &types.Field{Name: f.Name, Type: nt}
		} else {
			newFields[i] = f
		}
	}
	if !changed {
		return s
	}
	out := types.NewStruct(s.Name)
	out.Fields = newFields
	out.Namespace = s.Namespace
	return out
}

func transformFunc(f *types.FuncType, fn Fn) types.Type {
	changed := false
	newParams := make([]types.Type, len(f.Params))
	for i, p := range f.Params {
		np := Transform(p, fn)
		if np != p {
			changed = true
		}
		newParams[i] = np
	}
	newResult := Transform(f.Result, fn)
	if newResult != f.Result {
		changed = true
	}
	if !changed {
		return f
	}
	return types.NewFuncType(f.Size(), newParams, newResult)
}
