package check

import (
	"github.com/velalang/velac/internal/ast"
	"github.com/velalang/velac/internal/types"
)

// opAllowed reports whether op is supported on the concrete (alias- and
// ref-unwrapped) type t, per spec.md §6's normative operator-compatibility
// table.
func opAllowed(t types.Type, op ast.BinaryOp) bool {
	t = unwrapAlias(t)
	switch t.Kind() {
	case types.KindBool, types.KindOptional:
		switch op {
		case ast.OpLAnd, ast.OpLOr, ast.OpEq, ast.OpNe:
			return true
		}
		return false
	case types.KindStruct, types.KindTemplateInstance:
		switch op {
		case ast.OpEq, ast.OpNe:
			return true
		}
		return false
	case types.KindPointer, types.KindRef, types.KindMutRef:
		switch op {
		case ast.OpEq, ast.OpNe:
			return true
		}
		return false
	}
	if t.Kind().IsInteger() {
		switch op {
		case ast.OpAdd, ast.OpSub, ast.OpMul, ast.OpDiv, ast.OpMod,
			ast.OpAnd, ast.OpOr, ast.OpXor, ast.OpShl, ast.OpShr,
			ast.OpLAnd, ast.OpLOr, ast.OpEq, ast.OpNe, ast.OpLt, ast.OpGt, ast.OpLe, ast.OpGe:
			return true
		}
		return false
	}
	if t.Kind().IsFloat() {
		switch op {
		case ast.OpAdd, ast.OpSub, ast.OpMul, ast.OpDiv, ast.OpMod,
			ast.OpLAnd, ast.OpLOr, ast.OpEq, ast.OpNe, ast.OpLt, ast.OpGt, ast.OpLe, ast.OpGe:
			return true
		}
		return false
	}
	// "any other" type family: only assignment is supported, and
	// assignment is handled by a dedicated node kind, not BinaryOp, so no
	// BinaryOp is ever allowed here.
	return false
}

// isOpAssignable reports whether op is one of the compound-assignment
// forms allowed on t (spec.md §6: integer ops "and all op-assign forms";
// float ops "and compound arithmetic assign"). Comparison/logical ops have
// no op-assign form.
func isOpAssignable(t types.Type, op ast.BinaryOp) bool {
	switch op {
	case ast.OpAdd, ast.OpSub, ast.OpMul, ast.OpDiv, ast.OpMod:
		return opAllowed(t, op)
	case ast.OpAnd, ast.OpOr, ast.OpXor, ast.OpShl, ast.OpShr:
		return unwrapAlias(t).Kind().IsInteger()
	default:
		return false
	}
}

// unwrapAlias follows a chain of Alias referents to the underlying type
// (spec.md §4.6: operator/assignment rules "unwrap aliases").
func unwrapAlias(t types.Type) types.Type {
	for {
		a, ok := t.(*types.Alias)
		if !ok || a.Referent == nil {
			return t
		}
		t = a.Referent
	}
}

// unwrapRef strips a single layer of Ref/MutRef, used by binary-op
// checking ("if one operand is a reference, insert an implicit deref
// wrapper", spec.md §4.6 "Binary op").
func unwrapRef(t types.Type) (elem types.Type, wasRef bool) {
	switch v := t.(type) {
	case *types.Ref:
		return v.Elem, true
	case *types.MutRef:
		return v.Elem, true
	}
	return t, false
}

// canonicalizeIntKind maps native int/uint to their fixed-width
// equivalents of the same size, per spec.md §4.6 "Binary op": "equivalent
// (modulo aliases and native int/uint canonicalization)".
func canonicalizeIntKind(u *types.Universe, t types.Type) types.Type {
	b, ok := t.(*types.Basic)
	if !ok {
		return t
	}
	switch b.Kind() {
	case types.KindInt:
		return sameSizeSigned(u, b.Size())
	case types.KindUint:
		return sameSizeUnsigned(u, b.Size())
	}
	return t
}

func sameSizeSigned(u *types.Universe, size int) *types.Basic {
	switch size {
	case 1:
		return u.I8
	case 2:
		return u.I16
	case 4:
		return u.I32
	default:
		return u.I64
	}
}

func sameSizeUnsigned(u *types.Universe, size int) *types.Basic {
	switch size {
	case 1:
		return u.U8
	case 2:
		return u.U16
	case 4:
		return u.U32
	default:
		return u.U64
	}
}
