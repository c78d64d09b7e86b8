package types

// wrapper is the shared representation of the pointer-like and
// slice-like type kinds (spec.md §4.6 "Optional/ptr/ref/slice/mut-ref/
// mut-slice type"): each wraps a single element type and is sized from
// the target's pointer size, except Array which additionally carries a
// fixed length.
type wrapper struct {
	base
	Elem Type
}

// Pointer is `*T`.
type Pointer struct{ wrapper }

func (p *Pointer) String() string { return "*" + p.Elem.String() }

// Ref is `&T`, an immutable reference.
type Ref struct{ wrapper }

func (r *Ref) String() string { return "&" + r.Elem.String() }

// MutRef is `mut&T`, a mutable reference.
type MutRef struct{ wrapper }

func (m *MutRef) String() string { return "mut&" + m.Elem.String() }

// Slice is `[]T`.
type Slice struct{ wrapper }

func (s *Slice) String() string { return "[]" + s.Elem.String() }

// MutSlice is `mut[]T`.
type MutSlice struct{ wrapper }

func (m *MutSlice) String() string { return "mut[]" + m.Elem.String() }

// Optional is `?T`.
type Optional struct{ wrapper }

func (o *Optional) String() string { return "?" + o.Elem.String() }

func newWrapper(kind Kind, elem Type, ptrSize int) wrapper {
	return wrapper{base: base{kind: kind, size: ptrSize, align: ptrSize}, Elem: elem}
}

func NewPointer(elem Type, ptrSize int) *Pointer   { return &Pointer{newWrapper(KindPointer, elem, ptrSize)} }
func NewRef(elem Type, ptrSize int) *Ref           { return &Ref{newWrapper(KindRef, elem, ptrSize)} }
func NewMutRef(elem Type, ptrSize int) *MutRef     { return &MutRef{newWrapper(KindMutRef, elem, ptrSize)} }
func NewSlice(elem Type, ptrSize int) *Slice       { return &Slice{newWrapper(KindSlice, elem, ptrSize)} }
func NewMutSlice(elem Type, ptrSize int) *MutSlice { return &MutSlice{newWrapper(KindMutSlice, elem, ptrSize)} }
func NewOptional(elem Type, ptrSize int) *Optional { return &Optional{newWrapper(KindOptional, elem, ptrSize)} }

// Array is `[N]T`, a fixed-length inline array (spec.md §4.6 "Array
// type"): size/align are computed from the element type, not the pointer
// size.
type Array struct {
	base
	Elem   Type
	Length uint64
}

func (a *Array) String() string { return "[...]" + a.Elem.String() }

// ArrayExpr is a pre-check array-type expression carrying an unevaluated
// length expression (spec.md §4.6 "Array type": "check it under uint
// context and evaluate via the external comptime_eval_uint"). LengthExpr
// is `any` (rather than ast.Expr) purely to avoid internal/types importing
// internal/ast; the checker, which imports both, type-asserts it back.
type ArrayExpr struct {
	base
	Elem       Type
	LengthExpr any // nil means an unsized array type is invalid here
}

func NewArrayExpr(elem Type, lengthExpr any) *ArrayExpr {
	return &ArrayExpr{base: base{kind: KindArray}, Elem: elem, LengthExpr: lengthExpr}
}

func (a *ArrayExpr) String() string { return "[?]" + a.Elem.String() }

func NewArray(elem Type, length uint64) *Array {
	a := &Array{base: base{kind: KindArray}, Elem: elem, Length: length}
	a.align = elem.Align()
	if a.align < 1 {
		a.align = 1
	}
	a.size = alignUp(elem.Size()*int(length), a.align)
	return a
}
