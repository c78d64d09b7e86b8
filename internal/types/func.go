package types

// FuncType is a function's signature as a type (spec.md §4.6 "Function
// type"), distinct from ast.Func which is the declaration/literal node.
type FuncType struct {
	base
	Params []Type
	Result Type
}

func (f *FuncType) String() string {
	s := "fun("
	for i, p := range f.Params {
		if i > 0 {
			s += ", "
		}
		s += p.String()
	}
	s += ")"
	if f.Result != nil && f.Result.Kind() != KindVoid {
		s += " " + f.Result.String()
	}
	return s
}

// NewFuncType builds a function type; ptrSize gives the ABI size of a
// code/function pointer (spec.md §4.6 "Function type": sized like a
// pointer).
func NewFuncType(ptrSize int, params []Type, result Type) *FuncType {
	return &FuncType{base: base{kind: KindFunc, size: ptrSize, align: ptrSize}, Params: params, Result: result}
}
