package types

// Kind is the closed enumeration of type node kinds (spec.md §3).
type Kind uint8

const (
	KindInvalid Kind = iota
	KindVoid
	KindBool
	KindInt8
	KindInt16
	KindInt32
	KindInt64
	KindUint8
	KindUint16
	KindUint32
	KindUint64
	KindInt  // native int, width from Config.IntSize
	KindUint // native uint, width from Config.IntSize
	KindF32
	KindF64
	KindUnknown

	// user types
	KindStruct
	KindAlias
	KindFunc
	KindPointer
	KindRef
	KindMutRef
	KindSlice
	KindMutSlice
	KindOptional
	KindArray
	KindNamespace
	KindPlaceholder
	KindTemplateInstance
	KindTemplateUse
	KindUnresolved
)

func (k Kind) String() string {
	names := [...]string{
		"invalid", "void", "bool",
		"i8", "i16", "i32", "i64", "u8", "u16", "u32", "u64", "int", "uint",
		"f32", "f64", "unknown",
		"struct", "alias", "func", "ptr", "ref", "mut&", "slice", "mut-slice",
		"optional", "array", "namespace", "placeholder", "template-instance",
		"template-use", "unresolved",
	}
	if int(k) < len(names) {
		return names[k]
	}
	return "bad-kind"
}

// IsInteger reports whether k is one of the signed/unsigned fixed-width or
// native integer kinds.
func (k Kind) IsInteger() bool {
	switch k {
	case KindInt8, KindInt16, KindInt32, KindInt64,
		KindUint8, KindUint16, KindUint32, KindUint64, KindInt, KindUint:
		return true
	}
	return false
}

// IsUnsignedInteger reports whether k is an unsigned integer kind.
func (k Kind) IsUnsignedInteger() bool {
	switch k {
	case KindUint8, KindUint16, KindUint32, KindUint64, KindUint:
		return true
	}
	return false
}

// IsFloat reports whether k is f32 or f64.
func (k Kind) IsFloat() bool { return k == KindF32 || k == KindF64 }

// IsUserType reports whether k belongs to the interned "user type" family
// (spec.md §4.3): these are the kinds the interner deduplicates. Per the
// spec's enumeration ("struct, array, function, ptr, ref, slice, optional,
// and template-instance") mut-ref and mut-slice are deliberately excluded
// — see DESIGN.md for why that asymmetry is preserved rather than
// "corrected".
func (k Kind) IsUserType() bool {
	switch k {
	case KindStruct, KindFunc, KindPointer, KindRef, KindSlice,
		KindOptional, KindArray, KindTemplateInstance:
		return true
	}
	return false
}
