package types

import "fmt"

// Basic is a primitive type: void, bool, a fixed-width or native integer,
// f32/f64, or the internal "unknown" marker.
type Basic struct {
	base
	name string
}

func (b *Basic) String() string { return b.name }

func newBasic(kind Kind, size, align int, name string) *Basic {
	return &Basic{base: base{kind: kind, size: size, align: align}, name: name}
}

// Universe is the set of process-independent singleton primitive types,
// explicitly constructed by NewUniverse rather than held in package-level
// globals (spec.md §9 "Global compile-time state": "an explicitly
// initialized 'universe' table passed to the checker").
type Universe struct {
	Void    *Basic
	Bool    *Basic
	I8, I16, I32, I64 *Basic
	U8, U16, U32, U64 *Basic
	Int, Uint         *Basic // native widths, sized per Config.IntSize
	F32, F64          *Basic
	Unknown           *Basic
}

// NewUniverse builds the universe table for a compilation, sizing the
// native int/uint types from intSize (bytes), per spec.md §6
// "target.intsize".
func NewUniverse(intSize int) *Universe {
	return &Universe{
		Void:    newBasic(KindVoid, 0, 1, "void"),
		Bool:    newBasic(KindBool, 1, 1, "bool"),
		I8:      newBasic(KindInt8, 1, 1, "i8"),
		I16:     newBasic(KindInt16, 2, 2, "i16"),
		I32:     newBasic(KindInt32, 4, 4, "i32"),
		I64:     newBasic(KindInt64, 8, 8, "i64"),
		U8:      newBasic(KindUint8, 1, 1, "u8"),
		U16:     newBasic(KindUint16, 2, 2, "u16"),
		U32:     newBasic(KindUint32, 4, 4, "u32"),
		U64:     newBasic(KindUint64, 8, 8, "u64"),
		Int:     newBasic(KindInt, intSize, intSize, "int"),
		Uint:    newBasic(KindUint, intSize, intSize, "uint"),
		F32:     newBasic(KindF32, 4, 4, "f32"),
		F64:     newBasic(KindF64, 8, 8, "f64"),
		Unknown: newBasic(KindUnknown, 0, 1, "unknown"),
	}
}

// IntRange returns the inclusive overflow range for a fixed-width or
// native integer kind, per spec.md §6's literal-overflow table. negative
// adjusts the signed lower bound's magnitude upward by one, matching the
// table's "negation adjusts the signed upper bound by +1" rule applied to
// a literal being negated.
func IntRange(u *Universe, t *Basic, negative bool) (lo, hi uint64) {
	if !t.Kind().IsInteger() {
		panic(fmt.Sprintf("IntRange: %s is not an integer type", t))
	}
	if t.Kind().IsUnsignedInteger() {
		switch t.Size() {
		case 1:
			return 0, 0xff
		case 2:
			return 0, 0xffff
		case 4:
			return 0, 0xffffffff
		default:
			return 0, 0xffffffffffffffff
		}
	}
	switch t.Size() {
	case 1:
		if negative {
			return 0, 0x80
		}
		return 0, 0x7f
	case 2:
		if negative {
			return 0, 0x8000
		}
		return 0, 0x7fff
	case 4:
		if negative {
			return 0, 0x80000000
		}
		return 0, 0x7fffffff
	default:
		if negative {
			return 0, 0x8000000000000000
		}
		return 0, 0x7fffffffffffffff
	}
}
