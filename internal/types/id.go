package types

import (
	"fmt"
	"strconv"
	"strings"
)

// idCache is implemented by every concrete user type so Interner can get
// and set the cached structural id (spec.md §3 "Type id (structural)":
// "cached on the type node and must be invalidated when a template
// expansion rewrites children").
type idCache interface {
	cachedID() (string, bool)
	setCachedID(string)
	invalidate()
}

func (b *base) cachedID() (string, bool) { return b.id, b.idValid }
func (b *base) setCachedID(id string)    { b.id, b.idValid = id, true }
func (b *base) invalidate()              { b.invalidateID() }

// TypeID computes (or returns the cached) structural id for t. Only the
// user-type kinds listed in spec.md §4.3 are interned; everything else
// (basics, placeholders, unresolved, namespaces) gets a stable id derived
// from its Kind/name for use as a map key but is never itself interned.
func TypeID(t Type) string {
	if ic, ok := t.(idCache); ok {
		if id, valid := ic.cachedID(); valid {
			return id
		}
	}
	id := computeID(t)
	if ic, ok := t.(idCache); ok {
		ic.setCachedID(id)
	}
	return id
}

func computeID(t Type) string {
	var b strings.Builder
	writeID(&b, t)
	return b.String()
}

func writeID(b *strings.Builder, t Type) {
	if t == nil {
		b.WriteString("<nil>")
		return
	}
	b.WriteByte(byte(t.Kind()))
	switch v := t.(type) {
	case *Basic:
		b.WriteString(v.name)
	case *Struct:
		if v.Kind() == KindTemplateInstance {
			writeID(b, v.Origin)
			b.WriteByte('<')
			for _, a := range v.Args {
				writeID(b, a)
				b.WriteByte(',')
			}
			b.WriteByte('>')
			return
		}
		b.WriteString(v.Name)
		b.WriteByte('{')
		for _, f := range v.Fields {
			b.WriteString(f.Name)
			b.WriteByte(':')
			writeID(b, f.Type)
			b.WriteByte(';')
		}
		b.WriteByte('}')
	case *Alias:
		b.WriteString(v.Name)
		b.WriteByte('=')
		writeID(b, v.Referent)
	case *FuncType:
		b.WriteByte('(')
		for _, p := range v.Params {
			writeID(b, p)
			b.WriteByte(',')
		}
		b.WriteByte(')')
		writeID(b, v.Result)
	case *Pointer:
		writeID(b, v.Elem)
	case *Ref:
		writeID(b, v.Elem)
	case *MutRef:
		writeID(b, v.Elem)
	case *Slice:
		writeID(b, v.Elem)
	case *MutSlice:
		writeID(b, v.Elem)
	case *Optional:
		writeID(b, v.Elem)
	case *Array:
		b.WriteString(strconv.FormatUint(v.Length, 10))
		b.WriteByte(':')
		writeID(b, v.Elem)
	case *Placeholder:
		b.WriteString(v.Name)
	case *Unresolved:
		b.WriteString(v.Name)
	case *Namespace:
		b.WriteString(v.Path)
	default:
		b.WriteString(fmt.Sprintf("%p", t))
	}
}

// InstanceKey builds the memoization key for a template-use, spec.md §4.4
// step 4: "(template-pointer, concatenation of arg type-ids)". Using the
// template's pointer identity (not its structural id) matches the spec
// text precisely and sidesteps recomputing the template's own id on every
// instantiation attempt.
func InstanceKey(template *Struct, args []Type) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%p|", template)
	for _, a := range args {
		b.WriteString(TypeID(a))
		b.WriteByte(',')
	}
	return b.String()
}
