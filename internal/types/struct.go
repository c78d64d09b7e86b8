package types

import "strings"

// Field is one member of a Struct.
type Field struct {
	Name   string
	Type   Type
	Offset int
}

// Placeholder is a template type-parameter occurrence, valid only inside a
// template body (spec.md §4.6 "Placeholder type").
type Placeholder struct {
	base
	Name    string
	Default Type // nil if the parameter has no default
}

func (p *Placeholder) String() string { return p.Name }

func NewPlaceholder(name string, def Type) *Placeholder {
	return &Placeholder{base: base{kind: KindPlaceholder, size: 0, align: 1}, Name: name, Default: def}
}

// Struct is a user-defined struct type, and also — once instantiated — a
// template instance: for spec.md §4.4 step 7 the checker builds the
// instance as a new Struct and flips that instance's Kind from KindStruct
// to KindTemplateInstance rather than use a distinct representation, since
// a template-instance's shape (named fields with offsets) is identical to
// an ordinary struct's. The template declaration keeps KindStruct.
type Struct struct {
	base
	Name      string
	Fields    []*Field
	Namespace *Namespace

	// template declaration, non-nil only when this Struct is itself a
	// template (IsTemplate tests exactly this).
	Placeholders []*Placeholder

	// instantiation bookkeeping, non-nil only when Kind() == KindTemplateInstance.
	Origin *Struct // the template this was instantiated from
	Args   []Type  // the arguments used, one per Origin.Placeholders entry
}

func NewStruct(name string) *Struct {
	return &Struct{base: base{kind: KindStruct, align: 1}, Name: name}
}

func (s *Struct) String() string {
	if s.Kind() == KindTemplateInstance && s.Origin != nil {
		var b strings.Builder
		b.WriteString(s.Origin.Name)
		b.WriteByte('<')
		for i, a := range s.Args {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteString(a.String())
		}
		b.WriteByte('>')
		return b.String()
	}
	return s.Name
}

// IsTemplate reports whether s is a template declaration (has placeholder
// parameters, spec.md §4.4).
func (s *Struct) IsTemplate() bool { return len(s.Placeholders) > 0 }

// RequiredArity returns (required, total) per spec.md §4.4 step 1: required
// is the count of placeholders without a default.
func (s *Struct) RequiredArity() (required, total int) {
	total = len(s.Placeholders)
	for _, p := range s.Placeholders {
		if p.Default == nil {
			required++
		}
	}
	return
}

// SetKind overrides the struct's reported Kind, used to mark a freshly
// built instance struct as a template-instance (spec.md §4.4 step 7).
func (s *Struct) SetKind(k Kind) { s.kind = k }

func (s *Struct) subOwnersFlag() bool { return s.subowners }
func (s *Struct) dropFlag() bool      { return s.drop }

// SetSubOwners/SetDrop are used by the checker's struct-layout rule and the
// post-analysis queue (spec.md §4.6 "Struct type", §4.8).
func (s *Struct) SetSubOwners(v bool) { s.subowners = v }
func (s *Struct) SetDrop(v bool)      { s.drop = v }

// Layout computes field offsets/struct size/alignment in declaration
// order (spec.md §4.6 "Struct type", §8 invariant 7): each field's offset
// is aligned to the field's own alignment, the struct's alignment is the
// max field alignment, and the struct's size is the aligned running total.
func (s *Struct) Layout() {
	offset := 0
	align := 1
	for _, f := range s.Fields {
		fa := f.Type.Align()
		if fa < 1 {
			fa = 1
		}
		offset = alignUp(offset, fa)
		f.Offset = offset
		offset += f.Type.Size()
		if fa > align {
			align = fa
		}
	}
	s.align = align
	s.size = alignUp(offset, align)
}

func alignUp(n, align int) int {
	if align <= 1 {
		return n
	}
	return (n + align - 1) &^ (align - 1)
}

// TemplateUse is an unresolved `Foo<A, B>` reference, spec.md §4.4: before
// checking, and while checking deferred because template-nest > 0 (step
// 3), a template-use stays as this node rather than being expanded.
type TemplateUse struct {
	base
	Template *Struct
	Args     []Type
}

func NewTemplateUse(template *Struct, args []Type) *TemplateUse {
	return &TemplateUse{base: base{kind: KindTemplateUse}, Template: template, Args: args}
}

func (t *TemplateUse) String() string {
	s := t.Template.Name + "<"
	for i, a := range t.Args {
		if i > 0 {
			s += ", "
		}
		s += a.String()
	}
	return s + ">"
}

// FieldByName returns the field named name, or nil.
func (s *Struct) FieldByName(name string) *Field {
	for _, f := range s.Fields {
		if f.Name == name {
			return f
		}
	}
	return nil
}
