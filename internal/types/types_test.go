package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInterner_DedupesStructurallyEqualPointers(t *testing.T) {
	u := NewUniverse(8)
	in := NewInterner()

	var p1 Type = NewPointer(u.Int, 8)
	added := in.Intern(&p1)
	assert.True(t, added)

	var p2 Type = NewPointer(u.Int, 8)
	added = in.Intern(&p2)
	assert.False(t, added)
	assert.Same(t, p1, p2)
}

func TestInterner_DistinctElementsStayDistinct(t *testing.T) {
	u := NewUniverse(8)
	in := NewInterner()

	var p1 Type = NewPointer(u.Int, 8)
	in.Intern(&p1)

	var p2 Type = NewPointer(u.I8, 8)
	added := in.Intern(&p2)
	assert.True(t, added)
	assert.NotSame(t, p1, p2)
}

func TestInterner_SkipsMutRef(t *testing.T) {
	u := NewUniverse(8)
	in := NewInterner()

	var m1 Type = NewMutRef(u.Int, 8)
	added := in.Intern(&m1)
	assert.True(t, added)

	var m2 Type = NewMutRef(u.Int, 8)
	added = in.Intern(&m2)
	assert.True(t, added, "mut-ref is deliberately excluded from IsUserType, so every Intern call reports added")
	assert.NotSame(t, m1, m2)
}

func TestStruct_LayoutAlignsAndPacksFields(t *testing.T) {
	u := NewUniverse(8)
	s := NewStruct("S")
	s.Fields = []*Field{
		{Name: "a", Type: u.I8},
		{Name: "b", Type: u.I64},
		{Name: "c", Type: u.I8},
	}
	s.Layout()

	assert.Equal(t, 0, s.Fields[0].Offset)
	assert.Equal(t, 8, s.Fields[1].Offset)
	assert.Equal(t, 16, s.Fields[2].Offset)
	assert.Equal(t, 8, s.Align())
	assert.Equal(t, 24, s.Size())
}

func TestIntRange_SignedAndUnsignedBounds(t *testing.T) {
	u := NewUniverse(8)

	_, hi := IntRange(u, u.I8, false)
	assert.Equal(t, uint64(127), hi)

	_, hi = IntRange(u, u.I8, true)
	assert.Equal(t, uint64(128), hi)

	_, hi = IntRange(u, u.U8, false)
	assert.Equal(t, uint64(255), hi)
}

func TestTemplateUse_InstanceKeyStableForEqualArgs(t *testing.T) {
	u := NewUniverse(8)
	tmpl := NewStruct("Box")
	ph := NewPlaceholder("T", nil)
	tmpl.Placeholders = []*Placeholder{ph}

	k1 := InstanceKey(tmpl, []Type{u.Int})
	k2 := InstanceKey(tmpl, []Type{u.Int})
	assert.Equal(t, k1, k2)

	k3 := InstanceKey(tmpl, []Type{u.I8})
	assert.NotEqual(t, k1, k3)
}

func TestStruct_RequiredArityCountsDefaults(t *testing.T) {
	s := NewStruct("Pair")
	s.Placeholders = []*Placeholder{
		NewPlaceholder("A", nil),
		NewPlaceholder("B", NewBasicForTest()),
	}
	required, total := s.RequiredArity()
	require.Equal(t, 1, required)
	require.Equal(t, 2, total)
}

// NewBasicForTest exposes a throwaway Basic for placeholder-default tests
// without reaching into a Universe.
func NewBasicForTest() *Basic {
	return newBasic(KindVoid, 0, 1, "void")
}
