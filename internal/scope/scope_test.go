package scope

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/velalang/velac/internal/symbol"
)

func TestStack_ShadowingAndLeave(t *testing.T) {
	syms := symbol.NewTable()
	s := New(syms)
	x := syms.Intern("x")

	s.Enter()
	s.Define(false, x, "outer")
	s.Enter()
	s.Define(false, x, "inner")

	node, fromPkg, found := s.Lookup(x)
	require.True(t, found)
	assert.False(t, fromPkg)
	assert.Equal(t, "inner", node)

	s.Leave()
	node, _, found = s.Lookup(x)
	require.True(t, found)
	assert.Equal(t, "outer", node)

	s.Leave()
	_, _, found = s.Lookup(x)
	assert.False(t, found)
}

func TestStack_PackageFallback(t *testing.T) {
	syms := symbol.NewTable()
	s := New(syms)
	y := syms.Intern("y")
	s.PackageLookup = func(name *symbol.Symbol) (any, bool) {
		if name == y {
			return "pkg-level", true
		}
		return nil, false
	}

	node, fromPkg, found := s.Lookup(y)
	require.True(t, found)
	assert.True(t, fromPkg)
	assert.Equal(t, "pkg-level", node)
}

func TestStack_DefineIgnoredNameIsNoop(t *testing.T) {
	syms := symbol.NewTable()
	s := New(syms)
	blank := syms.Intern("_")

	s.Enter()
	s.Define(false, blank, "whatever")
	_, _, found := s.Lookup(blank)
	assert.False(t, found)
}

func TestStack_LookupLocalDoesNotSeeOuterScope(t *testing.T) {
	syms := symbol.NewTable()
	s := New(syms)
	x := syms.Intern("x")

	s.Enter()
	s.Define(false, x, "outer")
	s.Enter()

	_, found := s.LookupLocal(x)
	assert.False(t, found)

	s.Define(false, x, "inner")
	node, found := s.LookupLocal(x)
	require.True(t, found)
	assert.Equal(t, "inner", node)
}

func TestStack_StashUnstash(t *testing.T) {
	syms := symbol.NewTable()
	s := New(syms)
	x := syms.Intern("x")

	s.Enter()
	s.Define(false, x, "local")

	snap := s.Stash()
	_, _, found := s.Lookup(x)
	assert.False(t, found)

	s.Unstash(snap)
	node, _, found := s.Lookup(x)
	require.True(t, found)
	assert.Equal(t, "local", node)
}
