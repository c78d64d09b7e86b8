// Package config implements the Compiler context consumed by the checker
// core (spec.md §6 "Compiler context"): the handful of external
// collaborators and configuration knobs the core reads but does not own.
package config

import (
	"github.com/velalang/velac/internal/symbol"
	"github.com/velalang/velac/internal/types"
)

// TypeFunLookup looks up a type-function (a method declared on a user
// type) by receiver type and name, spec.md §6 "typefuntab_lookup". It
// returns nil if there is no such function.
type TypeFunLookup func(recv types.Type, name *symbol.Symbol) any

// ComptimeEvalUint evaluates expr as a compile-time unsigned integer
// constant, spec.md §6 "comptime-eval-uint(expr, flags) -> (ok, value)".
// The core delegates to this rather than implementing general compile-time
// evaluation itself (spec.md §1 Non-goals).
type ComptimeEvalUint func(expr any, flags uint32) (ok bool, value uint64)

// CheckTypeDep detects alias-dependency cycles, spec.md §6
// "check_typedep(compiler, node) -> ok": returns false when adding node to
// the dependency graph would close a cycle.
type CheckTypeDep func(node any) (ok bool)

// Config is the compiler context passed into typecheck(), spec.md §6.
type Config struct {
	// IntSize/PtrSize are the native int width and pointer width, in
	// bytes (spec.md §6 "target.intsize", "target.ptrsize").
	IntSize int
	PtrSize int

	// Universe holds the concrete int/uint widths and other singleton
	// primitive types, sized from IntSize (spec.md §6 "int-type,
	// uint-type").
	Universe *types.Universe

	// StrAlias is the canonical alias type used for untargeted string
	// literals (spec.md §6 "str-alias-type", §4.6 "String literal").
	StrAlias *types.Alias

	// APINamespaces maps an import path to the imported package's API
	// namespace (spec.md §6 "pkg.api_ns[path] -> namespace").
	APINamespaces map[string]*types.Namespace

	TypeFunLookup   TypeFunLookup
	ComptimeEvalUint ComptimeEvalUint
	CheckTypeDep    CheckTypeDep

	// Debug enables the teacher-style conditional tracing described in
	// SPEC_FULL.md's AMBIENT STACK section (internal/check/trace.go).
	Debug bool
}

// New builds a Config with the given IntSize/PtrSize and a freshly
// constructed Universe/StrAlias.
// Callers override fields as needed before passing Config to typecheck().
func New(intSize, ptrSize int) *Config {
	u := types.NewUniverse(intSize)
	str := types.NewAlias("str")
	str.SetReferent(types.NewSlice(u.U8, ptrSize))
	return &Config{
		IntSize:       intSize,
		PtrSize:       ptrSize,
		Universe:      u,
		StrAlias:      str,
		APINamespaces: make(map[string]*types.Namespace),
	}
}
