// Package check implements the semantic analysis pass: late name
// resolution, bidirectional type inference and checking, control-flow
// optional narrowing, template instantiation with memoization, struct
// layout, and structural type interning (spec.md §1-§4).
//
// The shape is modeled directly on the teacher's Checker
// (cmd/compile/internal/types2.Checker in _examples/pannous-goo): a single
// struct holding the package-lifetime maps (objMap/impMap-equivalents),
// the per-file/per-unit state, a delayed-action queue drained after the
// main pass, and an embedded "environment" of values valid only while
// checking one declaration (decl/scope/sig, mirroring types2's
// `environment` struct in check.go).
package check

import (
	"github.com/velalang/velac/internal/ast"
	"github.com/velalang/velac/internal/config"
	"github.com/velalang/velac/internal/diag"
	"github.com/velalang/velac/internal/scope"
	"github.com/velalang/velac/internal/symbol"
	"github.com/velalang/velac/internal/tctx"
	"github.com/velalang/velac/internal/types"
)

// environment holds state valid only while checking a specific
// declaration, pushed/popped around function bodies (spec.md §4.6
// "Function"), mirroring the teacher's `environment` struct.
type environment struct {
	funcResult   types.Type // enclosing function's result type; nil outside any function
	templateNest int        // >0 while inside an enclosing template definition (spec.md §4.4 step 3)
	inDrop       bool
	thisType     types.Type // the enclosing type-function's receiver type, post-ABI-wrap
}

// Checker maintains the state of the semantic analysis pass for one
// package. It must be created with New.
type Checker struct {
	Conf  *config.Config
	Syms  *symbol.Table
	Files *ast.FileTable
	Diag  *diag.Reporter

	Scope    *scope.Stack
	TCtx     *tctx.Stack
	Interner *types.Interner

	// Pkg is the namespace being built for this package's own API surface,
	// populated as declarations are checked (consumed by other packages'
	// imports, spec.md §4.10).
	Pkg *types.Namespace

	// instances memoizes template instantiation by (template pointer, arg
	// type-id tuple) -> instance, spec.md §4.4 step 4/7. Registered
	// *before* the instance body is checked so self-referential template
	// instances terminate (step 7).
	instances map[string]*types.Struct

	// likely is the "likely wanted" provenance table populated during
	// import processing and consulted first by the did-you-mean suggester
	// (spec.md §4.9(a); see SPEC_FULL.md SUPPLEMENTED FEATURES).
	likely map[*symbol.Symbol][]likelyEntry

	// postQueue is the post-analysis worklist (spec.md §4.8): struct types
	// enqueued at the end of their check, drained after the main pass.
	postQueue []*types.Struct
	postDone  map[*types.Struct]bool

	// dependents maps a struct type to every struct that embeds it as a
	// direct field, so a late change to its subowners/drop status (spec.md
	// §4.8's "ownership propagation from fields whose drop was defined in a
	// later declaration") can re-enqueue the right containers.
	dependents map[*types.Struct][]*types.Struct

	// delayed holds actions pushed by later(), processed FIFO after the
	// unit currently being checked, mirroring the teacher's
	// Checker.delayed/later (check.go).
	delayed []func()

	// typeFuncChecked is allocated by New; no rule in this package reads or
	// writes it.
	typeFuncChecked map[any]bool

	environment
}

type likelyEntry struct {
	name   string
	origin ast.Pos
}

// New returns a Checker ready to check one package's units.
func New(conf *config.Config, syms *symbol.Table, files *ast.FileTable, reporter *diag.Reporter) *Checker {
	c := &Checker{
		Conf:            conf,
		Syms:            syms,
		Files:           files,
		Diag:            reporter,
		Scope:           scope.New(syms),
		TCtx:            tctx.New(conf.Universe.Void),
		Interner:        types.NewInterner(),
		Pkg:             types.NewNamespace(""),
		instances:       make(map[string]*types.Struct),
		likely:          make(map[*symbol.Symbol][]likelyEntry),
		postDone:        make(map[*types.Struct]bool),
		dependents:      make(map[*types.Struct][]*types.Struct),
		typeFuncChecked: make(map[any]bool),
	}
	return c
}

// later pushes f onto the delayed-action queue; Run drains it after the
// unit currently being checked finishes, before the next unit starts
// (spec.md §5 "top-level hoist").
func (c *Checker) later(f func()) {
	c.delayed = append(c.delayed, f)
}

// drainDelayed runs every delayed action queued so far, including ones
// pushed by earlier delayed actions, FIFO.
func (c *Checker) drainDelayed() {
	for len(c.delayed) > 0 {
		f := c.delayed[0]
		c.delayed = c.delayed[1:]
		f()
	}
}

// enqueuePostAnalysis adds s to the post-analysis worklist (spec.md §4.8).
func (c *Checker) enqueuePostAnalysis(s *types.Struct) {
	if c.postDone[s] {
		return
	}
	c.postQueue = append(c.postQueue, s)
}

// recordLikely records name as a "likely wanted" candidate discovered
// while processing an import (spec.md §4.9(a)).
func (c *Checker) recordLikely(unresolved *symbol.Symbol, candidateName string, origin ast.Pos) {
	c.likely[unresolved] = append(c.likely[unresolved], likelyEntry{name: candidateName, origin: origin})
}
