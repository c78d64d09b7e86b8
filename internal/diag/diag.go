// Package diag implements the diagnostics model of spec.md §6/§7: a
// callback-based reporter distinguishing fatal compiler errors from user
// diagnostics (error/warn/help), each carrying an origin location.
package diag

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/velalang/velac/internal/ast"
)

// Kind is a diagnostic's severity.
type Kind uint8

const (
	KindError Kind = iota
	KindWarn
	KindHelp
)

func (k Kind) String() string {
	switch k {
	case KindError:
		return "error"
	case KindWarn:
		return "warning"
	case KindHelp:
		return "help"
	default:
		return "diag"
	}
}

// Diagnostic is one reported message, optionally followed by help/warning
// diagnostics that elaborate on it (spec.md §7).
type Diagnostic struct {
	Kind    Kind
	Origin  ast.Pos
	Message string
}

// Reporter is the single diagnostics callback of spec.md §6: "(compiler,
// origin, kind, message, ...)". BatchID is a correlation id generated once
// per Reporter (github.com/google/uuid), so a client driving many
// concurrent typecheck() calls (spec.md §5 "Multiple packages may be
// checked in parallel") can tell its Reporters apart without relying on
// goroutine-local state. The id is kept on the Reporter only; it is not
// copied into the Diagnostic values passed to emit.
type Reporter struct {
	BatchID string
	emit    func(Diagnostic)

	// ReportedError tracks spec.md §7's "reported_error" flag: it is set
	// once an error-kind diagnostic fires (warnings and help do not set it),
	// and some follow-on checks are then suppressed to avoid cascades.
	ReportedError bool
}

// NewReporter wraps emit (e.g. a function that prints to stderr or appends
// to a slice) with a fresh batch id.
func NewReporter(emit func(Diagnostic)) *Reporter {
	return &Reporter{BatchID: uuid.NewString(), emit: emit}
}

func (r *Reporter) report(kind Kind, pos ast.Pos, format string, args ...any) {
	if kind == KindError {
		r.ReportedError = true
	}
	r.emit(Diagnostic{Kind: kind, Origin: pos, Message: fmt.Sprintf(format, args...)})
}

// Error reports a user diagnostic error.
func (r *Reporter) Error(pos ast.Pos, format string, args ...any) { r.report(KindError, pos, format, args...) }

// Warn reports a warning.
func (r *Reporter) Warn(pos ast.Pos, format string, args ...any) { r.report(KindWarn, pos, format, args...) }

// Help reports a help/suggestion diagnostic, typically following an Error.
func (r *Reporter) Help(pos ast.Pos, format string, args ...any) { r.report(KindHelp, pos, format, args...) }
