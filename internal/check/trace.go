package check

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/velalang/velac/internal/ast"
)

// dlog is the teacher-style conditional trace point (see
// _examples/pannous-goo's check.go `debug`/`tracePos` consts and
// infer.go's `traceInference`, and the original_source narrower's
// `dlog("type_narrow ...")` call sites). Unlike the original, which
// leaves its narrowing trace calls active even outside trace mode (an Open
// Question flagged in spec.md §9), dlog and dlogPos no-op unless
// Conf.Debug is set, and the narrower here does not call them. Output is
// funneled through one slog.Logger rather than bare fmt.Fprintf(os.Stderr).
var traceLogger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))

func (c *Checker) dlog(format string, args ...any) {
	if !c.Conf.Debug {
		return
	}
	traceLogger.Debug(sprintfLazy(format, args...))
}

func (c *Checker) dlogPos(pos ast.Pos, format string, args ...any) {
	if !c.Conf.Debug {
		return
	}
	traceLogger.Debug(sprintfLazy(format, args...), "line", pos.Line(), "col", pos.Col())
}

func sprintfLazy(format string, args ...any) string {
	if len(args) == 0 {
		return format
	}
	return fmt.Sprintf(format, args...)
}
