// Package importresolve discovers a package's source files on disk so a
// driver can hand the checker core an explicit file list instead of a bare
// directory (spec.md §6 entry point takes `units[]`; on-disk import path
// resolution itself is out of the core's scope per spec.md §1).
//
// Grounded on the doublestar-based pattern matching in
// _examples/termfx-morfx/core/filewalker.go, simplified to a single
// synchronous glob since unit discovery for one package directory is not
// performance-sensitive the way morfx's whole-repo traversal is.
package importresolve

import (
	"os"
	"path/filepath"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
)

// DefaultPattern matches every Vela source file directly under a package
// directory, non-recursively — a package is one directory's worth of
// units, matching spec.md §5's "unit" granularity.
const DefaultPattern = "*.vl"

// Discover returns every file under dir matching pattern, sorted for
// deterministic checking order (spec.md §5 "Ordering guarantees" assumes a
// stable unit order; doublestar.Glob's own order is filesystem-dependent).
func Discover(dir, pattern string) ([]string, error) {
	if pattern == "" {
		pattern = DefaultPattern
	}
	fsys := os.DirFS(dir)
	matches, err := doublestar.Glob(fsys, pattern)
	if err != nil {
		return nil, err
	}
	out := make([]string, len(matches))
	for i, m := range matches {
		out[i] = filepath.Join(dir, m)
	}
	sort.Strings(out)
	return out, nil
}
