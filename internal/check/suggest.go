package check

import (
	"sort"

	"github.com/velalang/velac/internal/ast"
)

// suggest implements spec.md §4.9's did-you-mean diagnostic: a "likely
// wanted" candidate recorded during import processing is preferred, and
// if none was recorded the closest in-scope name within edit distance 2
// is offered instead (spec.md §4.9(b)).
func (c *Checker) suggest(name string, pos ast.Pos) {
	sym := c.Syms.Intern(name)
	if entries, ok := c.likely[sym]; ok && len(entries) > 0 {
		for _, e := range entries {
			c.Diag.Help(e.origin, "did you mean %q? a member with this name exists in another package", e.name)
		}
		return
	}

	type candidate struct {
		name string
		dist int
	}
	var best []candidate
	for _, s := range c.Scope.Names() {
		n := s.String()
		d := levenshtein(name, n)
		if d <= 2 {
			best = append(best, candidate{n, d})
		}
	}
	if len(best) == 0 {
		return
	}
	sort.Slice(best, func(i, j int) bool {
		if best[i].dist != best[j].dist {
			return best[i].dist < best[j].dist
		}
		return best[i].name < best[j].name
	})
	c.Diag.Help(pos, "did you mean %q?", best[0].name)
}

// levenshtein computes the edit distance between a and b using a
// two-row dynamic-programming table.
func levenshtein(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	prev := make([]int, len(rb)+1)
	cur := make([]int, len(rb)+1)
	for j := range prev {
		prev[j] = j
	}
	for i := 1; i <= len(ra); i++ {
		cur[0] = i
		for j := 1; j <= len(rb); j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			del := prev[j] + 1
			ins := cur[j-1] + 1
			sub := prev[j-1] + cost
			m := del
			if ins < m {
				m = ins
			}
			if sub < m {
				m = sub
			}
			cur[j] = m
		}
		prev, cur = cur, prev
	}
	return prev[len(rb)]
}
