package check

import "github.com/velalang/velac/internal/types"

// drainPostAnalysis implements spec.md §4.8: draining visits each queued
// struct and re-examines it for properties that may only have been
// finalized after its initial check; the queue may grow while draining,
// so draining continues until every entry is marked done.
func (c *Checker) drainPostAnalysis() {
	for len(c.postQueue) > 0 {
		s := c.postQueue[0]
		c.postQueue = c.postQueue[1:]
		if c.postDone[s] {
			continue
		}
		c.postDone[s] = true
		c.reexamineOwnership(s)
	}
}

// reexamineOwnership recomputes s's subowners flag from its fields'
// current drop/subowners status and, if it changed, re-enqueues every
// struct that embeds s as a direct field (SPEC_FULL.md SUPPLEMENTED
// FEATURES: transitive ownership correction, grounded in
// original_source/'s multi-pass drop-propagation walk, which spec.md §4.8
// only describes at the single-struct level).
func (c *Checker) reexamineOwnership(s *types.Struct) {
	sub := false
	for _, f := range s.Fields {
		if types.HasDrop(f.Type) || types.SubOwners(f.Type) {
			sub = true
			break
		}
	}
	if sub == types.SubOwners(s) {
		return
	}
	s.SetSubOwners(sub)
	for _, dep := range c.dependents[s] {
		c.postDone[dep] = false
		c.postQueue = append(c.postQueue, dep)
	}
}
