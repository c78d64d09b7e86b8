// Package tctx implements the type-context ("expected type") stack of
// spec.md §4.2, the mechanism driving bidirectional inference: literal and
// call/construction rules consult the top of the stack to decide a
// concrete width or to check an argument against its parameter's type.
package tctx

import "github.com/velalang/velac/internal/types"

// Stack is a simple expected-type stack. Initial top is void, per
// spec.md §4.2.
type Stack struct {
	elems []types.Type
	void  types.Type
}

// New returns a stack whose initial (and floor) top is void.
func New(void types.Type) *Stack {
	return &Stack{void: void}
}

// Push installs t as the new expected type.
func (s *Stack) Push(t types.Type) { s.elems = append(s.elems, t) }

// Pop removes the top expected type.
func (s *Stack) Pop() {
	if len(s.elems) == 0 {
		return
	}
	s.elems = s.elems[:len(s.elems)-1]
}

// Top returns the current expected type, or void if the stack is empty.
func (s *Stack) Top() types.Type {
	if len(s.elems) == 0 {
		return s.void
	}
	return s.elems[len(s.elems)-1]
}

// WithTop pushes t, calls f, then pops unconditionally — the common
// "push/check/pop" pattern every call site in §4.6 follows.
func (s *Stack) WithTop(t types.Type, f func()) {
	s.Push(t)
	defer s.Pop()
	f()
}
