package types

// Namespace represents a package's API surface: the set of bindings
// importable from other packages (spec.md §3 "namespace" type kind,
// §4.10 import processing).
type Namespace struct {
	base
	Path    string
	Members map[string]Object
}

// Object is the narrow interface a namespace member satisfies; concrete
// bindings live in internal/ast (Binding, Func), and the checker stores
// each one here inside its own small wrapper that carries the member's
// name and node, which keeps internal/types free of a dependency on
// internal/ast. Consumers type-assert back to the wrapper and unwrap the
// node, matching how the teacher's Scope stores `Object` and callers
// assert to *Var/*Func/*TypeName as needed.
type Object interface {
	Name() string
}

func NewNamespace(path string) *Namespace {
	return &Namespace{base: base{kind: KindNamespace, align: 1}, Path: path, Members: make(map[string]Object)}
}

func (n *Namespace) String() string { return "namespace " + n.Path }

// Unresolved is a forward named reference to a type that hasn't been
// looked up yet, e.g. `name` appearing before its declaration is visible
// (spec.md §3 "unresolved (forward named reference)", §4.6 "Unresolved
// type").
type Unresolved struct {
	base
	Name     string
	Resolved Type // non-nil once resolved; back-edge, non-owning
}

func NewUnresolved(name string) *Unresolved {
	return &Unresolved{base: base{kind: KindUnresolved}, Name: name}
}

func (u *Unresolved) String() string {
	if u.Resolved != nil {
		return u.Resolved.String()
	}
	return u.Name
}
