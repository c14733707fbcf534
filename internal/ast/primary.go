package ast

import "github.com/astralarya/kismet/pkg/span"

// Primary is an Atom optionally followed by a chain of attribute,
// subscript, or call accessors: `atom ('.'ID | '['exprs']' | '('args')')*`.
type Primary interface {
	primaryNode()
	String() string
}

type PrimaryAtom struct{ Atom Atom }

func (PrimaryAtom) primaryNode()      {}
func (p PrimaryAtom) String() string { return p.Atom.String() }

type Attribute struct {
	Base span.Node[Primary]
	Name span.Node[string]
}

func (Attribute) primaryNode() {}
func (a Attribute) String() string {
	return a.Base.Value.String() + "." + a.Name.Value
}

type Subscription struct {
	Base  span.Node[Primary]
	Index []span.Node[Expr]
}

func (Subscription) primaryNode() {}
func (s Subscription) String() string {
	return s.Base.Value.String() + "[" + joinExprs(s.Index, ", ") + "]"
}

type Call struct {
	Base span.Node[Primary]
	Args Args
}

func (Call) primaryNode() {}
func (c Call) String() string {
	return c.Base.Value.String() + "(" + c.Args.String() + ")"
}

// Arg is one call argument: positional (Name == "") or keyword.
type Arg struct {
	Name  string
	Value span.Node[Expr]
}

func (a Arg) String() string {
	if a.Name == "" {
		return a.Value.Value.String()
	}
	return a.Name + "=" + a.Value.Value.String()
}

// Args holds a call's fully parsed argument list: positional arguments
// always precede keyword arguments, and duplicate keyword names resolve
// last-wins (enforced by the parser, not here).
type Args struct{ Items []Arg }

func (a Args) String() string {
	return joinString(mapString(a.Items, func(x Arg) string { return x.String() }), ", ")
}
