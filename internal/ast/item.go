package ast

import "github.com/astralarya/kismet/pkg/span"

// ListItem is one element of a Tuple, ListDisplay, or call/subscript
// argument list: a plain expression or a spread of a collection.
type ListItem interface {
	listItemNode()
	String() string
}

type ItemExpr struct{ Value Expr }

func (ItemExpr) listItemNode()    {}
func (i ItemExpr) String() string { return i.Value.String() }

type ItemSpread struct{ Value span.Node[Expr] }

func (ItemSpread) listItemNode()    {}
func (i ItemSpread) String() string { return "..." + i.Value.Value.String() }

// DictItem is one element of a DictDisplay.
type DictItem interface {
	dictItemNode()
	String() string
}

type DictKeyVal struct {
	Key span.Node[string]
	Val span.Node[Expr]
}

func (DictKeyVal) dictItemNode()    {}
func (d DictKeyVal) String() string { return d.Key.Value + ": " + d.Val.Value.String() }

type DictDynKeyVal struct {
	Key span.Node[Expr]
	Val span.Node[Expr]
}

func (DictDynKeyVal) dictItemNode() {}
func (d DictDynKeyVal) String() string {
	return "[" + d.Key.Value.String() + "]: " + d.Val.Value.String()
}

type DictShorthand struct{ Name string }

func (DictShorthand) dictItemNode()    {}
func (d DictShorthand) String() string { return d.Name }

type DictSpread struct{ Value span.Node[Expr] }

func (DictSpread) dictItemNode()    {}
func (d DictSpread) String() string { return "..." + d.Value.Value.String() }

// DictItemComp is the restricted item shape legal inside a dict
// comprehension: only a dynamic key/value pair or a spread, since a
// comprehension has no fixed set of static keys.
type DictItemComp interface {
	dictItemCompNode()
	String() string
}

type DictCompDynKeyVal struct {
	Key span.Node[Expr]
	Val span.Node[Expr]
}

func (DictCompDynKeyVal) dictItemCompNode() {}
func (d DictCompDynKeyVal) String() string {
	return "[" + d.Key.Value.String() + "]: " + d.Val.Value.String()
}

type DictCompSpread struct{ Value span.Node[Expr] }

func (DictCompSpread) dictItemCompNode()    {}
func (d DictCompSpread) String() string { return "..." + d.Value.Value.String() }

// CompIter is one clause of a comprehension's iteration chain: a `for`
// binder or a filtering `if`.
type CompIter interface {
	compIterNode()
	String() string
}

type CompIterFor struct {
	Target span.Node[Target]
	Value  span.Node[Expr]
}

func (CompIterFor) compIterNode() {}
func (c CompIterFor) String() string {
	return "for " + c.Target.Value.String() + " in " + c.Value.Value.String()
}

type CompIterIf struct{ Cond span.Node[Expr] }

func (CompIterIf) compIterNode()    {}
func (c CompIterIf) String() string { return "if " + c.Cond.Value.String() }

func joinListItems(items []span.Node[ListItem], sep string) string {
	return joinString(mapString(items, func(n span.Node[ListItem]) string { return n.Value.String() }), sep)
}

func joinDictItems(items []span.Node[DictItem], sep string) string {
	return joinString(mapString(items, func(n span.Node[DictItem]) string { return n.Value.String() }), sep)
}

func joinCompIter(items []span.Node[CompIter], sep string) string {
	return joinString(mapString(items, func(n span.Node[CompIter]) string { return n.Value.String() }), sep)
}

func joinExprs(items []span.Node[Expr], sep string) string {
	return joinString(mapString(items, func(n span.Node[Expr]) string { return n.Value.String() }), sep)
}
