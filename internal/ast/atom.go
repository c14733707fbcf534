package ast

import (
	"fmt"
	"strconv"

	"github.com/astralarya/kismet/pkg/span"
)

// Atom is the smallest self-delimiting syntactic unit: an identifier, a
// literal, a bracketed form, or a brace-delimited block.
type Atom interface {
	atomNode()
	String() string
}

type Ident struct{ Name string }

func (Ident) atomNode()      {}
func (i Ident) String() string { return i.Name }

type IntegerLit struct{ Value int32 }

func (IntegerLit) atomNode()      {}
func (n IntegerLit) String() string { return strconv.FormatInt(int64(n.Value), 10) }

type FloatLit struct{ Value float32 }

func (FloatLit) atomNode()      {}
func (n FloatLit) String() string { return formatFloat(n.Value) }

type StringLit struct{ Value string }

func (StringLit) atomNode()      {}
func (s StringLit) String() string { return strconv.Quote(s.Value) }

type Paren struct{ Inner span.Node[Expr] }

func (Paren) atomNode()      {}
func (p Paren) String() string { return "(" + p.Inner.Value.String() + ")" }

type Tuple struct{ Items []span.Node[ListItem] }

func (Tuple) atomNode() {}
func (t Tuple) String() string {
	if len(t.Items) == 1 {
		return fmt.Sprintf("(%s,)", t.Items[0].Value.String())
	}
	return "(" + joinListItems(t.Items, ", ") + ")"
}

type ListDisplay struct{ Items []span.Node[ListItem] }

func (ListDisplay) atomNode() {}
func (l ListDisplay) String() string {
	return "[" + joinListItems(l.Items, ", ") + "]"
}

type DictDisplay struct{ Items []span.Node[DictItem] }

func (DictDisplay) atomNode() {}
func (d DictDisplay) String() string {
	return "{" + joinDictItems(d.Items, ", ") + "}"
}

type Generator struct {
	Val  span.Node[ListItem]
	Iter []span.Node[CompIter]
}

func (Generator) atomNode() {}
func (g Generator) String() string {
	return "(" + g.Val.Value.String() + " " + joinCompIter(g.Iter, " ") + ")"
}

type ListComprehension struct {
	Val  span.Node[ListItem]
	Iter []span.Node[CompIter]
}

func (ListComprehension) atomNode() {}
func (l ListComprehension) String() string {
	return "[" + l.Val.Value.String() + " " + joinCompIter(l.Iter, " ") + "]"
}

type DictComprehension struct {
	Val  span.Node[DictItemComp]
	Iter []span.Node[CompIter]
}

func (DictComprehension) atomNode() {}
func (d DictComprehension) String() string {
	return "{" + d.Val.Value.String() + " " + joinCompIter(d.Iter, " ") + "}"
}

// BlockAtom is a brace-delimited sequence of expressions evaluated for its
// last value: `{ e1; e2; ... }`.
type BlockAtom struct{ Items []span.Node[Expr] }

func (BlockAtom) atomNode() {}
func (b BlockAtom) String() string {
	if len(b.Items) == 1 {
		return "{" + b.Items[0].Value.String() + ";}"
	}
	return "{" + joinExprs(b.Items, "; ") + "}"
}
