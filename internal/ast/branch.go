package ast

import "github.com/astralarya/kismet/pkg/span"

// Branch is an `if` or `match` expression.
type Branch interface {
	branchNode()
	String() string
}

type If struct {
	Cond span.Node[Expr]
	Then span.Node[ExprEnclosure]
	Else span.Node[ExprEnclosure] // Else.Value.Items == nil when there is no else clause
}

func (If) branchNode() {}
func (b If) String() string {
	if len(b.Else.Value.Items) == 0 {
		return "if " + b.Cond.Value.String() + " " + b.Then.Value.String()
	}
	return "if " + b.Cond.Value.String() + " " + b.Then.Value.String() + " else " + b.Else.Value.String()
}

type MatchArm struct {
	Target span.Node[Match]
	Block  span.Node[ExprEnclosure]
}

func (a MatchArm) String() string {
	return a.Target.Value.String() + " => " + a.Block.Value.String()
}

type MatchBranch struct {
	Val  span.Node[Expr]
	Arms []span.Node[MatchArm]
}

func (MatchBranch) branchNode() {}
func (m MatchBranch) String() string {
	arms := joinString(mapString(m.Arms, func(n span.Node[MatchArm]) string { return n.Value.String() }), " ")
	return "match " + m.Val.Value.String() + " {" + arms + "}"
}

// LoopKind is the body of a `for`/`while`/`loop` construct.
type LoopKind interface {
	loopKindNode()
	String() string
}

type LoopFor struct {
	Target span.Node[Target]
	Value  span.Node[Expr]
	Block  span.Node[ExprEnclosure]
}

func (LoopFor) loopKindNode() {}
func (l LoopFor) String() string {
	return "for " + l.Target.Value.String() + " in " + l.Value.Value.String() + " " + l.Block.Value.String()
}

type LoopWhile struct {
	Cond  span.Node[Expr]
	Block span.Node[ExprEnclosure]
}

func (LoopWhile) loopKindNode() {}
func (l LoopWhile) String() string {
	return "while " + l.Cond.Value.String() + " " + l.Block.Value.String()
}

type LoopBare struct{ Block span.Node[ExprEnclosure] }

func (LoopBare) loopKindNode()      {}
func (l LoopBare) String() string { return "loop " + l.Block.Value.String() }

// Loop is a loop construct with an optional label: `:label: for ...`.
type Loop struct {
	Label *span.Node[string]
	Kind  LoopKind
}

func (l Loop) String() string {
	if l.Label != nil {
		return ":" + l.Label.Value + ": " + l.Kind.String()
	}
	return l.Kind.String()
}
