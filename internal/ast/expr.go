package ast

import "github.com/astralarya/kismet/pkg/span"

// Expr is the top of the surface grammar: assignment, function literal,
// branch, loop, operator expression, or a bare Primary chain.
type Expr interface {
	exprNode()
	String() string
}

type Assign struct {
	Target span.Node[Target]
	Value  span.Node[Expr]
}

func (Assign) exprNode() {}
func (a Assign) String() string {
	return a.Target.Value.String() + " := " + a.Value.Value.String()
}

type Function struct {
	Args  span.Node[ArgsDef]
	Block span.Node[ExprEnclosure]
}

func (Function) exprNode() {}
func (f Function) String() string {
	return "(" + f.Args.Value.String() + ") => " + f.Block.Value.String()
}

type ExprBranch struct{ Branch Branch }

func (ExprBranch) exprNode()      {}
func (e ExprBranch) String() string { return e.Branch.String() }

type ExprLoop struct{ Loop Loop }

func (ExprLoop) exprNode()      {}
func (e ExprLoop) String() string { return e.Loop.String() }

type ExprOp struct{ Op Op }

func (ExprOp) exprNode()      {}
func (e ExprOp) String() string { return e.Op.String() }

type ExprPrimary struct{ Primary Primary }

func (ExprPrimary) exprNode()      {}
func (e ExprPrimary) String() string { return e.Primary.String() }
