package ast

import "github.com/astralarya/kismet/pkg/span"

// ExprEnclosure is a brace-delimited expression sequence used by branch and
// loop bodies: `{ e1; e2; ... }`.
type ExprEnclosure struct{ Items []span.Node[Expr] }

func (e ExprEnclosure) String() string {
	return "{ " + joinExprs(e.Items, "; ") + " }"
}

// Program is the parser's top-level result: an ordered list of expressions
// separated by delimiters (semicolons or newlines).
type Program struct{ Items []span.Node[Expr] }

func (p Program) String() string {
	return joinExprs(p.Items, "\n")
}
