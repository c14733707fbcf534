// Package lower converts kismet's surface AST into its normalized HIR
// instruction tree, constant-folding arithmetic and literal collection
// construction along the way. Constructs the grammar accepts but whose
// evaluation is out of scope for this core (dice, control flow, function
// literals, comprehensions, and every operator built on top of them) lower
// to a kerr.Unimplemented error rather than a panic.
package lower

import (
	"github.com/astralarya/kismet/internal/ast"
	"github.com/astralarya/kismet/internal/hir"
	"github.com/astralarya/kismet/internal/kerr"
	"github.com/astralarya/kismet/pkg/span"
)

// Program lowers an entire parsed program into an HIR block, one
// instruction per top-level expression.
func Program(p ast.Program) (hir.Block, *kerr.Error) {
	items := make([]span.Node[hir.Instruction], 0, len(p.Items))
	for _, e := range p.Items {
		instr, err := Expr(e)
		if err != nil {
			return hir.Block{}, err
		}
		items = append(items, instr)
	}
	return hir.Block{Items: items}, nil
}

func unimplemented(sp span.Span, what string) *kerr.Error {
	return kerr.New(kerr.StageLower, kerr.Unimplemented, sp, what+" is not evaluated by this core")
}

// Expr lowers a single AST expression node.
func Expr(n span.Node[ast.Expr]) (span.Node[hir.Instruction], *kerr.Error) {
	switch e := n.Value.(type) {
	case ast.Assign:
		return lowerAssign(n.Span, e)
	case ast.Function:
		return span.Node[hir.Instruction]{}, unimplemented(n.Span, "function literals")
	case ast.ExprBranch:
		return span.Node[hir.Instruction]{}, unimplemented(n.Span, "branch expressions")
	case ast.ExprLoop:
		return span.Node[hir.Instruction]{}, unimplemented(n.Span, "loop expressions")
	case ast.ExprOp:
		return lowerOp(n.Span, e.Op)
	case ast.ExprPrimary:
		return lowerPrimary(span.Of(n.Span, e.Primary))
	default:
		return span.Node[hir.Instruction]{}, unimplemented(n.Span, "expression")
	}
}

func lowerAssign(sp span.Span, a ast.Assign) (span.Node[hir.Instruction], *kerr.Error) {
	id, ok := a.Target.Value.(ast.TargetIdent)
	if !ok {
		return span.Node[hir.Instruction]{}, kerr.New(
			kerr.StageLower, kerr.InvalidTarget, a.Target.Span,
			"assignment target must be a single identifier in this core",
		)
	}
	rhs, err := Expr(a.Value)
	if err != nil {
		return span.Node[hir.Instruction]{}, err
	}
	return span.Of(sp, hir.Instruction(hir.InstrAssign{Id: id.Name, Value: rhs})), nil
}

func lowerPrimary(n span.Node[ast.Primary]) (span.Node[hir.Instruction], *kerr.Error) {
	switch p := n.Value.(type) {
	case ast.PrimaryAtom:
		return lowerAtom(span.Of(n.Span, p.Atom))
	case ast.Attribute:
		return span.Node[hir.Instruction]{}, unimplemented(n.Span, "attribute access")
	case ast.Subscription:
		return span.Node[hir.Instruction]{}, unimplemented(n.Span, "subscription")
	case ast.Call:
		return span.Node[hir.Instruction]{}, unimplemented(n.Span, "calls")
	default:
		return span.Node[hir.Instruction]{}, unimplemented(n.Span, "primary expression")
	}
}
