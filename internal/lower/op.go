package lower

import (
	"github.com/astralarya/kismet/internal/ast"
	"github.com/astralarya/kismet/internal/hir"
	"github.com/astralarya/kismet/internal/kerr"
	"github.com/astralarya/kismet/pkg/span"
)

func lowerOp(sp span.Span, op ast.Op) (span.Node[hir.Instruction], *kerr.Error) {
	switch o := op.(type) {
	case ast.OpArith:
		return lowerArith(sp, o)
	case ast.OpUnary:
		return lowerUnary(sp, o)
	case ast.OpAnd:
		return span.Node[hir.Instruction]{}, unimplemented(sp, "and")
	case ast.OpOr:
		return span.Node[hir.Instruction]{}, unimplemented(sp, "or")
	case ast.OpNot:
		return span.Node[hir.Instruction]{}, unimplemented(sp, "not")
	case ast.OpCompareBound:
		return span.Node[hir.Instruction]{}, unimplemented(sp, "chained comparison")
	case ast.OpCompare:
		return span.Node[hir.Instruction]{}, unimplemented(sp, "comparison")
	case ast.OpRange:
		return span.Node[hir.Instruction]{}, unimplemented(sp, "ranges")
	case ast.OpCoefficient:
		return span.Node[hir.Instruction]{}, unimplemented(sp, "dice coefficients")
	case ast.OpDie:
		return span.Node[hir.Instruction]{}, unimplemented(sp, "dice rolls")
	default:
		return span.Node[hir.Instruction]{}, unimplemented(sp, "operator")
	}
}

// lowerArith constant-folds when both operands are already literal.
// Otherwise it emits an InstrArith: the same truth table (hir.Arith) runs
// at evaluation time instead, once the operands (e.g. a variable) resolve
// to values. Grounded on original_source/lib/kismet/src/hlir/op.rs's
// Op::Arith exec, which evaluates both operands before combining them.
func lowerArith(sp span.Span, o ast.OpArith) (span.Node[hir.Instruction], *kerr.Error) {
	lhs, err := Expr(o.Left)
	if err != nil {
		return span.Node[hir.Instruction]{}, err
	}
	rhs, err := Expr(o.Right)
	if err != nil {
		return span.Node[hir.Instruction]{}, err
	}
	hop := arithOpOf(o.Op)
	lv, lok := lhs.Value.(hir.InstrValue)
	rv, rok := rhs.Value.(hir.InstrValue)
	if lok && rok {
		v, kind := hir.Arith(lv.Value, hop, rv.Value)
		if kind != "" {
			return span.Node[hir.Instruction]{}, kerr.New(kerr.StageLower, kind, sp, "invalid operand types for "+o.Op.String())
		}
		return span.Of(sp, hir.Instruction(hir.InstrValue{Value: v})), nil
	}
	return span.Of(sp, hir.Instruction(hir.InstrArith{Left: lhs, Op: hop, Right: rhs})), nil
}

func lowerUnary(sp span.Span, o ast.OpUnary) (span.Node[hir.Instruction], *kerr.Error) {
	rhs, err := Expr(o.Value)
	if err != nil {
		return span.Node[hir.Instruction]{}, err
	}
	hop := arithOpOf(o.Op)
	rv, ok := rhs.Value.(hir.InstrValue)
	if !ok {
		return span.Of(sp, hir.Instruction(hir.InstrUnaryArith{Op: hop, Value: rhs})), nil
	}
	v, kind := hir.UnaryArith(hop, rv.Value)
	if kind != "" {
		return span.Node[hir.Instruction]{}, kerr.New(kerr.StageLower, kind, sp, "invalid operand type for unary "+o.Op.String())
	}
	return span.Of(sp, hir.Instruction(hir.InstrValue{Value: v})), nil
}

// arithOpOf translates ast.ArithOp to hir.ArithOp at the lowering
// boundary, keeping hir free of a dependency on ast so the evaluator can
// share the same arithmetic truth table without importing ast or lower.
func arithOpOf(op ast.ArithOp) hir.ArithOp {
	switch op {
	case ast.ArithAdd:
		return hir.ArithAdd
	case ast.ArithSub:
		return hir.ArithSub
	case ast.ArithMul:
		return hir.ArithMul
	case ast.ArithDiv:
		return hir.ArithDiv
	case ast.ArithIDiv:
		return hir.ArithIDiv
	case ast.ArithMod:
		return hir.ArithMod
	case ast.ArithPow:
		return hir.ArithPow
	default:
		return hir.ArithAdd
	}
}
