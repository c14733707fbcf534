package ast

import "github.com/astralarya/kismet/pkg/span"

// CompareOp is one of the six comparison operators.
type CompareOp int

const (
	CmpEQ CompareOp = iota
	CmpNE
	CmpLT
	CmpLE
	CmpGT
	CmpGE
)

func (o CompareOp) String() string {
	switch o {
	case CmpEQ:
		return "=="
	case CmpNE:
		return "!="
	case CmpLT:
		return "<"
	case CmpLE:
		return "<="
	case CmpGT:
		return ">"
	case CmpGE:
		return ">="
	default:
		return "?"
	}
}

// ArithOp is one of the seven binary/unary arithmetic operators.
type ArithOp int

const (
	ArithAdd ArithOp = iota
	ArithSub
	ArithMul
	ArithDiv
	ArithIDiv
	ArithMod
	ArithPow
)

func (o ArithOp) String() string {
	switch o {
	case ArithAdd:
		return "+"
	case ArithSub:
		return "-"
	case ArithMul:
		return "*"
	case ArithDiv:
		return "/"
	case ArithIDiv:
		return "/%"
	case ArithMod:
		return "%"
	case ArithPow:
		return "^"
	default:
		return "?"
	}
}

// space reports the padding ArithOp.String() needs on either side when
// reprinting an Arith node: POW/MUL/MOD bind tightly with no spaces.
func (o ArithOp) space() string {
	switch o {
	case ArithPow, ArithMul, ArithMod:
		return ""
	default:
		return " "
	}
}

// Op is a kismet operator expression: logical, comparison, range,
// arithmetic, die, or coefficient.
type Op interface {
	opNode()
	String() string
}

type OpAnd struct{ Left, Right span.Node[Expr] }

func (OpAnd) opNode() {}
func (o OpAnd) String() string {
	return o.Left.Value.String() + " and " + o.Right.Value.String()
}

type OpOr struct{ Left, Right span.Node[Expr] }

func (OpOr) opNode() {}
func (o OpOr) String() string {
	return o.Left.Value.String() + " or " + o.Right.Value.String()
}

type OpNot struct{ Value span.Node[Expr] }

func (OpNot) opNode()      {}
func (o OpNot) String() string { return "not " + o.Value.Value.String() }

// OpCompareBound is the chained/ternary comparison form `a < b < c`.
type OpCompareBound struct {
	LVal span.Node[Expr]
	LOp  CompareOp
	Val  span.Node[Expr]
	ROp  CompareOp
	RVal span.Node[Expr]
}

func (OpCompareBound) opNode() {}
func (o OpCompareBound) String() string {
	return o.LVal.Value.String() + " " + o.LOp.String() + " " + o.Val.Value.String() +
		" " + o.ROp.String() + " " + o.RVal.Value.String()
}

type OpCompare struct {
	Left  span.Node[Expr]
	Op    CompareOp
	Right span.Node[Expr]
}

func (OpCompare) opNode() {}
func (o OpCompare) String() string {
	return o.Left.Value.String() + " " + o.Op.String() + " " + o.Right.Value.String()
}

type OpRange struct{ Range Range }

func (OpRange) opNode()      {}
func (o OpRange) String() string { return o.Range.String() }

type OpArith struct {
	Left  span.Node[Expr]
	Op    ArithOp
	Right span.Node[Expr]
}

func (OpArith) opNode() {}
func (o OpArith) String() string {
	sp := o.Op.space()
	return o.Left.Value.String() + sp + o.Op.String() + sp + o.Right.Value.String()
}

type OpUnary struct {
	Op    ArithOp
	Value span.Node[Expr]
}

func (OpUnary) opNode()      {}
func (o OpUnary) String() string { return o.Op.String() + o.Value.Value.String() }

// OpCoefficient is an implicit multiplication, canonically `<int>d<int>`:
// a numeric atom directly prefixing an expression.
type OpCoefficient struct {
	Coeff span.Node[Atom]
	Value span.Node[Expr]
}

func (OpCoefficient) opNode() {}
func (o OpCoefficient) String() string {
	return o.Coeff.Value.String() + o.Value.Value.String()
}

// OpDie is the `d<atom>` dice operator: parsed but not evaluated.
type OpDie struct{ Value span.Node[Atom] }

func (OpDie) opNode() {}
func (o OpDie) String() string {
	if _, ok := o.Value.Value.(Ident); ok {
		return "d(" + o.Value.Value.String() + ")"
	}
	return "d" + o.Value.Value.String()
}
