package hir

import (
	"math"

	"github.com/astralarya/kismet/internal/kerr"
)

// ArithOp is the arithmetic operator set shared by lowering's constant
// folder and the evaluator's runtime path. It mirrors ast.ArithOp without
// giving hir a dependency on the ast package.
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

// Arith implements the constant-folding truth table: lowering calls it
// when both operands are already literal, and the evaluator calls it with
// the same two functions on values it just computed at runtime. A
// non-empty kerr.Kind return signals failure (TypeMismatch or InvalidOp);
// the Value return is only meaningful when kind == "".
func Arith(lhs Value, op ArithOp, rhs Value) (Value, kerr.Kind) {
	switch l := lhs.(type) {
	case Integer:
		switch r := rhs.(type) {
		case Integer:
			return arithIntInt(int32(l), op, int32(r))
		case Float:
			if op == ArithPow && l == 2 {
				return Float(float32(math.Exp2(float64(r)))), ""
			}
			return arithFloatFloat(float32(l), op, float32(r))
		}
	case Float:
		switch r := rhs.(type) {
		case Integer:
			if op == ArithPow {
				return Float(float32(math.Pow(float64(l), float64(r)))), ""
			}
			return arithFloatFloat(float32(l), op, float32(r))
		case Float:
			return arithFloatFloat(float32(l), op, float32(r))
		}
	case String:
		if r, ok := rhs.(String); ok {
			if op == ArithAdd {
				return String(string(l) + string(r)), ""
			}
			return nil, kerr.InvalidOp
		}
	case Collection:
		if _, ok := rhs.(Collection); ok {
			return nil, kerr.InvalidOp
		}
	}
	return nil, kerr.TypeMismatch
}

// UnaryArith implements the +x/-x truth table, shared the same way as
// Arith between the constant folder and the evaluator.
func UnaryArith(op ArithOp, val Value) (Value, kerr.Kind) {
	switch v := val.(type) {
	case Integer:
		switch op {
		case ArithAdd:
			return v, ""
		case ArithSub:
			if v == math.MinInt32 {
				return Float(-float32(v)), ""
			}
			return -v, ""
		default:
			return nil, kerr.InvalidOp
		}
	case Float:
		switch op {
		case ArithAdd:
			return v, ""
		case ArithSub:
			return -v, ""
		default:
			return nil, kerr.InvalidOp
		}
	default:
		return nil, kerr.TypeMismatch
	}
}

func arithIntInt(lhs int32, op ArithOp, rhs int32) (Value, kerr.Kind) {
	switch op {
	case ArithAdd:
		sum := int64(lhs) + int64(rhs)
		if fitsInt32(sum) {
			return Integer(int32(sum)), ""
		}
		return arithFloatFloat(float32(lhs), op, float32(rhs))
	case ArithSub:
		d := int64(lhs) - int64(rhs)
		if fitsInt32(d) {
			return Integer(int32(d)), ""
		}
		return arithFloatFloat(float32(lhs), op, float32(rhs))
	case ArithMul:
		p := int64(lhs) * int64(rhs)
		if fitsInt32(p) {
			return Integer(int32(p)), ""
		}
		return arithFloatFloat(float32(lhs), op, float32(rhs))
	case ArithDiv:
		return arithFloatFloat(float32(lhs), op, float32(rhs))
	case ArithIDiv:
		if rhs == 0 {
			return arithFloatFloat(float32(lhs), op, float32(rhs))
		}
		return Integer(lhs / rhs), ""
	case ArithMod:
		if rhs == 0 {
			return arithFloatFloat(float32(lhs), op, float32(rhs))
		}
		return Integer(lhs % rhs), ""
	case ArithPow:
		if rhs < 0 {
			return arithFloatFloat(float32(lhs), op, float32(rhs))
		}
		if v, ok := checkedPow(lhs, rhs); ok {
			return Integer(v), ""
		}
		return arithFloatFloat(float32(lhs), op, float32(rhs))
	default:
		return nil, kerr.InvalidOp
	}
}

func arithFloatFloat(lhs float32, op ArithOp, rhs float32) (Value, kerr.Kind) {
	l, r := float64(lhs), float64(rhs)
	switch op {
	case ArithAdd:
		return Float(float32(l + r)), ""
	case ArithSub:
		return Float(float32(l - r)), ""
	case ArithMul:
		return Float(float32(l * r)), ""
	case ArithDiv:
		return Float(float32(l / r)), ""
	case ArithIDiv:
		return Float(float32(remEuclid(l, r))), ""
	case ArithMod:
		return Float(float32(math.Mod(l, r))), ""
	case ArithPow:
		if l == 0 && r == 0 {
			return Float(1), ""
		}
		return Float(float32(math.Pow(l, r))), ""
	default:
		return nil, kerr.InvalidOp
	}
}

// remEuclid matches Rust's f32::rem_euclid: a remainder with the sign of
// the divisor's magnitude, always non-negative for a positive divisor.
func remEuclid(l, r float64) float64 {
	m := math.Mod(l, r)
	if m < 0 {
		m += math.Abs(r)
	}
	return m
}

func fitsInt32(v int64) bool {
	return v >= math.MinInt32 && v <= math.MaxInt32
}

// checkedPow computes base^exp (exp >= 0) over int32, reporting overflow.
func checkedPow(base int32, exp int32) (int32, bool) {
	if exp == 0 {
		return 1, true
	}
	result := int64(1)
	b := int64(base)
	for i := int32(0); i < exp; i++ {
		result *= b
		if !fitsInt32(result) {
			return 0, false
		}
	}
	return int32(result), true
}
