package hir

import "github.com/astralarya/kismet/pkg/span"

// Instruction is the normalized tree node lowering produces and the
// evaluator consumes.
type Instruction interface {
	instructionNode()
}

// InstrValue is an instruction that has already been fully reduced to a
// Value at lowering time.
type InstrValue struct{ Value Value }

func (InstrValue) instructionNode() {}

// InstrVariable looks up Id in the symbol table at evaluation time.
type InstrVariable struct{ Id string }

func (InstrVariable) instructionNode() {}

// InstrAction is a construction lowering could not fully fold: it still
// needs evaluation to produce a Value.
type InstrAction struct{ Action Action }

func (InstrAction) instructionNode() {}

// Block is a non-empty ordered list of instructions; its value is that of
// the last instruction.
type Block struct{ Items []span.Node[Instruction] }

type InstrBlock struct{ Block Block }

func (InstrBlock) instructionNode() {}

// InstrAssign evaluates Value and stores the result under Id.
type InstrAssign struct {
	Id    string
	Value span.Node[Instruction]
}

func (InstrAssign) instructionNode() {}

// InstrSymbol names a bound symbol independent of a lookup or store; a
// placeholder extension point for the deferred function/comprehension
// scoping work, once nested lexical scopes replace the current flat table.
type InstrSymbol struct{ Id string }

func (InstrSymbol) instructionNode() {}

// InstrArith is binary arithmetic lowering couldn't constant-fold (one or
// both operands aren't literal, e.g. a variable): Left and Right are
// evaluated at runtime and combined with Arith.
type InstrArith struct {
	Left  span.Node[Instruction]
	Op    ArithOp
	Right span.Node[Instruction]
}

func (InstrArith) instructionNode() {}

// InstrUnaryArith is InstrArith's unary counterpart (+x/-x on a non-literal
// operand), combined at runtime with UnaryArith.
type InstrUnaryArith struct {
	Op    ArithOp
	Value span.Node[Instruction]
}

func (InstrUnaryArith) instructionNode() {}
