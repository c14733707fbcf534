// Package kerr implements the stage-attributed error taxonomy shared by the
// lexer, parser, lowering pass, and evaluator: every failure is surfaced
// immediately with the narrowest span available, and no stage attempts
// local recovery.
package kerr

import (
	"fmt"
	"strings"

	"github.com/astralarya/kismet/pkg/span"
)

// Stage identifies which pipeline stage raised an Error.
type Stage string

const (
	StageLex   Stage = "lex"
	StageParse Stage = "parse"
	StageLower Stage = "lower"
	StageEval  Stage = "eval"
)

// Kind is a stage-specific error code. The zero value is never produced by
// this package.
type Kind string

const (
	// Lex kinds.
	UnrecognizedToken    Kind = "unrecognized_token"
	NumberOverflow       Kind = "number_overflow"
	InvalidStringEscape  Kind = "invalid_string_escape"
	UnterminatedString   Kind = "unterminated_string"
	UnterminatedRawString Kind = "unterminated_raw_string"

	// Parse kinds.
	Grammar    Kind = "grammar"
	Predicate  Kind = "predicate"
	EOF        Kind = "eof"
	Incomplete Kind = "incomplete"
	Chain      Kind = "chain"

	// Lower/Eval kinds.
	TypeMismatch  Kind = "type_mismatch"
	InvalidOp     Kind = "invalid_op"
	InvalidTarget Kind = "invalid_target"

	// Unimplemented marks a construct the grammar accepts and the AST
	// preserves but whose lowering/evaluation is out of scope for this
	// core (dice, control flow, functions, comprehensions, and the
	// operator forms built on top of them): a typed extension-point
	// error in place of a stub that panics.
	Unimplemented Kind = "unimplemented"

	// Aggregation wrappers, usable from any stage.
	Vec  Kind = "vec"
	Node Kind = "node"
)

// Error is the single error type produced by every stage. Only the fields
// relevant to Kind are populated; the rest stay zero.
type Error struct {
	Stage   Stage
	Kind    Kind
	Message string
	Span    span.Span

	// Needed is populated when Kind == Incomplete: the number of
	// additional tokens/bytes the production still needs.
	Needed int

	// Inner is populated when Kind == Chain (outer wraps inner for extra
	// diagnostic context) or Kind == Node (wraps an error with the span
	// of the offending subtree).
	Inner *Error

	// Errs is populated when Kind == Vec: an aggregate of independent
	// failures collected from sibling productions.
	Errs []*Error
}

func (e *Error) Error() string {
	switch e.Kind {
	case Chain:
		return fmt.Sprintf("%s: %s: %s", e.Stage, e.Message, e.Inner.Error())
	case Node:
		return fmt.Sprintf("%s error at %s: %s", e.Stage, e.Span, e.Inner.Error())
	case Vec:
		parts := make([]string, len(e.Errs))
		for i, c := range e.Errs {
			parts[i] = c.Error()
		}
		return strings.Join(parts, "; ")
	default:
		return fmt.Sprintf("%s error (%s): %s", e.Stage, e.Kind, e.Message)
	}
}

// New builds a leaf error for stage/kind at sp with the given message.
func New(stage Stage, kind Kind, sp span.Span, message string) *Error {
	return &Error{Stage: stage, Kind: kind, Message: message, Span: sp}
}

// Incompletef builds a Parse/Incomplete error: the production ran out of
// input and needs at least `needed` more tokens to disambiguate.
func Incompletef(sp span.Span, needed int, format string, args ...any) *Error {
	return &Error{
		Stage:   StageParse,
		Kind:    Incomplete,
		Message: fmt.Sprintf(format, args...),
		Span:    sp,
		Needed:  needed,
	}
}

// Wrap attaches sp to inner as a Node-kind error, recording the span of the
// offending subtree without discarding the original diagnosis.
func Wrap(stage Stage, sp span.Span, inner *Error) *Error {
	return &Error{Stage: stage, Kind: Node, Span: sp, Inner: inner}
}

// Chainf produces a Chain-kind error: outer provides additional context for
// a nested inner failure.
func Chainf(stage Stage, sp span.Span, inner *Error, format string, args ...any) *Error {
	return &Error{
		Stage:   stage,
		Kind:    Chain,
		Message: fmt.Sprintf(format, args...),
		Span:    sp,
		Inner:   inner,
	}
}

// Aggregate collects errs into a single Vec-kind error. If errs has exactly
// one element, that element is returned unwrapped. An empty errs yields a
// Vec-kind error with no elements.
func Aggregate(stage Stage, errs []*Error) *Error {
	if len(errs) == 1 {
		return errs[0]
	}
	return &Error{Stage: stage, Kind: Vec, Errs: errs}
}
