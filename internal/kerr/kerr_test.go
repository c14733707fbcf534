package kerr

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/astralarya/kismet/pkg/span"
)

func TestLeafError(t *testing.T) {
	e := New(StageLex, UnrecognizedToken, span.New(0, 1), "bad byte")
	assert.Equal(t, "lex error (unrecognized_token): bad byte", e.Error())
}

func TestChainf(t *testing.T) {
	inner := New(StageParse, Grammar, span.New(2, 3), "no production matched")
	outer := Chainf(StageParse, span.New(0, 3), inner, "while parsing expression")
	assert.Contains(t, outer.Error(), "while parsing expression")
	assert.Contains(t, outer.Error(), "no production matched")
}

func TestWrapNode(t *testing.T) {
	inner := New(StageLower, TypeMismatch, span.New(1, 4), "expected number")
	wrapped := Wrap(StageLower, span.New(0, 5), inner)
	assert.Equal(t, Node, wrapped.Kind)
	assert.Contains(t, wrapped.Error(), "expected number")
}

func TestAggregateSingleUnwraps(t *testing.T) {
	only := New(StageEval, InvalidOp, span.New(0, 1), "bad op")
	agg := Aggregate(StageEval, []*Error{only})
	assert.Same(t, only, agg)
}

func TestAggregateMultipleJoins(t *testing.T) {
	a := New(StageEval, InvalidOp, span.New(0, 1), "first")
	b := New(StageEval, TypeMismatch, span.New(2, 3), "second")
	agg := Aggregate(StageEval, []*Error{a, b})
	assert.Equal(t, Vec, agg.Kind)
	assert.Contains(t, agg.Error(), "first")
	assert.Contains(t, agg.Error(), "second")
}

func TestIncompletef(t *testing.T) {
	e := Incompletef(span.New(0, 2), 3, "needs %d more", 3)
	assert.Equal(t, Incomplete, e.Kind)
	assert.Equal(t, 3, e.Needed)
}
