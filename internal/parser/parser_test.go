package parser_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/astralarya/kismet/internal/ast"
	"github.com/astralarya/kismet/internal/kerr"
	"github.com/astralarya/kismet/internal/parser"
)

func parseOne(t *testing.T, src string) ast.Expr {
	t.Helper()
	prog, err := parser.Parse(src)
	require.Nil(t, err, "parse %q: %v", src, err)
	require.Len(t, prog.Value.Items, 1)
	return prog.Value.Items[0].Value
}

// TestRoundTrip checks the idempotence property from the testable
// properties section: reprinting a parsed program and reparsing it
// yields the same source text.
func TestRoundTrip(t *testing.T) {
	srcs := []string{
		"2+3",
		"2^5+3*4^6",
		"2*-3",
		"x := 7",
		"(1, 2, 3)",
		"(1,)",
		"()",
		`"foo" + "bar"`,
		"a < b < c",
		"1..5",
		"1..=5",
		"[1, 2, 3]",
		"d6",
	}
	for _, src := range srcs {
		t.Run(src, func(t *testing.T) {
			prog, err := parser.Parse(src)
			require.Nil(t, err)
			printed := prog.Value.String()
			reprog, reerr := parser.Parse(printed)
			require.Nil(t, reerr, "reparse %q: %v", printed, reerr)
			assert.Equal(t, printed, reprog.Value.String())
		})
	}
}

func TestPrecedenceArithmetic(t *testing.T) {
	e := parseOne(t, "2^5+3*4^6")
	top, ok := e.(ast.ExprOp)
	require.True(t, ok)
	add, ok := top.Op.(ast.OpArith)
	require.True(t, ok)
	assert.Equal(t, ast.ArithAdd, add.Op)
}

func TestUnaryBindsTighterThanMul(t *testing.T) {
	e := parseOne(t, "2*-3")
	top, ok := e.(ast.ExprOp)
	require.True(t, ok)
	mul, ok := top.Op.(ast.OpArith)
	require.True(t, ok)
	assert.Equal(t, ast.ArithMul, mul.Op)
	_, ok = mul.Right.Value.(ast.ExprOp)
	require.True(t, ok)
}

func TestChainedComparisonExactlyTwo(t *testing.T) {
	e := parseOne(t, "a < b < c")
	top, ok := e.(ast.ExprOp)
	require.True(t, ok)
	_, ok = top.Op.(ast.OpCompareBound)
	require.True(t, ok)
}

func TestTupleVsParenVsEmpty(t *testing.T) {
	assert.IsType(t, ast.Paren{}, atomOf(t, "(1)"))
	assert.IsType(t, ast.Tuple{}, atomOf(t, "(1,)"))
	assert.IsType(t, ast.Tuple{}, atomOf(t, "(1, 2)"))
	assert.IsType(t, ast.Tuple{}, atomOf(t, "()"))
}

func atomOf(t *testing.T, src string) ast.Atom {
	t.Helper()
	e := parseOne(t, src)
	prim, ok := e.(ast.ExprPrimary)
	require.True(t, ok)
	pa, ok := prim.Primary.(ast.PrimaryAtom)
	require.True(t, ok)
	return pa.Atom
}

func TestDictLastWinsKeepsBothItemsAtParseTime(t *testing.T) {
	a := atomOf(t, "{a: 1, a: 2}")
	d, ok := a.(ast.DictDisplay)
	require.True(t, ok)
	assert.Len(t, d.Items, 2)
}

func TestAmbiguousSingleNameBraceIsBlock(t *testing.T) {
	a := atomOf(t, "{x}")
	_, ok := a.(ast.BlockAtom)
	assert.True(t, ok)
}

func TestDieOperandIsAtomNotPrimaryChain(t *testing.T) {
	e := parseOne(t, "d6")
	top, ok := e.(ast.ExprOp)
	require.True(t, ok)
	die, ok := top.Op.(ast.OpDie)
	require.True(t, ok)
	_, ok = die.Value.Value.(ast.IntegerLit)
	assert.True(t, ok)
}

func TestFunctionLiteralBacktracksCleanlyFromTuple(t *testing.T) {
	e := parseOne(t, "(a, b) => {a + b}")
	_, ok := e.(ast.Function)
	require.True(t, ok)

	e2 := parseOne(t, "(1, 2)")
	_, ok = e2.(ast.Function)
	assert.False(t, ok)
}

func TestUnterminatedParenIsEOFError(t *testing.T) {
	_, err := parser.Parse("(1, 2")
	require.NotNil(t, err)
	assert.Equal(t, kerr.EOF, err.Kind)
}
