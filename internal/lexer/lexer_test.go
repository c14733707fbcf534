package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/astralarya/kismet/pkg/token"
)

func kindsOf(src string) []token.Kind {
	nodes := Lex(src)
	out := make([]token.Kind, len(nodes))
	for i, n := range nodes {
		out[i] = n.Value.Kind
	}
	return out
}

func TestLeadingDotIsFloat(t *testing.T) {
	nodes := Lex(".5")
	require.GreaterOrEqual(t, len(nodes), 2)
	tok := nodes[0].Value
	assert.Equal(t, token.Number, tok.Kind)
	assert.Equal(t, token.NumFloat, tok.Num.Tag)
	assert.InDelta(t, 0.5, tok.Num.Float, 1e-6)
}

func TestAtomDotNumberIsIndex(t *testing.T) {
	nodes := Lex("x.0")
	require.Len(t, nodes, 4) // Ident, Dot, Number(Index), EOF
	assert.Equal(t, token.Ident, nodes[0].Value.Kind)
	assert.Equal(t, "x", nodes[0].Value.Lexeme)
	assert.Equal(t, token.Dot, nodes[1].Value.Kind)
	assert.Equal(t, token.Number, nodes[2].Value.Kind)
	assert.Equal(t, token.NumIndex, nodes[2].Value.Num.Tag)
	assert.Equal(t, uint(0), nodes[2].Value.Num.Index)
}

func TestDieBindsToCoefficient(t *testing.T) {
	nodes := Lex("d6")
	require.Len(t, nodes, 3) // Die, Number, EOF
	assert.Equal(t, token.Die, nodes[0].Value.Kind)
	assert.Equal(t, "d", nodes[0].Value.Lexeme)
	assert.Equal(t, token.Number, nodes[1].Value.Kind)
	assert.Equal(t, token.NumInteger, nodes[1].Value.Num.Tag)
	assert.Equal(t, int32(6), nodes[1].Value.Num.Int)
}

func TestDFollowedByLetterIsIdent(t *testing.T) {
	nodes := Lex("da")
	require.Len(t, nodes, 2) // Ident, EOF
	assert.Equal(t, token.Ident, nodes[0].Value.Kind)
	assert.Equal(t, "da", nodes[0].Value.Lexeme)
}

func TestBareDIsDie(t *testing.T) {
	assert.Equal(t, []token.Kind{token.Die, token.EOF}, kindsOf("d"))
	assert.Equal(t, []token.Kind{token.Die, token.EOF}, kindsOf("D"))
}

func TestSpanCoversExactLexeme(t *testing.T) {
	src := "  foo := 42"
	for _, n := range Lex(src) {
		if n.Value.Kind == token.EOF {
			continue
		}
		got := n.Span.Slice(src)
		if n.Value.Kind == token.Number {
			assert.Equal(t, n.Value.Lexeme, got)
			continue
		}
		if n.Value.Lexeme != "" {
			assert.Equal(t, n.Value.Lexeme, got)
		}
	}
}

func TestKeywordCaseInsensitive(t *testing.T) {
	for _, word := range []string{"if", "IF", "If", "iF"} {
		nodes := Lex(word)
		assert.Equal(t, token.KwIf, nodes[0].Value.Kind, word)
	}
}

func TestIdentifierCasePreserved(t *testing.T) {
	nodes := Lex("MyVar")
	assert.Equal(t, "MyVar", nodes[0].Value.Lexeme)
}

func TestUnterminatedStringReportsAtOpeningQuote(t *testing.T) {
	src := `x := "abc`
	nodes := Lex(src)
	var illegal *token.Token
	var illegalStart int
	for _, n := range nodes {
		if n.Value.Kind == token.Illegal {
			v := n.Value
			illegal = &v
			illegalStart = n.Span.Start
			break
		}
	}
	require.NotNil(t, illegal)
	assert.Equal(t, 5, illegalStart)
}

func TestRangeOperators(t *testing.T) {
	assert.Equal(t, []token.Kind{token.Number, token.DotDot, token.Number, token.EOF}, kindsOf("1..5"))
	assert.Equal(t, []token.Kind{token.Number, token.DotDotEq, token.Number, token.EOF}, kindsOf("1..=5"))
}

func TestIntegerOverflowIsIllegal(t *testing.T) {
	nodes := Lex("99999999999")
	assert.Equal(t, token.Illegal, nodes[0].Value.Kind)
	require.NotNil(t, nodes[0].Value.Err)
}
