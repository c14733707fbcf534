// Package parser implements kismet's hand-written recursive-descent,
// operator-precedence parser: a flat token stream in, a spanned ast.Program
// out. This is deliberately a ladder of explicit per-level functions rather
// than a generic Pratt table, since the grammar has a fixed, small number
// of precedence levels and is most legible written out one level at a time.
package parser

import (
	"github.com/astralarya/kismet/internal/ast"
	"github.com/astralarya/kismet/internal/kerr"
	"github.com/astralarya/kismet/internal/lexer"
	"github.com/astralarya/kismet/pkg/span"
	"github.com/astralarya/kismet/pkg/token"
)

// Parser holds a fully materialized token buffer and a cursor into it.
// Tokens are lexed eagerly rather than on demand, which keeps backtracking
// (function literal vs. parenthesized/tuple atom, target vs. expression) a
// matter of saving and restoring an int.
type Parser struct {
	tokens []span.Node[token.Token]
	pos    int
}

// New returns a Parser over src's full token stream.
func New(src string) *Parser {
	return &Parser{tokens: lexer.Lex(src)}
}

// Parse runs the full pipeline's parse stage: parser.New(src).Parse().
func Parse(src string) (span.Node[ast.Program], *kerr.Error) {
	return New(src).Parse()
}

// mark captures the current cursor position for backtracking.
type mark int

func (p *Parser) mark() mark { return mark(p.pos) }
func (p *Parser) reset(m mark) { p.pos = int(m) }

func (p *Parser) cur() span.Node[token.Token] {
	return p.tokens[p.pos]
}

func (p *Parser) curKind() token.Kind {
	return p.tokens[p.pos].Value.Kind
}

func (p *Parser) peek(n int) span.Node[token.Token] {
	i := p.pos + n
	if i >= len(p.tokens) {
		return p.tokens[len(p.tokens)-1]
	}
	return p.tokens[i]
}

func (p *Parser) at(k token.Kind) bool {
	return p.curKind() == k
}

func (p *Parser) atEOF() bool {
	return p.curKind() == token.EOF
}

// advance consumes and returns the current token.
func (p *Parser) advance() span.Node[token.Token] {
	t := p.cur()
	if !p.atEOF() {
		p.pos++
	}
	return t
}

// eat consumes the current token if it has kind k.
func (p *Parser) eat(k token.Kind) (span.Node[token.Token], bool) {
	if p.at(k) {
		return p.advance(), true
	}
	return span.Node[token.Token]{}, false
}

// expect consumes the current token if it has kind k, else produces a
// Predicate error at the current token's span.
func (p *Parser) expect(k token.Kind) (span.Node[token.Token], *kerr.Error) {
	if t, ok := p.eat(k); ok {
		return t, nil
	}
	return span.Node[token.Token]{}, p.errPredicate(k)
}

func (p *Parser) errPredicate(want token.Kind) *kerr.Error {
	if p.atEOF() {
		return kerr.New(kerr.StageParse, kerr.EOF, p.cur().Span, "expected "+want.Human()+", found end of input")
	}
	return kerr.New(kerr.StageParse, kerr.Predicate, p.cur().Span,
		"expected "+want.Human()+", found "+p.cur().Value.String())
}

func (p *Parser) errGrammar(msg string) *kerr.Error {
	return kerr.New(kerr.StageParse, kerr.Grammar, p.cur().Span, msg)
}

// skipDelimiters consumes zero or more Delimiter tokens.
func (p *Parser) skipDelimiters() {
	for p.at(token.Delimiter) {
		p.advance()
	}
}

// Parse consumes the entire token stream as a Program: an ordered list of
// top-level expressions separated by delimiters. When parsing stops at an
// Illegal token, the lex error the lexer recorded for it is returned.
func (p *Parser) Parse() (span.Node[ast.Program], *kerr.Error) {
	fail := func(err *kerr.Error) (span.Node[ast.Program], *kerr.Error) {
		if lexErr, ok := p.cur().Value.Err.(*kerr.Error); ok && p.at(token.Illegal) {
			return span.Node[ast.Program]{}, lexErr
		}
		return span.Node[ast.Program]{}, err
	}
	start := p.cur().Span
	var items []span.Node[ast.Expr]
	p.skipDelimiters()
	for !p.atEOF() {
		e, err := p.parseExpr()
		if err != nil {
			return fail(err)
		}
		items = append(items, e)
		if !p.atEOF() && !p.at(token.Delimiter) {
			return fail(p.errGrammar("expected a delimiter between expressions"))
		}
		p.skipDelimiters()
	}
	end := p.cur().Span
	sp := start.Union(end)
	return span.Of(sp, ast.Program{Items: items}), nil
}
