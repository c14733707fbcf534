package parser

import (
	"github.com/astralarya/kismet/internal/ast"
	"github.com/astralarya/kismet/internal/kerr"
	"github.com/astralarya/kismet/pkg/span"
	"github.com/astralarya/kismet/pkg/token"
)

// parseEnclosure parses a brace-delimited, delimiter-separated expression
// sequence shared by branch and loop bodies.
func (p *Parser) parseEnclosure() (span.Node[ast.ExprEnclosure], *kerr.Error) {
	start, err := p.expect(token.LBrace)
	if err != nil {
		return span.Node[ast.ExprEnclosure]{}, err
	}
	var items []span.Node[ast.Expr]
	p.skipDelimiters()
	for !p.at(token.RBrace) {
		e, err := p.parseExpr()
		if err != nil {
			return span.Node[ast.ExprEnclosure]{}, err
		}
		items = append(items, e)
		if !p.at(token.RBrace) && !p.at(token.Delimiter) {
			return span.Node[ast.ExprEnclosure]{}, p.errGrammar("expected a delimiter between block expressions")
		}
		p.skipDelimiters()
	}
	end, err := p.expect(token.RBrace)
	if err != nil {
		return span.Node[ast.ExprEnclosure]{}, err
	}
	return span.Of(start.Span.Union(end.Span), ast.ExprEnclosure{Items: items}), nil
}

func (p *Parser) parseIf() (span.Node[ast.Expr], *kerr.Error) {
	start := p.cur().Span
	p.advance()
	cond, err := p.parseOr()
	if err != nil {
		return span.Node[ast.Expr]{}, err
	}
	then, err := p.parseEnclosure()
	if err != nil {
		return span.Node[ast.Expr]{}, err
	}
	var elseBlock span.Node[ast.ExprEnclosure]
	end := then.Span
	if p.at(token.KwElse) {
		p.advance()
		if p.at(token.KwIf) {
			nested, err := p.parseIf()
			if err != nil {
				return span.Node[ast.Expr]{}, err
			}
			elseBlock = span.Of(nested.Span, ast.ExprEnclosure{Items: []span.Node[ast.Expr]{nested}})
		} else {
			elseBlock, err = p.parseEnclosure()
			if err != nil {
				return span.Node[ast.Expr]{}, err
			}
		}
		end = elseBlock.Span
	}
	sp := start.Union(end)
	return span.Of(sp, ast.Expr(ast.ExprBranch{Branch: ast.If{Cond: cond, Then: then, Else: elseBlock}})), nil
}

func (p *Parser) parseMatch() (span.Node[ast.Expr], *kerr.Error) {
	start := p.cur().Span
	p.advance()
	val, err := p.parseOr()
	if err != nil {
		return span.Node[ast.Expr]{}, err
	}
	if _, err := p.expect(token.LBrace); err != nil {
		return span.Node[ast.Expr]{}, err
	}
	p.skipDelimiters()
	var arms []span.Node[ast.MatchArm]
	for !p.at(token.RBrace) {
		arm, err := p.parseMatchArm()
		if err != nil {
			return span.Node[ast.Expr]{}, err
		}
		arms = append(arms, arm)
		if _, ok := p.eat(token.Comma); !ok {
			p.skipDelimiters()
		}
		p.skipDelimiters()
	}
	end, err := p.expect(token.RBrace)
	if err != nil {
		return span.Node[ast.Expr]{}, err
	}
	sp := start.Union(end.Span)
	return span.Of(sp, ast.Expr(ast.ExprBranch{Branch: ast.MatchBranch{Val: val, Arms: arms}})), nil
}

func (p *Parser) parseMatchArm() (span.Node[ast.MatchArm], *kerr.Error) {
	pattern, err := p.parseMatchPattern()
	if err != nil {
		return span.Node[ast.MatchArm]{}, err
	}
	if _, err := p.expect(token.FatArrow); err != nil {
		return span.Node[ast.MatchArm]{}, err
	}
	var block span.Node[ast.ExprEnclosure]
	if p.at(token.LBrace) {
		block, err = p.parseEnclosure()
		if err != nil {
			return span.Node[ast.MatchArm]{}, err
		}
	} else {
		e, err := p.parseOr()
		if err != nil {
			return span.Node[ast.MatchArm]{}, err
		}
		block = span.Of(e.Span, ast.ExprEnclosure{Items: []span.Node[ast.Expr]{e}})
	}
	sp := pattern.Span.Union(block.Span)
	return span.Of(sp, ast.MatchArm{Target: pattern, Block: block}), nil
}

func (p *Parser) parseMatchPattern() (span.Node[ast.Match], *kerr.Error) {
	atom, sp, err := p.parseAtom()
	if err != nil {
		return span.Node[ast.Match]{}, err
	}
	if tar, ok := ast.ToTarget(atom); ok {
		return span.Of(sp, ast.Match(ast.MatchTarget{Target: tar})), nil
	}
	return span.Of(sp, ast.Match(ast.MatchLiteral{Atom: atom})), nil
}

// parseLabeledLoop handles `:label: for/while/loop ...`.
func (p *Parser) parseLabeledLoop() (span.Node[ast.Expr], *kerr.Error) {
	start := p.cur().Span
	p.advance()
	nameTok, err := p.expect(token.Ident)
	if err != nil {
		return span.Node[ast.Expr]{}, err
	}
	if _, err := p.expect(token.Colon); err != nil {
		return span.Node[ast.Expr]{}, err
	}
	label := span.Of(nameTok.Span, nameTok.Value.Lexeme)
	e, err := p.parseLoop(&label)
	if err != nil {
		return span.Node[ast.Expr]{}, err
	}
	sp := start.Union(e.Span)
	return span.Of(sp, e.Value), nil
}

func (p *Parser) parseLoop(label *span.Node[string]) (span.Node[ast.Expr], *kerr.Error) {
	start := p.cur().Span
	var kind ast.LoopKind
	var err *kerr.Error
	switch {
	case p.at(token.KwFor):
		p.advance()
		var target span.Node[ast.Target]
		target, err = p.parseTarget()
		if err != nil {
			return span.Node[ast.Expr]{}, err
		}
		if _, err = p.expect(token.KwIn); err != nil {
			return span.Node[ast.Expr]{}, err
		}
		var val span.Node[ast.Expr]
		val, err = p.parseOr()
		if err != nil {
			return span.Node[ast.Expr]{}, err
		}
		var block span.Node[ast.ExprEnclosure]
		block, err = p.parseEnclosure()
		if err != nil {
			return span.Node[ast.Expr]{}, err
		}
		kind = ast.LoopFor{Target: target, Value: val, Block: block}
	case p.at(token.KwWhile):
		p.advance()
		var cond span.Node[ast.Expr]
		cond, err = p.parseOr()
		if err != nil {
			return span.Node[ast.Expr]{}, err
		}
		var block span.Node[ast.ExprEnclosure]
		block, err = p.parseEnclosure()
		if err != nil {
			return span.Node[ast.Expr]{}, err
		}
		kind = ast.LoopWhile{Cond: cond, Block: block}
	case p.at(token.KwLoop):
		p.advance()
		var block span.Node[ast.ExprEnclosure]
		block, err = p.parseEnclosure()
		if err != nil {
			return span.Node[ast.Expr]{}, err
		}
		kind = ast.LoopBare{Block: block}
	default:
		return span.Node[ast.Expr]{}, p.errGrammar("expected 'for', 'while', or 'loop'")
	}
	end := p.tokens[p.pos-1].Span
	sp := start.Union(end)
	return span.Of(sp, ast.Expr(ast.ExprLoop{Loop: ast.Loop{Label: label, Kind: kind}})), nil
}

// tryParseFunction attempts `(argsdef) => block`, backtracking cleanly to a
// plain parenthesized/tuple atom if the lookahead doesn't pan out.
func (p *Parser) tryParseFunction() (span.Node[ast.Expr], bool, *kerr.Error) {
	if !p.at(token.LParen) {
		return span.Node[ast.Expr]{}, false, nil
	}
	m := p.mark()
	argsDef, argsSpan, ok := p.tryArgsDef()
	if !ok || !p.at(token.FatArrow) {
		p.reset(m)
		return span.Node[ast.Expr]{}, false, nil
	}
	p.advance()
	block, err := p.parseEnclosure()
	if err != nil {
		return span.Node[ast.Expr]{}, false, err
	}
	sp := argsSpan.Union(block.Span)
	return span.Of(sp, ast.Expr(ast.Function{Args: span.Of(argsSpan, argsDef), Block: block})), true, nil
}

func (p *Parser) tryArgsDef() (ast.ArgsDef, span.Span, bool) {
	start, ok := p.eat(token.LParen)
	if !ok {
		return ast.ArgsDef{}, span.Span{}, false
	}
	var items []span.Node[ast.TargetExpr]
	if !p.at(token.RParen) {
		for {
			item, ok := p.tryTargetExprItem()
			if !ok {
				return ast.ArgsDef{}, span.Span{}, false
			}
			items = append(items, item)
			if _, ok := p.eat(token.Comma); !ok {
				break
			}
			if p.at(token.RParen) {
				break
			}
		}
	}
	end, ok := p.eat(token.RParen)
	if !ok {
		return ast.ArgsDef{}, span.Span{}, false
	}
	return ast.ArgsDef{Items: items}, start.Span.Union(end.Span), true
}

func (p *Parser) tryTargetExprItem() (span.Node[ast.TargetExpr], bool) {
	m := p.mark()
	e, err := p.parseOr()
	if err != nil {
		p.reset(m)
		return span.Node[ast.TargetExpr]{}, false
	}
	tar, ok := exprToTarget(e)
	if !ok {
		p.reset(m)
		return span.Node[ast.TargetExpr]{}, false
	}
	if _, ok := p.eat(token.Assign); ok {
		def, err := p.parseOr()
		if err != nil {
			p.reset(m)
			return span.Node[ast.TargetExpr]{}, false
		}
		sp := tar.Span.Union(def.Span)
		return span.Of(sp, ast.TargetExpr(ast.TargetExprDefault{Target: tar, Default: def})), true
	}
	return span.Of(tar.Span, ast.TargetExpr(ast.TargetExprBare{Target: tar.Value})), true
}
