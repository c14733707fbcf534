package parser

import (
	"github.com/astralarya/kismet/internal/ast"
	"github.com/astralarya/kismet/internal/kerr"
	"github.com/astralarya/kismet/pkg/span"
	"github.com/astralarya/kismet/pkg/token"
)

// parsePrimaryExpr parses a primary chain (atom plus attribute/subscript/
// call suffixes) and wraps it as an Expr.
func (p *Parser) parsePrimaryExpr() (span.Node[ast.Expr], *kerr.Error) {
	prim, err := p.parsePrimary()
	if err != nil {
		return span.Node[ast.Expr]{}, err
	}
	return span.Of(prim.Span, ast.Expr(ast.ExprPrimary{Primary: prim.Value})), nil
}

func (p *Parser) parsePrimary() (span.Node[ast.Primary], *kerr.Error) {
	atom, sp, err := p.parseAtom()
	if err != nil {
		return span.Node[ast.Primary]{}, err
	}
	var prim ast.Primary = ast.PrimaryAtom{Atom: atom}
	node := span.Of(sp, prim)
	for {
		switch {
		case p.at(token.Dot):
			p.advance()
			name, nameSpan, err := p.parseAttrName()
			if err != nil {
				return span.Node[ast.Primary]{}, err
			}
			full := node.Span.Union(nameSpan)
			node = span.Of(full, ast.Primary(ast.Attribute{Base: node, Name: span.Of(nameSpan, name)}))
		case p.at(token.LBracket):
			start := p.cur().Span
			p.advance()
			var exprs []span.Node[ast.Expr]
			for {
				e, err := p.parseExpr()
				if err != nil {
					return span.Node[ast.Primary]{}, err
				}
				exprs = append(exprs, e)
				if _, ok := p.eat(token.Comma); !ok {
					break
				}
				if p.at(token.RBracket) {
					break
				}
			}
			end, err := p.expect(token.RBracket)
			if err != nil {
				return span.Node[ast.Primary]{}, err
			}
			full := node.Span.Union(start).Union(end.Span)
			node = span.Of(full, ast.Primary(ast.Subscription{Base: node, Index: exprs}))
		case p.at(token.LParen):
			args, argsSpan, err := p.parseArgs()
			if err != nil {
				return span.Node[ast.Primary]{}, err
			}
			full := node.Span.Union(argsSpan)
			node = span.Of(full, ast.Primary(ast.Call{Base: node, Args: args}))
		default:
			return node, nil
		}
	}
}

// parseAttrName accepts either an identifier or a canonical tuple-index
// number (`.0`, `.1`, ...) as an attribute name.
func (p *Parser) parseAttrName() (string, span.Span, *kerr.Error) {
	t := p.cur()
	switch t.Value.Kind {
	case token.Ident:
		p.advance()
		return t.Value.Lexeme, t.Span, nil
	case token.Number:
		if t.Value.Num.Tag == token.NumIndex {
			p.advance()
			return t.Value.Lexeme, t.Span, nil
		}
	}
	return "", span.Span{}, p.errPredicate(token.Ident)
}

// parseArgs parses a parenthesized call argument list. Positional
// arguments must all precede keyword arguments; a repeated keyword name
// overwrites its earlier entry in place (last-wins), not append again.
func (p *Parser) parseArgs() (ast.Args, span.Span, *kerr.Error) {
	start, _ := p.expect(token.LParen)
	var items []ast.Arg
	index := map[string]int{}
	sawKeyword := false
	for !p.at(token.RParen) {
		if p.at(token.Ident) && p.peek(1).Value.Kind == token.Assign {
			nameTok := p.advance()
			p.advance()
			val, err := p.parseExpr()
			if err != nil {
				return ast.Args{}, span.Span{}, err
			}
			sawKeyword = true
			if i, ok := index[nameTok.Value.Lexeme]; ok {
				items[i] = ast.Arg{Name: nameTok.Value.Lexeme, Value: val}
			} else {
				index[nameTok.Value.Lexeme] = len(items)
				items = append(items, ast.Arg{Name: nameTok.Value.Lexeme, Value: val})
			}
		} else {
			if sawKeyword {
				return ast.Args{}, span.Span{}, p.errGrammar("positional argument follows keyword argument")
			}
			val, err := p.parseExpr()
			if err != nil {
				return ast.Args{}, span.Span{}, err
			}
			items = append(items, ast.Arg{Value: val})
		}
		if _, ok := p.eat(token.Comma); !ok {
			break
		}
	}
	end, err := p.expect(token.RParen)
	if err != nil {
		return ast.Args{}, span.Span{}, err
	}
	return ast.Args{Items: items}, start.Span.Union(end.Span), nil
}

func (p *Parser) parseNumberAtom() (ast.Atom, span.Span) {
	t := p.advance()
	switch t.Value.Num.Tag {
	case token.NumFloat:
		return ast.FloatLit{Value: t.Value.Num.Float}, t.Span
	default:
		return ast.IntegerLit{Value: t.Value.Num.Int}, t.Span
	}
}

// parseAtom parses a single Atom and returns it together with its span.
func (p *Parser) parseAtom() (ast.Atom, span.Span, *kerr.Error) {
	switch p.curKind() {
	case token.Ident:
		t := p.advance()
		return ast.Ident{Name: t.Value.Lexeme}, t.Span, nil
	case token.Number:
		a, sp := p.parseNumberAtom()
		return a, sp, nil
	case token.String:
		t := p.advance()
		return ast.StringLit{Value: t.Value.Decoded}, t.Span, nil
	case token.LParen:
		return p.parseParenAtom()
	case token.LBracket:
		return p.parseBracketAtom()
	case token.LBrace:
		return p.parseBraceAtom()
	default:
		return nil, span.Span{}, p.errGrammar("expected an expression")
	}
}

func (p *Parser) parseListItem() (span.Node[ast.ListItem], *kerr.Error) {
	if p.at(token.Ellipsis) {
		start := p.cur().Span
		p.advance()
		e, err := p.parseOr()
		if err != nil {
			return span.Node[ast.ListItem]{}, err
		}
		sp := start.Union(e.Span)
		return span.Of(sp, ast.ListItem(ast.ItemSpread{Value: e})), nil
	}
	e, err := p.parseExpr()
	if err != nil {
		return span.Node[ast.ListItem]{}, err
	}
	return span.Of(e.Span, ast.ListItem(ast.ItemExpr{Value: e.Value})), nil
}

// parseParenAtom disambiguates `(expr)` grouping from `(items,)` tuples and
// `(val for ...)` generators.
func (p *Parser) parseParenAtom() (ast.Atom, span.Span, *kerr.Error) {
	start, _ := p.expect(token.LParen)
	if p.at(token.RParen) {
		end := p.advance()
		return ast.Tuple{}, start.Span.Union(end.Span), nil
	}
	first, err := p.parseListItem()
	if err != nil {
		return nil, span.Span{}, err
	}
	if p.canStartCompIter() {
		iters, err := p.parseCompIterChain()
		if err != nil {
			return nil, span.Span{}, err
		}
		end, err := p.expect(token.RParen)
		if err != nil {
			return nil, span.Span{}, err
		}
		return ast.Generator{Val: first, Iter: iters}, start.Span.Union(end.Span), nil
	}
	items := []span.Node[ast.ListItem]{first}
	trailingComma := false
	for {
		if _, ok := p.eat(token.Comma); !ok {
			break
		}
		trailingComma = true
		if p.at(token.RParen) {
			break
		}
		it, err := p.parseListItem()
		if err != nil {
			return nil, span.Span{}, err
		}
		items = append(items, it)
		trailingComma = false
	}
	end, err := p.expect(token.RParen)
	if err != nil {
		return nil, span.Span{}, err
	}
	sp := start.Span.Union(end.Span)
	if len(items) == 1 && !trailingComma {
		if ie, ok := items[0].Value.(ast.ItemExpr); ok {
			return ast.Paren{Inner: span.Of(items[0].Span, ie.Value)}, sp, nil
		}
	}
	return ast.Tuple{Items: items}, sp, nil
}

func (p *Parser) parseBracketAtom() (ast.Atom, span.Span, *kerr.Error) {
	start, _ := p.expect(token.LBracket)
	if p.at(token.RBracket) {
		end := p.advance()
		return ast.ListDisplay{}, start.Span.Union(end.Span), nil
	}
	first, err := p.parseListItem()
	if err != nil {
		return nil, span.Span{}, err
	}
	if p.canStartCompIter() {
		iters, err := p.parseCompIterChain()
		if err != nil {
			return nil, span.Span{}, err
		}
		end, err := p.expect(token.RBracket)
		if err != nil {
			return nil, span.Span{}, err
		}
		return ast.ListComprehension{Val: first, Iter: iters}, start.Span.Union(end.Span), nil
	}
	items := []span.Node[ast.ListItem]{first}
	for {
		if _, ok := p.eat(token.Comma); !ok {
			break
		}
		if p.at(token.RBracket) {
			break
		}
		it, err := p.parseListItem()
		if err != nil {
			return nil, span.Span{}, err
		}
		items = append(items, it)
	}
	end, err := p.expect(token.RBracket)
	if err != nil {
		return nil, span.Span{}, err
	}
	return ast.ListDisplay{Items: items}, start.Span.Union(end.Span), nil
}

// parseBraceAtom disambiguates a dict display/comprehension from a block.
// Ambiguous single-name content (`{x}`) resolves to a block, matching the
// common precedent of a bare brace body defaulting to a statement block
// rather than an object literal.
func (p *Parser) parseBraceAtom() (ast.Atom, span.Span, *kerr.Error) {
	start, _ := p.expect(token.LBrace)
	if p.at(token.RBrace) {
		end := p.advance()
		return ast.DictDisplay{}, start.Span.Union(end.Span), nil
	}
	if p.looksLikeDictStart() {
		return p.parseDictOrCompAtom(start)
	}
	var items []span.Node[ast.Expr]
	p.skipDelimiters()
	for !p.at(token.RBrace) {
		e, err := p.parseExpr()
		if err != nil {
			return nil, span.Span{}, err
		}
		items = append(items, e)
		if !p.at(token.RBrace) && !p.at(token.Delimiter) {
			return nil, span.Span{}, p.errGrammar("expected a delimiter between block expressions")
		}
		p.skipDelimiters()
	}
	end, err := p.expect(token.RBrace)
	if err != nil {
		return nil, span.Span{}, err
	}
	return ast.BlockAtom{Items: items}, start.Span.Union(end.Span), nil
}

// looksLikeDictStart peeks past the current brace's first item to decide
// dict vs. block without full backtracking.
func (p *Parser) looksLikeDictStart() bool {
	switch p.curKind() {
	case token.Ellipsis, token.LBracket:
		return true
	case token.Ident, token.String:
		return p.peek(1).Value.Kind == token.Colon ||
			p.peek(1).Value.Kind == token.Comma
	default:
		return false
	}
}

func (p *Parser) parseDictItem() (span.Node[ast.DictItem], *kerr.Error) {
	switch {
	case p.at(token.Ellipsis):
		start := p.cur().Span
		p.advance()
		e, err := p.parseOr()
		if err != nil {
			return span.Node[ast.DictItem]{}, err
		}
		sp := start.Union(e.Span)
		return span.Of(sp, ast.DictItem(ast.DictSpread{Value: e})), nil
	case p.at(token.LBracket):
		start := p.cur().Span
		p.advance()
		key, err := p.parseOr()
		if err != nil {
			return span.Node[ast.DictItem]{}, err
		}
		if _, err := p.expect(token.RBracket); err != nil {
			return span.Node[ast.DictItem]{}, err
		}
		if _, err := p.expect(token.Colon); err != nil {
			return span.Node[ast.DictItem]{}, err
		}
		val, err := p.parseExpr()
		if err != nil {
			return span.Node[ast.DictItem]{}, err
		}
		sp := start.Union(val.Span)
		return span.Of(sp, ast.DictItem(ast.DictDynKeyVal{Key: key, Val: val})), nil
	case p.at(token.Ident) || p.at(token.String):
		t := p.advance()
		name := t.Value.Lexeme
		if t.Value.Kind == token.String {
			name = t.Value.Decoded
		}
		if !p.at(token.Colon) {
			return span.Of(t.Span, ast.DictItem(ast.DictShorthand{Name: name})), nil
		}
		p.advance()
		val, err := p.parseExpr()
		if err != nil {
			return span.Node[ast.DictItem]{}, err
		}
		sp := t.Span.Union(val.Span)
		return span.Of(sp, ast.DictItem(ast.DictKeyVal{Key: span.Of(t.Span, name), Val: val})), nil
	default:
		return span.Node[ast.DictItem]{}, p.errGrammar("expected a dict item")
	}
}

func (p *Parser) parseDictOrCompAtom(start span.Node[token.Token]) (ast.Atom, span.Span, *kerr.Error) {
	first, err := p.parseDictItem()
	if err != nil {
		return nil, span.Span{}, err
	}
	if p.canStartCompIter() {
		compFirst, ok := dictItemToComp(first)
		if !ok {
			return nil, span.Span{}, p.errGrammar("a dict comprehension item must be a spread or dynamic key/value pair")
		}
		iters, err := p.parseCompIterChain()
		if err != nil {
			return nil, span.Span{}, err
		}
		end, err := p.expect(token.RBrace)
		if err != nil {
			return nil, span.Span{}, err
		}
		return ast.DictComprehension{Val: compFirst, Iter: iters}, start.Span.Union(end.Span), nil
	}
	items := []span.Node[ast.DictItem]{first}
	for {
		if _, ok := p.eat(token.Comma); !ok {
			break
		}
		if p.at(token.RBrace) {
			break
		}
		it, err := p.parseDictItem()
		if err != nil {
			return nil, span.Span{}, err
		}
		items = append(items, it)
	}
	end, err := p.expect(token.RBrace)
	if err != nil {
		return nil, span.Span{}, err
	}
	return ast.DictDisplay{Items: items}, start.Span.Union(end.Span), nil
}

func dictItemToComp(n span.Node[ast.DictItem]) (span.Node[ast.DictItemComp], bool) {
	switch v := n.Value.(type) {
	case ast.DictDynKeyVal:
		return span.Of(n.Span, ast.DictItemComp(ast.DictCompDynKeyVal{Key: v.Key, Val: v.Val})), true
	case ast.DictSpread:
		return span.Of(n.Span, ast.DictItemComp(ast.DictCompSpread{Value: v.Value})), true
	default:
		return span.Node[ast.DictItemComp]{}, false
	}
}

func (p *Parser) canStartCompIter() bool {
	return p.at(token.KwFor)
}

func (p *Parser) parseCompIterChain() ([]span.Node[ast.CompIter], *kerr.Error) {
	var out []span.Node[ast.CompIter]
	for p.at(token.KwFor) || p.at(token.KwIf) {
		if p.at(token.KwFor) {
			start := p.cur().Span
			p.advance()
			target, err := p.parseTarget()
			if err != nil {
				return nil, err
			}
			if _, err := p.expect(token.KwIn); err != nil {
				return nil, err
			}
			val, err := p.parseOr()
			if err != nil {
				return nil, err
			}
			sp := start.Union(val.Span)
			out = append(out, span.Of(sp, ast.CompIter(ast.CompIterFor{Target: target, Value: val})))
		} else {
			start := p.cur().Span
			p.advance()
			cond, err := p.parseOr()
			if err != nil {
				return nil, err
			}
			sp := start.Union(cond.Span)
			out = append(out, span.Of(sp, ast.CompIter(ast.CompIterIf{Cond: cond})))
		}
	}
	return out, nil
}

// parseTarget parses a restricted expression (no walrus/assignment) and
// coerces it to a Target, used at binder positions (`for`, function
// parameters).
func (p *Parser) parseTarget() (span.Node[ast.Target], *kerr.Error) {
	e, err := p.parseOr()
	if err != nil {
		return span.Node[ast.Target]{}, err
	}
	tar, ok := exprToTarget(e)
	if !ok {
		return span.Node[ast.Target]{}, kerr.New(kerr.StageParse, kerr.Grammar, e.Span, "expected a binding target")
	}
	return tar, nil
}
