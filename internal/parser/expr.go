package parser

import (
	"github.com/astralarya/kismet/internal/ast"
	"github.com/astralarya/kismet/internal/kerr"
	"github.com/astralarya/kismet/pkg/span"
	"github.com/astralarya/kismet/pkg/token"
)

// parseExpr is the grammar's single entry point: expr ::= walrus, with
// branch/loop/function forms recognized ahead of the operator ladder since
// they have their own unambiguous leading token.
func (p *Parser) parseExpr() (span.Node[ast.Expr], *kerr.Error) {
	switch {
	case p.at(token.KwIf):
		return p.parseIf()
	case p.at(token.KwMatch):
		return p.parseMatch()
	case p.at(token.KwFor), p.at(token.KwWhile), p.at(token.KwLoop):
		return p.parseLoop(nil)
	case p.at(token.Colon):
		return p.parseLabeledLoop()
	}
	if fn, ok, err := p.tryParseFunction(); err != nil {
		return span.Node[ast.Expr]{}, err
	} else if ok {
		return fn, nil
	}
	return p.parseWalrus()
}

// parseWalrus handles `target := value`, right-associative so that
// `a := b := c` assigns c to b, then the result to a.
func (p *Parser) parseWalrus() (span.Node[ast.Expr], *kerr.Error) {
	lhs, err := p.parseOr()
	if err != nil {
		return span.Node[ast.Expr]{}, err
	}
	if !p.at(token.Walrus) {
		return lhs, nil
	}
	p.advance()
	target, ok := exprToTarget(lhs)
	if !ok {
		return span.Node[ast.Expr]{}, kerr.New(kerr.StageParse, kerr.Grammar, lhs.Span, "left-hand side is not a valid assignment target")
	}
	rhs, err := p.parseWalrus()
	if err != nil {
		return span.Node[ast.Expr]{}, err
	}
	sp := lhs.Span.Union(rhs.Span)
	return span.Of(sp, ast.Expr(ast.Assign{Target: target, Value: rhs})), nil
}

// exprToTarget mirrors ast.ToTarget's coercion for the single case the
// parser needs: a bare atom expression reduced to its target form.
func exprToTarget(n span.Node[ast.Expr]) (span.Node[ast.Target], bool) {
	primary, ok := n.Value.(ast.ExprPrimary)
	if !ok {
		return span.Node[ast.Target]{}, false
	}
	atomPrimary, ok := primary.Primary.(ast.PrimaryAtom)
	if !ok {
		return span.Node[ast.Target]{}, false
	}
	tar, ok := ast.ToTarget(atomPrimary.Atom)
	if !ok {
		return span.Node[ast.Target]{}, false
	}
	return span.Of(n.Span, tar), true
}

func (p *Parser) parseOr() (span.Node[ast.Expr], *kerr.Error) {
	lhs, err := p.parseAnd()
	if err != nil {
		return span.Node[ast.Expr]{}, err
	}
	if !p.at(token.KwOr) {
		return lhs, nil
	}
	p.advance()
	rhs, err := p.parseOr()
	if err != nil {
		return span.Node[ast.Expr]{}, err
	}
	sp := lhs.Span.Union(rhs.Span)
	return span.Of(sp, ast.Expr(ast.ExprOp{Op: ast.OpOr{Left: lhs, Right: rhs}})), nil
}

func (p *Parser) parseAnd() (span.Node[ast.Expr], *kerr.Error) {
	lhs, err := p.parseNot()
	if err != nil {
		return span.Node[ast.Expr]{}, err
	}
	if !p.at(token.KwAnd) {
		return lhs, nil
	}
	p.advance()
	rhs, err := p.parseAnd()
	if err != nil {
		return span.Node[ast.Expr]{}, err
	}
	sp := lhs.Span.Union(rhs.Span)
	return span.Of(sp, ast.Expr(ast.ExprOp{Op: ast.OpAnd{Left: lhs, Right: rhs}})), nil
}

func (p *Parser) parseNot() (span.Node[ast.Expr], *kerr.Error) {
	if p.at(token.KwNot) {
		start := p.cur().Span
		p.advance()
		v, err := p.parseCompare()
		if err != nil {
			return span.Node[ast.Expr]{}, err
		}
		sp := start.Union(v.Span)
		return span.Of(sp, ast.Expr(ast.ExprOp{Op: ast.OpNot{Value: v}})), nil
	}
	return p.parseCompare()
}

func compareOpOf(k token.Kind) (ast.CompareOp, bool) {
	switch k {
	case token.Eq:
		return ast.CmpEQ, true
	case token.Ne:
		return ast.CmpNE, true
	case token.Lt:
		return ast.CmpLT, true
	case token.Le:
		return ast.CmpLE, true
	case token.Gt:
		return ast.CmpGT, true
	case token.Ge:
		return ast.CmpGE, true
	default:
		return 0, false
	}
}

// parseCompare implements the "chained exactly twice" comparison rule: a
// third comparison operator is never consumed here, it starts a new
// top-level expression/parse error at a higher level instead.
func (p *Parser) parseCompare() (span.Node[ast.Expr], *kerr.Error) {
	lhs, err := p.parseRange()
	if err != nil {
		return span.Node[ast.Expr]{}, err
	}
	op1, ok := compareOpOf(p.curKind())
	if !ok {
		return lhs, nil
	}
	p.advance()
	mid, err := p.parseRange()
	if err != nil {
		return span.Node[ast.Expr]{}, err
	}
	op2, ok := compareOpOf(p.curKind())
	if !ok {
		sp := lhs.Span.Union(mid.Span)
		return span.Of(sp, ast.Expr(ast.ExprOp{Op: ast.OpCompare{Left: lhs, Op: op1, Right: mid}})), nil
	}
	p.advance()
	rhs, err := p.parseRange()
	if err != nil {
		return span.Node[ast.Expr]{}, err
	}
	sp := lhs.Span.Union(rhs.Span)
	return span.Of(sp, ast.Expr(ast.ExprOp{Op: ast.OpCompareBound{
		LVal: lhs, LOp: op1, Val: mid, ROp: op2, RVal: rhs,
	}})), nil
}

// canStartAdd reports whether the current token can begin an add-level
// expression, used by parseRange to tell a bound from an absent one.
func (p *Parser) canStartAdd() bool {
	switch p.curKind() {
	case token.Plus, token.Minus, token.Die, token.Ident, token.Number,
		token.String, token.LParen, token.LBracket, token.LBrace:
		return true
	default:
		return false
	}
}

func (p *Parser) parseRange() (span.Node[ast.Expr], *kerr.Error) {
	var start *span.Node[ast.Expr]
	startSpan := p.cur().Span
	if p.canStartAdd() {
		s, err := p.parseAdd()
		if err != nil {
			return span.Node[ast.Expr]{}, err
		}
		start = &s
		startSpan = s.Span
	}
	if !p.at(token.DotDot) && !p.at(token.DotDotEq) {
		if start == nil {
			return span.Node[ast.Expr]{}, p.errGrammar("expected an expression")
		}
		return *start, nil
	}
	incl := p.at(token.DotDotEq)
	opSpan := p.cur().Span
	p.advance()
	var end *span.Node[ast.Expr]
	endSpan := opSpan
	if p.canStartAdd() {
		e, err := p.parseAdd()
		if err != nil {
			return span.Node[ast.Expr]{}, err
		}
		end = &e
		endSpan = e.Span
	}
	sp := startSpan.Union(endSpan)
	var rng ast.Range
	switch {
	case start != nil && end != nil && incl:
		rng = ast.RangeIncl{Start: *start, End: *end}
	case start != nil && end != nil:
		rng = ast.RangeBounded{Start: *start, End: *end}
	case start != nil:
		rng = ast.RangeFrom{Start: *start}
	case end != nil && incl:
		rng = ast.RangeToIncl{End: *end}
	case end != nil:
		rng = ast.RangeTo{End: *end}
	default:
		rng = ast.RangeFull{}
	}
	return span.Of(sp, ast.Expr(ast.ExprOp{Op: ast.OpRange{Range: rng}})), nil
}

func (p *Parser) parseAdd() (span.Node[ast.Expr], *kerr.Error) {
	lhs, err := p.parseMul()
	if err != nil {
		return span.Node[ast.Expr]{}, err
	}
	var op ast.ArithOp
	switch p.curKind() {
	case token.Plus:
		op = ast.ArithAdd
	case token.Minus:
		op = ast.ArithSub
	default:
		return lhs, nil
	}
	p.advance()
	rhs, err := p.parseAdd()
	if err != nil {
		return span.Node[ast.Expr]{}, err
	}
	sp := lhs.Span.Union(rhs.Span)
	return span.Of(sp, ast.Expr(ast.ExprOp{Op: ast.OpArith{Left: lhs, Op: op, Right: rhs}})), nil
}

func (p *Parser) parseMul() (span.Node[ast.Expr], *kerr.Error) {
	lhs, err := p.parsePow()
	if err != nil {
		return span.Node[ast.Expr]{}, err
	}
	var op ast.ArithOp
	switch p.curKind() {
	case token.Star:
		op = ast.ArithMul
	case token.Slash:
		op = ast.ArithDiv
	case token.SlashPercent:
		op = ast.ArithIDiv
	case token.Percent:
		op = ast.ArithMod
	default:
		return lhs, nil
	}
	p.advance()
	rhs, err := p.parseMul()
	if err != nil {
		return span.Node[ast.Expr]{}, err
	}
	sp := lhs.Span.Union(rhs.Span)
	return span.Of(sp, ast.Expr(ast.ExprOp{Op: ast.OpArith{Left: lhs, Op: op, Right: rhs}})), nil
}

func (p *Parser) parsePow() (span.Node[ast.Expr], *kerr.Error) {
	lhs, err := p.parseUnary()
	if err != nil {
		return span.Node[ast.Expr]{}, err
	}
	if !p.at(token.Caret) {
		return lhs, nil
	}
	p.advance()
	rhs, err := p.parsePow()
	if err != nil {
		return span.Node[ast.Expr]{}, err
	}
	sp := lhs.Span.Union(rhs.Span)
	return span.Of(sp, ast.Expr(ast.ExprOp{Op: ast.OpArith{Left: lhs, Op: ast.ArithPow, Right: rhs}})), nil
}

func (p *Parser) parseUnary() (span.Node[ast.Expr], *kerr.Error) {
	var op ast.ArithOp
	switch p.curKind() {
	case token.Plus:
		op = ast.ArithAdd
	case token.Minus:
		op = ast.ArithSub
	default:
		return p.parseCoeff()
	}
	start := p.cur().Span
	p.advance()
	v, err := p.parseCoeff()
	if err != nil {
		return span.Node[ast.Expr]{}, err
	}
	sp := start.Union(v.Span)
	return span.Of(sp, ast.Expr(ast.ExprOp{Op: ast.OpUnary{Op: op, Value: v}})), nil
}

// canStartDieOrPrimary reports whether the current token can begin the
// `die` production (a literal 'd' or a primary), used by parseCoeff to
// decide whether a leading number is a dice coefficient.
func (p *Parser) canStartDieOrPrimary() bool {
	switch p.curKind() {
	case token.Die, token.Ident, token.Number, token.String,
		token.LParen, token.LBracket, token.LBrace:
		return true
	default:
		return false
	}
}

// parseCoeff implements `coeff ::= NUM? die | NUM`: a bare number, a bare
// die roll, or a number directly prefixing a die roll/primary (an implicit
// coefficient, e.g. `2d6` or `3(1, 2)`).
func (p *Parser) parseCoeff() (span.Node[ast.Expr], *kerr.Error) {
	if !p.at(token.Number) {
		return p.parseDie()
	}
	numAtom, numSpan := p.parseNumberAtom()
	if !p.canStartDieOrPrimary() {
		return span.Of(numSpan, ast.Expr(ast.ExprPrimary{Primary: ast.PrimaryAtom{Atom: numAtom}})), nil
	}
	val, err := p.parseDie()
	if err != nil {
		return span.Node[ast.Expr]{}, err
	}
	sp := numSpan.Union(val.Span)
	return span.Of(sp, ast.Expr(ast.ExprOp{Op: ast.OpCoefficient{
		Coeff: span.Of(numSpan, numAtom),
		Value: val,
	}})), nil
}

// parseDie implements `die ::= 'd' NUM | primary`. The die operand is a
// full Atom (not just a number) so that `d(expr)` and `d name` parse too;
// OpDie's Display special-cases an Ident operand to avoid re-lexing it as
// part of the `d` token.
func (p *Parser) parseDie() (span.Node[ast.Expr], *kerr.Error) {
	if !p.at(token.Die) {
		return p.parsePrimaryExpr()
	}
	start := p.cur().Span
	p.advance()
	atom, sp, err := p.parseAtom()
	if err != nil {
		return span.Node[ast.Expr]{}, err
	}
	full := start.Union(sp)
	return span.Of(full, ast.Expr(ast.ExprOp{Op: ast.OpDie{Value: span.Of(sp, atom)}})), nil
}
