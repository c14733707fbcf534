package ast_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/astralarya/kismet/internal/ast"
	"github.com/astralarya/kismet/pkg/span"
)

func atomExpr(a ast.Atom) ast.Expr {
	return ast.ExprPrimary{Primary: ast.PrimaryAtom{Atom: a}}
}

func expr(a ast.Atom) span.Node[ast.Expr] {
	return span.Of(span.At(0), atomExpr(a))
}

func TestArithDisplaySpacing(t *testing.T) {
	add := ast.OpArith{Left: expr(ast.IntegerLit{Value: 1}), Op: ast.ArithAdd, Right: expr(ast.IntegerLit{Value: 2})}
	assert.Equal(t, "1 + 2", add.String())

	mul := ast.OpArith{Left: expr(ast.IntegerLit{Value: 1}), Op: ast.ArithMul, Right: expr(ast.IntegerLit{Value: 2})}
	assert.Equal(t, "1*2", mul.String())
}

func TestTupleDisplaySingletonVsMulti(t *testing.T) {
	one := ast.Tuple{Items: []span.Node[ast.ListItem]{span.Of(span.At(0), ast.ListItem(ast.ItemExpr{Value: atomExpr(ast.IntegerLit{Value: 1})}))}}
	assert.Equal(t, "(1,)", one.String())
}

func TestDieDisplaySpecialCasesIdent(t *testing.T) {
	withIdent := ast.OpDie{Value: span.Of(span.At(0), ast.Atom(ast.Ident{Name: "x"}))}
	assert.Equal(t, "d(x)", withIdent.String())

	withNum := ast.OpDie{Value: span.Of(span.At(0), ast.Atom(ast.IntegerLit{Value: 6}))}
	assert.Equal(t, "d6", withNum.String())
}

func TestToTargetIdent(t *testing.T) {
	target, ok := ast.ToTarget(ast.Ident{Name: "x"})
	assert.True(t, ok)
	assert.Equal(t, ast.TargetIdent{Name: "x"}, target)
}

func TestToTargetRejectsLiteral(t *testing.T) {
	_, ok := ast.ToTarget(ast.IntegerLit{Value: 1})
	assert.False(t, ok)
}

func TestToTargetTuple(t *testing.T) {
	tuple := ast.Tuple{Items: []span.Node[ast.ListItem]{
		span.Of(span.At(0), ast.ListItem(ast.ItemExpr{Value: atomExpr(ast.Ident{Name: "a"})})),
		span.Of(span.At(0), ast.ListItem(ast.ItemExpr{Value: atomExpr(ast.Ident{Name: "b"})})),
	}}
	target, ok := ast.ToTarget(tuple)
	assert.True(t, ok)
	_, isTuple := target.(ast.TargetTuple)
	assert.True(t, isTuple)
}
