package hir

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPrimitiveDisplay(t *testing.T) {
	assert.Equal(t, "true", Boolean(true).String())
	assert.Equal(t, "false", Boolean(false).String())
	assert.Equal(t, "null", Null{}.String())
	assert.Equal(t, "undefined", Undefined{}.String())
	assert.Equal(t, "42", Integer(42).String())
	assert.Equal(t, "foo", String("foo").String())
}

func TestFloatDisplayTrailingDot(t *testing.T) {
	assert.Equal(t, "1.", Float(1).String())
	assert.Equal(t, "0.5", Float(0.5).String())
}

func TestFloatDisplayScientificAtExtremes(t *testing.T) {
	assert.Contains(t, Float(1e17).String(), "e")
	assert.Contains(t, Float(1e-5).String(), "e")
	assert.NotContains(t, Float(1e10).String(), "e")
}

func TestTupleDisplay(t *testing.T) {
	assert.Equal(t, "()", TupleVal{}.String())
	assert.Equal(t, "(1,)", TupleVal{Items: []Value{Integer(1)}}.String())
	assert.Equal(t, "(1, 2, 3)", TupleVal{Items: []Value{Integer(1), Integer(2), Integer(3)}}.String())
}

func TestListDisplay(t *testing.T) {
	assert.Equal(t, "[1, 2]", ListVal{Items: []Value{Integer(1), Integer(2)}}.String())
}

func TestDictDisplayInsertionOrderAndOverwrite(t *testing.T) {
	d := NewDictVal()
	d.Set("a", Integer(1))
	d.Set("b", Integer(2))
	d.Set("a", Integer(9))
	assert.Equal(t, "{a: 9, b: 2}", d.String())
	assert.Equal(t, []string{"a", "b"}, d.Keys)
}
