package lower_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/astralarya/kismet/internal/hir"
	"github.com/astralarya/kismet/internal/kerr"
	"github.com/astralarya/kismet/internal/lower"
	"github.com/astralarya/kismet/internal/parser"
)

func lowerSrc(t *testing.T, src string) (hir.Value, *kerr.Error) {
	t.Helper()
	prog, perr := parser.Parse(src)
	require.Nil(t, perr, "parse %q: %v", src, perr)
	block, lerr := lower.Program(prog.Value)
	if lerr != nil {
		return nil, lerr
	}
	require.Len(t, block.Items, 1)
	instr, ok := block.Items[0].Value.(hir.InstrValue)
	require.True(t, ok, "expected constant-folded literal for %q, got %#v", src, block.Items[0].Value)
	return instr.Value, nil
}

func TestIntIntStaysInt(t *testing.T) {
	v, err := lowerSrc(t, "2+3")
	require.Nil(t, err)
	assert.Equal(t, hir.Integer(5), v)
}

func TestIntOverflowPromotesToFloat(t *testing.T) {
	v, err := lowerSrc(t, "2000000000+2000000000")
	require.Nil(t, err)
	_, ok := v.(hir.Float)
	assert.True(t, ok)
}

func TestIntDivIsFloat(t *testing.T) {
	v, err := lowerSrc(t, "7/2")
	require.Nil(t, err)
	assert.Equal(t, hir.Float(3.5), v)
}

func TestIntIDivStaysInt(t *testing.T) {
	v, err := lowerSrc(t, "7/%2")
	require.Nil(t, err)
	assert.Equal(t, hir.Integer(3), v)
}

func TestDivByZeroFallsBackToFloat(t *testing.T) {
	v, err := lowerSrc(t, "1/%0")
	require.Nil(t, err)
	_, ok := v.(hir.Float)
	assert.True(t, ok)
}

func TestZeroPowZeroIsOneForInts(t *testing.T) {
	v, err := lowerSrc(t, "0^0")
	require.Nil(t, err)
	assert.Equal(t, hir.Integer(1), v)
}

func TestStringConcat(t *testing.T) {
	v, err := lowerSrc(t, `"foo" + "bar"`)
	require.Nil(t, err)
	assert.Equal(t, hir.String("foobar"), v)
}

func TestStringMinusIsInvalidOp(t *testing.T) {
	_, err := lowerSrc(t, `"foo" - "bar"`)
	require.NotNil(t, err)
	assert.Equal(t, kerr.InvalidOp, err.Kind)
}

func TestStringPlusNumberIsTypeMismatch(t *testing.T) {
	_, err := lowerSrc(t, `"foo" + 1`)
	require.NotNil(t, err)
	assert.Equal(t, kerr.TypeMismatch, err.Kind)
}

func TestListPlusListIsInvalidOp(t *testing.T) {
	_, err := lowerSrc(t, "[1] + [2]")
	require.NotNil(t, err)
	assert.Equal(t, kerr.StageLower, err.Stage)
	assert.Equal(t, kerr.InvalidOp, err.Kind)
}

func TestAssignToTupleTargetIsInvalidTarget(t *testing.T) {
	prog, perr := parser.Parse("(a, b) := (1, 2)")
	require.Nil(t, perr)
	_, lerr := lower.Program(prog.Value)
	require.NotNil(t, lerr)
	assert.Equal(t, kerr.InvalidTarget, lerr.Kind)
}

func TestDiceCoefficientIsUnimplemented(t *testing.T) {
	prog, perr := parser.Parse("2d6")
	require.Nil(t, perr)
	_, lerr := lower.Program(prog.Value)
	require.NotNil(t, lerr)
	assert.Equal(t, kerr.Unimplemented, lerr.Kind)
}
