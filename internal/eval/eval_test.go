package eval_test

import (
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/astralarya/kismet/internal/eval"
	"github.com/astralarya/kismet/internal/kerr"
	"github.com/astralarya/kismet/internal/lower"
	"github.com/astralarya/kismet/internal/parser"
)

func run(t *testing.T, src string) (string, *kerr.Error) {
	t.Helper()
	prog, perr := parser.Parse(src)
	require.Nil(t, perr, "parse %q: %v", src, perr)
	block, lerr := lower.Program(prog.Value)
	if lerr != nil {
		return "", lerr
	}
	val, eerr := eval.Block(block, eval.New())
	if eerr != nil {
		return "", eerr
	}
	return val.String(), nil
}

// TestSpecScenarios exercises kismet's core arithmetic, binding, tuple,
// dict, and string-concat semantics end to end.
func TestSpecScenarios(t *testing.T) {
	cases := []struct {
		name string
		src  string
		want string
	}{
		{"add", "2+3", "5"},
		{"precedence", "2^5+3*4^6", "12320"},
		{"unary_times_neg", "2*-3", "-6"},
		{"walrus_then_use", "x := 7; x + 1", "8"},
		{"tuple_three", "(1, 2, 3)", "(1, 2, 3)"},
		{"tuple_singleton", "(1,)", "(1,)"},
		{"tuple_empty", "()", "()"},
		{"dict_last_wins", "{a: 1, a: 2}", "{a: 2}"},
		{"string_concat", `"foo" + "bar"`, "foobar"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := run(t, c.src)
			require.Nil(t, err, "eval %q: %v", c.src, err)
			assert.Equal(t, c.want, got)
			snaps.MatchSnapshot(t, c.name, got)
		})
	}
}

func TestListPlusListIsLoweringError(t *testing.T) {
	_, err := run(t, "[1, 2] + [3]")
	require.NotNil(t, err)
	assert.Equal(t, kerr.StageLower, err.Stage)
	assert.Equal(t, kerr.InvalidOp, err.Kind)
}

func TestZeroPowZeroIsOne(t *testing.T) {
	got, err := run(t, "0^0")
	require.Nil(t, err)
	assert.Equal(t, "1", got)

	got, err = run(t, "0.0^0.0")
	require.Nil(t, err)
	assert.Equal(t, "1.", got)
}

func TestFailedEvalDoesNotMutateSymtab(t *testing.T) {
	symtab := eval.New()
	prog, perr := parser.Parse("x := 1")
	require.Nil(t, perr)
	block, lerr := lower.Program(prog.Value)
	require.Nil(t, lerr)
	_, eerr := eval.Block(block, symtab)
	require.Nil(t, eerr)

	prog2, perr2 := parser.Parse(`x := "oops"; [x] + [2]`)
	require.Nil(t, perr2)
	block2, lerr2 := lower.Program(prog2.Value)
	require.Nil(t, lerr2)
	_, eerr2 := eval.Block(block2, symtab)
	require.NotNil(t, eerr2)

	assert.Equal(t, "1", symtab.Get("x").String())
}

func TestUndefinedOnFirstRead(t *testing.T) {
	got, err := run(t, "never_set")
	require.Nil(t, err)
	assert.Equal(t, "undefined", got)
}
