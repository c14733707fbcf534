package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolvePrintSetDefaultsWhenEmpty(t *testing.T) {
	set, err := resolvePrintSet(nil)
	require.NoError(t, err)
	assert.Equal(t, map[string]bool{"output": true, "error": true}, set)
}

func TestResolvePrintSetHonorsExplicitFlags(t *testing.T) {
	set, err := resolvePrintSet([]string{"ast", "loopback"})
	require.NoError(t, err)
	assert.True(t, set["ast"])
	assert.True(t, set["loopback"])
	assert.False(t, set["output"])
}

func TestResolvePrintSetRejectsUnknownKind(t *testing.T) {
	_, err := resolvePrintSet([]string{"bogus"})
	assert.Error(t, err)
}
