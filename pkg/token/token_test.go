package token

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLookupKeywordCaseFold(t *testing.T) {
	k, ok := LookupKeyword("IF")
	assert.True(t, ok)
	assert.Equal(t, KwIf, k)

	_, ok = LookupKeyword("NOTAKEYWORD")
	assert.False(t, ok)
}

func TestNumberTokenString(t *testing.T) {
	assert.Equal(t, "Integer(6)", Token{Kind: Number, Num: Number{Tag: NumInteger, Int: 6}}.String())
	assert.Equal(t, "Index(0)", Token{Kind: Number, Num: Number{Tag: NumIndex, Index: 0}}.String())
}

func TestKindHumanFallback(t *testing.T) {
	assert.Equal(t, "unknown", Kind(9999).Human())
}
