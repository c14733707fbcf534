package span

import "testing"

import "github.com/stretchr/testify/assert"

func TestUnion(t *testing.T) {
	a := New(2, 5)
	b := New(1, 3)
	assert.Equal(t, New(1, 5), a.Union(b))
	assert.Equal(t, New(1, 5), b.Union(a))
}

func TestAddNilIsIdentity(t *testing.T) {
	a := New(3, 9)
	assert.Equal(t, a, a.Add(nil))
	b := New(0, 1)
	assert.Equal(t, a.Union(b), a.Add(&b))
}

func TestSlice(t *testing.T) {
	src := "hello world"
	s := New(6, 11)
	assert.Equal(t, "world", s.Slice(src))
}

func TestLen(t *testing.T) {
	assert.Equal(t, 4, New(10, 14).Len())
	assert.Equal(t, 0, At(5).Len())
}

func TestOfRoundTrips(t *testing.T) {
	n := Of(New(0, 3), 42)
	assert.Equal(t, 42, n.Value)
	assert.Equal(t, New(0, 3), n.Span)
}
