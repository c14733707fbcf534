// Package span provides the byte-range position type shared by every token
// and syntax node produced by the kismet front end.
package span

import "fmt"

// Span is a half-open byte range [Start, End) into an original source
// string. A Span never extends past the length of the source it was cut
// from; callers are responsible for clamping before construction.
type Span struct {
	Start int
	End   int
}

// New returns the span [start, end).
func New(start, end int) Span {
	return Span{Start: start, End: end}
}

// At returns the zero-width span at pos, i.e. [pos, pos).
func At(pos int) Span {
	return Span{Start: pos, End: pos}
}

// Len returns the number of bytes the span covers.
func (s Span) Len() int {
	return s.End - s.Start
}

// Slice returns the substring of src that s addresses.
func (s Span) Slice(src string) string {
	return src[s.Start:s.End]
}

// Union returns the smallest span covering both s and o:
// min(starts), max(ends).
func (s Span) Union(o Span) Span {
	start := s.Start
	if o.Start < start {
		start = o.Start
	}
	end := s.End
	if o.End > end {
		end = o.End
	}
	return Span{Start: start, End: end}
}

// Add unions s with o if o is non-nil; a nil span acts as the identity
// element, so Add lets callers fold an optional span into a running union
// without a branch at every call site.
func (s Span) Add(o *Span) Span {
	if o == nil {
		return s
	}
	return s.Union(*o)
}

func (s Span) String() string {
	return fmt.Sprintf("%d..%d", s.Start, s.End)
}

// Node pairs a Span with an owned payload. Every AST and HIR node is a
// Node of some payload type; nodes are immutable after construction.
type Node[T any] struct {
	Span  Span
	Value T
}

// Of constructs a Node wrapping value with the given span.
func Of[T any](sp Span, value T) Node[T] {
	return Node[T]{Span: sp, Value: value}
}
