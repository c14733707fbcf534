package ast

import "github.com/astralarya/kismet/pkg/span"

// Range is one of the six bound/unbound range shapes the grammar accepts.
type Range interface {
	rangeNode()
	String() string
}

type RangeFull struct{}

func (RangeFull) rangeNode()      {}
func (RangeFull) String() string { return ".." }

type RangeFrom struct{ Start span.Node[Expr] }

func (RangeFrom) rangeNode()      {}
func (r RangeFrom) String() string { return r.Start.Value.String() + ".." }

type RangeTo struct{ End span.Node[Expr] }

func (RangeTo) rangeNode()      {}
func (r RangeTo) String() string { return ".." + r.End.Value.String() }

type RangeToIncl struct{ End span.Node[Expr] }

func (RangeToIncl) rangeNode()      {}
func (r RangeToIncl) String() string { return "..=" + r.End.Value.String() }

type RangeBounded struct{ Start, End span.Node[Expr] }

func (RangeBounded) rangeNode() {}
func (r RangeBounded) String() string {
	return r.Start.Value.String() + ".." + r.End.Value.String()
}

type RangeIncl struct{ Start, End span.Node[Expr] }

func (RangeIncl) rangeNode() {}
func (r RangeIncl) String() string {
	return r.Start.Value.String() + "..=" + r.End.Value.String()
}
