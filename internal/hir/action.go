package hir

import "github.com/astralarya/kismet/pkg/span"

// Action is an HIR node representing a construction that could not be
// fully reduced to a Value at lowering time and must be evaluated at
// runtime: a tuple, list, or dict display with at least one item that did
// not fold to a Value (a variable, a spread, a dynamic key, a shorthand
// name).
type Action interface {
	actionNode()
}

type ActionTuple struct{ Items []span.Node[ListItem] }

func (ActionTuple) actionNode() {}

type ActionListDisplay struct{ Items []span.Node[ListItem] }

func (ActionListDisplay) actionNode() {}

type ActionDictDisplay struct{ Items []span.Node[DictItem] }

func (ActionDictDisplay) actionNode() {}

// ListItem is one element of a Tuple/ListDisplay action: a plain
// expression instruction, or a spread of a collection instruction.
type ListItem interface {
	listItemNode()
}

type ListItemExpr struct{ Value span.Node[Instruction] }

func (ListItemExpr) listItemNode() {}

type ListItemSpread struct{ Value span.Node[Instruction] }

func (ListItemSpread) listItemNode() {}

// DictItem is one element of a DictDisplay action.
type DictItem interface {
	dictItemNode()
}

type DictItemKeyVal struct {
	Key string
	Val span.Node[Instruction]
}

func (DictItemKeyVal) dictItemNode() {}

type DictItemDynKeyVal struct {
	Key span.Node[Instruction]
	Val span.Node[Instruction]
}

func (DictItemDynKeyVal) dictItemNode() {}

type DictItemShorthand struct{ Name string }

func (DictItemShorthand) dictItemNode() {}

type DictItemSpread struct{ Value span.Node[Instruction] }

func (DictItemSpread) dictItemNode() {}
