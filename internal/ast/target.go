package ast

import "github.com/astralarya/kismet/pkg/span"

// Target is a legal assignment left-hand side or binder: an identifier, or
// a tuple/list/dict of nested targets (with spread). An Atom -> Target
// conversion (see ToTarget) is how the parser and lowering share this
// grammar with ordinary expression syntax instead of duplicating it.
type Target interface {
	targetNode()
	String() string
}

type TargetIdent struct{ Name string }

func (TargetIdent) targetNode()      {}
func (t TargetIdent) String() string { return t.Name }

type TargetTuple struct{ Items []span.Node[TargetListItem] }

func (TargetTuple) targetNode() {}
func (t TargetTuple) String() string {
	if len(t.Items) == 1 {
		return "(" + t.Items[0].Value.String() + ",)"
	}
	return "(" + joinTargetListItems(t.Items, ", ") + ")"
}

type TargetList struct{ Items []span.Node[TargetListItem] }

func (TargetList) targetNode() {}
func (t TargetList) String() string {
	return "[" + joinTargetListItems(t.Items, ", ") + "]"
}

type TargetDict struct{ Items []span.Node[TargetDictItem] }

func (TargetDict) targetNode() {}
func (t TargetDict) String() string {
	return "{" + joinTargetDictItems(t.Items, ", ") + "}"
}

// TargetListItem is one element of a tuple/list target: a nested target or
// a spread of one.
type TargetListItem interface {
	targetListItemNode()
	String() string
}

type TargetListItemTarget struct{ Target Target }

func (TargetListItemTarget) targetListItemNode() {}
func (t TargetListItemTarget) String() string    { return t.Target.String() }

type TargetListItemSpread struct{ Target span.Node[Target] }

func (TargetListItemSpread) targetListItemNode() {}
func (t TargetListItemSpread) String() string    { return "..." + t.Target.Value.String() }

// TargetDictItem is one element of a dict target: `key: target`, a bare
// shorthand name, or a spread.
type TargetDictItem interface {
	targetDictItemNode()
	String() string
}

type TargetDictItemPair struct {
	Key    span.Node[string]
	Target span.Node[Target]
}

func (TargetDictItemPair) targetDictItemNode() {}
func (t TargetDictItemPair) String() string {
	return t.Key.Value + ": " + t.Target.Value.String()
}

type TargetDictItemShorthand struct{ Name string }

func (TargetDictItemShorthand) targetDictItemNode() {}
func (t TargetDictItemShorthand) String() string    { return t.Name }

type TargetDictItemSpread struct{ Target span.Node[Target] }

func (TargetDictItemSpread) targetDictItemNode() {}
func (t TargetDictItemSpread) String() string    { return "..." + t.Target.Value.String() }

func joinTargetListItems(items []span.Node[TargetListItem], sep string) string {
	return joinString(mapString(items, func(n span.Node[TargetListItem]) string { return n.Value.String() }), sep)
}

func joinTargetDictItems(items []span.Node[TargetDictItem], sep string) string {
	return joinString(mapString(items, func(n span.Node[TargetDictItem]) string { return n.Value.String() }), sep)
}

// TargetExpr is a function parameter: a bare target, or a target with a
// default value expression.
type TargetExpr interface {
	targetExprNode()
	String() string
}

type TargetExprBare struct{ Target Target }

func (TargetExprBare) targetExprNode() {}
func (t TargetExprBare) String() string { return t.Target.String() }

type TargetExprDefault struct {
	Target  span.Node[Target]
	Default span.Node[Expr]
}

func (TargetExprDefault) targetExprNode() {}
func (t TargetExprDefault) String() string {
	return t.Target.Value.String() + " = " + t.Default.Value.String()
}

// ArgsDef is a function's parameter list: `(args) => block`.
type ArgsDef struct{ Items []span.Node[TargetExpr] }

func (a ArgsDef) String() string {
	return joinString(mapString(a.Items, func(n span.Node[TargetExpr]) string { return n.Value.String() }), ", ")
}

// Match is a match-arm pattern: a nested target form, or a literal atom to
// compare against.
type Match interface {
	matchNode()
	String() string
}

type MatchTarget struct{ Target Target }

func (MatchTarget) matchNode()      {}
func (m MatchTarget) String() string { return m.Target.String() }

type MatchLiteral struct{ Atom Atom }

func (MatchLiteral) matchNode()      {}
func (m MatchLiteral) String() string { return m.Atom.String() }

// ToTarget attempts the partial Atom -> Target coercion: it succeeds iff
// every leaf of atom is itself a valid target form.
func ToTarget(atom Atom) (Target, bool) {
	switch a := atom.(type) {
	case Ident:
		return TargetIdent{Name: a.Name}, true
	case Paren:
		item, ok := exprToTargetListItem(a.Inner)
		if !ok {
			return nil, false
		}
		return TargetTuple{Items: []span.Node[TargetListItem]{item}}, true
	case Tuple:
		items, ok := listItemsToTargetItems(a.Items)
		if !ok {
			return nil, false
		}
		return TargetTuple{Items: items}, true
	case ListDisplay:
		items, ok := listItemsToTargetItems(a.Items)
		if !ok {
			return nil, false
		}
		return TargetList{Items: items}, true
	case DictDisplay:
		items, ok := dictItemsToTargetItems(a.Items)
		if !ok {
			return nil, false
		}
		return TargetDict{Items: items}, true
	default:
		return nil, false
	}
}

func exprToTarget(n span.Node[Expr]) (span.Node[Target], bool) {
	primary, ok := n.Value.(ExprPrimary)
	if !ok {
		return span.Node[Target]{}, false
	}
	atomPrimary, ok := primary.Primary.(PrimaryAtom)
	if !ok {
		return span.Node[Target]{}, false
	}
	tar, ok := ToTarget(atomPrimary.Atom)
	if !ok {
		return span.Node[Target]{}, false
	}
	return span.Of(n.Span, tar), true
}

func exprToTargetListItem(n span.Node[Expr]) (span.Node[TargetListItem], bool) {
	tar, ok := exprToTarget(n)
	if !ok {
		return span.Node[TargetListItem]{}, false
	}
	return span.Of(tar.Span, TargetListItem(TargetListItemTarget{Target: tar.Value})), true
}

func listItemsToTargetItems(items []span.Node[ListItem]) ([]span.Node[TargetListItem], bool) {
	out := make([]span.Node[TargetListItem], 0, len(items))
	for _, it := range items {
		switch v := it.Value.(type) {
		case ItemExpr:
			tar, ok := exprToTarget(span.Of(it.Span, v.Value))
			if !ok {
				return nil, false
			}
			out = append(out, span.Of(it.Span, TargetListItem(TargetListItemTarget{Target: tar.Value})))
		case ItemSpread:
			tar, ok := exprToTarget(v.Value)
			if !ok {
				return nil, false
			}
			out = append(out, span.Of(it.Span, TargetListItem(TargetListItemSpread{Target: tar})))
		default:
			return nil, false
		}
	}
	return out, true
}

func dictItemsToTargetItems(items []span.Node[DictItem]) ([]span.Node[TargetDictItem], bool) {
	out := make([]span.Node[TargetDictItem], 0, len(items))
	for _, it := range items {
		switch v := it.Value.(type) {
		case DictShorthand:
			out = append(out, span.Of(it.Span, TargetDictItem(TargetDictItemShorthand{Name: v.Name})))
		case DictSpread:
			tar, ok := exprToTarget(v.Value)
			if !ok {
				return nil, false
			}
			out = append(out, span.Of(it.Span, TargetDictItem(TargetDictItemSpread{Target: tar})))
		case DictKeyVal:
			tar, ok := exprToTarget(v.Val)
			if !ok {
				return nil, false
			}
			out = append(out, span.Of(it.Span, TargetDictItem(TargetDictItemPair{Key: v.Key, Target: tar})))
		default:
			return nil, false
		}
	}
	return out, true
}
