package lower

import (
	"github.com/astralarya/kismet/internal/ast"
	"github.com/astralarya/kismet/internal/hir"
	"github.com/astralarya/kismet/internal/kerr"
	"github.com/astralarya/kismet/pkg/span"
)

func lowerAtom(n span.Node[ast.Atom]) (span.Node[hir.Instruction], *kerr.Error) {
	switch a := n.Value.(type) {
	case ast.Ident:
		return span.Of(n.Span, hir.Instruction(hir.InstrVariable{Id: a.Name})), nil
	case ast.IntegerLit:
		return span.Of(n.Span, hir.Instruction(hir.InstrValue{Value: hir.Integer(a.Value)})), nil
	case ast.FloatLit:
		return span.Of(n.Span, hir.Instruction(hir.InstrValue{Value: hir.Float(a.Value)})), nil
	case ast.StringLit:
		return span.Of(n.Span, hir.Instruction(hir.InstrValue{Value: hir.String(a.Value)})), nil
	case ast.Paren:
		return Expr(a.Inner)
	case ast.Tuple:
		return lowerListItems(n.Span, a.Items,
			func(vs []hir.Value) hir.Value { return hir.TupleVal{Items: vs} },
			func(is []span.Node[hir.ListItem]) hir.Action { return hir.ActionTuple{Items: is} },
		)
	case ast.ListDisplay:
		return lowerListItems(n.Span, a.Items,
			func(vs []hir.Value) hir.Value { return hir.ListVal{Items: vs} },
			func(is []span.Node[hir.ListItem]) hir.Action { return hir.ActionListDisplay{Items: is} },
		)
	case ast.DictDisplay:
		return lowerDictDisplay(n.Span, a.Items)
	case ast.BlockAtom:
		return lowerBlockAtom(n.Span, a.Items)
	case ast.Generator:
		return span.Node[hir.Instruction]{}, unimplemented(n.Span, "generators")
	case ast.ListComprehension:
		return span.Node[hir.Instruction]{}, unimplemented(n.Span, "list comprehensions")
	case ast.DictComprehension:
		return span.Node[hir.Instruction]{}, unimplemented(n.Span, "dict comprehensions")
	default:
		return span.Node[hir.Instruction]{}, unimplemented(n.Span, "atom")
	}
}

func lowerBlockAtom(sp span.Span, items []span.Node[ast.Expr]) (span.Node[hir.Instruction], *kerr.Error) {
	out := make([]span.Node[hir.Instruction], 0, len(items))
	for _, e := range items {
		instr, err := Expr(e)
		if err != nil {
			return span.Node[hir.Instruction]{}, err
		}
		out = append(out, instr)
	}
	return span.Of(sp, hir.Instruction(hir.InstrBlock{Block: hir.Block{Items: out}})), nil
}

func lowerListItems(
	sp span.Span,
	items []span.Node[ast.ListItem],
	makeValue func([]hir.Value) hir.Value,
	makeAction func([]span.Node[hir.ListItem]) hir.Action,
) (span.Node[hir.Instruction], *kerr.Error) {
	values := make([]hir.Value, 0, len(items))
	hirItems := make([]span.Node[hir.ListItem], 0, len(items))
	allStatic := true

	for _, it := range items {
		switch v := it.Value.(type) {
		case ast.ItemExpr:
			instr, err := Expr(span.Of(it.Span, v.Value))
			if err != nil {
				return span.Node[hir.Instruction]{}, err
			}
			if iv, ok := instr.Value.(hir.InstrValue); ok && allStatic {
				values = append(values, iv.Value)
			} else {
				allStatic = false
			}
			hirItems = append(hirItems, span.Of(it.Span, hir.ListItem(hir.ListItemExpr{Value: instr})))
		case ast.ItemSpread:
			instr, err := Expr(v.Value)
			if err != nil {
				return span.Node[hir.Instruction]{}, err
			}
			allStatic = false
			hirItems = append(hirItems, span.Of(it.Span, hir.ListItem(hir.ListItemSpread{Value: instr})))
		}
	}

	if allStatic {
		return span.Of(sp, hir.Instruction(hir.InstrValue{Value: makeValue(values)})), nil
	}
	return span.Of(sp, hir.Instruction(hir.InstrAction{Action: makeAction(hirItems)})), nil
}

// lowerDictDisplay implements a "static prefix + action tail" split: items
// fold into an accumulating literal dict until the first non-static
// element, at which point the accumulated dict freezes into a leading
// Spread and every remaining item (including ones that would themselves
// have folded) is carried verbatim to preserve order.
func lowerDictDisplay(sp span.Span, items []span.Node[ast.DictItem]) (span.Node[hir.Instruction], *kerr.Error) {
	acc := hir.NewDictVal()
	var action []span.Node[hir.DictItem]
	frozen := false

	freeze := func() {
		action = append(action, span.Of(sp, hir.DictItem(hir.DictItemSpread{
			Value: span.Of(sp, hir.Instruction(hir.InstrValue{Value: acc})),
		})))
		frozen = true
	}

	for _, it := range items {
		switch v := it.Value.(type) {
		case ast.DictKeyVal:
			valInstr, err := Expr(v.Val)
			if err != nil {
				return span.Node[hir.Instruction]{}, err
			}
			if !frozen {
				if iv, ok := valInstr.Value.(hir.InstrValue); ok {
					acc.Set(v.Key.Value, iv.Value)
					continue
				}
				freeze()
			}
			action = append(action, span.Of(it.Span, hir.DictItem(hir.DictItemKeyVal{Key: v.Key.Value, Val: valInstr})))
		case ast.DictDynKeyVal:
			keyInstr, err := Expr(v.Key)
			if err != nil {
				return span.Node[hir.Instruction]{}, err
			}
			valInstr, err := Expr(v.Val)
			if err != nil {
				return span.Node[hir.Instruction]{}, err
			}
			if !frozen {
				freeze()
			}
			action = append(action, span.Of(it.Span, hir.DictItem(hir.DictItemDynKeyVal{Key: keyInstr, Val: valInstr})))
		case ast.DictShorthand:
			if !frozen {
				freeze()
			}
			action = append(action, span.Of(it.Span, hir.DictItem(hir.DictItemShorthand{Name: v.Name})))
		case ast.DictSpread:
			valInstr, err := Expr(v.Value)
			if err != nil {
				return span.Node[hir.Instruction]{}, err
			}
			if !frozen {
				if iv, ok := valInstr.Value.(hir.InstrValue); ok {
					if dv, ok := iv.Value.(hir.DictVal); ok {
						for _, k := range dv.Keys {
							acc.Set(k, dv.Map[k])
						}
						continue
					}
				}
				freeze()
			}
			action = append(action, span.Of(it.Span, hir.DictItem(hir.DictItemSpread{Value: valInstr})))
		}
	}

	if !frozen {
		return span.Of(sp, hir.Instruction(hir.InstrValue{Value: acc})), nil
	}
	return span.Of(sp, hir.Instruction(hir.InstrAction{Action: hir.ActionDictDisplay{Items: action}})), nil
}
