package eval

import (
	"github.com/astralarya/kismet/internal/hir"
	"github.com/astralarya/kismet/internal/kerr"
	"github.com/astralarya/kismet/pkg/span"
)

// Block evaluates an entire HIR block against symtab, committing its
// mutations only if the whole evaluation succeeds: a failed evaluation
// must not mutate the symbol table at all.
func Block(b hir.Block, symtab *SymbolTable) (hir.Value, *kerr.Error) {
	scratch := symtab.Clone()
	v, err := evalBlock(b, scratch)
	if err != nil {
		return nil, err
	}
	symtab.CommitFrom(scratch)
	return v, nil
}

func evalBlock(b hir.Block, s *SymbolTable) (hir.Value, *kerr.Error) {
	if len(b.Items) == 0 {
		return hir.Undefined{}, nil
	}
	var last hir.Value = hir.Undefined{}
	for _, it := range b.Items {
		v, err := evalInstr(it, s)
		if err != nil {
			return nil, err
		}
		last = v
	}
	return last, nil
}

func evalInstr(n span.Node[hir.Instruction], s *SymbolTable) (hir.Value, *kerr.Error) {
	switch instr := n.Value.(type) {
	case hir.InstrValue:
		return instr.Value, nil
	case hir.InstrVariable:
		return s.Get(instr.Id), nil
	case hir.InstrAssign:
		v, err := evalInstr(instr.Value, s)
		if err != nil {
			return nil, err
		}
		s.Set(instr.Id, v)
		return v, nil
	case hir.InstrBlock:
		return evalBlock(instr.Block, s)
	case hir.InstrAction:
		return evalAction(n.Span, instr.Action, s)
	case hir.InstrArith:
		lv, err := evalInstr(instr.Left, s)
		if err != nil {
			return nil, err
		}
		rv, err := evalInstr(instr.Right, s)
		if err != nil {
			return nil, err
		}
		v, kind := hir.Arith(lv, instr.Op, rv)
		if kind != "" {
			return nil, kerr.New(kerr.StageEval, kind, n.Span, "invalid operand types for arithmetic")
		}
		return v, nil
	case hir.InstrUnaryArith:
		v, err := evalInstr(instr.Value, s)
		if err != nil {
			return nil, err
		}
		rv, kind := hir.UnaryArith(instr.Op, v)
		if kind != "" {
			return nil, kerr.New(kerr.StageEval, kind, n.Span, "invalid operand type for unary arithmetic")
		}
		return rv, nil
	case hir.InstrSymbol:
		return nil, kerr.New(kerr.StageEval, kerr.Unimplemented, n.Span, "symbol instruction has no evaluation in this core")
	default:
		return nil, kerr.New(kerr.StageEval, kerr.Unimplemented, n.Span, "unhandled instruction kind")
	}
}

func evalAction(sp span.Span, a hir.Action, s *SymbolTable) (hir.Value, *kerr.Error) {
	switch act := a.(type) {
	case hir.ActionTuple:
		items, err := evalListItems(act.Items, s)
		if err != nil {
			return nil, err
		}
		return hir.TupleVal{Items: items}, nil
	case hir.ActionListDisplay:
		items, err := evalListItems(act.Items, s)
		if err != nil {
			return nil, err
		}
		return hir.ListVal{Items: items}, nil
	case hir.ActionDictDisplay:
		return evalDictDisplay(sp, act.Items, s)
	default:
		return nil, kerr.New(kerr.StageEval, kerr.Unimplemented, sp, "unhandled action kind")
	}
}

func evalListItems(items []span.Node[hir.ListItem], s *SymbolTable) ([]hir.Value, *kerr.Error) {
	out := make([]hir.Value, 0, len(items))
	for _, it := range items {
		switch li := it.Value.(type) {
		case hir.ListItemExpr:
			v, err := evalInstr(li.Value, s)
			if err != nil {
				return nil, err
			}
			out = append(out, v)
		case hir.ListItemSpread:
			v, err := evalInstr(li.Value, s)
			if err != nil {
				return nil, err
			}
			switch c := v.(type) {
			case hir.TupleVal:
				out = append(out, c.Items...)
			case hir.ListVal:
				out = append(out, c.Items...)
			default:
				return nil, kerr.New(kerr.StageEval, kerr.TypeMismatch, it.Span, "spread of a non-collection value")
			}
		}
	}
	return out, nil
}

func evalDictDisplay(sp span.Span, items []span.Node[hir.DictItem], s *SymbolTable) (hir.Value, *kerr.Error) {
	acc := hir.NewDictVal()
	for _, it := range items {
		switch di := it.Value.(type) {
		case hir.DictItemKeyVal:
			v, err := evalInstr(di.Val, s)
			if err != nil {
				return nil, err
			}
			acc.Set(di.Key, v)
		case hir.DictItemDynKeyVal:
			k, err := evalInstr(di.Key, s)
			if err != nil {
				return nil, err
			}
			key, ok := k.(hir.String)
			if !ok {
				return nil, kerr.New(kerr.StageEval, kerr.TypeMismatch, it.Span, "dynamic dict key must be a string")
			}
			v, err := evalInstr(di.Val, s)
			if err != nil {
				return nil, err
			}
			acc.Set(string(key), v)
		case hir.DictItemShorthand:
			acc.Set(di.Name, s.Get(di.Name))
		case hir.DictItemSpread:
			v, err := evalInstr(di.Value, s)
			if err != nil {
				return nil, err
			}
			dv, ok := v.(hir.DictVal)
			if !ok {
				return nil, kerr.New(kerr.StageEval, kerr.TypeMismatch, it.Span, "spread of a non-dict value")
			}
			for _, k := range dv.Keys {
				acc.Set(k, dv.Map[k])
			}
		}
	}
	return acc, nil
}
