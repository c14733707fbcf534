// Package hir defines kismet's normalized instruction tree: the small
// target lowering reduces an AST to, and the tagged Value a successful
// evaluation produces.
package hir

import (
	"strconv"
	"strings"

	"github.com/astralarya/kismet/internal/kerr"
)

// Value is a fully materialized result: a Primitive, a Collection, or a
// wrapped Error (for contexts that thread a failure through as data rather
// than aborting the stage outright; lowering and evaluation in this core
// abort instead and never build one).
type Value interface {
	valueNode()
	String() string
}

// Primitive is a scalar Value.
type Primitive interface {
	Value
	primitiveNode()
}

type Boolean bool

func (Boolean) valueNode()     {}
func (Boolean) primitiveNode() {}
func (b Boolean) String() string {
	if b {
		return "true"
	}
	return "false"
}

type Integer int32

func (Integer) valueNode()     {}
func (Integer) primitiveNode() {}
func (i Integer) String() string { return strconv.FormatInt(int64(i), 10) }

type Float float32

func (Float) valueNode()     {}
func (Float) primitiveNode() {}
func (f Float) String() string { return formatFloat(float32(f)) }

type String string

func (String) valueNode()     {}
func (String) primitiveNode() {}
func (s String) String() string { return string(s) }

type Null struct{}

func (Null) valueNode()       {}
func (Null) primitiveNode()   {}
func (Null) String() string { return "null" }

type Undefined struct{}

func (Undefined) valueNode()       {}
func (Undefined) primitiveNode()   {}
func (Undefined) String() string { return "undefined" }

// Collection is an aggregate Value.
type Collection interface {
	Value
	collectionNode()
}

type TupleVal struct{ Items []Value }

func (TupleVal) valueNode()      {}
func (TupleVal) collectionNode() {}
func (t TupleVal) String() string {
	if len(t.Items) == 1 {
		return "(" + t.Items[0].String() + ",)"
	}
	return "(" + joinValues(t.Items, ", ") + ")"
}

type ListVal struct{ Items []Value }

func (ListVal) valueNode()      {}
func (ListVal) collectionNode() {}
func (l ListVal) String() string {
	return "[" + joinValues(l.Items, ", ") + "]"
}

// DictVal is an insertion-ordered mapping from identifier to Value: Keys
// records insertion order, Map holds the values. A bare Go map cannot back
// this directly since it has no ordering guarantee.
type DictVal struct {
	Keys []string
	Map  map[string]Value
}

func NewDictVal() DictVal {
	return DictVal{Map: make(map[string]Value)}
}

// Set inserts or overwrites key, preserving key's original insertion
// position on overwrite.
func (d *DictVal) Set(key string, v Value) {
	if _, ok := d.Map[key]; !ok {
		d.Keys = append(d.Keys, key)
	}
	d.Map[key] = v
}

func (d DictVal) Get(key string) (Value, bool) {
	v, ok := d.Map[key]
	return v, ok
}

func (DictVal) valueNode()      {}
func (DictVal) collectionNode() {}
func (d DictVal) String() string {
	parts := make([]string, len(d.Keys))
	for i, k := range d.Keys {
		parts[i] = k + ": " + d.Map[k].String()
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

// ErrorVal wraps a stage error as a Value, for the rare context that
// threads a failure through as data rather than aborting the stage.
type ErrorVal struct{ Err *kerr.Error }

func (ErrorVal) valueNode()      {}
func (e ErrorVal) String() string { return e.Err.Error() }

func joinValues(items []Value, sep string) string {
	parts := make([]string, len(items))
	for i, v := range items {
		parts[i] = v.String()
	}
	return strings.Join(parts, sep)
}

// formatFloat mirrors ast's Display rule for floats: trailing dot when the
// fraction is zero, scientific notation at the extremes.
func formatFloat(f float32) string {
	af := f
	if af < 0 {
		af = -af
	}
	if af != 0 && (af >= 1e16 || af <= 1e-4) {
		return strconv.FormatFloat(float64(f), 'e', -1, 32)
	}
	s := strconv.FormatFloat(float64(f), 'f', -1, 32)
	if !strings.ContainsRune(s, '.') {
		s += "."
	}
	return s
}
