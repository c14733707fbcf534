// Package eval is the tree-walking evaluator: HIR instruction plus a
// mutable symbol table in, (updated table, Value) or an Error out.
package eval

import "github.com/astralarya/kismet/internal/hir"

// SymbolTable is a flat, insertion-ordered mapping from identifier to
// Value. The current core has a single flat scope; Get materializes a
// missing key as Undefined on first read.
type SymbolTable struct {
	keys []string
	vals map[string]hir.Value
}

// New returns an empty symbol table.
func New() *SymbolTable {
	return &SymbolTable{vals: make(map[string]hir.Value)}
}

// Get looks up id, inserting and returning Undefined if it is absent.
func (s *SymbolTable) Get(id string) hir.Value {
	if v, ok := s.vals[id]; ok {
		return v
	}
	s.set(id, hir.Undefined{})
	return hir.Undefined{}
}

// Set overwrites (or inserts) id's value.
func (s *SymbolTable) Set(id string, v hir.Value) {
	s.set(id, v)
}

func (s *SymbolTable) set(id string, v hir.Value) {
	if _, ok := s.vals[id]; !ok {
		s.keys = append(s.keys, id)
	}
	s.vals[id] = v
}

// Clone returns an independent copy, used to implement "evaluate into a
// scratch table, commit only on success": a failed evaluation must leave
// the original table untouched.
func (s *SymbolTable) Clone() *SymbolTable {
	keys := make([]string, len(s.keys))
	copy(keys, s.keys)
	vals := make(map[string]hir.Value, len(s.vals))
	for k, v := range s.vals {
		vals[k] = v
	}
	return &SymbolTable{keys: keys, vals: vals}
}

// CommitFrom replaces s's contents with scratch's, called after a
// scratch-table evaluation succeeds.
func (s *SymbolTable) CommitFrom(scratch *SymbolTable) {
	s.keys = scratch.keys
	s.vals = scratch.vals
}

// Keys returns the identifiers currently bound, in insertion order.
func (s *SymbolTable) Keys() []string {
	return s.keys
}
