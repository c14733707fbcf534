// Package ast defines the surface syntax tree kismet's parser produces:
// Atom, Primary, Expr, Op, and Target, each a small closed interface with
// one concrete type per grammar production. Every recursive child is held
// as a span.Node[T] so spans compose the way lowering and error reporting
// expect.
package ast

import (
	"strconv"
	"strings"

	"github.com/astralarya/kismet/pkg/span"
)

func joinString(ss []string, sep string) string {
	return strings.Join(ss, sep)
}

func mapString[T any](items []T, f func(T) string) []string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = f(it)
	}
	return out
}

// formatFloat renders f the way kismet's Display forms do: a trailing dot
// when the fractional part is zero, scientific notation when |f| is very
// large or very small, plain decimal otherwise.
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
