package parse

import (
	"github.com/sx-format/go-sx/ir"
	"github.com/sx-format/go-sx/token"
)

// DefaultMaxDepth bounds list nesting.  Inputs at least 100 levels deep
// must parse; the default leaves generous headroom and MaxDepth tunes it.
const DefaultMaxDepth = 1024

type parseOpts struct {
	maxDepth  int
	positions map[*ir.Node]*token.Pos
}

type ParseOption func(*parseOpts)

// MaxDepth overrides the nesting depth limit.  Values below 1 fall back to
// the default.
func MaxDepth(n int) ParseOption {
	return func(o *parseOpts) {
		if n >= 1 {
			o.maxDepth = n
		}
	}
}

// Positions records the source position of every parsed node into m.
func Positions(m map[*ir.Node]*token.Pos) ParseOption {
	return func(o *parseOpts) { o.positions = m }
}
