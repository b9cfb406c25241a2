// Package parse parses S-expression text into ir.Node trees.
package parse

import (
	"fmt"
	"strconv"

	"github.com/sx-format/go-sx/ir"
	"github.com/sx-format/go-sx/token"
)

// Parse reads exactly one top-level expression from d, a list or a bare
// atom, and returns its tree.  Parsing is all-or-nothing: any failure
// returns a nil tree.  Callers that need several top-level expressions in
// one document (design-rule files) wrap their text in a synthetic list
// before calling Parse.
func Parse(d []byte, opts ...ParseOption) (*ir.Node, error) {
	pOpts := &parseOpts{maxDepth: DefaultMaxDepth}
	for _, f := range opts {
		f(pOpts)
	}
	toks, err := token.Tokenize(nil, d)
	if err != nil {
		return nil, err
	}
	if len(toks) == 0 {
		return nil, fmt.Errorf("%w: empty input", ErrParse)
	}
	off := 0
	res, err := parseNode(toks, &off, 0, pOpts)
	if err != nil {
		return nil, err
	}
	if off != len(toks) {
		t := &toks[off]
		return nil, fmt.Errorf("%w %q after top-level expression %s",
			ErrUnexpectedToken, string(t.Bytes), t.Pos)
	}
	return res, nil
}

// ParseString is Parse over a string.
func ParseString(s string, opts ...ParseOption) (*ir.Node, error) {
	return Parse([]byte(s), opts...)
}

func parseNode(toks []token.Token, pi *int, depth int, opts *parseOpts) (*ir.Node, error) {
	if *pi >= len(toks) {
		return nil, fmt.Errorf("%w: no token to parse", errInternal)
	}
	t := &toks[*pi]
	switch t.Type {
	case token.TLParen:
		if depth >= opts.maxDepth {
			return nil, fmt.Errorf("%w (%d) %s", ErrTooDeep, opts.maxDepth, t.Pos)
		}
		*pi++
		return parseList(toks, t, pi, depth+1, opts)
	case token.TRParen:
		return nil, fmt.Errorf("%w %q with no open list %s",
			ErrUnexpectedToken, string(t.Bytes), t.Pos)
	default:
		*pi++
		return atom(t, opts)
	}
}

func parseList(toks []token.Token, open *token.Token, pi *int, depth int, opts *parseOpts) (*ir.Node, error) {
	res := ir.List()
	trackPos(res, open.Pos, opts)
	for *pi < len(toks) {
		if toks[*pi].Type == token.TRParen {
			*pi++
			return res, nil
		}
		child, err := parseNode(toks, pi, depth, opts)
		if err != nil {
			return nil, err
		}
		res.Append(child)
	}
	return nil, fmt.Errorf("%w opened %s", ErrUnterminatedList, open.Pos)
}

func atom(t *token.Token, opts *parseOpts) (*ir.Node, error) {
	var res *ir.Node
	switch t.Type {
	case token.TSymbol:
		res = ir.Sym(string(t.Bytes))
	case token.TString:
		res = ir.Str(t.String())
	case token.TInteger:
		i, err := strconv.ParseInt(string(t.Bytes), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid integer (%w) %s", ErrParse, err, t.Pos)
		}
		res = ir.FromInt(i)
	case token.TFloat:
		f, err := strconv.ParseFloat(string(t.Bytes), 64)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid float (%w) %s", ErrParse, err, t.Pos)
		}
		res = ir.FromFloat(f)
	default:
		return nil, fmt.Errorf("%w: atom on %s token %s", errInternal, t.Type, t.Pos)
	}
	trackPos(res, t.Pos, opts)
	return res, nil
}

func trackPos(node *ir.Node, pos *token.Pos, opts *parseOpts) {
	if opts.positions != nil && pos != nil {
		opts.positions[node] = pos
	}
}
