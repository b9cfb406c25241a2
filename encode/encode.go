// Package encode renders ir.Node trees as S-expression text.
//
// The layout contract is conformance-driven: output must be byte-compatible
// with the reference writer of the target format, so the rules here
// (single-line collapse, tab indentation, the float fractional marker, the
// document-root trailing newline) are pinned by tests against known-good
// output rather than derived from a grammar.
package encode

import (
	"io"
	"strconv"
	"strings"

	"github.com/sx-format/go-sx/ir"
	"github.com/sx-format/go-sx/token"
)

type EncState struct {
	depth  int
	indent string
	roots  map[string]bool

	Color func(ir.Type, ColorAttr, string) string
}

// Encode writes the rendering of node to w.  It is total for structurally
// valid trees: the only failures are writer failures.
func Encode(node *ir.Node, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{
		indent: "\t",
		roots:  defaultRoots(),
	}
	for _, opt := range opts {
		opt(es)
	}
	if err := encode(node, w, es); err != nil {
		return err
	}
	// library/document roots carry one extra trailing newline so rendered
	// files end the way the reference writer ends them
	if es.roots[node.TokenName()] {
		return writeString(w, "\n")
	}
	return nil
}

// String renders node to a string.
func String(node *ir.Node, opts ...EncodeOption) (string, error) {
	b := &strings.Builder{}
	if err := Encode(node, b, opts...); err != nil {
		return "", err
	}
	return b.String(), nil
}

func encode(node *ir.Node, w io.Writer, es *EncState) error {
	if node.Type != ir.ListType {
		return writeAtom(node, w, es, ValueColor)
	}
	if breakAt(node) < 0 {
		return encodeInline(node, w, es)
	}
	return encodeMultiLine(node, w, es)
}

// breakAt returns the index of the first list-valued child past the head,
// or -1 when the list collapses onto a single line.
func breakAt(node *ir.Node) int {
	for i, c := range node.Values {
		if i == 0 {
			continue
		}
		if c.Type == ir.ListType {
			return i
		}
	}
	return -1
}

// encodeInline renders node and everything under it on one line.
func encodeInline(node *ir.Node, w io.Writer, es *EncState) error {
	if node.Type != ir.ListType {
		return writeAtom(node, w, es, ValueColor)
	}
	if err := writeSep(w, es, "("); err != nil {
		return err
	}
	for i, c := range node.Values {
		if i > 0 {
			if err := writeString(w, " "); err != nil {
				return err
			}
		}
		var err error
		if c.Type == ir.ListType {
			err = encodeInline(c, w, es)
		} else {
			err = writeAtom(c, w, es, childAttr(i))
		}
		if err != nil {
			return err
		}
	}
	return writeSep(w, es, ")")
}

// encodeMultiLine renders the head and the leading atom children on the
// opening line, then every child from the first list-valued one onward on
// its own line one indent unit deeper, and closes with ")" on its own line
// at the parent's indentation.
func encodeMultiLine(node *ir.Node, w io.Writer, es *EncState) error {
	bi := breakAt(node)
	if bi < 0 {
		return errInternal
	}
	if err := writeSep(w, es, "("); err != nil {
		return err
	}
	for i := 0; i < bi; i++ {
		if i > 0 {
			if err := writeString(w, " "); err != nil {
				return err
			}
		}
		c := node.Values[i]
		var err error
		if c.Type == ir.ListType {
			err = encodeInline(c, w, es)
		} else {
			err = writeAtom(c, w, es, childAttr(i))
		}
		if err != nil {
			return err
		}
	}
	es.depth++
	for _, c := range node.Values[bi:] {
		if err := writeNL(w, es); err != nil {
			es.depth--
			return err
		}
		if err := encode(c, w, es); err != nil {
			es.depth--
			return err
		}
	}
	es.depth--
	if err := writeNL(w, es); err != nil {
		return err
	}
	return writeSep(w, es, ")")
}

func writeAtom(node *ir.Node, w io.Writer, es *EncState, attr ColorAttr) error {
	var v string
	switch node.Type {
	case ir.SymbolType:
		v = node.Text
	case ir.StringType:
		v = token.Quote(node.Text)
	case ir.IntType:
		v = strconv.FormatInt(node.Int64, 10)
	case ir.FloatType:
		v = FormatFloatAtom(node.Float64)
	default:
		panic("type")
	}
	if es.Color != nil {
		v = es.Color(node.Type, attr, v)
	}
	return writeString(w, v)
}

// FormatFloatAtom renders a float with the shortest decimal text that
// round-trips, forcing a fractional marker so integral values stay floats
// on the next parse: 2 renders as "2.0", never "2".
func FormatFloatAtom(f float64) string {
	s := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.ContainsRune(s, '.') {
		s += ".0"
	}
	return s
}

func writeNL(w io.Writer, es *EncState) error {
	return writeString(w, "\n"+strings.Repeat(es.indent, es.depth))
}

func writeSep(w io.Writer, es *EncState, sep string) error {
	if es.Color != nil {
		sep = es.Color(ir.ListType, SepColor, sep)
	}
	return writeString(w, sep)
}

func writeString(w io.Writer, s string) error {
	_, err := w.Write([]byte(s))
	return err
}

// childAttr distinguishes the record-naming head symbol for coloring.
func childAttr(i int) ColorAttr {
	if i == 0 {
		return HeadColor
	}
	return ValueColor
}
