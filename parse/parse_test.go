package parse

import (
	"errors"
	"strings"
	"testing"

	"github.com/sx-format/go-sx/ir"
	"github.com/sx-format/go-sx/token"
)

func TestParseOK(t *testing.T) {
	tts := []struct {
		in   string
		want *ir.Node
	}{
		{
			in:   `(net 1 "GND")`,
			want: ir.NewToken("net", ir.FromInt(1), ir.Str("GND")),
		},
		{
			in:   `()`,
			want: ir.List(),
		},
		{
			in:   `(pts (xy 0 0) (xy 10 0))`,
			want: ir.NewToken("pts", ir.NewToken("xy", ir.FromInt(0), ir.FromInt(0)), ir.NewToken("xy", ir.FromInt(10), ir.FromInt(0))),
		},
		{
			in:   "(at 1.27 -2.54 90)",
			want: ir.NewToken("at", ir.FromFloat(1.27), ir.FromFloat(-2.54), ir.FromInt(90)),
		},
		{
			// bare atom at top level
			in:   `locked`,
			want: ir.Sym("locked"),
		},
		{
			in:   `"just a string"`,
			want: ir.Str("just a string"),
		},
		{
			in:   "(a\n\t(b\n\t\t(c 1)\n\t)\n)",
			want: ir.NewToken("a", ir.NewToken("b", ir.NewToken("c", ir.FromInt(1)))),
		},
		{
			// 2.0 stays float, 2 stays int
			in:   `(thickness 2.0 2)`,
			want: ir.NewToken("thickness", ir.FromFloat(2), ir.FromInt(2)),
		},
		{
			in:   `(empty ())`,
			want: ir.NewToken("empty", ir.List()),
		},
	}
	for _, tt := range tts {
		got, err := ParseString(tt.in)
		if err != nil {
			t.Errorf("%q: %v", tt.in, err)
			continue
		}
		if !ir.Equal(got, tt.want) {
			t.Errorf("%q: tree mismatch", tt.in)
		}
	}
}

func TestParseErrs(t *testing.T) {
	tts := []struct {
		in string
		e  error
	}{
		{in: ``, e: ErrParse},
		{in: `   `, e: ErrParse},
		{in: `(kicad_pcb (version 1)`, e: ErrUnterminatedList},
		{in: `(a (b)`, e: ErrUnterminatedList},
		{in: `)`, e: ErrUnexpectedToken},
		{in: `(a)) `, e: ErrUnexpectedToken},
		{in: `(a) (b)`, e: ErrUnexpectedToken},
		{in: `a b`, e: ErrUnexpectedToken},
	}
	for _, tt := range tts {
		got, err := ParseString(tt.in)
		if err == nil {
			t.Errorf("%q: expected error", tt.in)
			continue
		}
		if !errors.Is(err, tt.e) {
			t.Errorf("%q: got %v, want %v", tt.in, err, tt.e)
		}
		if got != nil {
			t.Errorf("%q: partial result on failure", tt.in)
		}
	}
}

func TestParseDepth(t *testing.T) {
	deep := strings.Repeat("(a ", 100) + "1" + strings.Repeat(")", 100)
	node, err := ParseString(deep)
	if err != nil {
		t.Fatalf("100 levels: %v", err)
	}
	levels := 0
	for node != nil && node.IsList() {
		levels++
		node = node.Values[len(node.Values)-1]
	}
	if levels != 100 {
		t.Errorf("got %d levels, want 100", levels)
	}

	_, err = ParseString("((((1))))", MaxDepth(3))
	if !errors.Is(err, ErrTooDeep) {
		t.Errorf("MaxDepth(3): got %v, want ErrTooDeep", err)
	}
	if _, err := ParseString("(((1)))", MaxDepth(3)); err != nil {
		t.Errorf("MaxDepth(3) at limit: %v", err)
	}
}

func TestParsePositions(t *testing.T) {
	positions := map[*ir.Node]*token.Pos{}
	node, err := ParseString("(a\n\t(b 1))", Positions(positions))
	if err != nil {
		t.Fatal(err)
	}
	inner := node.Values[1]
	p, ok := positions[inner]
	if !ok {
		t.Fatal("no position for inner list")
	}
	if p.Line() != 1 {
		t.Errorf("inner list line: got %d, want 1", p.Line())
	}
}

func TestStripHashLines(t *testing.T) {
	in := "# header\n(rule x\n  # indented comment\n  (constraint))\n"
	want := "(rule x\n  (constraint))\n"
	if got := string(StripHashLines([]byte(in))); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
	if _, err := Parse(StripHashLines([]byte(in))); err != nil {
		t.Errorf("stripped text does not parse: %v", err)
	}
}
