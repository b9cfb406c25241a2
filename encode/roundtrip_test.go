package encode

import (
	"testing"

	"github.com/sx-format/go-sx/ir"
	"github.com/sx-format/go-sx/parse"
)

// Round trip: for every tree N built from valid data, parse(render(N))
// is structurally equal to N, and rendering the re-parsed tree reproduces
// the text byte for byte.
func TestRoundTrip(t *testing.T) {
	trees := []*ir.Node{
		ir.Sym("locked"),
		ir.Str(`path with "quotes" and \ slashes`),
		ir.FromInt(-12),
		ir.FromFloat(2),
		ir.List(),
		ir.NewToken("net", ir.FromInt(1), ir.Str("GND")),
		ir.NewToken("pts",
			ir.NewToken("xy", ir.FromInt(0), ir.FromInt(0)),
			ir.NewToken("xy", ir.FromInt(10), ir.FromInt(0))),
		ir.NewToken("pad", ir.Str("1"), ir.Sym("smd"), ir.Sym("rect"),
			ir.NewToken("at", ir.FromFloat(-1.05), ir.FromInt(0), ir.FromInt(90)),
			ir.NewToken("size", ir.FromFloat(1), ir.FromFloat(1.5)),
			ir.NewToken("layers", ir.Str("F.Cu"), ir.Str("F.Paste")),
			ir.Sym("locked")),
		ir.NewToken("kicad_symbol_lib",
			ir.NewToken("version", ir.FromInt(20231120)),
			ir.NewToken("generator", ir.Str("go-sx")),
			ir.NewToken("symbol", ir.Str("R"),
				ir.NewToken("property", ir.Str("Reference"), ir.Str("R"),
					ir.NewToken("at", ir.FromFloat(2.032), ir.FromFloat(0), ir.FromInt(90)),
					ir.NewToken("effects",
						ir.NewToken("font",
							ir.NewToken("size", ir.FromFloat(1.27), ir.FromFloat(1.27))))))),
	}
	for _, n := range trees {
		out := MustString(n)
		back, err := parse.ParseString(out)
		if err != nil {
			t.Errorf("re-parse of %q: %v", out, err)
			continue
		}
		if !ir.Equal(n, back) {
			t.Errorf("round trip changed tree for %q", out)
		}
		if again := MustString(back); again != out {
			t.Errorf("render not idempotent:\n%q\n%q", out, again)
		}
	}
}

// Numeric fidelity: a float atom with an integral value renders with the
// fractional marker and re-parses as a float, never an integer.
func TestFloatFidelity(t *testing.T) {
	n := ir.NewToken("thickness", ir.FromFloat(2))
	out := MustString(n)
	if out != `(thickness 2.0)` {
		t.Fatalf("got %q", out)
	}
	back, err := parse.ParseString(out)
	if err != nil {
		t.Fatal(err)
	}
	v := back.Values[1]
	if v.Type != ir.FloatType || v.Float64 != 2 {
		t.Errorf("re-parsed as %s (%v), want float 2", v.Type, v)
	}
}

func TestDeepNesting(t *testing.T) {
	// 100 levels deep renders and re-parses without failure
	n := ir.NewToken("leaf", ir.FromInt(1))
	for i := 0; i < 99; i++ {
		n = ir.NewToken("wrap", n)
	}
	out := MustString(n)
	back, err := parse.ParseString(out)
	if err != nil {
		t.Fatal(err)
	}
	if !ir.Equal(n, back) {
		t.Error("deep round trip changed tree")
	}
}
