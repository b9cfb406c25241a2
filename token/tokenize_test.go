package token

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

type tokTest struct {
	in    string
	types []TokenType
	vals  []string
}

func TestTokenizeOK(t *testing.T) {
	tts := []tokTest{
		{
			in:    `(net 1 "GND")`,
			types: []TokenType{TLParen, TSymbol, TInteger, TString, TRParen},
			vals:  []string{"(", "net", "1", "GND", ")"},
		},
		{
			in:    "(at 1.27 -2.54 90)",
			types: []TokenType{TLParen, TSymbol, TFloat, TFloat, TInteger, TRParen},
			vals:  []string{"(", "at", "1.27", "-2.54", "90", ")"},
		},
		{
			in:    "()",
			types: []TokenType{TLParen, TRParen},
		},
		{
			in:    "\t( pts\n\t\t(xy 0 0)\n)",
			types: []TokenType{TLParen, TSymbol, TLParen, TSymbol, TInteger, TInteger, TRParen, TRParen},
		},
		{
			// numbers that are not numbers
			in:    "1.2.3 20241201-a - +",
			types: []TokenType{TSymbol, TSymbol, TSymbol, TSymbol},
		},
		{
			in:    "1e9 -1.5e-3 +4",
			types: []TokenType{TFloat, TFloat, TInteger},
		},
		{
			in:    `"a\"b" "c\\d" "e\nf"`,
			types: []TokenType{TString, TString, TString},
			vals:  []string{`a"b`, `c\d`, `e\nf`},
		},
		{
			in:    `""`,
			types: []TokenType{TString},
			vals:  []string{""},
		},
		{
			in:    "F.Cu hide locked",
			types: []TokenType{TSymbol, TSymbol, TSymbol},
		},
		{
			in:    "",
			types: nil,
		},
	}
	for _, tt := range tts {
		toks, err := Tokenize(nil, []byte(tt.in))
		if err != nil {
			t.Errorf("%q: %v", tt.in, err)
			continue
		}
		var types []TokenType
		var vals []string
		for i := range toks {
			types = append(types, toks[i].Type)
			vals = append(vals, toks[i].String())
		}
		if d := cmp.Diff(tt.types, types); d != "" {
			t.Errorf("%q: token types (-want +got):\n%s", tt.in, d)
		}
		if tt.vals != nil {
			if d := cmp.Diff(tt.vals, vals); d != "" {
				t.Errorf("%q: token values (-want +got):\n%s", tt.in, d)
			}
		}
	}
}

func TestTokenizeErrs(t *testing.T) {
	tts := []struct {
		in string
		e  error
	}{
		{in: `"unterminated`, e: ErrUnterminatedString},
		{in: `(text "a`, e: ErrUnterminatedString},
		{in: `"ends in backslash\`, e: ErrUnterminatedString},
		{in: "(a \x01 b)", e: ErrInvalidCharacter},
		{in: "(a \xff\xfe)", e: ErrBadUTF8},
	}
	for _, tt := range tts {
		_, err := Tokenize(nil, []byte(tt.in))
		if err == nil {
			t.Errorf("%q: expected error", tt.in)
			continue
		}
		if !errors.Is(err, tt.e) {
			t.Errorf("%q: got %v, want %v", tt.in, err, tt.e)
		}
	}
}

func TestTokenizePos(t *testing.T) {
	toks, err := Tokenize(nil, []byte("(a\n\t(b 1))"))
	if err != nil {
		t.Fatal(err)
	}
	// the "b" symbol sits on line 1, after the tab
	var b *Token
	for i := range toks {
		if string(toks[i].Bytes) == "b" {
			b = &toks[i]
		}
	}
	if b == nil {
		t.Fatal("no b token")
	}
	if l := b.Pos.Line(); l != 1 {
		t.Errorf("line: got %d, want 1", l)
	}
	if c := b.Pos.Col(); c != 2 {
		t.Errorf("col: got %d, want 2", c)
	}
}

func TestTokenizerNext(t *testing.T) {
	tk := NewTokenizer([]byte("(x 1)"))
	n := 0
	for {
		_, err := tk.Next()
		if err != nil {
			break
		}
		n++
	}
	if n != 4 {
		t.Errorf("got %d tokens, want 4", n)
	}
}
