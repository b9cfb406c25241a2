package token

import (
	"io"
	"unicode/utf8"
)

// Tokenizer walks a byte slice and produces S-expression tokens one at a
// time.  It is single use; re-invoke Tokenize (or build a new Tokenizer) to
// restart.
type Tokenizer struct {
	doc    []byte
	posDoc *PosDoc
	i      int
}

func NewTokenizer(src []byte) *Tokenizer {
	return &Tokenizer{
		doc:    src,
		posDoc: &PosDoc{d: src},
	}
}

// Tokenize appends all tokens of src to dst.  It is a pure function of src:
// no I/O, no shared state.
func Tokenize(dst []Token, src []byte) ([]Token, error) {
	tk := NewTokenizer(src)
	for {
		t, err := tk.Next()
		if err == io.EOF {
			return dst, nil
		}
		if err != nil {
			return nil, err
		}
		dst = append(dst, *t)
	}
}

// Next returns the next token, or io.EOF when the input is exhausted.
func (tk *Tokenizer) Next() (*Token, error) {
	d, n := tk.doc, len(tk.doc)
	for tk.i < n {
		switch d[tk.i] {
		case ' ', '\t', '\r':
			tk.i++
		case '\n':
			tk.posDoc.nl(tk.i)
			tk.i++
		default:
			goto scan
		}
	}
	return nil, io.EOF

scan:
	start := tk.i
	switch d[start] {
	case '(':
		tk.i++
		return &Token{Type: TLParen, Pos: tk.posDoc.Pos(start), Bytes: d[start:tk.i]}, nil
	case ')':
		tk.i++
		return &Token{Type: TRParen, Pos: tk.posDoc.Pos(start), Bytes: d[start:tk.i]}, nil
	case '"':
		return tk.scanString()
	default:
		return tk.scanRun()
	}
}

func (tk *Tokenizer) scanString() (*Token, error) {
	d, n := tk.doc, len(tk.doc)
	start := tk.i
	tk.i++
	for tk.i < n {
		switch d[tk.i] {
		case '\\':
			if tk.i+1 < n {
				tk.i++
			}
		case '"':
			tk.i++
			return &Token{Type: TString, Pos: tk.posDoc.Pos(start), Bytes: d[start:tk.i]}, nil
		case '\n':
			tk.posDoc.nl(tk.i)
		}
		tk.i++
	}
	return nil, NewTokenizeErr(ErrUnterminatedString, tk.posDoc.Pos(start))
}

// scanRun reads an unquoted run, delimited by whitespace, parens, or a
// quote, and classifies it as a number or symbol.
func (tk *Tokenizer) scanRun() (*Token, error) {
	d, n := tk.doc, len(tk.doc)
	start := tk.i
	for tk.i < n {
		c := d[tk.i]
		switch c {
		case ' ', '\t', '\r', '\n', '(', ')', '"':
			goto done
		}
		if c < 0x20 {
			return nil, NewTokenizeErr(ErrInvalidCharacter, tk.posDoc.Pos(tk.i))
		}
		tk.i++
	}
done:
	run := d[start:tk.i]
	if !utf8.Valid(run) {
		return nil, NewTokenizeErr(ErrBadUTF8, tk.posDoc.Pos(start))
	}
	tok := &Token{Type: TSymbol, Pos: tk.posDoc.Pos(start), Bytes: run}
	if isNum, isFloat := number(run); isNum {
		if isFloat {
			tok.Type = TFloat
		} else {
			tok.Type = TInteger
		}
	}
	return tok, nil
}
