package token

import "fmt"

type TokenType int

const (
	TLParen TokenType = iota
	TRParen
	TSymbol
	TString
	TInteger
	TFloat
)

func (t TokenType) String() string {
	return map[TokenType]string{
		TLParen:  "TLParen",
		TRParen:  "TRParen",
		TSymbol:  "TSymbol",
		TString:  "TString",
		TInteger: "TInteger",
		TFloat:   "TFloat",
	}[t]
}

// Token is one lexical element of an S-expression document.  Bytes holds
// the raw lexeme, quotes included for TString.
type Token struct {
	Type  TokenType
	Pos   *Pos
	Bytes []byte
}

func (t *Token) Info() string {
	return fmt.Sprintf("%s %s", t.Type, t.Pos.String())
}

// String returns the resolved value of the token: the unquoted, unescaped
// text for TString and the raw lexeme for everything else.
func (t *Token) String() string {
	if t.Type == TString {
		return QuotedToString(t.Bytes)
	}
	return string(t.Bytes)
}

type TokenizeErr struct {
	Err error
	Pos Pos
}

func NewTokenizeErr(e error, p *Pos) *TokenizeErr {
	return &TokenizeErr{Err: e, Pos: *p}
}

func (e *TokenizeErr) Unwrap() error {
	return e.Err
}

func (e *TokenizeErr) Error() string {
	return fmt.Sprintf("%s at %s", e.Err.Error(), e.Pos.String())
}
