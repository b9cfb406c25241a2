package token

import "strings"

// Quote renders v as a double-quoted string lexeme.  The format defines
// exactly two escapes, `\"` and `\\`; everything else passes through
// verbatim, including newlines and backslash sequences such as `\n` that
// some writers embed as two literal characters.
func Quote(v string) string {
	b := &strings.Builder{}
	b.Grow(len(v) + 2)
	b.WriteByte('"')
	for i := 0; i < len(v); i++ {
		switch v[i] {
		case '"':
			b.WriteString(`\"`)
		case '\\':
			b.WriteString(`\\`)
		default:
			b.WriteByte(v[i])
		}
	}
	b.WriteByte('"')
	return b.String()
}

// QuotedToString resolves a quoted lexeme, delimiters included, into its
// string value.  A backslash before anything other than `"` or `\` is not
// an escape and is kept literally, so unknown sequences survive a
// parse/render cycle unchanged.  The tokenizer has already verified the
// lexeme is terminated, so this is total.
func QuotedToString(d []byte) string {
	b := &strings.Builder{}
	b.Grow(len(d))
	i := 1
	end := len(d) - 1
	for i < end {
		c := d[i]
		if c == '\\' && i+1 < end {
			switch d[i+1] {
			case '"', '\\':
				b.WriteByte(d[i+1])
				i += 2
				continue
			}
		}
		b.WriteByte(c)
		i++
	}
	return b.String()
}
