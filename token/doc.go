// Package token tokenizes S-expression text into parens, symbols, quoted
// strings, and numeric lexemes.  It keeps raw lexemes so the integer/float
// distinction survives into the parser, and resolves positions lazily from
// byte offsets.
package token
