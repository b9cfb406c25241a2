package token

import "errors"

var (
	ErrUnterminatedString = errors.New("unterminated string")
	ErrInvalidCharacter   = errors.New("invalid character")
	ErrBadUTF8            = errors.New("bad utf8")
)
