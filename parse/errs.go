package parse

import (
	"errors"
	"fmt"
)

var (
	errInternal = errors.New("internal parse error")

	ErrParse            = errors.New("parse error")
	ErrUnexpectedToken  = fmt.Errorf("%w: unexpected token", ErrParse)
	ErrUnterminatedList = fmt.Errorf("%w: unterminated list", ErrParse)
	ErrTooDeep          = fmt.Errorf("%w: maximum nesting depth exceeded", ErrParse)
)
