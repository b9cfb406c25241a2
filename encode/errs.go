package encode

import "errors"

var errInternal = errors.New("internal encode error")
