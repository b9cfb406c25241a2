package encode

import "github.com/sx-format/go-sx/ir"

// MustString renders node, panicking on writer failure, which a
// strings.Builder cannot produce.  For tests and building error messages.
func MustString(node *ir.Node, opts ...EncodeOption) string {
	s, err := String(node, opts...)
	if err != nil {
		panic(err)
	}
	return s
}
