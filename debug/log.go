package debug

import (
	"bytes"
	"fmt"
	"os"

	"github.com/sx-format/go-sx/encode"
	"github.com/sx-format/go-sx/ir"
)

// Sexp makes a node render as formatted source in Logf output.
type Sexp struct{ *ir.Node }

func (s Sexp) String() string {
	x := s.Node
	buf := bytes.NewBuffer(nil)
	if err := encode.Encode(x, buf); err != nil {
		return fmt.Sprintf("[raw *ir.Node] %v", x)
	}
	return buf.String()
}

func Logf(msg string, args ...any) {
	for i := range args {
		switch x := args[i].(type) {
		case *ir.Node:
			args[i] = Sexp{x}.String()
		default:
		}
	}
	fmt.Fprintf(os.Stderr, msg, args...)
}
