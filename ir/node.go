package ir

// Node is the generic S-expression tree value, a closed tagged union over
// Type.  Text carries symbol and string values, Int64 and Float64 carry the
// two numeric kinds, and Values carries list children in insertion order.
// The integer/float split is load-bearing: a FloatType node renders with a
// fractional marker even for integral values, and the two kinds never
// coerce into each other.
type Node struct {
	Type        Type
	Parent      *Node
	ParentIndex int

	Text    string
	Int64   int64
	Float64 float64
	Values  []*Node
}

// Sym returns a symbol atom: an unquoted identifier, record-type name, enum
// literal, or bare boolean flag.
func Sym(v string) *Node {
	return &Node{Type: SymbolType, Text: v}
}

// Str returns a string atom, quoted on render.
func Str(v string) *Node {
	return &Node{Type: StringType, Text: v}
}

func FromInt(v int64) *Node {
	return &Node{Type: IntType, Int64: v}
}

func FromFloat(v float64) *Node {
	return &Node{Type: FloatType, Float64: v}
}

// List returns a list node over children, adopting them in order.  An empty
// list is valid and distinct from a nil node.
func List(children ...*Node) *Node {
	res := &Node{Type: ListType, Values: make([]*Node, 0, len(children))}
	return res.Append(children...)
}

// NewToken returns the named-list record shape used throughout the format:
// a list whose first child is the Symbol name.
func NewToken(name string, children ...*Node) *Node {
	return List(append([]*Node{Sym(name)}, children...)...)
}

// Append adopts children at the end of a list node and returns it, for
// builder-style construction.  Trees coming out of the parser are not
// mutated; build a new tree instead.
func (y *Node) Append(children ...*Node) *Node {
	for _, c := range children {
		c.Parent = y
		c.ParentIndex = len(y.Values)
		y.Values = append(y.Values, c)
	}
	return y
}

func (y *Node) IsList() bool {
	return y.Type == ListType
}

func (y *Node) IsAtom() bool {
	return y.Type != ListType
}

// Head returns the first child of a list, or nil.
func (y *Node) Head() *Node {
	if y.Type != ListType || len(y.Values) == 0 {
		return nil
	}
	return y.Values[0]
}

// TokenName returns the head symbol text of a named list, or "" when the
// node is not a list or its head is not a symbol.
func (y *Node) TokenName() string {
	h := y.Head()
	if h == nil || h.Type != SymbolType {
		return ""
	}
	return h.Text
}

func (y *Node) Root() *Node {
	res := y
	for res.Parent != nil {
		res = res.Parent
	}
	return res
}

func (y *Node) Clone() *Node {
	res := &Node{}
	return y.CloneTo(res)
}

func (y *Node) CloneTo(dst *Node) *Node {
	dst.Parent = y.Parent
	dst.ParentIndex = y.ParentIndex
	dst.Type = y.Type
	dst.Text = y.Text
	dst.Int64 = y.Int64
	dst.Float64 = y.Float64
	if y.Values != nil {
		dst.Values = make([]*Node, len(y.Values))
		for i, yv := range y.Values {
			dstI := &Node{}
			yv.CloneTo(dstI)
			dstI.Parent = dst
			dstI.ParentIndex = i
			dst.Values[i] = dstI
		}
	}
	return dst
}

// Visit walks the tree pre- and post-order.  The pre call's first result
// controls whether children are visited.
func (y *Node) Visit(f func(y *Node, isPost bool) (bool, error)) error {
	dive, err := f(y, false)
	if err != nil {
		return err
	}
	if dive {
		for _, yy := range y.Values {
			if err := yy.Visit(f); err != nil {
				return err
			}
		}
	}
	if _, err := f(y, true); err != nil {
		return err
	}
	return nil
}
