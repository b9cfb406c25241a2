package extract

import "github.com/sx-format/go-sx/ir"

// FindToken returns the first child list of list whose head symbol is name,
// or nil.  Example: FindToken(pad, "at") finds (at 1.27 0) among pad's
// children.
func FindToken(list *ir.Node, name string) *ir.Node {
	if list == nil || list.Type != ir.ListType {
		return nil
	}
	for _, c := range list.Values {
		if c.Type == ir.ListType && c.TokenName() == name {
			return c
		}
	}
	return nil
}

// FindAllTokens returns every child list of list whose head symbol is name,
// in original order.
func FindAllTokens(list *ir.Node, name string) []*ir.Node {
	if list == nil || list.Type != ir.ListType {
		return nil
	}
	var res []*ir.Node
	for _, c := range list.Values {
		if c.Type == ir.ListType && c.TokenName() == name {
			res = append(res, c)
		}
	}
	return res
}

// HasSymbol reports whether any direct child atom of list is Symbol(name).
// This is how bare boolean flags (locked, hide, fields_autoplaced) are
// represented.
func HasSymbol(list *ir.Node, name string) bool {
	if list == nil || list.Type != ir.ListType {
		return false
	}
	for _, c := range list.Values {
		if c.Type == ir.SymbolType && c.Text == name {
			return true
		}
	}
	return false
}

// Value returns the child of list at index i, or nil when list is not a
// list or i is out of range.  It never panics.
func Value(list *ir.Node, i int) *ir.Node {
	if list == nil || list.Type != ir.ListType {
		return nil
	}
	if i < 0 || i >= len(list.Values) {
		return nil
	}
	return list.Values[i]
}

// ValueOr is Value with a caller-supplied fallback.
func ValueOr(list *ir.Node, i int, def *ir.Node) *ir.Node {
	if v := Value(list, i); v != nil {
		return v
	}
	return def
}
