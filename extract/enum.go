package extract

import "github.com/sx-format/go-sx/ir"

// Enum coerces an atom into one member of a closed set.  Unrecognized or
// non-atom input returns def rather than failing: this is the deliberate
// compatibility seam that lets schemas tolerate enum tokens added or
// renamed by other tool versions.
func Enum[T ~string](node *ir.Node, allowed []T, def T) T {
	v, ok := asString(node)
	if !ok {
		return def
	}
	for _, a := range allowed {
		if v == string(a) {
			return a
		}
	}
	return def
}

// TokenEnum locates the named token in list and parses its value slot as a
// member of allowed, with the same fallback policy as Enum.
func TokenEnum[T ~string](list *ir.Node, name string, allowed []T, def T) T {
	tok := FindToken(list, name)
	if tok == nil {
		return def
	}
	return Enum(Value(tok, 1), allowed, def)
}
