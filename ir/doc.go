// Package ir provides the intermediate representation for S-expression
// documents.
//
// A Node is either an atom (symbol, string, integer, float) or a list of
// nodes.  Records follow the named-list convention: a list whose first
// child is a Symbol naming the record type, e.g.
//
//	(property "Reference" "U")
//
// built as
//
//	ir.NewToken("property", ir.Str("Reference"), ir.Str("U"))
//
// Trees are produced by the parse package or built directly with the
// constructors here, consumed once by the extract utilities or the encode
// package, and then discarded.  A tree is exclusively owned by the
// operation that built it; nothing in this package locks or shares.
//
// Related packages:
//
//   - github.com/sx-format/go-sx/parse - parses text into Node trees
//   - github.com/sx-format/go-sx/encode - renders Node trees to text
//   - github.com/sx-format/go-sx/extract - field lookup and coercion
package ir
