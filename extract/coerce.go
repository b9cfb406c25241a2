package extract

import (
	"strconv"

	"github.com/sx-format/go-sx/ir"
)

// Coercions are total: they report failure through their second result and
// never panic or error, so optional-field callers get a clean fallback.

func asString(node *ir.Node) (string, bool) {
	if node == nil {
		return "", false
	}
	switch node.Type {
	case ir.StringType, ir.SymbolType:
		return node.Text, true
	default:
		return "", false
	}
}

// asInt converts integer atoms and integer-valued text atoms.  Float atoms
// do not convert: truncating silently would hide a schema mismatch.
func asInt(node *ir.Node) (int64, bool) {
	if node == nil {
		return 0, false
	}
	switch node.Type {
	case ir.IntType:
		return node.Int64, true
	case ir.StringType, ir.SymbolType:
		i, err := strconv.ParseInt(node.Text, 10, 64)
		if err != nil {
			return 0, false
		}
		return i, true
	default:
		return 0, false
	}
}

// asFloat converts float atoms, integer atoms, and numeric text atoms.
// Legacy writers quote numbers or drop the fractional marker, so all three
// shapes appear in the wild.
func asFloat(node *ir.Node) (float64, bool) {
	if node == nil {
		return 0, false
	}
	switch node.Type {
	case ir.FloatType:
		return node.Float64, true
	case ir.IntType:
		return float64(node.Int64), true
	case ir.StringType, ir.SymbolType:
		f, err := strconv.ParseFloat(node.Text, 64)
		if err != nil {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}
