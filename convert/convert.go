// Package convert lowers S-expression trees into plain Go values for
// inspection and interop pipelines.  The lowering is lossy on purpose:
// the Symbol/String distinction and the named-list convention do not
// survive, so convert output is for reading, not for round-tripping.
package convert

import (
	"encoding/json"

	"github.com/goccy/go-yaml"

	"github.com/sx-format/go-sx/ir"
)

// ToAny lowers a tree to nested []any and scalars.  Symbols and strings
// both become string, integers int64, floats float64.  A nil node lowers
// to nil.
func ToAny(node *ir.Node) any {
	if node == nil {
		return nil
	}
	switch node.Type {
	case ir.ListType:
		res := make([]any, len(node.Values))
		for i, c := range node.Values {
			res[i] = ToAny(c)
		}
		return res
	case ir.SymbolType, ir.StringType:
		return node.Text
	case ir.IntType:
		return node.Int64
	case ir.FloatType:
		return node.Float64
	default:
		panic("type")
	}
}

// ToYAML renders the lowered tree as YAML.
func ToYAML(node *ir.Node) ([]byte, error) {
	return yaml.Marshal(ToAny(node))
}

// ToJSON renders the lowered tree as JSON.
func ToJSON(node *ir.Node) ([]byte, error) {
	return json.Marshal(ToAny(node))
}
