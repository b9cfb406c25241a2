package ir

import (
	"cmp"
	"strings"
)

// Equal reports structural equality: same type, same value, same children
// in the same order.  Parent links are ignored.  IntType and FloatType
// nodes are never equal to each other, whatever their values.
func Equal(a, b *Node) bool {
	return Compare(a, b) == 0
}

// Compare returns an integer comparing two nodes.
// The result will be 0 if a==b, -1 if a < b, and +1 if a > b.
// The order is total but arbitrary across types; it exists for test and
// diff tooling, not for the render path.
func Compare(a, b *Node) int {
	if a == b {
		return 0
	}
	if a == nil {
		return -1
	}
	if b == nil {
		return 1
	}

	rankA := rank(a.Type)
	rankB := rank(b.Type)
	if rankA != rankB {
		return cmp.Compare(rankA, rankB)
	}

	switch a.Type {
	case SymbolType, StringType:
		return strings.Compare(a.Text, b.Text)
	case IntType:
		return cmp.Compare(a.Int64, b.Int64)
	case FloatType:
		return cmp.Compare(a.Float64, b.Float64)
	case ListType:
		return compareLists(a, b)
	}
	return 0
}

// rank returns the sorting rank of a type.
// Order: Symbol < String < Int < Float < List
func rank(t Type) int {
	switch t {
	case SymbolType:
		return 0
	case StringType:
		return 1
	case IntType:
		return 2
	case FloatType:
		return 3
	case ListType:
		return 4
	}
	return 100
}

func compareLists(a, b *Node) int {
	lenA := len(a.Values)
	lenB := len(b.Values)
	minLen := min(lenA, lenB)

	for i := 0; i < minLen; i++ {
		if c := Compare(a.Values[i], b.Values[i]); c != 0 {
			return c
		}
	}
	return cmp.Compare(lenA, lenB)
}
