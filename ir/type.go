package ir

type Type int

const (
	SymbolType Type = iota
	StringType
	IntType
	FloatType
	ListType
)

func (t Type) String() string {
	switch t {
	case SymbolType:
		return "symbol"
	case StringType:
		return "string"
	case IntType:
		return "int"
	case FloatType:
		return "float"
	case ListType:
		return "list"
	}
	return "unknown"
}

func Types() []Type {
	return []Type{SymbolType, StringType, IntType, FloatType, ListType}
}
