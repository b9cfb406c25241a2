package extract

import "github.com/sx-format/go-sx/ir"

// The Optional getters locate the named token, read its first value slot
// (slots 1..3 for positions), and coerce.  Absence and coercion failure
// both yield (zero, false); they never fail.

func OptionalString(list *ir.Node, name string) (string, bool) {
	return asString(Value(FindToken(list, name), 1))
}

func OptionalInt(list *ir.Node, name string) (int64, bool) {
	return asInt(Value(FindToken(list, name), 1))
}

func OptionalFloat(list *ir.Node, name string) (float64, bool) {
	return asFloat(Value(FindToken(list, name), 1))
}

// The Required getters perform the identical lookup.  When the token is
// absent and the caller supplied no default they fail with a
// *MissingFieldError; with a default they return it instead.  A present
// token that fails coercion also counts as absent, so a default still
// applies.

func RequiredString(list *ir.Node, name string, def ...string) (string, error) {
	if v, ok := asString(Value(FindToken(list, name), 1)); ok {
		return v, nil
	}
	if len(def) > 0 {
		return def[0], nil
	}
	return "", &MissingFieldError{Field: name}
}

func RequiredInt(list *ir.Node, name string, def ...int64) (int64, error) {
	if v, ok := asInt(Value(FindToken(list, name), 1)); ok {
		return v, nil
	}
	if len(def) > 0 {
		return def[0], nil
	}
	return 0, &MissingFieldError{Field: name}
}

func RequiredFloat(list *ir.Node, name string, def ...float64) (float64, error) {
	if v, ok := asFloat(Value(FindToken(list, name), 1)); ok {
		return v, nil
	}
	if len(def) > 0 {
		return def[0], nil
	}
	return 0, &MissingFieldError{Field: name}
}
