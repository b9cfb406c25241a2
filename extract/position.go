package extract

import "github.com/sx-format/go-sx/ir"

// Position is the (name X Y [Angle]) record shape, e.g. (at 1.27 0 90).
// Angle is 0 when the slot is absent; HasAngle distinguishes an absent
// slot from an explicit 0.
type Position struct {
	X, Y     float64
	Angle    float64
	HasAngle bool
}

// OptionalPosition reads X from slot 1, Y from slot 2, and the angle from
// slot 3 when present.  A token missing either coordinate yields
// (zero, false).
func OptionalPosition(list *ir.Node, name string) (Position, bool) {
	return positionOf(FindToken(list, name))
}

// RequiredPosition is OptionalPosition with the required-field policy:
// no token and no default is a *MissingFieldError.
func RequiredPosition(list *ir.Node, name string, def ...Position) (Position, error) {
	if p, ok := positionOf(FindToken(list, name)); ok {
		return p, nil
	}
	if len(def) > 0 {
		return def[0], nil
	}
	return Position{}, &MissingFieldError{Field: name}
}

func positionOf(tok *ir.Node) (Position, bool) {
	x, ok := asFloat(Value(tok, 1))
	if !ok {
		return Position{}, false
	}
	y, ok := asFloat(Value(tok, 2))
	if !ok {
		return Position{}, false
	}
	p := Position{X: x, Y: y}
	if a, ok := asFloat(Value(tok, 3)); ok {
		p.Angle = a
		p.HasAngle = true
	}
	return p, true
}
