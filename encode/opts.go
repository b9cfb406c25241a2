package encode

type EncodeOption func(*EncState)

// Indent sets the indent unit for multi-line lists.  The reference writer
// uses one tab, which is the default.
func Indent(s string) EncodeOption {
	return func(es *EncState) { es.indent = s }
}

// Depth sets the starting indentation depth, for rendering a subtree inside
// an already-indented context.
func Depth(n int) EncodeOption {
	return func(es *EncState) { es.depth = n }
}

// EncodeColors enables ANSI-colored output, for terminal viewing only; the
// result is not meant to re-parse.
func EncodeColors(c *Colors) EncodeOption {
	return func(es *EncState) { es.Color = c.Color }
}

// DocumentRoots replaces the set of head symbols treated as library or
// document roots, which carry a trailing newline after the final ")".
// Passing no names clears the set.
func DocumentRoots(names ...string) EncodeOption {
	return func(es *EncState) {
		es.roots = make(map[string]bool, len(names))
		for _, n := range names {
			es.roots[n] = true
		}
	}
}

func defaultRoots() map[string]bool {
	return map[string]bool{
		"kicad_sch":        true,
		"kicad_pcb":        true,
		"kicad_symbol_lib": true,
		"kicad_wks":        true,
	}
}
