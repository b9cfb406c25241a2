package parse

import "bytes"

// StripHashLines removes lines whose first non-blank character is '#'.
// The grammar has no comment syntax; the one file family that carries
// '#'-prefixed lines strips them as an explicit pre-processing step before
// text reaches the tokenizer, and this is that step.  Other lines pass
// through untouched, so positions shift only by whole removed lines.
func StripHashLines(d []byte) []byte {
	res := make([]byte, 0, len(d))
	for len(d) > 0 {
		line := d
		if i := bytes.IndexByte(d, '\n'); i >= 0 {
			line = d[:i+1]
			d = d[i+1:]
		} else {
			d = nil
		}
		trimmed := bytes.TrimLeft(line, " \t")
		if len(trimmed) > 0 && trimmed[0] == '#' {
			continue
		}
		res = append(res, line...)
	}
	return res
}
