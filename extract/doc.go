// Package extract provides the generic lookup and coercion layer every
// record schema builds on: find a named sub-record in a list, read a
// positional slot, coerce it to a Go value.
//
// The compatibility policy of the whole format is concentrated here rather
// than duplicated across schemas.  Optional accessors and Enum never fail
// on missing or unrecognized data; they fall back to the zero value or the
// caller's default, because inputs written by other tool versions routinely
// carry renamed, removed, or unknown fields.  Only the Required accessors,
// called with no default, return an error - a *MissingFieldError naming the
// absent field.
package extract
