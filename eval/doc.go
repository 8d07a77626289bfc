// Package eval evaluates expr-lang expressions against QMLON documents.
//
// A document is exposed to an expression through its generic mapping (see
// [ToAny]): objects become maps with "type", "properties" and "children"
// entries, lists become []any and scalars become bool, int, float64 and
// string. When the document is an object its type, properties and children
// are also bound at the top level of the environment as "typename",
// "properties" and "children", so
//
//	properties.id
//	len(children)
//	get("$/Animation[0].name")
//
// all evaluate directly. The result is converted back with [FromAny].
package eval
