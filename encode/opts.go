package encode

type EncodeOption func(*EncState)

// EncodeIndent sets the number of spaces per nesting level.
func EncodeIndent(n int) EncodeOption {
	return func(es *EncState) { es.indent = n }
}
func EncodeColors(c *Colors) EncodeOption {
	return func(es *EncState) { es.Color = c.Color }
}
func EncodeWire(v bool) EncodeOption {
	return func(es *EncState) { es.wire = v }
}
