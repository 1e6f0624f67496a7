package encode

type EncodeOption func(*EncState)

// EncodeDepth sets the depth at which the encoded node is written.
func EncodeDepth(n int) EncodeOption {
	return func(es *EncState) { es.depth = n }
}
func EncodeColors(c *Colors) EncodeOption {
	return func(es *EncState) { es.Color = c.Color }
}

// EncodeNewline overrides the document's line ending.
func EncodeNewline(nl string) EncodeOption {
	return func(es *EncState) { es.newline = nl }
}
