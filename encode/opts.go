package encode

// DefaultIndent matches parse.DefaultIndent.
const DefaultIndent = 2

type EncodeOption func(*EncState)

// Indent sets the number of spaces per render depth level.
func Indent(n int) EncodeOption {
	return func(es *EncState) {
		if n < 1 {
			n = DefaultIndent
		}
		es.indent = n
	}
}

// EncodeColors renders with ANSI colors.
func EncodeColors(c *Colors) EncodeOption {
	return func(es *EncState) { es.colors = c }
}
