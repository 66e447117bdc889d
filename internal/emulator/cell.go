// Package emulator implements a character-cell terminal emulator: a
// Unicode-width-aware Cell Grid driven by an ANSI/CSI/SGR byte-stream
// parser.
package emulator

// Color is an RGB foreground color. Default reports whether the cell
// should use the caller-supplied default foreground rather than RGB.
type Color struct {
	Default bool
	R, G, B uint8
}

// DefaultColor is the SGR-reset foreground.
var DefaultColor = Color{Default: true}

// NUL is the placeholder sentinel: a cell bearing it never renders a
// glyph and visually belongs to the wide character immediately to its
// left in the same row.
const NUL = rune(0)

// Cell is a single character-cell: a code point plus its SGR attributes
// at the time it was written.
type Cell struct {
	Ch   rune
	FG   Color
	Bold bool
}

// IsPlaceholder reports whether c is a placeholder cell (NUL), which the
// paint loop must skip rather than render as a glyph.
func (c Cell) IsPlaceholder() bool {
	return c.Ch == NUL
}

func blankCell() Cell {
	return Cell{Ch: ' ', FG: DefaultColor}
}
