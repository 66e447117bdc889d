package emulator

import "github.com/atsterm/ats/internal/width"

// widthOracle reports the display width of r: 0, 1, or 2.
func widthOracle(r rune) int {
	return width.Of(r)
}
