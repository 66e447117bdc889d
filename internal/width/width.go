// Package width maps Unicode code points to terminal display columns.
//
// It layers the explicit emoji ranges the emulator must treat as
// double-width on top of github.com/mattn/go-runewidth's East Asian Width
// table, since go-runewidth alone classifies most emoji as narrow.
package width

import "github.com/mattn/go-runewidth"

// explicitWide lists the code point ranges (inclusive) that are always
// double-width regardless of what the East Asian Width table says.
var explicitWide = []struct{ lo, hi rune }{
	{0x1F600, 0x1F64F}, // Emoticons
	{0x1F300, 0x1F5FF}, // Misc Symbols & Pictographs
	{0x1F680, 0x1F6FF}, // Transport & Map
	{0x1F900, 0x1F9FF}, // Supplemental Symbols & Pictographs
	{0x1F910, 0x1F96B}, // Extra Emoticons (subset of the above, kept for clarity)
	{0x2700, 0x27BF},   // Dingbats
	{0x2600, 0x26FF},   // Misc Symbols
	{0x2B50, 0x2B55},   // Stars
}

// Of returns the display width of r: 0, 1, or 2.
//
// Control characters and NUL never reach the placement path in the
// emulator, but Of still reports their width as 0 for completeness.
func Of(r rune) int {
	if r == 0 || isControl(r) {
		return 0
	}
	for _, rg := range explicitWide {
		if r >= rg.lo && r <= rg.hi {
			return 2
		}
	}
	if runewidth.RuneWidth(r) >= 2 {
		return 2
	}
	// Zero-width combining marks are folded to width 1; composing them
	// into the preceding cell is left as a future mode (open question).
	return 1
}

func isControl(r rune) bool {
	return r < 0x20 || r == 0x7F
}
