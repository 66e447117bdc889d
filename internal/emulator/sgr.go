package emulator

// sgrState is the Select Graphic Rendition state: current foreground
// color and bold flag. Reset to defaultSGR() (default foreground, bold
// off) on SGR 0.
type sgrState struct {
	fg   Color
	bold bool
}

func defaultSGR() sgrState {
	return sgrState{fg: DefaultColor}
}

// standardFG is the classic 8-color ANSI palette (indices 0-7).
var standardFG = [8]Color{
	{R: 0, G: 0, B: 0},
	{R: 205, G: 0, B: 0},
	{R: 0, G: 205, B: 0},
	{R: 205, G: 205, B: 0},
	{R: 0, G: 0, B: 238},
	{R: 205, G: 0, B: 205},
	{R: 0, G: 205, B: 205},
	{R: 229, G: 229, B: 229},
}

// brightFG is the bright ANSI palette (indices 8-15, SGR 90-97).
var brightFG = [8]Color{
	{R: 127, G: 127, B: 127},
	{R: 255, G: 0, B: 0},
	{R: 0, G: 255, B: 0},
	{R: 255, G: 255, B: 0},
	{R: 92, G: 92, B: 255},
	{R: 255, G: 0, B: 255},
	{R: 0, G: 255, B: 255},
	{R: 255, G: 255, B: 255},
}

// palette256 maps a 256-color index (0-255) to RGB, following the
// standard xterm layout: 0-15 system colors, 16-231 a 6x6x6 cube,
// 232-255 a grayscale ramp.
func palette256(n int) Color {
	n = clamp(n, 0, 255)
	switch {
	case n < 8:
		return standardFG[n]
	case n < 16:
		return brightFG[n-8]
	case n < 232:
		n -= 16
		r := cubeLevel(n / 36)
		g := cubeLevel((n / 6) % 6)
		b := cubeLevel(n % 6)
		return Color{R: r, G: g, B: b}
	default:
		v := uint8(8 + (n-232)*10)
		return Color{R: v, G: v, B: v}
	}
}

var cubeSteps = [6]uint8{0, 95, 135, 175, 215, 255}

func cubeLevel(i int) uint8 {
	if i < 0 || i >= len(cubeSteps) {
		return 0
	}
	return cubeSteps[i]
}

// applySGR updates st in place for one CSI `m` sequence's parameters.
// Unknown parameters are ignored.
func applySGR(st *sgrState, params []int) {
	if len(params) == 0 {
		params = []int{0}
	}
	i := 0
	for i < len(params) {
		p := params[i]
		switch {
		case p == 0:
			*st = defaultSGR()
		case p == 1:
			st.bold = true
		case p == 22:
			st.bold = false
		case p == 39:
			st.fg = DefaultColor
		case p >= 30 && p <= 37:
			st.fg = standardFG[p-30]
		case p >= 90 && p <= 97:
			st.fg = brightFG[p-90]
		case p == 38:
			if i+2 < len(params) && params[i+1] == 5 {
				st.fg = palette256(params[i+2])
				i += 2
			}
		}
		i++
	}
}
