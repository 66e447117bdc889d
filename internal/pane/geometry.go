// Package pane implements a four-pane layout, focus tracking, keyboard
// routing, and drag-and-drop insertion: a fixed asymmetric split (not
// an N-pane grid), driven by three configurable splitter fractions.
package pane

// Rect describes a rectangular region on screen (0-indexed), in the
// same logical-point units as the GUI bridge.
type Rect struct {
	X, Y          int
	Width, Height int
}

// Contains reports whether (x, y) falls within r.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.Width && y >= r.Y && y < r.Y+r.Height
}

// handleThickness is the interactive splitter handle thickness in
// logical points.
const handleThickness = 10

// minPaneWidth and minPaneHeight are the clamp bounds a splitter drag
// must respect.
const (
	minPaneWidth  = 160
	minPaneHeight = 140
)

// Fractions holds the three splitter positions. LeftTop and RightTop
// are vertical splits (fraction of height); LeftWidth and RightHSplit
// are, respectively, the left column's width fraction and the
// horizontal split between panes 2/3.
type Fractions struct {
	LeftWidth   float64 // fixed at 0.40; not user-configurable
	LeftTop     float64 // default 0.65
	RightTop    float64 // default 0.617
	RightHSplit float64 // default 0.5
}

// DefaultFractions returns the canonical layout defaults.
func DefaultFractions() Fractions {
	return Fractions{
		LeftWidth:   0.40,
		LeftTop:     0.65,
		RightTop:    0.617,
		RightHSplit: 0.5,
	}
}

// Clamp bounds RightTop/RightHSplit/LeftTop to [0.2, 0.8]. Invalid
// configuration is clamped, never rejected.
func (f Fractions) Clamp() Fractions {
	f.LeftTop = clampFloat(f.LeftTop, 0.2, 0.8)
	f.RightTop = clampFloat(f.RightTop, 0.2, 0.8)
	f.RightHSplit = clampFloat(f.RightHSplit, 0.2, 0.8)
	return f
}

func clampFloat(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Geometry is the computed layout of all four panes plus their
// splitter handle rects, for a given window size and Fractions.
type Geometry struct {
	Panes    [4]Rect // index 0 = pane id 1, ... index 3 = pane id 4
	Headers  [4]Rect // header band for each pane, top strip of its Rect
	VSplit   Rect    // handle between left column and right cluster (not draggable; fixed width)
	RTopH    Rect    // handle between top row (2,3) and bottom (4)
	RHSplitV Rect    // handle between pane 2 and pane 3
}

// headerHeight is the header band's height in logical points.
const headerHeight = 24

// ComputeGeometry lays out the four fixed panes within a windowWidth ×
// windowHeight area:
//
//	Left column (pane 1): fixed fraction L_w of window width.
//	Pane 1 occupies the upper L_top fraction of the left column; the
//	lower (1 - L_top) is the buttons panel, an out-of-scope collaborator
//	with no Rect reported here.
//	Right cluster: vertical splitter at R_top divides the top row
//	(panes 2, 3) from the bottom (pane 4). A horizontal splitter at
//	R_hsplit divides pane 2 from pane 3.
func ComputeGeometry(windowWidth, windowHeight int, f Fractions) Geometry {
	f = f.Clamp()

	leftW := int(float64(windowWidth) * f.LeftWidth)
	rightW := windowWidth - leftW
	pane1H := int(float64(windowHeight) * f.LeftTop)

	topRowH := int(float64(windowHeight) * f.RightTop)
	bottomH := windowHeight - topRowH
	pane2W := int(float64(rightW) * f.RightHSplit)
	pane3W := rightW - pane2W

	var g Geometry
	g.Panes[0] = Rect{X: 0, Y: 0, Width: leftW, Height: pane1H}
	g.Panes[1] = Rect{X: leftW, Y: 0, Width: pane2W, Height: topRowH}
	g.Panes[2] = Rect{X: leftW + pane2W, Y: 0, Width: pane3W, Height: topRowH}
	g.Panes[3] = Rect{X: leftW, Y: topRowH, Width: rightW, Height: bottomH}

	for i, r := range g.Panes {
		h := r.Height
		if h > headerHeight {
			h = headerHeight
		}
		g.Headers[i] = Rect{X: r.X, Y: r.Y, Width: r.Width, Height: h}
	}

	g.VSplit = Rect{X: leftW - handleThickness/2, Y: 0, Width: handleThickness, Height: windowHeight}
	// Horizontal handle between top row and pane 4 must not extend into
	// the header band of panes 2/3.
	rtopY := topRowH - handleThickness/2
	if rtopY < headerHeight {
		rtopY = headerHeight
	}
	g.RTopH = Rect{X: leftW, Y: rtopY, Width: rightW, Height: handleThickness}
	g.RHSplitV = Rect{X: leftW + pane2W - handleThickness/2, Y: headerHeight, Width: handleThickness, Height: topRowH - headerHeight}

	return g
}

// ClampDrag adjusts a candidate fraction so every affected pane keeps
// at least minPaneWidth/minPaneHeight.
func ClampDrag(candidate float64, totalExtent int, minExtent int) float64 {
	if totalExtent <= 0 {
		return candidate
	}
	lo := float64(minExtent) / float64(totalExtent)
	hi := 1 - lo
	return clampFloat(candidate, lo, hi)
}
