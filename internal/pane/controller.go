package pane

import "github.com/atsterm/ats/internal/ptysession"

// ID identifies one of the four fixed panes, numbered 1 through 4.
type ID int

const (
	Pane1 ID = 1
	Pane2 ID = 2
	Pane3 ID = 3
	Pane4 ID = 4
)

// Pane binds a fixed pane id to its PTY session and DnD policy. The
// emulator each pane paints from is owned by the caller (the GUI
// bridge reads it directly); the controller only needs the writer.
type Pane struct {
	ID      ID
	Session *ptysession.Session
	DnD     DnDConfig
}

// Controller is the UI-thread-owned focus/layout state machine:
// exactly one pane focused at a time, keyboard and DnD routed only to
// it, splitters adjustable within clamped bounds.
type Controller struct {
	panes     [4]Pane
	focus     ID
	fractions Fractions
	width     int
	height    int
}

// NewController builds a controller with the four panes, initial focus
// on pane 1, and the given window size and splitter fractions.
func NewController(panes [4]Pane, width, height int, fractions Fractions) *Controller {
	return &Controller{
		panes:     panes,
		focus:     Pane1,
		fractions: fractions.Clamp(),
		width:     width,
		height:    height,
	}
}

// Focused returns the currently focused pane id.
func (c *Controller) Focused() ID {
	return c.focus
}

// SetFocus sets the focused pane directly (used by tests and by
// ClickAt/ClickHeader once they've resolved a target).
func (c *Controller) SetFocus(id ID) {
	if id >= Pane1 && id <= Pane4 {
		c.focus = id
	}
}

// Geometry returns the current layout for the controller's window size
// and fractions.
func (c *Controller) Geometry() Geometry {
	return ComputeGeometry(c.width, c.height, c.fractions)
}

// Resize updates the window size used for subsequent Geometry/ClickAt
// calls.
func (c *Controller) Resize(width, height int) {
	c.width, c.height = width, height
}

// Fractions returns the controller's current splitter fractions.
func (c *Controller) Fractions() Fractions {
	return c.fractions
}

// paneAt returns the pane whose content or header Rect contains (x, y),
// or 0 if none. Handle rects take precedence and are NOT checked here;
// callers must check handle hit-testing first.
func (c *Controller) paneAt(x, y int) ID {
	g := c.Geometry()
	for i, r := range g.Panes {
		if r.Contains(x, y) {
			return ID(i + 1)
		}
	}
	return 0
}

// ClickAt processes a pointer click at (x, y): splitter handles are
// tested first (so they win where their rects overlap pane content or
// header bands), then pane content/header areas set focus. Returns
// true if the click changed focus.
func (c *Controller) ClickAt(x, y int) bool {
	g := c.Geometry()
	if g.VSplit.Contains(x, y) || g.RTopH.Contains(x, y) || g.RHSplitV.Contains(x, y) {
		return false
	}
	id := c.paneAt(x, y)
	if id == 0 || id == c.focus {
		return false
	}
	c.focus = id
	return true
}

// DragRightTop adjusts the R_top splitter fraction given a new pixel
// position, clamped so neither the top row nor pane 4 shrinks below
// minPaneHeight.
func (c *Controller) DragRightTop(y int) {
	if c.height <= 0 {
		return
	}
	candidate := float64(y) / float64(c.height)
	c.fractions.RightTop = ClampDrag(candidate, c.height, minPaneHeight)
}

// DragRightHSplit adjusts the R_hsplit fraction given a new pixel
// position relative to the right cluster's left edge.
func (c *Controller) DragRightHSplit(xWithinRightCluster, rightClusterWidth int) {
	if rightClusterWidth <= 0 {
		return
	}
	candidate := float64(xWithinRightCluster) / float64(rightClusterWidth)
	c.fractions.RightHSplit = ClampDrag(candidate, rightClusterWidth, minPaneWidth)
}

// DragLeftTop adjusts the L_top fraction (pane 1 vs. the buttons panel)
// given a new pixel position.
func (c *Controller) DragLeftTop(y int) {
	if c.height <= 0 {
		return
	}
	candidate := float64(y) / float64(c.height)
	c.fractions.LeftTop = ClampDrag(candidate, c.height, minPaneHeight)
}

// paneByID returns a pointer to the pane with the given id, or nil.
func (c *Controller) paneByID(id ID) *Pane {
	if id < Pane1 || id > Pane4 {
		return nil
	}
	return &c.panes[id-1]
}

// RouteKey forwards a keyboard event to the focused pane's PTY writer
// verbatim. If the writer is unavailable (child exited, or Write
// fails), the event is silently dropped.
func (c *Controller) RouteKey(ev KeyEvent) {
	p := c.paneByID(c.focus)
	if p == nil || p.Session == nil {
		return
	}
	data := ev.ToBytes()
	if len(data) == 0 {
		return
	}
	_ = p.Session.Write(data)
}

// RouteDrop processes a drop of paths: every drop, regardless of
// pointer location, is routed to the currently focused pane.
func (c *Controller) RouteDrop(paths []string) {
	p := c.paneByID(c.focus)
	if p == nil || p.Session == nil {
		return
	}
	data := BuildInsertion(paths, p.DnD, IsDir)
	if len(data) == 0 {
		return
	}
	_ = p.Session.Write(data)
}
