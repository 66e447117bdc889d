// Package guibridge defines the interface boundary between the core
// (emulator, PTY sessions, pane controller) and the GUI toolkit, which
// is treated as an external collaborator referenced only by its
// interface. Button-panel cosmetics, theme constants, and the actual
// windowing/paint backend live outside this module.
package guibridge

import "github.com/atsterm/ats/internal/pane"

// Bridge is the interface the frame loop paints through once per frame,
// using the pane controller's geometry and focus. A GUI toolkit
// implementation reads Cell Grid state via the CellView passed to
// PaintPane and draws it; this package never assumes a specific toolkit.
type Bridge interface {
	// PaintPane renders one pane's visible cells and cursor within rect.
	PaintPane(id pane.ID, rect pane.Rect, focused bool, cells CellView)
	// PaintSplitter renders one interactive splitter handle.
	PaintSplitter(rect pane.Rect)
}

// CellView is the read-only view of a pane's emulator a Bridge paints
// from, kept minimal so guibridge does not need to import
// internal/emulator's full surface.
type CellView interface {
	Rows() int
	Cols() int
	CellAt(row, col int) (ch rune, bold bool)
	Cursor() (row, col int)
}
