package emulator

import "sync"

// Emulator consumes a PTY child's byte stream and mutates a Grid so the
// visible result matches the supported ECMA-48 subset. It owns the
// parser, the Grid, the cursor, and the SGR state.
//
// Thread-safety: Write and the accessor methods acquire an internal
// mutex, so Write and cell reads may come from different goroutines.
// In this module the UI loop does both: it drains the PTY session's
// queued chunks and calls Write itself; the PTY reader goroutine never
// touches the emulator.
type Emulator struct {
	mu sync.Mutex

	grid   *Grid
	cur    cursor
	sgr    sgrState
	parser *parser
}

// New allocates an Emulator with a rows×cols grid and cursor at (0,0).
func New(rows, cols int) *Emulator {
	e := &Emulator{
		grid: NewGrid(rows, cols),
		sgr:  defaultSGR(),
	}
	e.parser = newParser(e)
	return e
}

// Write feeds raw PTY output bytes into the parser. Implements io.Writer.
// The emulator never fails: malformed UTF-8 yields U+FFFD and unknown or
// out-of-range CSI sequences are clamped or discarded.
func (e *Emulator) Write(p []byte) (int, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	for _, b := range p {
		e.parser.feed(b)
	}
	return len(p), nil
}

// Rows returns the grid's row count.
func (e *Emulator) Rows() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.grid.Rows()
}

// Cols returns the grid's column count.
func (e *Emulator) Cols() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.grid.Cols()
}

// CellAt returns the cell at (row, col).
func (e *Emulator) CellAt(row, col int) Cell {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.grid.At(row, col)
}

// Cursor returns the current cursor position.
func (e *Emulator) Cursor() (row, col int) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.cur.row, e.cur.col
}

// ---------------------------------------------------------------------
// eventHandler implementation
// ---------------------------------------------------------------------

func (e *Emulator) onCR() {
	e.cur.col = 0
	e.cur.recentlyPositioned = true
}

func (e *Emulator) onLF() {
	e.lineFeed()
}

func (e *Emulator) onBS() {
	if e.cur.col > 0 {
		e.cur.col--
	}
}

func (e *Emulator) onPrint(r rune) {
	w := widthOf(r)
	if w == 0 {
		return
	}

	// Step 1: deferred autowrap.
	if e.cur.wrapPending {
		e.cur.col = 0
		e.lineFeed()
		e.cur.wrapPending = false
	}

	// Step 2: one-shot contamination clear.
	if e.cur.recentlyPositioned && !isWhitespaceRune(r) {
		e.grid.clearEOLBorderPreserving(e.cur.row, e.cur.col, e.currentStyle())
		e.cur.recentlyPositioned = false
	}

	// Step 3: fits-on-line check. A width-2 character additionally wraps
	// when it would land exactly on the last column, since its deferred
	// wrap cannot be expressed mid-placeholder the way a single-width
	// character's can.
	needsWrap := e.cur.col+w > e.grid.Cols()
	if w == 2 && e.cur.col+w >= e.grid.Cols() {
		needsWrap = true
	}
	if needsWrap {
		e.cur.col = 0
		e.lineFeed()
	}

	// Step 4: place.
	e.grid.Set(e.cur.row, e.cur.col, Cell{Ch: r, FG: e.sgr.fg, Bold: e.sgr.bold})
	if w == 2 {
		if e.cur.col+1 < e.grid.Cols() {
			e.grid.Set(e.cur.row, e.cur.col+1, Cell{Ch: NUL, FG: e.sgr.fg, Bold: e.sgr.bold})
		}
	}

	// Step 5: advance.
	e.cur.col += w
	if e.cur.col >= e.grid.Cols() {
		e.cur.col = e.grid.Cols() - 1
		e.cur.wrapPending = true
	}
}

func (e *Emulator) currentStyle() Cell {
	return Cell{Ch: ' ', FG: e.sgr.fg, Bold: e.sgr.bold}
}

func isWhitespaceRune(r rune) bool {
	return r == ' ' || r == '\t'
}

// lineFeed moves the cursor down one row, scrolling the whole grid up
// by one row if the cursor is already at the bottom. There is no
// scroll-region concept; the entire grid is the scroll region.
func (e *Emulator) lineFeed() {
	bottom := e.grid.Rows() - 1
	if e.cur.row == bottom {
		e.grid.shiftRowsUp(0, bottom)
	} else {
		e.cur.row++
	}
}

func widthOf(r rune) int {
	return widthOracle(r)
}

// ---------------------------------------------------------------------
// CSI dispatch
// ---------------------------------------------------------------------

func (e *Emulator) onCSI(params []int, final byte) {
	switch final {
	case 'H', 'f':
		row := paramDefault(params, 0, 1)
		col := paramDefault(params, 1, 1)
		e.cur.row = clamp(row-1, 0, e.grid.Rows()-1)
		e.cur.col = clamp(col-1, 0, e.grid.Cols()-1)
		e.cur.recentlyPositioned = true
		e.cur.wrapPending = false
	case 'G':
		col := paramDefault(params, 0, 1)
		e.cur.col = clamp(col-1, 0, e.grid.Cols()-1)
		e.cur.recentlyPositioned = true
	case 'd':
		row := paramDefault(params, 0, 1)
		e.cur.row = clamp(row-1, 0, e.grid.Rows()-1)
		e.cur.recentlyPositioned = true
	case 'A':
		e.cur.row = clamp(e.cur.row-paramDefault(params, 0, 1), 0, e.grid.Rows()-1)
	case 'B':
		e.cur.row = clamp(e.cur.row+paramDefault(params, 0, 1), 0, e.grid.Rows()-1)
	case 'C':
		e.cur.col = clamp(e.cur.col+paramDefault(params, 0, 1), 0, e.grid.Cols()-1)
	case 'D':
		e.cur.col = clamp(e.cur.col-paramDefault(params, 0, 1), 0, e.grid.Cols()-1)
	case 'J':
		e.eraseDisplay(paramDefault(params, 0, 0))
	case 'K':
		e.eraseLine(paramDefault(params, 0, 0))
	case 'X':
		e.eraseChars(paramDefault(params, 0, 1))
	case 'm':
		applySGR(&e.sgr, params)
	}
}

func paramDefault(params []int, idx, def int) int {
	if idx < len(params) && params[idx] > 0 {
		return params[idx]
	}
	return def
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// eraseDisplay implements CSI J. Mode 2 (whole screen) also homes the
// cursor.
func (e *Emulator) eraseDisplay(mode int) {
	style := e.currentStyle()
	switch mode {
	case 0:
		e.grid.blankRange(e.cur.row, e.cur.col, e.grid.Cols(), style)
		for r := e.cur.row + 1; r < e.grid.Rows(); r++ {
			e.grid.blankRange(r, 0, e.grid.Cols(), style)
		}
	case 1:
		for r := 0; r < e.cur.row; r++ {
			e.grid.blankRange(r, 0, e.grid.Cols(), style)
		}
		e.grid.blankRange(e.cur.row, 0, e.cur.col+1, style)
	case 2:
		e.grid.eraseAll()
		e.cur.row = 0
		e.cur.col = 0
	}
}

// eraseLine implements CSI K. Mode 0 uses the border-preserving clear;
// modes 1 and 2 do not, since only EL(0) preserves a trailing border
// glyph.
func (e *Emulator) eraseLine(mode int) {
	style := e.currentStyle()
	switch mode {
	case 0:
		e.grid.clearEOLBorderPreserving(e.cur.row, e.cur.col, style)
	case 1:
		e.grid.blankRange(e.cur.row, 0, e.cur.col+1, style)
	case 2:
		e.grid.blankRange(e.cur.row, 0, e.grid.Cols(), style)
	}
}

// eraseChars implements CSI X (ECH): replace n cells at the cursor with
// blanks without moving the cursor.
func (e *Emulator) eraseChars(n int) {
	style := e.currentStyle()
	e.grid.blankRange(e.cur.row, e.cur.col, e.cur.col+n, style)
}
