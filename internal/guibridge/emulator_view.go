package guibridge

import "github.com/atsterm/ats/internal/emulator"

// EmulatorView adapts an *emulator.Emulator to the CellView interface
// Bridge implementations paint from.
type EmulatorView struct {
	E *emulator.Emulator
}

func (v EmulatorView) Rows() int { return v.E.Rows() }
func (v EmulatorView) Cols() int { return v.E.Cols() }

func (v EmulatorView) CellAt(row, col int) (rune, bool) {
	c := v.E.CellAt(row, col)
	return c.Ch, c.Bold
}

func (v EmulatorView) Cursor() (int, int) {
	return v.E.Cursor()
}
