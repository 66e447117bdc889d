package guibridge

import (
	"strings"
	"testing"

	"github.com/atsterm/ats/internal/emulator"
	"github.com/atsterm/ats/internal/pane"
)

func TestPaintPane_RendersVisibleText(t *testing.T) {
	e := emulator.New(2, 10)
	e.Write([]byte("hello"))

	b := NewTextBridge()
	b.PaintPane(pane.Pane1, pane.Rect{Width: 20, Height: 6}, true, EmulatorView{E: e})

	out := b.Rendered(pane.Pane1)
	if !strings.Contains(out, "hello") {
		t.Errorf("Rendered output = %q, want it to contain %q", out, "hello")
	}
}

func TestPaintPane_SkipsPlaceholderCells(t *testing.T) {
	e := emulator.New(1, 10)
	e.Write([]byte("A\U0001F600B")) // wide emoji leaves a NUL placeholder

	b := NewTextBridge()
	b.PaintPane(pane.Pane2, pane.Rect{Width: 20, Height: 3}, false, EmulatorView{E: e})

	out := b.Rendered(pane.Pane2)
	if strings.Count(out, "\x00") != 0 {
		t.Error("rendered output should never contain a raw NUL placeholder byte")
	}
}

func TestPaintSplitter_Counted(t *testing.T) {
	b := NewTextBridge()
	b.PaintSplitter(pane.Rect{X: 1, Y: 1, Width: 10, Height: 100})
	b.PaintSplitter(pane.Rect{X: 2, Y: 2, Width: 100, Height: 10})
	if b.SplitterCount() != 2 {
		t.Errorf("SplitterCount() = %d, want 2", b.SplitterCount())
	}
}

func TestEmulatorView_DelegatesToEmulator(t *testing.T) {
	e := emulator.New(3, 5)
	v := EmulatorView{E: e}
	if v.Rows() != 3 || v.Cols() != 5 {
		t.Errorf("Rows/Cols = %d/%d, want 3/5", v.Rows(), v.Cols())
	}
	row, col := v.Cursor()
	if row != 0 || col != 0 {
		t.Errorf("Cursor() = (%d,%d), want (0,0)", row, col)
	}
}
