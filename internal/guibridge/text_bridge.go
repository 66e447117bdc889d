package guibridge

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/atsterm/ats/internal/pane"
)

// focusedBorder and unfocusedBorder give a focused pane a brighter,
// rounded border and an unfocused pane a plain one.
var (
	focusedBorder   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("86"))
	unfocusedBorder = lipgloss.NewStyle().Border(lipgloss.NormalBorder()).BorderForeground(lipgloss.Color("240"))
	boldStyle       = lipgloss.NewStyle().Bold(true)
)

// TextBridge is a plain-text reference Bridge implementation used by
// tests and the ATS_DEBUG_OVERLAY diagnostic path: it renders each
// pane as a bordered lipgloss block holding a title line above the
// pane's content rows.
type TextBridge struct {
	panes     map[pane.ID]string
	splitters []pane.Rect
}

// NewTextBridge returns an empty TextBridge.
func NewTextBridge() *TextBridge {
	return &TextBridge{panes: make(map[pane.ID]string)}
}

// PaintPane renders the pane's visible rows (skipping NUL placeholder
// cells left behind by wide characters) inside a bordered box titled
// with the pane id and focus state.
func (b *TextBridge) PaintPane(id pane.ID, rect pane.Rect, focused bool, cells CellView) {
	border := unfocusedBorder
	title := fmt.Sprintf("pane %d", id)
	if focused {
		border = focusedBorder
		title = boldStyle.Render(title)
	}

	var body strings.Builder
	for r := 0; r < cells.Rows(); r++ {
		var line strings.Builder
		for c := 0; c < cells.Cols(); c++ {
			ch, _ := cells.CellAt(r, c)
			if ch == 0 {
				continue
			}
			line.WriteRune(ch)
		}
		body.WriteString(strings.TrimRight(line.String(), " "))
		if r < cells.Rows()-1 {
			body.WriteByte('\n')
		}
	}

	content := title + "\n" + body.String()
	b.panes[id] = border.Width(rect.Width).Height(rect.Height).Render(content)
}

// PaintSplitter records a splitter handle's rect for the debug overlay.
func (b *TextBridge) PaintSplitter(rect pane.Rect) {
	b.splitters = append(b.splitters, rect)
}

// Rendered returns the last rendered text for a pane, for tests and
// the ATS_DEBUG_OVERLAY dump.
func (b *TextBridge) Rendered(id pane.ID) string {
	return b.panes[id]
}

// SplitterCount returns how many splitter handles have been painted
// since the TextBridge was created, for overlay diagnostics. The count
// is cumulative: it is not reset between frames.
func (b *TextBridge) SplitterCount() int {
	return len(b.splitters)
}
