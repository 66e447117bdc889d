package pane

import "fmt"

// ScrollRegionID returns the stable identifier a GUI layer should use
// for a pane's scroll region. It is derived from the pane index, not
// from any mutable label, to prevent scroll-state collisions across
// panes if a pane's title changes.
func ScrollRegionID(id ID) string {
	return fmt.Sprintf("pane-scroll-%d", id)
}
