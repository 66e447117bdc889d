package emulator

// cursor is the emulator's cursor state.
type cursor struct {
	row, col           int
	wrapPending        bool
	recentlyPositioned bool
}
