package pane

// Key identifies a keyboard event forwarded from the GUI layer. It is
// a standalone enum since the GUI toolkit itself is an external
// collaborator reached only through interfaces.
type Key int

const (
	KeyRune Key = iota
	KeyEnter
	KeyBackspace
	KeyTab
	KeySpace
	KeyEsc
	KeyCtrlA
	KeyCtrlB
	KeyCtrlC
	KeyCtrlD
	KeyCtrlE
	KeyCtrlF
	KeyCtrlK
	KeyCtrlL
	KeyCtrlU
	KeyCtrlW
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyHome
	KeyEnd
	KeyDelete
	KeyPgUp
	KeyPgDown
)

// KeyEvent is a single keyboard event. Runes is populated only for
// KeyRune.
type KeyEvent struct {
	Type  Key
	Runes []rune
}

// ToBytes converts a KeyEvent to the raw bytes to write to a PTY: the
// standard control-byte mappings (Enter, Backspace, Ctrl-C, Ctrl-D,
// arrows) plus the usual complement of readline-style control keys and
// cursor-key CSI sequences a shell expects. Unknown key types yield nil.
func (k KeyEvent) ToBytes() []byte {
	switch k.Type {
	case KeyRune:
		return []byte(string(k.Runes))
	case KeyEnter:
		return []byte{'\r'}
	case KeyBackspace:
		return []byte{0x7f}
	case KeyTab:
		return []byte{'\t'}
	case KeySpace:
		return []byte{' '}
	case KeyEsc:
		return []byte{0x1b}
	case KeyCtrlA:
		return []byte{0x01}
	case KeyCtrlB:
		return []byte{0x02}
	case KeyCtrlC:
		return []byte{0x03}
	case KeyCtrlD:
		return []byte{0x04}
	case KeyCtrlE:
		return []byte{0x05}
	case KeyCtrlF:
		return []byte{0x06}
	case KeyCtrlK:
		return []byte{0x0b}
	case KeyCtrlL:
		return []byte{0x0c}
	case KeyCtrlU:
		return []byte{0x15}
	case KeyCtrlW:
		return []byte{0x17}
	case KeyUp:
		return []byte{0x1b, '[', 'A'}
	case KeyDown:
		return []byte{0x1b, '[', 'B'}
	case KeyRight:
		return []byte{0x1b, '[', 'C'}
	case KeyLeft:
		return []byte{0x1b, '[', 'D'}
	case KeyHome:
		return []byte{0x1b, '[', 'H'}
	case KeyEnd:
		return []byte{0x1b, '[', 'F'}
	case KeyDelete:
		return []byte{0x1b, '[', '3', '~'}
	case KeyPgUp:
		return []byte{0x1b, '[', '5', '~'}
	case KeyPgDown:
		return []byte{0x1b, '[', '6', '~'}
	}
	return nil
}
