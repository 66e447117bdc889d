package emulator

import "strings"

// textCollector is a minimal eventHandler that keeps only the printed
// text from a byte stream, discarding every CSI/OSC/control sequence.
// It drives the same parser automaton the Emulator itself uses, so the
// notion of "printable" here is exactly what onPrint would have
// received.
type textCollector struct {
	b strings.Builder
}

func (c *textCollector) onPrint(r rune) { c.b.WriteRune(r) }
func (c *textCollector) onCR()          {}
func (c *textCollector) onLF()          { c.b.WriteByte('\n') }
func (c *textCollector) onBS()          {}
func (c *textCollector) onCSI(params []int, final byte) {}

// Stripper removes ANSI/CSI/OSC escape sequences from a stream of raw
// PTY byte chunks, returning the plain text that would have been
// printed from each chunk. A CSI/OSC sequence, or a multi-byte UTF-8
// rune, can legitimately straddle the boundary between two reads off
// the PTY; Stripper carries the same parser automaton the Emulator
// itself uses across calls to Feed so a split sequence is still
// recognized correctly, instead of its trailing half being printed as
// literal text.
type Stripper struct {
	collector *textCollector
	parser    *parser
}

// NewStripper returns a Stripper ready to clean a session's chunks in
// arrival order.
func NewStripper() *Stripper {
	c := &textCollector{}
	return &Stripper{collector: c, parser: newParser(c)}
}

// Feed runs p through the stripper's parser and returns only the text
// printed while consuming it, suitable for success-pattern matching
// against the cleaned byte view rather than the rendered Cell Grid.
func (s *Stripper) Feed(p []byte) string {
	s.collector.b.Reset()
	for _, b := range p {
		s.parser.feed(b)
	}
	return s.collector.b.String()
}
