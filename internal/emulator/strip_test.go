package emulator

import "testing"

func TestStripperFeed_RemovesCSIAndOSC(t *testing.T) {
	s := NewStripper()
	in := []byte("\x1b[1;32mBuild\x1b[0m \x1b]0;title\x07succeeded\r\n")
	got := s.Feed(in)
	want := "Build succeeded\n"
	if got != want {
		t.Errorf("Feed(%q) = %q, want %q", in, got, want)
	}
}

func TestStripperFeed_KeepsPlainText(t *testing.T) {
	s := NewStripper()
	if got := s.Feed([]byte("hello world")); got != "hello world" {
		t.Errorf("Feed(%q) = %q, want unchanged", "hello world", got)
	}
}

func TestStripperFeed_HandlesOSCTerminatedByST(t *testing.T) {
	s := NewStripper()
	in := []byte("\x1b]0;some title\x1b\\done")
	if got := s.Feed(in); got != "done" {
		t.Errorf("Feed(%q) = %q, want %q", in, got, "done")
	}
}

func TestStripperFeed_EachCallReturnsOnlyThatChunksText(t *testing.T) {
	s := NewStripper()
	got1 := s.Feed([]byte("\x1b[2Kpartial"))
	got2 := s.Feed([]byte(" line\r\n"))
	if got1 != "partial" {
		t.Errorf("first Feed = %q, want %q", got1, "partial")
	}
	if got2 != " line\n" {
		t.Errorf("second Feed = %q, want %q", got2, " line\n")
	}
}

// TestStripperFeed_CSISplitAcrossChunks exercises a CSI sequence whose
// final byte arrives in a later chunk than its parameters. A stripper
// that resets its parser between calls would wrongly print the
// trailing half of the sequence as literal text.
func TestStripperFeed_CSISplitAcrossChunks(t *testing.T) {
	s := NewStripper()
	got1 := s.Feed([]byte("A\x1b[2"))
	got2 := s.Feed([]byte("JB"))
	if got1 != "A" {
		t.Errorf("first Feed = %q, want %q", got1, "A")
	}
	if got2 != "B" {
		t.Errorf("second Feed = %q, want %q", got2, "B")
	}
}

// TestStripperFeed_OSCSplitAcrossChunks exercises an OSC string whose
// BEL terminator arrives in a later chunk than the OSC body.
func TestStripperFeed_OSCSplitAcrossChunks(t *testing.T) {
	s := NewStripper()
	got1 := s.Feed([]byte("A\x1b]0;some tit"))
	got2 := s.Feed([]byte("le\x07B"))
	if got1 != "A" {
		t.Errorf("first Feed = %q, want %q", got1, "A")
	}
	if got2 != "B" {
		t.Errorf("second Feed = %q, want %q", got2, "B")
	}
}
