// Package ptysession owns PTY-backed child processes: spawning a child
// under a pseudo-terminal, reading its output on a dedicated goroutine,
// and publishing bytes to the owning pane's Emulator.
package ptysession

import (
	"errors"
	"fmt"
	"io"
	"runtime"
	"strings"
	"sync"

	gopty "github.com/aymanbagabas/go-pty"
)

// Status is one of the four lifecycle states a Session can be in.
type Status int

const (
	Starting Status = iota
	Running
	Exited
	Failed
)

func (s Status) String() string {
	switch s {
	case Starting:
		return "starting"
	case Running:
		return "running"
	case Exited:
		return "exited"
	case Failed:
		return "failed"
	default:
		return "unknown"
	}
}

// Sentinel errors for the session's named failure kinds.
var (
	ErrWriterClosed = errors.New("ptysession: writer closed")
	ErrSpawnFailed  = errors.New("ptysession: spawn failed")
)

// queueCapacity is the SPSC queue's minimum capacity.
const queueCapacity = 64

// readChunk is the max bytes read per syscall.
const readChunk = 8192

// RestartConfig configures the optional success-pattern auto-restart
// behavior.
type RestartConfig struct {
	Patterns    []string
	AutoRestart bool
}

// Session owns one child process running under a PTY. The reader runs
// on a dedicated goroutine: each PTY session owns exactly one
// dedicated parallel OS thread. Drain is called by the UI thread once
// per frame and never blocks.
type Session struct {
	mu sync.Mutex

	command []string
	dir     string
	cols    int
	rows    int
	restart RestartConfig

	pty gopty.Pty
	cmd *gopty.Cmd

	status   Status
	exitCode int
	lastErr  error

	queue chan []byte
	done  chan struct{}

	// cleaned accumulates a bounded window of ANSI-stripped output for
	// success-pattern matching.
	cleaned strings.Builder
}

// New allocates a Session. Spawn starts the child process.
func New(command []string, dir string, cols, rows int, restart RestartConfig) *Session {
	return &Session{
		command: command,
		dir:     dir,
		cols:    cols,
		rows:    rows,
		restart: restart,
		status:  Starting,
	}
}

// Spawn allocates a PTY and launches the child. Returns ErrSpawnFailed
// (wrapping the OS error) if the PTY cannot be allocated or the child
// cannot be launched.
func (s *Session) Spawn() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.spawnLocked()
}

func (s *Session) spawnLocked() error {
	p, err := gopty.New()
	if err != nil {
		s.status = Failed
		s.lastErr = err
		return fmt.Errorf("%w: %v", ErrSpawnFailed, err)
	}
	if err := p.Resize(s.cols, s.rows); err != nil {
		p.Close()
		s.status = Failed
		s.lastErr = err
		return fmt.Errorf("%w: %v", ErrSpawnFailed, err)
	}

	argv := s.command
	cmd := p.Command(argv[0], argv[1:]...)
	cmd.Dir = s.dir

	if err := cmd.Start(); err != nil {
		p.Close()
		s.status = Failed
		s.lastErr = err
		return fmt.Errorf("%w: %v", ErrSpawnFailed, err)
	}

	s.pty = p
	s.cmd = cmd
	s.status = Running
	s.queue = make(chan []byte, queueCapacity)
	s.done = make(chan struct{})

	go s.readLoop(p, s.queue, s.done)
	go s.waitLoop(cmd, s.done)
	return nil
}

// readLoop is the session's dedicated reader goroutine. It blocks on
// Read against the PTY master; shutdown unblocks it by closing the
// master fd.
func (s *Session) readLoop(p gopty.Pty, queue chan<- []byte, done <-chan struct{}) {
	// Wire this goroutine to its own OS thread for its whole lifetime.
	runtime.LockOSThread()
	buf := make([]byte, readChunk)
	for {
		n, err := p.Read(buf)
		if n > 0 {
			chunk := make([]byte, n)
			copy(chunk, buf[:n])
			select {
			case queue <- chunk:
			case <-done:
				return
			}
		}
		if err != nil {
			return
		}
	}
}

// waitLoop records the child's exit. A child that ran and terminated is
// Exited with its exit code, even when that code is nonzero; Failed is
// reserved for Wait errors with no process state (an I/O-level failure).
func (s *Session) waitLoop(cmd *gopty.Cmd, done chan struct{}) {
	err := cmd.Wait()
	s.mu.Lock()
	switch {
	case cmd.ProcessState != nil:
		s.status = Exited
		s.exitCode = cmd.ProcessState.ExitCode()
	case err != nil:
		s.status = Failed
		s.lastErr = err
	default:
		s.status = Exited
	}
	s.mu.Unlock()
	close(done)
}

// Drain returns any output chunks accumulated since the last call, in
// arrival order. Never blocks.
func (s *Session) Drain() [][]byte {
	s.mu.Lock()
	queue := s.queue
	s.mu.Unlock()
	if queue == nil {
		return nil
	}
	var out [][]byte
	for {
		select {
		case chunk := <-queue:
			out = append(out, chunk)
		default:
			return out
		}
	}
}

// Write appends bytes to the PTY master (keyboard/DnD input forwarding).
// Returns ErrWriterClosed if the child has exited or the writer is
// invalid.
func (s *Session) Write(p []byte) error {
	s.mu.Lock()
	pty := s.pty
	status := s.status
	s.mu.Unlock()
	if pty == nil || status != Running {
		return ErrWriterClosed
	}
	_, err := pty.Write(p)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrWriterClosed, err)
	}
	return nil
}

// Status reports the session's current lifecycle state.
func (s *Session) Status() Status {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.status
}

// ExitCode reports the child's exit code once Status is Exited.
func (s *Session) ExitCode() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.exitCode
}

// LastError reports the error recorded for a Failed session, if any.
func (s *Session) LastError() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastErr
}

// Resize updates the PTY's reported size.
func (s *Session) Resize(cols, rows int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cols, s.rows = cols, rows
	if s.pty == nil {
		return nil
	}
	return s.pty.Resize(cols, rows)
}

// Shutdown signals the reader to stop, closes the PTY, and terminates
// the child if still alive. It is the only cancellation point.
func (s *Session) Shutdown() {
	s.mu.Lock()
	cmd := s.cmd
	pty := s.pty
	done := s.done
	s.mu.Unlock()

	if cmd != nil && cmd.Process != nil {
		_ = cmd.Process.Kill()
	}
	if pty != nil {
		pty.Close()
	}
	if done != nil {
		<-done
	}
}

// ---------------------------------------------------------------------
// Success-pattern restart
// ---------------------------------------------------------------------

// FeedCleaned appends ANSI-stripped text to the session's rolling
// success-pattern scan window and reports whether a configured pattern
// now matches. The UI thread calls this once per drained chunk, after
// stripping that chunk's escape sequences.
func (s *Session) FeedCleaned(cleanedText string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.restart.Patterns) == 0 {
		return false
	}
	s.cleaned.WriteString(cleanedText)
	const maxWindow = 8192
	if s.cleaned.Len() > maxWindow {
		// Keep only the tail; a pattern split exactly across the trim
		// point can miss one cycle, which is an acceptable trade-off
		// for an unbounded-memory scan window.
		tail := s.cleaned.String()
		tail = tail[len(tail)-maxWindow/2:]
		s.cleaned.Reset()
		s.cleaned.WriteString(tail)
	}
	content := s.cleaned.String()
	for _, pat := range s.restart.Patterns {
		if pat != "" && strings.Contains(content, pat) {
			return true
		}
	}
	return false
}

// Restart shuts the current child down and spawns a fresh one with the
// same command/dir/size, resetting match state. The emulator bound to
// this session is not reset.
func (s *Session) Restart() error {
	s.Shutdown()
	s.mu.Lock()
	s.cleaned.Reset()
	s.mu.Unlock()
	return s.Spawn()
}

// AutoRestartEnabled reports whether this session is configured to
// auto-restart on a success-pattern match.
func (s *Session) AutoRestartEnabled() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.restart.AutoRestart
}

var _ io.Writer = (*sessionWriter)(nil)

// sessionWriter adapts Session.Write to io.Writer for callers that want
// to treat the PTY master as a plain writer.
type sessionWriter struct{ s *Session }

func (w *sessionWriter) Write(p []byte) (int, error) {
	if err := w.s.Write(p); err != nil {
		return 0, err
	}
	return len(p), nil
}

// AsWriter returns an io.Writer view of the session's input side.
func (s *Session) AsWriter() io.Writer {
	return &sessionWriter{s: s}
}
