// ats – a character-cell terminal emulator, PTY session manager, and
// four-pane focus controller. The GUI toolkit that actually paints
// frames is an external collaborator reached only through
// internal/guibridge.Bridge; this binary wires the core subsystems
// together and drives one frame update per tick until signaled to
// stop.
package main

import (
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/atsterm/ats/internal/config"
	"github.com/atsterm/ats/internal/emulator"
	"github.com/atsterm/ats/internal/guibridge"
	"github.com/atsterm/ats/internal/pane"
	"github.com/atsterm/ats/internal/ptysession"
)

// frameInterval matches a typical GUI repaint cadence; the core only
// needs to drain PTY queues and scan for success patterns this often,
// since the UI thread itself is the external collaborator's concern.
const frameInterval = 16 * time.Millisecond

func main() {
	log.Println("Starting ats...")

	cfg := config.Load()
	log.Printf("Config loaded: %dx%d window, %d tabs", int(cfg.App.WindowWidth), int(cfg.App.WindowHeight), len(cfg.Tabs))
	if config.WindowTraceEnabled() {
		log.Printf("window trace: initial size %.1fx%.1f, suggested defaults %.1fx%.1f",
			cfg.App.WindowWidth, cfg.App.WindowHeight, 1458.0, 713.0)
	}
	if config.DebugOverlayEnabled() {
		log.Printf("resolved config:\n%s", config.DumpDebugYAML(cfg))
	}

	fractions := pane.Fractions{
		LeftWidth:   0.40,
		LeftTop:     0.65,
		RightTop:    cfg.App.RightTopFraction,
		RightHSplit: cfg.App.RightTopHSplitFraction,
	}

	app := newApplication(cfg, fractions)
	defer app.shutdown()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	log.Println("ats running; Ctrl-C to exit")
	for {
		select {
		case <-stop:
			log.Println("ats shutting down")
			return
		case <-ticker.C:
			app.tick()
		}
	}
}

// application owns the four emulators, sessions, the pane controller,
// and the debug-overlay bridge. It is the in-process stand-in for what
// a real GUI shell would drive every frame.
type application struct {
	emulators [4]*emulator.Emulator
	sessions  [4]*ptysession.Session
	strippers [4]*emulator.Stripper
	ctrl      *pane.Controller
	bridge    *guibridge.TextBridge
	debug     bool
}

func newApplication(cfg config.Config, fractions pane.Fractions) *application {
	width := int(cfg.App.WindowWidth)
	height := int(cfg.App.WindowHeight)
	geom := pane.ComputeGeometry(width, height, fractions)

	app := &application{
		bridge: guibridge.NewTextBridge(),
		debug:  config.DebugOverlayEnabled(),
	}

	var panes [4]pane.Pane
	for i := 0; i < 4; i++ {
		rect := geom.Panes[i]
		rows, cols := cellDimensions(rect)
		app.emulators[i] = emulator.New(rows, cols)
		app.strippers[i] = emulator.NewStripper()

		tab := cfg.Tabs[i]
		argv := strings.Fields(tab.Command)
		if len(argv) == 0 {
			argv = []string{"/bin/sh"}
		}
		restart := ptysession.RestartConfig{
			Patterns:    tab.SuccessPatterns,
			AutoRestart: tab.AutoRestartOnSuccess,
		}
		sess := ptysession.New(argv, "", cols, rows, restart)
		if err := sess.Spawn(); err != nil {
			log.Printf("pane %d: spawn failed: %v", i+1, err)
		}
		app.sessions[i] = sess

		panes[i] = pane.Pane{
			ID:      pane.ID(i + 1),
			Session: sess,
			DnD: pane.DnDConfig{
				AutoCDOnFolderDrop:  tab.DnD.AutoCDOnFolderDrop,
				AutoRunOnFolderDrop: tab.DnD.AutoRunOnFolderDrop,
			},
		}
	}

	app.ctrl = pane.NewController(panes, width, height, fractions)
	return app
}

// cellDimensions estimates a monospace cell grid for a pixel Rect; a
// real GUI bridge would report the actual font metrics, but the core
// only needs a plausible starting size before the first resize event.
func cellDimensions(rect pane.Rect) (rows, cols int) {
	const cellW, cellH = 8, 16
	cols = rect.Width / cellW
	rows = rect.Height / cellH
	if cols < 1 {
		cols = 1
	}
	if rows < 1 {
		rows = 1
	}
	return rows, cols
}

// tick drains each session's PTY output into its emulator, checks for
// a success-pattern match and restarts if configured, then, only when
// the debug overlay is enabled, paints the current frame through the
// bridge.
func (a *application) tick() {
	for i, sess := range a.sessions {
		chunks := sess.Drain()
		if len(chunks) == 0 {
			continue
		}
		for _, chunk := range chunks {
			a.emulators[i].Write(chunk)
			if sess.FeedCleaned(a.strippers[i].Feed(chunk)) && sess.AutoRestartEnabled() {
				if err := sess.Restart(); err != nil {
					log.Printf("pane %d: restart failed: %v", i+1, err)
				}
			}
		}
	}

	if !a.debug {
		return
	}
	geom := a.ctrl.Geometry()
	for i := range a.emulators {
		id := pane.ID(i + 1)
		a.bridge.PaintPane(id, geom.Panes[i], a.ctrl.Focused() == id, guibridge.EmulatorView{E: a.emulators[i]})
	}
	a.bridge.PaintSplitter(geom.VSplit)
	a.bridge.PaintSplitter(geom.RTopH)
	a.bridge.PaintSplitter(geom.RHSplitV)
}

func (a *application) shutdown() {
	for _, sess := range a.sessions {
		if sess != nil {
			sess.Shutdown()
		}
	}
}
