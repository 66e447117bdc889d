// Package config loads and provides application configuration.
//
// On first run, a canonical TOML template is written next to the
// executable (or under ATS_CONFIG_DIR). Subsequent runs read and merge
// that file with built-in defaults; unreadable or unparseable files
// fall back to defaults rather than failing startup.
package config

import (
	"log"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// App holds the [app] section: window geometry and splitter defaults.
type App struct {
	WindowWidth            float64 `toml:"window_width"`
	WindowHeight           float64 `toml:"window_height"`
	RightTopFraction       float64 `toml:"right_top_fraction"`
	RightTopHSplitFraction float64 `toml:"right_top_hsplit_fraction"`
	MinLeftWidth           float64 `toml:"min_left_width"`
	MinRightWidth          float64 `toml:"min_right_width"`
	AllowZeroCollapse      bool    `toml:"allow_zero_collapse"`
}

// TabDnD holds a tab's [tabs.dnd] drag-and-drop insertion policy.
type TabDnD struct {
	AutoCDOnFolderDrop  bool `toml:"auto_cd_on_folder_drop"`
	AutoRunOnFolderDrop bool `toml:"auto_run_on_folder_drop"`
}

// Tab holds one [[tabs]] entry: exactly four are expected, one per
// fixed pane.
type Tab struct {
	Title                string   `toml:"title"`
	Command              string   `toml:"command"`
	AutoRestartOnSuccess bool     `toml:"auto_restart_on_success"`
	SuccessPatterns      []string `toml:"success_patterns"`
	DnD                  TabDnD   `toml:"dnd"`
}

// Config is the fully-resolved, bounds-clamped configuration.
type Config struct {
	App  App   `toml:"app"`
	Tabs []Tab `toml:"tabs"`
}

const (
	defaultWindowWidth    = 1458.0
	defaultWindowHeight   = 713.0
	defaultRightTop       = 0.617
	defaultRightTopHSplit = 0.500
	defaultMinLeftWidth   = 120.0
	defaultMinRightWidth  = 120.0
	fractionLo            = 0.2
	fractionHi            = 0.8
	expectedTabCount      = 4
)

// DefaultConfig returns the built-in defaults, including four default
// shell tabs so a config-less first run still has a usable four-pane
// layout.
func DefaultConfig() Config {
	tabs := make([]Tab, expectedTabCount)
	for i := range tabs {
		tabs[i] = Tab{Command: defaultShellCommand()}
	}
	return Config{
		App: App{
			WindowWidth:            defaultWindowWidth,
			WindowHeight:           defaultWindowHeight,
			RightTopFraction:       defaultRightTop,
			RightTopHSplitFraction: defaultRightTopHSplit,
			MinLeftWidth:           defaultMinLeftWidth,
			MinRightWidth:          defaultMinRightWidth,
			AllowZeroCollapse:      false,
		},
		Tabs: tabs,
	}
}

func defaultShellCommand() string {
	if shell := os.Getenv("SHELL"); shell != "" {
		return shell
	}
	return "/bin/sh"
}

// configDir resolves the directory a config file and its first-run
// template live in: ATS_CONFIG_DIR if set, else the directory holding
// the running executable.
func configDir() string {
	if dir := os.Getenv("ATS_CONFIG_DIR"); dir != "" {
		return dir
	}
	exe, err := os.Executable()
	if err != nil {
		return "."
	}
	return filepath.Dir(exe)
}

func configPath() string {
	return filepath.Join(configDir(), "ats.toml")
}

// Load reads the config file, clamps out-of-range fields, and returns
// a usable Config. A missing file causes a canonical template to be
// written and defaults to be returned; an unparseable file logs and
// falls back to defaults.
func Load() Config {
	cfg := DefaultConfig()
	p := configPath()

	data, err := os.ReadFile(p)
	if err != nil {
		writeTemplate(p, cfg)
		return cfg
	}

	var loaded Config
	if _, err := toml.Decode(string(data), &loaded); err != nil {
		log.Printf("config: %s: %v; falling back to defaults", p, err)
		return cfg
	}

	return mergeAndClamp(cfg, loaded)
}

// mergeAndClamp overlays loaded onto defaults field-by-field (zero
// values in loaded keep the default) and clamps ranged fields to valid
// bounds rather than rejecting an out-of-range config.
func mergeAndClamp(defaults, loaded Config) Config {
	cfg := defaults

	if loaded.App.WindowWidth > 0 {
		cfg.App.WindowWidth = loaded.App.WindowWidth
	}
	if loaded.App.WindowHeight > 0 {
		cfg.App.WindowHeight = loaded.App.WindowHeight
	}
	if loaded.App.RightTopFraction != 0 {
		cfg.App.RightTopFraction = clampFraction(loaded.App.RightTopFraction)
	}
	if loaded.App.RightTopHSplitFraction != 0 {
		cfg.App.RightTopHSplitFraction = clampFraction(loaded.App.RightTopHSplitFraction)
	}
	if loaded.App.MinLeftWidth > 0 {
		cfg.App.MinLeftWidth = loaded.App.MinLeftWidth
	}
	if loaded.App.MinRightWidth > 0 {
		cfg.App.MinRightWidth = loaded.App.MinRightWidth
	}
	cfg.App.AllowZeroCollapse = loaded.App.AllowZeroCollapse

	if len(loaded.Tabs) > 0 {
		cfg.Tabs = loaded.Tabs
	}
	if len(cfg.Tabs) > expectedTabCount {
		log.Printf("config: %d tabs configured, only the first %d are used", len(cfg.Tabs), expectedTabCount)
		cfg.Tabs = cfg.Tabs[:expectedTabCount]
	}
	for len(cfg.Tabs) < expectedTabCount {
		cfg.Tabs = append(cfg.Tabs, Tab{Command: defaultShellCommand()})
	}

	return cfg
}

func clampFraction(v float64) float64 {
	if v < fractionLo {
		return fractionLo
	}
	if v > fractionHi {
		return fractionHi
	}
	return v
}

// writeTemplate persists a canonical default configuration to disk so
// a first run leaves something editable behind.
func writeTemplate(path string, cfg Config) {
	f, err := os.Create(path)
	if err != nil {
		log.Printf("config: could not write template %s: %v", path, err)
		return
	}
	defer f.Close()
	if _, err := f.WriteString("# ats configuration\n# Edit this file to customize window, splitter, and per-tab defaults.\n\n"); err != nil {
		return
	}
	if err := toml.NewEncoder(f).Encode(cfg); err != nil {
		log.Printf("config: could not encode template %s: %v", path, err)
	}
}

// DumpDebugYAML renders cfg as YAML for the ATS_DEBUG_OVERLAY
// diagnostic path; the on-disk config format itself is TOML, but a
// YAML dump is easier to diff by eye.
func DumpDebugYAML(cfg Config) string {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return ""
	}
	return string(data)
}

// DebugOverlayEnabled reports whether ATS_DEBUG_OVERLAY is set to a
// truthy value.
func DebugOverlayEnabled() bool {
	return isTruthy(os.Getenv("ATS_DEBUG_OVERLAY"))
}

// WindowTraceEnabled reports whether ATS_WINDOW_TRACE is set to a
// truthy value.
func WindowTraceEnabled() bool {
	return isTruthy(os.Getenv("ATS_WINDOW_TRACE"))
}

func isTruthy(v string) bool {
	switch v {
	case "1", "true", "TRUE", "True", "yes", "on":
		return true
	default:
		return false
	}
}
