package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/BurntSushi/toml"
)

func TestDefaultConfig_Values(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.App.WindowWidth != defaultWindowWidth {
		t.Errorf("WindowWidth = %v, want %v", cfg.App.WindowWidth, defaultWindowWidth)
	}
	if cfg.App.RightTopFraction != 0.617 {
		t.Errorf("RightTopFraction = %v, want 0.617", cfg.App.RightTopFraction)
	}
	if cfg.App.RightTopHSplitFraction != 0.5 {
		t.Errorf("RightTopHSplitFraction = %v, want 0.5", cfg.App.RightTopHSplitFraction)
	}
	if len(cfg.Tabs) != 4 {
		t.Errorf("len(Tabs) = %d, want 4", len(cfg.Tabs))
	}
}

func TestLoad_MissingFileWritesTemplateAndReturnsDefaults(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("ATS_CONFIG_DIR", dir)

	cfg := Load()
	if len(cfg.Tabs) != 4 {
		t.Errorf("len(Tabs) = %d, want 4", len(cfg.Tabs))
	}

	if _, err := os.Stat(filepath.Join(dir, "ats.toml")); err != nil {
		t.Errorf("expected template written, stat error: %v", err)
	}
}

func TestLoad_TOMLRoundTrip(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("ATS_CONFIG_DIR", dir)
	path := filepath.Join(dir, "ats.toml")

	contents := `
[app]
window_width = 1600.0
window_height = 900.0
right_top_fraction = 0.5
right_top_hsplit_fraction = 0.5

[[tabs]]
title = "main"
command = "/bin/bash"
auto_restart_on_success = true
success_patterns = ["BUILD SUCCESS"]

  [tabs.dnd]
  auto_cd_on_folder_drop = true
`
	if err := os.WriteFile(path, []byte(contents), 0644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	cfg := Load()
	if cfg.App.WindowWidth != 1600.0 {
		t.Errorf("WindowWidth = %v, want 1600.0", cfg.App.WindowWidth)
	}
	if cfg.Tabs[0].Command != "/bin/bash" {
		t.Errorf("Tabs[0].Command = %q, want /bin/bash", cfg.Tabs[0].Command)
	}
	if !cfg.Tabs[0].DnD.AutoCDOnFolderDrop {
		t.Error("Tabs[0].DnD.AutoCDOnFolderDrop should be true")
	}
	if len(cfg.Tabs[0].SuccessPatterns) != 1 || cfg.Tabs[0].SuccessPatterns[0] != "BUILD SUCCESS" {
		t.Errorf("SuccessPatterns = %v, want [BUILD SUCCESS]", cfg.Tabs[0].SuccessPatterns)
	}
	// Tabs 2-4 fall back to the default shell tab since only one was configured.
	if len(cfg.Tabs) != 4 {
		t.Errorf("len(Tabs) = %d, want 4 (padded with defaults)", len(cfg.Tabs))
	}
}

func TestLoad_UnparseableFileFallsBackToDefaults(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("ATS_CONFIG_DIR", dir)
	path := filepath.Join(dir, "ats.toml")
	if err := os.WriteFile(path, []byte("not [ valid toml"), 0644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	cfg := Load()
	if cfg.App.WindowWidth != defaultWindowWidth {
		t.Errorf("WindowWidth = %v, want default %v on parse failure", cfg.App.WindowWidth, defaultWindowWidth)
	}
}

func TestMergeAndClamp_OutOfRangeFractionsClamped(t *testing.T) {
	defaults := DefaultConfig()
	loaded := Config{App: App{RightTopFraction: 1.5, RightTopHSplitFraction: -0.3}}

	cfg := mergeAndClamp(defaults, loaded)
	if cfg.App.RightTopFraction != fractionHi {
		t.Errorf("RightTopFraction = %v, want clamped to %v", cfg.App.RightTopFraction, fractionHi)
	}
	if cfg.App.RightTopHSplitFraction != fractionLo {
		t.Errorf("RightTopHSplitFraction = %v, want clamped to %v", cfg.App.RightTopHSplitFraction, fractionLo)
	}
}

func TestMergeAndClamp_ExtraTabsTruncated(t *testing.T) {
	defaults := DefaultConfig()
	loaded := Config{Tabs: []Tab{{Title: "1"}, {Title: "2"}, {Title: "3"}, {Title: "4"}, {Title: "5"}}}

	cfg := mergeAndClamp(defaults, loaded)
	if len(cfg.Tabs) != 4 {
		t.Errorf("len(Tabs) = %d, want 4 (truncated)", len(cfg.Tabs))
	}
}

func TestWriteTemplate_ProducesDecodableTOML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "ats.toml")
	writeTemplate(path, DefaultConfig())

	var loaded Config
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	if _, err := toml.Decode(string(data), &loaded); err != nil {
		t.Fatalf("template did not decode as valid TOML: %v", err)
	}
}

func TestIsTruthy(t *testing.T) {
	truthy := []string{"1", "true", "TRUE", "yes", "on"}
	for _, v := range truthy {
		if !isTruthy(v) {
			t.Errorf("isTruthy(%q) = false, want true", v)
		}
	}
	falsy := []string{"", "0", "false", "no"}
	for _, v := range falsy {
		if isTruthy(v) {
			t.Errorf("isTruthy(%q) = true, want false", v)
		}
	}
}

func TestDebugOverlayEnabled_ReadsEnv(t *testing.T) {
	t.Setenv("ATS_DEBUG_OVERLAY", "true")
	if !DebugOverlayEnabled() {
		t.Error("DebugOverlayEnabled() = false, want true")
	}
}

func TestDumpDebugYAML_ProducesNonEmptyOutput(t *testing.T) {
	out := DumpDebugYAML(DefaultConfig())
	if out == "" {
		t.Error("DumpDebugYAML returned empty string")
	}
}
