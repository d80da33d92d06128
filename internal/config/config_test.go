package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, root, body string) {
	t.Helper()
	path := filepath.Join(root, defaultConfigFile)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("MkdirAll: %v", err)
	}
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
}

func TestLoad_MissingConfigFallsBackToDefaults(t *testing.T) {
	root := t.TempDir()
	t.Setenv(ProjectDirEnv, root)

	cfg, err := Load(Options{})
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.ProjectDir != root {
		t.Fatalf("ProjectDir = %q, want %q", cfg.ProjectDir, root)
	}
	if want := filepath.Join(root, ".blitz", "metro.log"); cfg.LogPath != want {
		t.Fatalf("LogPath = %q, want %q", cfg.LogPath, want)
	}
	if want := filepath.Join(root, ".claude", "hooks", ".last-stop-hook-ts"); cfg.StatePath != want {
		t.Fatalf("StatePath = %q, want %q", cfg.StatePath, want)
	}
	if cfg.TailLines != defaultTailLines {
		t.Fatalf("TailLines = %d, want %d", cfg.TailLines, defaultTailLines)
	}
	if cfg.MaxExcerptLines != defaultMaxExcerptLines {
		t.Fatalf("MaxExcerptLines = %d, want %d", cfg.MaxExcerptLines, defaultMaxExcerptLines)
	}
	if cfg.LogLevel != defaultLogLevel {
		t.Fatalf("LogLevel = %q, want %q", cfg.LogLevel, defaultLogLevel)
	}
	if cfg.LogLabel() != ".blitz/metro.log" {
		t.Fatalf("LogLabel = %q, want .blitz/metro.log", cfg.LogLabel())
	}
}

func TestLoad_FallsBackToWorkingDir(t *testing.T) {
	t.Setenv(ProjectDirEnv, "")
	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("Getwd: %v", err)
	}

	cfg, err := Load(Options{})
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.ProjectDir != wd {
		t.Fatalf("ProjectDir = %q, want %q", cfg.ProjectDir, wd)
	}
}

func TestLoad_ExplicitProjectDirWins(t *testing.T) {
	t.Setenv(ProjectDirEnv, t.TempDir())
	root := t.TempDir()

	cfg, err := Load(Options{ProjectDir: root})
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.ProjectDir != root {
		t.Fatalf("ProjectDir = %q, want %q", cfg.ProjectDir, root)
	}
}

func TestLoad_ParsesAndTrimsConfig(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	root := t.TempDir()
	t.Setenv(ProjectDirEnv, root)

	writeConfig(t, root, `
log_path = "  logs/dev.log  "
state_path = "~/.cache/logcheck/cursor"
tail_lines = 40
max_excerpt_lines = 20
log_level = " DEBUG "
`)

	cfg, err := Load(Options{})
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if want := filepath.Join(root, "logs", "dev.log"); cfg.LogPath != want {
		t.Fatalf("LogPath = %q, want %q", cfg.LogPath, want)
	}
	if !strings.HasPrefix(cfg.StatePath, home) {
		t.Fatalf("StatePath = %q, want it under HOME %q", cfg.StatePath, home)
	}
	if cfg.TailLines != 40 || cfg.MaxExcerptLines != 20 {
		t.Fatalf("TailLines/MaxExcerptLines = %d/%d, want 40/20", cfg.TailLines, cfg.MaxExcerptLines)
	}
	if cfg.LogLevel != "debug" {
		t.Fatalf("LogLevel = %q, want debug", cfg.LogLevel)
	}
	if cfg.LogLabel() != "logs/dev.log" {
		t.Fatalf("LogLabel = %q, want logs/dev.log", cfg.LogLabel())
	}
}

func TestLoad_NonPositiveValuesUseDefaults(t *testing.T) {
	root := t.TempDir()
	t.Setenv(ProjectDirEnv, root)
	writeConfig(t, root, `
log_path = "   "
tail_lines = 0
max_excerpt_lines = -5
`)

	cfg, err := Load(Options{})
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.LogPath != filepath.Join(root, defaultLogPath) {
		t.Fatalf("LogPath = %q, want default", cfg.LogPath)
	}
	if cfg.TailLines != defaultTailLines || cfg.MaxExcerptLines != defaultMaxExcerptLines {
		t.Fatalf("TailLines/MaxExcerptLines = %d/%d, want defaults", cfg.TailLines, cfg.MaxExcerptLines)
	}
}

func TestLoad_ExplicitConfigPath(t *testing.T) {
	root := t.TempDir()
	t.Setenv(ProjectDirEnv, root)

	path := filepath.Join(t.TempDir(), "custom.toml")
	if err := os.WriteFile(path, []byte("tail_lines = 7\n"), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := Load(Options{ConfigPath: path})
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.TailLines != 7 {
		t.Fatalf("TailLines = %d, want 7", cfg.TailLines)
	}
}

func TestLoad_InvalidTOMLFails(t *testing.T) {
	root := t.TempDir()
	t.Setenv(ProjectDirEnv, root)
	writeConfig(t, root, `tail_lines = [`)

	_, err := Load(Options{})
	if err == nil {
		t.Fatalf("Load returned nil error, want parse error")
	}
	if !strings.Contains(err.Error(), "parse config") {
		t.Fatalf("Load error = %q, want it to mention parse config", err.Error())
	}
}

func TestLogLabel_OutsideProjectIsAbsolute(t *testing.T) {
	cfg := Config{ProjectDir: "/work/app", LogPath: "/var/log/metro.log"}
	if got := cfg.LogLabel(); got != "/var/log/metro.log" {
		t.Fatalf("LogLabel = %q, want absolute path", got)
	}
}

func TestLogLabel_DotDotPrefixedNameStaysRelative(t *testing.T) {
	cfg := Config{ProjectDir: "/work/app", LogPath: "/work/app/..cache/metro.log"}
	if got := cfg.LogLabel(); got != "..cache/metro.log" {
		t.Fatalf("LogLabel = %q, want %q", got, "..cache/metro.log")
	}
}

func TestLogLabel_ParentDirIsAbsolute(t *testing.T) {
	cfg := Config{ProjectDir: "/work/app", LogPath: "/work/metro.log"}
	if got := cfg.LogLabel(); got != "/work/metro.log" {
		t.Fatalf("LogLabel = %q, want %q", got, "/work/metro.log")
	}
}

func TestExpandPath_ExpandsTildeAndReturnsAbs(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	got, err := expandPath("~/a/b")
	if err != nil {
		t.Fatalf("expandPath returned error: %v", err)
	}
	want := filepath.Join(home, "a/b")
	if got != want {
		t.Fatalf("expandPath = %q, want %q", got, want)
	}
}

func TestExpandPath_EmptyErrors(t *testing.T) {
	if _, err := expandPath("   "); err == nil {
		t.Fatalf("expandPath returned nil error, want error")
	}
}
