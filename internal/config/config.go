package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
)

// ProjectDirEnv names the variable the host sets to the project root.
const ProjectDirEnv = "CLAUDE_PROJECT_DIR"

// Config captures where logcheck reads and writes and how much it reports.
type Config struct {
	ProjectDir      string
	LogPath         string
	StatePath       string
	TailLines       int
	MaxExcerptLines int
	LogLevel        string
}

const (
	defaultConfigFile      = ".claude/hooks/logcheck.toml"
	defaultLogPath         = ".blitz/metro.log"
	defaultStatePath       = ".claude/hooks/.last-stop-hook-ts"
	defaultTailLines       = 100
	defaultMaxExcerptLines = 150
	defaultLogLevel        = "warn"
)

// Options select the project root and config file. Empty fields use the
// environment and defaults.
type Options struct {
	ProjectDir string
	ConfigPath string
}

// Load resolves the project root and reads the optional config file, falling
// back to defaults when it is missing.
func Load(opts Options) (Config, error) {
	root, err := resolveProjectDir(opts.ProjectDir)
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		ProjectDir:      root,
		LogPath:         filepath.Join(root, defaultLogPath),
		StatePath:       filepath.Join(root, defaultStatePath),
		TailLines:       defaultTailLines,
		MaxExcerptLines: defaultMaxExcerptLines,
		LogLevel:        defaultLogLevel,
	}

	configPath := filepath.Join(root, defaultConfigFile)
	if strings.TrimSpace(opts.ConfigPath) != "" {
		configPath, err = resolvePath(root, opts.ConfigPath)
		if err != nil {
			return Config{}, err
		}
	}

	file, err := os.Open(configPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var raw struct {
		LogPath         string `toml:"log_path"`
		StatePath       string `toml:"state_path"`
		TailLines       int    `toml:"tail_lines"`
		MaxExcerptLines int    `toml:"max_excerpt_lines"`
		LogLevel        string `toml:"log_level"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	if strings.TrimSpace(raw.LogPath) != "" {
		if cfg.LogPath, err = resolvePath(root, raw.LogPath); err != nil {
			return Config{}, err
		}
	}
	if strings.TrimSpace(raw.StatePath) != "" {
		if cfg.StatePath, err = resolvePath(root, raw.StatePath); err != nil {
			return Config{}, err
		}
	}
	if raw.TailLines > 0 {
		cfg.TailLines = raw.TailLines
	}
	if raw.MaxExcerptLines > 0 {
		cfg.MaxExcerptLines = raw.MaxExcerptLines
	}
	if level := strings.ToLower(strings.TrimSpace(raw.LogLevel)); level != "" {
		cfg.LogLevel = level
	}

	return cfg, nil
}

// LogLabel returns the log path relative to the project root when possible,
// for use in messages shown to the agent.
func (c Config) LogLabel() string {
	if c.ProjectDir != "" {
		rel, err := filepath.Rel(c.ProjectDir, c.LogPath)
		if err == nil && rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
			return filepath.ToSlash(rel)
		}
	}
	return c.LogPath
}

func resolveProjectDir(explicit string) (string, error) {
	dir := strings.TrimSpace(explicit)
	if dir == "" {
		dir = strings.TrimSpace(os.Getenv(ProjectDirEnv))
	}
	if dir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("resolve working dir: %w", err)
		}
		return wd, nil
	}
	return expandPath(dir)
}

func resolvePath(root, path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed != "" && !strings.HasPrefix(trimmed, "~") && !filepath.IsAbs(trimmed) {
		trimmed = filepath.Join(root, trimmed)
	}
	return expandPath(trimmed)
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
