package app

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/five82/logcheck/internal/classify"
	"github.com/five82/logcheck/internal/config"
	"github.com/five82/logcheck/internal/hook"
	"github.com/five82/logcheck/internal/logging"
	"github.com/five82/logcheck/internal/state"
)

// Options configure a logcheck invocation. Zero values use the process
// environment.
type Options struct {
	ConfigPath string
	ProjectDir string

	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
	Now    func() time.Time
}

// Run handles one hook invocation: decode the request from stdin, scan the
// log and write the decision to stdout. Only fatal conditions return an
// error; a block decision is a successful run.
func Run(ctx context.Context, opts Options) error {
	opts = opts.withDefaults()

	cfg, err := config.Load(config.Options{ProjectDir: opts.ProjectDir, ConfigPath: opts.ConfigPath})
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	logger, err := logging.New(opts.Stderr, cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	req, err := hook.DecodeRequest(opts.Stdin)
	if err != nil {
		return err
	}

	checker := newChecker(cfg, logger, opts.Now)
	resp, err := checker.Handle(ctx, req)
	if err != nil {
		return err
	}
	return hook.WriteResponse(opts.Stdout, resp)
}

// ScanResult is a dry run of the hook against the current cursor.
type ScanResult struct {
	Config  config.Config
	Delta   Delta
	Verdict classify.Verdict
	Match   classify.Match
	Excerpt string
}

// Scan reads and classifies the delta without advancing the cursor.
func Scan(ctx context.Context, opts Options) (ScanResult, error) {
	opts = opts.withDefaults()

	cfg, err := config.Load(config.Options{ProjectDir: opts.ProjectDir, ConfigPath: opts.ConfigPath})
	if err != nil {
		return ScanResult{}, fmt.Errorf("load config: %w", err)
	}
	checker := newChecker(cfg, logging.Nop(), opts.Now)
	delta, err := checker.Read(ctx)
	if err != nil {
		return ScanResult{}, err
	}

	result := ScanResult{Config: cfg, Delta: delta, Verdict: classify.VerdictProceed}
	if match, ok := checker.Classifier.FirstError(delta.Lines); ok {
		result.Verdict = classify.VerdictBlock
		result.Match = match
		result.Excerpt = BuildExcerpt(delta.Lines, cfg.MaxExcerptLines, cfg.LogLabel())
	}
	return result, nil
}

// StatusReport describes the resolved paths and the stored cursor.
type StatusReport struct {
	Config    config.Config
	Cursor    time.Time
	HasCursor bool
	LogExists bool
}

// Status reports where logcheck looks and what cursor it would use.
func Status(opts Options) (StatusReport, error) {
	opts = opts.withDefaults()

	cfg, err := config.Load(config.Options{ProjectDir: opts.ProjectDir, ConfigPath: opts.ConfigPath})
	if err != nil {
		return StatusReport{}, fmt.Errorf("load config: %w", err)
	}
	report := StatusReport{Config: cfg}
	report.Cursor, report.HasCursor = state.NewFileStore(cfg.StatePath).Load()
	if _, err := os.Stat(cfg.LogPath); err == nil {
		report.LogExists = true
	}
	return report, nil
}

// Reset removes the stored cursor so the next run is a cold start.
func Reset(opts Options) (config.Config, error) {
	opts = opts.withDefaults()

	cfg, err := config.Load(config.Options{ProjectDir: opts.ProjectDir, ConfigPath: opts.ConfigPath})
	if err != nil {
		return config.Config{}, fmt.Errorf("load config: %w", err)
	}
	return cfg, state.NewFileStore(cfg.StatePath).Clear()
}

func newChecker(cfg config.Config, logger *zap.Logger, now func() time.Time) *Checker {
	store := state.NewFileStore(cfg.StatePath)
	store.OnLoadError = func(err error) {
		logger.Warn("ignoring unreadable cursor, treating as first run",
			zap.String("path", cfg.StatePath),
			zap.Error(err),
		)
	}
	return &Checker{
		Store:           store,
		Classifier:      classify.New(),
		LogPath:         cfg.LogPath,
		LogLabel:        cfg.LogLabel(),
		TailLines:       cfg.TailLines,
		MaxExcerptLines: cfg.MaxExcerptLines,
		Now:             now,
		Logger:          logger,
	}
}

func (o Options) withDefaults() Options {
	if o.Stdin == nil {
		o.Stdin = os.Stdin
	}
	if o.Stdout == nil {
		o.Stdout = os.Stdout
	}
	if o.Stderr == nil {
		o.Stderr = os.Stderr
	}
	if o.Now == nil {
		o.Now = time.Now
	}
	return o
}
