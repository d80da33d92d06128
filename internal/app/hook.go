package app

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/five82/logcheck/internal/classify"
	"github.com/five82/logcheck/internal/hook"
	"github.com/five82/logcheck/internal/logtail"
	"github.com/five82/logcheck/internal/state"
)

// Checker runs one scan of the log against the stored cursor.
type Checker struct {
	Store           state.Store
	Classifier      *classify.Classifier
	LogPath         string
	LogLabel        string
	TailLines       int
	MaxExcerptLines int
	Now             func() time.Time
	Logger          *zap.Logger
}

// Delta is the result of reading the log against the cursor.
type Delta struct {
	Since     time.Time
	HasCursor bool
	Lines     []string
}

// Handle answers one hook request. The cursor is saved on every successful
// path, including the re-entry path and empty deltas.
func (c *Checker) Handle(ctx context.Context, req hook.Request) (hook.Response, error) {
	logger := c.logger()

	// The host sets stop_hook_active when this stop follows one of our own
	// blocks. Let it through so an unfixable error cannot loop forever.
	if req.StopHookActive {
		if err := c.save(); err != nil {
			return hook.Response{}, err
		}
		logger.Debug("re-entry, skipping scan", zap.String("session_id", req.SessionID))
		return hook.Response{}, nil
	}

	delta, err := c.Read(ctx)
	if err != nil {
		return hook.Response{}, err
	}
	if err := c.save(); err != nil {
		return hook.Response{}, err
	}

	match, found := c.Classifier.FirstError(delta.Lines)
	logger.Debug("scanned log",
		zap.String("log", c.LogPath),
		zap.Bool("cold_start", !delta.HasCursor),
		zap.Int("lines", len(delta.Lines)),
		zap.Bool("error", found),
	)
	if !found {
		return hook.Response{}, nil
	}

	logger.Info("blocking on log error",
		zap.String("pattern", match.Pattern),
		zap.Int("line", match.Index),
	)
	excerpt := BuildExcerpt(delta.Lines, c.MaxExcerptLines, c.LogLabel)
	return hook.Block(BlockReason(excerpt, c.LogLabel)), nil
}

// Read returns the delta since the stored cursor without saving a new one.
func (c *Checker) Read(ctx context.Context) (Delta, error) {
	if err := ctx.Err(); err != nil {
		return Delta{}, err
	}
	since, ok := c.Store.Load()
	lines, err := logtail.ReadSince(c.LogPath, since, ok, c.TailLines)
	if err != nil {
		return Delta{}, err
	}
	return Delta{Since: since, HasCursor: ok, Lines: lines}, nil
}

func (c *Checker) save() error {
	now := time.Now
	if c.Now != nil {
		now = c.Now
	}
	if err := c.Store.Save(now().UTC()); err != nil {
		return fmt.Errorf("save cursor: %w", err)
	}
	return nil
}

func (c *Checker) logger() *zap.Logger {
	if c.Logger == nil {
		return zap.NewNop()
	}
	return c.Logger
}
