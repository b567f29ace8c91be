package cli

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/gridpath/pkg/grid"
)

// newLogger creates a new logger with timestamp formatting.
// The logger writes to w and filters messages at the specified level.
// Timestamps are formatted as "HH:MM:SS.ms" (e.g., "14:32:01.45").
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// progress tracks the start time of an operation and logs completion with elapsed duration.
type progress struct {
	logger *log.Logger
	start  time.Time
}

func newProgress(l *log.Logger) *progress {
	return &progress{logger: l, start: time.Now()}
}

// done logs msg along with the elapsed time since progress was created.
// Example output: "Solved 40x40 board (12ms)"
func (p *progress) done(msg string) {
	p.logger.Infof("%s (%s)", msg, time.Since(p.start).Round(time.Millisecond))
}

type ctxKey int

const loggerKey ctxKey = 0

// withLogger returns a new context with the given logger attached.
func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// loggerFromContext retrieves the logger from ctx, or log.Default().
func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey).(*log.Logger); ok {
		return l
	}
	return log.Default()
}

// =============================================================================
// Diagnostics
// =============================================================================

// logHooks writes search and edit events to the debug log. Every dequeue
// shows up as one "step" line with the cell and its distance.
type logHooks struct {
	logger *log.Logger
}

func (h *logHooks) OnRunStart(_ context.Context, runID string, dimension int, start, end grid.Pos) {
	h.logger.Debug("run started", "run", shortID(runID), "size", dimension, "start", start, "end", end)
}

func (h *logHooks) OnStep(_ context.Context, runID string, phase string, cell grid.Pos, distance int) {
	h.logger.Debug("step", "run", shortID(runID), "phase", phase, "cell", cell, "distance", distance)
}

func (h *logHooks) OnRunComplete(_ context.Context, runID string, found bool, steps int, duration time.Duration, err error) {
	if err != nil {
		h.logger.Debug("run ended", "run", shortID(runID), "steps", steps, "duration", duration, "err", err)
		return
	}
	h.logger.Debug("run complete", "run", shortID(runID), "found", found, "steps", steps, "duration", duration)
}

func (h *logHooks) OnEdit(_ context.Context, action string, cell grid.Pos) {
	h.logger.Debug("edit", "action", action, "cell", cell)
}

func (h *logHooks) OnRejected(_ context.Context, action string, err error) {
	h.logger.Debug("input rejected", "action", action, "err", err)
}

func (h *logHooks) OnClear(_ context.Context, dimension int) {
	h.logger.Debug("board cleared", "size", dimension)
}

// shortID trims a uuid to its first group for log lines.
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
