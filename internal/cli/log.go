// Package cli implements the metronav command-line interface.
//
// This package provides commands for finding routes through a metro network,
// inspecting its lines, stations and transfers, exporting the state graph,
// and exploring the network interactively. The CLI is built using cobra and
// supports verbose logging via the charmbracelet/log library.
//
// # Commands
//
// The main commands are:
//   - route: Find and narrate the fewest-hop route between two stations
//   - lines, line, station, transfers: Inspect the loaded network
//   - graph: Export the state graph as DOT, SVG, or JSON
//   - explore: Interactive menu that reloads lines between queries
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. Loggers are
// passed through context.Context to allow structured progress tracking.
// Load and search events reach the logger through observability hooks.
//
// # Example
//
//	import "github.com/metronav/metronav/internal/cli"
//
//	func main() {
//	    c := cli.New(os.Stderr, cli.LogInfo)
//	    if err := c.RootCommand().Execute(); err != nil {
//	        os.Exit(1)
//	    }
//	}
package cli

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/metronav/metronav/pkg/observability"
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
// It is safe for sequential use by a single goroutine; concurrent calls to done will race.
type progress struct {
	logger *log.Logger
	start  time.Time
}

// newProgress creates a progress tracker that captures the current time as start.
// The returned progress should call done when the operation completes.
func newProgress(l *log.Logger) *progress {
	return &progress{logger: l, start: time.Now()}
}

// done logs msg along with the elapsed time since progress was created.
// The duration is rounded to the nearest millisecond.
// Example output: "Loaded 8 lines (12ms)"
func (p *progress) done(msg string) {
	p.logger.Infof("%s (%s)", msg, time.Since(p.start).Round(time.Millisecond))
}

// ctxKey is the type for context keys used in this package.
// Using a distinct type prevents collisions with other packages.
type ctxKey int

// loggerKey is the context key for storing a logger.
const loggerKey ctxKey = 0

// withLogger returns a new context with the given logger attached.
// The logger can be retrieved later with loggerFromContext.
func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// loggerFromContext retrieves the logger from ctx.
// If no logger is attached, it returns log.Default().
// This ensures commands always have a valid logger even if context setup fails.
func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey).(*log.Logger); ok {
		return l
	}
	return log.Default()
}

// logHooks reports load and search events at debug level.
type logHooks struct {
	logger *log.Logger
}

var (
	_ observability.LoadHooks   = logHooks{}
	_ observability.SearchHooks = logHooks{}
)

func (h logHooks) OnLoadStart(_ context.Context, source string) {
	h.logger.Debug("loading lines", "source", source)
}

func (h logHooks) OnLoadComplete(_ context.Context, source string, lineCount int, d time.Duration, err error) {
	if err != nil {
		h.logger.Debug("load failed", "source", source, "err", err)
		return
	}
	h.logger.Debug("lines loaded", "source", source, "lines", lineCount, "took", d.Round(time.Microsecond))
}

func (h logHooks) OnGraphBuilt(_ context.Context, states, edges int, d time.Duration) {
	h.logger.Debug("state graph built", "states", states, "edges", edges, "took", d.Round(time.Microsecond))
}

func (h logHooks) OnSearchStart(_ context.Context, start, end string) {
	h.logger.Debug("searching", "from", start, "to", end)
}

func (h logHooks) OnSearchComplete(_ context.Context, start, end, status string, hops int, d time.Duration) {
	h.logger.Debug("search done", "from", start, "to", end, "status", status, "hops", hops, "took", d.Round(time.Microsecond))
}
