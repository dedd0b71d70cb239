package piewheel

import (
	"context"
	"log/slog"
	"time"
)

// nopHandler discards all log records. Enabled returns false so callers skip
// attribute formatting entirely, making disabled logging effectively free.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

// ensureLogger returns l, or a silent logger when l is nil. Components take
// the logger at construction; there is no package-global debug flag.
func ensureLogger(l *slog.Logger) *slog.Logger {
	if l == nil {
		return slog.New(nopHandler{})
	}
	return l
}

// frameStats holds per-frame render metrics, reported at debug level.
type frameStats struct {
	wedges  int
	width   int
	height  int
	elapsed time.Duration
}

func logFrame(l *slog.Logger, st frameStats) {
	l.Debug("frame",
		"wedges", st.wedges,
		"width", st.width,
		"height", st.height,
		"elapsed", st.elapsed,
	)
}
