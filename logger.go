package polyedit

import (
	"log/slog"
	"sync/atomic"
)

// silentLogger drops every record. Its handler reports every level as
// disabled, so log calls return before building attributes.
var silentLogger = slog.New(slog.DiscardHandler)

var activeLogger atomic.Pointer[slog.Logger]

func init() {
	activeLogger.Store(silentLogger)
}

// SetLogger routes the diagnostics of polyedit and its backends to l.
// A nil l silences them again, which is also the initial state.
//
// Edits log at Debug: mode changes, the chosen reshape target and any
// vertex dropped when an edit ends. Render logs a failed backend pass at
// Warn. To watch an editing session on stderr:
//
//	polyedit.SetLogger(slog.New(slog.NewTextHandler(os.Stderr,
//	    &slog.HandlerOptions{Level: slog.LevelDebug})))
//
// SetLogger may be called while other goroutines are editing.
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = silentLogger
	}
	activeLogger.Store(l)
}

// Logger returns the logger set by SetLogger.
func Logger() *slog.Logger {
	return activeLogger.Load()
}
