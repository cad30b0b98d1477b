package obs

import (
	"io"
	"os"
	"strings"
	"sync/atomic"

	"github.com/charmbracelet/log"
)

var current atomic.Pointer[log.Logger]

func init() {
	current.Store(NewLogger(os.Stderr, log.InfoLevel))
}

// NewLogger builds a logfmt logger writing to w.
func NewLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "2006-01-02T15:04:05.000Z07:00",
		Formatter:       log.LogfmtFormatter,
		Level:           level,
	})
}

// Logger returns the process-wide logger.
func Logger() *log.Logger { return current.Load() }

// SetLogger replaces the process-wide logger. A nil logger is ignored.
func SetLogger(l *log.Logger) {
	if l != nil {
		current.Store(l)
	}
}

// ParseLevel maps a config string to a level, defaulting to info.
func ParseLevel(s string) log.Level {
	lvl, err := log.ParseLevel(strings.ToLower(strings.TrimSpace(s)))
	if err != nil {
		return log.InfoLevel
	}
	return lvl
}
