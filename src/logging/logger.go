// Package logging is the process-wide levelled logger. Diagnostics go to
// stderr; user-facing report output is written by the caller, not here.
package logging

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/hashicorp/go-hclog"
)

var levelNames = map[string]hclog.Level{
	"debug":   hclog.Debug,
	"info":    hclog.Info,
	"warn":    hclog.Warn,
	"warning": hclog.Warn,
	"error":   hclog.Error,
}

var (
	mu         sync.RWMutex
	baseLogger = newLogger(os.Stderr, hclog.Info)
)

func newLogger(w io.Writer, l hclog.Level) hclog.Logger {
	return hclog.New(&hclog.LoggerOptions{
		Name:   "benchviz",
		Level:  l,
		Output: w,
		Color:  hclog.ColorOff,
	})
}

// SetOutput redirects log output, keeping the current level. Tests use it to capture lines.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	baseLogger = newLogger(w, baseLogger.GetLevel())
}

// SetLogLevel parses and sets the global log level. An unknown name leaves the
// level unchanged and is reported as an error.
func SetLogLevel(s string) error {
	l, ok := levelNames[strings.ToLower(strings.TrimSpace(s))]
	if !ok {
		return fmt.Errorf("unknown log level %q", s)
	}
	mu.Lock()
	defer mu.Unlock()
	baseLogger.SetLevel(l)
	return nil
}

// GetLogLevel returns the current global level name.
func GetLogLevel() string {
	mu.RLock()
	defer mu.RUnlock()
	return baseLogger.GetLevel().String()
}

func logf(l hclog.Level, format string, args ...interface{}) {
	mu.RLock()
	lg := baseLogger
	mu.RUnlock()
	// Only format when there are args; an already formatted message may carry literal % signs.
	msg := format
	if len(args) > 0 {
		msg = fmt.Sprintf(format, args...)
	}
	lg.Log(l, msg)
}

func Debugf(format string, a ...interface{}) { logf(hclog.Debug, format, a...) }
func Infof(format string, a ...interface{})  { logf(hclog.Info, format, a...) }
func Warnf(format string, a ...interface{})  { logf(hclog.Warn, format, a...) }

// TimeTrack logs the duration of a phase at debug level. Use with defer.
func TimeTrack(start time.Time, label string) {
	Debugf("%s took %s", label, time.Since(start))
}
