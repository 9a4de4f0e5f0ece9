package log

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/juju/errors"
)

type LogLevel int

const (
	Verbose3 LogLevel = iota
	Verbose2
	Verbose1
	Info
	Warning
	Error
)

var logLevelNames = map[string]LogLevel{
	"verbose3": Verbose3,
	"verbose2": Verbose2,
	"verbose1": Verbose1,
	"info":     Info,
	"warning":  Warning,
	"error":    Error,
}

// ParseLogLevel parses the level as given on the command line, like "info"
// or "verbose2".
func ParseLogLevel(s string) (LogLevel, error) {
	level, ok := logLevelNames[strings.ToLower(s)]
	if !ok {
		return 0, errors.Errorf(
			"invalid log level %q, try error, warning, info, verbose1, verbose2 or verbose3", s,
		)
	}

	return level, nil
}

var (
	out    io.Writer
	outMtx sync.Mutex

	// outFname is used when out is nil, to open the log file lazily.
	outFname string
)

// SetOutputFile makes all loggers write to the given file (appending to it).
// The file is only created once something is actually logged.
func SetOutputFile(fname string) {
	outMtx.Lock()
	defer outMtx.Unlock()

	closeOutLocked()
	outFname = fname
}

// SetOutput makes all loggers write to the given writer; mostly useful for
// tests. Passing nil reverts to the log file.
func SetOutput(w io.Writer) {
	outMtx.Lock()
	defer outMtx.Unlock()

	closeOutLocked()
	out = w
}

// Close closes the log file, if it was opened.
func Close() {
	outMtx.Lock()
	defer outMtx.Unlock()

	closeOutLocked()
}

func closeOutLocked() {
	if f, ok := out.(*os.File); ok && f != os.Stderr && f != os.Stdout {
		f.Close()
	}
	out = nil
}

func defaultLogFname() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(os.TempDir(), "lineedit.log")
	}

	return filepath.Join(homeDir, ".lineedit.log")
}

// writeLine writes the message to the log output; by default, it's the file
// ~/.lineedit.log. Nothing ever goes to the user's console, since it's where
// the editing session happens.
func writeLine(msg string) {
	outMtx.Lock()
	defer outMtx.Unlock()

	if out == nil {
		fname := outFname
		if fname == "" {
			fname = defaultLogFname()
		}

		f, err := os.OpenFile(fname, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0666)
		if err != nil {
			// No log then.
			out = io.Discard
		} else {
			out = f
		}
	}

	fmt.Fprintf(out, "%s: %s\n", time.Now().Format("2006-01-02T15:04:05.999"), strings.TrimSuffix(msg, "\n"))
}

type Logger struct {
	minLevel LogLevel

	namespace string
}

func NewLogger(minLevel LogLevel) *Logger {
	return &Logger{
		minLevel: minLevel,
	}
}

func (l *Logger) thisOrDefault() *Logger {
	if l != nil {
		return l
	}

	return &Logger{
		minLevel: Info,
	}
}

func (l *Logger) WithNamespaceAppended(n string) *Logger {
	l = l.thisOrDefault()

	ns := l.namespace
	if ns != "" {
		ns += "/"
	}
	ns += n

	newLogger := *l
	newLogger.namespace = ns
	return &newLogger
}

func (l *Logger) Verbose3f(format string, a ...interface{}) {
	l.Printf(Verbose3, format, a...)
}

func (l *Logger) Verbose2f(format string, a ...interface{}) {
	l.Printf(Verbose2, format, a...)
}

func (l *Logger) Verbose1f(format string, a ...interface{}) {
	l.Printf(Verbose1, format, a...)
}

func (l *Logger) Infof(format string, a ...interface{}) {
	l.Printf(Info, format, a...)
}

func (l *Logger) Warnf(format string, a ...interface{}) {
	l.Printf(Warning, format, a...)
}

func (l *Logger) Errorf(format string, a ...interface{}) {
	l.Printf(Error, format, a...)
}

func (l *Logger) Printf(level LogLevel, format string, a ...interface{}) {
	l = l.thisOrDefault()

	if level < l.minLevel {
		return
	}

	msg := fmt.Sprintf(format, a...)
	if l.namespace != "" {
		msg = fmt.Sprintf("[%s] %s", l.namespace, msg)
	}

	writeLine(msg)
}
