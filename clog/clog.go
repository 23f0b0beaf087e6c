// Package clog - leveled console logging for scripts and small programs.
//
// Lines print with a level prefix: `[INFO]` and `[WARN]` go to Writer, `[ERROR]` goes to
// ErrWriter. The warning and error prefixes are colored unless color is disabled through
// the NO_COLOR convention or the output is not a terminal.
package clog

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
)

// Level - Indicates the importance of a log line.
type Level int

// Log Levels
const (
	Info Level = iota
	Warning
	Error
	NoLogs
)

// String - Returns the lowercase level name.
func (l Level) String() string {
	switch l {
	case Info:
		return "info"
	case Warning:
		return "warning"
	case Error:
		return "error"
	case NoLogs:
		return "nologs"
	}
	return "unknown"
}

// ParseLevel - Parses a level name, for wiring the level to a CLI flag.
func ParseLevel(name string) (Level, error) {
	switch strings.ToLower(name) {
	case "info":
		return Info, nil
	case "warning", "warn":
		return Warning, nil
	case "error":
		return Error, nil
	case "nologs", "none":
		return NoLogs, nil
	}
	return Info, fmt.Errorf("unknown log level '%s'", name)
}

// Writer - Destination for info and warning lines, set to os.Stdout by default.
var Writer io.Writer = os.Stdout

// ErrWriter - Destination for error lines, set to os.Stderr by default.
var ErrWriter io.Writer = os.Stderr

var minLevel = Info

// SetLevel - Only print lines at or above the given level, NoLogs silences all output.
// Returns the previous level.
func SetLevel(l Level) Level {
	prev := minLevel
	minLevel = l
	return prev
}

// Infof - Print an informational line to Writer.
func Infof(format string, a ...interface{}) {
	if minLevel > Info {
		return
	}
	fmt.Fprintf(Writer, "[INFO] %s\n", fmt.Sprintf(format, a...))
}

// Warnf - Print a warning line to Writer.
func Warnf(format string, a ...interface{}) {
	if minLevel > Warning {
		return
	}
	fmt.Fprintf(Writer, "%s %s\n", color.YellowString("[WARN]"), fmt.Sprintf(format, a...))
}

// Errorf - Print an error line to ErrWriter.
func Errorf(format string, a ...interface{}) {
	if minLevel > Error {
		return
	}
	fmt.Fprintf(ErrWriter, "%s %s\n", color.RedString("[ERROR]"), fmt.Sprintf(format, a...))
}

// Logf - Print a line at the given level. A NoLogs line prints nothing.
func Logf(l Level, format string, a ...interface{}) {
	switch l {
	case Info:
		Infof(format, a...)
	case Warning:
		Warnf(format, a...)
	case Error:
		Errorf(format, a...)
	}
}
