package log

import (
	"io"

	"gopkg.in/Sirupsen/logrus.v0"
)

// Level mirrors logrus levels so that callers don't import logrus.
type Level uint8

const (
	PanicLevel Level = iota
	FatalLevel
	ErrorLevel
	WarnLevel
	InfoLevel
	DebugLevel
)

func (lvl Level) logrus() logrus.Level {
	return logrus.Level(lvl)
}

func (lvl Level) String() string {
	return lvl.logrus().String()
}

// SetOutput redirects the output of all modules.
func SetOutput(w io.Writer) {
	logrus.SetOutput(w)
}

// SetLevel sets the most verbose level that is ever printed, regardless of
// module masks.
func SetLevel(lvl Level) {
	logrus.SetLevel(lvl.logrus())
}

// Disable shuts down all logging (tests and benchmarks).
func Disable() {
	DisableDebugModules(ModuleMaskAll)
	logrus.SetOutput(io.Discard)
}

func init() {
	logrus.SetLevel(logrus.DebugLevel)
}
