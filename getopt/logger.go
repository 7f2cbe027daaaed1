package getopt

import (
	"io"

	"github.com/sirupsen/logrus"
)

// logger traces scan-state transitions for debugging. The default sink is
// io.Discard, so the parser never writes to a user-visible stream unless a
// caller installs its own logger.
var logger = newLogger()

func newLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	l.SetLevel(logrus.DebugLevel)
	return l
}

// SetLogger installs l as the trace logger. Passing nil restores the
// discarding default.
func SetLogger(l *logrus.Logger) {
	if l == nil {
		l = newLogger()
	}
	logger = l
}
