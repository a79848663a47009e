// FILE: lixenwraith/optconfig/log.go
package optconfig

import (
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// DebugEnvVar enables resolution logging to stderr when set.
// Accepted levels are "debug", "warn" and "error"; any other value means debug.
const DebugEnvVar = "OPTCONFIG_DEBUG"

var log = newLogger()

func newLogger() *logrus.Logger {
	l := logrus.New()
	// Silent unless explicitly enabled
	l.SetOutput(io.Discard)
	l.SetLevel(logrus.PanicLevel)

	if level := os.Getenv(DebugEnvVar); level != "" {
		l.SetOutput(os.Stderr)
		switch strings.ToLower(level) {
		case "warn":
			l.SetLevel(logrus.WarnLevel)
		case "error":
			l.SetLevel(logrus.ErrorLevel)
		default:
			l.SetLevel(logrus.DebugLevel)
		}
		l.WithField("level", l.GetLevel()).Debug("resolution logging enabled")
	}
	return l
}

// SetLogger replaces the package logger. A nil logger is ignored.
func SetLogger(l *logrus.Logger) {
	if l != nil {
		log = l
	}
}

// Logger returns the package logger
func Logger() *logrus.Logger {
	return log
}
