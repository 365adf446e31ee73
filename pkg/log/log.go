package log

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// logger is the shared logrus instance for the whole process.
var logger = logrus.New()

func init() {
	logger.SetOutput(os.Stderr)
	logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "15:04:05.000",
	})
}

// Init configures the shared logger from a level string ("debug", "info",
// "warn", "error"). Unknown levels fall back to info.
func Init(level string) {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	logger.SetLevel(lvl)
}

// SetOutput redirects log output, e.g. to a file while a TUI owns the
// terminal.
func SetOutput(w io.Writer) {
	logger.SetOutput(w)
}

// L returns the shared logger.
func L() *logrus.Logger {
	return logger
}

// WithField returns an entry with a single field attached.
func WithField(key string, value interface{}) *logrus.Entry {
	return logger.WithField(key, value)
}

// WithError returns an entry with the error attached.
func WithError(err error) *logrus.Entry {
	return logger.WithError(err)
}
