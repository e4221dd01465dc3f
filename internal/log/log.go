package log

import (
	"github.com/anchore/go-logger"
	"github.com/anchore/go-logger/adapter/discard"
)

// Log is the singleton used for logging within walkology, it discards by default.
var Log logger.Logger = discard.New()

// Debugf logs a formatted debug message.
func Debugf(format string, args ...interface{}) {
	Log.Debugf(format, args...)
}

// Tracef logs a formatted trace message.
func Tracef(format string, args ...interface{}) {
	Log.Tracef(format, args...)
}
