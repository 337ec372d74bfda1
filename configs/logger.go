package configs

import (
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// Logger is the process-wide base logger. InitLogger configures it.
var Logger = logrus.New()

// InitLogger sets level and output format of the base logger.
// Unknown levels fall back to info.
func InitLogger(level, format string) {
	Logger.SetOutput(os.Stdout)

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	Logger.SetLevel(lvl)

	switch strings.ToLower(format) {
	case "text":
		Logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	default:
		Logger.SetFormatter(&logrus.JSONFormatter{})
	}

	if err != nil && level != "" {
		Logger.WithField("level", level).Warn("Unknown log level, using info")
	}
}

// LogWithContext returns an entry tagged with the emitting service and operation.
func LogWithContext(service, operation string) *logrus.Entry {
	return Logger.WithFields(logrus.Fields{
		"service":   service,
		"operation": operation,
	})
}
