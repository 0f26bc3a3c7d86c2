// internal/infra/logger/logger.go
package logger

import (
	"os"
	"strings"
	"tgpipe/internal/infra/config"

	"github.com/sirupsen/logrus"
)

// Log is the global logger instance. It writes to stderr; stdout carries records only.
var Log = logrus.New()

func init() {
	Log.SetOutput(os.Stderr)
}

// Init configures the global logger from application configuration.
func Init(cfg *config.AppConfig) {
	Configure(Log, cfg.LogLevel, cfg.Environment)
}

// Configure sets level and formatter on l.
func Configure(l *logrus.Logger, logLevel, environment string) {
	level, err := logrus.ParseLevel(strings.ToLower(logLevel))
	if err != nil {
		l.Warnf("Invalid log level '%s', defaulting to 'info'. Error: %v", logLevel, err)
		l.SetLevel(logrus.InfoLevel)
	} else {
		l.SetLevel(level)
	}

	env := strings.ToLower(environment)
	if env == "production" || env == "staging" {
		l.SetFormatter(&logrus.JSONFormatter{
			TimestampFormat: "2006-01-02T15:04:05.000Z07:00", // ISO8601
		})
	} else {
		l.SetFormatter(&logrus.TextFormatter{
			FullTimestamp:   true,
			TimestampFormat: "2006-01-02 15:04:05",
		})
	}

	l.Debugf("Log level set to: %s", l.GetLevel().String())
}

// Get returns the configured global logger.
func Get() *logrus.Logger {
	return Log
}
